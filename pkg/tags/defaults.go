package tags

import "strings"

// NewDefaultRegistry constructs a registry pre-populated with the database
// form tag vocabulary.
func NewDefaultRegistry() *Registry {
	registry := NewRegistry()

	registry.MustRegister(Namespace, Descriptor{
		Description: "Opens the database namespace; expands its children.",
		Handler:     namespaceHandler,
	})
	registry.MustRegister(NameForm, Descriptor{
		Description: "Renders a <form> posting back to the page. Requires name.",
		Handler:     formHandler,
	})
	for _, kind := range InputTypes {
		registry.MustRegister(Namespace+":"+kind, Descriptor{
			Description: "Renders an <input type=\"" + kind + "\"> control.",
			Handler:     inputHandler(kind),
		})
	}
	registry.MustRegister(NameSelect, Descriptor{
		Description: "Renders a <select> control; nest database:option tags.",
		Handler:     selectHandler,
	})
	registry.MustRegister(NameTextarea, Descriptor{
		Description: "Renders a <textarea> control; children are the initial text.",
		Handler:     textareaHandler,
	})
	registry.MustRegister(NameRadioGroup, Descriptor{
		Description: "Groups database:option tags into radio inputs.",
		Handler:     radioGroupHandler,
	})
	registry.MustRegister(NameOption, Descriptor{
		Description: "Renders an <option> in a select or a radio input in a radiogroup.",
		Handler:     optionHandler,
	})
	registry.MustRegister(NameUSStates, Descriptor{
		Description: "Renders the US states option list.",
		Handler:     choicesHandler(USStates),
	})
	registry.MustRegister(NameCAProvinces, Descriptor{
		Description: "Renders the Canadian provinces option list.",
		Handler:     choicesHandler(CAProvinces),
	})
	registry.MustRegister(NameCountries, Descriptor{
		Description: "Renders the countries option list.",
		Handler:     choicesHandler(Countries),
	})

	return registry
}

func namespaceHandler(tag Tag, ctx *Context) (string, error) {
	return tag.Expand(ctx)
}

// truthy treats any non-empty flag as on except explicit negatives.
func truthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "false", "0", "no", "off":
		return false
	default:
		return true
	}
}
