package tags

import "github.com/goliatone/go-dbform/pkg/render"

const (
	inputSubmit = "submit"
	inputReset  = "reset"

	submitValidateHook = "valid.validate(); return false"
	resetValidateHook  = "valid.reset();"
)

func inputHandler(kind string) Handler {
	return func(tag Tag, ctx *Context) (string, error) {
		attrs := tag.Attrs
		if kind != inputSubmit && kind != inputReset {
			if _, err := requireName(tag); err != nil {
				return "", err
			}
		}

		if ctx.Scope.Validate {
			switch kind {
			case inputSubmit:
				attrs = attrs.Merge(render.Attributes{"onclick": submitValidateHook})
			case inputReset:
				attrs = attrs.Merge(render.Attributes{"onclick": resetValidateHook})
			}
		}
		return InputTag(kind, attrs), nil
	}
}

// InputTag builds a self-closing <input> of the given type. The id defaults to
// the field name and value to the empty string; declared attributes win. A
// declared name is emitted as content[<name>].
func InputTag(kind string, attrs render.Attributes) string {
	name := attrs.Get(render.AttrName)

	defaults := render.Attributes{render.AttrValue: ""}
	if name != "" {
		defaults[render.AttrID] = name
	}
	options := attrs.WithDefaults(defaults).Without("type")

	lead := []render.Attr{{Name: "type", Value: kind}}
	if name != "" {
		lead = append(lead, render.Attr{Name: "name", Value: render.ContentName(name)})
	}

	return render.Element{
		Tag:         "input",
		Lead:        lead,
		Attrs:       options,
		SelfClosing: true,
	}.String()
}
