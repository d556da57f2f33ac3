package tags

// Canonical tag names registered by NewDefaultRegistry.
const (
	Namespace = "database"

	NameForm        = "database:form"
	NameText        = "database:text"
	NamePassword    = "database:password"
	NameFile        = "database:file"
	NameSubmit      = "database:submit"
	NameReset       = "database:reset"
	NameCheckbox    = "database:checkbox"
	NameRadio       = "database:radio"
	NameHidden      = "database:hidden"
	NameSelect      = "database:select"
	NameTextarea    = "database:textarea"
	NameRadioGroup  = "database:radiogroup"
	NameOption      = "database:option"
	NameUSStates    = "database:us_states"
	NameCAProvinces = "database:ca_provinces"
	NameCountries   = "database:countries"
)

// InputTypes lists the <input> types exposed as database:<type> tags.
var InputTypes = []string{"text", "password", "file", "submit", "reset", "checkbox", "radio", "hidden"}
