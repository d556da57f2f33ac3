package tags

import (
	"strings"
	"text/template"

	"github.com/goliatone/go-dbform/pkg/render"
)

const (
	FieldFormName   = "form_name"
	FieldRedirectTo = "redirect_to"

	// ErrorClass wraps the capture error shown above the form controls.
	ErrorClass = "database-error"
)

func formHandler(tag Tag, ctx *Context) (string, error) {
	name, err := requireName(tag)
	if err != nil {
		return "", err
	}
	validate := truthy(tag.Attrs.Get("validate"))

	var body strings.Builder
	if validate {
		body.WriteString(validationMarkup(ctx.settings.validationScript, name))
	}

	hidden := render.HiddenFields{}.Add(render.Hidden(FieldFormName, name))
	if redirect, ok := redirectTarget(tag.Attrs); ok {
		hidden.Add(render.Hidden(FieldRedirectTo, redirect))
	}
	body.WriteString(hidden.String())

	if message := formErrorMessage(ctx.Page.FormErrors); message != "" {
		body.WriteString(render.Element{
			Tag:  "div",
			Lead: []render.Attr{{Name: "class", Value: ErrorClass}},
			Body: message,
		}.String())
	}

	child := ctx.WithScope(func(scope *Scope) {
		*scope = Scope{FormName: name, Validate: validate}
	})
	inner, err := tag.Expand(child)
	if err != nil {
		return "", err
	}
	body.WriteString(inner)

	lead := []render.Attr{
		{Name: "action", Value: ctx.Page.URL},
		{Name: "method", Value: "post"},
	}
	if class := tag.Attrs.Get("class"); class != "" {
		lead = append(lead, render.Attr{Name: "class", Value: class})
	}
	lead = append(lead,
		render.Attr{Name: "enctype", Value: "multipart/form-data"},
		render.Attr{Name: "id", Value: name},
		render.Attr{Name: "name", Value: name},
	)

	return render.Element{Tag: "form", Lead: lead, Body: body.String()}.String(), nil
}

// redirectTarget reads redirect_to, falling back to the documented return_to
// alias. A declared but empty value still emits the hidden field.
func redirectTarget(attrs render.Attributes) (string, bool) {
	if attrs.Has(FieldRedirectTo) {
		return attrs.Get(FieldRedirectTo), true
	}
	if attrs.Has("return_to") {
		return attrs.Get("return_to"), true
	}
	return "", false
}

func formErrorMessage(messages []string) string {
	normalized := render.MergeFormErrors(messages)
	if len(normalized) == 0 {
		return ""
	}
	parts := make([]string, 0, len(normalized))
	for _, message := range normalized {
		if clean := sanitizeMessage(message); clean != "" {
			parts = append(parts, clean)
		}
	}
	return strings.Join(parts, " ")
}

func validationMarkup(src, formName string) string {
	name := template.JSEscapeString(formName)

	var builder strings.Builder
	builder.WriteString(render.Element{
		Tag: "script",
		Lead: []render.Attr{
			{Name: "src", Value: src},
			{Name: "type", Value: "text/javascript"},
		},
	}.String())
	builder.WriteString(`<script type="text/javascript">`)
	builder.WriteString(`function formCallback(result, form) { if (result == true) { $('` + name + `').submit(); } }`)
	builder.WriteString(`var valid = new Validation('` + name + `', { immediate: false, onFormValidate: formCallback });`)
	builder.WriteString(`</script>`)
	return builder.String()
}
