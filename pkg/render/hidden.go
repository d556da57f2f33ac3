package render

import (
	"sort"
	"strings"
)

// HiddenField is one hidden input, such as form_name, redirect_to or a CSRF
// token.
type HiddenField struct {
	Name  string
	Value string
}

func Hidden(name, value string) HiddenField {
	return HiddenField{Name: strings.TrimSpace(name), Value: value}
}

// CSRFToken builds the hidden input a CSRF middleware reads back, under the
// field name that middleware was configured with.
func CSRFToken(name, token string) HiddenField {
	return Hidden(name, token)
}

// String renders the field as a self-closing hidden input.
func (f HiddenField) String() string {
	return Element{
		Tag: "input",
		Lead: []Attr{
			{Name: "type", Value: "hidden"},
			{Name: "name", Value: f.Name},
			{Name: "value", Value: f.Value},
		},
		SelfClosing: true,
	}.String()
}

// HiddenFields holds hidden inputs by name.
type HiddenFields map[string]string

// Add sets each field, skipping blank names. The last value for a name wins.
// A nil receiver is allocated.
func (h HiddenFields) Add(fields ...HiddenField) HiddenFields {
	if h == nil {
		h = HiddenFields{}
	}
	for _, field := range fields {
		if name := strings.TrimSpace(field.Name); name != "" {
			h[name] = field.Value
		}
	}
	return h
}

// Sorted returns the fields ordered by name.
func (h HiddenFields) Sorted() []HiddenField {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]HiddenField, 0, len(names))
	for _, name := range names {
		out = append(out, HiddenField{Name: name, Value: h[name]})
	}
	return out
}

// String renders every field in name order.
func (h HiddenFields) String() string {
	var builder strings.Builder
	for _, field := range h.Sorted() {
		builder.WriteString(field.String())
	}
	return builder.String()
}
