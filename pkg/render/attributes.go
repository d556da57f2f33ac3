package render

import (
	"html"
	"sort"
	"strings"
)

const (
	// AttrName is never emitted by the attribute renderer. Callers wrap it into
	// the content[...] form expected by the submission parser.
	AttrName = "name"
	// AttrValidate is a pseudo attribute folded into AttrClass.
	AttrValidate = "validate"
	AttrClass    = "class"
	AttrID       = "id"
	AttrValue    = "value"
)

// Attr is a single name/value pair in emission order.
type Attr struct {
	Name  string
	Value string
}

// Attributes is the attribute set built for one tag invocation. Names are
// compared case-sensitively.
type Attributes map[string]string

// Clone returns a shallow copy that callers can mutate freely.
func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a))
	for key, value := range a {
		out[key] = value
	}
	return out
}

// WithDefaults returns a copy of a where missing keys are taken from
// defaults. Declared attributes always win.
func (a Attributes) WithDefaults(defaults Attributes) Attributes {
	out := make(Attributes, len(a)+len(defaults))
	for key, value := range defaults {
		out[key] = value
	}
	for key, value := range a {
		out[key] = value
	}
	return out
}

// Merge returns a copy of a with overrides applied on top.
func (a Attributes) Merge(overrides Attributes) Attributes {
	return overrides.WithDefaults(a)
}

// Get returns the value stored under name, or the empty string.
func (a Attributes) Get(name string) string {
	if a == nil {
		return ""
	}
	return a[name]
}

// Has reports whether name was declared, even with an empty value.
func (a Attributes) Has(name string) bool {
	if a == nil {
		return false
	}
	_, ok := a[name]
	return ok
}

// Without returns a copy of a without the listed names.
func (a Attributes) Without(names ...string) Attributes {
	out := a.Clone()
	for _, name := range names {
		delete(out, name)
	}
	return out
}

// Sorted folds validate into class, drops name and returns the remaining pairs
// in ascending lexicographic order.
func (a Attributes) Sorted() []Attr {
	folded := a.Clone()
	if validate, ok := folded[AttrValidate]; ok {
		folded[AttrClass] = folded[AttrClass] + " " + validate
		delete(folded, AttrValidate)
	}
	delete(folded, AttrName)

	names := make([]string, 0, len(folded))
	for name := range folded {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Attr, 0, len(names))
	for _, name := range names {
		out = append(out, Attr{Name: name, Value: folded[name]})
	}
	return out
}

// String renders the attribute fragment, e.g. `class="a" id="b"`.
func (a Attributes) String() string {
	return writeAttrs(a.Sorted())
}

func writeAttrs(attrs []Attr) string {
	var builder strings.Builder
	for idx, attr := range attrs {
		if idx > 0 {
			builder.WriteByte(' ')
		}
		builder.WriteString(attr.Name)
		builder.WriteString(`="`)
		builder.WriteString(html.EscapeString(attr.Value))
		builder.WriteByte('"')
	}
	return builder.String()
}
