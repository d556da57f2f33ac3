package render

import (
	"html"
	"strings"
)

// Element is a structured HTML element. Lead attributes are emitted first in
// the given order; Attrs go through the attribute renderer (sorted, validate
// folded, name dropped). Body is written verbatim.
type Element struct {
	Tag         string
	Lead        []Attr
	Attrs       Attributes
	Body        string
	SelfClosing bool
}

// String serialises the element.
func (e Element) String() string {
	var builder strings.Builder
	builder.Grow(64 + len(e.Body))

	builder.WriteByte('<')
	builder.WriteString(e.Tag)
	if lead := writeAttrs(e.Lead); lead != "" {
		builder.WriteByte(' ')
		builder.WriteString(lead)
	}
	if rest := e.Attrs.String(); rest != "" {
		builder.WriteByte(' ')
		builder.WriteString(rest)
	}

	if e.SelfClosing {
		builder.WriteString(" />")
		return builder.String()
	}

	builder.WriteByte('>')
	builder.WriteString(e.Body)
	builder.WriteString("</")
	builder.WriteString(e.Tag)
	builder.WriteByte('>')
	return builder.String()
}

// Text escapes s for use as element text content.
func Text(s string) string {
	return html.EscapeString(s)
}

// ContentName wraps a field name into the content[...] namespace the
// submission parser flattens.
func ContentName(name string) string {
	return "content[" + name + "]"
}
