package export

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/goliatone/go-dbform/pkg/submission"
)

const (
	// RootElement wraps the exported records.
	RootElement = "form-responses"
	// RecordElement wraps one submission.
	RecordElement = "form-response"
	// CreatedAtLayout formats the created-at child.
	CreatedAtLayout = "2006-01-02 15:04"

	ContentType = "application/xml; charset=utf-8"
)

// Option configures WriteXML.
type Option func(*config)

type config struct {
	location *time.Location
}

// WithLocation formats created-at in loc instead of UTC, so exported times
// read the same as the filter window they were selected with.
func WithLocation(loc *time.Location) Option {
	return func(cfg *config) {
		if loc != nil {
			cfg.location = loc
		}
	}
}

var arrayAttr = xml.Attr{Name: xml.Name{Local: "type"}, Value: "array"}

// WriteXML encodes records under a form-responses root, indented by two
// spaces. Fields become one child each, named by Dasherize; array fields
// carry type="array" and one <value> per entry. created-at is written in UTC
// unless WithLocation says otherwise.
func WriteXML(w io.Writer, records []submission.Submission, opts ...Option) error {
	cfg := config{location: time.UTC}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	root := xml.StartElement{Name: xml.Name{Local: RootElement}, Attr: []xml.Attr{arrayAttr}}
	if err := enc.EncodeToken(root); err != nil {
		return fmt.Errorf("export: encode root: %w", err)
	}
	for _, rec := range records {
		if err := encodeRecord(enc, rec, cfg.location); err != nil {
			return fmt.Errorf("export: encode %s: %w", rec.ID, err)
		}
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return fmt.Errorf("export: encode root: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func encodeRecord(enc *xml.Encoder, rec submission.Submission, loc *time.Location) error {
	start := xml.StartElement{
		Name: xml.Name{Local: RecordElement},
		Attr: []xml.Attr{{Name: xml.Name{Local: "id"}, Value: rec.ID}},
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if err := textElement(enc, "created-at", rec.CreatedAt.In(loc).Format(CreatedAtLayout)); err != nil {
		return err
	}
	for _, field := range rec.Fields {
		name := Dasherize(field.Name)
		if !field.Array {
			if err := textElement(enc, name, field.Value()); err != nil {
				return err
			}
			continue
		}

		group := xml.StartElement{Name: xml.Name{Local: name}, Attr: []xml.Attr{arrayAttr}}
		if err := enc.EncodeToken(group); err != nil {
			return err
		}
		for _, value := range field.Values {
			if err := textElement(enc, "value", value); err != nil {
				return err
			}
		}
		if err := enc.EncodeToken(group.End()); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

func textElement(enc *xml.Encoder, name, value string) error {
	return enc.EncodeElement(value, xml.StartElement{Name: xml.Name{Local: name}})
}

// Dasherize turns a field key into an XML element name: every character
// other than an ASCII letter, digit or dash becomes "-", and a name that
// does not start with a letter is prefixed with "field-".
func Dasherize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-'):
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	out := b.String()
	if out == "" || !unicode.IsLetter(rune(out[0])) {
		out = "field-" + out
	}
	return out
}
