package export_test

import (
	"bytes"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-dbform/pkg/export"
	"github.com/goliatone/go-dbform/pkg/submission"
)

func TestWriteXML(t *testing.T) {
	records := []submission.Submission{
		{
			ID:        "1b4e28ba-2fa1-11d2-883f-0016d3cca427",
			FormName:  "contact",
			CreatedAt: time.Date(2024, 3, 5, 9, 7, 42, 0, time.UTC),
			Fields: submission.NewFields(url.Values{
				"home_phone": {"111-222-3333"},
				"name":       {"nap & co <ltd>"},
				"colors[]":   {"red", "blue"},
			}),
		},
	}

	var buf bytes.Buffer
	if err := export.WriteXML(&buf, records); err != nil {
		t.Fatalf("WriteXML() error = %v", err)
	}

	want := `<?xml version="1.0" encoding="UTF-8"?>
<form-responses type="array">
  <form-response id="1b4e28ba-2fa1-11d2-883f-0016d3cca427">
    <created-at>2024-03-05 09:07</created-at>
    <colors type="array">
      <value>red</value>
      <value>blue</value>
    </colors>
    <home-phone>111-222-3333</home-phone>
    <name>nap &amp; co &lt;ltd&gt;</name>
  </form-response>
</form-responses>
`
	if got := buf.String(); got != want {
		t.Fatalf("xml mismatch\nwant:\n%s\n got:\n%s", want, got)
	}
}

func TestWriteXMLWithLocation(t *testing.T) {
	records := []submission.Submission{{
		ID:        "a",
		FormName:  "contact",
		CreatedAt: time.Date(2024, 3, 5, 2, 15, 0, 0, time.UTC),
		Fields:    submission.NewFields(url.Values{"name": {"nap"}}),
	}}
	eastern := time.FixedZone("EST", -5*60*60)

	var buf bytes.Buffer
	if err := export.WriteXML(&buf, records, export.WithLocation(eastern)); err != nil {
		t.Fatalf("WriteXML() error = %v", err)
	}
	if !strings.Contains(buf.String(), "<created-at>2024-03-04 21:15</created-at>") {
		t.Fatalf("expected created-at in EST:\n%s", buf.String())
	}

	buf.Reset()
	if err := export.WriteXML(&buf, records, export.WithLocation(nil)); err != nil {
		t.Fatalf("WriteXML() error = %v", err)
	}
	if !strings.Contains(buf.String(), "<created-at>2024-03-05 02:15</created-at>") {
		t.Fatalf("expected created-at in UTC:\n%s", buf.String())
	}
}

func TestWriteXMLEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := export.WriteXML(&buf, nil); err != nil {
		t.Fatalf("WriteXML() error = %v", err)
	}
	want := "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<form-responses type=\"array\"></form-responses>\n"
	if buf.String() != want {
		t.Fatalf("unexpected empty document %q", buf.String())
	}
}

func TestDasherize(t *testing.T) {
	tests := map[string]string{
		"home_phone":   "home-phone",
		"email":        "email",
		"first name":   "first-name",
		"2nd_choice":   "field-2nd-choice",
		"_private":     "field--private",
		"":             "field-",
		"café":         "caf-",
		"already-dash": "already-dash",
	}
	for in, want := range tests {
		if got := export.Dasherize(in); got != want {
			t.Errorf("Dasherize(%q) = %q, want %q", in, got, want)
		}
	}
}
