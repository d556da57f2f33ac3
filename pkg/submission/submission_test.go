package submission_test

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dbform/pkg/submission"
)

func TestValidateRequiresNameAndContent(t *testing.T) {
	err := submission.Submission{}.Validate()
	if !errors.Is(err, submission.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}

	var validation *submission.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	want := map[string]string{"name": "can't be blank", "content": "can't be blank"}
	if diff := cmp.Diff(want, validation.Fields); diff != "" {
		t.Fatalf("validation fields mismatch (-want +got):\n%s", diff)
	}
	if got := err.Error(); got != "Content can't be blank, Name can't be blank" {
		t.Fatalf("unexpected message %q", got)
	}

	valid := submission.Submission{FormName: "contact", Fields: submission.NewFields(url.Values{"name": {"name"}})}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid record, got %v", err)
	}
}

func TestFilterMatches(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	rec := submission.Submission{FormName: "contact", CreatedAt: at}

	tests := []struct {
		name   string
		filter submission.Filter
		want   bool
	}{
		{name: "empty", filter: submission.Filter{}, want: true},
		{name: "name match", filter: submission.Filter{Name: "contact"}, want: true},
		{name: "name mismatch", filter: submission.Filter{Name: "survey"}, want: false},
		{name: "inclusive bounds", filter: submission.Filter{Start: at, End: at}, want: true},
		{name: "before start", filter: submission.Filter{Start: at.Add(time.Minute)}, want: false},
		{name: "after end", filter: submission.Filter{End: at.Add(-time.Minute)}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(rec); got != tt.want {
				t.Fatalf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultFilterLooksBackOneWeek(t *testing.T) {
	now := time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC)
	filter := submission.DefaultFilter(now, 7*24*time.Hour)

	want := submission.Filter{Start: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), End: now}
	if diff := cmp.Diff(want, filter); diff != "" {
		t.Fatalf("default filter mismatch (-want +got):\n%s", diff)
	}
}

func TestSortOrdersByNameThenCreatedAt(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	records := []submission.Submission{
		{ID: "3", FormName: "survey", CreatedAt: base},
		{ID: "2", FormName: "contact", CreatedAt: base.Add(time.Hour)},
		{ID: "1", FormName: "contact", CreatedAt: base},
	}
	submission.Sort(records)

	var got []string
	for _, rec := range records {
		got = append(got, rec.ID)
	}
	if diff := cmp.Diff([]string{"1", "2", "3"}, got); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}
