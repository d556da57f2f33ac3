package export_test

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dbform/pkg/export"
	"github.com/goliatone/go-dbform/pkg/submission"
)

func TestParseFilterComponents(t *testing.T) {
	values := url.Values{
		"filter[name]":           {"contact"},
		"filter[start_time(1i)]": {"2024"},
		"filter[start_time(2i)]": {"2"},
		"filter[start_time(3i)]": {"29"},
		"filter[start_time(4i)]": {"13"},
		"filter[start_time(5i)]": {"45"},
		"filter[end_time(1i)]":   {"2024"},
		"filter[end_time(2i)]":   {"3"},
		"filter[end_time(3i)]":   {"1"},
		"filter[unrelated(1i)]":  {"1999"},
		"filter[start_time(6i)]": {"ignored"},
	}

	filter, err := export.ParseFilter(values, nil)
	if err != nil {
		t.Fatalf("ParseFilter() error = %v", err)
	}

	want := submission.Filter{
		Name:  "contact",
		Start: time.Date(2024, 2, 29, 13, 45, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	if diff := cmp.Diff(want, filter); diff != "" {
		t.Fatalf("filter mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFilterWithoutParamsIsOpen(t *testing.T) {
	filter, err := export.ParseFilter(url.Values{}, time.UTC)
	if err != nil {
		t.Fatalf("ParseFilter() error = %v", err)
	}
	if diff := cmp.Diff(submission.Filter{}, filter); diff != "" {
		t.Fatalf("expected open filter (-want +got):\n%s", diff)
	}
}

func TestParseDatetimeRejectsMalformedComponents(t *testing.T) {
	tests := map[string]url.Values{
		"not a number": {"filter[start_time(1i)]": {"20x4"}},
		"month range":  {"filter[start_time(1i)]": {"2024"}, "filter[start_time(2i)]": {"13"}},
		"day overflow": {"filter[start_time(1i)]": {"2023"}, "filter[start_time(2i)]": {"2"}, "filter[start_time(3i)]": {"29"}},
		"hour range":   {"filter[start_time(1i)]": {"2024"}, "filter[start_time(4i)]": {"24"}},
		"minute range": {"filter[start_time(1i)]": {"2024"}, "filter[start_time(5i)]": {"-1"}},
	}
	for name, values := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := export.ParseDatetime(values, export.ParamStartTime, nil)
			if !errors.Is(err, export.ErrInvalidDatetime) {
				t.Fatalf("expected ErrInvalidDatetime, got %v", err)
			}
		})
	}
}

func TestEncodeFilterRoundTrips(t *testing.T) {
	filter := submission.Filter{
		Name:  "survey",
		Start: time.Date(2024, 1, 1, 8, 30, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 8, 8, 30, 0, 0, time.UTC),
	}
	decoded, err := export.ParseFilter(export.EncodeFilter(filter), nil)
	if err != nil {
		t.Fatalf("ParseFilter() error = %v", err)
	}
	if diff := cmp.Diff(filter, decoded); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}
