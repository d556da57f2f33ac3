package submission_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dbform/pkg/store/memory"
	"github.com/goliatone/go-dbform/pkg/submission"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCaptureStoresCleanedFieldsAndRedirects(t *testing.T) {
	store := memory.New()
	capturer := submission.NewCapturer(store, submission.WithLogger(quietLogger()))

	result := capturer.Capture(context.Background(), submission.Post{
		FormName:   "contact",
		RedirectTo: "/",
		Content: url.Values{
			"home_phone":   {"111-222-3333"},
			"name":         {"nick"},
			"Submit":       {"Send"},
			"Ignore":       {"Reset"},
			"email_verify": {"x"},
		},
	})

	if !result.Saved() {
		t.Fatalf("expected saved result, got %#v", result)
	}
	if result.Redirect != "/" {
		t.Fatalf("Redirect = %q, want /", result.Redirect)
	}

	records, err := store.Find(context.Background(), submission.Filter{})
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected exactly one submission, got %d", len(records))
	}
	if records[0].FormName != "contact" {
		t.Fatalf("FormName = %q", records[0].FormName)
	}
	if diff := cmp.Diff([]string{"home_phone", "name"}, records[0].Fields.Names()); diff != "" {
		t.Fatalf("stored field names mismatch (-want +got):\n%s", diff)
	}
	if got := records[0].Fields.Value("home_phone"); got != "111-222-3333" {
		t.Fatalf("home_phone = %q", got)
	}
}

func TestCaptureWithoutRedirectFallsThrough(t *testing.T) {
	capturer := submission.NewCapturer(memory.New(), submission.WithLogger(quietLogger()))

	result := capturer.Capture(context.Background(), submission.Post{
		FormName: "contact",
		Content:  url.Values{"name": {"nick"}},
	})
	if !result.Saved() || result.Redirect != "" || result.ErrorMessage != "" {
		t.Fatalf("unexpected result %#v", result)
	}
}

func TestCaptureFailureReportsMessageAndSkipsRedirect(t *testing.T) {
	store := memory.New()
	capturer := submission.NewCapturer(store, submission.WithLogger(quietLogger()))

	result := capturer.Capture(context.Background(), submission.Post{
		FormName:   "contact",
		RedirectTo: "/thanks",
		Content:    url.Values{"Submit": {"Send"}},
	})

	if result.Saved() {
		t.Fatalf("expected failed capture")
	}
	if result.Redirect != "" {
		t.Fatalf("redirect must not be issued on failure, got %q", result.Redirect)
	}
	if !errors.Is(result.Err, submission.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", result.Err)
	}
	if want := "Error encountered while trying to submit form. Content can't be blank"; result.ErrorMessage != want {
		t.Fatalf("ErrorMessage = %q, want %q", result.ErrorMessage, want)
	}
	if store.Len() != 0 {
		t.Fatalf("invalid record was stored")
	}
}

type failingStore struct{}

func (failingStore) Create(context.Context, *submission.Submission) error {
	return errors.New("connection refused")
}

func (failingStore) FormNames(context.Context) ([]string, error) { return nil, nil }

func (failingStore) Find(context.Context, submission.Filter) ([]submission.Submission, error) {
	return nil, nil
}

func TestCaptureLogsStoreFailure(t *testing.T) {
	var logs strings.Builder
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	capturer := submission.NewCapturer(failingStore{}, submission.WithLogger(logger))

	result := capturer.Capture(context.Background(), submission.Post{FormName: "contact", Content: url.Values{"a": {"b"}}})
	if !strings.HasSuffix(result.ErrorMessage, "connection refused") {
		t.Fatalf("unexpected message %q", result.ErrorMessage)
	}
	if !strings.Contains(logs.String(), "form submission not saved") {
		t.Fatalf("expected warning log, got %q", logs.String())
	}
}
