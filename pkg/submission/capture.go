package submission

import (
	"context"
	"log/slog"
)

// ErrorMessagePrefix leads the message shown in the form error slot when a
// capture fails.
const ErrorMessagePrefix = "Error encountered while trying to submit form. "

// Result is the outcome of one capture attempt.
type Result struct {
	// Submission is the stored record, nil when saving failed.
	Submission *Submission
	// Redirect is set only when saving succeeded and the post named a target.
	Redirect string
	// ErrorMessage is the text for the form error slot when saving failed.
	ErrorMessage string
	Err          error
}

// Saved reports whether the record was persisted.
func (r Result) Saved() bool {
	return r.Err == nil && r.Submission != nil
}

// CaptureOption configures a Capturer.
type CaptureOption func(*Capturer)

// WithLogger sets the capture logger.
func WithLogger(logger *slog.Logger) CaptureOption {
	return func(c *Capturer) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Capturer persists form posts into a Store.
type Capturer struct {
	store  Store
	logger *slog.Logger
}

// NewCapturer builds a Capturer on top of store.
func NewCapturer(store Store, opts ...CaptureOption) *Capturer {
	c := &Capturer{store: store, logger: slog.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Capture cleans the posted content and stores it as one Submission. Save
// failures are reported in the Result, never retried.
func (c *Capturer) Capture(ctx context.Context, post Post) Result {
	record := &Submission{
		FormName: post.FormName,
		Fields:   NewFields(CleanContent(post.Content)),
	}

	if err := c.store.Create(ctx, record); err != nil {
		c.logger.WarnContext(ctx, "form submission not saved",
			slog.String("form", post.FormName),
			slog.Any("error", err),
		)
		return Result{
			ErrorMessage: ErrorMessagePrefix + err.Error(),
			Err:          err,
		}
	}

	c.logger.InfoContext(ctx, "form submission saved",
		slog.String("form", record.FormName),
		slog.String("id", record.ID),
		slog.Int("fields", len(record.Fields)),
	)
	return Result{Submission: record, Redirect: post.RedirectTo}
}
