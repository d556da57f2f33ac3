package dbform

import (
	"context"
	"io"
	"io/fs"
	"net/http"

	"github.com/goliatone/go-dbform/pkg/admin"
	"github.com/goliatone/go-dbform/pkg/export"
	"github.com/goliatone/go-dbform/pkg/site"
	"github.com/goliatone/go-dbform/pkg/store/memory"
	"github.com/goliatone/go-dbform/pkg/submission"
	"github.com/goliatone/go-dbform/pkg/tags"
)

// Page carries the per-request data tag expansion needs; alias exported via
// the root package for convenience.
type Page = tags.Page

// Submission is one stored form response.
type Submission = submission.Submission

// Store persists submissions.
type Store = submission.Store

// Filter narrows Store.Find by form name and creation time.
type Filter = submission.Filter

// Expand renders page markup with the default tag vocabulary.
func Expand(ctx context.Context, src string, page Page) (string, error) {
	return tags.Expand(ctx, src, page)
}

// NewMemoryStore returns a process-local Store, handy for tests and demos.
func NewMemoryStore() *memory.Store {
	return memory.New()
}

// NewSiteHandler serves the pages in fsys and captures their form posts into
// store. Extra options are applied after the pages and capturer.
func NewSiteHandler(fsys fs.FS, store Store, fns ...site.OptionFn) http.Handler {
	base := []site.OptionFn{site.WithPages(fsys)}
	if store != nil {
		base = append(base, site.WithCapturer(submission.NewCapturer(store)))
	}
	return site.NewHandler(append(base, fns...)...)
}

// NewAdminHandler builds the listing and XML export surface over store.
func NewAdminHandler(store Store, fns ...admin.OptionFn) (http.Handler, error) {
	return admin.NewHandler(append([]admin.OptionFn{admin.WithStore(store)}, fns...)...)
}

// ExportXML writes the submissions matching filter to w as XML.
func ExportXML(ctx context.Context, w io.Writer, store Store, filter Filter) error {
	records, err := store.Find(ctx, filter)
	if err != nil {
		return err
	}
	return export.WriteXML(w, records)
}
