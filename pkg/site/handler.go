package site

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/goliatone/go-dbform/pkg/submission"
	"github.com/goliatone/go-dbform/pkg/tags"
)

// ErrPageNotFound is returned by LoadPage when no file backs the path.
var ErrPageNotFound = errors.New("site: page not found")

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// Handler builds a page handler with default options plus any overrides.
func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

func NewHandler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return HandlerWithOptions(opts)
}

// HandlerWithOptions builds the page handler from a pre-constructed Options
// value.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", CacheControl)

		switch r.Method {
		case http.MethodGet, http.MethodHead:
		case http.MethodPost:
			if opts.Capturer == nil {
				methodNotAllowed(w, http.MethodGet+", "+http.MethodHead)
				return
			}
		default:
			allow := http.MethodGet + ", " + http.MethodHead
			if opts.Capturer != nil {
				allow += ", " + http.MethodPost
			}
			methodNotAllowed(w, allow)
			return
		}

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				var httpErr HTTPError
				if !errors.As(err, &httpErr) {
					err = StatusError{Code: http.StatusForbidden, Err: err}
				}
				writeError(w, opts.Logger, r, err)
				return
			}
		}

		source, err := LoadPage(opts, r.URL.Path)
		if err != nil {
			writeError(w, opts.Logger, r, err)
			return
		}

		page := tags.Page{URL: r.URL.Path}
		if r.Method == http.MethodPost {
			r.Body = http.MaxBytesReader(w, r.Body, opts.MaxUploadBytes)
			post, err := submission.ParsePost(r, opts.MaxUploadBytes)
			if err != nil {
				code := http.StatusBadRequest
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					code = http.StatusRequestEntityTooLarge
				}
				writeError(w, opts.Logger, r, StatusError{Code: code, Err: err})
				return
			}
			result := opts.Capturer.Capture(r.Context(), post)
			if result.Saved() && result.Redirect != "" {
				http.Redirect(w, r, result.Redirect, http.StatusFound)
				return
			}
			if result.ErrorMessage != "" {
				page.FormErrors = []string{result.ErrorMessage}
			}
		}

		html, err := opts.Renderer.RenderString(r.Context(), source, page)
		if err != nil {
			writeError(w, opts.Logger, r, StatusError{
				Code: http.StatusInternalServerError,
				Err:  fmt.Errorf("site: render page %q: %w", r.URL.Path, err),
			})
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write([]byte(html))
	})
}

// LoadPage reads the markup backing urlPath. "/" maps to the index page,
// "/a/b/" to a/b<ext>, then a/b/index<ext>.
func LoadPage(opts Options, urlPath string) (string, error) {
	if opts.Pages == nil {
		return "", StatusError{Code: http.StatusNotFound, Err: ErrPageNotFound}
	}
	rel := strings.TrimPrefix(urlPath, strings.TrimRight(opts.BasePath, "/"))
	name := strings.Trim(path.Clean("/"+rel), "/")

	candidates := []string{opts.IndexPage + opts.Extension}
	if name != "" {
		candidates = []string{name + opts.Extension, path.Join(name, opts.IndexPage+opts.Extension)}
	}
	for _, candidate := range candidates {
		if !fs.ValidPath(candidate) {
			continue
		}
		data, err := fs.ReadFile(opts.Pages, candidate)
		if err == nil {
			return string(data), nil
		}
		if !errors.Is(err, fs.ErrNotExist) && !isDirError(opts.Pages, candidate) {
			return "", fmt.Errorf("site: read page %q: %w", candidate, err)
		}
	}
	return "", StatusError{Code: http.StatusNotFound, Err: fmt.Errorf("%w: %s", ErrPageNotFound, urlPath)}
}

func isDirError(pages fs.FS, name string) bool {
	info, err := fs.Stat(pages, name)
	return err == nil && info.IsDir()
}

func methodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

// writeError maps err to a status. Render failures are configuration errors
// in the page itself, so their message is shown to help the page author.
func writeError(w http.ResponseWriter, logger *slog.Logger, r *http.Request, err error) {
	code := http.StatusInternalServerError
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
	}

	switch {
	case code >= http.StatusInternalServerError:
		logger.ErrorContext(r.Context(), "page request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		http.Error(w, err.Error(), code)
	case code == http.StatusNotFound:
		http.Error(w, http.StatusText(code), code)
	default:
		logger.WarnContext(r.Context(), "page request rejected",
			slog.String("path", r.URL.Path),
			slog.Int("status", code),
			slog.Any("error", err),
		)
		http.Error(w, http.StatusText(code), code)
	}
}
