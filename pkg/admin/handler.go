package admin

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"

	"github.com/goliatone/go-dbform/pkg/export"
	"github.com/goliatone/go-dbform/pkg/render"
	"github.com/goliatone/go-dbform/pkg/submission"
)

const (
	exportRoute  = "/export"
	openAPIRoute = "/openapi.json"
)

// CSRFFieldName is the hidden input carrying the CSRF token in admin forms.
const CSRFFieldName = "gorilla.csrf.Token"

type indexResponse struct {
	FormNames []string   `json:"form_names"`
	Filter    filterJSON `json:"filter"`
}

type filterJSON struct {
	Name      string    `json:"name"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

type handler struct {
	opts Options
}

// NewHandler builds the admin router. A Store is required.
func NewHandler(fns ...OptionFn) (http.Handler, error) {
	return HandlerWithOptions(NewOptions(fns...))
}

// HandlerWithOptions builds the admin router from a pre-constructed Options
// value.
func HandlerWithOptions(opts Options) (http.Handler, error) {
	opts = NewOptions(func(o *Options) { *o = opts })
	if opts.Store == nil {
		return nil, errors.New("admin: missing store")
	}
	if opts.Views == nil {
		views, err := DefaultViews()
		if err != nil {
			return nil, err
		}
		opts.Views = views
	}

	h := &handler{opts: opts}
	r := chi.NewRouter()
	if opts.Guard != nil {
		r.Use(h.guard)
	}
	if len(opts.CSRFKey) > 0 {
		r.Use(h.plaintext)
		r.Use(csrf.Protect(opts.CSRFKey,
			csrf.Secure(opts.CSRFSecure),
			csrf.Path(opts.BasePath),
			csrf.FieldName(CSRFFieldName),
		))
	}

	r.Get("/", h.index)
	r.Get(exportRoute, h.export)
	r.Post(exportRoute, h.export)
	r.Get(openAPIRoute, h.openAPI)
	return r, nil
}

func (h *handler) guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := h.opts.Guard(r); err != nil {
			writeGuardError(w, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// plaintext tells gorilla/csrf the request arrived over HTTP so its origin
// checks do not assume TLS.
func (h *handler) plaintext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.opts.CSRFSecure && r.TLS == nil {
			r = csrf.PlaintextHTTPRequest(r)
		}
		next.ServeHTTP(w, r)
	})
}

func (h *handler) index(w http.ResponseWriter, r *http.Request) {
	names, err := h.opts.Store.FormNames(r.Context())
	if err != nil {
		h.fail(w, r, "list form names", err)
		return
	}
	if names == nil {
		names = []string{}
	}
	now := h.opts.Now().In(h.opts.Location)
	filter := submission.DefaultFilter(now, h.opts.Lookback)

	if wantsJSON(r) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(true)
		_ = enc.Encode(indexResponse{
			FormNames: names,
			Filter:    filterJSON{Name: filter.Name, StartTime: filter.Start, EndTime: filter.End},
		})
		return
	}

	csrfField := ""
	if len(h.opts.CSRFKey) > 0 {
		csrfField = render.CSRFToken(CSRFFieldName, csrf.Token(r)).String()
	}
	page, err := h.opts.Views.RenderTemplate(indexView, map[string]any{
		"title":         "Form responses",
		"form_names":    names,
		"filter_name":   filter.Name,
		"start_parts":   datetimeParts(export.ParamStartTime, filter.Start),
		"end_parts":     datetimeParts(export.ParamEndTime, filter.End),
		"export_action": h.path(exportRoute),
		"csrf_field":    csrfField,
	})
	if err != nil {
		h.fail(w, r, "render index", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page))
}

func (h *handler) export(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "admin: invalid form body", http.StatusBadRequest)
		return
	}
	filter, err := export.ParseFilter(r.Form, h.opts.Location)
	if err != nil {
		h.fail(w, r, "parse filter", StatusError{Code: http.StatusBadRequest, Err: err})
		return
	}

	records, err := h.opts.Store.Find(r.Context(), filter)
	if err != nil {
		h.fail(w, r, "find submissions", err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXML(&buf, records, export.WithLocation(h.opts.Location)); err != nil {
		h.fail(w, r, "encode export", err)
		return
	}
	h.opts.Logger.InfoContext(r.Context(), "form responses exported",
		slog.String("name", filter.Name),
		slog.Int("count", len(records)),
	)
	w.Header().Set("Content-Type", export.ContentType)
	_, _ = w.Write(buf.Bytes())
}

func (h *handler) openAPI(w http.ResponseWriter, r *http.Request) {
	doc, err := OpenAPIDocument(h.opts.BasePath)
	if err != nil {
		h.fail(w, r, "build openapi document", err)
		return
	}
	payload, err := doc.MarshalJSON()
	if err != nil {
		h.fail(w, r, "encode openapi document", err)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write(payload)
}

func (h *handler) fail(w http.ResponseWriter, r *http.Request, action string, err error) {
	code := http.StatusInternalServerError
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.StatusCode()
	}
	level := slog.LevelError
	if code < http.StatusInternalServerError {
		level = slog.LevelWarn
	}
	h.opts.Logger.Log(r.Context(), level, "admin request failed",
		slog.String("action", action),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)

	message := http.StatusText(code)
	if code < http.StatusInternalServerError {
		message = err.Error()
	}
	http.Error(w, fmt.Sprintf("admin: %s", message), code)
}

func (h *handler) path(route string) string {
	if h.opts.BasePath == "/" {
		return route
	}
	return h.opts.BasePath + route
}

func wantsJSON(r *http.Request) bool {
	if strings.EqualFold(r.URL.Query().Get("format"), "json") {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
