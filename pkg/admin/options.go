package admin

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/goliatone/go-dbform/pkg/render/template"
	"github.com/goliatone/go-dbform/pkg/submission"
)

const (
	DefaultBasePath = "/admin/form_responses"
	DefaultLookback = 7 * 24 * time.Hour
)

// GuardFunc authorises a request before any handler runs. Returning an
// HTTPError selects the response status; other errors yield 403.
type GuardFunc func(r *http.Request) error

type Options struct {
	// BasePath is the public mount path, used to build links and form actions.
	BasePath string
	Store    submission.Store
	// Views renders the index page. The embedded templates are used when nil.
	Views    template.TemplateRenderer
	Lookback time.Duration
	Now      func() time.Time
	// Location interprets datetime filter components.
	Location *time.Location
	Guard    GuardFunc
	Logger   *slog.Logger

	// CSRFKey enables gorilla/csrf protection when non-empty (32 bytes).
	CSRFKey []byte
	// CSRFSecure marks requests as HTTPS for the CSRF origin checks and
	// cookie. Leave false when serving plain HTTP.
	CSRFSecure bool
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		BasePath: DefaultBasePath,
		Lookback: DefaultLookback,
		Now:      time.Now,
		Location: time.UTC,
		Logger:   slog.Default(),
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	opts.BasePath = normalizeBase(opts.BasePath)
	if opts.Lookback <= 0 {
		opts.Lookback = DefaultLookback
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.CSRFKey != nil {
		opts.CSRFKey = append([]byte{}, opts.CSRFKey...)
	}
	return opts
}

func WithBasePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.BasePath = path
	}
}

func WithStore(store submission.Store) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Store = store
	}
}

func WithViews(views template.TemplateRenderer) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Views = views
	}
}

func WithLookback(lookback time.Duration) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Lookback = lookback
	}
}

func WithClock(now func() time.Time) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Now = now
	}
}

func WithLocation(loc *time.Location) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Location = loc
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithLogger(logger *slog.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}

func WithCSRF(key []byte, secure bool) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.CSRFKey = key
		o.CSRFSecure = secure
	}
}

func normalizeBase(base string) string {
	base = strings.TrimSpace(base)
	if base == "" || base == "/" {
		return "/"
	}
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	return strings.TrimRight(base, "/")
}
