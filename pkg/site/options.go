package site

import (
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/goliatone/go-dbform/pkg/submission"
	"github.com/goliatone/go-dbform/pkg/tags"
)

const (
	DefaultExtension = ".html"
	DefaultIndexPage = "index"

	// CacheControl is sent with every page response.
	CacheControl = "no-cache, no-store, must-revalidate"
)

type GuardFunc func(r *http.Request) error

type Options struct {
	BasePath string
	Pages    fs.FS
	// Extension is appended to the request path to find the page file.
	Extension string
	IndexPage string

	Renderer *tags.Renderer
	// Capturer handles form posts. Posts are rejected with 405 when nil.
	Capturer *submission.Capturer
	// MaxUploadBytes caps the size of a posted body. Larger posts get 413.
	MaxUploadBytes int64

	Guard  GuardFunc
	Logger *slog.Logger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		BasePath:       "/",
		Extension:      DefaultExtension,
		IndexPage:      DefaultIndexPage,
		MaxUploadBytes: submission.DefaultMaxMemory,
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
	if opts.BasePath = strings.TrimSpace(opts.BasePath); opts.BasePath == "" {
		opts.BasePath = "/"
	}
	if opts.Extension == "" {
		opts.Extension = DefaultExtension
	}
	if !strings.HasPrefix(opts.Extension, ".") {
		opts.Extension = "." + opts.Extension
	}
	if opts.IndexPage == "" {
		opts.IndexPage = DefaultIndexPage
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = submission.DefaultMaxMemory
	}
	if opts.Renderer == nil {
		opts.Renderer = tags.New()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
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

func WithPages(pages fs.FS) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Pages = pages
	}
}

func WithExtension(ext string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Extension = strings.TrimSpace(ext)
	}
}

func WithIndexPage(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.IndexPage = strings.TrimSpace(name)
	}
}

func WithRenderer(renderer *tags.Renderer) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Renderer = renderer
	}
}

func WithCapturer(capturer *submission.Capturer) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Capturer = capturer
	}
}

func WithMaxUploadBytes(limit int64) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxUploadBytes = limit
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
