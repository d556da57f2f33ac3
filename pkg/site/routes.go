package site

import (
	"fmt"
	"net/http"
	"strings"
)

// Mux is the minimal interface required to register a net/http handler.
// It is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// MountPath returns the subtree pattern pages are served under.
func MountPath(basePath string) string {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" || basePath == "/" {
		return "/"
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	return strings.TrimRight(basePath, "/") + "/"
}

// RegisterRoutes registers the page handler for the basePath subtree on mux.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) (string, error) {
	opts := NewOptions(append(fns, WithBasePath(basePath))...)
	return RegisterRoutesWithOptions(mux, opts)
}

// RegisterRoutesWithOptions registers a handler using a pre-built Options
// value; opts.BasePath selects the subtree.
func RegisterRoutesWithOptions(mux Mux, opts Options) (string, error) {
	if mux == nil {
		return "", fmt.Errorf("site: missing mux")
	}
	if opts.Pages == nil {
		return "", fmt.Errorf("site: missing pages")
	}
	opts = NewOptions(func(o *Options) { *o = opts })
	pattern := MountPath(opts.BasePath)
	mux.Handle(pattern, HandlerWithOptions(opts))
	return pattern, nil
}
