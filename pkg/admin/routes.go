package admin

import (
	"fmt"
	"net/http"
)

// Mux is the minimal router interface needed to mount the admin surface. It
// is satisfied by chi.Router.
type Mux interface {
	Mount(pattern string, handler http.Handler)
}

// RegisterRoutes mounts the admin handler on mux at basePath and returns the
// mount pattern.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) (string, error) {
	if mux == nil {
		return "", fmt.Errorf("admin: missing mux")
	}
	fns = append(fns, WithBasePath(basePath))
	opts := NewOptions(fns...)

	h, err := HandlerWithOptions(opts)
	if err != nil {
		return "", err
	}
	mux.Mount(opts.BasePath, h)
	return opts.BasePath, nil
}
