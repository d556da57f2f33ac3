package site_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goliatone/go-dbform/pkg/site"
)

func TestMountPath(t *testing.T) {
	tests := map[string]string{
		"":        "/",
		"/":       "/",
		"pages":   "/pages/",
		"/pages/": "/pages/",
	}
	for in, want := range tests {
		if got := site.MountPath(in); got != want {
			t.Fatalf("MountPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRegisterRoutes_ServesUnderBasePath(t *testing.T) {
	mux := http.NewServeMux()
	pattern, err := site.RegisterRoutes(mux, "/pages", site.WithPages(pages()), site.WithLogger(quiet()))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pattern != "/pages/" {
		t.Fatalf("unexpected registered pattern: %q", pattern)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pages/contact/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `action="/pages/contact/"`) {
		t.Fatalf("form action must be the public page URL:\n%s", rec.Body.String())
	}
}

func TestRegisterRoutes_RequiresPages(t *testing.T) {
	if _, err := site.RegisterRoutes(http.NewServeMux(), "/"); err == nil {
		t.Fatalf("expected error without pages")
	}
	if _, err := site.New(site.WithPages(pages())).RegisterRoutes(nil); err == nil {
		t.Fatalf("expected error without mux")
	}
}
