package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-dbform/pkg/admin"
	"github.com/goliatone/go-dbform/pkg/site"
	"github.com/goliatone/go-dbform/pkg/submission"
	"github.com/goliatone/go-dbform/pkg/tags"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve pages with form capture and the admin export surface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				a.cfg.Server.Addr = addr
			}
			return a.withStore(cmd.Context(), func(store submission.Store) error {
				handler, err := a.router(store)
				if err != nil {
					return err
				}
				listener, err := net.Listen("tcp", a.cfg.Server.Addr)
				if err != nil {
					return fmt.Errorf("listen: %w", err)
				}
				return a.serve(cmd.Context(), listener, handler)
			})
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}

// router mounts the admin surface at its base path and the page host at the
// site base path.
func (a *app) router(store submission.Store) (http.Handler, error) {
	info, err := os.Stat(a.cfg.Site.PagesDir)
	if err != nil {
		return nil, fmt.Errorf("pages directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("pages directory: %s is not a directory", a.cfg.Site.PagesDir)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	adminFns := []admin.OptionFn{
		admin.WithStore(store),
		admin.WithLookback(a.cfg.Admin.Lookback),
		admin.WithLogger(a.logger),
	}
	if key := a.cfg.Admin.CSRFKey; key != "" {
		adminFns = append(adminFns, admin.WithCSRF([]byte(key), a.cfg.Admin.CSRFSecure))
	}
	if _, err := admin.RegisterRoutes(r, a.cfg.Admin.BasePath, adminFns...); err != nil {
		return nil, err
	}

	pages := site.NewHandler(
		site.WithBasePath(a.cfg.Site.BasePath),
		site.WithPages(os.DirFS(a.cfg.Site.PagesDir)),
		site.WithRenderer(tags.New(tags.WithValidationScript(a.cfg.Site.ValidationScript))),
		site.WithCapturer(submission.NewCapturer(store, submission.WithLogger(a.logger))),
		site.WithMaxUploadBytes(a.cfg.Site.MaxUploadBytes),
		site.WithLogger(a.logger),
	)
	mount := strings.TrimRight(site.MountPath(a.cfg.Site.BasePath), "/")
	if mount == "" {
		mount = "/"
	}
	r.Mount(mount, pages)
	return r, nil
}

// serve runs handler on listener until ctx is cancelled, then drains
// in-flight requests.
func (a *app) serve(ctx context.Context, listener net.Listener, handler http.Handler) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("server listening",
			"addr", listener.Addr().String(),
			"admin", a.cfg.Admin.BasePath,
			"pages", a.cfg.Site.PagesDir,
		)
		if err := srv.Serve(listener); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}
