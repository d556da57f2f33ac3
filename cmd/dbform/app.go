package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goliatone/go-dbform/internal/config"
	"github.com/goliatone/go-dbform/pkg/store/memory"
	"github.com/goliatone/go-dbform/pkg/store/postgres"
	"github.com/goliatone/go-dbform/pkg/submission"
)

// deps are the collaborators a command tree is built with. Tests swap the
// store openers and prompter.
type deps struct {
	stdout      io.Writer
	stderr      io.Writer
	openStore   func(ctx context.Context, cfg config.StoreConfig) (submission.Store, func(), error)
	openDB      func(ctx context.Context, dsn string) (postgres.DB, func(), error)
	newPrompter func() Prompter
}

func defaultDeps() deps {
	return deps{
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		openStore:   openStore,
		openDB:      openDB,
		newPrompter: newSurveyPrompter,
	}
}

// app carries the loaded configuration and logger into each command.
type app struct {
	deps
	cfg    config.Config
	logger *slog.Logger
}

func openStore(ctx context.Context, cfg config.StoreConfig) (submission.Store, func(), error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, closeDB, err := openDB(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		return postgres.New(db), closeDB, nil
	case config.DriverMemory, "":
		return memory.New(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}

func openDB(ctx context.Context, dsn string) (postgres.DB, func(), error) {
	pool, err := postgres.Connect(ctx, dsn)
	if err != nil {
		return nil, nil, err
	}
	return pool, pool.Close, nil
}

// withStore opens the configured store for the duration of fn.
func (a *app) withStore(ctx context.Context, fn func(submission.Store) error) error {
	store, closeStore, err := a.openStore(ctx, a.cfg.Store)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer closeStore()
	return fn(store)
}
