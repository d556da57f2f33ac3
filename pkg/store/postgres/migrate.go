package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Direction selects which half of each migration runs.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

const migrationsTableSQL = `CREATE TABLE IF NOT EXISTS dbform_schema_migrations (
    version    text PRIMARY KEY,
    applied_at timestamptz NOT NULL DEFAULT now()
)`

// Migration is one embedded schema step.
type Migration struct {
	Version string
	Up      string
	Down    string
}

// Migrations lists the embedded migrations in version order.
func Migrations() ([]Migration, error) {
	entries, err := fs.ReadDir(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("postgres: read migrations: %w", err)
	}

	byVersion := map[string]*Migration{}
	for _, entry := range entries {
		name := entry.Name()
		version, direction, ok := splitMigrationName(name)
		if !ok {
			continue
		}
		body, err := fs.ReadFile(migrationFiles, "migrations/"+name)
		if err != nil {
			return nil, fmt.Errorf("postgres: read %s: %w", name, err)
		}
		m, exists := byVersion[version]
		if !exists {
			m = &Migration{Version: version}
			byVersion[version] = m
		}
		switch direction {
		case Up:
			m.Up = string(body)
		case Down:
			m.Down = string(body)
		}
	}

	out := make([]Migration, 0, len(byVersion))
	for _, m := range byVersion {
		out = append(out, *m)
	}
	slices.SortFunc(out, func(a, b Migration) int { return strings.Compare(a.Version, b.Version) })
	return out, nil
}

// splitMigrationName parses "001_create_x.up.sql".
func splitMigrationName(name string) (string, Direction, bool) {
	base, ok := strings.CutSuffix(name, ".sql")
	if !ok {
		return "", "", false
	}
	switch {
	case strings.HasSuffix(base, ".up"):
		return strings.TrimSuffix(base, ".up"), Up, true
	case strings.HasSuffix(base, ".down"):
		return strings.TrimSuffix(base, ".down"), Down, true
	}
	return "", "", false
}

// Migrate applies pending migrations (Up) or reverts applied ones in reverse
// order (Down). It returns the versions it touched.
func Migrate(ctx context.Context, db DB, direction Direction) ([]string, error) {
	if direction != Up && direction != Down {
		return nil, fmt.Errorf("postgres: unknown migration direction %q", direction)
	}
	migrations, err := Migrations()
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(ctx, migrationsTableSQL); err != nil {
		return nil, fmt.Errorf("postgres: ensure migrations table: %w", err)
	}
	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return nil, err
	}

	if direction == Down {
		slices.Reverse(migrations)
	}

	var touched []string
	for _, m := range migrations {
		_, done := applied[m.Version]
		if (direction == Up) == done {
			continue
		}
		if err := runMigration(ctx, db, m, direction); err != nil {
			return touched, err
		}
		touched = append(touched, m.Version)
	}
	return touched, nil
}

func appliedVersions(ctx context.Context, db DB) (map[string]struct{}, error) {
	rows, err := db.Query(ctx, `SELECT version FROM dbform_schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("postgres: list migrations: %w", err)
	}
	versions, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("postgres: scan migrations: %w", err)
	}
	out := make(map[string]struct{}, len(versions))
	for _, v := range versions {
		out[v] = struct{}{}
	}
	return out, nil
}

func runMigration(ctx context.Context, db DB, m Migration, direction Direction) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: begin %s: %w", m.Version, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	body, record := m.Up, `INSERT INTO dbform_schema_migrations (version) VALUES ($1)`
	if direction == Down {
		body, record = m.Down, `DELETE FROM dbform_schema_migrations WHERE version = $1`
	}
	if _, err := tx.Exec(ctx, body); err != nil {
		return fmt.Errorf("postgres: migrate %s %s: %w", direction, m.Version, err)
	}
	if _, err := tx.Exec(ctx, record, m.Version); err != nil {
		return fmt.Errorf("postgres: record %s: %w", m.Version, err)
	}
	return tx.Commit(ctx)
}
