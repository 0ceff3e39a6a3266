package database

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"quiz-master/database/migrations"
	"quiz-master/internal/config"
	"quiz-master/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Migrator applies the embedded schema. Close releases the underlying
// database handle.
type Migrator interface {
	Up(ctx context.Context) error
	// Down rolls back the given number of applied versions.
	Down(ctx context.Context, steps int) error
	// Version reports the current version. Zero means nothing is applied.
	Version(ctx context.Context) (version uint, dirty bool, err error)
	Close() error
}

// NewMigrator picks the migration strategy for the configured driver.
func NewMigrator(db *sqlx.DB, driver string) (Migrator, error) {
	switch driver {
	case config.DriverPostgres:
		return newPostgresMigrator(db)
	case config.DriverOracle:
		return NewOracleMigrator(db, migrations.Oracle, "oracle"), nil
	}
	return nil, fmt.Errorf("unsupported db driver %q", driver)
}

type postgresMigrator struct {
	m *migrate.Migrate
}

func newPostgresMigrator(db *sqlx.DB) (*postgresMigrator, error) {
	src, err := iofs.New(migrations.Postgres, "postgres")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	drv, err := migratepgx.WithInstance(db.DB, &migratepgx.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "pgx", drv)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	m.Log = migrateLogger{log: logger.Get().Sugar()}
	return &postgresMigrator{m: m}, nil
}

func (p *postgresMigrator) Up(ctx context.Context) error {
	if err := p.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

func (p *postgresMigrator) Down(ctx context.Context, steps int) error {
	if steps <= 0 {
		return nil
	}
	if err := p.m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}

func (p *postgresMigrator) Version(ctx context.Context) (uint, bool, error) {
	v, dirty, err := p.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}

func (p *postgresMigrator) Close() error {
	srcErr, dbErr := p.m.Close()
	return errors.Join(srcErr, dbErr)
}

type migrateLogger struct {
	log *zap.SugaredLogger
}

func (l migrateLogger) Printf(format string, v ...interface{}) {
	l.log.Infof(strings.TrimSuffix(format, "\n"), v...)
}

func (l migrateLogger) Verbose() bool { return false }

// migration is one versioned pair of embedded scripts.
type migration struct {
	Version uint
	Name    string
	Up      string
	Down    string
}

var migrationFile = regexp.MustCompile(`^(\d+)_(.+)\.(up|down)\.sql$`)

// loadMigrations reads NNNNNN_name.{up,down}.sql files from dir, ordered by
// version.
func loadMigrations(fsys fs.FS, dir string) ([]migration, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("could not read migrations directory: %w", err)
	}

	byVersion := map[uint]*migration{}
	for _, entry := range entries {
		match := migrationFile.FindStringSubmatch(entry.Name())
		if entry.IsDir() || match == nil {
			continue
		}
		v, err := strconv.ParseUint(match[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad migration version in %s: %w", entry.Name(), err)
		}
		content, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("could not read migration file %s: %w", entry.Name(), err)
		}

		m, ok := byVersion[uint(v)]
		if !ok {
			m = &migration{Version: uint(v), Name: match[2]}
			byVersion[uint(v)] = m
		}
		if match[3] == "up" {
			m.Up = string(content)
		} else {
			m.Down = string(content)
		}
	}

	out := make([]migration, 0, len(byVersion))
	for _, m := range byVersion {
		if m.Up == "" {
			return nil, fmt.Errorf("migration %d_%s has no up script", m.Version, m.Name)
		}
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out, nil
}

// splitStatements splits a script on semicolons. The embedded scripts hold
// plain DDL only, no PL/SQL blocks.
func splitStatements(script string) []string {
	var stmts []string
	for _, part := range strings.Split(script, ";") {
		if s := strings.TrimSpace(part); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
