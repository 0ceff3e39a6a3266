package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"quiz-master/internal/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// ErrDirty means a previous migration failed halfway. The schema has to be
// repaired by hand before migrating again.
var ErrDirty = errors.New("database is in a dirty migration state")

const createVersionTable = `CREATE TABLE schema_migrations (version NUMBER(19) NOT NULL, dirty NUMBER(1) NOT NULL)`

// OracleMigrator runs embedded scripts statement by statement and records
// progress in schema_migrations, using the same version and dirty semantics
// as golang-migrate. Oracle commits DDL implicitly, so a failed script
// leaves the version marked dirty.
type OracleMigrator struct {
	db   *sqlx.DB
	fsys fs.FS
	dir  string
}

func NewOracleMigrator(db *sqlx.DB, fsys fs.FS, dir string) *OracleMigrator {
	return &OracleMigrator{db: db, fsys: fsys, dir: dir}
}

func (o *OracleMigrator) Up(ctx context.Context) error {
	migs, err := loadMigrations(o.fsys, o.dir)
	if err != nil {
		return err
	}
	current, dirty, err := o.Version(ctx)
	if err != nil {
		return err
	}
	if dirty {
		return fmt.Errorf("version %d: %w", current, ErrDirty)
	}

	for _, m := range migs {
		if m.Version <= current {
			continue
		}
		if err := o.apply(ctx, m.Version, m.Up); err != nil {
			return fmt.Errorf("migration %d_%s failed: %w", m.Version, m.Name, err)
		}
		if err := o.setVersion(ctx, m.Version, false); err != nil {
			return err
		}
		logger.Get().Info("Applied migration", zap.Uint("version", m.Version), zap.String("name", m.Name))
	}
	return nil
}

func (o *OracleMigrator) Down(ctx context.Context, steps int) error {
	migs, err := loadMigrations(o.fsys, o.dir)
	if err != nil {
		return err
	}
	current, dirty, err := o.Version(ctx)
	if err != nil {
		return err
	}
	if dirty {
		return fmt.Errorf("version %d: %w", current, ErrDirty)
	}
	if current == 0 {
		return nil
	}

	idx := -1
	for i, m := range migs {
		if m.Version == current {
			idx = i
		}
	}
	if idx < 0 {
		return fmt.Errorf("applied version %d has no migration files", current)
	}

	for ; steps > 0 && idx >= 0; steps-- {
		m := migs[idx]
		var prev uint
		if idx > 0 {
			prev = migs[idx-1].Version
		}
		if err := o.apply(ctx, m.Version, m.Down); err != nil {
			return fmt.Errorf("rollback of %d_%s failed: %w", m.Version, m.Name, err)
		}
		if err := o.setVersion(ctx, prev, false); err != nil {
			return err
		}
		logger.Get().Info("Rolled back migration", zap.Uint("version", m.Version), zap.String("name", m.Name))
		idx--
	}
	return nil
}

func (o *OracleMigrator) Version(ctx context.Context) (uint, bool, error) {
	if err := o.ensureVersionTable(ctx); err != nil {
		return 0, false, err
	}
	var row struct {
		Version int64 `db:"version"`
		Dirty   int   `db:"dirty"`
	}
	err := o.db.GetContext(ctx, &row, `SELECT version "version", dirty "dirty" FROM schema_migrations`)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read schema version: %w", err)
	}
	return uint(row.Version), row.Dirty == 1, nil
}

func (o *OracleMigrator) Close() error {
	return o.db.Close()
}

// apply marks version dirty, then runs every statement in script.
func (o *OracleMigrator) apply(ctx context.Context, version uint, script string) error {
	if err := o.setVersion(ctx, version, true); err != nil {
		return err
	}
	for _, stmt := range splitStatements(script) {
		if _, err := o.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (o *OracleMigrator) ensureVersionTable(ctx context.Context) error {
	_, err := o.db.ExecContext(ctx, createVersionTable)
	if err != nil && !isAlreadyExists(err) {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}
	return nil
}

func (o *OracleMigrator) setVersion(ctx context.Context, version uint, dirty bool) error {
	if _, err := o.db.ExecContext(ctx, `DELETE FROM schema_migrations`); err != nil {
		return fmt.Errorf("failed to clear schema version: %w", err)
	}
	if version == 0 && !dirty {
		return nil
	}
	d := 0
	if dirty {
		d = 1
	}
	query := o.db.Rebind(`INSERT INTO schema_migrations (version, dirty) VALUES (?, ?)`)
	if _, err := o.db.ExecContext(ctx, query, int64(version), d); err != nil {
		return fmt.Errorf("failed to record schema version %d: %w", version, err)
	}
	return nil
}

// ORA-00955: name is already used by an existing object.
func isAlreadyExists(err error) bool {
	return strings.Contains(err.Error(), "ORA-00955")
}
