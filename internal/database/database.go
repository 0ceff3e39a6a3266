// Package database opens the sqlx handle for the configured driver and runs
// schema migrations against it.
package database

import (
	"context"
	"fmt"
	"time"

	"quiz-master/internal/config"
	"quiz-master/internal/logger"

	_ "github.com/jackc/pgx/v4/stdlib" // registers "pgx"
	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // registers "oracle"
	"go.uber.org/zap"
)

func init() {
	// sqlx does not know go-ora's driver name. Repositories write "?"
	// placeholders and Rebind them to :name for Oracle.
	sqlx.BindDriver("oracle", sqlx.NAMED)
}

// DriverName maps a configured driver to its database/sql driver name.
func DriverName(driver string) (string, error) {
	switch driver {
	case config.DriverOracle:
		return "oracle", nil
	case config.DriverPostgres:
		return "pgx", nil
	}
	return "", fmt.Errorf("unsupported db driver %q", driver)
}

// Connect opens a pooled connection and pings it before returning.
func Connect(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	driverName, err := DriverName(cfg.DB.Driver)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driverName, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.DB.Driver, err)
	}

	if cfg.DB.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	}
	if cfg.DB.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	}
	if cfg.DB.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", cfg.DB.Driver, err)
	}

	logger.Get().Info("Connected to database",
		zap.String("driver", cfg.DB.Driver),
		zap.String("host", cfg.DB.Host),
		zap.Int("port", cfg.DB.Port),
		zap.String("name", cfg.DB.DBName),
	)
	return db, nil
}
