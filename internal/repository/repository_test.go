package repository

import (
	"os"
	"testing"

	"quiz-master/internal/config"
	"quiz-master/internal/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Env: "test", Level: "error"}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// setupTestDB returns an sqlx handle over sqlmock. The "sqlmock" driver name
// has no registered bind type, so "?" placeholders pass through unchanged.
func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	db := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { db.Close() })
	return db, mock
}
