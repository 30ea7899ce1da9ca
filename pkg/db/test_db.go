package db

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/hashicorp/go-hclog"
)

// NewTestDataStore creates a migrated database in a temp file that is removed
// when the test finishes.
func NewTestDataStore(t *testing.T) (DataStore, *sql.DB) {
	t.Helper()

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "db-test",
		Level: hclog.LevelFromString("DEBUG"),
	})

	tempFile, err := os.CreateTemp("", "test-db")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	_ = tempFile.Close()

	sqliteDb := NewSqliteDbConnection(logger, tempFile.Name())
	if err := sqliteDb.RunMigration(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test db: %v", err)
	}

	conn, err := sqliteDb.OpenConnection()
	if err != nil {
		t.Fatalf("Failed to open test db: %v", err)
	}

	t.Cleanup(func() {
		_ = sqliteDb.Close()
		_ = os.Remove(tempFile.Name())
	})

	return sqliteDb, conn
}
