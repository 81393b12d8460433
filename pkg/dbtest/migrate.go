package dbtest

import (
	"fmt"
	"os"
	"testing"

	"github.com/jmoiron/sqlx"
)

// MigrateFromFile executes all SQL queries from the files over a database
// connection.
func MigrateFromFile(db *sqlx.DB, fileNames ...string) error {
	for _, fileName := range fileNames {
		fileBytes, err := os.ReadFile(fileName)
		if err != nil {
			return fmt.Errorf("os.ReadFile: %w", err)
		}

		if _, err = db.Exec(string(fileBytes)); err != nil {
			return fmt.Errorf("db.Exec(%s): %w", fileName, err)
		}
	}

	return nil
}

// Open connects to the database named by the dsnEnv environment variable and
// applies the migrations. The test is skipped when the variable is empty.
func Open(t *testing.T, driver, dsnEnv string, fileNames ...string) *sqlx.DB {
	t.Helper()

	dsn := os.Getenv(dsnEnv)
	if dsn == "" {
		t.Skipf("%s not set; skipping %s tests", dsnEnv, driver)
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		t.Fatalf("sqlx.Connect: %v", err)
	}

	t.Cleanup(func() { db.Close() })

	if err = MigrateFromFile(db, fileNames...); err != nil {
		t.Fatalf("MigrateFromFile: %v", err)
	}

	return db
}
