package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// InMemory is the path that opens a private in-memory database.
const InMemory = ":memory:"

// pragmas are applied to every connection opened by OpenDB. busy_timeout
// and foreign_keys are per connection, so file databases carry them in the
// DSN where the driver runs them on each new connection.
var pragmas = []struct {
	name  string
	value string
}{
	// WAL lets the HTTP server read the query log while the shell writes it
	{"journal_mode", "WAL"},
	{"foreign_keys", "1"},
	{"busy_timeout", "5000"},
}

// dsn builds the driver data source name for path.
func dsn(path string) string {
	if path == InMemory {
		return path
	}
	params := make([]string, 0, len(pragmas))
	for _, p := range pragmas {
		params = append(params, "_pragma="+p.name+"("+p.value+")")
	}
	return "file:" + path + "?" + strings.Join(params, "&")
}

// OpenDB opens the query log database at path, creating its directory when
// needed, and runs migrations. Use InMemory for a throwaway database.
func OpenDB(path string) (*sql.DB, error) {
	if path != InMemory {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if path == InMemory {
		// Each new connection to :memory: would see an empty database, so
		// the single connection also keeps the pragmas below.
		db.SetMaxOpenConns(1)
		for _, p := range pragmas {
			if _, err := db.Exec("PRAGMA " + p.name + " = " + p.value); err != nil {
				db.Close()
				return nil, fmt.Errorf("setting %s: %w", p.name, err)
			}
		}
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}
