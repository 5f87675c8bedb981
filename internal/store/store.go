// Package store keeps participant results and the AI request log in a
// local SQLite file.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/aureus/cardiosim/ent"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Pragmas every pooled connection starts with. WAL lets `cardiosim
// results list` read while a session is writing.
var pragmas = []string{
	"journal_mode(WAL)",
	"busy_timeout(5000)",
	"foreign_keys(1)",
	"synchronous(NORMAL)",
}

// Store holds the ent client and provides access to repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
}

// Open opens or creates the database file at path and runs auto-migration.
// The pragmas ride on the DSN so each new pool connection gets them.
func Open(path string) (*Store, error) {
	q := url.Values{"_pragma": pragmas}
	db, err := sql.Open("sqlite", "file:"+path+"?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate %s: %w", path, err)
	}
	return &Store{db: db, client: client}, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client { return s.client }

// DB exposes the connection pool for ad-hoc queries.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Close() error { return s.client.Close() }

func (s *Store) EventRepo() EventRepo { return &eventRepo{client: s.client} }

func (s *Store) ResultRepo() ResultRepo { return &resultRepo{client: s.client} }

// DefaultDBPath is $CARDIOSIM_DB if set, otherwise cardiosim.db under the
// XDG data directory. The parent directory is created.
func DefaultDBPath() (string, error) {
	p := os.Getenv("CARDIOSIM_DB")
	if p == "" {
		data := os.Getenv("XDG_DATA_HOME")
		if data == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("locate data dir: %w", err)
			}
			data = filepath.Join(home, ".local", "share")
		}
		p = filepath.Join(data, "cardiosim", "cardiosim.db")
	}
	return p, EnsureDir(p)
}

// EnsureDir creates the directory that will hold path.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
