package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
)

// driverName is the go-sqlite3 driver with the catalog's SQL functions registered.
const driverName = "sqlite3_scripturesketch"

func init() {
	sql.Register(driverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			// fold lower-cases with Go's Unicode rules; SQLite's lower() is ASCII only.
			return conn.RegisterFunc("fold", strings.ToLower, true)
		},
	})
}

// New opens a SQLite database connection at the given path.
// It enables foreign keys, sets a busy timeout and sets connection pool settings.
func New(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=1", path)
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, err
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate runs database migrations to create the required tables.
// It is idempotent and can be run multiple times safely.
func Migrate(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS sketches (
			id TEXT PRIMARY KEY,
			creation_date INTEGER NOT NULL,
			book_name TEXT NOT NULL,
			chapter INTEGER NOT NULL CHECK (chapter >= 1),
			verse INTEGER NOT NULL CHECK (verse >= 1),
			book_order INTEGER NOT NULL,
			center_word TEXT NOT NULL,
			text_position TEXT NOT NULL DEFAULT 'below',
			drawing_data BLOB,
			image_data BLOB,
			image_data_dark BLOB,
			shared_drawing_id TEXT
		);`,
		`CREATE INDEX IF NOT EXISTS idx_sketches_shared_drawing_id ON sketches(shared_drawing_id);`,
		`CREATE INDEX IF NOT EXISTS idx_sketches_center_word ON sketches(center_word);`,
		`CREATE INDEX IF NOT EXISTS idx_sketches_reference ON sketches(book_order, chapter, verse);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
