// Package database provides SQLite store management for lectio.
//
// The driver is chosen at build time: mattn/go-sqlite3 by default, or the
// pure Go modernc.org/sqlite with -tags purego.
package database

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrStoreNotFound is returned when a version's backing store file does not exist.
var ErrStoreNotFound = errors.New("store not found")

// DB wraps a SQLite database connection with the path it was opened from.
type DB struct {
	*sql.DB
	Path string
}

// DriverName returns the registered database/sql driver name.
func DriverName() string {
	return driverName
}

// DriverType returns "cgo" for mattn/go-sqlite3 and "purego" for modernc.org/sqlite.
func DriverType() string {
	return driverType
}

// OpenReadOnly opens an existing store in read-only mode.
// A missing file yields ErrStoreNotFound and is never created.
func OpenReadOnly(path string) (*DB, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrStoreNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat store %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("store %s is a directory", path)
	}

	db, err := sql.Open(driverName, dsn(path, "ro"))
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open store %s: %w", path, err)
	}

	return &DB{DB: db, Path: path}, nil
}

// Create opens a store for writing, creating the file and its directory
// if they don't exist. Used to build fixture stores.
func Create(path string) (*DB, error) {
	dbDir := filepath.Dir(path)
	if dbDir != "." && dbDir != "" {
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create store directory %s: %w", dbDir, err)
		}
	}

	db, err := sql.Open(driverName, dsn(path, "rwc"))
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	return &DB{DB: db, Path: path}, nil
}

func dsn(path, mode string) string {
	return "file:" + path + "?mode=" + mode
}
