// Package fixture builds SQLite stores in the OpenLP bible layout.
// It backs the tests and the fixture generator script; the reader itself
// never writes.
package fixture

import (
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/lectio/lectio-go/internal/database"
)

// BatchSize is the number of verses inserted in a single transaction.
const BatchSize = 10000

// Book is a row of the book table.
type Book struct {
	ID    int64
	Name  string
	Order int // book_reference_id
}

// Verse is a row of the verse table.
type Verse struct {
	BookID  int64
	Chapter int
	Verse   int
	Text    string
}

var schema = []string{
	`DROP TABLE IF EXISTS verse`,
	`DROP TABLE IF EXISTS book`,
	`CREATE TABLE book (
		id INTEGER PRIMARY KEY,
		book_reference_id INTEGER,
		testament_reference_id INTEGER,
		name VARCHAR(50)
	)`,
	`CREATE TABLE verse (
		id INTEGER PRIMARY KEY,
		book_id INTEGER REFERENCES book(id),
		chapter INTEGER,
		verse INTEGER,
		text TEXT
	)`,
}

// Build writes a store at path holding the given books and verses.
// Existing tables are dropped first. Rows are inserted in slice order.
func Build(path string, books []Book, verses []Verse) error {
	db, err := database.Create(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := CreateTables(db.DB); err != nil {
		return err
	}
	if err := InsertBooks(db.DB, books); err != nil {
		return err
	}
	for start := 0; start < len(verses); start += BatchSize {
		end := start + BatchSize
		if end > len(verses) {
			end = len(verses)
		}
		if err := InsertVerses(db.DB, verses[start:end]); err != nil {
			return err
		}
	}
	return nil
}

// BuildVersion writes a store for version under dataDir and returns its path.
func BuildVersion(dataDir, version string, books []Book, verses []Verse) (string, error) {
	path := filepath.Join(dataDir, "bibles", version+".sqlite")
	if err := Build(path, books, verses); err != nil {
		return "", err
	}
	return path, nil
}

// CreateTables creates the book and verse tables, dropping them first.
func CreateTables(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// InsertBooks inserts books within a transaction.
func InsertBooks(db *sql.DB, books []Book) error {
	return insertBatch(db, "INSERT INTO book (id, book_reference_id, testament_reference_id, name) VALUES (?, ?, ?, ?)", len(books), func(i int) []interface{} {
		b := books[i]
		testament := 1
		if b.Order > 39 {
			testament = 2
		}
		return []interface{}{b.ID, b.Order, testament, b.Name}
	})
}

// InsertVerses inserts verses within a transaction.
func InsertVerses(db *sql.DB, verses []Verse) error {
	return insertBatch(db, "INSERT INTO verse (book_id, chapter, verse, text) VALUES (?, ?, ?, ?)", len(verses), func(i int) []interface{} {
		v := verses[i]
		return []interface{}{v.BookID, v.Chapter, v.Verse, v.Text}
	})
}

func insertBatch(db *sql.DB, insertSQL string, n int, values func(int) []interface{}) error {
	if n == 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		if _, err := stmt.Exec(values(i)...); err != nil {
			return fmt.Errorf("failed to insert row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
