// Package bible reads books and verses from an OpenLP bible store.
package bible

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lectio/lectio-go/internal/query"
)

var (
	// ErrBookNotFound is returned when no book has the requested name.
	ErrBookNotFound = errors.New("book not found")
	// ErrVerseNotFound is returned when no verse has the requested coordinates.
	ErrVerseNotFound = errors.New("verse not found")
)

// Book is a named, ordered division of a version.
type Book struct {
	ID    int64
	Name  string
	Order int
}

// Verse is a passage of a book at (Chapter, Verse).
type Verse struct {
	Chapter int
	Verse   int
	Text    string
}

func (v Verse) String() string {
	return fmt.Sprintf("%d:%d %s", v.Chapter, v.Verse, v.Text)
}

// Store runs read-only queries against one version's store.
type Store struct {
	db *sql.DB
}

// NewStore returns a Store reading from db.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Books returns every book in canonical order.
func (s *Store) Books(ctx context.Context) ([]Book, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, book_reference_id FROM book ORDER BY book_reference_id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Name, &b.Order); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}

// BookID resolves a book name by exact, case-sensitive match.
// If the store holds duplicate names the first row returned wins.
func (s *Store) BookID(ctx context.Context, name string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, "SELECT id FROM book WHERE name = ?", name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: %s", ErrBookNotFound, name)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to look up book %s: %w", name, err)
	}
	return id, nil
}

// Verse returns the text at (chapter, verse) of a book.
func (s *Store) Verse(ctx context.Context, bookID int64, chapter, verse int) (string, error) {
	var text string
	err := s.db.QueryRowContext(ctx,
		"SELECT text FROM verse WHERE book_id = ? AND chapter = ? AND verse = ?",
		bookID, chapter, verse,
	).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %d:%d", ErrVerseNotFound, chapter, verse)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read verse %d:%d: %w", chapter, verse, err)
	}
	return text, nil
}

// Passage streams the verses of a book matching f to fn, ordered by
// chapter then verse. Rows are handed over as they are read; an error from
// fn stops the scan and is returned as is.
func (s *Store) Passage(ctx context.Context, bookID int64, f query.Filter, fn func(Verse) error) error {
	where, args := f.SQL()
	stmt := "SELECT chapter, verse, text FROM verse WHERE book_id = ? AND " + where + " ORDER BY chapter, verse"
	args = append([]interface{}{bookID}, args...)

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return fmt.Errorf("failed to query passage: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var v Verse
		if err := rows.Scan(&v.Chapter, &v.Verse, &v.Text); err != nil {
			return fmt.Errorf("failed to scan verse: %w", err)
		}
		if err := fn(v); err != nil {
			return err
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating passage: %w", err)
	}

	return nil
}
