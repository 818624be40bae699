package database

import (
	"database/sql"
	"fmt"
	"strings"
)

// Table and column names of the OpenLP bible store layout.
const (
	BookTable  = "book"
	VerseTable = "verse"
)

// RequiredColumns lists the columns the reader depends on, per table.
var RequiredColumns = map[string][]string{
	BookTable:  {"id", "name", "book_reference_id"},
	VerseTable: {"book_id", "chapter", "verse", "text"},
}

// GetTableColumns returns the column names for a table.
// A table that doesn't exist has no columns.
func GetTableColumns(db *sql.DB, tableName string) ([]string, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", tableName))
	if err != nil {
		return nil, fmt.Errorf("failed to get table info: %w", err)
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull, pk int
		var dfltValue interface{}
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dfltValue, &pk); err != nil {
			return nil, fmt.Errorf("failed to scan column info: %w", err)
		}
		columns = append(columns, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading columns: %w", err)
	}

	return columns, nil
}

// ValidateColumns checks if all specified columns exist in the table.
// Returns an error listing any missing columns.
func ValidateColumns(db *sql.DB, tableName string, columns []string) error {
	tableColumns, err := GetTableColumns(db, tableName)
	if err != nil {
		return err
	}
	if len(tableColumns) == 0 {
		return fmt.Errorf("table '%s' not found", tableName)
	}

	existing := make(map[string]bool)
	for _, col := range tableColumns {
		existing[strings.ToLower(col)] = true
	}

	var missing []string
	for _, col := range columns {
		if !existing[strings.ToLower(col)] {
			missing = append(missing, col)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("columns not found in table '%s': %s", tableName, strings.Join(missing, ", "))
	}

	return nil
}

// CheckSchema verifies that the book and verse tables carry every
// column the reader queries.
func CheckSchema(db *sql.DB) error {
	for _, table := range []string{BookTable, VerseTable} {
		if err := ValidateColumns(db, table, RequiredColumns[table]); err != nil {
			return fmt.Errorf("unsupported store schema: %w", err)
		}
	}
	return nil
}
