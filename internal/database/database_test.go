package database_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/lectio/lectio-go/internal/database"
	"github.com/lectio/lectio-go/internal/fixture"
)

func TestOpenReadOnlyMissingStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bibles", "NOPE.sqlite")

	_, err := database.OpenReadOnly(path)
	if !errors.Is(err, database.ErrStoreNotFound) {
		t.Fatalf("OpenReadOnly() error = %v, want ErrStoreNotFound", err)
	}

	// The missing store must not be created as a side effect
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected store file not to be created")
	}
}

func TestOpenReadOnlyDirectory(t *testing.T) {
	if _, err := database.OpenReadOnly(t.TempDir()); err == nil {
		t.Error("Expected error opening a directory, got nil")
	}
}

func TestOpenReadOnlySample(t *testing.T) {
	path, err := fixture.BuildSample(t.TempDir(), "KJV")
	if err != nil {
		t.Fatalf("BuildSample() error = %v", err)
	}

	db, err := database.OpenReadOnly(path)
	if err != nil {
		t.Fatalf("OpenReadOnly() error = %v", err)
	}
	defer db.Close()

	if db.Path != path {
		t.Errorf("Path = %q, want %q", db.Path, path)
	}

	if err := database.CheckSchema(db.DB); err != nil {
		t.Errorf("CheckSchema() error = %v", err)
	}

	// Writes are rejected on a read-only store
	if _, err := db.Exec("DELETE FROM verse"); err == nil {
		t.Error("Expected write to fail on read-only store")
	}
}

func TestCreateWithSubdirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subdir", "nested", "test.sqlite")

	db, err := database.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer db.Close()

	if _, err := db.Exec("CREATE TABLE t (x INTEGER)"); err != nil {
		t.Fatalf("Exec() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected store file to exist: %v", err)
	}
}

func TestGetTableColumns(t *testing.T) {
	path, err := fixture.BuildSample(t.TempDir(), "KJV")
	if err != nil {
		t.Fatalf("BuildSample() error = %v", err)
	}
	db, err := database.OpenReadOnly(path)
	if err != nil {
		t.Fatalf("OpenReadOnly() error = %v", err)
	}
	defer db.Close()

	columns, err := database.GetTableColumns(db.DB, database.VerseTable)
	if err != nil {
		t.Fatalf("GetTableColumns() error = %v", err)
	}
	want := []string{"id", "book_id", "chapter", "verse", "text"}
	if !reflect.DeepEqual(columns, want) {
		t.Errorf("GetTableColumns() = %v, want %v", columns, want)
	}

	columns, err = database.GetTableColumns(db.DB, "missing")
	if err != nil {
		t.Fatalf("GetTableColumns(missing) error = %v", err)
	}
	if len(columns) != 0 {
		t.Errorf("Expected no columns for missing table, got %v", columns)
	}
}

func TestCheckSchemaRejectsForeignLayout(t *testing.T) {
	tests := []struct {
		name  string
		setup []string
	}{
		{
			name:  "no tables",
			setup: nil,
		},
		{
			name: "missing verse table",
			setup: []string{
				"CREATE TABLE book (id INTEGER, name TEXT, book_reference_id INTEGER)",
			},
		},
		{
			name: "missing text column",
			setup: []string{
				"CREATE TABLE book (id INTEGER, name TEXT, book_reference_id INTEGER)",
				"CREATE TABLE verse (book_id INTEGER, chapter INTEGER, verse INTEGER)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, err := database.Create(filepath.Join(t.TempDir(), "foreign.sqlite"))
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			defer db.Close()

			for _, stmt := range tt.setup {
				if _, err := db.Exec(stmt); err != nil {
					t.Fatalf("Exec(%q) error = %v", stmt, err)
				}
			}

			if err := database.CheckSchema(db.DB); err == nil {
				t.Error("Expected CheckSchema() error, got nil")
			}
		})
	}
}

func TestListStores(t *testing.T) {
	dataDir := t.TempDir()
	for _, v := range []string{"KJV", "ASV", "WEB"} {
		if _, err := fixture.BuildSample(dataDir, v); err != nil {
			t.Fatalf("BuildSample(%s) error = %v", v, err)
		}
	}
	storeDir := filepath.Join(dataDir, "bibles")
	if err := os.WriteFile(filepath.Join(storeDir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(storeDir, "dir.sqlite"), 0755); err != nil {
		t.Fatal(err)
	}

	names, err := database.ListStores(storeDir, ".sqlite")
	if err != nil {
		t.Fatalf("ListStores() error = %v", err)
	}
	want := []string{"ASV", "KJV", "WEB"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("ListStores() = %v, want %v", names, want)
	}
}

func TestListStoresMissingDir(t *testing.T) {
	names, err := database.ListStores(filepath.Join(t.TempDir(), "absent"), ".sqlite")
	if err != nil {
		t.Fatalf("ListStores() error = %v", err)
	}
	if len(names) != 0 {
		t.Errorf("Expected no stores, got %v", names)
	}
}
