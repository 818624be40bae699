package database

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// ListStores returns the names of the store files in dir that end with ext,
// with the extension stripped. Names are sorted. A missing dir has no stores.
func ListStores(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read store directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ext))
	}
	return names, nil
}
