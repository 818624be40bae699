// Package exporter writes passages as text, CSV or TSV to stdout or a file.
package exporter

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// OpenOutputFile opens an output file, handling compression automatically based on extension.
// If filePath is empty, returns stdout wrapped so that closing it is a no-op.
func OpenOutputFile(filePath string, stdout io.Writer) (io.WriteCloser, error) {
	if filePath == "" {
		return nopCloser{stdout}, nil
	}

	dir := filepath.Dir(filePath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	file, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".gz":
		return &gzipWriter{file: file, writer: gzip.NewWriter(file)}, nil
	case ".bz2":
		file.Close()
		os.Remove(filePath)
		return nil, fmt.Errorf("bzip2 output compression not supported, use .gz instead")
	default:
		return file, nil
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// gzipWriter wraps gzip writer and file to close both properly.
type gzipWriter struct {
	file   *os.File
	writer *gzip.Writer
}

func (g *gzipWriter) Write(p []byte) (int, error) {
	return g.writer.Write(p)
}

func (g *gzipWriter) Close() error {
	if err := g.writer.Close(); err != nil {
		g.file.Close()
		return err
	}
	return g.file.Close()
}
