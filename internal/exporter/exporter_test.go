package exporter

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lectio/lectio-go/internal/bible"
	"github.com/lectio/lectio-go/internal/config"
)

var sampleVerses = []bible.Verse{
	{Chapter: 2, Verse: 5, Text: "T"},
	{Chapter: 2, Verse: 6, Text: "with, a comma"},
}

func writeAll(t *testing.T, out io.Writer, format config.Format) *VerseWriter {
	t.Helper()
	vw, err := NewVerseWriter(out, format, "John")
	if err != nil {
		t.Fatalf("NewVerseWriter() error = %v", err)
	}
	for _, v := range sampleVerses {
		if err := vw.Write(v); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
	}
	return vw
}

func TestVerseWriterText(t *testing.T) {
	var buf bytes.Buffer
	vw := writeAll(t, &buf, config.FormatText)

	want := "2:5 T\n2:6 with, a comma\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
	if vw.Count() != 2 {
		t.Errorf("Count() = %d, want 2", vw.Count())
	}
}

func TestVerseWriterCSV(t *testing.T) {
	var buf bytes.Buffer
	writeAll(t, &buf, config.FormatCSV)

	want := "book,chapter,verse,text\nJohn,2,5,T\nJohn,2,6,\"with, a comma\"\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestVerseWriterTSV(t *testing.T) {
	var buf bytes.Buffer
	writeAll(t, &buf, config.FormatTSV)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines (header + 2 rows), got %d", len(lines))
	}
	if lines[1] != "John\t2\t5\tT" {
		t.Errorf("row = %q", lines[1])
	}
}

func TestVerseWriterFlushesEachRow(t *testing.T) {
	var buf bytes.Buffer
	vw, err := NewVerseWriter(&buf, config.FormatCSV, "John")
	if err != nil {
		t.Fatalf("NewVerseWriter() error = %v", err)
	}
	if err := vw.Write(sampleVerses[0]); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.HasSuffix(buf.String(), "John,2,5,T\n") {
		t.Errorf("row not flushed: %q", buf.String())
	}
}

func TestVerseWriterRejectsAuto(t *testing.T) {
	if _, err := NewVerseWriter(io.Discard, config.FormatAuto, "John"); err == nil {
		t.Error("Expected error for FormatAuto, got nil")
	}
}

func TestOpenOutputFileStdout(t *testing.T) {
	var buf bytes.Buffer
	w, err := OpenOutputFile("", &buf)
	if err != nil {
		t.Fatalf("OpenOutputFile() error = %v", err)
	}
	io.WriteString(w, "x")
	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if buf.String() != "x" {
		t.Errorf("output = %q, want x", buf.String())
	}
}

func TestOpenOutputFileGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "john.csv.gz")

	w, err := OpenOutputFile(path, io.Discard)
	if err != nil {
		t.Fatalf("OpenOutputFile() error = %v", err)
	}
	writeAll(t, w, config.FormatCSV)
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()
	gz, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("gzip.NewReader() error = %v", err)
	}
	content, err := io.ReadAll(gz)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if !strings.HasPrefix(string(content), "book,chapter,verse,text\n") {
		t.Errorf("unexpected content %q", content)
	}
}

func TestOpenOutputFileBzip2(t *testing.T) {
	path := filepath.Join(t.TempDir(), "john.csv.bz2")
	if _, err := OpenOutputFile(path, io.Discard); err == nil {
		t.Error("Expected error for .bz2 output, got nil")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected rejected output file to be removed")
	}
}
