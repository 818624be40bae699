package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/lectio/lectio-go/internal/bible"
	"github.com/lectio/lectio-go/internal/config"
)

// Header is the first row of CSV and TSV output.
var Header = []string{"book", "chapter", "verse", "text"}

// VerseWriter writes verses of one book one at a time. Every row is flushed
// as soon as it is written.
type VerseWriter struct {
	out    io.Writer
	csv    *csv.Writer
	book   string
	format config.Format
	count  int
}

// NewVerseWriter returns a writer for format, which must not be FormatAuto.
// Text rows are "{chapter}:{verse} {text}"; CSV and TSV rows follow Header.
func NewVerseWriter(out io.Writer, format config.Format, book string) (*VerseWriter, error) {
	vw := &VerseWriter{out: out, book: book, format: format}

	switch format {
	case config.FormatText:
	case config.FormatCSV, config.FormatTSV:
		vw.csv = csv.NewWriter(out)
		if format == config.FormatTSV {
			vw.csv.Comma = '\t'
		}
		if err := vw.writeRecord(Header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}

	return vw, nil
}

// Write writes a single verse.
func (vw *VerseWriter) Write(v bible.Verse) error {
	var err error
	if vw.csv == nil {
		_, err = fmt.Fprintln(vw.out, v.String())
	} else {
		err = vw.writeRecord([]string{vw.book, strconv.Itoa(v.Chapter), strconv.Itoa(v.Verse), v.Text})
	}
	if err != nil {
		return fmt.Errorf("failed to write verse %d:%d: %w", v.Chapter, v.Verse, err)
	}
	vw.count++
	return nil
}

// Count returns the number of verses written.
func (vw *VerseWriter) Count() int {
	return vw.count
}

func (vw *VerseWriter) writeRecord(record []string) error {
	if err := vw.csv.Write(record); err != nil {
		return err
	}
	vw.csv.Flush()
	return vw.csv.Error()
}
