package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format selects how passage rows are written.
type Format int

const (
	FormatAuto Format = iota
	FormatText
	FormatCSV
	FormatTSV
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatCSV:
		return "csv"
	case FormatTSV:
		return "tsv"
	default:
		return "auto"
	}
}

// ParseFormat converts a format string to a Format.
// Valid values: "text", "csv", "comma", "tsv", "tab", "auto".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "txt":
		return FormatText, nil
	case "csv", "comma":
		return FormatCSV, nil
	case "tsv", "tab":
		return FormatTSV, nil
	case "auto":
		return FormatAuto, nil
	default:
		return FormatAuto, fmt.Errorf("invalid format: %s (use 'text', 'csv', 'tsv', or 'auto')", s)
	}
}

// DetectFormat picks a format from the output file extension.
// Compression extensions are stripped first; anything that is not
// .csv or .tsv is written as text.
func DetectFormat(filePath string) Format {
	path := filePath
	for {
		ext := strings.ToLower(filepath.Ext(path))
		if ext == ".gz" {
			path = strings.TrimSuffix(path, filepath.Ext(path))
			continue
		}
		break
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".tsv":
		return FormatTSV
	default:
		return FormatText
	}
}

// Resolve returns the concrete format for the given output path.
func (f Format) Resolve(outputFile string) Format {
	if f != FormatAuto {
		return f
	}
	return DetectFormat(outputFile)
}
