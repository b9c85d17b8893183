// Package codec converts the word library to and from its JSON and CSV
// file formats.
package codec

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"

	"spellsheet/internal/domain"
)

var (
	// ErrInvalidFormat is returned when import content cannot be parsed
	ErrInvalidFormat = errors.New("invalid format")

	// ErrUnsupportedFileType is returned for import files that are neither JSON nor CSV
	ErrUnsupportedFileType = errors.New("unsupported file type")
)

// Format is an export file format
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat accepts "json" or "csv" in any case
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFileType, s)
	}
}

// Payload is an export ready for the host to deliver as a file
type Payload struct {
	Filename string
	MIMEType string
	Data     []byte
}

// libraryDoc is the export document shape
type libraryDoc struct {
	Library []domain.Word `json:"library"`
}

// Export encodes words in the given format
func Export(format Format, words []domain.Word) (Payload, error) {
	switch format {
	case FormatJSON:
		data, err := EncodeJSON(words)
		if err != nil {
			return Payload{}, err
		}
		return Payload{Filename: "library.json", MIMEType: "application/json", Data: data}, nil
	case FormatCSV:
		return Payload{Filename: "library.csv", MIMEType: "text/csv", Data: EncodeCSV(words)}, nil
	default:
		return Payload{}, fmt.Errorf("%w: %q", ErrUnsupportedFileType, format)
	}
}

// EncodeJSON renders {"library": [...]} with two-space indentation
func EncodeJSON(words []domain.Word) ([]byte, error) {
	if words == nil {
		words = []domain.Word{}
	}
	data, err := json.MarshalIndent(libraryDoc{Library: words}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode library: %w", err)
	}
	return data, nil
}

// EncodeCSV renders a single "word" column, one row per word
func EncodeCSV(words []domain.Word) []byte {
	lines := make([]string, 0, len(words)+1)
	lines = append(lines, "word")
	for _, w := range words {
		lines = append(lines, EscapeCSV(w.Text))
	}
	return []byte(strings.Join(lines, "\n"))
}

// EscapeCSV quotes s when it contains a comma, quote or newline
func EscapeCSV(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Decode parses import content, choosing the format from the filename extension
func Decode(filename string, data []byte) ([]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return DecodeJSON(data)
	case ".csv":
		return DecodeCSV(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, filename)
	}
}

// DecodeJSON accepts {"library": [...]} or a bare array. Elements may be
// strings or objects with a "text" field; anything else is skipped.
func DecodeJSON(data []byte) ([]string, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	var elems []any
	switch v := raw.(type) {
	case []any:
		elems = v
	case map[string]any:
		lib, ok := v["library"].([]any)
		if !ok {
			return nil, fmt.Errorf("%w: missing library array", ErrInvalidFormat)
		}
		elems = lib
	default:
		return nil, fmt.Errorf("%w: expected object or array", ErrInvalidFormat)
	}

	out := make([]string, 0, len(elems))
	for _, e := range elems {
		switch v := e.(type) {
		case string:
			out = append(out, v)
		case map[string]any:
			if text, ok := v["text"].(string); ok {
				out = append(out, text)
			}
		}
	}
	return out, nil
}

// DecodeCSV returns the first field of every record. When the first line
// contains "word" (any case) it is treated as a header and skipped.
func DecodeCSV(data []byte) ([]string, error) {
	data = bytes.TrimPrefix(data, []byte("\ufeff"))

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	skipHeader := strings.Contains(strings.ToLower(firstLine(data)), "word")

	var out []string
	first := true
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		if first {
			first = false
			if skipHeader {
				continue
			}
		}
		if len(record) == 0 {
			continue
		}
		if text := strings.TrimSpace(record[0]); text != "" {
			out = append(out, text)
		}
	}
	return out, nil
}

// firstLine returns the first non-blank line of data
func firstLine(data []byte) string {
	for line := range strings.Lines(string(data)) {
		if t := strings.TrimSpace(line); t != "" {
			return t
		}
	}
	return ""
}
