// Package export serializes numeric results for files and humans: CSV
// export of 2-D data and percentage formatting.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	// ErrInvalidShape marks data that is not a rectangular 2-D matrix.
	ErrInvalidShape = errors.New("invalid shape")
	// ErrHeaderMismatch marks a header row whose length differs from the
	// data's column count.
	ErrHeaderMismatch = errors.New("header mismatch")
)

// CSV writes data to filename as comma-delimited text. A ".csv" suffix
// is appended when missing. headers, if non-nil, must have one entry per
// column and becomes the first line, joined verbatim with commas. Each
// value is rendered with format ("%g" when empty). All validation runs
// before the file is created; on error nothing is written.
func CSV(filename string, data [][]float64, headers []string, format string) error {
	if data == nil {
		return fmt.Errorf("data must be a matrix: %w", ErrInvalidShape)
	}
	cols := 0
	if len(data) > 0 {
		cols = len(data[0])
	}
	for i, row := range data {
		if len(row) != cols {
			return fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), cols, ErrInvalidShape)
		}
	}
	if headers != nil && len(headers) != cols {
		return fmt.Errorf("%d headers for %d columns: %w", len(headers), cols, ErrHeaderMismatch)
	}

	if format == "" {
		format = "%g"
	}
	if !strings.HasSuffix(filename, ".csv") {
		filename += ".csv"
	}

	var buf bytes.Buffer
	if headers != nil {
		buf.WriteString(strings.Join(headers, ","))
		buf.WriteByte('\n')
	}
	for _, row := range data {
		for j, v := range row {
			if j > 0 {
				buf.WriteByte(',')
			}
			fmt.Fprintf(&buf, format, v)
		}
		buf.WriteByte('\n')
	}

	if err := os.WriteFile(filename, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}
