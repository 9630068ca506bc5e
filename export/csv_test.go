package export

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return strings.Split(strings.TrimSuffix(string(raw), "\n"), "\n")
}

func TestCSVWithHeaders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	data := [][]float64{{1, 2, 3}, {4, 5, 6}}

	if err := CSV(path, data, []string{"a", "b", "c"}, ""); err != nil {
		t.Fatalf("CSV: %v", err)
	}

	lines := readLines(t, path)
	if lines[0] != "a,b,c" {
		t.Errorf("header line = %q, want %q", lines[0], "a,b,c")
	}
	if got := len(lines) - 1; got != len(data) {
		t.Errorf("data rows = %d, want %d", got, len(data))
	}
	if lines[1] != "1,2,3" {
		t.Errorf("first row = %q, want %q", lines[1], "1,2,3")
	}
}

func TestCSVWithoutHeaders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := CSV(path, [][]float64{{1.5, 2.5}}, nil, ""); err != nil {
		t.Fatalf("CSV: %v", err)
	}
	lines := readLines(t, path)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %v", len(lines), lines)
	}
	if lines[0] != "1.5,2.5" {
		t.Errorf("row = %q, want %q", lines[0], "1.5,2.5")
	}
}

func TestCSVAppendsSuffix(t *testing.T) {
	base := filepath.Join(t.TempDir(), "results")
	if err := CSV(base, [][]float64{{1}}, nil, ""); err != nil {
		t.Fatalf("CSV: %v", err)
	}
	if _, err := os.Stat(base + ".csv"); err != nil {
		t.Errorf("expected %s.csv to exist: %v", base, err)
	}
}

func TestCSVCustomFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fmt.csv")
	if err := CSV(path, [][]float64{{1.23456, 2}}, nil, "%.2f"); err != nil {
		t.Fatalf("CSV: %v", err)
	}
	if lines := readLines(t, path); lines[0] != "1.23,2.00" {
		t.Errorf("row = %q, want %q", lines[0], "1.23,2.00")
	}
}

func TestCSVHeaderMismatchWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	err := CSV(path, [][]float64{{1, 2}}, []string{"only-one"}, "")
	if !errors.Is(err, ErrHeaderMismatch) {
		t.Fatalf("err = %v, want ErrHeaderMismatch", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("target file must not be created on validation failure")
	}
}

func TestCSVInvalidShape(t *testing.T) {
	tests := []struct {
		name string
		data [][]float64
	}{
		{"nil data", nil},
		{"ragged rows", [][]float64{{1, 2}, {3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.csv")
			err := CSV(path, tt.data, nil, "")
			if !errors.Is(err, ErrInvalidShape) {
				t.Fatalf("err = %v, want ErrInvalidShape", err)
			}
			if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
				t.Error("target file must not be created on validation failure")
			}
		})
	}
}

func TestCSVEmptyMatrix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := CSV(path, [][]float64{}, nil, ""); err != nil {
		t.Fatalf("CSV on empty matrix: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(raw) != 0 {
		t.Errorf("expected empty file, got %q", raw)
	}
}
