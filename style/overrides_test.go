package style

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeOverrides(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "style.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write overrides: %v", err)
	}
	return path
}

func TestLoadOverridesApplies(t *testing.T) {
	s, engine := newTestSheet()
	path := writeOverrides(t, `
[params]
"lines.linewidth" = 2.0
"axes.grid" = true
"text.color" = "#ff0000"
`)
	before := len(engine.applied)

	if err := s.LoadOverrides(path); err != nil {
		t.Fatalf("LoadOverrides: %v", err)
	}
	if got := len(engine.applied) - before; got != 1 {
		t.Errorf("overrides pushed %d batches, want 1", got)
	}
	if v, _ := s.Get("lines.linewidth"); v != 2.0 {
		t.Errorf("lines.linewidth = %v, want 2.0", v)
	}
	if v, _ := s.Get("axes.grid"); v != true {
		t.Errorf("axes.grid = %v, want true", v)
	}
}

func TestLoadOverridesRejectsUnknownParam(t *testing.T) {
	s, engine := newTestSheet()
	path := writeOverrides(t, `
[params]
"lines.linewidth" = 2.0
"no.such.param" = 1
`)
	before := len(engine.applied)

	err := s.LoadOverrides(path)
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("err = %v, want ErrInvalidConfiguration", err)
	}
	if len(engine.applied) != before {
		t.Error("nothing may be applied when any key is unknown")
	}
	if v, _ := s.Get("lines.linewidth"); v != 1.5 {
		t.Errorf("lines.linewidth = %v, must remain baseline 1.5", v)
	}
}

func TestLoadOverridesMissingFile(t *testing.T) {
	s, _ := newTestSheet()
	if err := s.LoadOverrides(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
