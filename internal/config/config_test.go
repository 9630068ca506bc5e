package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// point at a file that does not exist so only defaults apply
	t.Setenv("BENCHKIT_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Push.Token != "" || cfg.Push.UserKey != "" {
		t.Errorf("push credentials should default empty, got %+v", cfg.Push)
	}
	if !cfg.Glyph.Emoji {
		t.Error("glyph.emoji should default true")
	}
	if cfg.Style.Theme != "dark" {
		t.Errorf("style.theme = %q, want dark", cfg.Style.Theme)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[push]
token = "app-token"
user_key = "user-key"

[glyph]
emoji = false

[style]
theme = "light"
font = "Fira Code"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BENCHKIT_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Push.Token != "app-token" || cfg.Push.UserKey != "user-key" {
		t.Errorf("push = %+v", cfg.Push)
	}
	if cfg.Glyph.Emoji {
		t.Error("glyph.emoji should be false")
	}
	if cfg.Style.Theme != "light" || cfg.Style.Font != "Fira Code" {
		t.Errorf("style = %+v", cfg.Style)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	t.Setenv("BENCHKIT_CONFIG", path)

	in := Config{
		Push:  PushConfig{Token: "tok", UserKey: "usr"},
		Glyph: GlyphConfig{Emoji: true},
		Style: StyleConfig{Theme: "light", Font: "Arial"},
	}
	if err := Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out != in {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", out, in)
	}
}
