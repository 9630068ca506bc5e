package glyph

import (
	"sort"
	"testing"
)

func TestTableHasExactKeySet(t *testing.T) {
	names := Names()
	if len(names) != 44 {
		t.Fatalf("expected 44 glyph names, got %d", len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Error("Names() should be sorted ascending")
	}
}

func TestLookupKnownGlyphs(t *testing.T) {
	tests := []struct {
		name string
		want rune
	}{
		{"mu", 'μ'},
		{"degrees", '°'},
		{"arrow", '➛'},
		{"check", '✔'},
		{"x", '✘'},
		{"pm", '±'},
		{"nabla", '∇'},
		{"infty", '∞'},
		{"approx", '≃'},
		{"dollar", '$'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := Lookup(tt.name)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.name)
			}
			if r != tt.want {
				t.Errorf("Lookup(%q) = %q, want %q", tt.name, r, tt.want)
			}
		})
	}
}

func TestLookupAliasesShareCodePoints(t *testing.T) {
	pairs := [][2]string{
		{"grad", "partial"},
		{"Sigma", "sum"},
		{"Pi", "prod"},
	}
	for _, p := range pairs {
		a, _ := Lookup(p[0])
		b, _ := Lookup(p[1])
		if a != b {
			t.Errorf("%s and %s should share a code point, got %q and %q", p[0], p[1], a, b)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("definitely-not-a-glyph"); ok {
		t.Error("unknown name should not resolve")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	m := All()
	m["arrow"] = 'Z'
	if r, _ := Lookup("arrow"); r != '➛' {
		t.Error("mutating All() copy must not affect the table")
	}
}

func TestIdentitySubstituter(t *testing.T) {
	in := "deploy :rocket: now"
	if got := (Identity{}).Substitute(in, true); got != in {
		t.Errorf("Identity changed input: %q", got)
	}
}

func TestExpanderPassThroughWithoutAliases(t *testing.T) {
	in := "plain :rocket: text"
	if got := (Expander{}).Substitute(in, false); got != in {
		t.Errorf("Expander with useAliases=false changed input: %q", got)
	}
}

func TestExpanderExpandsAliases(t *testing.T) {
	got := (Expander{}).Substitute("done :heavy_check_mark:", true)
	if got == "done :heavy_check_mark:" {
		t.Error("Expander should replace alias tokens")
	}
}
