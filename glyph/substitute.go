package glyph

import "github.com/kyokomi/emoji/v2"

// Substituter replaces glyph alias tokens (":rocket:", ":smile:") in a
// string. When useAliases is false the input passes through unchanged;
// alias tokens are the only substitution table the terminal expander
// ships.
type Substituter interface {
	Substitute(text string, useAliases bool) string
}

// Expander is the live Substituter backed by the emoji alias table.
type Expander struct{}

// Substitute expands alias tokens in text.
func (Expander) Substitute(text string, useAliases bool) string {
	if !useAliases {
		return text
	}
	return emoji.Sprint(text)
}

// Identity is the inert Substituter installed when alias expansion is
// unavailable or disabled. It returns its input unchanged.
type Identity struct{}

// Substitute returns text unchanged.
func (Identity) Substitute(text string, _ bool) string { return text }
