// Package glyph provides a small table of Unicode glyphs for console
// output (Greek letters, math operators, dingbats) plus alias-token
// substitution for messages.
package glyph

import "sort"

// ---------------------------------------------------------------------------
// Glyph table — stable names, one code point each
// ---------------------------------------------------------------------------

var table = map[string]rune{
	"mu":        'μ',
	"degrees":   '°',
	"micro":     'µ',
	"lambda":    'λ',
	"gamma":     'γ',
	"pi":        'π',
	"Pi":        '∏',
	"tau":       'τ',
	"sigma":     'σ',
	"rho":       'ρ',
	"kappa":     'κ',
	"theta":     'θ',
	"epsilon":   'ε',
	"delta":     'δ',
	"Delta":     'Δ',
	"phi":       'φ',
	"Phi":       'Φ',
	"check":     '✔',
	"x":         '✘',
	"star":      '✯',
	"arrow":     '➛',
	"pm":        '±',
	"gradient":  '∆',
	"nabla":     '∇',
	"in":        '∈',
	"exists":    '∃',
	"forall":    '∀',
	"not_in":    '∉',
	"int":       '∫',
	"grad":      '∂',
	"partial":   '∂',
	"sqrt":      '√',
	"geq":       '≥',
	"leq":       '≤',
	"neq":       '≠',
	"approx":    '≃',
	"infty":     '∞',
	"cdot":      '∙',
	"Sigma":     '∑',
	"sum":       '∑',
	"prod":      '∏',
	"cloud":     '☁',
	"umbrella":  '☂',
	"snowflake": '☀',
	"dollar":    '$',
}

// Lookup returns the glyph registered under name.
func Lookup(name string) (rune, bool) {
	r, ok := table[name]
	return r, ok
}

// Names returns every registered glyph name in ascending order.
func Names() []string {
	names := make([]string, 0, len(table))
	for n := range table {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// All returns a copy of the glyph table. Mutating the copy does not
// affect the table.
func All() map[string]rune {
	out := make(map[string]rune, len(table))
	for n, r := range table {
		out[n] = r
	}
	return out
}
