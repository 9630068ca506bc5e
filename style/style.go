// Package style owns the process-wide plot rendering configuration:
// opinionated baseline defaults, light/dark presets, and validated font
// selection, all pushed to a pluggable rendering engine.
package style

import (
	"errors"
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/lipgloss"
)

// ErrInvalidConfiguration marks a rejected configuration change, such as
// selecting a font the engine does not have.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// maxFontSuggestionDistance bounds "did you mean" hints on unknown fonts.
const maxFontSuggestionDistance = 3

// Sheet is the set of named rendering parameters controlling plot
// appearance. A Sheet is bound to one Engine; every mutation is a single
// atomic update pushed through ApplyConfig. Parameters are never removed,
// only changed.
type Sheet struct {
	engine Engine
	params map[string]any
}

// NewSheet binds a Sheet to engine and applies the baseline defaults
// before any preset.
func NewSheet(engine Engine) *Sheet {
	s := &Sheet{engine: engine, params: make(map[string]any, 64)}
	s.apply(baseline())
	return s
}

// baseline returns the fixed opinionated defaults applied exactly once at
// construction.
func baseline() map[string]any {
	return map[string]any{
		"lines.linewidth":       1.5,
		"lines.linestyle":       "-",
		"lines.marker":          "",
		"lines.markeredgewidth": 0.0,
		"lines.markersize":      6.0,
		"lines.antialiased":     true,
		"lines.solid_joinstyle": "round",
		"lines.solid_capstyle":  "round",

		"patch.linewidth":   1.0,
		"patch.facecolor":   "#cccccc",
		"patch.edgecolor":   "none",
		"patch.antialiased": true,

		"font.size":        12.0,
		"text.usetex":      false,
		"mathtext.default": "regular",

		"axes.linewidth":              1.0,
		"axes.grid":                   false,
		"axes.titlesize":              12.0,
		"axes.labelsize":              12.0,
		"axes.labelweight":            "normal",
		"axes.axisbelow":              true,
		"axes.formatter.use_mathtext": false,
		"axes.xmargin":                0.0,
		"axes.ymargin":                0.0,
		"polaraxes.grid":              true,

		"xtick.direction":   "out",
		"xtick.labelsize":   12.0,
		"xtick.major.size":  4.0,
		"xtick.minor.size":  2.0,
		"xtick.major.width": 1.0,
		"xtick.minor.width": 1.0,

		"ytick.direction":   "out",
		"ytick.labelsize":   12.0,
		"ytick.major.size":  4.0,
		"ytick.minor.size":  2.0,
		"ytick.major.width": 1.0,
		"ytick.minor.width": 1.0,

		"grid.linestyle": "dotted",
		"grid.alpha":     0.5,
		"grid.linewidth": 1.0,

		"legend.frameon":  false,
		"legend.fancybox": true,
		"legend.fontsize": 10.0,
		"legend.loc":      "best",

		"figure.figsize":    []float64{5, 3},
		"figure.dpi":        100.0,
		"figure.autolayout": true,

		"image.cmap":          "viridis",
		"image.interpolation": "",
		"image.aspect":        "equal",

		"savefig.format":     "pdf",
		"savefig.bbox":       "tight",
		"savefig.pad_inches": 0.1,
		"pdf.fonttype":       42.0,
	}
}

// apply merges m into the sheet and forwards it to the engine as one
// update.
func (s *Sheet) apply(m map[string]any) {
	for k, v := range m {
		s.params[k] = v
	}
	s.engine.ApplyConfig(m)
}

// Get returns the current value of a parameter.
func (s *Sheet) Get(key string) (any, bool) {
	v, ok := s.params[key]
	return v, ok
}

// Keys returns every parameter name in ascending order.
func (s *Sheet) Keys() []string {
	keys := make([]string, 0, len(s.params))
	for k := range s.params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SetColors sets the background/foreground colorscheme in one update.
func (s *Sheet) SetColors(bg, fg, text lipgloss.Color) {
	s.apply(map[string]any{
		"figure.facecolor":  string(bg),
		"figure.edgecolor":  string(bg),
		"axes.facecolor":    string(bg),
		"savefig.facecolor": string(bg),
		"savefig.edgecolor": string(bg),

		"axes.edgecolor":   string(fg),
		"axes.labelcolor":  string(fg),
		"xtick.color":      string(fg),
		"ytick.color":      string(fg),
		"legend.edgecolor": string(fg),

		"grid.color": string(fg),
		"text.color": string(text),
	})
}

// colorParams are the keys SetColors owns. Presets always write all of
// them, so switching modes leaves no residue.
var colorParams = []string{
	"figure.facecolor", "figure.edgecolor", "axes.facecolor",
	"savefig.facecolor", "savefig.edgecolor",
	"axes.edgecolor", "axes.labelcolor", "xtick.color", "ytick.color",
	"legend.edgecolor", "grid.color", "text.color",
}

// knownParam reports whether name is a recognized style parameter.
func knownParam(name string) bool {
	if _, ok := baseline()[name]; ok {
		return true
	}
	for _, k := range colorParams {
		if k == name {
			return true
		}
	}
	return name == "axes.prop_cycle" || name == "font.family"
}

// LightMode sets figure colors to dark text on a light background.
func (s *Sheet) LightMode() {
	s.SetColors(latteBase, latteText, latteSubtext0)
	s.apply(map[string]any{"axes.prop_cycle": cycleStrings(DarkCycle())})
}

// DarkMode sets figure colors to light text on a dark background.
func (s *Sheet) DarkMode() {
	s.SetColors(mochaBase, mochaText, mochaSubtext0)
	s.apply(map[string]any{"axes.prop_cycle": cycleStrings(BrightCycle())})
}

// SetFont selects the default font family. The name must match one of
// AvailableFonts exactly; otherwise the sheet is left untouched and the
// error wraps ErrInvalidConfiguration, with a nearest-match hint when one
// is close.
func (s *Sheet) SetFont(name string) error {
	fonts := s.AvailableFonts()
	for _, f := range fonts {
		if f == name {
			s.apply(map[string]any{"font.family": name})
			return nil
		}
	}
	if hint := nearestFont(name, fonts); hint != "" {
		return fmt.Errorf("font %q not found (did you mean %q?): %w", name, hint, ErrInvalidConfiguration)
	}
	return fmt.Errorf("font %q not found: %w", name, ErrInvalidConfiguration)
}

// AvailableFonts returns the distinct installed font family names in
// ascending order.
func (s *Sheet) AvailableFonts() []string {
	seen := make(map[string]bool)
	var fonts []string
	for _, f := range s.engine.ListInstalledFonts() {
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		fonts = append(fonts, f)
	}
	sort.Strings(fonts)
	return fonts
}

func nearestFont(name string, fonts []string) string {
	best := ""
	bestDist := maxFontSuggestionDistance + 1
	for _, f := range fonts {
		if d := levenshtein.ComputeDistance(name, f); d < bestDist {
			best, bestDist = f, d
		}
	}
	return best
}

func cycleStrings(cycle []lipgloss.Color) []string {
	out := make([]string, len(cycle))
	for i, c := range cycle {
		out[i] = string(c)
	}
	return out
}
