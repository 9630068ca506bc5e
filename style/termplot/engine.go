// Package termplot implements the style engine contract for the
// terminal: it retains the merged style configuration, renders braille
// line charts styled from it, and lists fonts installed on the host.
package termplot

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Fallback colors when no preset has been applied yet.
const (
	defaultLineColor  = "#89b4fa"
	defaultAxisColor  = "#585b70"
	defaultLabelColor = "#7f849c"
)

// Engine is a terminal chart renderer driven by style parameters.
type Engine struct {
	params   map[string]any
	fontDirs []string
}

// New returns an Engine scanning the platform font directories.
func New() *Engine {
	return NewWithFontDirs(systemFontDirs()...)
}

// NewWithFontDirs returns an Engine that looks for installed fonts only
// in the given directories.
func NewWithFontDirs(dirs ...string) *Engine {
	return &Engine{params: make(map[string]any, 64), fontDirs: dirs}
}

// ApplyConfig merges the given keys into the engine configuration.
func (e *Engine) ApplyConfig(params map[string]any) {
	for k, v := range params {
		e.params[k] = v
	}
}

// Param returns the current value of a configuration key.
func (e *Engine) Param(key string) (any, bool) {
	v, ok := e.params[key]
	return v, ok
}

// ---------------------------------------------------------------------------
// Chart rendering
// ---------------------------------------------------------------------------

// Point is one sample in a rendered series.
type Point struct {
	Time  time.Time
	Value float64
}

// RenderSeries draws points as a braille line chart of the given size,
// styled from the engine configuration: line color from the head of the
// color cycle, axes from axes.edgecolor, labels from text.color. An
// optional title is centered above the chart.
func (e *Engine) RenderSeries(title string, points []Point, width, height int) string {
	if width <= 0 || height <= 0 || len(points) == 0 {
		return ""
	}

	minVal, maxVal := points[0].Value, points[0].Value
	for _, p := range points {
		if p.Value < minVal {
			minVal = p.Value
		}
		if p.Value > maxVal {
			maxVal = p.Value
		}
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	chart := tslc.New(width, height)
	chart.SetXStep(1)
	chart.SetYStep(1)
	chart.SetStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(e.lineColor())))
	chart.AxisStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(e.colorParam("axes.edgecolor", defaultAxisColor)))
	chart.LabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(e.colorParam("text.color", defaultLabelColor)))
	chart.SetTimeRange(points[0].Time, points[len(points)-1].Time)
	chart.SetViewTimeRange(points[0].Time, points[len(points)-1].Time)
	chart.SetYRange(minVal, maxVal)
	chart.SetViewYRange(minVal, maxVal)

	for _, p := range points {
		chart.Push(tslc.TimePoint{Time: p.Time, Value: p.Value})
	}
	chart.DrawBraille()

	view := chart.View()
	if title == "" {
		return view
	}
	pad := (width - ansi.StringWidth(title)) / 2
	if pad < 0 {
		pad = 0
	}
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(e.colorParam("text.color", defaultLabelColor))).Bold(true)
	return strings.Repeat(" ", pad) + titleStyle.Render(title) + "\n" + view
}

// lineColor returns the head of the configured color cycle, accepting
// both []string (presets) and []any (TOML overrides).
func (e *Engine) lineColor() string {
	switch cycle := e.params["axes.prop_cycle"].(type) {
	case []string:
		if len(cycle) > 0 {
			return cycle[0]
		}
	case []any:
		if len(cycle) > 0 {
			if s, ok := cycle[0].(string); ok {
				return s
			}
		}
	}
	return defaultLineColor
}

func (e *Engine) colorParam(key, fallback string) string {
	if s, ok := e.params[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

// ---------------------------------------------------------------------------
// Installed fonts
// ---------------------------------------------------------------------------

var fontExts = map[string]bool{".ttf": true, ".otf": true, ".ttc": true}

var fontStyleSuffixes = []string{
	"Regular", "Bold", "Italic", "BoldItalic", "Oblique", "BoldOblique",
	"Light", "Medium", "Thin", "Black", "SemiBold", "ExtraBold",
}

// ListInstalledFonts walks the font directories and reports a family
// name per font file. Directories that do not exist are skipped; with no
// readable directory the result is empty, never an error.
func (e *Engine) ListInstalledFonts() []string {
	var fonts []string
	for _, dir := range e.fontDirs {
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			ext := strings.ToLower(filepath.Ext(path))
			if !fontExts[ext] {
				return nil
			}
			fonts = append(fonts, familyName(filepath.Base(path)))
			return nil
		})
	}
	return fonts
}

// familyName derives a family name from a font filename, trimming the
// extension and a trailing style suffix ("DejaVuSans-Bold.ttf" →
// "DejaVuSans").
func familyName(base string) string {
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if i := strings.LastIndex(name, "-"); i > 0 {
		suffix := name[i+1:]
		for _, s := range fontStyleSuffixes {
			if strings.EqualFold(suffix, s) {
				return name[:i]
			}
		}
	}
	return name
}

func systemFontDirs() []string {
	home, _ := os.UserHomeDir()
	dirs := []string{
		"/usr/share/fonts",
		"/usr/local/share/fonts",
		"/System/Library/Fonts",
		"/Library/Fonts",
	}
	if home != "" {
		dirs = append(dirs,
			filepath.Join(home, ".fonts"),
			filepath.Join(home, ".local", "share", "fonts"),
			filepath.Join(home, "Library", "Fonts"),
		)
	}
	if windir := os.Getenv("WINDIR"); windir != "" {
		dirs = append(dirs, filepath.Join(windir, "Fonts"))
	}
	return dirs
}

// Describe returns a short human summary of the engine state, used by the
// preview tool.
func (e *Engine) Describe() string {
	return fmt.Sprintf("termplot engine: %d params, %d font dirs", len(e.params), len(e.fontDirs))
}
