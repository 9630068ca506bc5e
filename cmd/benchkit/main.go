// Command benchkit previews the toolkit: it renders the active plot
// theme and a sample chart in the terminal, with keys to flip between
// light and dark mode. --check runs a non-TUI self-check instead.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/benchkit/export"
	"github.com/jask/benchkit/internal/config"
	"github.com/jask/benchkit/internal/diag"
	"github.com/jask/benchkit/notify"
	"github.com/jask/benchkit/style"
	"github.com/jask/benchkit/style/termplot"
)

func main() {
	check := flag.Bool("check", false, "run a non-interactive self-check and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if *check {
		if err := runCheck(cfg); err != nil {
			log.Fatalf("check: %v", err)
		}
		fmt.Println("benchkit self-check passed")
		return
	}

	engine := termplot.New()
	sheet := style.NewSheet(engine)
	theme := cfg.Style.Theme
	if theme == "light" {
		sheet.LightMode()
	} else {
		theme = "dark"
		sheet.DarkMode()
	}
	if cfg.Style.Font != "" {
		if err := sheet.SetFont(cfg.Style.Font); err != nil {
			diag.Default().Warnf("configured font: %v", err)
		}
	}

	m := model{sheet: sheet, engine: engine, theme: theme, keys: defaultKeyMap(), width: 72, height: 14}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}

// runCheck exercises the toolkit end to end without a TUI, in the spirit
// of a smoke test: scoped report, CSV round trip, preset switching, font
// validation.
func runCheck(cfg config.Config) error {
	dir, err := os.MkdirTemp("", "benchkit-check-")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	n := notify.New(notify.Resolve(cfg, diag.Default()))
	return n.Scope("Self-check", func() error {
		path := filepath.Join(dir, "check")
		data := [][]float64{{1, 2.5}, {3, 4.25}}
		if err := export.CSV(path, data, []string{"a", "b"}, ""); err != nil {
			return fmt.Errorf("csv: %w", err)
		}
		raw, err := os.ReadFile(path + ".csv")
		if err != nil {
			return fmt.Errorf("read back: %w", err)
		}
		lines := strings.Split(strings.TrimSuffix(string(raw), "\n"), "\n")
		if len(lines) != 3 || lines[0] != "a,b" {
			return fmt.Errorf("unexpected csv content: %q", raw)
		}

		if _, err := export.AsPercent(0.5); err != nil {
			return fmt.Errorf("as percent: %w", err)
		}

		engine := termplot.New()
		sheet := style.NewSheet(engine)
		sheet.LightMode()
		sheet.DarkMode()
		if err := sheet.SetFont("NonexistentFontXYZ"); err == nil {
			return fmt.Errorf("expected unknown font to be rejected")
		}
		return nil
	})
}

// ---------------------------------------------------------------------------
// Preview TUI
// ---------------------------------------------------------------------------

type keyMap struct {
	Toggle key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type model struct {
	sheet  *style.Sheet
	engine *termplot.Engine
	theme  string
	keys   keyMap
	width  int
	height int
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			if m.theme == "dark" {
				m.theme = "light"
				m.sheet.LightMode()
			} else {
				m.theme = "dark"
				m.sheet.DarkMode()
			}
		}
	}
	return m, nil
}

func (m model) View() string {
	chartW := m.width - 4
	if chartW < 24 {
		chartW = 24
	}
	chartH := m.height - 8
	if chartH < 6 {
		chartH = 6
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("benchkit theme preview — %s mode\n\n", m.theme))
	b.WriteString(m.swatches())
	b.WriteString("\n\n")
	b.WriteString(m.engine.RenderSeries("sin(t)", sampleSeries(), chartW, chartH))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("[%s] %s  [%s] %s\n",
		m.keys.Toggle.Help().Key, m.keys.Toggle.Help().Desc,
		m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc))
	return b.String()
}

// swatches renders one colored block per entry of the active color
// cycle.
func (m model) swatches() string {
	cycle, _ := m.sheet.Get("axes.prop_cycle")
	colors, _ := cycle.([]string)
	blocks := make([]string, 0, len(colors))
	for _, c := range colors {
		blocks = append(blocks, lipgloss.NewStyle().Background(lipgloss.Color(c)).Render("   "))
	}
	return strings.Join(blocks, " ")
}

func sampleSeries() []termplot.Point {
	base := time.Now().Add(-64 * time.Minute)
	points := make([]termplot.Point, 64)
	for i := range points {
		points[i] = termplot.Point{
			Time:  base.Add(time.Duration(i) * time.Minute),
			Value: math.Sin(float64(i) / 8),
		}
	}
	return points
}
