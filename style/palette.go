package style

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin palettes — true-color hex values
// https://catppuccin.com/palette
// Mocha backs dark mode, Latte backs light mode.
// ---------------------------------------------------------------------------

const (
	mochaBase     lipgloss.Color = "#1e1e2e"
	mochaText     lipgloss.Color = "#cdd6f4"
	mochaSubtext0 lipgloss.Color = "#a6adc8"
	mochaBlue     lipgloss.Color = "#89b4fa"
	mochaPeach    lipgloss.Color = "#fab387"
	mochaGreen    lipgloss.Color = "#a6e3a1"
	mochaRed      lipgloss.Color = "#f38ba8"
	mochaMauve    lipgloss.Color = "#cba6f7"
	mochaTeal     lipgloss.Color = "#94e2d5"
	mochaYellow   lipgloss.Color = "#f9e2af"
	mochaPink     lipgloss.Color = "#f5c2e7"

	latteBase     lipgloss.Color = "#eff1f5"
	latteText     lipgloss.Color = "#4c4f69"
	latteSubtext0 lipgloss.Color = "#6c6f85"
	latteBlue     lipgloss.Color = "#1e66f5"
	lattePeach    lipgloss.Color = "#fe640b"
	latteGreen    lipgloss.Color = "#40a02b"
	latteRed      lipgloss.Color = "#d20f39"
	latteMauve    lipgloss.Color = "#8839ef"
	latteTeal     lipgloss.Color = "#179299"
	latteYellow   lipgloss.Color = "#df8e1d"
	lattePink     lipgloss.Color = "#ea76cb"
)

// BrightCycle returns the line-color cycle for dark backgrounds, in plot
// order.
func BrightCycle() []lipgloss.Color {
	return []lipgloss.Color{
		mochaBlue, mochaPeach, mochaGreen, mochaRed,
		mochaMauve, mochaTeal, mochaYellow, mochaPink,
	}
}

// DarkCycle returns the line-color cycle for light backgrounds, in plot
// order.
func DarkCycle() []lipgloss.Color {
	return []lipgloss.Color{
		latteBlue, lattePeach, latteGreen, latteRed,
		latteMauve, latteTeal, latteYellow, lattePink,
	}
}

// AllPaletteColors returns every palette color for testing purposes.
func AllPaletteColors() []lipgloss.Color {
	return []lipgloss.Color{
		mochaBase, mochaText, mochaSubtext0,
		mochaBlue, mochaPeach, mochaGreen, mochaRed,
		mochaMauve, mochaTeal, mochaYellow, mochaPink,
		latteBase, latteText, latteSubtext0,
		latteBlue, lattePeach, latteGreen, latteRed,
		latteMauve, latteTeal, latteYellow, lattePink,
	}
}
