package style

// Engine is the rendering backend a Sheet drives. ApplyConfig merges the
// given keys into the engine's configuration; it is never partial and
// never fails. ListInstalledFonts reports font family names, duplicates
// allowed.
type Engine interface {
	ApplyConfig(params map[string]any)
	ListInstalledFonts() []string
}
