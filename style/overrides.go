package style

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// overridesFile is the top-level TOML structure for a style override
// file:
//
//	[params]
//	"lines.linewidth" = 2.0
//	"axes.grid" = true
type overridesFile struct {
	Params map[string]any `toml:"params"`
}

// LoadOverrides reads a TOML override file and applies its params as one
// atomic update. Unknown parameter names are rejected before anything is
// applied.
func (s *Sheet) LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read overrides: %w", err)
	}

	var of overridesFile
	if err := toml.Unmarshal(data, &of); err != nil {
		return fmt.Errorf("parse overrides: %w", err)
	}

	for k := range of.Params {
		if !knownParam(k) {
			return fmt.Errorf("unknown style parameter %q: %w", k, ErrInvalidConfiguration)
		}
	}

	if len(of.Params) > 0 {
		s.apply(of.Params)
	}
	return nil
}
