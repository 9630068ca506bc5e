// Package config loads benchkit configuration from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds toolkit configuration.
type Config struct {
	Push  PushConfig
	Glyph GlyphConfig
	Style StyleConfig
}

// PushConfig holds Pushover transport credentials. Both fields must be
// set for the push capability to resolve live.
type PushConfig struct {
	Token   string
	UserKey string `mapstructure:"user_key"`
}

// GlyphConfig holds alias-expansion settings.
type GlyphConfig struct {
	Emoji bool
}

// StyleConfig holds presentation defaults.
type StyleConfig struct {
	Theme string
	Font  string
}

// Load reads configuration from file and env. Env var overrides use prefix BENCHKIT_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("push.token", "")
	v.SetDefault("push.user_key", "")
	v.SetDefault("glyph.emoji", true)
	v.SetDefault("style.theme", "dark")
	v.SetDefault("style.font", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("BENCHKIT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "benchkit"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("BENCHKIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory
// if needed. The Pushover token is stored in plain text; encourage users
// to prefer env vars.
func Save(cfg Config) error {
	path := os.Getenv("BENCHKIT_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "benchkit", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("push.token", cfg.Push.Token)
	v.Set("push.user_key", cfg.Push.UserKey)
	v.Set("glyph.emoji", cfg.Glyph.Emoji)
	v.Set("style.theme", cfg.Style.Theme)
	v.Set("style.font", cfg.Style.Font)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
