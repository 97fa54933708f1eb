// Package config loads the example CLI's options from a TOML file.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds the settings cmd/latex2mml reads from a TOML file
// before applying command-line flag overrides.
type Config struct {
	// Display is either "inline" or "block".
	Display string `toml:"display"`

	// Pretty enables indented, multi-line MathML output.
	Pretty bool `toml:"pretty"`

	// FixturesDir points at a directory of YAML conversion fixtures
	// (internal/fixture) the CLI's test subcommand runs against.
	FixturesDir string `toml:"fixtures_dir"`
}

// Default returns the CLI's built-in defaults.
func Default() Config {
	return Config{Display: "inline", Pretty: false}
}

// Load reads and decodes a TOML config file, starting from Default
// and overwriting only the fields present in path.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}
