package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/pjpan/imager/pixel"
)

// tomlConfig holds the optional TOML configuration file contents.
type tomlConfig struct {
	Logging pixel.LogConfig `toml:"logging"`
	Convert convertConfig   `toml:"convert"`
}

// convertConfig sets defaults for conversion commands, each overridable
// per invocation with key=value arguments.
type convertConfig struct {
	// ValueColumn names the tabular value column.
	ValueColumn string `toml:"value_column"`

	// NoRescale disables the global min-max transform before colour
	// mapping.
	NoRescale bool `toml:"no_rescale"`

	// Compression names the pack compression: "none", "snappy", "gzip".
	Compression string `toml:"compression"`
}

func defaultConfig() tomlConfig {
	return tomlConfig{
		Convert: convertConfig{
			ValueColumn: "value",
			Compression: "snappy",
		},
	}
}

// loadConfig reads a TOML config file, layering it over the defaults.
func loadConfig(path string) (tomlConfig, error) {
	tc := defaultConfig()
	if path == "" {
		return tc, nil
	}
	if _, err := toml.DecodeFile(path, &tc); err != nil {
		return tc, fmt.Errorf("could not decode TOML config %q: %v", path, err)
	}
	if tc.Convert.ValueColumn == "" {
		tc.Convert.ValueColumn = "value"
	}
	if tc.Convert.Compression == "" {
		tc.Convert.Compression = "snappy"
	}
	return tc, nil
}

func (tc tomlConfig) compression() (pixel.Compression, error) {
	switch tc.Convert.Compression {
	case "none":
		return pixel.Uncompressed, nil
	case "snappy":
		return pixel.Snappy, nil
	case "gzip":
		return pixel.Gzip, nil
	default:
		return 0, fmt.Errorf("unknown compression %q (use none, snappy, or gzip)", tc.Convert.Compression)
	}
}
