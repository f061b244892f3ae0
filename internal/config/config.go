// Package config handles engine configuration loading and management.
package config

import "github.com/Faultbox/zincmorph/pkg/colour"

// Config holds all engine settings.
type Config struct {
	Scene   SceneConfig   `yaml:"scene" toml:"scene"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// SceneConfig holds animation and default material settings.
type SceneConfig struct {
	// Duration is the default local duration of every object, in
	// milliseconds of animation time.
	Duration float64 `yaml:"duration" toml:"duration"`
	// PlayRate converts wall-clock seconds into animation time units.
	PlayRate       float64    `yaml:"play_rate" toml:"play_rate"`
	DefaultColour  colour.Hex `yaml:"default_colour" toml:"default_colour"`
	DefaultOpacity float64    `yaml:"default_opacity" toml:"default_opacity"`
	// Instancing selects a single instanced store for glyphsets instead of
	// one object per glyph.
	Instancing bool `yaml:"instancing" toml:"instancing"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Scene: SceneConfig{
			Duration:       3000,
			PlayRate:       500,
			DefaultColour:  colour.White,
			DefaultOpacity: 1,
			Instancing:     true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
