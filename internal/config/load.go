package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides, e.g. CIRCLEREFRESH_ROTATE_STEP.
const EnvPrefix = "CIRCLEREFRESH"

// optionKeys lists every configurable key, used for defaults and env binding.
var optionKeys = []string{
	"rotate_step",
	"text",
	"language",
	"text_color",
	"text_size",
	"background_color",
	"base_height",
	"top_offset",
	"bottom_offset",
	"margin_bottom",
	"refresh_threshold",
}

// Load reads options with precedence: ENV vars > config file > defaults.
// An empty path skips the file. The file format follows its extension
// (yaml, yml, toml or json).
func Load(path string) (Options, error) {
	v := viper.New()
	setDefaults(v, DefaultOptions())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range optionKeys {
		if err := v.BindEnv(key); err != nil {
			return Options{}, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Options{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var opts Options
	if err := v.Unmarshal(&opts); err != nil {
		return Options{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	return opts.Normalize(), nil
}

// Write stores opts as YAML, creating parent directories.
func Write(path string, opts Options) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(opts)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper, d Options) {
	v.SetDefault("rotate_step", d.RotateStep)
	v.SetDefault("text", d.Text)
	v.SetDefault("language", d.Language)
	v.SetDefault("text_color", d.TextColor)
	v.SetDefault("text_size", d.TextSize)
	v.SetDefault("background_color", d.BackgroundColor)
	v.SetDefault("base_height", d.BaseHeight)
	v.SetDefault("top_offset", d.TopOffset)
	v.SetDefault("bottom_offset", d.BottomOffset)
	v.SetDefault("margin_bottom", d.MarginBottom)
	v.SetDefault("refresh_threshold", d.RefreshThreshold)
}
