// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/user/storeshots/pkg/colorutil"
	"github.com/user/storeshots/pkg/orchestrator"
	"github.com/user/storeshots/pkg/ports"
	"github.com/user/storeshots/pkg/profile"
)

// Config represents the full configuration of a storeshots batch.
type Config struct {
	// Input/Output
	ScreenshotsDir string `yaml:"screenshots_dir" toml:"screenshots_dir"`
	Pattern        string `yaml:"pattern" toml:"pattern"`
	MockupsDir     string `yaml:"mockups_dir" toml:"mockups_dir"`
	OutputDir      string `yaml:"output_dir" toml:"output_dir"`

	// Targets
	Profiles []profile.Kind `yaml:"profiles" toml:"profiles"`

	// Style
	Gradient     GradientConfig `yaml:"gradient" toml:"gradient"`
	TopImagesDir string         `yaml:"top_images_dir" toml:"top_images_dir"`
	LogoPath     string         `yaml:"logo" toml:"logo"`

	// Feature Graphic
	Feature FeatureConfig `yaml:"feature_graphic" toml:"feature_graphic"`

	// Processing
	Workers int  `yaml:"workers" toml:"workers"`
	Report  bool `yaml:"report" toml:"report"`

	// Logging
	LogLevel string `yaml:"log_level" toml:"log_level"`
	LogFile  string `yaml:"log_file" toml:"log_file"`

	// Debug
	Debug    bool   `yaml:"debug" toml:"debug"`
	DebugDir string `yaml:"debug_dir" toml:"debug_dir"`
}

// GradientConfig selects the background colors. Explicit colors win over a
// primary color, which wins over a preset.
type GradientConfig struct {
	Preset  string `yaml:"preset" toml:"preset"`
	Primary string `yaml:"primary" toml:"primary"`
	Start   string `yaml:"start" toml:"start"`
	End     string `yaml:"end" toml:"end"`
}

// FeatureConfig configures the Google Play Feature Graphic.
type FeatureConfig struct {
	Enabled    bool     `yaml:"enabled" toml:"enabled"`
	Screenshot string   `yaml:"screenshot" toml:"screenshot"`
	Text       []string `yaml:"text" toml:"text"`
	TextColor  string   `yaml:"text_color" toml:"text_color"`
	Seed       string   `yaml:"seed" toml:"seed"`
	FontPath   string   `yaml:"font" toml:"font"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		// Input/Output
		ScreenshotsDir: "./screenshots",
		Pattern:        orchestrator.DefaultPattern,
		OutputDir:      "./mockups",

		// Targets
		Profiles: profile.StoreKinds(),

		// Style
		Gradient: GradientConfig{Preset: DefaultPreset},

		// Feature Graphic
		Feature: FeatureConfig{Enabled: true},

		// Processing
		Workers: 4,
		Report:  true,

		// Logging
		LogLevel: "info",

		// Debug
		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML or TOML file, chosen by
// extension. Values missing from the file keep their defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config format %q (use .yaml or .toml)", filepath.Ext(path))
	}

	return cfg, nil
}

// Validate checks colors, profiles and the gradient selection.
func (c Config) Validate() error {
	if c.ScreenshotsDir == "" {
		return fmt.Errorf("screenshots_dir is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	for _, k := range c.Profiles {
		if _, err := profile.Lookup(k); err != nil {
			return err
		}
	}
	if _, err := c.ResolveGradient(); err != nil {
		return err
	}
	if c.Feature.TextColor != "" {
		if _, err := ParseColor(c.Feature.TextColor); err != nil {
			return fmt.Errorf("feature_graphic.text_color: %w", err)
		}
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative")
	}
	return nil
}

// ResolveGradient returns the gradient selected by the configuration.
func (c Config) ResolveGradient() (Gradient, error) {
	g := c.Gradient
	switch {
	case g.Start != "" || g.End != "":
		if g.Start == "" || g.End == "" {
			return Gradient{}, fmt.Errorf("gradient needs both start and end")
		}
		start, err := NormalizeColor(g.Start)
		if err != nil {
			return Gradient{}, fmt.Errorf("gradient.start: %w", err)
		}
		end, err := NormalizeColor(g.End)
		if err != nil {
			return Gradient{}, fmt.Errorf("gradient.end: %w", err)
		}
		return Gradient{Name: "custom", Start: start, End: end}, nil
	case g.Primary != "":
		return FromPrimary(g.Primary)
	case g.Preset != "":
		return Preset(g.Preset)
	default:
		return Preset(DefaultPreset)
	}
}

// LogLevelValue returns the parsed log level.
func (c Config) LogLevelValue() ports.LogLevel {
	return ports.ParseLogLevel(c.LogLevel)
}

// ParseColor parses a hex color string to color.Color.
// Malformed input returns an error wrapping colorutil.ErrInvalidColorFormat.
func ParseColor(hex string) (color.Color, error) {
	c, err := colorutil.ParseHex(hex)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// NormalizeColor validates hex and returns it as lowercase "#rrggbb".
func NormalizeColor(hex string) (string, error) {
	c, err := colorutil.ParseHex(hex)
	if err != nil {
		return "", err
	}
	return colorutil.ToHex(c), nil
}

// ToPlan converts Config to orchestrator.Plan.
func (c Config) ToPlan() (orchestrator.Plan, error) {
	if err := c.Validate(); err != nil {
		return orchestrator.Plan{}, err
	}
	gradient, err := c.ResolveGradient()
	if err != nil {
		return orchestrator.Plan{}, err
	}

	plan := orchestrator.Plan{
		ScreenshotsDir: c.ScreenshotsDir,
		Pattern:        c.Pattern,
		MockupsDir:     c.MockupsDir,
		OutputDir:      c.OutputDir,
		Profiles:       c.Profiles,
		GradientStart:  gradient.Start,
		GradientEnd:    gradient.End,
		TopImagesDir:   c.TopImagesDir,
		LogoPath:       c.LogoPath,
	}

	if c.Feature.Enabled {
		plan.Feature = &orchestrator.FeaturePlan{
			Screenshot: c.Feature.Screenshot,
			TextLines:  c.Feature.Text,
			TextColor:  c.Feature.TextColor,
			Seed:       c.Feature.Seed,
			FontPath:   c.Feature.FontPath,
		}
	}

	return plan, nil
}
