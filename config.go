package dragon

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Backend names accepted in Config.Backend.
const (
	BackendEbiten   = "ebiten"
	BackendTerminal = "terminal"
)

// Config holds the settings of the dragon program. None of them affect the
// curve itself; the fold count and angle are only controlled from the
// keyboard.
type Config struct {
	Title         string `yaml:"title"`
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	TPS           int    `yaml:"tps"`
	Backend       string `yaml:"backend"`
	Resizable     bool   `yaml:"resizable"`
	HUD           bool   `yaml:"hud"`
	Audio         bool   `yaml:"audio"`
	Debug         bool   `yaml:"debug"`
	ScreenshotDir string `yaml:"screenshot_dir"`
	Script        string `yaml:"script"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Title:         "Dragon Curve",
		Width:         800,
		Height:        600,
		TPS:           60,
		Backend:       BackendEbiten,
		Resizable:     true,
		HUD:           true,
		ScreenshotDir: "screenshots",
	}
}

// LoadConfig reads a YAML config file. Keys missing from the file keep
// their DefaultConfig values. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", c.TPS))
	}
	switch c.Backend {
	case BackendEbiten, BackendTerminal:
	default:
		errs = append(errs, fmt.Errorf("unknown backend %q", c.Backend))
	}
	return errors.Join(errs...)
}

// RunConfig returns the window settings for Run.
func (c Config) RunConfig() RunConfig {
	return RunConfig{
		Title:     c.Title,
		Width:     c.Width,
		Height:    c.Height,
		TPS:       c.TPS,
		Resizable: c.Resizable,
		ShowHUD:   c.HUD,
		Debug:     c.Debug,
	}
}
