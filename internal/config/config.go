package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gravitrone/recycler/internal/layout"
)

// Config holds grid and browser settings stored at ~/.recycler/config.yaml.
// Sizes are in terminal cells when driving the TUI.
type Config struct {
	ViewportWidth  float64 `yaml:"viewport_width,omitempty"`
	ViewportHeight float64 `yaml:"viewport_height,omitempty"`
	ItemWidth      float64 `yaml:"item_width"`
	ItemHeight     float64 `yaml:"item_height"`
	Spacing        float64 `yaml:"spacing"`
	SpacingX       float64 `yaml:"spacing_x"`
	SpacingY       float64 `yaml:"spacing_y"`
	Padding        Padding `yaml:"padding"`
	Axis           string  `yaml:"axis"`
	Grid           bool    `yaml:"grid"`
	Rows           int     `yaml:"rows"`
	Cols           int     `yaml:"cols"`

	Total    int  `yaml:"total"`
	FullGrid bool `yaml:"full_grid"`

	RowDelay time.Duration `yaml:"row_delay,omitempty"`
	ColDelay time.Duration `yaml:"col_delay,omitempty"`

	LabelFormat string `yaml:"label_format,omitempty"`
	Theme       string `yaml:"theme,omitempty"`
}

// Padding is the 4-sided content inset.
type Padding struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// Default returns a vertical grid of 14x3 tiles sized for a terminal.
func Default() Config {
	return Config{
		ViewportWidth:  80,
		ViewportHeight: 20,
		ItemWidth:      14,
		ItemHeight:     3,
		SpacingX:       1,
		SpacingY:       0,
		Spacing:        0,
		Padding:        Padding{Left: 1, Top: 0},
		Axis:           "vertical",
		Grid:           true,
		Total:          1000,
		LabelFormat:    "item %d",
		Theme:          "dark",
	}
}

// Path returns the config file path.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".recycler", "config.yaml")
}

// Load reads and parses the config file. Fields missing from the file keep
// their Default values.
func Load() (*Config, error) {
	path := Path()

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config not found: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if _, err := cfg.Spec(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.Total < 0 {
		return nil, fmt.Errorf("invalid config: total %d: %w", cfg.Total, layout.ErrInvalidArgument)
	}

	return &cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	path := Path()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// Spec converts the config into a validated grid spec.
func (c Config) Spec() (layout.Spec, error) {
	axis, err := layout.ParseAxis(c.Axis)
	if err != nil {
		return layout.Spec{}, err
	}
	spec := layout.Spec{
		Viewport:    layout.Size{W: c.ViewportWidth, H: c.ViewportHeight},
		Item:        layout.Size{W: c.ItemWidth, H: c.ItemHeight},
		Spacing:     c.Spacing,
		GridSpacing: layout.Vec2{X: c.SpacingX, Y: c.SpacingY},
		Padding: layout.Padding{
			Left:   c.Padding.Left,
			Right:  c.Padding.Right,
			Top:    c.Padding.Top,
			Bottom: c.Padding.Bottom,
		},
		Axis: axis,
		Grid: c.Grid,
		Rows: c.Rows,
		Cols: c.Cols,
	}
	if err := spec.Validate(); err != nil {
		return layout.Spec{}, err
	}
	return spec, nil
}
