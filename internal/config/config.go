package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Shape selects the cell outline. The set is closed; the renderer holds
// the single dispatch point.
type Shape string

const (
	ShapeHexagon Shape = "hexagon"
	ShapeHeart   Shape = "heart"
)

const (
	DefaultThreshold  = 0.0
	DefaultCellRadius = 40.0
	DefaultFPS        = 60
	MinCellRadius     = 8.0
	MinFPS            = 15
)

// Settings is the persisted user configuration. The animation engine
// reads it per frame and never mutates it.
type Settings struct {
	Shape      Shape   `yaml:"shape"`
	Threshold  float64 `yaml:"threshold"`
	Palette    string  `yaml:"palette"`
	CellRadius float64 `yaml:"cell_radius"`
	FPS        int     `yaml:"fps"`
}

func DefaultSettings() *Settings {
	return &Settings{
		Shape:      ShapeHexagon,
		Threshold:  DefaultThreshold,
		Palette:    "uniform",
		CellRadius: DefaultCellRadius,
		FPS:        DefaultFPS,
	}
}

// Normalize clamps every field into its valid range so the engine only
// ever sees pre-validated values.
func (s *Settings) Normalize() {
	if s.Shape != ShapeHexagon && s.Shape != ShapeHeart {
		s.Shape = ShapeHexagon
	}
	if s.Threshold < 0 {
		s.Threshold = 0
	}
	if s.Threshold > 1 {
		s.Threshold = 1
	}
	switch s.Palette {
	case "uniform", "happy", "warm":
	default:
		s.Palette = "uniform"
	}
	if s.CellRadius < MinCellRadius {
		s.CellRadius = MinCellRadius
	}
	if s.FPS < MinFPS {
		s.FPS = MinFPS
	}
}

// Load reads settings from path, starting from defaults so absent keys
// keep their default values. The result is normalized.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}
	s.Normalize()
	return s, nil
}

// LoadOrDefault loads from path and falls back to defaults on any error.
// A screensaver must never fail over a bad preference file.
func LoadOrDefault(path string) *Settings {
	s, err := Load(path)
	if err != nil {
		return DefaultSettings()
	}
	return s
}

// Save writes settings to path as YAML, creating parent directories as
// needed.
func Save(path string, s *Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

// DefaultPath returns the per-user config location, or a local file when
// no user config dir is available.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "pulsetile.yaml"
	}
	return filepath.Join(dir, "pulsetile", "config.yaml")
}
