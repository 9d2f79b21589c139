package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.Shape != ShapeHexagon {
		t.Errorf("expected default shape hexagon, got %s", s.Shape)
	}
	if s.Threshold != 0 {
		t.Errorf("expected default threshold 0, got %f", s.Threshold)
	}
	if s.Palette != "uniform" {
		t.Errorf("expected default palette uniform, got %s", s.Palette)
	}
	if s.CellRadius <= 0 || s.FPS <= 0 {
		t.Error("cell radius and fps should be positive")
	}
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	in := &Settings{
		Shape:      ShapeHeart,
		Threshold:  0.73,
		Palette:    "warm",
		CellRadius: 32,
		FPS:        30,
	}
	if err := Save(path, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if out.Shape != ShapeHeart {
		t.Errorf("expected shape heart, got %s", out.Shape)
	}
	if math.Abs(out.Threshold-0.73) > 1e-9 {
		t.Errorf("expected threshold 0.73, got %f", out.Threshold)
	}
	if out.Palette != "warm" || out.CellRadius != 32 || out.FPS != 30 {
		t.Errorf("round trip mismatch: %+v", out)
	}
}

func TestLoadMissingFile(t *testing.T) {
	s := LoadOrDefault(filepath.Join(t.TempDir(), "absent.yaml"))
	if *s != *DefaultSettings() {
		t.Errorf("expected defaults for missing file, got %+v", s)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("threshold: notanumber\n"), 0644); err != nil {
		t.Fatal(err)
	}

	s := LoadOrDefault(path)
	if s.Threshold != DefaultThreshold {
		t.Errorf("expected default threshold for malformed value, got %f", s.Threshold)
	}
}

func TestLoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("shape: heart\n"), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Shape != ShapeHeart {
		t.Errorf("expected shape heart, got %s", s.Shape)
	}
	if s.FPS != DefaultFPS || s.CellRadius != DefaultCellRadius {
		t.Errorf("absent keys should keep defaults, got %+v", s)
	}
}

func TestNormalizeClamps(t *testing.T) {
	tests := []struct {
		name string
		in   Settings
		want Settings
	}{
		{
			name: "threshold above range",
			in:   Settings{Shape: ShapeHeart, Threshold: 1.7, Palette: "happy", CellRadius: 40, FPS: 60},
			want: Settings{Shape: ShapeHeart, Threshold: 1, Palette: "happy", CellRadius: 40, FPS: 60},
		},
		{
			name: "threshold below range",
			in:   Settings{Shape: ShapeHexagon, Threshold: -0.4, Palette: "uniform", CellRadius: 40, FPS: 60},
			want: Settings{Shape: ShapeHexagon, Threshold: 0, Palette: "uniform", CellRadius: 40, FPS: 60},
		},
		{
			name: "unknown shape and palette",
			in:   Settings{Shape: "triangle", Threshold: 0.5, Palette: "neon", CellRadius: 40, FPS: 60},
			want: Settings{Shape: ShapeHexagon, Threshold: 0.5, Palette: "uniform", CellRadius: 40, FPS: 60},
		},
		{
			name: "tiny radius and fps",
			in:   Settings{Shape: ShapeHexagon, Threshold: 0, Palette: "uniform", CellRadius: 1, FPS: 2},
			want: Settings{Shape: ShapeHexagon, Threshold: 0, Palette: "uniform", CellRadius: MinCellRadius, FPS: MinFPS},
		},
	}

	for _, tt := range tests {
		s := tt.in
		s.Normalize()
		if s != tt.want {
			t.Errorf("%s: expected %+v, got %+v", tt.name, tt.want, s)
		}
	}
}
