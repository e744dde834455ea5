package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/config"
)

func TestLoadScene(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "scene.toml")
	if err := os.WriteFile(cfg, []byte("preset = \"quad-pulse\"\ndepth = 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		path       string
		preset     string
		wantPreset string
		wantDepth  int
	}{
		{"defaults", "", "", "triangle-pulse", 5},
		{"file", cfg, "", "quad-pulse", 3},
		{"preset resets depth", cfg, "levy-c", "levy-c", 12},
		{"field preset", "", "mandelbrot", "mandelbrot", 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := loadScene(tt.path, tt.preset)
			if err != nil {
				t.Fatalf("loadScene: %v", err)
			}
			if s.Preset != tt.wantPreset || s.Depth != tt.wantDepth {
				t.Errorf("scene = %s depth %d, want %s depth %d", s.Preset, s.Depth, tt.wantPreset, tt.wantDepth)
			}
		})
	}
}

func TestRunErrorsCloseLog(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "view.log")
	var stderr bytes.Buffer
	err := run([]string{"-log", logPath, "-preset", "nope"}, &stderr)
	if !errors.Is(err, config.ErrInvalidScene) {
		t.Fatalf("run error = %v, want ErrInvalidScene", err)
	}
	if _, err := os.Stat(logPath); err != nil {
		t.Errorf("log file missing: %v", err)
	}
	if fractal.Logger().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug logger left installed after run returned")
	}
}

func TestRunBadFlags(t *testing.T) {
	var stderr bytes.Buffer
	if err := run([]string{"-no-such-flag"}, &stderr); err == nil {
		t.Error("unknown flag accepted")
	}
	if err := run([]string{"-config", "/does/not/exist.toml"}, &stderr); err == nil {
		t.Error("missing config accepted")
	}
}
