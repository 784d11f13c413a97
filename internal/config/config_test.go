package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadBreakout("")
	if err != nil {
		t.Fatalf("LoadBreakout: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultBreakoutConfig()) {
		t.Errorf("embedded yaml and DefaultBreakoutConfig differ:\n%+v\n%+v", cfg, DefaultBreakoutConfig())
	}
}

func TestLoadYAMLPartial(t *testing.T) {
	path := writeFile(t, "custom.yaml", "paddle:\n  width: 140\ngameplay:\n  lives: 7\n")

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout: %v", err)
	}
	if cfg.Paddle.Width != 140 {
		t.Errorf("Paddle.Width = %v, expected 140", cfg.Paddle.Width)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Gameplay.Lives)
	}
	// Untouched settings keep their defaults
	if cfg.Ball.Radius != 12.5 {
		t.Errorf("Ball.Radius = %v, expected default 12.5", cfg.Ball.Radius)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "custom.toml", `
[ball]
velocity_x = 120.0
velocity_y = -400.0

[powerups.chaos]
odds = 0
duration = 5.0
`)

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout: %v", err)
	}
	if cfg.Ball.VelocityX != 120 || cfg.Ball.VelocityY != -400 {
		t.Errorf("ball velocity = (%v, %v), expected (120, -400)", cfg.Ball.VelocityX, cfg.Ball.VelocityY)
	}
	if cfg.PowerUps.Chaos.Odds != 0 || cfg.PowerUps.Chaos.Duration != 5 {
		t.Errorf("chaos = %+v, expected odds 0 duration 5", cfg.PowerUps.Chaos)
	}
	if cfg.PowerUps.Sticky.Odds != 75 {
		t.Errorf("sticky odds = %d, expected default 75", cfg.PowerUps.Sticky.Odds)
	}
}

func TestLoadUserDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".breakout", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "breakout.toml"), []byte("[gameplay]\nlives = 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout("")
	if err != nil {
		t.Fatalf("LoadBreakout: %v", err)
	}
	if cfg.Gameplay.Lives != 9 {
		t.Errorf("Lives = %d, expected 9 from user config", cfg.Gameplay.Lives)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"bad yaml", "bad.yaml", "paddle: [", "parse"},
		{"bad toml", "bad.toml", "[ball\n", "parse"},
		{"invalid world", "zero.yaml", "world:\n  width: 0\n", "world size"},
		{"zero lives", "lives.toml", "[gameplay]\nlives = 0\n", "lives"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadBreakout(writeFile(t, tc.file, tc.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}

	if _, err := LoadBreakout(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestApplyBreakoutPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		lives       int
		paddleWidth float32
		enabled     bool
		faster      bool
	}{
		{DifficultyEasy, 5, 150, true, false},
		{DifficultyNormal, 3, 100, true, false},
		{DifficultyHard, 2, 80, true, true},
		{DifficultyFixed, 3, 100, false, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			ApplyBreakoutPreset(&cfg, tc.preset)

			if cfg.Gameplay.Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Gameplay.Lives, tc.lives)
			}
			if cfg.Paddle.Width != tc.paddleWidth {
				t.Errorf("Paddle.Width = %v, expected %v", cfg.Paddle.Width, tc.paddleWidth)
			}
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Difficulty.Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if faster := cfg.Ball.VelocityY < -350; faster != tc.faster {
				t.Errorf("VelocityY = %v, faster = %v, expected %v", cfg.Ball.VelocityY, faster, tc.faster)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v; expected normal", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("expected error for unknown preset")
	}
}
