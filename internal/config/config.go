// Package config provides YAML/TOML game configuration loading and
// difficulty management for Breakout.
package config

import (
	"errors"
	"fmt"
)

// BreakoutConfig contains all configuration for a Breakout session.
// World units are the abstract play-field units the physics runs in.
type BreakoutConfig struct {
	World      WorldConfig      `yaml:"world" toml:"world"`
	Paddle     PaddleConfig     `yaml:"paddle" toml:"paddle"`
	Ball       BallConfig       `yaml:"ball" toml:"ball"`
	Gameplay   GameplayConfig   `yaml:"gameplay" toml:"gameplay"`
	PowerUps   PowerUpsConfig   `yaml:"powerups" toml:"powerups"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// WorldConfig defines the play field.
type WorldConfig struct {
	Width  float32 `yaml:"width" toml:"width"`
	Height float32 `yaml:"height" toml:"height"`
}

// PaddleConfig defines the player paddle.
type PaddleConfig struct {
	Width        float32 `yaml:"width" toml:"width"`
	Height       float32 `yaml:"height" toml:"height"`
	Velocity     float32 `yaml:"velocity" toml:"velocity"`           // units per second
	SizeIncrease float32 `yaml:"size_increase" toml:"size_increase"` // width added by the pad-size power-up
}

// BallConfig defines the ball and its bounce behaviour.
type BallConfig struct {
	Radius          float32 `yaml:"radius" toml:"radius"`
	VelocityX       float32 `yaml:"velocity_x" toml:"velocity_x"` // launch velocity
	VelocityY       float32 `yaml:"velocity_y" toml:"velocity_y"`
	DeflectStrength float32 `yaml:"deflect_strength" toml:"deflect_strength"` // paddle hit-offset multiplier
	SpeedFactor     float32 `yaml:"speed_factor" toml:"speed_factor"`         // speed power-up multiplier
}

// GameplayConfig defines lives, scoring and cosmetic tuning.
type GameplayConfig struct {
	Lives       int     `yaml:"lives" toml:"lives"`
	BrickPoints int     `yaml:"brick_points" toml:"brick_points"`
	ShakeTime   float32 `yaml:"shake_time" toml:"shake_time"` // seconds of shake after a solid hit
	Particles   int     `yaml:"particles" toml:"particles"`   // trail pool size, 0 disables
}

// PowerUpsConfig defines the falling power-up blocks and per-type tuning.
type PowerUpsConfig struct {
	Width       float32       `yaml:"width" toml:"width"`
	Height      float32       `yaml:"height" toml:"height"`
	FallSpeed   float32       `yaml:"fall_speed" toml:"fall_speed"`
	Speed       PowerUpConfig `yaml:"speed" toml:"speed"`
	Sticky      PowerUpConfig `yaml:"sticky" toml:"sticky"`
	PassThrough PowerUpConfig `yaml:"pass_through" toml:"pass_through"`
	PadSize     PowerUpConfig `yaml:"pad_size" toml:"pad_size"`
	Confuse     PowerUpConfig `yaml:"confuse" toml:"confuse"`
	Chaos       PowerUpConfig `yaml:"chaos" toml:"chaos"`
}

// PowerUpConfig tunes a single power-up type.
type PowerUpConfig struct {
	Odds     int     `yaml:"odds" toml:"odds"`         // 1 in N chance per destroyed brick, <= 0 disables
	Duration float32 `yaml:"duration" toml:"duration"` // seconds, 0 = instantaneous
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // Multiplier added to launch speed at max difficulty
}

// Validate reports the first setting that would break the simulation.
func (c BreakoutConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("world size must be positive, got %gx%g", c.World.Width, c.World.Height)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("paddle size must be positive, got %gx%g", c.Paddle.Width, c.Paddle.Height)
	case c.Paddle.Width > c.World.Width:
		return errors.New("paddle is wider than the world")
	case c.Ball.Radius <= 0:
		return fmt.Errorf("ball radius must be positive, got %g", c.Ball.Radius)
	case c.Ball.VelocityY == 0:
		return errors.New("ball velocity_y must be non-zero")
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("lives must be positive, got %d", c.Gameplay.Lives)
	case c.Gameplay.Particles < 0:
		return fmt.Errorf("particles must not be negative, got %d", c.Gameplay.Particles)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
