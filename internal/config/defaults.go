package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the built-in Breakout configuration.
// It matches defaults/breakout.yaml.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:        100,
			Height:       20,
			Velocity:     500,
			SizeIncrease: 50,
		},
		Ball: BallConfig{
			Radius:          12.5,
			VelocityX:       100,
			VelocityY:       -350,
			DeflectStrength: 2.0,
			SpeedFactor:     1.2,
		},
		Gameplay: GameplayConfig{
			Lives:       3,
			BrickPoints: 10,
			ShakeTime:   0.05,
			Particles:   24,
		},
		PowerUps: PowerUpsConfig{
			Width:       60,
			Height:      20,
			FallSpeed:   150,
			Speed:       PowerUpConfig{Odds: 75, Duration: 0},
			Sticky:      PowerUpConfig{Odds: 75, Duration: 20},
			PassThrough: PowerUpConfig{Odds: 75, Duration: 10},
			PadSize:     PowerUpConfig{Odds: 75, Duration: 0},
			Confuse:     PowerUpConfig{Odds: 15, Duration: 15},
			Chaos:       PowerUpConfig{Odds: 15, Duration: 15},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
