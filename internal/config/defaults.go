package config

import (
	_ "embed"
)

//go:embed defaults/blockade.yaml
var defaultYAML []byte

// Default returns the default configuration.
func Default() Config {
	return Config{
		Ball: BallConfig{
			Radius:          4,
			Speed:           5.0,
			AutoLaunchTicks: 300, // 5 seconds at 60 ticks/s
		},
		Bullet: BulletConfig{
			Radius: 3,
			Speed:  8.0,
		},
		Paddle: PaddleConfig{
			WidthSmall:  64,
			WidthMedium: 96,
			WidthLarge:  128,
			Height:      8,
			Speed:       6,
		},
		Gameplay: GameplayConfig{
			Lives:       3,
			StartAmmo:   0,
			MaxAmmo:     9,
			BonusPerSec: 10,
			StartLevel:  0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				BallSpeedMultiplier: 0.5,
				AutoLaunchReduction: 120,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
