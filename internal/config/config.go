// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// Config contains all tunable gameplay parameters.
type Config struct {
	Ball       BallConfig       `yaml:"ball"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BallConfig defines ball tuning, in virtual pixels per reference tick.
type BallConfig struct {
	Radius          float64 `yaml:"radius"`
	Speed           float64 `yaml:"speed"`             // launch/reflection target speed
	AutoLaunchTicks int     `yaml:"auto_launch_ticks"` // 0 disables auto-launch
}

// BulletConfig defines bullet tuning.
type BulletConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
}

// PaddleConfig defines paddle geometry and movement. The three widths map
// to the shrink/normal/expand power-up sizes.
type PaddleConfig struct {
	WidthSmall  float64 `yaml:"width_small"`
	WidthMedium float64 `yaml:"width_medium"`
	WidthLarge  float64 `yaml:"width_large"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`
}

// GameplayConfig defines the rules layer.
type GameplayConfig struct {
	Lives        int `yaml:"lives"`
	StartAmmo    int `yaml:"start_ammo"`
	MaxAmmo      int `yaml:"max_ammo"`
	BonusPerSec  int `yaml:"bonus_per_sec"` // points per remaining bonus second
	StartLevel   int `yaml:"start_level"`
	ExplosionFPS int `yaml:"explosion_fps"` // informational; frame time is fixed
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	BallSpeedMultiplier float64 `yaml:"ball_speed_multiplier"` // Added to ball speed at max difficulty
	AutoLaunchReduction int     `yaml:"auto_launch_reduction"` // Auto-launch tick reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

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
