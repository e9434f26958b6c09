// Package config provides YAML-based tuning for the game: board
// dimensions and the timing constants that drive gravity and lock delay.
package config

// Config contains all tunable game parameters.
type Config struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Width         int `yaml:"width"`
	VisibleHeight int `yaml:"visible_height"`
	HiddenRows    int `yaml:"hidden_rows"`
}

// TimingConfig defines gravity and lock-delay behavior. Durations are in
// seconds to keep the YAML readable.
type TimingConfig struct {
	GravityStartSeconds float64 `yaml:"gravity_start_seconds"` // fall interval at level 1
	GravityLevelStep    float64 `yaml:"gravity_level_step"`    // interval multiplier per level
	GravityFloorSeconds float64 `yaml:"gravity_floor_seconds"` // minimum fall interval
	SoftDropMultiplier  float64 `yaml:"soft_drop_multiplier"`  // interval scale while soft-dropping
	LockDelaySeconds    float64 `yaml:"lock_delay_seconds"`    // grace period before a grounded piece locks
}

// Preset represents a named timing preset.
type Preset string

const (
	PresetClassic Preset = "classic"
	PresetZen     Preset = "zen"
	PresetBlitz   Preset = "blitz"
)

// Presets lists the available timing presets.
func Presets() []Preset {
	return []Preset{PresetClassic, PresetZen, PresetBlitz}
}

// ApplyPreset overrides the timing section with a named preset.
// Unknown presets leave the config untouched.
func ApplyPreset(cfg *Config, preset Preset) {
	switch preset {
	case PresetClassic:
		// Config defaults already describe classic timing.
	case PresetZen:
		cfg.Timing.GravityStartSeconds = 1.0
		cfg.Timing.GravityLevelStep = 0.95
		cfg.Timing.LockDelaySeconds = 0.8
	case PresetBlitz:
		cfg.Timing.GravityStartSeconds = 0.5
		cfg.Timing.GravityLevelStep = 0.85
		cfg.Timing.LockDelaySeconds = 0.35
	}
}
