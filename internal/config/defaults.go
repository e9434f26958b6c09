package config

import (
	_ "embed"
)

//go:embed defaults/tetrus.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:         12,
			VisibleHeight: 24,
			HiddenRows:    2,
		},
		Timing: TimingConfig{
			GravityStartSeconds: 0.8,
			GravityLevelStep:    0.9,
			GravityFloorSeconds: 0.05,
			SoftDropMultiplier:  0.05,
			LockDelaySeconds:    0.5,
		},
	}
}
