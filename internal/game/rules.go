package game

import (
	"time"

	"github.com/vovakirdan/tetrus/internal/config"
)

// Rules are the engine's tuning constants, resolved from configuration
// once at session start.
type Rules struct {
	BoardWidth    int
	VisibleHeight int
	HiddenRows    int

	GravityStart       time.Duration // fall interval at level 1
	GravityFloor       time.Duration // fastest possible fall interval
	GravityLevelStep   float64       // interval multiplier per level
	SoftDropMultiplier float64       // interval scale while soft-dropping
	LockDelay          time.Duration // grace period before a grounded piece locks
}

// DefaultRules returns the rules derived from the built-in configuration.
func DefaultRules() Rules {
	return RulesFrom(config.Default())
}

// RulesFrom converts a loaded configuration into engine rules, falling
// back to defaults for missing or nonsensical values.
func RulesFrom(cfg config.Config) Rules {
	def := config.Default()
	if cfg.Board.Width <= 0 {
		cfg.Board.Width = def.Board.Width
	}
	if cfg.Board.VisibleHeight <= 0 {
		cfg.Board.VisibleHeight = def.Board.VisibleHeight
	}
	if cfg.Board.HiddenRows < 0 {
		cfg.Board.HiddenRows = def.Board.HiddenRows
	}
	if cfg.Timing.GravityStartSeconds <= 0 {
		cfg.Timing.GravityStartSeconds = def.Timing.GravityStartSeconds
	}
	if cfg.Timing.GravityLevelStep <= 0 || cfg.Timing.GravityLevelStep > 1 {
		cfg.Timing.GravityLevelStep = def.Timing.GravityLevelStep
	}
	if cfg.Timing.GravityFloorSeconds <= 0 {
		cfg.Timing.GravityFloorSeconds = def.Timing.GravityFloorSeconds
	}
	if cfg.Timing.SoftDropMultiplier <= 0 || cfg.Timing.SoftDropMultiplier >= 1 {
		cfg.Timing.SoftDropMultiplier = def.Timing.SoftDropMultiplier
	}
	if cfg.Timing.LockDelaySeconds <= 0 {
		cfg.Timing.LockDelaySeconds = def.Timing.LockDelaySeconds
	}

	return Rules{
		BoardWidth:         cfg.Board.Width,
		VisibleHeight:      cfg.Board.VisibleHeight,
		HiddenRows:         cfg.Board.HiddenRows,
		GravityStart:       secondsToDuration(cfg.Timing.GravityStartSeconds),
		GravityFloor:       secondsToDuration(cfg.Timing.GravityFloorSeconds),
		GravityLevelStep:   cfg.Timing.GravityLevelStep,
		SoftDropMultiplier: cfg.Timing.SoftDropMultiplier,
		LockDelay:          secondsToDuration(cfg.Timing.LockDelaySeconds),
	}
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
