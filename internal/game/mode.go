package game

import (
	"fmt"
	"time"
)

// Mode is a session goal variant: open-ended, a fixed line-count target,
// or a fixed time limit. ID keys score storage; Name is for display.
type Mode struct {
	ID          string
	Name        string
	TargetLines int           // 0 = no line target
	TimeLimit   time.Duration // 0 = no time limit
}

// Marathon returns the open-ended mode.
func Marathon() Mode {
	return Mode{ID: "marathon", Name: "Marathon"}
}

// Sprint returns a mode that ends once the given number of lines is cleared.
func Sprint(lines int) Mode {
	return Mode{
		ID:          fmt.Sprintf("sprint-%d", lines),
		Name:        fmt.Sprintf("Sprint (%d lines)", lines),
		TargetLines: lines,
	}
}

// Ultra returns a mode that ends when the time limit expires.
func Ultra(limit time.Duration) Mode {
	seconds := int(limit.Seconds())
	label := fmt.Sprintf("Ultra (%d s)", seconds)
	if seconds%60 == 0 {
		label = fmt.Sprintf("Ultra (%d min)", seconds/60)
	}
	return Mode{
		ID:        fmt.Sprintf("ultra-%d", seconds),
		Name:      label,
		TimeLimit: limit,
	}
}

// Presets lists the standard modes shown by the modes command and the
// SSH session menu.
func Presets() []Mode {
	return []Mode{
		Marathon(),
		Sprint(40),
		Ultra(2 * time.Minute),
	}
}
