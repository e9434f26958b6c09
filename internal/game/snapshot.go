package game

import (
	"time"

	"github.com/vovakirdan/tetrus/internal/board"
	"github.com/vovakirdan/tetrus/internal/tetromino"
)

// Snapshot is the render-ready view of one tick: everything the external
// renderer needs, and nothing it may mutate. The board pointer is shared
// for reading; all other fields are copies.
type Snapshot struct {
	Board   *board.Board
	Current *tetromino.Piece
	Ghost   *tetromino.Piece // projected resting position, nil when no piece is active

	NextKind tetromino.Kind
	HeldKind tetromino.Kind
	HasHeld  bool

	Score     int
	Level     int
	Lines     int
	BestScore int

	Mode          Mode
	Elapsed       time.Duration
	TimeRemaining time.Duration // meaningful only when Mode.TimeLimit > 0

	Paused  bool
	Outcome Outcome
	Reason  string
}

// Snapshot captures the current state for rendering. The session clock
// freezes while paused and stops at the terminal outcome.
func (g *Game) Snapshot(now time.Time) Snapshot {
	snap := Snapshot{
		Board:     g.board,
		NextKind:  g.next.Kind,
		HeldKind:  g.held,
		HasHeld:   g.hasHeld,
		Score:     g.score,
		Level:     g.level,
		Lines:     g.lines,
		BestScore: g.bestScore,
		Mode:      g.mode,
		Paused:    g.paused,
		Outcome:   OutcomeContinue,
	}

	if g.current != nil {
		current := *g.current
		ghost := g.board.HardDrop(current)
		snap.Current = &current
		snap.Ghost = &ghost
	}

	reference := now
	switch {
	case g.done != nil:
		reference = g.endedAt
	case g.paused:
		reference = g.pausedAt
	}
	snap.Elapsed = reference.Sub(g.startedAt)

	if g.mode.TimeLimit > 0 {
		remaining := g.mode.TimeLimit - snap.Elapsed
		if remaining < 0 {
			remaining = 0
		}
		snap.TimeRemaining = remaining
	}

	if g.done != nil {
		snap.Outcome = g.done.Outcome
		snap.Reason = g.done.Reason
	}

	return snap
}
