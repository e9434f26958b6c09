// Package game implements the gameplay state machine: it owns the board,
// the randomizer, the active/next/held piece, score and level counters,
// and all timers, and advances one tick at a time from elapsed monotonic
// time plus an ordered queue of input actions.
package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tetrus/internal/board"
	"github.com/vovakirdan/tetrus/internal/core"
	"github.com/vovakirdan/tetrus/internal/tetromino"
)

// Outcome classifies how a tick left the session.
type Outcome int

const (
	OutcomeContinue     Outcome = iota
	OutcomeGameOver             // no room to spawn, or held piece unplaceable
	OutcomeModeComplete         // line target or time limit reached
	OutcomeQuit                 // user-requested abort
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "Continue"
	case OutcomeGameOver:
		return "GameOver"
	case OutcomeModeComplete:
		return "ModeComplete"
	case OutcomeQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Result is the tagged outcome of a tick. The driving loop keeps ticking
// while the outcome is OutcomeContinue.
type Result struct {
	Outcome Outcome
	Reason  string
}

// Game is the engine for one play session. It is single-threaded: the
// driving loop owns it and calls Update to completion before rendering.
type Game struct {
	mode  Mode
	rules Rules

	board     *board.Board
	bag       *tetromino.Bag
	nextPiece func() tetromino.Piece

	current  *tetromino.Piece
	next     tetromino.Piece
	held     tetromino.Kind
	hasHeld  bool
	holdUsed bool

	score     int
	level     int
	lines     int
	bestScore int

	gravityInterval time.Duration
	lastFall        time.Time
	lockArmed       bool
	lockArmedAt     time.Time

	startedAt time.Time
	endedAt   time.Time
	paused    bool
	pausedAt  time.Time

	done *Result
}

// New creates a session for the given mode over an injected random
// source. Call Start before the first Update.
func New(mode Mode, rules Rules, rng *rand.Rand) *Game {
	g := &Game{
		mode:  mode,
		rules: rules,
		board: board.New(rules.BoardWidth, rules.VisibleHeight, rules.HiddenRows),
		bag:   tetromino.NewBag(rng),
		level: 1,
	}
	g.nextPiece = g.bag.Pieces(rules.BoardWidth)
	g.updateGravityInterval()
	return g
}

// SetBestScore seeds the best score shown in the HUD, typically loaded
// from the score store at session start.
func (g *Game) SetBestScore(best int) {
	g.bestScore = best
}

// Start stamps the session clock and deals the first preview piece.
func (g *Game) Start(now time.Time) {
	g.startedAt = now
	g.lastFall = now
	g.next = g.nextPiece()
}

// Update advances the state machine one tick: spawn if needed, apply the
// queued actions in arrival order, apply gravity, resolve lock delay, and
// check the mode's time limit. All timer comparisons use deltas against
// previously recorded timestamps, so now must come from a monotonic clock.
func (g *Game) Update(now time.Time, actions []core.Action) Result {
	if g.done != nil {
		return *g.done
	}

	if g.paused {
		for _, a := range actions {
			if a == core.ActionPause {
				g.resume(now)
				break
			}
		}
		return Result{Outcome: OutcomeContinue}
	}

	if g.current == nil {
		if r := g.spawnNext(); r != nil {
			return g.finish(now, *r)
		}
	}

	softDrop := false
	for _, a := range actions {
		switch a {
		case core.ActionMoveLeft:
			g.move(now, -1, 0)
		case core.ActionMoveRight:
			g.move(now, 1, 0)
		case core.ActionRotateCW:
			g.rotate(true)
		case core.ActionRotateCCW:
			g.rotate(false)
		case core.ActionSoftDrop:
			softDrop = true
			if g.move(now, 0, 1) {
				g.score++
			} else {
				g.armLock(now)
			}
		case core.ActionHardDrop:
			if g.current == nil {
				continue
			}
			distance := g.board.DropDistance(*g.current)
			moved := g.current.Moved(0, distance)
			g.current = &moved
			g.score += 2 * distance
			if r := g.lockCurrent(); r != nil {
				return g.finish(now, *r)
			}
			if r := g.spawnNext(); r != nil {
				return g.finish(now, *r)
			}
		case core.ActionHold:
			if r := g.holdPiece(); r != nil {
				return g.finish(now, *r)
			}
		case core.ActionPause:
			// Remaining queued actions are dropped; only unpause is
			// processed while paused.
			g.pause(now)
			return Result{Outcome: OutcomeContinue}
		case core.ActionQuit:
			return g.finish(now, Result{Outcome: OutcomeQuit, Reason: "quit"})
		}
	}

	if g.current != nil {
		interval := g.gravityInterval
		if softDrop {
			interval = time.Duration(float64(interval) * g.rules.SoftDropMultiplier)
		}
		if now.Sub(g.lastFall) >= interval {
			if !g.move(now, 0, 1) {
				g.armLock(now)
			}
			g.lastFall = now
		}
	}

	if g.current != nil && g.lockArmed && now.Sub(g.lockArmedAt) >= g.rules.LockDelay {
		if r := g.lockCurrent(); r != nil {
			return g.finish(now, *r)
		}
	}

	if g.mode.TimeLimit > 0 && now.Sub(g.startedAt) >= g.mode.TimeLimit {
		return g.finish(now, Result{Outcome: OutcomeModeComplete, Reason: "time limit reached"})
	}

	return Result{Outcome: OutcomeContinue}
}

// spawnNext promotes the preview piece to current and deals a new
// preview. Returns a terminal result when the spawn position is blocked.
func (g *Game) spawnNext() *Result {
	piece := g.next
	g.next = g.nextPiece()
	g.current = &piece
	g.holdUsed = false
	g.lockArmed = false
	if !g.board.CanPlace(piece) {
		return &Result{Outcome: OutcomeGameOver, Reason: "no room to spawn"}
	}
	return nil
}

// move translates the current piece if the playfield allows it. A
// successful move cancels any pending lock; a successful downward move
// also resets the gravity timer.
func (g *Game) move(now time.Time, dx, dy int) bool {
	if g.current == nil {
		return false
	}
	moved := g.current.Moved(dx, dy)
	if !g.board.CanPlace(moved) {
		return false
	}
	g.current = &moved
	if dy > 0 {
		g.lastFall = now
	}
	g.lockArmed = false
	return true
}

// rotate rotates the current piece and tries the horizontal kick offsets
// 0, -1, +1, -2, +2 in order, keeping the first placeable candidate.
// When none fits the rotation is abandoned.
func (g *Game) rotate(clockwise bool) {
	if g.current == nil {
		return
	}
	rotated := g.current.Rotated(clockwise)
	for _, kick := range [...]int{0, -1, 1, -2, 2} {
		candidate := rotated.Moved(kick, 0)
		if g.board.CanPlace(candidate) {
			g.current = &candidate
			g.lockArmed = false
			return
		}
	}
}

// armLock starts the lock-delay timer unless it is already running.
func (g *Game) armLock(now time.Time) {
	if !g.lockArmed {
		g.lockArmed = true
		g.lockArmedAt = now
	}
}

// lockCurrent commits the current piece to the board, resolves line
// clears and scoring, and clears the active piece. Returns a terminal
// result when the mode's line target is reached.
func (g *Game) lockCurrent() *Result {
	g.board.Lock(*g.current)
	g.current = nil
	g.lockArmed = false

	res := g.board.ClearCompletedLines()
	if res.Cleared == 0 {
		return nil
	}

	g.lines += res.Cleared
	g.level = 1 + g.lines/10
	g.score += res.ScoreGain * g.level
	g.updateGravityInterval()

	if g.mode.TargetLines > 0 && g.lines >= g.mode.TargetLines {
		return &Result{Outcome: OutcomeModeComplete, Reason: "line target reached"}
	}
	return nil
}

// holdPiece stashes or swaps the current piece's kind. The first hold of
// a session clears the active piece and lets the next tick spawn from
// the randomizer; that spawn re-enables hold, so the replacement may be
// swapped with the stash. A swap respawns the held kind at its canonical
// position and spends hold until the next spawn.
func (g *Game) holdPiece() *Result {
	if g.current == nil || g.holdUsed {
		return nil
	}
	swapKind := g.current.Kind

	if !g.hasHeld {
		// First hold of the session: stash and clear the active piece;
		// the next tick spawns fresh from the randomizer.
		g.held = swapKind
		g.hasHeld = true
		g.current = nil
		g.lockArmed = false
		g.holdUsed = true
		return nil
	}

	replacement := tetromino.Spawn(g.held, g.board.Width())
	if !g.board.CanPlace(replacement) {
		return &Result{Outcome: OutcomeGameOver, Reason: "cannot place held piece"}
	}
	g.held = swapKind
	g.current = &replacement
	g.lockArmed = false
	g.holdUsed = true
	return nil
}

func (g *Game) pause(now time.Time) {
	g.paused = true
	g.pausedAt = now
}

// resume shifts every recorded timestamp forward by the pause duration
// so gravity, lock delay, and the session clock do not advance while
// paused.
func (g *Game) resume(now time.Time) {
	delta := now.Sub(g.pausedAt)
	g.lastFall = g.lastFall.Add(delta)
	g.startedAt = g.startedAt.Add(delta)
	if g.lockArmed {
		g.lockArmedAt = g.lockArmedAt.Add(delta)
	}
	g.paused = false
}

// updateGravityInterval derives the fall interval from the level.
func (g *Game) updateGravityInterval() {
	interval := float64(g.rules.GravityStart) * math.Pow(g.rules.GravityLevelStep, float64(g.level-1))
	g.gravityInterval = time.Duration(interval)
	if g.gravityInterval < g.rules.GravityFloor {
		g.gravityInterval = g.rules.GravityFloor
	}
}

func (g *Game) finish(now time.Time, r Result) Result {
	g.endedAt = now
	g.done = &r
	return r
}

// Mode returns the session's mode descriptor.
func (g *Game) Mode() Mode {
	return g.mode
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Board exposes the playfield for read-only queries.
func (g *Game) Board() *board.Board {
	return g.board
}

// Done returns the terminal result, or nil while the session is live.
func (g *Game) Done() *Result {
	return g.done
}
