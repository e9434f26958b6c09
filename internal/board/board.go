// Package board owns the playfield grid: collision queries, piece
// locking, and line clearing. The grid is width W by visible height plus
// hidden buffer rows above the visible area, which give pieces headroom
// to spawn and rotate before entering view.
package board

import (
	"fmt"

	"github.com/vovakirdan/tetrus/internal/tetromino"
)

// Cell is one playfield slot. An occupied cell remembers the kind of the
// piece that locked it, which drives per-kind coloring in the renderer.
type Cell struct {
	Kind     tetromino.Kind
	Occupied bool
}

// LineClearResult reports the outcome of a line-clear scan.
type LineClearResult struct {
	Cleared   int
	ScoreGain int
}

// Board is the playfield grid. The grid always holds exactly
// totalHeight complete rows of width cells.
type Board struct {
	width         int
	visibleHeight int
	hiddenRows    int
	totalHeight   int
	grid          [][]Cell
}

// New creates an empty board with the given visible dimensions and
// hidden buffer rows.
func New(width, visibleHeight, hiddenRows int) *Board {
	b := &Board{
		width:         width,
		visibleHeight: visibleHeight,
		hiddenRows:    hiddenRows,
		totalHeight:   visibleHeight + hiddenRows,
	}
	b.Reset()
	return b
}

// Reset clears every cell, keeping dimensions.
func (b *Board) Reset() {
	b.grid = make([][]Cell, b.totalHeight)
	for y := range b.grid {
		b.grid[y] = make([]Cell, b.width)
	}
}

// Width returns the board width in cells.
func (b *Board) Width() int { return b.width }

// VisibleHeight returns the number of rows shown to the player.
func (b *Board) VisibleHeight() int { return b.visibleHeight }

// HiddenRows returns the number of buffer rows above the visible area.
func (b *Board) HiddenRows() int { return b.hiddenRows }

// TotalHeight returns visible height plus hidden rows.
func (b *Board) TotalHeight() int { return b.totalHeight }

// IsInside reports whether (x, y) lies within the full grid.
func (b *Board) IsInside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.totalHeight
}

// IsCellFree reports whether (x, y) is inside the grid and unoccupied.
func (b *Board) IsCellFree(x, y int) bool {
	return b.IsInside(x, y) && !b.grid[y][x].Occupied
}

// CanPlace reports whether every cell of the piece is inside the grid
// and unoccupied. This is the sole collision predicate: move, rotate,
// spawn, and drop all reduce to this check.
func (b *Board) CanPlace(p tetromino.Piece) bool {
	for _, c := range p.Cells() {
		if !b.IsCellFree(c.X, c.Y) {
			return false
		}
	}
	return true
}

// Lock writes the piece's kind into every cell it occupies. Callers must
// have verified placement via CanPlace; locking an out-of-bounds piece is
// a programming error and panics.
func (b *Board) Lock(p tetromino.Piece) {
	for _, c := range p.Cells() {
		if !b.IsInside(c.X, c.Y) {
			panic(fmt.Sprintf("board: locking piece %s outside bounds at (%d, %d)", p.Kind, c.X, c.Y))
		}
	}
	for _, c := range p.Cells() {
		b.grid[c.Y][c.X] = Cell{Kind: p.Kind, Occupied: true}
	}
}

// ClearCompletedLines removes every fully occupied row in one pass,
// prepends that many fresh empty rows at the top, and returns the count
// cleared along with the base score award (before level multiplication):
// 0, 40, 100, 300, 1200 for 0..4+ rows.
func (b *Board) ClearCompletedLines() LineClearResult {
	kept := make([][]Cell, 0, b.totalHeight)
	cleared := 0
	for _, row := range b.grid {
		if rowFull(row) {
			cleared++
		} else {
			kept = append(kept, row)
		}
	}

	if cleared > 0 {
		grid := make([][]Cell, 0, b.totalHeight)
		for i := 0; i < cleared; i++ {
			grid = append(grid, make([]Cell, b.width))
		}
		grid = append(grid, kept...)
		b.grid = grid
	}

	return LineClearResult{Cleared: cleared, ScoreGain: baseScore(cleared)}
}

func rowFull(row []Cell) bool {
	for _, c := range row {
		if !c.Occupied {
			return false
		}
	}
	return true
}

func baseScore(cleared int) int {
	switch {
	case cleared <= 0:
		return 0
	case cleared == 1:
		return 40
	case cleared == 2:
		return 100
	case cleared == 3:
		return 300
	default:
		return 1200
	}
}

// DropDistance returns how many unit downward steps the piece can take
// while remaining placeable at every intermediate step.
func (b *Board) DropDistance(p tetromino.Piece) int {
	distance := 0
	for b.CanPlace(p.Moved(0, 1)) {
		p = p.Moved(0, 1)
		distance++
	}
	return distance
}

// HardDrop returns the piece translated to its resting position.
func (b *Board) HardDrop(p tetromino.Piece) tetromino.Piece {
	return p.Moved(0, b.DropDistance(p))
}

// Cell returns the cell at (x, y), or an empty cell when out of bounds.
func (b *Board) Cell(x, y int) Cell {
	if !b.IsInside(x, y) {
		return Cell{}
	}
	return b.grid[y][x]
}

// VisibleRows returns the rows below the hidden buffer, top first.
// The returned slices alias the grid and must not be mutated.
func (b *Board) VisibleRows() [][]Cell {
	return b.grid[b.hiddenRows:]
}

// ColumnHeights returns, per column, the height from the grid bottom to
// the first occupied cell. Used by heuristics and rendering only.
func (b *Board) ColumnHeights() []int {
	heights := make([]int, b.width)
	for x := 0; x < b.width; x++ {
		for y := 0; y < b.totalHeight; y++ {
			if b.grid[y][x].Occupied {
				heights[x] = b.totalHeight - y
				break
			}
		}
	}
	return heights
}
