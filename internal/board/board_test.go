package board

import (
	"testing"

	"github.com/vovakirdan/tetrus/internal/tetromino"
)

func newTestBoard() *Board {
	return New(12, 24, 2)
}

// fillRow locks three horizontal I pieces across a full 12-wide row.
func fillRow(t *testing.T, b *Board, y int) {
	t.Helper()
	for _, x := range []int{0, 4, 8} {
		p := tetromino.Piece{Kind: tetromino.KindI, Rotation: 0, X: x, Y: y}
		if !b.CanPlace(p) {
			t.Fatalf("cannot place filler I at (%d, %d)", x, y)
		}
		b.Lock(p)
	}
}

func TestNewBoardDimensions(t *testing.T) {
	b := newTestBoard()

	if b.Width() != 12 {
		t.Errorf("Width() = %d, want 12", b.Width())
	}
	if b.VisibleHeight() != 24 {
		t.Errorf("VisibleHeight() = %d, want 24", b.VisibleHeight())
	}
	if b.HiddenRows() != 2 {
		t.Errorf("HiddenRows() = %d, want 2", b.HiddenRows())
	}
	if b.TotalHeight() != 26 {
		t.Errorf("TotalHeight() = %d, want 26", b.TotalHeight())
	}
	if len(b.VisibleRows()) != 24 {
		t.Errorf("VisibleRows() returned %d rows, want 24", len(b.VisibleRows()))
	}
}

func TestCanPlaceBounds(t *testing.T) {
	b := newTestBoard()

	inside := tetromino.Piece{Kind: tetromino.KindO, X: 5, Y: 5}
	if !b.CanPlace(inside) {
		t.Error("piece inside an empty board should be placeable")
	}

	tests := []struct {
		name  string
		piece tetromino.Piece
	}{
		{"past left wall", tetromino.Piece{Kind: tetromino.KindO, X: -1, Y: 5}},
		{"past right wall", tetromino.Piece{Kind: tetromino.KindO, X: 11, Y: 5}},
		{"past floor", tetromino.Piece{Kind: tetromino.KindO, X: 5, Y: 25}},
		{"above ceiling", tetromino.Piece{Kind: tetromino.KindO, X: 5, Y: -1}},
	}

	for _, tt := range tests {
		if b.CanPlace(tt.piece) {
			t.Errorf("%s: CanPlace should be false for %+v", tt.name, tt.piece)
		}
	}
}

func TestCanPlaceCollision(t *testing.T) {
	b := newTestBoard()

	locked := tetromino.Piece{Kind: tetromino.KindO, X: 5, Y: 10}
	b.Lock(locked)

	if b.CanPlace(locked) {
		t.Error("piece overlapping locked cells should not be placeable")
	}

	// Adjacent placement is fine.
	beside := tetromino.Piece{Kind: tetromino.KindO, X: 7, Y: 10}
	if !b.CanPlace(beside) {
		t.Error("piece beside locked cells should be placeable")
	}
}

func TestLockRecordsKind(t *testing.T) {
	b := newTestBoard()

	p := tetromino.Piece{Kind: tetromino.KindT, X: 4, Y: 20}
	b.Lock(p)

	for _, c := range p.Cells() {
		cell := b.Cell(c.X, c.Y)
		if !cell.Occupied {
			t.Errorf("cell (%d, %d) should be occupied after lock", c.X, c.Y)
		}
		if cell.Kind != tetromino.KindT {
			t.Errorf("cell (%d, %d) kind = %s, want T", c.X, c.Y, cell.Kind)
		}
	}
}

func TestLockOutOfBoundsPanics(t *testing.T) {
	b := newTestBoard()

	defer func() {
		if recover() == nil {
			t.Error("locking an out-of-bounds piece should panic")
		}
	}()
	b.Lock(tetromino.Piece{Kind: tetromino.KindO, X: -1, Y: 0})
}

func TestClearSingleLine(t *testing.T) {
	b := newTestBoard()
	bottom := b.TotalHeight() - 1

	// Marker above the line to verify the shift down.
	marker := tetromino.Piece{Kind: tetromino.KindO, X: 0, Y: bottom - 3}
	b.Lock(marker)

	fillRow(t, b, bottom)

	res := b.ClearCompletedLines()
	if res.Cleared != 1 {
		t.Fatalf("Cleared = %d, want 1", res.Cleared)
	}
	if res.ScoreGain != 40 {
		t.Errorf("ScoreGain = %d, want 40", res.ScoreGain)
	}

	// Bottom row is now empty.
	for x := 0; x < b.Width(); x++ {
		if b.Cell(x, bottom).Occupied {
			t.Errorf("cell (%d, %d) should be empty after clear", x, bottom)
		}
	}

	// Marker moved down by one row.
	if !b.Cell(0, bottom-2).Occupied || !b.Cell(1, bottom-2).Occupied {
		t.Error("cells above the cleared line should shift down by one row")
	}
	if b.Cell(0, bottom-3).Occupied {
		t.Error("marker's old top row should be empty after the shift")
	}
}

func TestClearScoreTable(t *testing.T) {
	tests := []struct {
		rows  int
		score int
	}{
		{1, 40},
		{2, 100},
		{3, 300},
		{4, 1200},
	}

	for _, tt := range tests {
		b := newTestBoard()
		bottom := b.TotalHeight() - 1
		for i := 0; i < tt.rows; i++ {
			fillRow(t, b, bottom-i)
		}

		res := b.ClearCompletedLines()
		if res.Cleared != tt.rows {
			t.Errorf("%d rows: Cleared = %d", tt.rows, res.Cleared)
		}
		if res.ScoreGain != tt.score {
			t.Errorf("%d rows: ScoreGain = %d, want %d", tt.rows, res.ScoreGain, tt.score)
		}
	}
}

func TestClearNothingWhenNoFullRows(t *testing.T) {
	b := newTestBoard()
	b.Lock(tetromino.Piece{Kind: tetromino.KindS, X: 4, Y: 20})

	res := b.ClearCompletedLines()
	if res.Cleared != 0 || res.ScoreGain != 0 {
		t.Errorf("partial rows should not clear: %+v", res)
	}

	// The locked cells are untouched.
	if !b.Cell(5, 20).Occupied {
		t.Error("locked cells should survive a no-op clear scan")
	}
}

func TestClearRemovesNonAdjacentRows(t *testing.T) {
	b := newTestBoard()
	bottom := b.TotalHeight() - 1

	// Two full rows separated by a partial one.
	fillRow(t, b, bottom)
	b.Lock(tetromino.Piece{Kind: tetromino.KindI, Rotation: 0, X: 0, Y: bottom - 1})
	fillRow(t, b, bottom-2)

	res := b.ClearCompletedLines()
	if res.Cleared != 2 {
		t.Fatalf("Cleared = %d, want 2", res.Cleared)
	}
	if res.ScoreGain != 100 {
		t.Errorf("ScoreGain = %d, want 100", res.ScoreGain)
	}

	// The partial row dropped to the bottom.
	if !b.Cell(0, bottom).Occupied || b.Cell(4, bottom).Occupied {
		t.Error("partial row should settle on the floor after both full rows clear")
	}
}

func TestDropDistanceAndHardDrop(t *testing.T) {
	b := newTestBoard()
	bottom := b.TotalHeight() - 1

	p := tetromino.Piece{Kind: tetromino.KindI, Rotation: 0, X: 0, Y: 0}
	if d := b.DropDistance(p); d != bottom {
		t.Errorf("DropDistance on empty board = %d, want %d", d, bottom)
	}

	rested := b.HardDrop(p)
	if rested.Y != bottom {
		t.Errorf("HardDrop rested at y=%d, want %d", rested.Y, bottom)
	}

	// An obstacle stops the drop one row higher.
	b.Lock(rested)
	second := b.HardDrop(p)
	if second.Y != bottom-1 {
		t.Errorf("HardDrop onto stack rested at y=%d, want %d", second.Y, bottom-1)
	}
}

func TestColumnHeights(t *testing.T) {
	b := newTestBoard()
	bottom := b.TotalHeight() - 1

	b.Lock(tetromino.Piece{Kind: tetromino.KindO, X: 0, Y: bottom - 1})

	heights := b.ColumnHeights()
	if heights[0] != 2 || heights[1] != 2 {
		t.Errorf("columns 0-1 height = %d/%d, want 2/2", heights[0], heights[1])
	}
	for x := 2; x < b.Width(); x++ {
		if heights[x] != 0 {
			t.Errorf("column %d height = %d, want 0", x, heights[x])
		}
	}
}

func TestResetEmptiesBoard(t *testing.T) {
	b := newTestBoard()
	b.Lock(tetromino.Piece{Kind: tetromino.KindZ, X: 4, Y: 20})

	b.Reset()

	for y := 0; y < b.TotalHeight(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.Cell(x, y).Occupied {
				t.Fatalf("cell (%d, %d) occupied after Reset", x, y)
			}
		}
	}
}
