package tui

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tetrus/internal/core"
	"github.com/vovakirdan/tetrus/internal/game"
)

func testSnapshot(t *testing.T) game.Snapshot {
	t.Helper()
	base := time.Unix(1700000000, 0)
	g := game.New(game.Marathon(), game.DefaultRules(), rand.New(rand.NewSource(3)))
	g.Start(base)
	if res := g.Update(base, nil); res.Outcome != game.OutcomeContinue {
		t.Fatalf("setup update ended the session: %+v", res)
	}
	return g.Snapshot(base)
}

func TestDrawSnapshotLayout(t *testing.T) {
	snap := testSnapshot(t)
	screen := core.NewScreen(80, 40)

	DrawSnapshot(screen, snap)

	// Playfield border corner.
	if got := screen.GetCell(playfieldOriginX-1, playfieldOriginY-1); got.Rune != '┌' {
		t.Errorf("expected border corner at playfield origin, got %q", got.Rune)
	}

	// HUD title on the first playfield row.
	if row := screen.Row(playfieldOriginY); !strings.Contains(row, "Tetrus") {
		t.Errorf("HUD title missing from row %d: %q", playfieldOriginY, row)
	}

	// Mode and score lines present.
	full := screen.String()
	if !strings.Contains(full, "Mode : Marathon") {
		t.Error("mode line missing from HUD")
	}
	if !strings.Contains(full, "Score: 0") {
		t.Error("score line missing from HUD")
	}

	// Ghost projection rests on the bottom visible row.
	bottomRow := screen.Row(playfieldOriginY + snap.Board.VisibleHeight() - 1)
	if !strings.Contains(bottomRow, ghostGlyph) {
		t.Errorf("ghost glyph missing from bottom row: %q", bottomRow)
	}
}

func TestDrawSnapshotTooSmall(t *testing.T) {
	snap := testSnapshot(t)
	screen := core.NewScreen(20, 10)

	DrawSnapshot(screen, snap)

	if row := screen.Row(0); !strings.Contains(row, "Terminal too") {
		t.Errorf("resize message missing on a too-small screen: %q", row)
	}
}

func TestDrawSnapshotHoldPreviewEmptyUntilUsed(t *testing.T) {
	snap := testSnapshot(t)
	if snap.HasHeld {
		t.Fatal("fresh session should have no held piece")
	}

	lines := hudLines(snap)
	holdIdx := -1
	for i, l := range lines {
		if l.text == "Hold:" {
			holdIdx = i
			break
		}
	}
	if holdIdx < 0 {
		t.Fatal("HUD has no hold section")
	}
	for _, l := range lines[holdIdx+1 : holdIdx+1+previewSize] {
		if strings.Contains(l.text, solidGlyph) {
			t.Errorf("hold preview should be empty before the first hold: %q", l.text)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{59 * time.Second, "00:59"},
		{60 * time.Second, "01:00"},
		{2*time.Minute + 5*time.Second, "02:05"},
		{-time.Second, "00:00"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
