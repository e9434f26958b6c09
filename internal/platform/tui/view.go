package tui

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tetrus/internal/core"
	"github.com/vovakirdan/tetrus/internal/game"
	"github.com/vovakirdan/tetrus/internal/tetromino"
)

// Playfield layout constants. Each board cell is two characters wide so
// the playfield reads roughly square in a terminal.
const (
	cellWidth        = 2
	playfieldOriginX = 2
	playfieldOriginY = 1
	hudGap           = 3
	previewSize      = 4
)

const (
	solidGlyph = "[]"
	ghostGlyph = ".."
	emptyGlyph = "  "
)

// kindColors maps every tetromino kind to its display color.
var kindColors = map[tetromino.Kind]core.Color{
	tetromino.KindI: core.ColorBrightCyan,
	tetromino.KindJ: core.ColorBlue,
	tetromino.KindL: core.ColorOrange,
	tetromino.KindO: core.ColorBrightYellow,
	tetromino.KindS: core.ColorGreen,
	tetromino.KindT: core.ColorMagenta,
	tetromino.KindZ: core.ColorRed,
}

var controlsLegend = []string{
	"←/h : move left",
	"→/l : move right",
	"↑/x : rotate CW",
	"z   : rotate CCW",
	"c   : hold piece",
	"↓/j : soft drop",
	"spc : hard drop",
	"p   : pause",
	"q   : quit",
}

// DrawSnapshot renders one engine snapshot into the screen buffer.
// When the terminal is too small for the full layout it draws a resize
// message instead.
func DrawSnapshot(dst *core.Screen, snap game.Snapshot) {
	dst.Clear()

	hud := hudLines(snap)
	reqW, reqH := requiredSize(snap, hud)
	if dst.Width() < reqW || dst.Height() < reqH {
		drawResizeMessage(dst, reqW, reqH)
		return
	}

	drawBorder(dst, snap)
	drawBoard(dst, snap)
	if snap.Ghost != nil {
		drawPiece(dst, snap, *snap.Ghost, false)
	}
	if snap.Current != nil {
		drawPiece(dst, snap, *snap.Current, true)
	}
	drawHUD(dst, snap, hud)

	switch {
	case snap.Outcome != game.OutcomeContinue:
		drawOutcomeOverlay(dst, snap)
	case snap.Paused:
		drawOverlay(dst, "Paused", "Press p to resume")
	}
}

func drawBorder(dst *core.Screen, snap game.Snapshot) {
	w := snap.Board.Width()*cellWidth + 2
	h := snap.Board.VisibleHeight() + 2
	dst.DrawBox(playfieldOriginX-1, playfieldOriginY-1, w, h, core.ColorWhite)
}

func drawBoard(dst *core.Screen, snap game.Snapshot) {
	for vy, row := range snap.Board.VisibleRows() {
		for x, cell := range row {
			if !cell.Occupied {
				continue
			}
			drawCell(dst, x, vy, solidGlyph, kindColors[cell.Kind])
		}
	}
}

// drawPiece draws a piece's cells, skipping rows still inside the hidden
// buffer.
func drawPiece(dst *core.Screen, snap game.Snapshot, p tetromino.Piece, solid bool) {
	glyph := solidGlyph
	color := kindColors[p.Kind]
	if !solid {
		glyph = ghostGlyph
		color = core.ColorGray
	}
	for _, c := range p.Cells() {
		vy := c.Y - snap.Board.HiddenRows()
		if vy < 0 || vy >= snap.Board.VisibleHeight() {
			continue
		}
		if c.X >= 0 && c.X < snap.Board.Width() {
			drawCell(dst, c.X, vy, glyph, color)
		}
	}
}

func drawCell(dst *core.Screen, x, visibleY int, glyph string, color core.Color) {
	px := playfieldOriginX + x*cellWidth
	py := playfieldOriginY + visibleY
	for i, r := range glyph {
		dst.SetColored(px+i, py, r, color)
	}
}

// hudLine pairs a row offset (from the playfield origin) with text.
type hudLine struct {
	offset int
	text   string
}

func hudLines(snap game.Snapshot) []hudLine {
	var lines []hudLine
	cursor := 0
	push := func(text string) {
		lines = append(lines, hudLine{offset: cursor, text: text})
		cursor++
	}

	push("Tetrus")
	cursor++
	push(fmt.Sprintf("Mode : %s", snap.Mode.Name))
	push(fmt.Sprintf("Score: %d", snap.Score))
	push(fmt.Sprintf("Best : %d", snap.BestScore))
	push(fmt.Sprintf("Level: %d", snap.Level))
	if snap.Mode.TargetLines > 0 {
		push(fmt.Sprintf("Lines: %d/%d", snap.Lines, snap.Mode.TargetLines))
	} else {
		push(fmt.Sprintf("Lines: %d", snap.Lines))
	}
	if snap.Mode.TimeLimit > 0 {
		push(fmt.Sprintf("Time left: %s", formatDuration(snap.TimeRemaining)))
	} else {
		push(fmt.Sprintf("Time : %s", formatDuration(snap.Elapsed)))
	}
	cursor++

	push("Next:")
	for _, row := range miniPieceLines(snap.NextKind, true) {
		push(row)
	}
	cursor++

	push("Hold:")
	heldKind := snap.HeldKind
	for _, row := range miniPieceLines(heldKind, snap.HasHeld) {
		push(row)
	}
	cursor++

	push("Controls:")
	for _, line := range controlsLegend {
		push(line)
	}

	return lines
}

// miniPieceLines renders a kind into a fixed 4x4 preview block.
func miniPieceLines(kind tetromino.Kind, show bool) []string {
	grid := make([][]string, previewSize)
	for y := range grid {
		grid[y] = make([]string, previewSize)
		for x := range grid[y] {
			grid[y][x] = emptyGlyph
		}
	}
	if show {
		for _, o := range tetromino.Offsets(kind, 0) {
			grid[o.Y][o.X] = solidGlyph
		}
	}
	rows := make([]string, previewSize)
	for y, row := range grid {
		joined := ""
		for _, cell := range row {
			joined += cell
		}
		rows[y] = joined
	}
	return rows
}

// hudOriginX returns the column where HUD text starts, right of the
// playfield border.
func hudOriginX(snap game.Snapshot) int {
	return playfieldOriginX + snap.Board.Width()*cellWidth + hudGap
}

func drawHUD(dst *core.Screen, snap game.Snapshot, lines []hudLine) {
	x := hudOriginX(snap)
	for _, line := range lines {
		dst.DrawTextColored(x, playfieldOriginY+line.offset, line.text, core.ColorWhite)
	}
}

func requiredSize(snap game.Snapshot, hud []hudLine) (w, h int) {
	maxHud := 0
	bottom := 0
	for _, line := range hud {
		if len([]rune(line.text)) > maxHud {
			maxHud = len([]rune(line.text))
		}
		if line.offset > bottom {
			bottom = line.offset
		}
	}
	w = hudOriginX(snap) + maxHud + 1
	boardBottom := playfieldOriginY + snap.Board.VisibleHeight() + 1
	h = core.Max(boardBottom, playfieldOriginY+bottom) + 1
	return w, h
}

func drawResizeMessage(dst *core.Screen, reqW, reqH int) {
	messages := []string{
		"Terminal too small for Tetrus.",
		fmt.Sprintf("Need at least %d x %d.", reqW, reqH),
		fmt.Sprintf("Current size %d x %d.", dst.Width(), dst.Height()),
		"Please enlarge the window.",
	}
	for i, text := range messages {
		dst.DrawText(0, i, text)
	}
}

// drawOverlay draws a centered two-line message box over the playfield.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	drawOverlayLines(dst, []string{line1, "", line2})
}

func drawOutcomeOverlay(dst *core.Screen, snap game.Snapshot) {
	var title string
	switch snap.Outcome {
	case game.OutcomeGameOver:
		title = "Game Over"
	case game.OutcomeModeComplete:
		title = "Mode Complete!"
	case game.OutcomeQuit:
		title = "Session ended"
	}

	lines := []string{
		title,
		"",
		fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.BestScore),
		fmt.Sprintf("Lines: %d  Level: %d", snap.Lines, snap.Level),
		fmt.Sprintf("Time : %s", formatDuration(snap.Elapsed)),
	}
	if snap.Score > snap.BestScore {
		// Best score in the snapshot is the pre-session value, so a
		// higher score means a fresh record.
		lines = append(lines, "New high score!")
	}
	lines = append(lines, "", "R to restart, Q to quit")
	drawOverlayLines(dst, lines)
}

func drawOverlayLines(dst *core.Screen, lines []string) {
	maxLen := 0
	for _, l := range lines {
		if len([]rune(l)) > maxLen {
			maxLen = len([]rune(l))
		}
	}
	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBrightWhite)
	for i, l := range lines {
		x := boxX + (boxW-len([]rune(l)))/2
		dst.DrawTextColored(x, boxY+1+i, l, core.ColorBrightWhite)
	}
}

func formatDuration(d time.Duration) string {
	total := int(d.Seconds())
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
