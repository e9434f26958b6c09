package tetromino

// Piece is an immutable tetromino value: kind, rotation state, and the
// board position of its origin. Transformations return new values and
// never consult the playfield; a Piece may freely represent out-of-bounds
// or overlapping positions, validity is always a board query.
type Piece struct {
	Kind     Kind
	Rotation int
	X, Y     int
}

// Cells returns the absolute board coordinates occupied by the piece.
func (p Piece) Cells() [4]Offset {
	cells := Offsets(p.Kind, p.Rotation)
	for i := range cells {
		cells[i].X += p.X
		cells[i].Y += p.Y
	}
	return cells
}

// Moved returns a copy of the piece translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy of the piece advanced one rotation state
// clockwise or counter-clockwise. The origin is unchanged; wall kicks
// are the engine's concern.
func (p Piece) Rotated(clockwise bool) Piece {
	if clockwise {
		p.Rotation = (p.Rotation + 1) % RotationCount
	} else {
		p.Rotation = (p.Rotation + RotationCount - 1) % RotationCount
	}
	return p
}

// Width returns the bounding width of the piece's current rotation state.
func (p Piece) Width() int {
	w, _ := BoundingSize(p.Kind, p.Rotation)
	return w
}

// Height returns the bounding height of the piece's current rotation state.
func (p Piece) Height() int {
	_, h := BoundingSize(p.Kind, p.Rotation)
	return h
}

// Spawn returns the canonical spawn position for a kind: rotation 0, at
// the topmost buffer row, horizontally centered using the rotation-0
// bounding box. An odd remainder leaves the extra column on the right.
func Spawn(kind Kind, boardWidth int) Piece {
	w, _ := BoundingSize(kind, 0)
	return Piece{
		Kind:     kind,
		Rotation: 0,
		X:        (boardWidth - w) / 2,
		Y:        0,
	}
}
