// Package tetromino defines the seven piece kinds, their rotation
// geometry, the immutable Piece value, and the seven-bag randomizer.
// Everything here is pure; collision against the playfield is the
// board package's concern.
package tetromino

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// Kinds lists every tetromino kind in a stable order.
var Kinds = [...]Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}

// KindCount is the number of distinct tetromino kinds.
const KindCount = len(Kinds)

// RotationCount is the number of rotation states per kind. Symmetric
// kinds repeat states in the table so every kind cycles through four.
const RotationCount = 4

// String returns the conventional one-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// Offset is a cell position relative to a piece's origin.
type Offset struct {
	X, Y int
}

// shapes holds the cell offsets of every kind and rotation state.
// Rotation advances clockwise through the second index.
var shapes = [KindCount][RotationCount][4]Offset{
	KindI: {
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
	},
	KindJ: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {2, 1}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	KindL: {
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{0, 0}, {0, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {0, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
	KindO: {
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	KindS: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	KindT: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{0, 0}, {0, 1}, {1, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {1, 1}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	KindZ: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
}

// Offsets returns the relative cell offsets for a kind at a rotation
// state. Kind and rotation are always drawn from a closed valid set by
// callers, so there is no error path.
func Offsets(k Kind, rotation int) [4]Offset {
	return shapes[k][rotation%RotationCount]
}

// BoundingSize returns the width and height of the kind's bounding box
// at the given rotation state (max offset + 1 along each axis).
func BoundingSize(k Kind, rotation int) (w, h int) {
	for _, o := range Offsets(k, rotation) {
		if o.X+1 > w {
			w = o.X + 1
		}
		if o.Y+1 > h {
			h = o.Y + 1
		}
	}
	return w, h
}
