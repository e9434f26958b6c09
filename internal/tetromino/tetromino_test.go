package tetromino

import (
	"math/rand"
	"testing"
)

func TestBagDealsFullPermutation(t *testing.T) {
	bag := NewBag(rand.New(rand.NewSource(12345)))

	// Every run of seven draws from a refill boundary must contain each
	// kind exactly once.
	for run := 0; run < 5; run++ {
		seen := make(map[Kind]int, KindCount)
		for i := 0; i < KindCount; i++ {
			seen[bag.NextKind()]++
		}
		for _, k := range Kinds {
			if seen[k] != 1 {
				t.Errorf("run %d: kind %s drawn %d times, want 1", run, k, seen[k])
			}
		}
	}
}

func TestBagDeterminism(t *testing.T) {
	b1 := NewBag(rand.New(rand.NewSource(42)))
	b2 := NewBag(rand.New(rand.NewSource(42)))

	for i := 0; i < 4*KindCount; i++ {
		k1, k2 := b1.NextKind(), b2.NextKind()
		if k1 != k2 {
			t.Fatalf("draw %d: %s vs %s, seeds should produce identical sequences", i, k1, k2)
		}
	}
}

func TestBagPending(t *testing.T) {
	bag := NewBag(rand.New(rand.NewSource(1)))

	if bag.Pending() != 0 {
		t.Errorf("fresh bag should have 0 pending, got %d", bag.Pending())
	}

	bag.NextKind()
	if bag.Pending() != KindCount-1 {
		t.Errorf("after first draw expected %d pending, got %d", KindCount-1, bag.Pending())
	}

	for i := 0; i < KindCount-1; i++ {
		bag.NextKind()
	}
	if bag.Pending() != 0 {
		t.Errorf("after a full run expected 0 pending, got %d", bag.Pending())
	}
}

func TestRotationCycle(t *testing.T) {
	// Four clockwise rotations return every kind to its starting state.
	for _, k := range Kinds {
		p := Piece{Kind: k, Rotation: 0, X: 5, Y: 5}
		r := p
		for i := 0; i < RotationCount; i++ {
			r = r.Rotated(true)
		}
		if r != p {
			t.Errorf("kind %s: four CW rotations changed the piece: %+v", k, r)
		}

		// CW then CCW is the identity.
		if back := p.Rotated(true).Rotated(false); back != p {
			t.Errorf("kind %s: CW then CCW changed the piece: %+v", k, back)
		}
	}
}

func TestRotatedWrapsCCWFromZero(t *testing.T) {
	p := Piece{Kind: KindT, Rotation: 0}
	r := p.Rotated(false)
	if r.Rotation != RotationCount-1 {
		t.Errorf("CCW from 0 should wrap to %d, got %d", RotationCount-1, r.Rotation)
	}
}

func TestBoundingSize(t *testing.T) {
	tests := []struct {
		kind     Kind
		rotation int
		w, h     int
	}{
		{KindI, 0, 4, 1},
		{KindI, 1, 1, 4},
		{KindO, 0, 2, 2},
		{KindO, 3, 2, 2},
		{KindT, 0, 3, 2},
		{KindT, 1, 2, 3},
		{KindS, 0, 3, 2},
		{KindZ, 1, 2, 3},
	}

	for _, tt := range tests {
		w, h := BoundingSize(tt.kind, tt.rotation)
		if w != tt.w || h != tt.h {
			t.Errorf("BoundingSize(%s, %d) = %dx%d, want %dx%d", tt.kind, tt.rotation, w, h, tt.w, tt.h)
		}
	}
}

func TestCellsTranslate(t *testing.T) {
	p := Piece{Kind: KindO, Rotation: 0, X: 3, Y: 7}
	want := [4]Offset{{3, 7}, {4, 7}, {3, 8}, {4, 8}}
	if got := p.Cells(); got != want {
		t.Errorf("Cells() = %v, want %v", got, want)
	}
}

func TestMovedDoesNotMutate(t *testing.T) {
	p := Piece{Kind: KindL, Rotation: 2, X: 1, Y: 1}
	moved := p.Moved(2, 3)

	if p.X != 1 || p.Y != 1 {
		t.Errorf("Moved mutated the receiver: %+v", p)
	}
	if moved.X != 3 || moved.Y != 4 {
		t.Errorf("Moved returned wrong position: %+v", moved)
	}
	if moved.Kind != p.Kind || moved.Rotation != p.Rotation {
		t.Errorf("Moved changed kind or rotation: %+v", moved)
	}
}

func TestSpawnCentered(t *testing.T) {
	const boardWidth = 12

	tests := []struct {
		kind Kind
		x    int
	}{
		{KindI, 4}, // width 4
		{KindO, 5}, // width 2
		{KindT, 4}, // width 3
	}

	for _, tt := range tests {
		p := Spawn(tt.kind, boardWidth)
		if p.X != tt.x {
			t.Errorf("Spawn(%s, %d).X = %d, want %d", tt.kind, boardWidth, p.X, tt.x)
		}
		if p.Y != 0 || p.Rotation != 0 {
			t.Errorf("Spawn(%s) should start at rotation 0, row 0: %+v", tt.kind, p)
		}
	}
}

func TestKindString(t *testing.T) {
	names := map[Kind]string{
		KindI: "I", KindJ: "J", KindL: "L", KindO: "O",
		KindS: "S", KindT: "T", KindZ: "Z",
	}
	for k, want := range names {
		if k.String() != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, k.String(), want)
		}
	}
	if Kind(99).String() != "?" {
		t.Errorf("out-of-range kind should stringify to ?")
	}
}
