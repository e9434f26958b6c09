package tetromino

import "math/rand"

// Bag is a seven-bag piece randomizer: it deals one full shuffled
// permutation of all seven kinds before reshuffling, so any run of seven
// draws starting at a refill boundary contains every kind exactly once.
// The random source is injected for deterministic seeding in tests.
type Bag struct {
	rng *rand.Rand
	bag []Kind
}

// NewBag creates a seven-bag randomizer over the given random source.
func NewBag(rng *rand.Rand) *Bag {
	return &Bag{rng: rng}
}

func (b *Bag) refill() {
	b.bag = b.bag[:0]
	b.bag = append(b.bag, Kinds[:]...)
	b.rng.Shuffle(len(b.bag), func(i, j int) {
		b.bag[i], b.bag[j] = b.bag[j], b.bag[i]
	})
}

// NextKind removes and returns the next kind from the bag, refilling and
// reshuffling when the bag is empty. Draws come out in shuffle order.
func (b *Bag) NextKind() Kind {
	if len(b.bag) == 0 {
		b.refill()
	}
	k := b.bag[0]
	b.bag = b.bag[1:]
	return k
}

// Pending returns how many kinds remain before the next refill.
func (b *Bag) Pending() int {
	return len(b.bag)
}

// Pieces returns an unbounded generator of spawn-positioned pieces, one
// per drawn kind.
func (b *Bag) Pieces(boardWidth int) func() Piece {
	return func() Piece {
		return Spawn(b.NextKind(), boardWidth)
	}
}
