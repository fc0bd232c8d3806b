package shuffle

import (
	"math/bits"
	"unicode/utf16"
)

const (
	seedBasis  uint32 = 1779033703
	seedMul    uint32 = 3432918353
	mixMulLow  uint32 = 2246822507
	mixMulHigh uint32 = 3266489909
)

// Rand is a seeded, immutable pseudo-random generator. Next never changes
// the receiver; it hands back the advanced generator instead, so any Rand
// value can be replayed.
type Rand struct {
	state uint32
}

// NewRand derives the initial state from seed. Characters are folded as
// UTF-16 code units so the stream matches other implementations of the
// same hash.
func NewRand(seed string) Rand {
	units := utf16.Encode([]rune(seed))
	h := seedBasis ^ uint32(len(units))
	for _, c := range units {
		h = bits.RotateLeft32((h^uint32(c))*seedMul, 13)
	}
	return Rand{state: h}
}

// State returns the raw 32-bit state.
func (r Rand) State() uint32 { return r.state }

// Next returns a value in [0,1) and the generator to use for the next draw.
func (r Rand) Next() (float64, Rand) {
	h := (r.state ^ r.state>>16) * mixMulLow
	h = (h ^ h>>13) * mixMulHigh
	h ^= h >> 16
	return float64(h) / (1 << 32), Rand{state: h}
}
