package upgrade

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource abstract
type RandomSource interface {
	IntN(n int) int // [0, n)
}

// NewSeed draws a run seed from crypto/rand, falling back to math/rand/v2.
func NewSeed() uint64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		return rand.Uint64()
	}
	return binary.BigEndian.Uint64(buf[:])
}

// Replicable RNG, one per run
type seededRNG struct{ r *rand.Rand }

func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) IntN(n int) int { return s.r.IntN(n) }

// DefaultRNG returns a generator seeded from crypto/rand.
func DefaultRNG() RandomSource { return NewSeededRNG(NewSeed()) }

// roll draws a uniform integer in [1, RollSides].
func roll(rng RandomSource) int {
	return rng.IntN(RollSides) + 1
}
