package core

import "math/rand/v2"

// Fixed leading words of every process seed.
const (
	SeedWord0 uint32 = 0xb0b5c0ff
	SeedWord1 uint32 = 0xeefacade
)

// NewSeed builds a Seed from the fixed leading words and two 24-bit words drawn
// from a PCG stream seeded with seed. Equal seeds give equal bodies.
func NewSeed(seed int64) Seed {
	r := rand.New(rand.NewPCG(uint64(seed), 0))
	return Seed{SeedWord0, SeedWord1, r.Uint32() & 0xffffff, r.Uint32() & 0xffffff}
}

// ZeroSeed returns the seed with only the fixed words set.
func ZeroSeed() Seed { return Seed{SeedWord0, SeedWord1, 0, 0} }
