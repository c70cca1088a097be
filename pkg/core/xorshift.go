package core

// State is the scratch buffer of the xorshift128+ generator. The four words
// hold two 64-bit lanes as (s1 high, s1 low, s0 high, s0 low). All arithmetic
// is carried out on the 32-bit halves.
type State [4]uint32

// Seed is the immutable starting point copied into a State before every
// independent draw.
type Seed [4]uint32

// Reset overwrites every word of the state with the seed.
func (s *State) Reset(seed Seed) { *s = State(seed) }

// Fold XORs words into the state cyclically, word i landing on s[i mod 4].
func (s *State) Fold(words ...uint32) {
	for i, w := range words {
		s[i&3] ^= w
	}
}

// Churn advances the generator by one step and returns the pre-advance sum of
// the two lanes as (high, low) 32-bit halves.
func (s *State) Churn() (high, low uint32) {
	s1U, s1L := s[0], s[1]
	s0U, s0L := s[2], s[3]

	low = s0L + s1L
	var carry uint32
	if low < s0L {
		carry = 1
	}
	high = s0U + s1U + carry

	s[0], s[1] = s0U, s0L

	// s1 ^= s1 << 23
	s1U ^= s1U<<23 | s1L>>(32-23)
	s1L ^= s1L << 23

	// s1 ^ s0 ^ (s1 >> 18) ^ (s0 >> 5)
	tU := s1U ^ s0U ^ s1U>>18 ^ s0U>>5
	tL := s1L ^ s0L ^ (s1L>>18 | s1U<<(32-18)) ^ (s0L>>5 | s0U<<(32-5))

	s[2], s[3] = tU, tL
	return high, low
}

const (
	twoNeg32 = 1.0 / (1 << 32)
	twoNeg52 = 1.0 / (1 << 52)
)

// Random churns once and maps the output to a float64 in [0, 1) with 53 bits
// of precision.
func (s *State) Random() float64 {
	high, low := s.Churn()
	return float64(high)*twoNeg32 + float64(float64(low>>12)*twoNeg52)
}
