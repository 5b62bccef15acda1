package tiles

// Xorshift128Plus is the generator behind every tile spawn.
//
// Seeding splits one 64-bit seed into the two state words as seed<<1 and
// seed>>1, which loses the top bit of the first word and the bottom bit of
// the second. Deployed validators seed it this way, so scores only match if
// it stays that way.
type Xorshift128Plus struct {
	s0 uint64
	s1 uint64
}

// NewXorshift128Plus returns a generator seeded from a single integer.
func NewXorshift128Plus(seed uint64) *Xorshift128Plus {
	return &Xorshift128Plus{
		s0: seed << 1,
		s1: seed >> 1,
	}
}

// Next advances the generator and returns the next 64-bit output.
// All arithmetic wraps modulo 2^64.
func (r *Xorshift128Plus) Next() uint64 {
	s1 := r.s0
	s0 := r.s1
	r.s0 = s0
	s1 ^= s1 << 23
	s1 ^= s1 >> 17
	s1 ^= s0 ^ (s0 >> 26)
	r.s1 = s1
	return r.s1 + s0
}

// State returns the two internal state words.
func (r *Xorshift128Plus) State() (uint64, uint64) {
	return r.s0, r.s1
}
