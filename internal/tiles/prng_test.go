package tiles

import (
	"math"
	"testing"

	"github.com/matryer/is"
)

func TestXorshiftKnownSequence(t *testing.T) {
	is := is.New(t)

	rng := NewXorshift128Plus(123456789)
	want := []uint64{
		2071268273346565,
		3915411640498309,
		16672862806814049299,
		7002184196510202389,
		9672853658423865312,
	}
	got := make([]uint64, 0, len(want))
	for range want {
		got = append(got, rng.Next())
	}
	is.Equal(got, want)
}

func TestXorshiftSeeding(t *testing.T) {
	is := is.New(t)

	s0, s1 := NewXorshift128Plus(math.MaxUint64).State()
	is.Equal(s0, uint64(math.MaxUint64-1)) // top bit shifted out
	is.Equal(s1, uint64(math.MaxUint64>>1))

	rng := NewXorshift128Plus(math.MaxUint64)
	is.Equal(rng.Next(), uint64(18446743936287375232))
	is.Equal(rng.Next(), uint64(9223301530680031170))
	is.Equal(rng.Next(), uint64(8070512242344333377))
}

func TestXorshiftZeroSeedIsStuck(t *testing.T) {
	is := is.New(t)

	rng := NewXorshift128Plus(0)
	for i := 0; i < 8; i++ {
		is.Equal(rng.Next(), uint64(0))
	}
}

func TestXorshiftDeterministic(t *testing.T) {
	is := is.New(t)

	a := NewXorshift128Plus(42)
	b := NewXorshift128Plus(42)
	for i := 0; i < 100; i++ {
		is.Equal(a.Next(), b.Next())
	}
}

func TestSpawnThreshold(t *testing.T) {
	is := is.New(t)
	is.Equal(spawnTwoThreshold, uint64(16602069666338596453))
}
