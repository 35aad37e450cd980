// Package control resolves #RANDOM/#IF/#ELSEIF/#ELSE/#ENDIF/#ENDRANDOM and
// #SWITCH/#CASE/#DEF/#SKIP/#ENDSW scopes over a raw token stream, emitting
// only the tokens belonging to the currently-active scope chain.
package control

import "math/rand/v2"

// Rng is the only randomness the evaluator needs: a draw uniform in [lo, hi].
type Rng interface {
	NextInRange(lo, hi uint32) uint32
}

// SystemRng draws from the standard library's PRNG.
type SystemRng struct{}

func (SystemRng) NextInRange(lo, hi uint32) uint32 {
	if hi <= lo {
		return lo
	}
	return lo + uint32(rand.IntN(int(hi-lo+1)))
}

// MockRng replays a scripted sequence of draws, cycling back to the start
// once exhausted — a single-element script therefore behaves as a constant
// across every #RANDOM/#SWITCH scope it's asked to resolve.
type MockRng struct {
	values []uint32
	next   int
}

// NewMockRng builds an Rng that returns values[i % len(values)] on its i-th
// call, clamped into the requested [lo, hi]; with no values it returns lo.
func NewMockRng(values ...uint32) *MockRng {
	return &MockRng{values: values}
}

func (m *MockRng) NextInRange(lo, hi uint32) uint32 {
	if len(m.values) == 0 {
		return lo
	}
	v := m.values[m.next%len(m.values)]
	m.next++
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
