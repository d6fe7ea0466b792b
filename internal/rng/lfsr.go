package rng

import "math/rand/v2"

// DefaultSeed is the state used when an LFSR is seeded with zero.
const DefaultSeed uint32 = 0x17291729

// LFSR is a small feedback generator. Each step folds two 8-bit windows of
// the state with XOR and shifts the result into the low byte.
type LFSR struct {
	state uint32
}

// NewLFSR creates an LFSR. Zero is a fixed point of the generator, so a zero
// seed is replaced by DefaultSeed.
func NewLFSR(seed uint32) *LFSR {
	if seed == 0 {
		seed = DefaultSeed
	}
	return &LFSR{state: seed}
}

// Uint32 advances the generator and returns the new state.
func (l *LFSR) Uint32() uint32 {
	b := (l.state&0x7f800000)>>23 ^ (l.state&0x0003fc00)>>10
	l.state = l.state<<8 | b
	return l.state
}

// State returns the current generator state.
func (l *LFSR) State() uint32 {
	return l.state
}

// PCG adapts a math/rand/v2 PCG generator to Source.
type PCG struct {
	r *rand.Rand
}

// NewPCG creates a deterministic PCG source for seed.
func NewPCG(seed uint64) *PCG {
	return &PCG{r: rand.New(rand.NewPCG(seed, 0))}
}

// Uint32 returns the next draw.
func (p *PCG) Uint32() uint32 {
	return p.r.Uint32()
}
