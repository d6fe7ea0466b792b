// Package rng provides the random sources used by dungeon generation.
//
// Generation only depends on the Source contract: a stream of uniformly
// distributed 32-bit draws. Byte and Bounded derive everything else from it,
// so any Source yields the same layouts for the same draw sequence.
package rng

// Source produces uniformly distributed 32-bit values.
type Source interface {
	Uint32() uint32
}

// Byte returns the low 8 bits of one draw.
func Byte(src Source) uint8 {
	return uint8(src.Uint32() & 0xff)
}

// Bounded returns a value in [0, max] inclusive.
// It scales one draw as floor(draw * (max+1) / 2^32), so the result is
// reproducible across implementations and max = MaxUint32 returns the draw itself.
func Bounded(src Source, max uint32) uint32 {
	return uint32((uint64(src.Uint32()) * (uint64(max) + 1)) >> 32)
}

// Bool returns true with probability one half.
func Bool(src Source) bool {
	return Bounded(src, 1) == 1
}

// New returns the default Source for seed.
func New(seed uint64) Source {
	return NewLFSR(uint32(seed ^ seed>>32))
}
