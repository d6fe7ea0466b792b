package rng

import (
	"math"
	"testing"
)

// fixed returns the same draw forever.
type fixed uint32

func (f fixed) Uint32() uint32 { return uint32(f) }

func TestByteUniformity(t *testing.T) {
	sources := map[string]Source{
		"lfsr": NewLFSR(DefaultSeed),
		"pcg":  NewPCG(12345),
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			const mean = 10000
			var counts [256]int
			for i := 0; i < mean*256; i++ {
				counts[Byte(src)]++
			}
			for value, count := range counts {
				if count < mean*9/10 || count > mean*11/10 {
					t.Errorf("byte %d drawn %d times, want within 10%% of %d", value, count, mean)
				}
			}
		})
	}
}

func TestBoundedRange(t *testing.T) {
	maxes := []uint32{0, 1, 255, 1 << 31, math.MaxUint32}

	for _, max := range maxes {
		src := NewLFSR(DefaultSeed)
		for i := 0; i < 10000; i++ {
			if v := Bounded(src, max); v > max {
				t.Fatalf("Bounded(%d) = %d, out of range", max, v)
			}
		}
	}
}

func TestBoundedExtremes(t *testing.T) {
	tests := []struct {
		draw uint32
		max  uint32
		want uint32
	}{
		{0, 0, 0},
		{math.MaxUint32, 0, 0},
		{math.MaxUint32, 1, 1},
		{1 << 31, 1, 1},
		{1<<31 - 1, 1, 0},
		{math.MaxUint32, 255, 255},
		{math.MaxUint32, math.MaxUint32, math.MaxUint32},
		{42, math.MaxUint32, 42},
	}

	for _, tt := range tests {
		if got := Bounded(fixed(tt.draw), tt.max); got != tt.want {
			t.Errorf("Bounded(draw=%d, max=%d) = %d, want %d", tt.draw, tt.max, got, tt.want)
		}
	}
}

func TestByteIsLowBits(t *testing.T) {
	if got := Byte(fixed(0x12345678)); got != 0x78 {
		t.Errorf("Byte = %#x, want 0x78", got)
	}
}

func TestLFSRReproducible(t *testing.T) {
	a := NewLFSR(0xdeadbeef)
	b := NewLFSR(0xdeadbeef)
	for i := 0; i < 1000; i++ {
		if x, y := a.Uint32(), b.Uint32(); x != y {
			t.Fatalf("draw %d differs: %#x != %#x", i, x, y)
		}
	}
}

func TestLFSRZeroSeed(t *testing.T) {
	if got := NewLFSR(0).State(); got != DefaultSeed {
		t.Errorf("zero seed state = %#x, want %#x", got, DefaultSeed)
	}
}

func TestLFSRShiftsFeedbackIntoLowByte(t *testing.T) {
	l := NewLFSR(DefaultSeed)
	before := l.State()
	after := l.Uint32()
	if after>>8 != before&0x00ffffff {
		t.Errorf("state %#x did not shift into %#x", before, after)
	}
}
