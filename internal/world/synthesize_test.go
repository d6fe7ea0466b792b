package world

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/go-logr/logr"

	"github.com/samdwyer/dungeonlayout/internal/rng"
)

func TestSynthesizeMinimumRooms(t *testing.T) {
	shapes := []Shape{{4, 6}, {2, 2}, {3, 5}, {1, 6}, {4, 1}}

	for _, shape := range shapes {
		for seed := uint64(1); seed <= 50; seed++ {
			areas, attempts, err := Synthesize(context.Background(), rng.NewPCG(seed), shape, DefaultMaxSynthesisAttempts, logr.Discard())
			if err != nil {
				t.Fatalf("%v seed %d: %v", shape, seed, err)
			}
			if attempts < 1 {
				t.Errorf("%v seed %d: reported %d attempts", shape, seed, attempts)
			}
			if len(areas) != shape.Areas() {
				t.Fatalf("%v seed %d: %d areas, want %d", shape, seed, len(areas), shape.Areas())
			}
			if n := countRooms(areas); n < MinRooms {
				t.Errorf("%v seed %d: %d rooms, want at least %d", shape, seed, n, MinRooms)
			}
			checkAreas(t, areas)
		}
	}
}

// checkAreas verifies that rooms and relays keep their padding.
func checkAreas(t *testing.T, areas []Area) {
	t.Helper()
	for i, a := range areas {
		if a.Index != i {
			t.Errorf("area %d has index %d", i, a.Index)
		}
		switch a.Kind {
		case KindRoom:
			r := a.Room
			if r.Rows < roomSizeMin || r.Columns < roomSizeMin {
				t.Errorf("area %d room %dx%d below minimum", i, r.Rows, r.Columns)
			}
			if int(r.Origin.Row) < areaPadding || int(r.Origin.Col) < areaPadding ||
				int(r.Origin.Row)+r.Rows > a.Rows-areaPadding ||
				int(r.Origin.Col)+r.Columns > a.Columns-areaPadding {
				t.Errorf("area %d room %+v breaks padding in %dx%d", i, r, a.Rows, a.Columns)
			}
		case KindPathWay:
			p := a.Relay
			if int(p.Row) < areaPadding || int(p.Col) < areaPadding ||
				int(p.Row) > a.Rows-1-areaPadding || int(p.Col) > a.Columns-1-areaPadding {
				t.Errorf("area %d relay %v breaks padding in %dx%d", i, p, a.Rows, a.Columns)
			}
		case KindWallFilled:
		default:
			t.Errorf("area %d left unassigned", i)
		}
	}
}

func TestSynthesizeAllRooms(t *testing.T) {
	// The maximum draw selects a room and pushes every bounded draw to its top.
	areas, attempts, err := Synthesize(context.Background(), fixed(math.MaxUint32), Shape{4, 6}, 1, logr.Discard())
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
	for i, a := range areas {
		if a.Kind != KindRoom {
			t.Fatalf("area %d is %v, want room", i, a.Kind)
		}
		want := Room{Origin: a.Room.Origin, Rows: 5, Columns: 5}
		if a.Room != want || a.Room.Origin.Row != 2 || a.Room.Origin.Col != 2 {
			t.Errorf("area %d room = %+v", i, a.Room)
		}
	}
}

func TestSynthesizeKinds(t *testing.T) {
	tests := []struct {
		draw uint32
		want AreaKind
	}{
		{0, KindWallFilled},
		{2, KindWallFilled},
		{3, KindPathWay},
		{15, KindPathWay},
		{16, KindRoom},
		{255, KindRoom},
	}

	for _, tt := range tests {
		a := newArea(Shape{4, 6}, 0, 0)
		assignKind(fixed(tt.draw), &a)
		if a.Kind != tt.want {
			t.Errorf("byte %d gave %v, want %v", tt.draw, a.Kind, tt.want)
		}
	}
}

func TestSynthesizeExhausted(t *testing.T) {
	src := &counting{src: fixed(0)}
	_, attempts, err := Synthesize(context.Background(), src, Shape{2, 3}, 5, logr.Discard())
	if !errors.Is(err, ErrGenerationExhausted) {
		t.Fatalf("got %v, want ErrGenerationExhausted", err)
	}
	if attempts != 5 {
		t.Errorf("attempts = %d, want 5", attempts)
	}
	if src.draws != 5*6 {
		t.Errorf("draws = %d, want one per area per attempt", src.draws)
	}
}

func TestSynthesizeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := Synthesize(ctx, fixed(0), Shape{2, 3}, 5, logr.Discard())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}
