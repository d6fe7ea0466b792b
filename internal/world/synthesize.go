package world

import (
	"context"
	"errors"
	"fmt"

	"github.com/cenkalti/backoff/v5"
	"github.com/go-logr/logr"

	"github.com/samdwyer/dungeonlayout/internal/grid"
	"github.com/samdwyer/dungeonlayout/internal/rng"
)

// Kind selection thresholds over one byte draw.
const (
	wallFilledBelow = 3  // ~3/256 of areas are solid rock
	pathWayBelow    = 16 // ~13/256 are corridor relays, the rest are rooms
)

var errRoomShortage = errors.New("too few rooms")

// Synthesize partitions the map into shape areas and assigns each a kind.
// A partition with fewer than MinRooms rooms is discarded and resampled, at
// most maxAttempts times. It returns the accepted areas in row-major order and
// the number of attempts used.
func Synthesize(ctx context.Context, src rng.Source, shape Shape, maxAttempts int, logger logr.Logger) ([]Area, int, error) {
	if err := shape.Validate(); err != nil {
		return nil, 0, err
	}
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	attempts := 0
	areas, err := backoff.Retry(ctx, func() ([]Area, error) {
		if err := ctx.Err(); err != nil {
			return nil, backoff.Permanent(err)
		}
		attempts++
		areas := sampleAreas(src, shape)
		if rooms := countRooms(areas); rooms < MinRooms {
			logger.V(1).Info("resampling partition", "attempt", attempts, "rooms", rooms, "shape", shape.String())
			return nil, fmt.Errorf("%w: %d of %d", errRoomShortage, rooms, MinRooms)
		}
		return areas, nil
	},
		backoff.WithBackOff(&backoff.ZeroBackOff{}),
		backoff.WithMaxTries(uint(maxAttempts)),
	)
	if err != nil {
		if errors.Is(err, errRoomShortage) {
			return nil, attempts, fmt.Errorf("%w: partition %s has %v after %d attempts", ErrGenerationExhausted, shape, err, attempts)
		}
		return nil, attempts, err
	}
	return areas, attempts, nil
}

func sampleAreas(src rng.Source, shape Shape) []Area {
	areas := make([]Area, 0, shape.Areas())
	for row := 0; row < shape.Rows; row++ {
		for col := 0; col < shape.Columns; col++ {
			a := newArea(shape, row, col)
			assignKind(src, &a)
			areas = append(areas, a)
		}
	}
	return areas
}

// assignKind draws a kind for a and places its room or relay point.
func assignKind(src rng.Source, a *Area) {
	switch k := rng.Byte(src); {
	case k < wallFilledBelow:
		a.Kind = KindWallFilled
	case k < pathWayBelow:
		a.Kind = KindPathWay
		a.Relay = grid.Pt(
			uint8(areaPadding+bounded(src, a.Rows-1-2*areaPadding)),
			uint8(areaPadding+bounded(src, a.Columns-1-2*areaPadding)),
		)
	default:
		a.Kind = KindRoom
		rows := roomSizeMin + bounded(src, a.Rows-roomSizeMin-2*areaPadding)
		cols := roomSizeMin + bounded(src, a.Columns-roomSizeMin-2*areaPadding)
		top := areaPadding + bounded(src, a.Rows-rows-2*areaPadding)
		left := areaPadding + bounded(src, a.Columns-cols-2*areaPadding)
		a.Room = Room{Origin: grid.Pt(uint8(top), uint8(left)), Rows: rows, Columns: cols}
	}
}

// bounded draws from [0, max]; max is never negative for a valid shape.
func bounded(src rng.Source, max int) int {
	return int(rng.Bounded(src, uint32(max)))
}

func countRooms(areas []Area) int {
	n := 0
	for _, a := range areas {
		if a.Kind == KindRoom {
			n++
		}
	}
	return n
}
