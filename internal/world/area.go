package world

import (
	"fmt"

	"github.com/samdwyer/dungeonlayout/internal/field"
	"github.com/samdwyer/dungeonlayout/internal/grid"
)

const (
	// MaxAreas caps the number of areas in one layout.
	MaxAreas = 24

	// MinAreaPitch is the smallest number of map cells per area along each axis,
	// separator line included.
	MinAreaPitch = 10

	// MinRooms is how many rooms an accepted layout must contain.
	MinRooms = 4

	areaPadding = 2 // Cells kept clear between a room or relay and its area border
	roomSizeMin = 4 // Minimum room dimension
)

// AreaKind classifies one area of the layout.
type AreaKind int

const (
	// KindNone is an area that has not been assigned yet.
	KindNone AreaKind = iota
	// KindRoom holds a rectangular room.
	KindRoom
	// KindPathWay holds a single relay point that corridors pass through.
	KindPathWay
	// KindWallFilled is solid rock.
	KindWallFilled
)

func (k AreaKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindRoom:
		return "room"
	case KindPathWay:
		return "pathway"
	case KindWallFilled:
		return "wall"
	default:
		return "unknown"
	}
}

// Shape is the number of area rows and columns laid over the map.
type Shape struct {
	Rows, Columns int
}

// Areas returns the number of areas in the shape.
func (s Shape) Areas() int {
	return s.Rows * s.Columns
}

// Validate checks that every area is at least MinAreaPitch cells along each
// axis and that there are between MinRooms and MaxAreas areas.
func (s Shape) Validate() error {
	if s.Rows < 1 || s.Columns < 1 {
		return fmt.Errorf("%w: %dx%d must have at least one area", ErrInvalidShape, s.Rows, s.Columns)
	}
	if field.Rows/s.Rows < MinAreaPitch || field.Columns/s.Columns < MinAreaPitch {
		return fmt.Errorf("%w: %dx%d leaves areas smaller than %d cells", ErrInvalidShape, s.Rows, s.Columns, MinAreaPitch)
	}
	if s.Areas() > MaxAreas {
		return fmt.Errorf("%w: %dx%d exceeds %d areas", ErrInvalidShape, s.Rows, s.Columns, MaxAreas)
	}
	if s.Areas() < MinRooms {
		return fmt.Errorf("%w: %dx%d cannot hold %d rooms", ErrInvalidShape, s.Rows, s.Columns, MinRooms)
	}
	return nil
}

func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Columns)
}

// Area is one cell of the coarse partition.
// Room and Relay are relative to Origin.
type Area struct {
	Kind          AreaKind
	Index         int        // Row-major position in the partition
	Row, Col      int        // Coarse coordinates
	Origin        grid.Point // Top-left map cell
	Rows, Columns int        // Extent in map cells

	Room  Room       // Set for KindRoom
	Relay grid.Point // Set for KindPathWay
}

// newArea lays out the area at coarse position (row, col) of shape.
// Areas are separated by one line of map cells and the first area starts
// just inside the map border.
func newArea(shape Shape, row, col int) Area {
	pitchRows := field.Rows / shape.Rows
	pitchCols := field.Columns / shape.Columns
	return Area{
		Index:   row*shape.Columns + col,
		Row:     row,
		Col:     col,
		Origin:  grid.Pt(uint8(1+row*pitchRows), uint8(1+col*pitchCols)),
		Rows:    pitchRows - 1,
		Columns: pitchCols - 1,
	}
}

// Global converts an area-relative point to a map point.
func (a Area) Global(p grid.Point) grid.Point {
	return a.Origin.Add(p)
}

// Contains returns true if the map point lies inside the area.
func (a Area) Contains(p grid.Point) bool {
	return Room{Origin: a.Origin, Rows: a.Rows, Columns: a.Columns}.Contains(p)
}

// GlobalRoom returns the room in map coordinates.
func (a Area) GlobalRoom() Room {
	r := a.Room
	r.Origin = a.Global(r.Origin)
	return r
}

// Anchor returns the map point corridors use to reach this area: the room
// centre, the relay point, or the area centre for anything else.
func (a Area) Anchor() grid.Point {
	switch a.Kind {
	case KindRoom:
		return a.GlobalRoom().Center()
	case KindPathWay:
		return a.Global(a.Relay)
	default:
		return a.Global(grid.Pt(uint8(a.Rows/2), uint8(a.Columns/2)))
	}
}
