package world

import "github.com/samdwyer/dungeonlayout/internal/grid"

// Room represents a rectangular room in the dungeon.
type Room struct {
	Origin        grid.Point // Top-left corner position
	Rows, Columns int        // Dimensions of the room
}

// Center returns the center coordinates of the room.
func (r Room) Center() grid.Point {
	return r.Origin.Add(grid.Pt(uint8(r.Rows/2), uint8(r.Columns/2)))
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(p grid.Point) bool {
	return int(p.Row) >= int(r.Origin.Row) && int(p.Row) < int(r.Origin.Row)+r.Rows &&
		int(p.Col) >= int(r.Origin.Col) && int(p.Col) < int(r.Origin.Col)+r.Columns
}

// Intersects returns true if this room overlaps with another room.
func (r Room) Intersects(other Room) bool {
	return int(r.Origin.Col) < int(other.Origin.Col)+other.Columns &&
		int(r.Origin.Col)+r.Columns > int(other.Origin.Col) &&
		int(r.Origin.Row) < int(other.Origin.Row)+other.Rows &&
		int(r.Origin.Row)+r.Rows > int(other.Origin.Row)
}
