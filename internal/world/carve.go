package world

import (
	"github.com/samdwyer/dungeonlayout/internal/field"
	"github.com/samdwyer/dungeonlayout/internal/grid"
)

// carver paints areas and links onto a terrain field.
type carver struct {
	floors *field.Field[Floor]
	areas  []Area
}

// paint fills the interior with rock, carves every room and then one
// corridor per link.
func paint(floors *field.Field[Floor], areas []Area, links []Link) {
	c := &carver{floors: floors, areas: areas}

	for row := 1; row < floors.Rows()-1; row++ {
		for col := 1; col < floors.Columns()-1; col++ {
			floors.Set(row, col, Wall)
		}
	}

	for _, a := range areas {
		if a.Kind == KindRoom {
			c.carveRoom(a.GlobalRoom())
		}
	}

	for _, l := range links {
		c.carveCorridor(areas[l.From], areas[l.To], l.Dir)
	}
}

// carveRoom sets all tiles within the room to ground.
func (c *carver) carveRoom(room Room) {
	for r := 0; r < room.Rows; r++ {
		for col := 0; col < room.Columns; col++ {
			c.carveCell(room.Origin.Add(grid.Pt(uint8(r), uint8(col))))
		}
	}
}

// carveCorridor digs an L-shaped tunnel between the anchors of two
// neighbouring areas. It runs along the link direction first, then turns
// toward the target anchor.
func (c *carver) carveCorridor(from, to Area, dir grid.Direction) {
	start, end := from.Anchor(), to.Anchor()
	c.carveCell(start)

	var corner grid.Point
	if dir == grid.Down {
		d, n := steps(start.Row, end.Row, grid.Up, grid.Down)
		corner = c.carveLine(start, d, n)
		d, n = steps(corner.Col, end.Col, grid.Left, grid.Right)
		c.carveLine(corner, d, n)
	} else {
		d, n := steps(start.Col, end.Col, grid.Left, grid.Right)
		corner = c.carveLine(start, d, n)
		d, n = steps(corner.Row, end.Row, grid.Up, grid.Down)
		c.carveLine(corner, d, n)
	}
}

// carveLine carves n cells stepping in d after p and returns the last one.
func (c *carver) carveLine(p grid.Point, d grid.Direction, n int) grid.Point {
	for i := 0; i < n; i++ {
		p = p.Move(d)
		c.carveCell(p)
	}
	return p
}

// carveCell opens one corridor or room cell. Cells inside a wall-filled area
// flood instead of opening. The map border is never touched.
func (c *carver) carveCell(p grid.Point) {
	row, col := p.Ints()
	if !c.floors.IsInterior(row, col) {
		return
	}
	floor := Ground
	if a, ok := c.areaAt(p); ok && a.Kind == KindWallFilled {
		floor = Water
	}
	c.floors.Set(row, col, floor)
}

func (c *carver) areaAt(p grid.Point) (Area, bool) {
	for _, a := range c.areas {
		if a.Contains(p) {
			return a, true
		}
	}
	return Area{}, false
}

// steps returns the direction and distance from a to b on one axis.
func steps(a, b uint8, less, more grid.Direction) (grid.Direction, int) {
	if b < a {
		return less, int(a - b)
	}
	return more, int(b - a)
}
