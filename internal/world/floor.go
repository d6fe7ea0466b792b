// Package world provides dungeon layout generation and the layered map it produces.
package world

// Floor is a terrain cell.
type Floor uint8

const (
	// Wall is impassable rock.
	Wall Floor = iota
	// Ground is open floor.
	Ground
	// Water is passable flooded floor.
	Water
)

// EdgeDefault walls in the map perimeter.
func (Floor) EdgeDefault() Floor { return Wall }

// InteriorDefault leaves the inside open.
func (Floor) InteriorDefault() Floor { return Ground }

// Passable returns true if the floor can be walked on.
func (f Floor) Passable() bool {
	return f == Ground || f == Water
}

// Rune returns the floor's display character.
func (f Floor) Rune() rune {
	switch f {
	case Wall:
		return '#'
	case Ground:
		return ' '
	case Water:
		return '.'
	default:
		return '?'
	}
}

func (f Floor) String() string {
	switch f {
	case Wall:
		return "wall"
	case Ground:
		return "ground"
	case Water:
		return "water"
	default:
		return "unknown"
	}
}

// Occupant identifies the entity standing on a cell. Zero means empty.
type Occupant uint8

func (Occupant) EdgeDefault() Occupant { return 0 }
func (Occupant) InteriorDefault() Occupant { return 0 }

// Item identifies the item lying on a cell. Zero means empty.
type Item uint8

func (Item) EdgeDefault() Item { return 0 }
func (Item) InteriorDefault() Item { return 0 }

// Visibility marks whether a cell has been seen.
type Visibility uint8

const (
	Unseen Visibility = iota
	Seen
)

func (Visibility) EdgeDefault() Visibility { return Unseen }
func (Visibility) InteriorDefault() Visibility { return Unseen }
