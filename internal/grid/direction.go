package grid

// Direction is one of the four cardinal or four diagonal steps.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	UpLeft
	UpRight
	DownLeft
	DownRight
)

// Cardinal returns the four cardinal directions.
func Cardinal() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// All returns all eight directions.
func All() []Direction {
	return []Direction{Up, Down, Left, Right, UpLeft, UpRight, DownLeft, DownRight}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case UpLeft:
		return "UpLeft"
	case UpRight:
		return "UpRight"
	case DownLeft:
		return "DownLeft"
	case DownRight:
		return "DownRight"
	default:
		return "Unknown"
	}
}

// IsValid returns true if d is one of the eight directions.
func (d Direction) IsValid() bool {
	return d >= Up && d <= DownRight
}

// IsDiagonal returns true for the four composite directions.
func (d Direction) IsDiagonal() bool {
	return d >= UpLeft && d <= DownRight
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	case UpLeft:
		return DownRight
	case UpRight:
		return DownLeft
	case DownLeft:
		return UpRight
	case DownRight:
		return UpLeft
	default:
		return d
	}
}

// Offset returns the single-step delta for d. Negative steps wrap to 255.
func (d Direction) Offset() Point {
	const back = 0xff
	switch d {
	case Up:
		return Point{Row: back}
	case Down:
		return Point{Row: 1}
	case Left:
		return Point{Col: back}
	case Right:
		return Point{Col: 1}
	case UpLeft:
		return Up.Offset().Add(Left.Offset())
	case UpRight:
		return Up.Offset().Add(Right.Offset())
	case DownLeft:
		return Down.Offset().Add(Left.Offset())
	case DownRight:
		return Down.Offset().Add(Right.Offset())
	default:
		return Point{}
	}
}

// Compose returns the offset of stepping d then other.
func (d Direction) Compose(other Direction) Point {
	return Point{}.Move(d).Move(other)
}

// Delta returns the row and column offsets as signed ints.
func (d Direction) Delta() (rowDelta, colDelta int) {
	o := d.Offset()
	return int(int8(o.Row)), int(int8(o.Col))
}
