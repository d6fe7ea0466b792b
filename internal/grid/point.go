// Package grid provides coordinates and directions on the dungeon grid.
package grid

import "fmt"

// Point is a grid coordinate. Row grows downward and Col grows rightward.
// Arithmetic wraps modulo 256 and never panics; callers check bounds before
// indexing a field.
type Point struct {
	Row, Col uint8
}

// Pt builds a Point from a (row, col) pair.
func Pt(row, col uint8) Point {
	return Point{Row: row, Col: col}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{Row: p.Row + q.Row, Col: p.Col + q.Col}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{Row: p.Row - q.Row, Col: p.Col - q.Col}
}

// Move returns the point one step away in direction d.
func (p Point) Move(d Direction) Point {
	return p.Add(d.Offset())
}

// Back returns the point one step against direction d.
func (p Point) Back(d Direction) Point {
	return p.Move(d.Opposite())
}

// Ints returns the coordinates as ints for indexing.
func (p Point) Ints() (row, col int) {
	return int(p.Row), int(p.Col)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
