// Package field provides a fixed-size two-dimensional grid container.
//
// A Field distinguishes its outermost ring from its interior: the cell type
// declares one default for each, so terrain can be walled on the perimeter
// and open inside while other layers default uniformly.
package field

import (
	"fmt"
	"iter"
	"strings"

	"github.com/samdwyer/dungeonlayout/internal/grid"
)

const (
	// Default field dimensions
	Rows    = 41
	Columns = 63

	// MaxSize bounds each dimension so every cell is addressable by a grid.Point.
	MaxSize = 256
)

// Defaults is implemented by cell types that declare their own fill policy.
type Defaults[T any] interface {
	// EdgeDefault is the value of the outer ring.
	EdgeDefault() T
	// InteriorDefault is the value of every other cell.
	InteriorDefault() T
}

// Field is a rows×columns grid of cells stored in row-major order.
type Field[T any] struct {
	rows     int
	columns  int
	edge     T
	interior T
	cells    []T
}

// New creates a Rows×Columns field filled with T's defaults.
func New[T Defaults[T]]() *Field[T] {
	return NewSized[T](Rows, Columns)
}

// NewSized creates a rows×columns field filled with T's defaults.
func NewSized[T Defaults[T]](rows, columns int) *Field[T] {
	var zero T
	return NewWith(rows, columns, zero.EdgeDefault(), zero.InteriorDefault())
}

// NewWith creates a field with explicit edge and interior defaults.
// It panics if either dimension is outside [1, MaxSize].
func NewWith[T any](rows, columns int, edge, interior T) *Field[T] {
	if rows < 1 || rows > MaxSize || columns < 1 || columns > MaxSize {
		panic(fmt.Sprintf("field: invalid size %dx%d", rows, columns))
	}
	f := &Field[T]{
		rows:     rows,
		columns:  columns,
		edge:     edge,
		interior: interior,
		cells:    make([]T, rows*columns),
	}
	f.Reset()
	return f
}

// Rows returns the number of rows.
func (f *Field[T]) Rows() int { return f.rows }

// Columns returns the number of columns.
func (f *Field[T]) Columns() int { return f.columns }

// Len returns the number of cells.
func (f *Field[T]) Len() int { return len(f.cells) }

// InBounds reports whether (row, col) addresses a cell.
func (f *Field[T]) InBounds(row, col int) bool {
	return row >= 0 && row < f.rows && col >= 0 && col < f.columns
}

// IsEdge reports whether (row, col) lies on the outer ring.
func (f *Field[T]) IsEdge(row, col int) bool {
	return f.InBounds(row, col) && (row == 0 || row == f.rows-1 || col == 0 || col == f.columns-1)
}

// IsInterior reports whether (row, col) is inside the field but off the outer ring.
func (f *Field[T]) IsInterior(row, col int) bool {
	return f.InBounds(row, col) && !f.IsEdge(row, col)
}

// At returns the cell at (row, col). It panics when out of bounds.
func (f *Field[T]) At(row, col int) T {
	return f.cells[f.index(row, col)]
}

// Set overwrites the cell at (row, col). It panics when out of bounds.
func (f *Field[T]) Set(row, col int, v T) {
	f.cells[f.index(row, col)] = v
}

// Get returns the cell at p and whether p is in bounds.
func (f *Field[T]) Get(p grid.Point) (T, bool) {
	row, col := p.Ints()
	if !f.InBounds(row, col) {
		var zero T
		return zero, false
	}
	return f.cells[row*f.columns+col], true
}

// Put overwrites the cell at p if it is in bounds and reports whether it did.
func (f *Field[T]) Put(p grid.Point, v T) bool {
	row, col := p.Ints()
	if !f.InBounds(row, col) {
		return false
	}
	f.cells[row*f.columns+col] = v
	return true
}

// Fill overwrites every cell with v.
func (f *Field[T]) Fill(v T) {
	for i := range f.cells {
		f.cells[i] = v
	}
}

// Reset restores the edge and interior defaults.
func (f *Field[T]) Reset() {
	for i := range f.cells {
		if f.IsEdge(i/f.columns, i%f.columns) {
			f.cells[i] = f.edge
		} else {
			f.cells[i] = f.interior
		}
	}
}

// All iterates every cell in row-major order.
func (f *Field[T]) All() iter.Seq2[grid.Point, T] {
	return func(yield func(grid.Point, T) bool) {
		for i, v := range f.cells {
			p := grid.Pt(uint8(i/f.columns), uint8(i%f.columns))
			if !yield(p, v) {
				return
			}
		}
	}
}

// Values iterates cell values in row-major order.
func (f *Field[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range f.cells {
			if !yield(v) {
				return
			}
		}
	}
}

// Cells returns a row-major copy of every cell.
func (f *Field[T]) Cells() []T {
	out := make([]T, len(f.cells))
	copy(out, f.cells)
	return out
}

// Row returns a copy of one row.
func (f *Field[T]) Row(row int) []T {
	start := f.index(row, 0)
	out := make([]T, f.columns)
	copy(out, f.cells[start:start+f.columns])
	return out
}

// Count returns how many cells satisfy match.
func (f *Field[T]) Count(match func(T) bool) int {
	n := 0
	for _, v := range f.cells {
		if match(v) {
			n++
		}
	}
	return n
}

// Render writes one line per row using glyph for each cell. Rows are joined
// with a single line break and there is no trailing newline.
func (f *Field[T]) Render(glyph func(T) rune) string {
	var b strings.Builder
	b.Grow(f.rows * (f.columns + 1))
	for i, v := range f.cells {
		if i > 0 && i%f.columns == 0 {
			b.WriteByte('\n')
		}
		b.WriteRune(glyph(v))
	}
	return b.String()
}

func (f *Field[T]) index(row, col int) int {
	if !f.InBounds(row, col) {
		panic(fmt.Sprintf("field: (%d,%d) out of bounds %dx%d", row, col, f.rows, f.columns))
	}
	return row*f.columns + col
}
