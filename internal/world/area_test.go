package world

import (
	"errors"
	"testing"

	"github.com/samdwyer/dungeonlayout/internal/field"
	"github.com/samdwyer/dungeonlayout/internal/grid"
)

func TestShapeValidate(t *testing.T) {
	tests := []struct {
		shape Shape
		valid bool
	}{
		{Shape{4, 6}, true},
		{Shape{2, 2}, true},
		{Shape{1, 6}, true},
		{Shape{4, 1}, true},
		{Shape{3, 5}, true},
		{Shape{5, 6}, false}, // 41/5 leaves 8-cell areas
		{Shape{4, 7}, false}, // 63/7 leaves 9-cell areas
		{Shape{0, 3}, false},
		{Shape{2, -1}, false},
		{Shape{1, 3}, false}, // fewer areas than required rooms
	}

	for _, tt := range tests {
		err := tt.shape.Validate()
		if tt.valid && err != nil {
			t.Errorf("%v: unexpected error %v", tt.shape, err)
		}
		if !tt.valid && !errors.Is(err, ErrInvalidShape) {
			t.Errorf("%v: got %v, want ErrInvalidShape", tt.shape, err)
		}
	}
}

func TestAreaGeometry(t *testing.T) {
	shape := Shape{Rows: 4, Columns: 6}
	var rooms []Room

	for row := 0; row < shape.Rows; row++ {
		for col := 0; col < shape.Columns; col++ {
			a := newArea(shape, row, col)
			if a.Index != row*shape.Columns+col {
				t.Errorf("area (%d,%d) has index %d", row, col, a.Index)
			}
			if a.Rows != 9 || a.Columns != 9 {
				t.Errorf("area (%d,%d) extent %dx%d, want 9x9", row, col, a.Rows, a.Columns)
			}
			bottom := int(a.Origin.Row) + a.Rows - 1
			right := int(a.Origin.Col) + a.Columns - 1
			if a.Origin.Row < 1 || a.Origin.Col < 1 || bottom >= field.Rows-1 || right >= field.Columns-1 {
				t.Errorf("area (%d,%d) at %v touches the border", row, col, a.Origin)
			}
			if !a.Contains(a.Anchor()) {
				t.Errorf("area (%d,%d) anchor %v outside the area", row, col, a.Anchor())
			}
			rooms = append(rooms, Room{Origin: a.Origin, Rows: a.Rows, Columns: a.Columns})
		}
	}

	for i := range rooms {
		for j := i + 1; j < len(rooms); j++ {
			if rooms[i].Intersects(rooms[j]) {
				t.Errorf("areas %d and %d overlap", i, j)
			}
		}
	}
}

func TestAreaAnchor(t *testing.T) {
	a := newArea(Shape{Rows: 4, Columns: 6}, 1, 2)

	a.Kind = KindRoom
	a.Room = Room{Origin: grid.Pt(2, 3), Rows: 4, Columns: 5}
	if got, want := a.Anchor(), a.Origin.Add(grid.Pt(4, 5)); got != want {
		t.Errorf("room anchor = %v, want %v", got, want)
	}

	a.Kind = KindPathWay
	a.Relay = grid.Pt(6, 2)
	if got, want := a.Anchor(), a.Origin.Add(grid.Pt(6, 2)); got != want {
		t.Errorf("relay anchor = %v, want %v", got, want)
	}

	a.Kind = KindWallFilled
	if got, want := a.Anchor(), a.Origin.Add(grid.Pt(4, 4)); got != want {
		t.Errorf("wall anchor = %v, want %v", got, want)
	}
}

func TestRoomContains(t *testing.T) {
	r := Room{Origin: grid.Pt(5, 10), Rows: 3, Columns: 4}
	inside := []grid.Point{grid.Pt(5, 10), grid.Pt(7, 13), r.Center()}
	outside := []grid.Point{grid.Pt(4, 10), grid.Pt(8, 10), grid.Pt(5, 14), grid.Pt(5, 9)}

	for _, p := range inside {
		if !r.Contains(p) {
			t.Errorf("%v should be inside", p)
		}
	}
	for _, p := range outside {
		if r.Contains(p) {
			t.Errorf("%v should be outside", p)
		}
	}
}
