package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonlayout/internal/world"
)

// Renderer handles drawing layouts to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the dungeon terrain with a status line below it.
func (r *Renderer) Render(dungeon *world.Dungeon, status string) {
	r.screen.Clear()

	// Draw terrain
	rows, cols := dungeon.Floors.Rows(), dungeon.Floors.Columns()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			floor := dungeon.At(y, x)
			r.screen.SetContent(x, y, floor.Rune(), r.getFloorStyle(floor))
		}
	}

	r.RenderMessage(status, rows+1)
	r.screen.Show()
}

// RenderError shows a generation failure in place of a layout.
func (r *Renderer) RenderError(err error, status string) {
	r.screen.Clear()
	style := tcell.StyleDefault.Foreground(tcell.ColorRed)
	for i, ch := range err.Error() {
		r.screen.SetContent(i, 0, ch, style)
	}
	r.RenderMessage(status, 2)
	r.screen.Show()
}

// getFloorStyle returns the appropriate style for a floor type.
func (r *Renderer) getFloorStyle(floor world.Floor) tcell.Style {
	switch floor {
	case world.Wall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.Water:
		return tcell.StyleDefault.Foreground(tcell.ColorBlue)
	default:
		return tcell.StyleDefault
	}
}

// RenderMessage displays a message on the given screen row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
}
