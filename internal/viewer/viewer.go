package viewer

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonlayout/internal/rng"
	"github.com/samdwyer/dungeonlayout/internal/telemetry"
	"github.com/samdwyer/dungeonlayout/internal/ui"
	"github.com/samdwyer/dungeonlayout/internal/world"
)

// Viewer holds the browsing session.
type Viewer struct {
	screen    *ui.Screen
	renderer  *ui.Renderer
	generator *world.Generator
	shape     world.Shape
	seed      uint64
	dungeon   *world.Dungeon
	err       error
	state     State
	running   bool
}

// New creates a viewer starting at seed.
func New(screen *ui.Screen, generator *world.Generator, shape world.Shape, seed uint64) *Viewer {
	return &Viewer{
		screen:    screen,
		renderer:  ui.NewRenderer(screen),
		generator: generator,
		shape:     shape,
		seed:      seed,
		running:   true,
	}
}

// Seed returns the seed currently shown.
func (v *Viewer) Seed() uint64 {
	return v.seed
}

// State returns what the viewer is showing.
func (v *Viewer) State() State {
	return v.state
}

// Run executes the browse loop until the user quits. The caller owns the
// screen and closes it afterwards.
func (v *Viewer) Run(ctx context.Context) error {
	v.regenerate(ctx)

	for v.running {
		v.render()
		v.handleInput(ctx)
	}
	return nil
}

// regenerate builds the layout for the current seed.
func (v *Viewer) regenerate(ctx context.Context) {
	tracer := telemetry.Tracer("viewer")
	ctx, span := tracer.Start(ctx, "viewer.regenerate")
	defer span.End()

	span.SetAttributes(attribute.Int64("viewer.seed", int64(v.seed)))

	v.dungeon, v.err = v.generator.Generate(ctx, rng.New(v.seed), v.shape.Rows, v.shape.Columns)
	if v.err != nil {
		v.state = StateFailed
		return
	}
	v.state = StateLayout
}

func (v *Viewer) render() {
	if v.state == StateFailed {
		v.renderer.RenderError(v.err, v.status())
		return
	}
	v.renderer.Render(v.dungeon, v.status())
}

func (v *Viewer) status() string {
	help := "n/→ next  p/← previous  q quit"
	if v.state == StateFailed {
		return fmt.Sprintf("seed %d  shape %s  %s", v.seed, v.shape, help)
	}
	return fmt.Sprintf("seed %d  shape %s  rooms %d  %016x  %s",
		v.seed, v.shape, len(v.dungeon.Rooms()), v.dungeon.Fingerprint(), help)
}

// handleInput processes a single input event.
func (v *Viewer) handleInput(ctx context.Context) {
	ev := v.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		v.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		v.screen.Sync()
	case nil:
		// The screen was finalized.
		v.running = false
	}
}

// handleKeyEvent processes keyboard input.
func (v *Viewer) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false

	case tcell.KeyRight:
		v.step(ctx, 1)
	case tcell.KeyLeft:
		v.step(ctx, -1)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			v.running = false
		case 'n', 'N':
			v.step(ctx, 1)
		case 'p', 'P':
			v.step(ctx, -1)
		}
	}
}

// step moves to a neighbouring seed and regenerates.
func (v *Viewer) step(ctx context.Context, delta int) {
	if delta < 0 {
		v.seed--
	} else {
		v.seed++
	}
	v.regenerate(ctx)
}
