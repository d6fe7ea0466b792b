package world

import (
	"context"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeonlayout/internal/field"
	"github.com/samdwyer/dungeonlayout/internal/grid"
	"github.com/samdwyer/dungeonlayout/internal/rng"
	"github.com/samdwyer/dungeonlayout/internal/telemetry"
)

const (
	// Default area partition
	DefaultRows    = 4
	DefaultColumns = 6

	// Default retry budgets
	DefaultMaxSynthesisAttempts = 64
	DefaultMaxConnectIterations = 100000
)

// layoutNamespace scopes layout IDs derived from rendered terrain.
var layoutNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("dungeonlayout"))

// Dungeon represents the generated map and its per-cell layers.
type Dungeon struct {
	Shape       Shape
	Floors      *field.Field[Floor]
	Individuals *field.Field[Occupant]
	Items       *field.Field[Item]
	Visible     *field.Field[Visibility]
	Areas       []Area
	Links       []Link
}

// Empty creates a dungeon whose layers all hold their defaults.
func Empty() *Dungeon {
	return &Dungeon{
		Floors:      field.New[Floor](),
		Individuals: field.New[Occupant](),
		Items:       field.New[Item](),
		Visible:     field.New[Visibility](),
	}
}

// Limits bounds the retry loops of generation. Zero fields use the defaults.
type Limits struct {
	MaxSynthesisAttempts int
	MaxConnectIterations int
}

// DefaultLimits returns the default retry budgets.
func DefaultLimits() Limits {
	return Limits{
		MaxSynthesisAttempts: DefaultMaxSynthesisAttempts,
		MaxConnectIterations: DefaultMaxConnectIterations,
	}
}

func (l Limits) withDefaults() Limits {
	if l.MaxSynthesisAttempts <= 0 {
		l.MaxSynthesisAttempts = DefaultMaxSynthesisAttempts
	}
	if l.MaxConnectIterations <= 0 {
		l.MaxConnectIterations = DefaultMaxConnectIterations
	}
	return l
}

// Generator builds dungeons.
type Generator struct {
	limits Limits
	logger logr.Logger
	tracer trace.Tracer
}

// NewGenerator creates a generator with the given budgets and logger.
func NewGenerator(limits Limits, logger logr.Logger) *Generator {
	return &Generator{
		limits: limits.withDefaults(),
		logger: logger.WithName("world"),
		tracer: telemetry.Tracer("world"),
	}
}

// Generate builds a dungeon with the default limits and no logging.
func Generate(ctx context.Context, src rng.Source, rows, columns int) (*Dungeon, error) {
	return NewGenerator(DefaultLimits(), logr.Discard()).Generate(ctx, src, rows, columns)
}

// Generate partitions the map into rows×columns areas, connects them into a
// spanning tree and carves the result. No dungeon is returned on error.
func (g *Generator) Generate(ctx context.Context, src rng.Source, rows, columns int) (*Dungeon, error) {
	ctx, span := g.tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()
	shape := Shape{Rows: rows, Columns: columns}
	span.SetAttributes(
		attribute.Int("dungeon.area_rows", rows),
		attribute.Int("dungeon.area_columns", columns),
	)

	fail := func(err error) (*Dungeon, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		g.logger.Error(err, "generation failed", "shape", shape.String())
		return nil, err
	}

	if err := shape.Validate(); err != nil {
		return fail(err)
	}

	_, synthSpan := g.tracer.Start(ctx, "dungeon.synthesize")
	areas, attempts, err := Synthesize(ctx, src, shape, g.limits.MaxSynthesisAttempts, g.logger)
	synthSpan.SetAttributes(attribute.Int("dungeon.synthesis_attempts", attempts))
	synthSpan.End()
	if err != nil {
		return fail(err)
	}

	_, connectSpan := g.tracer.Start(ctx, "dungeon.connect")
	links, iterations, err := Connect(src, shape, g.limits.MaxConnectIterations)
	connectSpan.SetAttributes(
		attribute.Int("dungeon.connect_iterations", iterations),
		attribute.Int("dungeon.links", len(links)),
	)
	connectSpan.End()
	if err != nil {
		return fail(err)
	}

	_, paintSpan := g.tracer.Start(ctx, "dungeon.paint")
	d := Empty()
	d.Shape = shape
	d.Areas = areas
	d.Links = links
	paint(d.Floors, areas, links)
	paintSpan.End()

	rooms := countRooms(areas)
	span.SetAttributes(
		attribute.Int("dungeon.room_count", rooms),
		attribute.Int("dungeon.synthesis_attempts", attempts),
		attribute.Int("dungeon.connect_iterations", iterations),
		attribute.String("dungeon.id", d.ID().String()),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
	g.logger.Info("generated dungeon",
		"shape", shape.String(),
		"rooms", rooms,
		"attempts", attempts,
		"iterations", iterations,
		"id", d.ID().String(),
	)
	return d, nil
}

// Render returns the terrain as text, one line per row.
func (d *Dungeon) Render() string {
	return d.Floors.Render(Floor.Rune)
}

func (d *Dungeon) String() string {
	return d.Render()
}

// Lines returns the rendered terrain split into rows.
func (d *Dungeon) Lines() []string {
	return strings.Split(d.Render(), "\n")
}

// Fingerprint hashes the rendered terrain.
func (d *Dungeon) Fingerprint() uint64 {
	return xxhash.Sum64String(d.Render())
}

// ID returns a name-based UUID of the rendered terrain. Identical layouts
// share an ID.
func (d *Dungeon) ID() uuid.UUID {
	return uuid.NewSHA1(layoutNamespace, []byte(d.Render()))
}

// IsPassable returns true if the given position can be walked on.
func (d *Dungeon) IsPassable(row, col int) bool {
	return d.At(row, col).Passable()
}

// At returns the floor at the given position, or Wall outside the map.
func (d *Dungeon) At(row, col int) Floor {
	if !d.Floors.InBounds(row, col) {
		return Wall
	}
	return d.Floors.At(row, col)
}

// Rooms returns every room in map coordinates, in area order.
func (d *Dungeon) Rooms() []Room {
	rooms := make([]Room, 0, len(d.Areas))
	for _, a := range d.Areas {
		if a.Kind == KindRoom {
			rooms = append(rooms, a.GlobalRoom())
		}
	}
	return rooms
}

// AreaIndexAt returns the index of the area containing p, or -1 if p lies
// on a separator line or the border.
func (d *Dungeon) AreaIndexAt(p grid.Point) int {
	for i, a := range d.Areas {
		if a.Contains(p) {
			return i
		}
	}
	return -1
}

// Reachable returns every passable cell connected to start by cardinal steps.
func (d *Dungeon) Reachable(start grid.Point) mapset.Set[grid.Point] {
	reachable := mapset.New[grid.Point]()
	queue := []grid.Point{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		floor, ok := d.Floors.Get(current)
		if !ok || !floor.Passable() || reachable.Has(current) {
			continue
		}
		reachable.Put(current)

		for _, dir := range grid.Cardinal() {
			if next := current.Move(dir); !reachable.Has(next) {
				queue = append(queue, next)
			}
		}
	}

	return reachable
}
