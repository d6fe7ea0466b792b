package world

import (
	"fmt"

	"github.com/samdwyer/dungeonlayout/internal/grid"
	"github.com/samdwyer/dungeonlayout/internal/rng"
)

// Link joins two neighbouring areas. To is the neighbour of From in direction
// Dir, which is always grid.Right or grid.Down.
type Link struct {
	From, To int
	Dir      grid.Direction
}

// Connect merges the areas of shape into a single group by picking random
// neighbouring pairs, and returns one Link per merge together with the number
// of draws used.
//
// Every area starts in its own group. A draw picks an area and a direction;
// draws that leave the partition or join two areas of the same group are
// skipped. Each accepted draw removes exactly one group, so the loop finishes
// after Areas()-1 merges and the links form a spanning tree. Skipped draws are
// unbounded in principle, so at most maxIterations draws are made.
func Connect(src rng.Source, shape Shape, maxIterations int) ([]Link, int, error) {
	if err := shape.Validate(); err != nil {
		return nil, 0, err
	}

	n := shape.Areas()
	groups := make([]int, n)
	for i := range groups {
		groups[i] = i
	}

	links := make([]Link, 0, n-1)
	iterations := 0
	for len(links) < n-1 {
		if iterations >= maxIterations {
			return nil, iterations, fmt.Errorf("%w: %d of %d links after %d draws", ErrGenerationExhausted, len(links), n-1, iterations)
		}
		iterations++

		vertical := rng.Bool(src)
		from := bounded(src, n-1)
		to, dir, ok := neighbour(shape, from, vertical)
		if !ok || groups[from] == groups[to] {
			continue
		}

		absorbed := groups[to]
		for i := range groups {
			if groups[i] == absorbed {
				groups[i] = groups[from]
			}
		}
		links = append(links, Link{From: from, To: to, Dir: dir})
	}
	return links, iterations, nil
}

// neighbour returns the area below or to the right of index i.
func neighbour(shape Shape, i int, vertical bool) (int, grid.Direction, bool) {
	if vertical {
		if i+shape.Columns >= shape.Areas() {
			return 0, grid.Down, false
		}
		return i + shape.Columns, grid.Down, true
	}
	if (i+1)%shape.Columns == 0 {
		return 0, grid.Right, false
	}
	return i + 1, grid.Right, true
}
