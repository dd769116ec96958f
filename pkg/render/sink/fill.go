package sink

import (
	"fmt"

	"github.com/matzehuels/mazetower/pkg/maze"
)

// DistanceFill returns a fill function shading each cell by its passage
// distance from start: near cells are pale, the farthest cell is the
// deepest blue. Unreachable cells stay unfilled.
func DistanceFill(g maze.Grid, start maze.Cell) func(x, y int) string {
	dist := maze.Distances(g, start)
	farthest := 0
	for _, d := range dist {
		farthest = max(farthest, d)
	}
	return func(x, y int) string {
		d := dist[g.Index(x, y)]
		if d < 0 {
			return ""
		}
		t := 0.0
		if farthest > 0 {
			t = float64(d) / float64(farthest)
		}
		// Interpolate lightness from 95% down to 35% at a fixed blue hue.
		return fmt.Sprintf("hsl(210, 70%%, %.0f%%)", 95-60*t)
	}
}
