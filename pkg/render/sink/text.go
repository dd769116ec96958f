package sink

import (
	"strings"

	"github.com/matzehuels/mazetower/pkg/maze"
)

// CellStyler decorates the two-character drawing of cell (x, y). The first
// character is the cell's floor, the second its east side.
type CellStyler func(x, y int, chunk string, highlighted bool) string

// TextOption configures [RenderText].
type TextOption func(*textRenderer)

type textRenderer struct {
	marker maze.Marker
	style  CellStyler
}

// WithTextMarker highlights the cells covered by m.
func WithTextMarker(m maze.Marker) TextOption { return func(r *textRenderer) { r.marker = m } }

// WithCellStyler replaces the default highlight, which swaps the floor of a
// highlighted cell for '*'. Terminal drivers use it to colour cells.
func WithCellStyler(s CellStyler) TextOption { return func(r *textRenderer) { r.style = s } }

// RenderText draws g with underscores for floors and pipes for walls:
//
//	 ___
//	|   |
//	|_|_|
//
// A wall below a cell is its floor; a passage east merges the two floors
// into one run when either cell is open to the south.
func RenderText(g maze.Grid, opts ...TextOption) string {
	r := textRenderer{style: defaultStyle}
	for _, opt := range opts {
		opt(&r)
	}

	n := g.Size()
	if n == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(strings.Repeat("_", 2*n-1))
	b.WriteString("\n")

	for y := 0; y < n; y++ {
		b.WriteString("|")
		for x := 0; x < n; x++ {
			b.WriteString(r.style(x, y, textCell(g, x, y), r.marker.Covers(x, y)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func textCell(g maze.Grid, x, y int) string {
	cell := g.At(x, y)
	floor := "_"
	if cell.Has(maze.South) {
		floor = " "
	}
	if !cell.Has(maze.East) {
		return floor + "|"
	}
	if (cell|g.At(x+1, y)).Has(maze.South) {
		return floor + " "
	}
	return floor + "_"
}

func defaultStyle(_, _ int, chunk string, highlighted bool) string {
	if !highlighted {
		return chunk
	}
	return "*" + chunk[1:]
}
