package sink

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/mazetower/pkg/maze"
)

// Default SVG geometry, in pixels.
const (
	DefaultCellSize = 20
	defaultMargin   = 10
	wallWidth       = 2
	markerColor     = "#e4572e"
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	cellSize int
	marker   maze.Marker
	fill     func(x, y int) string
	openings bool
	title    string
}

// WithCellSize sets the edge length of one cell in pixels.
func WithCellSize(px int) SVGOption { return func(r *svgRenderer) { r.cellSize = px } }

// WithMarker highlights the cells covered by m.
func WithMarker(m maze.Marker) SVGOption { return func(r *svgRenderer) { r.marker = m } }

// WithFill colours each cell with the CSS colour fn returns; "" leaves the
// cell unfilled.
func WithFill(fn func(x, y int) string) SVGOption { return func(r *svgRenderer) { r.fill = fn } }

// WithOpenings removes the outer wall above (0,0) and below the south-east
// cell to mark an entrance and an exit.
func WithOpenings() SVGOption { return func(r *svgRenderer) { r.openings = true } }

// WithTitle embeds a <title> element, shown as a tooltip by browsers.
func WithTitle(s string) SVGOption { return func(r *svgRenderer) { r.title = s } }

// RenderSVG draws every standing wall of g as a line segment.
//
// Border walls are drawn once per border cell and interior walls once per
// pair (as the east and south sides), so a perfect N×N maze yields exactly
// (N+1)² segments, or two fewer with [WithOpenings].
func RenderSVG(g maze.Grid, opts ...SVGOption) []byte {
	r := svgRenderer{cellSize: DefaultCellSize}
	for _, opt := range opts {
		opt(&r)
	}
	if r.cellSize <= 0 {
		r.cellSize = DefaultCellSize
	}

	n, c, m := g.Size(), r.cellSize, defaultMargin
	side := 2*m + n*c

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		side, side, side, side)
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", html.EscapeString(r.title))
	}
	fmt.Fprintf(&buf, `  <rect width="%d" height="%d" fill="white"/>`+"\n", side, side)

	if r.fill != nil {
		renderFill(&buf, &r, n, c, m)
	}
	renderMarker(&buf, &r, n, c, m)
	renderWalls(&buf, g, &r, c, m)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderFill(buf *bytes.Buffer, r *svgRenderer, n, c, m int) {
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			color := r.fill(x, y)
			if color == "" {
				continue
			}
			fmt.Fprintf(buf, `  <rect class="cell" x="%d" y="%d" width="%d" height="%d" fill="%s"/>`+"\n",
				m+x*c, m+y*c, c, c, html.EscapeString(color))
		}
	}
}

func renderMarker(buf *bytes.Buffer, r *svgRenderer, n, c, m int) {
	switch r.marker.Kind {
	case maze.MarkerCell:
		fmt.Fprintf(buf, `  <rect class="marker" x="%d" y="%d" width="%d" height="%d" fill="%s" fill-opacity="0.6"/>`+"\n",
			m+r.marker.Cell.X*c, m+r.marker.Cell.Y*c, c, c, markerColor)
	case maze.MarkerRow:
		fmt.Fprintf(buf, `  <rect class="marker" x="%d" y="%d" width="%d" height="%d" fill="%s" fill-opacity="0.3"/>`+"\n",
			m, m+r.marker.Row*c, n*c, c, markerColor)
	}
}

func renderWalls(buf *bytes.Buffer, g maze.Grid, r *svgRenderer, c, m int) {
	n := g.Size()
	fmt.Fprintf(buf, `  <g class="walls" stroke="black" stroke-width="%d" stroke-linecap="square">`+"\n", wallWidth)
	line := func(x1, y1, x2, y2 int) {
		fmt.Fprintf(buf, `    <line x1="%d" y1="%d" x2="%d" y2="%d"/>`+"\n", x1, y1, x2, y2)
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			cell := g.At(x, y)
			left, top := m+x*c, m+y*c
			right, bottom := left+c, top+c

			if y == 0 && !cell.Has(maze.North) && !(r.openings && x == 0) {
				line(left, top, right, top)
			}
			if x == 0 && !cell.Has(maze.West) {
				line(left, top, left, bottom)
			}
			if !cell.Has(maze.East) {
				line(right, top, right, bottom)
			}
			if !cell.Has(maze.South) && !(r.openings && x == n-1 && y == n-1) {
				line(left, bottom, right, bottom)
			}
		}
	}
	buf.WriteString("  </g>\n")
}
