package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/mazetower/pkg/maze"
	"github.com/matzehuels/mazetower/pkg/render"
)

// spacing is the distance between neighbouring nodes, in points.
const spacing = 36

// Options configures node-link diagram rendering.
type Options struct {
	// Labels shows the "x,y" coordinate inside each node.
	// When false, nodes are small unlabelled dots.
	Labels bool

	// Marker highlights the cells it covers.
	Marker maze.Marker
}

// ToDOT converts a grid to Graphviz DOT format for node-link visualization.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
//
// Each passage appears once, as the east or south edge of its western or
// northern cell.
func ToDOT(g maze.Grid, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  splines=false;\n")
	if opts.Labels {
		buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=10, width=0.4, fixedsize=true];\n")
	} else {
		buf.WriteString("  node [shape=point, width=0.12];\n")
	}
	buf.WriteString("  edge [penwidth=2];\n")
	buf.WriteString("\n")

	n := g.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(x, y), fmtAttrs(x, y, n, opts))
		}
	}

	buf.WriteString("\n")
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			cell := g.At(x, y)
			if cell.Has(maze.East) {
				fmt.Fprintf(&buf, "  %q -- %q;\n", nodeID(x, y), nodeID(x+1, y))
			}
			if cell.Has(maze.South) {
				fmt.Fprintf(&buf, "  %q -- %q;\n", nodeID(x, y), nodeID(x, y+1))
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(x, y int) string { return fmt.Sprintf("%d,%d", x, y) }

func fmtAttrs(x, y, n int, opts Options) string {
	// Graphviz's y axis points up; flip rows so row 0 is drawn at the top.
	attrs := fmt.Sprintf("pos=\"%d,%d!\"", x*spacing, (n-1-y)*spacing)
	if opts.Labels {
		attrs += fmt.Sprintf(", label=%q", nodeID(x, y))
	}
	if opts.Marker.Covers(x, y) {
		attrs += ", color=red, fillcolor=red"
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz's neato engine.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPNG].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
