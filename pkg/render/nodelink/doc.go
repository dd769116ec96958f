// Package nodelink renders mazes as node-link diagrams of their passage graph.
//
// # Overview
//
// A perfect maze is a spanning tree of its grid. This package draws that tree
// directly: each cell becomes a node pinned to its grid position and each
// open passage becomes an undirected edge. Unvisited cells of a partial grid
// show up as isolated nodes.
//
// # Usage
//
// Convert a grid to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(grid, nodelink.Options{Labels: true})
//	svg, err := nodelink.RenderSVG(dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(dot)
//	png, err := nodelink.RenderPNG(dot, 2.0)  // 2x scale
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Labels: When true, nodes show their "x,y" coordinate
//   - Marker: Cells covered by the marker are filled in red
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools (neato -n)
//   - Customized before rendering
//
// Positions are fixed with pos="x,y!" and the graph is laid out with neato,
// so the diagram keeps the maze's geometry.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
