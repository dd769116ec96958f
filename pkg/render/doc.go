// Package render provides output rendering for generated mazes.
//
// # Overview
//
// This package contains the rendering pipeline that transforms a carved
// [maze.Grid] into visual outputs. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Wall-drawing sinks for text, SVG and JSON (in [sink] subpackage)
//   - Passage-graph diagrams (in [nodelink] subpackage)
//
// Renderers only read the grid, so they can draw a finished maze or any
// partial state between engine steps.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). These are used by both the
// wall and node-link renderers.
//
//	svg := sink.RenderSVG(grid, sink.WithCellSize(16))
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage draws the maze as the spanning tree it is: cells
// become nodes pinned to their grid position and passages become edges,
// laid out by Graphviz.
//
//	dot := nodelink.ToDOT(grid, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// [maze.Grid]: github.com/matzehuels/mazetower/pkg/maze.Grid
// [sink]: github.com/matzehuels/mazetower/pkg/render/sink
// [nodelink]: github.com/matzehuels/mazetower/pkg/render/nodelink
package render
