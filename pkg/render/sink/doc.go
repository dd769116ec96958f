// Package sink provides output format renderers for maze grids.
//
// # Overview
//
// A "sink" transforms a [maze.Grid] into a final output format. This package
// provides renderers for:
//
//   - Text: the classic underscore-and-pipe drawing
//   - SVG: wall segments with optional highlight and shading
//   - JSON: cell bitmasks plus run metadata, readable by [ReadJSON]
//   - PDF/PNG: via SVG and rsvg-convert
//
// Every sink accepts a partially carved grid, so drivers can render the state
// between engine steps and highlight the engine's current [maze.Marker].
//
// # SVG Output
//
//	svg := sink.RenderSVG(grid,
//	    sink.WithCellSize(16),
//	    sink.WithMarker(alg.Current()),
//	    sink.WithOpenings(),
//	)
//
// [WithFill] colours individual cells; [DistanceFill] is a ready-made fill
// that shades each cell by its passage distance from a start cell.
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] render the SVG and convert it via
// [render.ToPDF] and [render.ToPNG]. These require librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [maze.Grid]: github.com/matzehuels/mazetower/pkg/maze.Grid
// [maze.Marker]: github.com/matzehuels/mazetower/pkg/maze.Marker
// [render.ToPDF]: github.com/matzehuels/mazetower/pkg/render.ToPDF
// [render.ToPNG]: github.com/matzehuels/mazetower/pkg/render.ToPNG
package sink
