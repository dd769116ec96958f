package pipeline

import (
	"fmt"

	"github.com/matzehuels/mazetower/pkg/maze"
	"github.com/matzehuels/mazetower/pkg/render/nodelink"
	"github.com/matzehuels/mazetower/pkg/render/sink"
)

// Render generates output artifacts in the requested formats.
// The txt, json and dot formats ignore the view; svg, png and pdf follow it.
func Render(res *Result, opts Options) (map[string][]byte, error) {
	if opts.IsNodelink() {
		return renderNodelink(res, opts)
	}
	return renderWalls(res, opts)
}

// renderWalls generates the classic wall drawing.
func renderWalls(res *Result, opts Options) (map[string][]byte, error) {
	svgOpts := buildSVGOptions(res, opts)
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(res.Grid, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(res.Grid, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
		case FormatPDF:
			data, err = sink.RenderPDF(res.Grid, sink.WithPDFSVGOptions(svgOpts...))
		default:
			data, err = renderCommon(res, format, opts)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// renderNodelink generates the passage graph drawn by Graphviz.
func renderNodelink(res *Result, opts Options) (map[string][]byte, error) {
	dot := nodelink.ToDOT(res.Grid, nodelink.Options{Labels: opts.Labels})
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = nodelink.RenderSVG(dot)
		case FormatPNG:
			data, err = nodelink.RenderPNG(dot, opts.Scale)
		case FormatPDF:
			data, err = nodelink.RenderPDF(dot)
		case FormatDOT:
			data = []byte(dot)
		default:
			data, err = renderCommon(res, format, opts)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// renderCommon handles the formats that look the same in every view.
func renderCommon(res *Result, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatTXT:
		return []byte(sink.RenderText(res.Grid)), nil
	case FormatJSON:
		return sink.RenderJSON(res.Grid,
			sink.WithJSONAlgorithm(res.Algorithm),
			sink.WithJSONSeed(res.Seed),
			sink.WithJSONRunID(res.RunID))
	case FormatDOT:
		return []byte(nodelink.ToDOT(res.Grid, nodelink.Options{Labels: opts.Labels})), nil
	}
	return nil, fmt.Errorf("unsupported format: %s", format)
}

// buildSVGOptions builds SVG rendering options.
func buildSVGOptions(res *Result, opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithCellSize(opts.CellSize)}

	if opts.Openings {
		svgOpts = append(svgOpts, sink.WithOpenings())
	}
	if opts.Shade {
		svgOpts = append(svgOpts, sink.WithFill(sink.DistanceFill(res.Grid, maze.Cell{})))
	}
	if res.Algorithm != "" {
		svgOpts = append(svgOpts, sink.WithTitle(fmt.Sprintf("%s %dx%d", res.Algorithm, res.Grid.Size(), res.Grid.Size())))
	}
	return svgOpts
}

// ResultFromJSON rebuilds a result from a document written by the json format.
// Algorithm and seed are restored when the document carries them.
func ResultFromJSON(data []byte) (*Result, error) {
	doc, g, err := sink.ReadJSON(data)
	if err != nil {
		return nil, err
	}
	res := &Result{
		RunID:     doc.RunID,
		Algorithm: doc.Algorithm,
		Grid:      g,
		Artifacts: make(map[string][]byte),
	}
	if doc.Seed != nil {
		res.Seed = *doc.Seed
	}
	res.Stats.Passages = maze.PassageCount(g)
	return res, nil
}
