package sink

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/mazetower/pkg/errors"
	"github.com/matzehuels/mazetower/pkg/maze"
)

// twoByTwo is open everywhere except between (0,1) and (1,1).
func twoByTwo() maze.Grid {
	g := maze.NewGrid(2)
	g.Carve(0, 0, maze.East)
	g.Carve(0, 0, maze.South)
	g.Carve(1, 0, maze.South)
	return g
}

// comb opens every row eastwards and joins the rows down the west column.
func comb(n int) maze.Grid {
	g := maze.NewGrid(n)
	for y := 0; y < n; y++ {
		for x := 0; x < n-1; x++ {
			g.Carve(x, y, maze.East)
		}
		if y < n-1 {
			g.Carve(0, y, maze.South)
		}
	}
	return g
}

func TestRenderText(t *testing.T) {
	tests := []struct {
		name string
		grid maze.Grid
		want string
	}{
		{
			name: "empty",
			grid: maze.NewGrid(0),
			want: "",
		},
		{
			name: "single cell",
			grid: maze.NewGrid(1),
			want: " _\n|_|\n",
		},
		{
			name: "uncarved",
			grid: maze.NewGrid(2),
			want: " ___\n|_|_|\n|_|_|\n",
		},
		{
			name: "carved",
			grid: twoByTwo(),
			want: " ___\n|   |\n|_|_|\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderText(tt.grid); got != tt.want {
				t.Errorf("RenderText() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestRenderTextMarker(t *testing.T) {
	g := twoByTwo()

	got := RenderText(g, WithTextMarker(maze.CellMarker(maze.Cell{X: 1, Y: 1})))
	want := " ___\n|   |\n|_|*|\n"
	if got != want {
		t.Errorf("cell marker =\n%s\nwant\n%s", got, want)
	}

	got = RenderText(g, WithTextMarker(maze.RowMarker(0)))
	want = " ___\n|* *|\n|_|_|\n"
	if got != want {
		t.Errorf("row marker =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderTextStyler(t *testing.T) {
	var calls, highlighted int
	style := func(x, y int, chunk string, hl bool) string {
		calls++
		if hl {
			highlighted++
			return "[" + chunk + "]"
		}
		return chunk
	}

	got := RenderText(twoByTwo(),
		WithTextMarker(maze.CellMarker(maze.Cell{})),
		WithCellStyler(style),
	)
	if calls != 4 || highlighted != 1 {
		t.Errorf("styler calls = %d (highlighted %d), want 4 (1)", calls, highlighted)
	}
	if !strings.Contains(got, "|[  ]") {
		t.Errorf("styled output missing highlighted cell:\n%s", got)
	}
}

func TestRenderSVGWallCount(t *testing.T) {
	tests := []struct {
		name     string
		grid     maze.Grid
		opts     []SVGOption
		expected int
	}{
		{"uncarved 3x3", maze.NewGrid(3), nil, 2*3 + 2*9},
		{"perfect 2x2", twoByTwo(), nil, 9},
		{"perfect 5x5", comb(5), nil, 36},
		{"perfect 5x5 with openings", comb(5), []SVGOption{WithOpenings()}, 34},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svg := RenderSVG(tt.grid, tt.opts...)
			if got := bytes.Count(svg, []byte("<line ")); got != tt.expected {
				t.Errorf("line count = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestRenderSVGGeometry(t *testing.T) {
	svg := string(RenderSVG(maze.NewGrid(4), WithCellSize(10)))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 60 60" width="60" height="60">`) {
		t.Errorf("unexpected header: %s", svg[:strings.Index(svg, "\n")])
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("SVG not closed")
	}
	if strings.Contains(svg, `class="marker"`) {
		t.Error("no marker requested, but one was drawn")
	}
}

func TestRenderSVGMarker(t *testing.T) {
	g := maze.NewGrid(3)

	cell := string(RenderSVG(g, WithMarker(maze.CellMarker(maze.Cell{X: 1, Y: 2}))))
	if !strings.Contains(cell, `<rect class="marker" x="30" y="50" width="20" height="20"`) {
		t.Errorf("cell marker missing or misplaced:\n%s", cell)
	}

	row := string(RenderSVG(g, WithMarker(maze.RowMarker(1))))
	if !strings.Contains(row, `<rect class="marker" x="10" y="30" width="60" height="20"`) {
		t.Errorf("row marker missing or misplaced:\n%s", row)
	}
}

func TestRenderSVGFillAndTitle(t *testing.T) {
	g := comb(3)
	svg := string(RenderSVG(g,
		WithFill(DistanceFill(g, maze.Cell{})),
		WithTitle("eller <seed 7>"),
	))

	if got := strings.Count(svg, `<rect class="cell"`); got != 9 {
		t.Errorf("filled cells = %d, want 9", got)
	}
	if !strings.Contains(svg, "<title>eller &lt;seed 7&gt;</title>") {
		t.Error("title missing or not escaped")
	}
}

func TestDistanceFill(t *testing.T) {
	g := maze.NewGrid(2)
	g.Carve(0, 0, maze.East)
	fill := DistanceFill(g, maze.Cell{})

	if got := fill(0, 0); got != "hsl(210, 70%, 95%)" {
		t.Errorf("start fill = %q", got)
	}
	if got := fill(1, 0); got != "hsl(210, 70%, 35%)" {
		t.Errorf("farthest fill = %q", got)
	}
	if got := fill(0, 1); got != "" {
		t.Errorf("unreachable fill = %q, want empty", got)
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(twoByTwo(),
		WithJSONAlgorithm("recdesc"),
		WithJSONSeed(0),
		WithJSONRunID("run-1"),
		WithJSONMarker(maze.RowMarker(1)),
	)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out Document
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.Size != 2 || out.Passages != 3 {
		t.Errorf("Size, Passages = %d, %d; want 2, 3", out.Size, out.Passages)
	}
	if out.Algorithm != "recdesc" || out.RunID != "run-1" {
		t.Errorf("Algorithm, RunID = %q, %q", out.Algorithm, out.RunID)
	}
	if out.Seed == nil || *out.Seed != 0 {
		t.Errorf("Seed = %v, want explicit 0", out.Seed)
	}
	if out.Cells[0][0] != int(maze.South|maze.East) || out.Names[0][1] != "SW" {
		t.Errorf("Cells = %v, Names = %v", out.Cells, out.Names)
	}
	if out.Marker == nil || out.Marker.Kind != "row" || out.Marker.Row == nil || *out.Marker.Row != 1 {
		t.Errorf("Marker = %+v", out.Marker)
	}
	if !strings.HasPrefix(out.Generator, "mazetower ") {
		t.Errorf("Generator = %q", out.Generator)
	}
}

func TestRenderJSONOmitsUnset(t *testing.T) {
	data, err := RenderJSON(maze.NewGrid(1))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	for _, key := range []string{`"seed"`, `"marker"`, `"algorithm"`, `"run_id"`} {
		if bytes.Contains(data, []byte(key)) {
			t.Errorf("output contains %s:\n%s", key, data)
		}
	}
}

func TestReadJSONRoundTrip(t *testing.T) {
	g := comb(4)
	data, err := RenderJSON(g, WithJSONAlgorithm("sidewinder"), WithJSONSeed(9))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	doc, back, err := ReadJSON(data)
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}
	if !back.Equal(g) {
		t.Error("round trip changed the grid")
	}
	if doc.Algorithm != "sidewinder" || *doc.Seed != 9 {
		t.Errorf("doc = %+v", doc)
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{`},
		{"size mismatch", `{"size": 2, "cells": [[0, 0]]}`},
		{"bad mask", `{"size": 1, "cells": [[99]]}`},
		{"asymmetric", `{"size": 2, "cells": [[4, 0], [0, 0]]}`},
		{"ragged", `{"size": 2, "cells": [[0, 0], [0]]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ReadJSON([]byte(tt.data))
			if !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("ReadJSON() error = %v, want INVALID_FORMAT", err)
			}
		})
	}
}
