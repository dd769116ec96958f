package sink

import (
	"encoding/json"

	"github.com/matzehuels/mazetower/pkg/buildinfo"
	"github.com/matzehuels/mazetower/pkg/errors"
	"github.com/matzehuels/mazetower/pkg/maze"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	algorithm string
	seed      *uint64
	runID     string
	marker    maze.Marker
}

// WithJSONAlgorithm records the generating algorithm's registry name.
func WithJSONAlgorithm(name string) JSONOption { return func(r *jsonRenderer) { r.algorithm = name } }

// WithJSONSeed records the seed, so the maze can be regenerated exactly.
func WithJSONSeed(seed uint64) JSONOption { return func(r *jsonRenderer) { r.seed = &seed } }

// WithJSONRunID records the pipeline run that produced the maze.
func WithJSONRunID(id string) JSONOption { return func(r *jsonRenderer) { r.runID = id } }

// WithJSONMarker records the engine's current marker, for partial grids.
func WithJSONMarker(m maze.Marker) JSONOption { return func(r *jsonRenderer) { r.marker = m } }

// Document is the JSON form of a maze.
type Document struct {
	Generator string      `json:"generator"`
	RunID     string      `json:"run_id,omitempty"`
	Algorithm string      `json:"algorithm,omitempty"`
	Seed      *uint64     `json:"seed,omitempty"`
	Size      int         `json:"size"`
	Passages  int         `json:"passages"`
	Cells     [][]int     `json:"cells"`
	Names     [][]string  `json:"names"`
	Marker    *jsonMarker `json:"marker,omitempty"`
}

type jsonMarker struct {
	Kind string     `json:"kind"` // "cell" or "row"
	Cell *maze.Cell `json:"cell,omitempty"`
	Row  *int       `json:"row,omitempty"`
}

// RenderJSON exports g as a pretty-printed JSON document. Cells hold the raw
// N=1/S=2/E=4/W=8 bitmasks row by row; names repeats them in "NSEW" form for
// readers.
func RenderJSON(g maze.Grid, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	doc := Document{
		Generator: buildinfo.Short(),
		RunID:     r.runID,
		Algorithm: r.algorithm,
		Seed:      r.seed,
		Size:      g.Size(),
		Passages:  maze.PassageCount(g),
		Cells:     make([][]int, g.Size()),
		Names:     make([][]string, g.Size()),
	}
	for y, row := range g.Rows() {
		doc.Cells[y] = make([]int, len(row))
		doc.Names[y] = make([]string, len(row))
		for x, mask := range row {
			doc.Cells[y][x] = int(mask)
			doc.Names[y][x] = mask.String()
		}
	}

	switch r.marker.Kind {
	case maze.MarkerCell:
		c := r.marker.Cell
		doc.Marker = &jsonMarker{Kind: "cell", Cell: &c}
	case maze.MarkerRow:
		row := r.marker.Row
		doc.Marker = &jsonMarker{Kind: "row", Row: &row}
	}

	return json.MarshalIndent(doc, "", "  ")
}

// ReadJSON parses a document written by [RenderJSON] and rebuilds its grid.
func ReadJSON(data []byte) (Document, maze.Grid, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, maze.Grid{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse maze JSON")
	}
	if len(doc.Cells) != doc.Size {
		return Document{}, maze.Grid{}, errors.New(errors.ErrCodeInvalidFormat,
			"maze JSON declares size %d but has %d rows", doc.Size, len(doc.Cells))
	}

	rows := make([][]maze.Direction, len(doc.Cells))
	for y, row := range doc.Cells {
		rows[y] = make([]maze.Direction, len(row))
		for x, v := range row {
			if v < 0 || v > int(maze.All) {
				return Document{}, maze.Grid{}, errors.New(errors.ErrCodeInvalidFormat,
					"cell (%d,%d) has invalid mask %d", x, y, v)
			}
			rows[y][x] = maze.Direction(v)
		}
	}
	g, err := maze.FromRows(rows)
	if err != nil {
		return Document{}, maze.Grid{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "rebuild maze")
	}
	return doc, g, nil
}
