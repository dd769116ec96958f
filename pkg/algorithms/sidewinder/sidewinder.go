// Package sidewinder implements the Sidewinder maze algorithm, one cell per
// unit of work.
//
// Rows are scanned west to east. A run of cells grows eastwards until a coin
// flip (or the east edge) closes it, at which point one random member of the
// run is joined North. The top row has nothing above it and becomes a single
// corridor.
package sidewinder

import (
	"math/rand/v2"
	"time"

	"github.com/matzehuels/mazetower/pkg/maze"
)

// Name is the registry key of this engine.
const Name = "sidewinder"

// Engine visits cells in row-major order.
type Engine struct {
	maze.Tracker

	rng      *rand.Rand
	pacer    maze.Pacer
	grid     maze.Grid
	cursor   maze.Cell
	runStart int
}

// New returns an engine configured by cfg. Call Init before stepping.
func New(cfg maze.Config) *Engine {
	e := &Engine{rng: cfg.RandOrDefault(), pacer: cfg.Pacer()}
	e.Finish()
	return e
}

// Name implements maze.Algorithm.
func (e *Engine) Name() string { return Name }

// Init places the cursor on the north-west cell.
func (e *Engine) Init(size int) {
	e.grid = e.Reset(size)
	e.pacer.Reset()
	e.cursor = maze.Cell{}
	e.runStart = 0
}

// Step implements maze.Algorithm.
func (e *Engine) Step(now time.Duration) bool {
	if e.Done() {
		return true
	}
	return e.pacer.Drive(now, e.Next)
}

// Next processes the cell under the cursor.
func (e *Engine) Next() (maze.Marker, bool) {
	if e.Done() {
		return maze.NoMarker, true
	}
	size := e.grid.Size()
	if e.cursor.Y >= size {
		return e.Finish()
	}

	c := e.cursor
	atEast := c.X == size-1
	atTop := c.Y == 0
	if atEast || (!atTop && e.rng.IntN(2) == 0) {
		if !atTop {
			x := e.runStart + e.rng.IntN(c.X-e.runStart+1)
			e.grid.Carve(x, c.Y, maze.North)
		}
		e.runStart = c.X + 1
	} else {
		e.grid.Carve(c.X, c.Y, maze.East)
	}

	e.cursor.X++
	if e.cursor.X == size {
		e.cursor = maze.Cell{Y: c.Y + 1}
		e.runStart = 0
	}
	return e.Record(maze.CellMarker(c))
}

// Stop ends the run.
func (e *Engine) Stop() { e.Finish() }

var _ maze.Algorithm = (*Engine)(nil)
