// Package recdesc implements recursive-descent (recursive backtracking) maze
// generation as a steppable engine.
//
// The recursion is replaced by an explicit stack of work items. Each item is
// a visited cell plus a shuffled list of directions still to try. One call to
// [Engine.Next] either pops one direction from the top item (carving into the
// neighbour and pushing it when the neighbour is in bounds and unvisited) or,
// when the top item has no directions left, pops the item itself. Either way
// the call is one unit of work.
package recdesc

import (
	"math/rand/v2"
	"time"

	"github.com/matzehuels/mazetower/pkg/maze"
)

// Name is the registry key of this engine.
const Name = "recdesc"

type workItem struct {
	cell      maze.Cell
	remaining []maze.Direction
}

// Engine is a pausable depth-first maze carver.
type Engine struct {
	maze.Tracker

	rng   *rand.Rand
	pacer maze.Pacer
	grid  maze.Grid
	work  []workItem
}

// New returns an engine configured by cfg. Call Init before stepping.
func New(cfg maze.Config) *Engine {
	e := &Engine{rng: cfg.RandOrDefault(), pacer: cfg.Pacer()}
	e.Finish()
	return e
}

// Name implements maze.Algorithm.
func (e *Engine) Name() string { return Name }

// Init starts a new size×size run at (0,0). Grids smaller than 2×2 have
// nothing to carve, so their run is complete after the first step.
func (e *Engine) Init(size int) {
	e.grid = e.Reset(size)
	e.work = e.work[:0]
	e.pacer.Reset()
	if size > 1 {
		e.push(maze.Cell{})
	}
}

// Step implements maze.Algorithm.
func (e *Engine) Step(now time.Duration) bool {
	if e.Done() {
		return true
	}
	return e.pacer.Drive(now, e.Next)
}

// Next performs one unit of work and returns the cell it worked on.
func (e *Engine) Next() (maze.Marker, bool) {
	if e.Done() {
		return maze.NoMarker, true
	}
	if len(e.work) == 0 {
		e.work = nil
		return e.Finish()
	}

	top := len(e.work) - 1
	c := e.work[top].cell
	dirs := e.work[top].remaining
	if len(dirs) == 0 {
		e.work = e.work[:top]
		return e.Record(maze.CellMarker(c))
	}

	d := dirs[len(dirs)-1]
	e.work[top].remaining = dirs[:len(dirs)-1]

	n := c.Step(d)
	if e.grid.InBounds(n.X, n.Y) && !e.grid.Visited(n.X, n.Y) {
		e.grid.Carve(c.X, c.Y, d)
		e.push(n)
	}
	return e.Record(maze.CellMarker(c))
}

// Stop ends the run and releases the work stack.
func (e *Engine) Stop() {
	e.work = nil
	e.Finish()
}

// Stack returns the frontier cells from bottom to top.
func (e *Engine) Stack() []maze.Cell {
	cells := make([]maze.Cell, len(e.work))
	for i, w := range e.work {
		cells[i] = w.cell
	}
	return cells
}

// Depth returns the current stack height.
func (e *Engine) Depth() int { return len(e.work) }

func (e *Engine) push(c maze.Cell) {
	e.work = append(e.work, workItem{cell: c, remaining: maze.Shuffled(e.rng)})
}

var _ maze.Algorithm = (*Engine)(nil)
