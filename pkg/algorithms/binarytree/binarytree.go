// Package binarytree implements the binary-tree maze algorithm: every cell
// opens either North or East, chosen at random among the sides that stay
// inside the grid. The north-east cell opens nothing and is the tree's root.
package binarytree

import (
	"math/rand/v2"
	"time"

	"github.com/matzehuels/mazetower/pkg/maze"
)

// Name is the registry key of this engine.
const Name = "binarytree"

// Engine visits one cell per step in row-major order.
type Engine struct {
	maze.Tracker

	rng    *rand.Rand
	pacer  maze.Pacer
	grid   maze.Grid
	cursor int
}

// New returns an engine configured by cfg. Call Init before stepping.
func New(cfg maze.Config) *Engine {
	e := &Engine{rng: cfg.RandOrDefault(), pacer: cfg.Pacer()}
	e.Finish()
	return e
}

// Name implements maze.Algorithm.
func (e *Engine) Name() string { return Name }

// Init rewinds to the first cell.
func (e *Engine) Init(size int) {
	e.grid = e.Reset(size)
	e.pacer.Reset()
	e.cursor = 0
}

// Step implements maze.Algorithm.
func (e *Engine) Step(now time.Duration) bool {
	if e.Done() {
		return true
	}
	return e.pacer.Drive(now, e.Next)
}

// Next carves the passage of the cell under the cursor.
func (e *Engine) Next() (maze.Marker, bool) {
	if e.Done() {
		return maze.NoMarker, true
	}
	if e.cursor >= e.grid.Len() {
		return e.Finish()
	}
	c := e.grid.CellAt(e.cursor)
	e.cursor++

	var options []maze.Direction
	if c.Y > 0 {
		options = append(options, maze.North)
	}
	if c.X < e.grid.Size()-1 {
		options = append(options, maze.East)
	}
	if len(options) > 0 {
		e.grid.Carve(c.X, c.Y, options[e.rng.IntN(len(options))])
	}
	return e.Record(maze.CellMarker(c))
}

// Stop ends the run.
func (e *Engine) Stop() { e.Finish() }

var _ maze.Algorithm = (*Engine)(nil)
