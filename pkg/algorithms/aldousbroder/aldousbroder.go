// Package aldousbroder implements the Aldous-Broder maze algorithm.
//
// A random walk wanders the grid; each time it enters a cell for the first
// time, the wall it crossed is removed. Every spanning tree is equally likely.
// Each unit of work is one move of the walk, so runs are long but each step
// is O(1). The walk covers the grid with probability one.
package aldousbroder

import (
	"math/rand/v2"
	"time"

	"github.com/matzehuels/mazetower/pkg/maze"
)

// Name is the registry key of this engine.
const Name = "aldousbroder"

// Engine is a random-walk carver.
type Engine struct {
	maze.Tracker

	rng       *rand.Rand
	pacer     maze.Pacer
	grid      maze.Grid
	visited   []bool
	remaining int
	walker    maze.Cell
}

// New returns an engine configured by cfg. Call Init before stepping.
func New(cfg maze.Config) *Engine {
	e := &Engine{rng: cfg.RandOrDefault(), pacer: cfg.Pacer()}
	e.Finish()
	return e
}

// Name implements maze.Algorithm.
func (e *Engine) Name() string { return Name }

// Init drops the walker on a random cell.
func (e *Engine) Init(size int) {
	e.grid = e.Reset(size)
	e.pacer.Reset()
	e.visited = make([]bool, e.grid.Len())
	e.remaining = e.grid.Len()
	if size == 0 {
		return
	}
	e.walker = maze.Cell{X: e.rng.IntN(size), Y: e.rng.IntN(size)}
	e.visited[e.grid.Index(e.walker.X, e.walker.Y)] = true
	e.remaining--
}

// Step implements maze.Algorithm.
func (e *Engine) Step(now time.Duration) bool {
	if e.Done() {
		return true
	}
	return e.pacer.Drive(now, e.Next)
}

// Next moves the walker once.
func (e *Engine) Next() (maze.Marker, bool) {
	if e.Done() {
		return maze.NoMarker, true
	}
	if e.remaining == 0 {
		e.visited = nil
		return e.Finish()
	}

	var moves []maze.Direction
	for _, d := range maze.Directions() {
		n := e.walker.Step(d)
		if e.grid.InBounds(n.X, n.Y) {
			moves = append(moves, d)
		}
	}
	d := moves[e.rng.IntN(len(moves))]
	n := e.walker.Step(d)
	if ni := e.grid.Index(n.X, n.Y); !e.visited[ni] {
		e.grid.Carve(e.walker.X, e.walker.Y, d)
		e.visited[ni] = true
		e.remaining--
	}
	e.walker = n
	return e.Record(maze.CellMarker(n))
}

// Stop ends the run.
func (e *Engine) Stop() {
	e.visited = nil
	e.Finish()
}

// Unvisited returns the number of cells the walk has not reached yet.
func (e *Engine) Unvisited() int { return e.remaining }

var _ maze.Algorithm = (*Engine)(nil)
