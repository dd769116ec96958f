// Package kruskal implements randomized Kruskal maze generation.
//
// Every interior wall is listed once and shuffled. Each unit of work removes
// walls from the list until one separates two different trees of a
// union-find forest, then carves it. Walls between cells already joined are
// discarded, so the result is a spanning tree.
package kruskal

import (
	"math/rand/v2"
	"time"

	"github.com/matzehuels/mazetower/pkg/maze"
	"github.com/matzehuels/mazetower/pkg/maze/sets"
)

// Name is the registry key of this engine.
const Name = "kruskal"

type wall struct {
	cell maze.Cell
	dir  maze.Direction
}

// Engine carves one spanning-tree edge per step.
type Engine struct {
	maze.Tracker

	rng    *rand.Rand
	pacer  maze.Pacer
	grid   maze.Grid
	walls  []wall
	forest *sets.Forest
}

// New returns an engine configured by cfg. Call Init before stepping.
func New(cfg maze.Config) *Engine {
	e := &Engine{rng: cfg.RandOrDefault(), pacer: cfg.Pacer()}
	e.Finish()
	return e
}

// Name implements maze.Algorithm.
func (e *Engine) Name() string { return Name }

// Init lists and shuffles every interior wall.
func (e *Engine) Init(size int) {
	e.grid = e.Reset(size)
	e.pacer.Reset()
	e.walls = e.walls[:0]
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if y > 0 {
				e.walls = append(e.walls, wall{cell: maze.Cell{X: x, Y: y}, dir: maze.North})
			}
			if x > 0 {
				e.walls = append(e.walls, wall{cell: maze.Cell{X: x, Y: y}, dir: maze.West})
			}
		}
	}
	e.rng.Shuffle(len(e.walls), func(i, j int) { e.walls[i], e.walls[j] = e.walls[j], e.walls[i] })
	e.forest = sets.NewForest(e.grid.Len())
}

// Step implements maze.Algorithm.
func (e *Engine) Step(now time.Duration) bool {
	if e.Done() {
		return true
	}
	return e.pacer.Drive(now, e.Next)
}

// Next carves the next wall that joins two trees.
func (e *Engine) Next() (maze.Marker, bool) {
	if e.Done() {
		return maze.NoMarker, true
	}
	for len(e.walls) > 0 {
		w := e.walls[len(e.walls)-1]
		e.walls = e.walls[:len(e.walls)-1]

		n := w.cell.Step(w.dir)
		a := e.grid.Index(w.cell.X, w.cell.Y)
		b := e.grid.Index(n.X, n.Y)
		if e.forest.Union(a, b) {
			e.grid.Carve(w.cell.X, w.cell.Y, w.dir)
			return e.Record(maze.CellMarker(w.cell))
		}
	}
	e.walls = nil
	e.forest = nil
	return e.Finish()
}

// Stop ends the run and drops the wall list.
func (e *Engine) Stop() {
	e.walls = nil
	e.forest = nil
	e.Finish()
}

// Trees returns the number of disjoint regions left, or 0 once finished.
func (e *Engine) Trees() int {
	if e.forest == nil {
		return 0
	}
	return e.forest.Count()
}

var _ maze.Algorithm = (*Engine)(nil)
