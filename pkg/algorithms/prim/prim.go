// Package prim implements randomized Prim maze generation.
//
// The maze grows from one random cell. Unvisited cells bordering the maze
// form the frontier; each unit of work picks a random frontier cell, joins it
// to a random neighbour already in the maze and adds its own unvisited
// neighbours to the frontier.
package prim

import (
	"math/rand/v2"
	"time"

	"github.com/matzehuels/mazetower/pkg/maze"
)

// Name is the registry key of this engine.
const Name = "prim"

// Engine grows the maze one frontier cell per step.
type Engine struct {
	maze.Tracker

	rng      *rand.Rand
	pacer    maze.Pacer
	grid     maze.Grid
	in       []bool
	queued   []bool
	frontier []maze.Cell
}

// New returns an engine configured by cfg. Call Init before stepping.
func New(cfg maze.Config) *Engine {
	e := &Engine{rng: cfg.RandOrDefault(), pacer: cfg.Pacer()}
	e.Finish()
	return e
}

// Name implements maze.Algorithm.
func (e *Engine) Name() string { return Name }

// Init seeds the maze with a random cell.
func (e *Engine) Init(size int) {
	e.grid = e.Reset(size)
	e.pacer.Reset()
	e.in = make([]bool, e.grid.Len())
	e.queued = make([]bool, e.grid.Len())
	e.frontier = e.frontier[:0]
	if size == 0 {
		return
	}
	e.add(maze.Cell{X: e.rng.IntN(size), Y: e.rng.IntN(size)})
}

// Step implements maze.Algorithm.
func (e *Engine) Step(now time.Duration) bool {
	if e.Done() {
		return true
	}
	return e.pacer.Drive(now, e.Next)
}

// Next attaches one frontier cell to the maze.
func (e *Engine) Next() (maze.Marker, bool) {
	if e.Done() {
		return maze.NoMarker, true
	}
	if len(e.frontier) == 0 {
		e.release()
		return e.Finish()
	}

	i := e.rng.IntN(len(e.frontier))
	c := e.frontier[i]
	last := len(e.frontier) - 1
	e.frontier[i] = e.frontier[last]
	e.frontier = e.frontier[:last]

	var into []maze.Direction
	for _, d := range maze.Directions() {
		n := c.Step(d)
		if e.grid.InBounds(n.X, n.Y) && e.in[e.grid.Index(n.X, n.Y)] {
			into = append(into, d)
		}
	}
	if len(into) == 0 {
		panic("prim: frontier cell has no neighbour in the maze")
	}
	e.grid.Carve(c.X, c.Y, into[e.rng.IntN(len(into))])
	e.add(c)
	return e.Record(maze.CellMarker(c))
}

// Stop ends the run and drops the frontier.
func (e *Engine) Stop() {
	e.release()
	e.Finish()
}

// Frontier returns a copy of the cells waiting to join the maze.
func (e *Engine) Frontier() []maze.Cell {
	return append([]maze.Cell(nil), e.frontier...)
}

// add marks c as part of the maze and queues its outside neighbours.
func (e *Engine) add(c maze.Cell) {
	e.in[e.grid.Index(c.X, c.Y)] = true
	for _, d := range maze.Directions() {
		n := c.Step(d)
		if !e.grid.InBounds(n.X, n.Y) {
			continue
		}
		ni := e.grid.Index(n.X, n.Y)
		if e.in[ni] || e.queued[ni] {
			continue
		}
		e.queued[ni] = true
		e.frontier = append(e.frontier, n)
	}
}

func (e *Engine) release() {
	e.in = nil
	e.queued = nil
	e.frontier = nil
}

var _ maze.Algorithm = (*Engine)(nil)
