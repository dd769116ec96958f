// Package huntandkill implements the Hunt-and-Kill maze algorithm.
//
// The engine alternates between two modes. Walking carves from the current
// cell into a random unvisited neighbour, one cell per step. When the walk is
// boxed in the engine hunts: it scans one row per step for an unvisited cell
// bordering the maze, joins it to a random visited neighbour and resumes
// walking from there.
package huntandkill

import (
	"math/rand/v2"
	"time"

	"github.com/matzehuels/mazetower/pkg/maze"
)

// Name is the registry key of this engine.
const Name = "huntandkill"

// Engine alternates random walks with row-by-row hunts.
type Engine struct {
	maze.Tracker

	rng       *rand.Rand
	pacer     maze.Pacer
	grid      maze.Grid
	visited   []bool
	remaining int
	head      maze.Cell
	hunting   bool
	huntRow   int
}

// New returns an engine configured by cfg. Call Init before stepping.
func New(cfg maze.Config) *Engine {
	e := &Engine{rng: cfg.RandOrDefault(), pacer: cfg.Pacer()}
	e.Finish()
	return e
}

// Name implements maze.Algorithm.
func (e *Engine) Name() string { return Name }

// Init starts a walk from a random cell.
func (e *Engine) Init(size int) {
	e.grid = e.Reset(size)
	e.pacer.Reset()
	e.visited = make([]bool, e.grid.Len())
	e.remaining = e.grid.Len()
	e.hunting = false
	e.huntRow = 0
	if size == 0 {
		return
	}
	e.head = maze.Cell{X: e.rng.IntN(size), Y: e.rng.IntN(size)}
	e.visit(e.head)
}

// Step implements maze.Algorithm.
func (e *Engine) Step(now time.Duration) bool {
	if e.Done() {
		return true
	}
	return e.pacer.Drive(now, e.Next)
}

// Next walks one cell or hunts one row.
func (e *Engine) Next() (maze.Marker, bool) {
	if e.Done() {
		return maze.NoMarker, true
	}
	if e.remaining == 0 {
		e.visited = nil
		return e.Finish()
	}
	if e.hunting {
		return e.hunt()
	}

	open := e.neighbours(e.head, false)
	if len(open) == 0 {
		e.hunting = true
		e.huntRow = 0
		return e.Record(maze.CellMarker(e.head))
	}
	d := open[e.rng.IntN(len(open))]
	e.grid.Carve(e.head.X, e.head.Y, d)
	e.head = e.head.Step(d)
	e.visit(e.head)
	return e.Record(maze.CellMarker(e.head))
}

// Stop ends the run.
func (e *Engine) Stop() {
	e.visited = nil
	e.Finish()
}

// Hunting reports whether the engine is scanning for a new walk start.
func (e *Engine) Hunting() bool { return e.hunting }

func (e *Engine) hunt() (maze.Marker, bool) {
	y := e.huntRow
	for x := 0; x < e.grid.Size(); x++ {
		c := maze.Cell{X: x, Y: y}
		if e.visited[e.grid.Index(x, y)] {
			continue
		}
		back := e.neighbours(c, true)
		if len(back) == 0 {
			continue
		}
		e.grid.Carve(x, y, back[e.rng.IntN(len(back))])
		e.visit(c)
		e.head = c
		e.hunting = false
		return e.Record(maze.CellMarker(c))
	}
	e.huntRow++
	if e.huntRow >= e.grid.Size() {
		// Unvisited cells always border the maze, so a full scan finds one.
		panic("huntandkill: hunt found no cell while cells remain unvisited")
	}
	return e.Record(maze.RowMarker(y))
}

// neighbours returns the in-bounds directions from c whose target's visited
// flag equals visited.
func (e *Engine) neighbours(c maze.Cell, visited bool) []maze.Direction {
	var out []maze.Direction
	for _, d := range maze.Directions() {
		n := c.Step(d)
		if e.grid.InBounds(n.X, n.Y) && e.visited[e.grid.Index(n.X, n.Y)] == visited {
			out = append(out, d)
		}
	}
	return out
}

func (e *Engine) visit(c maze.Cell) {
	e.visited[e.grid.Index(c.X, c.Y)] = true
	e.remaining--
}

var _ maze.Algorithm = (*Engine)(nil)
