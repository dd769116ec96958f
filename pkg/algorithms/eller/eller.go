// Package eller implements Eller's algorithm as a steppable engine that
// carves one row per unit of work.
//
// Each row goes through the same passes:
//
//  1. Columns not carried down from the row above get fresh singleton sets.
//  2. Adjacent columns in different sets are joined East/West on a coin flip
//     (always on the last row) and their sets merged.
//  3. Unless this is the last row, every set sends between one and all of its
//     members South; those cells seed the next row under the same set id.
//
// Joining only distinct sets keeps the maze acyclic; the guaranteed downward
// passage per set and the fully merged last row keep it connected.
package eller

import (
	"math/rand/v2"
	"time"

	"github.com/matzehuels/mazetower/pkg/maze"
	"github.com/matzehuels/mazetower/pkg/maze/sets"
)

// Name is the registry key of this engine.
const Name = "eller"

// rowWork is one deferred row.
type rowWork struct {
	Row  int
	Size int
}

// Engine is a row-at-a-time Eller generator.
type Engine struct {
	maze.Tracker

	rng   *rand.Rand
	pacer maze.Pacer
	grid  maze.Grid
	work  []rowWork
	sets  *sets.Registry
}

// New returns an engine configured by cfg. Call Init before stepping.
func New(cfg maze.Config) *Engine {
	e := &Engine{
		rng:   cfg.RandOrDefault(),
		pacer: cfg.Pacer(),
		sets:  sets.NewRegistry(),
	}
	e.Finish()
	return e
}

// Name implements maze.Algorithm.
func (e *Engine) Name() string { return Name }

// Init queues one unit of work per row.
func (e *Engine) Init(size int) {
	e.grid = e.Reset(size)
	e.sets.Reset()
	e.pacer.Reset()
	e.work = e.work[:0]
	// Pushed bottom-up so popping from the end yields rows top-down.
	for y := size - 1; y >= 0; y-- {
		e.work = append(e.work, rowWork{Row: y, Size: size})
	}
}

// Step implements maze.Algorithm.
func (e *Engine) Step(now time.Duration) bool {
	if e.Done() {
		return true
	}
	return e.pacer.Drive(now, e.Next)
}

// Next carves the next row and returns its marker.
func (e *Engine) Next() (maze.Marker, bool) {
	if e.Done() {
		return maze.NoMarker, true
	}
	if len(e.work) == 0 {
		e.work = nil
		e.sets.Clear()
		return e.Finish()
	}
	w := e.work[len(e.work)-1]
	e.work = e.work[:len(e.work)-1]
	e.carveRow(w)
	return e.Record(maze.RowMarker(w.Row))
}

// Stop ends the run and drops the row queue and set registry.
func (e *Engine) Stop() {
	e.work = nil
	e.sets.Clear()
	e.Finish()
}

// SetOf returns the set id of column x in the row about to be processed, or 0
// when x has not been carried down. Renderers use it to colour set membership.
func (e *Engine) SetOf(x int) int { return e.sets.SetOf(x) }

// Remaining returns the number of rows still queued.
func (e *Engine) Remaining() int { return len(e.work) }

func (e *Engine) carveRow(w rowWork) {
	y, size := w.Row, w.Size
	last := y == size-1

	for x := 0; x < size; x++ {
		if e.sets.SetOf(x) == 0 {
			e.sets.Add(x, e.sets.Fresh())
		}
	}

	for x := 0; x < size-1; x++ {
		left, right := e.sets.SetOf(x), e.sets.SetOf(x+1)
		if left == right {
			continue
		}
		if last || e.rng.IntN(2) == 0 {
			e.grid.Carve(x, y, maze.East)
			e.sets.Merge(left, right)
		}
	}

	prevSets := e.sets.Sets()
	e.sets.Clear()
	if last {
		return
	}

	for _, s := range prevSets {
		if len(s.Members) == 0 {
			panic("eller: empty set in registry snapshot")
		}
		members := s.Members
		e.rng.Shuffle(len(members), func(i, j int) { members[i], members[j] = members[j], members[i] })
		verticals := 1 + e.rng.IntN(len(members))
		for _, x := range members[:verticals] {
			e.grid.Carve(x, y, maze.South)
			e.sets.Add(x, s.ID)
		}
	}
}

var _ maze.Algorithm = (*Engine)(nil)
