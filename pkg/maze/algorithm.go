package maze

import (
	"math/rand/v2"
	"time"
)

// Algorithm is the contract every steppable generator satisfies.
//
// Init allocates a fresh grid and working state. Step advances the run by the
// number of units the algorithm's [Pacer] allows at time now and reports
// whether the maze is complete; once it returns true, further calls are no-ops
// that keep returning true. Stop forces completion and drops transient state.
//
// Renderers read Grid and Current between steps. The returned Grid shares
// storage with the engine and must be treated as read-only.
type Algorithm interface {
	Name() string
	Init(size int)
	Step(now time.Duration) bool
	Stop()
	Done() bool
	Grid() Grid
	Current() Marker
}

// Stepper is implemented by engines that expose their raw unit of work.
// Next performs exactly one unit and returns the marker of the work done, or
// (NoMarker, true) once the run is finished.
type Stepper interface {
	Next() (Marker, bool)
}

// MarkerKind says which part of the grid a Marker points at.
type MarkerKind uint8

const (
	MarkerNone MarkerKind = iota
	MarkerCell
	MarkerRow
)

// Marker is the highlight a renderer draws after each step: the cell being
// explored, the row just processed, or nothing.
type Marker struct {
	Kind MarkerKind
	Cell Cell
	Row  int
}

// NoMarker is the marker of a finished or stopped run.
var NoMarker = Marker{}

// CellMarker points at c.
func CellMarker(c Cell) Marker { return Marker{Kind: MarkerCell, Cell: c} }

// RowMarker points at row y.
func RowMarker(y int) Marker { return Marker{Kind: MarkerRow, Row: y} }

// IsNone reports whether m points at nothing.
func (m Marker) IsNone() bool { return m.Kind == MarkerNone }

// Covers reports whether the cell (x, y) is highlighted by m.
func (m Marker) Covers(x, y int) bool {
	switch m.Kind {
	case MarkerCell:
		return m.Cell.X == x && m.Cell.Y == y
	case MarkerRow:
		return m.Row == y
	}
	return false
}

// Config carries the knobs shared by all engines.
type Config struct {
	// Rand is the randomness source. Nil selects a randomly seeded PCG.
	Rand *rand.Rand

	// Interval is the simulated time one unit of work takes. Zero makes
	// every Step call perform exactly one unit.
	Interval time.Duration

	// MaxBurst caps the units a single Step may perform when catching up.
	// Zero selects DefaultMaxBurst.
	MaxBurst int
}

// NewRand returns a PCG-backed generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandOrDefault returns c.Rand, or a randomly seeded generator when unset.
func (c Config) RandOrDefault() *rand.Rand {
	if c.Rand != nil {
		return c.Rand
	}
	return NewRand(rand.Uint64())
}

// Pacer returns a pacer configured from c.
func (c Config) Pacer() Pacer {
	return Pacer{Interval: c.Interval, MaxBurst: c.MaxBurst}
}

// Tracker holds the bookkeeping every engine shares: the grid, the latest
// marker, completion and a unit counter. Engines embed it.
type Tracker struct {
	grid    Grid
	current Marker
	done    bool
	steps   int
}

// Reset allocates a fresh grid and clears progress. The returned Grid shares
// storage with the tracker so the engine can carve into it.
func (t *Tracker) Reset(size int) Grid {
	t.grid = NewGrid(size)
	t.current = NoMarker
	t.done = false
	t.steps = 0
	return t.grid
}

// Record counts one unit of work and remembers its marker.
func (t *Tracker) Record(m Marker) (Marker, bool) {
	t.steps++
	t.current = m
	return m, false
}

// Finish marks the run complete.
func (t *Tracker) Finish() (Marker, bool) {
	t.done = true
	t.current = NoMarker
	return NoMarker, true
}

// Grid returns the live grid.
func (t *Tracker) Grid() Grid { return t.grid }

// Current returns the marker of the latest unit.
func (t *Tracker) Current() Marker { return t.current }

// Done reports whether the run has completed or been stopped.
func (t *Tracker) Done() bool { return t.done }

// Steps returns the number of units performed since Reset.
func (t *Tracker) Steps() int { return t.steps }
