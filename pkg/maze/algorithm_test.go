package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matzehuels/mazetower/pkg/maze"
)

func TestMarkerCovers(t *testing.T) {
	cell := maze.CellMarker(maze.Cell{X: 1, Y: 2})
	assert.True(t, cell.Covers(1, 2))
	assert.False(t, cell.Covers(2, 1))
	assert.False(t, cell.IsNone())

	row := maze.RowMarker(3)
	assert.True(t, row.Covers(0, 3))
	assert.True(t, row.Covers(9, 3))
	assert.False(t, row.Covers(0, 2))

	assert.True(t, maze.NoMarker.IsNone())
	assert.False(t, maze.NoMarker.Covers(0, 0))
}

func TestTracker(t *testing.T) {
	var tr maze.Tracker
	g := tr.Reset(3)
	assert.Equal(t, 3, tr.Grid().Size())
	assert.False(t, tr.Done())

	g.Carve(0, 0, maze.East)
	assert.True(t, tr.Grid().At(0, 0).Has(maze.East), "Reset hands out the live grid")

	m, done := tr.Record(maze.RowMarker(1))
	assert.False(t, done)
	assert.Equal(t, maze.RowMarker(1), m)
	assert.Equal(t, m, tr.Current())
	assert.Equal(t, 1, tr.Steps())

	m, done = tr.Finish()
	assert.True(t, done)
	assert.True(t, m.IsNone())
	assert.True(t, tr.Current().IsNone())
	assert.True(t, tr.Done())

	tr.Reset(2)
	assert.False(t, tr.Done())
	assert.Zero(t, tr.Steps())
}

func TestNewRandDeterministic(t *testing.T) {
	a, b := maze.NewRand(99), maze.NewRand(99)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestConfigDefaults(t *testing.T) {
	var cfg maze.Config
	assert.NotNil(t, cfg.RandOrDefault())

	p := cfg.Pacer()
	assert.Equal(t, 1, p.Due(0))
}
