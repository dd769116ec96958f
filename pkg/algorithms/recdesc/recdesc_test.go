package recdesc_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/mazetower/pkg/algorithms/recdesc"
	"github.com/matzehuels/mazetower/pkg/maze"
)

func newEngine(seed uint64) *recdesc.Engine {
	return recdesc.New(maze.Config{Rand: maze.NewRand(seed)})
}

// run steps e until done and returns the number of Step calls.
func run(t *testing.T, e *recdesc.Engine, limit int) int {
	t.Helper()
	for calls := 1; calls <= limit; calls++ {
		if e.Step(0) {
			return calls
		}
	}
	t.Fatalf("not done after %d steps", limit)
	return 0
}

func TestSingleCellCompletesImmediately(t *testing.T) {
	e := newEngine(1)
	e.Init(1)

	require.True(t, e.Step(0), "1x1 grid is done on the first step")
	assert.Equal(t, maze.Direction(0), e.Grid().At(0, 0))
	assert.Zero(t, e.Steps())
	assert.True(t, e.Current().IsNone())
}

func TestTwoByTwo(t *testing.T) {
	e := newEngine(2)
	e.Init(2)
	run(t, e, 100)

	g := e.Grid()
	assert.Equal(t, 3, maze.PassageCount(g))
	assert.Equal(t, 4, maze.Reachable(g, maze.Cell{}))
	assert.NoError(t, maze.Verify(g))
}

func TestPerfectMaze(t *testing.T) {
	for _, size := range []int{3, 5, 10, 25} {
		for seed := uint64(0); seed < 5; seed++ {
			e := newEngine(seed)
			e.Init(size)
			run(t, e, 5*size*size+1)
			assert.NoError(t, maze.Verify(e.Grid()), "size=%d seed=%d", size, seed)
		}
	}
}

func TestUnitCount(t *testing.T) {
	// Every cell is pushed once and costs four direction tries plus one pop.
	for _, size := range []int{2, 4, 9} {
		e := newEngine(3)
		e.Init(size)
		calls := run(t, e, 10*size*size)
		assert.Equal(t, 5*size*size, e.Steps(), "size=%d", size)
		assert.Equal(t, 5*size*size+1, calls, "size=%d", size)
	}
}

func TestStackHoldsDistinctCells(t *testing.T) {
	e := newEngine(4)
	e.Init(8)
	for !e.Step(0) {
		stack := e.Stack()
		require.LessOrEqual(t, len(stack), 64)
		seen := make(map[maze.Cell]bool, len(stack))
		for _, c := range stack {
			require.False(t, seen[c], "cell %v pushed twice", c)
			seen[c] = true
		}
		assert.Equal(t, len(stack), e.Depth())
	}
}

func TestCurrentTracksWork(t *testing.T) {
	e := newEngine(5)
	e.Init(4)
	require.True(t, e.Current().IsNone(), "nothing highlighted before the first step")

	for !e.Step(0) {
		m := e.Current()
		require.Equal(t, maze.MarkerCell, m.Kind)
		assert.True(t, e.Grid().InBounds(m.Cell.X, m.Cell.Y))
	}
	assert.True(t, e.Current().IsNone())
}

func TestIdempotentAfterDone(t *testing.T) {
	e := newEngine(6)
	e.Init(6)
	run(t, e, 1000)

	snapshot := e.Grid().Clone()
	steps := e.Steps()
	for i := 0; i < 50; i++ {
		require.True(t, e.Step(time.Duration(i)*time.Second))
		m, done := e.Next()
		require.True(t, done)
		require.True(t, m.IsNone())
	}
	assert.True(t, e.Grid().Equal(snapshot))
	assert.Equal(t, steps, e.Steps())
}

func TestStop(t *testing.T) {
	e := newEngine(7)
	e.Init(10)
	for i := 0; i < 20; i++ {
		e.Step(0)
	}
	snapshot := e.Grid().Clone()

	e.Stop()
	assert.True(t, e.Done())
	assert.Zero(t, e.Depth())
	assert.True(t, e.Current().IsNone())
	assert.True(t, e.Step(0))
	assert.True(t, e.Grid().Equal(snapshot), "stepping a stopped run carves nothing")
}

func TestStepBeforeInit(t *testing.T) {
	e := newEngine(8)
	assert.True(t, e.Step(0))
	assert.True(t, e.Done())
}

func TestDeterministic(t *testing.T) {
	a, b := newEngine(42), newEngine(42)
	a.Init(12)
	b.Init(12)
	run(t, a, 1000)
	run(t, b, 1000)
	assert.True(t, a.Grid().Equal(b.Grid()))

	c := newEngine(43)
	c.Init(12)
	run(t, c, 1000)
	assert.False(t, a.Grid().Equal(c.Grid()))
}

func TestReinit(t *testing.T) {
	e := newEngine(9)
	e.Init(5)
	run(t, e, 1000)
	first := e.Grid()

	e.Init(3)
	assert.False(t, e.Done())
	assert.Zero(t, e.Steps())
	assert.Equal(t, 3, e.Grid().Size())
	run(t, e, 1000)
	assert.NoError(t, maze.Verify(e.Grid()))
	assert.NoError(t, maze.Verify(first), "earlier grid is left intact")
}

func TestPacedStep(t *testing.T) {
	e := recdesc.New(maze.Config{Rand: maze.NewRand(10), Interval: 10 * time.Millisecond})
	e.Init(4)

	assert.False(t, e.Step(0))
	assert.Zero(t, e.Steps())

	assert.False(t, e.Step(10*time.Millisecond))
	assert.Equal(t, 1, e.Steps())

	assert.False(t, e.Step(50*time.Millisecond))
	assert.Equal(t, 5, e.Steps())
}
