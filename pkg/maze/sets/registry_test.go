package sets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/mazetower/pkg/maze/sets"
)

func TestFreshIsMonotonic(t *testing.T) {
	r := sets.NewRegistry()
	assert.Equal(t, 1, r.Fresh())
	assert.Equal(t, 2, r.Fresh())
	assert.Equal(t, 3, r.Fresh())
}

func TestAddAndSetOf(t *testing.T) {
	r := sets.NewRegistry()
	assert.Zero(t, r.SetOf(0), "unassigned columns report 0")

	r.Add(0, 1)
	r.Add(3, 1)
	r.Add(1, 2)

	assert.Equal(t, 1, r.SetOf(0))
	assert.Equal(t, 1, r.SetOf(3))
	assert.Equal(t, 2, r.SetOf(1))
	assert.Equal(t, []int{0, 3}, r.Members(1))
	assert.Equal(t, 2, r.Len())

	r.Add(0, 1)
	assert.Equal(t, []int{0, 3}, r.Members(1), "re-adding to the same set is a no-op")
}

func TestAddBumpsCounter(t *testing.T) {
	r := sets.NewRegistry()
	r.Add(0, 7)
	assert.Equal(t, 8, r.Fresh(), "ids handed out later never collide with explicit ones")
}

func TestAddPanics(t *testing.T) {
	r := sets.NewRegistry()
	r.Add(0, 1)

	assert.Panics(t, func() { r.Add(0, 2) }, "column already owned")
	assert.Panics(t, func() { r.Add(1, 0) }, "id 0 means unassigned")
	assert.Panics(t, func() { r.Add(1, -1) })
}

func TestMerge(t *testing.T) {
	r := sets.NewRegistry()
	r.Add(0, 1)
	r.Add(1, 2)
	r.Add(2, 2)

	r.Merge(1, 2)

	assert.Equal(t, 1, r.Len())
	assert.Equal(t, []int{0, 1, 2}, r.Members(1))
	assert.Empty(t, r.Members(2))
	for x := 0; x < 3; x++ {
		assert.Equal(t, 1, r.SetOf(x))
	}

	r.Merge(1, 1)
	assert.Equal(t, 1, r.Len(), "self-merge is a no-op")
}

func TestMergeUnknownPanics(t *testing.T) {
	r := sets.NewRegistry()
	r.Add(0, 1)
	assert.Panics(t, func() { r.Merge(1, 5) })
}

func TestSetsSnapshot(t *testing.T) {
	r := sets.NewRegistry()
	r.Add(2, 5)
	r.Add(0, 3)
	r.Add(1, 3)

	snap := r.Sets()
	require.Len(t, snap, 2)
	assert.Equal(t, sets.Set{ID: 3, Members: []int{0, 1}}, snap[0])
	assert.Equal(t, sets.Set{ID: 5, Members: []int{2}}, snap[1])

	snap[0].Members[0] = 99
	assert.Equal(t, []int{0, 1}, r.Members(3), "snapshot members are copies")
}

func TestPartition(t *testing.T) {
	const width = 8
	r := sets.NewRegistry()
	for x := 0; x < width; x++ {
		r.Add(x, r.Fresh())
	}
	r.Merge(r.SetOf(0), r.SetOf(1))
	r.Merge(r.SetOf(4), r.SetOf(5))
	r.Merge(r.SetOf(0), r.SetOf(5))

	seen := make(map[int]int)
	for _, s := range r.Sets() {
		require.NotEmpty(t, s.Members)
		for _, x := range s.Members {
			seen[x]++
			assert.Equal(t, s.ID, r.SetOf(x))
		}
	}
	require.Len(t, seen, width)
	for x, n := range seen {
		assert.Equal(t, 1, n, "column %d in exactly one set", x)
	}
	assert.Equal(t, width-3, r.Len())
}

func TestClearKeepsCounter(t *testing.T) {
	r := sets.NewRegistry()
	r.Add(0, r.Fresh())
	r.Add(1, r.Fresh())

	r.Clear()
	assert.Zero(t, r.Len())
	assert.Zero(t, r.SetOf(0))
	assert.Equal(t, 3, r.Fresh())

	r.Reset()
	assert.Equal(t, 1, r.Fresh())
}
