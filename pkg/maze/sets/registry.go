// Package sets provides the set bookkeeping used by set-merging maze
// generators.
//
// [Registry] tracks the per-row groups of Eller's algorithm: small integer
// ids mapped to column indices with an O(set size) merge. [Forest] is a
// classic union-find over cell indices for Kruskal's algorithm.
package sets

import (
	"fmt"
	"slices"
)

// Set is one group of a Registry snapshot.
type Set struct {
	ID      int
	Members []int
}

// Registry maps set ids to member columns within a single row.
//
// Ids come from a counter starting at 1 that only ever grows; 0 means
// "unassigned". Every assigned column belongs to exactly one set.
type Registry struct {
	next    int
	members map[int][]int
	owner   map[int]int
}

// NewRegistry returns an empty registry whose first id is 1.
func NewRegistry() *Registry {
	return &Registry{
		next:    1,
		members: make(map[int][]int),
		owner:   make(map[int]int),
	}
}

// Fresh returns a never-used set id.
func (r *Registry) Fresh() int {
	id := r.next
	r.next++
	return id
}

// Add places column x in set id. Adding a column already owned by another set
// is an invariant violation and panics.
func (r *Registry) Add(x, id int) {
	if id <= 0 {
		panic(fmt.Sprintf("sets: add column %d to invalid set %d", x, id))
	}
	if cur, ok := r.owner[x]; ok {
		if cur == id {
			return
		}
		panic(fmt.Sprintf("sets: column %d already in set %d, cannot add to %d", x, cur, id))
	}
	r.owner[x] = id
	r.members[id] = append(r.members[id], x)
	if id >= r.next {
		r.next = id + 1
	}
}

// SetOf returns the id owning column x, or 0.
func (r *Registry) SetOf(x int) int { return r.owner[x] }

// Members returns the columns of set id in insertion order.
func (r *Registry) Members(id int) []int {
	return slices.Clone(r.members[id])
}

// Merge moves every member of absorb into keep and deletes absorb.
// Merging a set into itself is a no-op; merging a missing set panics.
func (r *Registry) Merge(keep, absorb int) {
	if keep == absorb {
		return
	}
	moved, ok := r.members[absorb]
	if !ok {
		panic(fmt.Sprintf("sets: merge of unknown set %d into %d", absorb, keep))
	}
	for _, x := range moved {
		r.owner[x] = keep
	}
	r.members[keep] = append(r.members[keep], moved...)
	delete(r.members, absorb)
}

// Sets returns a snapshot of all sets in ascending id order.
func (r *Registry) Sets() []Set {
	ids := make([]int, 0, len(r.members))
	for id := range r.members {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]Set, len(ids))
	for i, id := range ids {
		out[i] = Set{ID: id, Members: slices.Clone(r.members[id])}
	}
	return out
}

// Len returns the number of live sets.
func (r *Registry) Len() int { return len(r.members) }

// Clear forgets all sets but keeps the id counter, so ids stay unique across
// rows.
func (r *Registry) Clear() {
	clear(r.members)
	clear(r.owner)
}

// Reset clears all sets and restarts ids at 1.
func (r *Registry) Reset() {
	r.Clear()
	r.next = 1
}
