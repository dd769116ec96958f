package maze

import "math/rand/v2"

// Direction is a single side of a cell, or a set of sides when used as a
// cell bitmask.
type Direction uint8

const (
	North Direction = 1
	South Direction = 2
	East  Direction = 4
	West  Direction = 8
)

// All is the bitmask of a cell open on every side.
const All = North | South | East | West

var names = [...]string{
	"X", "N", "S", "NS", "E", "NE", "SE", "NSE",
	"W", "NW", "SW", "NSW", "EW", "NEW", "SEW", "NSEW",
}

// Directions returns the four directions in N, S, E, W order.
func Directions() []Direction {
	return []Direction{North, South, East, West}
}

// Shuffled returns a fresh random permutation of the four directions.
func Shuffled(rng *rand.Rand) []Direction {
	dirs := Directions()
	rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
	return dirs
}

// Opposite returns the direction facing d.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	panic("maze: Opposite of non-cardinal direction " + d.String())
}

// Delta returns the column and row offsets of a step in direction d.
// Rows grow downwards, so North is (0, -1).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	panic("maze: Delta of non-cardinal direction " + d.String())
}

// Has reports whether every bit of o is set in d.
func (d Direction) Has(o Direction) bool { return d&o == o }

// String returns the compact side list, e.g. "NE" or "X" for a closed cell.
func (d Direction) String() string {
	if int(d) < len(names) {
		return names[d]
	}
	return "?"
}
