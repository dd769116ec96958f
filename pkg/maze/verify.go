package maze

import "fmt"

// CheckSymmetry returns ErrAsymmetric for the first cell whose open side is
// not matched by its neighbour.
func CheckSymmetry(g Grid) error {
	for i, mask := range g.cells {
		c := g.CellAt(i)
		for _, d := range Directions() {
			if !mask.Has(d) {
				continue
			}
			n := c.Step(d)
			if !g.InBounds(n.X, n.Y) {
				return fmt.Errorf("%w: (%d,%d) opens %s off the grid", ErrAsymmetric, c.X, c.Y, d)
			}
			if !g.At(n.X, n.Y).Has(d.Opposite()) {
				return fmt.Errorf("%w: (%d,%d) opens %s but (%d,%d) lacks %s",
					ErrAsymmetric, c.X, c.Y, d, n.X, n.Y, d.Opposite())
			}
		}
	}
	return nil
}

// Reachable counts the cells reachable from start through open passages.
//
// Time: O(N²). Memory: O(N²) for the distances and queue.
func Reachable(g Grid, start Cell) int {
	n := 0
	for _, d := range Distances(g, start) {
		if d >= 0 {
			n++
		}
	}
	return n
}

// Distances returns the passage distance from start to every cell in
// row-major order, or -1 for cells start cannot reach. An out-of-bounds start
// reaches nothing.
func Distances(g Grid, start Cell) []int {
	dist := make([]int, g.Len())
	for i := range dist {
		dist[i] = -1
	}
	if !g.InBounds(start.X, start.Y) {
		return dist
	}
	queue := []int{g.index(start.X, start.Y)}
	dist[queue[0]] = 0

	for qi := 0; qi < len(queue); qi++ {
		c := g.CellAt(queue[qi])
		mask := g.cells[queue[qi]]
		for _, d := range Directions() {
			if !mask.Has(d) {
				continue
			}
			n := c.Step(d)
			if !g.InBounds(n.X, n.Y) {
				continue
			}
			ni := g.index(n.X, n.Y)
			if dist[ni] < 0 {
				dist[ni] = dist[queue[qi]] + 1
				queue = append(queue, ni)
			}
		}
	}
	return dist
}

// PassageCount returns the number of open passages, each counted once.
func PassageCount(g Grid) int {
	n := 0
	for _, mask := range g.cells {
		// South and East own the pair; North and West are their mirrors.
		if mask.Has(South) {
			n++
		}
		if mask.Has(East) {
			n++
		}
	}
	return n
}

// Verify checks that g is a perfect maze: symmetric passages, every cell
// reachable from (0,0), and exactly N²-1 passages.
func Verify(g Grid) error {
	if err := CheckSymmetry(g); err != nil {
		return err
	}
	if g.Len() == 0 {
		return nil
	}
	if got := Reachable(g, Cell{}); got != g.Len() {
		return fmt.Errorf("%w: reached %d of %d cells", ErrDisconnected, got, g.Len())
	}
	if got, want := PassageCount(g), g.Len()-1; got != want {
		return fmt.Errorf("%w: %d passages, spanning tree has %d", ErrCyclic, got, want)
	}
	return nil
}
