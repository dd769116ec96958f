package maze

import "fmt"

// Cell is a grid coordinate. X is the column, Y the row.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Step returns the coordinate one move away in direction d.
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Grid is a size×size array of cell bitmasks stored row-major.
//
// Grid values share their backing array: copies made by assignment observe
// each other's carves. Use [Grid.Clone] for an independent snapshot.
type Grid struct {
	size  int
	cells []Direction
}

// NewGrid returns a size×size grid with every wall standing.
// A non-positive size yields an empty grid.
func NewGrid(size int) Grid {
	if size <= 0 {
		return Grid{}
	}
	return Grid{size: size, cells: make([]Direction, size*size)}
}

// FromRows builds a grid from row-major bitmasks, as produced by [Grid.Rows].
// The rows must form a square and every passage must be symmetric.
func FromRows(rows [][]Direction) (Grid, error) {
	n := len(rows)
	g := NewGrid(n)
	for y, row := range rows {
		if len(row) != n {
			return Grid{}, fmt.Errorf("maze: row %d has %d cells, want %d", y, len(row), n)
		}
		for x, mask := range row {
			if mask > All {
				return Grid{}, fmt.Errorf("maze: cell (%d,%d) has invalid mask %d", x, y, mask)
			}
			g.cells[g.index(x, y)] = mask
		}
	}
	if err := CheckSymmetry(g); err != nil {
		return Grid{}, err
	}
	return g, nil
}

// Size returns the number of rows (and columns).
func (g Grid) Size() int { return g.size }

// Len returns the number of cells.
func (g Grid) Len() int { return len(g.cells) }

// InBounds reports whether (x, y) lies inside the grid.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.size && y < g.size
}

// At returns the bitmask at (x, y).
func (g Grid) At(x, y int) Direction {
	return g.cells[g.index(x, y)]
}

// Visited reports whether any passage has been opened at (x, y).
func (g Grid) Visited(x, y int) bool {
	return g.cells[g.index(x, y)] != 0
}

// Index returns the row-major index of (x, y).
func (g Grid) Index(x, y int) int { return g.index(x, y) }

// CellAt converts a row-major index back into a coordinate.
func (g Grid) CellAt(i int) Cell {
	return Cell{X: i % g.size, Y: i / g.size}
}

// Carve opens the wall between (x, y) and its neighbour in direction d,
// setting d on the cell and d.Opposite() on the neighbour.
//
// The caller is trusted to pass an in-bounds neighbour; an out-of-bounds one
// is a programming error and panics. Carving an already open passage changes
// nothing and returns false.
func (g Grid) Carve(x, y int, d Direction) bool {
	dx, dy := d.Delta()
	nx, ny := x+dx, y+dy
	if !g.InBounds(x, y) || !g.InBounds(nx, ny) {
		panic(fmt.Sprintf("maze: carve %s from (%d,%d) leaves %dx%d grid", d, x, y, g.size, g.size))
	}
	i, j := g.index(x, y), g.index(nx, ny)
	if g.cells[i]&d != 0 {
		return false
	}
	g.cells[i] |= d
	g.cells[j] |= d.Opposite()
	return true
}

// Rows returns a copy of the grid as a slice of rows.
func (g Grid) Rows() [][]Direction {
	rows := make([][]Direction, g.size)
	for y := range rows {
		rows[y] = append([]Direction(nil), g.cells[y*g.size:(y+1)*g.size]...)
	}
	return rows
}

// Clone returns an independent copy of g.
func (g Grid) Clone() Grid {
	return Grid{size: g.size, cells: append([]Direction(nil), g.cells...)}
}

// Equal reports whether g and o have the same size and passages.
func (g Grid) Equal(o Grid) bool {
	if g.size != o.size {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

func (g Grid) index(x, y int) int { return y*g.size + x }
