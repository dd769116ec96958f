package maze_test

import (
	"fmt"

	"github.com/matzehuels/mazetower/pkg/maze"
)

func ExampleGrid_Carve() {
	g := maze.NewGrid(2)
	g.Carve(0, 0, maze.East)
	g.Carve(0, 0, maze.South)
	g.Carve(1, 0, maze.South)

	for _, row := range g.Rows() {
		fmt.Println(row)
	}
	fmt.Println(maze.Verify(g))
	// Output:
	// [SE SW]
	// [N N]
	// <nil>
}
