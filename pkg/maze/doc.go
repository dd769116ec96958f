// Package maze provides the grid model shared by every maze generator.
//
// # Grid
//
// A [Grid] is a square array of cells. Each cell is a [Direction] bitmask
// recording which of its four sides are open:
//
//	North = 1, South = 2, East = 4, West = 8
//
// Passages are always carved in pairs by [Grid.Carve]: opening East at (x, y)
// also opens West at (x+1, y). [Verify] checks this together with
// connectivity and acyclicity after a run.
//
// # Algorithms
//
// Generators implement [Algorithm]. They do one bounded unit of work per call
// so a driver (a terminal animation, a test, a batch pipeline) can inspect the
// partial maze between steps:
//
//	alg := recdesc.New(maze.Config{Rand: rng})
//	alg.Init(16)
//	for !alg.Step(0) {
//	    draw(alg.Grid(), alg.Current())
//	}
//
// [Pacer] converts a monotonic clock into a number of units so that Step can
// be called once per animation frame regardless of the frame rate.
package maze
