package pipeline

import (
	"context"

	"github.com/matzehuels/mazetower/pkg/algorithms"
	"github.com/matzehuels/mazetower/pkg/errors"
	"github.com/matzehuels/mazetower/pkg/maze"
)

// ctxCheckInterval is how many steps run between context checks.
const ctxCheckInterval = 1024

// Generate builds the engine named by opts.Algorithm, runs it to completion
// and verifies the result is a perfect maze. It returns the grid and the
// number of work units performed.
//
// Options must already be validated; use [Runner.Generate] for validation,
// caching and hooks.
func Generate(ctx context.Context, opts Options) (maze.Grid, int, error) {
	alg, err := algorithms.New(opts.Algorithm, algorithms.WithSeed(opts.Seed))
	if err != nil {
		return maze.Grid{}, 0, err
	}
	alg.Init(opts.Size)

	steps := 0
	for !alg.Step(0) {
		steps++
		if steps%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				alg.Stop()
				return maze.Grid{}, steps, err
			}
			opts.Logger.Debug("generating", "algorithm", opts.Algorithm, "steps", steps)
		}
	}

	g := alg.Grid()
	if err := maze.Verify(g); err != nil {
		return maze.Grid{}, steps, errors.Wrap(errors.ErrCodeInternal, err,
			"%s produced an imperfect maze (size %d, seed %d)", opts.Algorithm, opts.Size, opts.Seed)
	}
	return g, steps, nil
}
