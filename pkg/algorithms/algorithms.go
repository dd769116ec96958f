// Package algorithms is the registry of steppable maze generators.
//
// Every engine lives in its own subpackage and satisfies [maze.Algorithm].
// This package maps stable names to constructors so drivers can select an
// algorithm from a flag or config value:
//
//	alg, err := algorithms.New("eller", algorithms.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	alg.Init(24)
//	for !alg.Step(0) {
//	}
//
// [Names] lists the registered keys in display order.
package algorithms

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/matzehuels/mazetower/pkg/algorithms/aldousbroder"
	"github.com/matzehuels/mazetower/pkg/algorithms/binarytree"
	"github.com/matzehuels/mazetower/pkg/algorithms/eller"
	"github.com/matzehuels/mazetower/pkg/algorithms/huntandkill"
	"github.com/matzehuels/mazetower/pkg/algorithms/kruskal"
	"github.com/matzehuels/mazetower/pkg/algorithms/prim"
	"github.com/matzehuels/mazetower/pkg/algorithms/recdesc"
	"github.com/matzehuels/mazetower/pkg/algorithms/sidewinder"
	"github.com/matzehuels/mazetower/pkg/errors"
	"github.com/matzehuels/mazetower/pkg/maze"
)

// Default is the algorithm used when none is requested.
const Default = recdesc.Name

// Info describes a registered algorithm.
type Info struct {
	Name  string // registry key, e.g. "recdesc"
	Title string // display name
	Link  string // reference write-up
	Unit  string // what one step does, for help output

	factory func(maze.Config) maze.Algorithm
}

var registry = []Info{
	{
		Name:  recdesc.Name,
		Title: "Recursive Descent",
		Link:  "http://weblog.jamisbuck.org/2010/12/27/maze-generation-recursive-backtracking",
		Unit:  "one direction tried (or one backtrack)",
		factory: func(c maze.Config) maze.Algorithm {
			return recdesc.New(c)
		},
	},
	{
		Name:  eller.Name,
		Title: "Eller's Algorithm",
		Link:  "http://weblog.jamisbuck.org/2010/12/29/maze-generation-eller-s-algorithm",
		Unit:  "one row",
		factory: func(c maze.Config) maze.Algorithm {
			return eller.New(c)
		},
	},
	{
		Name:  kruskal.Name,
		Title: "Kruskal's Algorithm",
		Link:  "http://weblog.jamisbuck.org/2011/1/3/maze-generation-kruskal-s-algorithm",
		Unit:  "one spanning-tree edge",
		factory: func(c maze.Config) maze.Algorithm {
			return kruskal.New(c)
		},
	},
	{
		Name:  prim.Name,
		Title: "Prim's Algorithm",
		Link:  "http://weblog.jamisbuck.org/2011/1/10/maze-generation-prim-s-algorithm",
		Unit:  "one frontier cell",
		factory: func(c maze.Config) maze.Algorithm {
			return prim.New(c)
		},
	},
	{
		Name:  sidewinder.Name,
		Title: "Sidewinder",
		Link:  "http://weblog.jamisbuck.org/2011/2/3/maze-generation-sidewinder-algorithm",
		Unit:  "one cell",
		factory: func(c maze.Config) maze.Algorithm {
			return sidewinder.New(c)
		},
	},
	{
		Name:  binarytree.Name,
		Title: "Binary Tree",
		Link:  "http://weblog.jamisbuck.org/2011/2/1/maze-generation-binary-tree-algorithm",
		Unit:  "one cell",
		factory: func(c maze.Config) maze.Algorithm {
			return binarytree.New(c)
		},
	},
	{
		Name:  aldousbroder.Name,
		Title: "Aldous-Broder",
		Link:  "http://weblog.jamisbuck.org/2011/1/17/maze-generation-aldous-broder-algorithm",
		Unit:  "one random-walk move",
		factory: func(c maze.Config) maze.Algorithm {
			return aldousbroder.New(c)
		},
	},
	{
		Name:  huntandkill.Name,
		Title: "Hunt-and-Kill",
		Link:  "http://weblog.jamisbuck.org/2011/1/24/maze-generation-hunt-and-kill-algorithm",
		Unit:  "one walk move or one hunted row",
		factory: func(c maze.Config) maze.Algorithm {
			return huntandkill.New(c)
		},
	},
}

// Option configures an engine built by New.
type Option func(*maze.Config)

// WithSeed seeds the engine's randomness for reproducible mazes.
func WithSeed(seed uint64) Option {
	return func(c *maze.Config) { c.Rand = maze.NewRand(seed) }
}

// WithRand uses rng as the engine's randomness source.
func WithRand(rng *rand.Rand) Option {
	return func(c *maze.Config) { c.Rand = rng }
}

// WithInterval paces Step to one unit per d of driver time.
func WithInterval(d time.Duration) Option {
	return func(c *maze.Config) { c.Interval = d }
}

// WithMaxBurst caps the catch-up units of a single paced Step.
func WithMaxBurst(n int) Option {
	return func(c *maze.Config) { c.MaxBurst = n }
}

// New builds the engine registered under name.
func New(name string, opts ...Option) (maze.Algorithm, error) {
	info, ok := Lookup(name)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidAlgorithm,
			"unknown algorithm %q (must be one of: %s)", name, strings.Join(Names(), ", "))
	}
	var cfg maze.Config
	for _, opt := range opts {
		opt(&cfg)
	}
	return info.factory(cfg), nil
}

// Lookup returns the registry entry for name.
func Lookup(name string) (Info, bool) {
	for _, info := range registry {
		if info.Name == name {
			return info, true
		}
	}
	return Info{}, false
}

// Names returns every registered key in display order.
func Names() []string {
	names := make([]string, len(registry))
	for i, info := range registry {
		names[i] = info.Name
	}
	return names
}

// All returns every registry entry in display order.
func All() []Info {
	return append([]Info(nil), registry...)
}
