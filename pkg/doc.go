// Package pkg provides the core libraries for mazetower.
//
// # Overview
//
// Mazetower carves perfect mazes (every cell reachable, exactly one path
// between any two cells) with classic algorithms that advance in small,
// bounded steps. The pkg directory is organized into four main areas:
//
//  1. [maze] - Grid, directions, markers, pacing and verification
//  2. [algorithms] - The steppable engines and their registry
//  3. [render] - Text, SVG, JSON, PNG/PDF and Graphviz output
//  4. [pipeline] - Orchestration (generate → render) with caching
//
// Supporting packages: [config] (TOML settings), [cache] (finished grids),
// [errors] (coded errors), [observability] (hooks) and [buildinfo].
//
// # Architecture
//
// The typical data flow through mazetower:
//
//	algorithms.New(name, opts...)
//	         ↓
//	    Init(size), then Step(now) until done
//	         ↓
//	    maze.Grid (+ maze.Marker between steps)
//	         ↓
//	    render/sink, render/nodelink
//	         ↓
//	    TXT/SVG/PNG/PDF/JSON/DOT output
//
// # Quick Start
//
// Carve a maze and print it:
//
//	import (
//	    "fmt"
//
//	    "github.com/matzehuels/mazetower/pkg/algorithms"
//	    "github.com/matzehuels/mazetower/pkg/render/sink"
//	)
//
//	alg, _ := algorithms.New("eller", algorithms.WithSeed(7))
//	alg.Init(12)
//	for !alg.Step(0) {
//	}
//	fmt.Print(sink.RenderText(alg.Grid()))
//
// Or run the whole pipeline:
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Algorithm: "kruskal",
//	    Size:      32,
//	    Formats:   []string{"svg", "json"},
//	})
//
// [maze]: https://pkg.go.dev/github.com/matzehuels/mazetower/pkg/maze
// [algorithms]: https://pkg.go.dev/github.com/matzehuels/mazetower/pkg/algorithms
// [render]: https://pkg.go.dev/github.com/matzehuels/mazetower/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/mazetower/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/mazetower/pkg/config
// [cache]: https://pkg.go.dev/github.com/matzehuels/mazetower/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/mazetower/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/mazetower/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/mazetower/pkg/buildinfo
package pkg
