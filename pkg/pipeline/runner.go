package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/mazetower/pkg/buildinfo"
	"github.com/matzehuels/mazetower/pkg/cache"
	"github.com/matzehuels/mazetower/pkg/maze"
	"github.com/matzehuels/mazetower/pkg/observability"
	"github.com/matzehuels/mazetower/pkg/render/sink"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer for the current build is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer(buildinfo.Version)
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete generate → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result, err := r.Generate(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	renderStart := time.Now()
	artifacts, err := r.Render(ctx, result, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	return result, nil
}

// GenerateWithCacheInfo runs the engine to completion, or loads the grid a
// previous identical run stored, and reports whether the cache was hit.
func (r *Runner) GenerateWithCacheInfo(ctx context.Context, opts Options) (*Result, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForGenerate(); err != nil {
		return nil, false, err
	}

	result := &Result{
		RunID:     uuid.NewString(),
		Algorithm: opts.Algorithm,
		Seed:      opts.Seed,
		Artifacts: make(map[string][]byte),
	}
	cacheKey := r.Keyer.GridKey(cache.GridKeyOpts{
		Algorithm: opts.Algorithm,
		Size:      opts.Size,
		Seed:      opts.Seed,
	})

	hooks := observability.Generator()
	hooks.OnGenerateStart(ctx, opts.Algorithm, opts.Size)
	start := time.Now()

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if _, g, err := sink.ReadJSON(data); err == nil && g.Size() == opts.Size {
				r.finishGenerate(result, g, 0, time.Since(start))
				hooks.OnGenerateComplete(ctx, opts.Algorithm, opts.Size, 0, result.Stats.GenerateTime, nil)
				r.Logger.Info("loaded cached maze",
					"algorithm", opts.Algorithm,
					"size", opts.Size,
					"seed", opts.Seed,
					"run", result.RunID)
				return result, true, nil
			}
		}
	}

	g, steps, err := Generate(ctx, opts)
	hooks.OnGenerateComplete(ctx, opts.Algorithm, opts.Size, steps, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}
	r.finishGenerate(result, g, steps, time.Since(start))

	if data, err := sink.RenderJSON(g, sink.WithJSONAlgorithm(opts.Algorithm), sink.WithJSONSeed(opts.Seed)); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLGrid); err != nil {
			r.Logger.Warn("cache write failed", "error", err)
		}
	}

	r.Logger.Info("generated maze",
		"algorithm", opts.Algorithm,
		"size", opts.Size,
		"seed", opts.Seed,
		"steps", steps,
		"run", result.RunID,
		"duration", result.Stats.GenerateTime)

	return result, false, nil
}

// Generate is a convenience wrapper that calls GenerateWithCacheInfo and discards the cache hit info.
func (r *Runner) Generate(ctx context.Context, opts Options) (*Result, error) {
	result, _, err := r.GenerateWithCacheInfo(ctx, opts)
	return result, err
}

// Render generates artifacts for a finished result.
func (r *Runner) Render(ctx context.Context, result *Result, opts Options) (map[string][]byte, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hooks := observability.Render()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, err := Render(result, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"view", opts.View,
		"duration", time.Since(start))

	return artifacts, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) finishGenerate(result *Result, g maze.Grid, steps int, d time.Duration) {
	result.Grid = g
	result.GridHash = GridHash(g)
	result.Stats.Steps = steps
	result.Stats.Passages = maze.PassageCount(g)
	result.Stats.GenerateTime = d
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
