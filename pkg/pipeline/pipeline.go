// Package pipeline provides the generate → render pipeline for mazetower.
//
// This package runs a registered maze engine to completion and turns the
// finished grid into output artifacts. The CLI uses it for one-shot
// generation and for re-rendering saved mazes, so both paths validate and
// default their options the same way.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Generate: Build an engine from the registry and step it until done
//  2. Render: Produce output in various formats (TXT, SVG, PNG, PDF, JSON, DOT)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Algorithm: "eller",
//	    Size:      24,
//	    Formats:   []string{"svg", "json"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Generate only
//	result, err := runner.Generate(ctx, opts)
//
//	// Render an existing result
//	artifacts, err := runner.Render(ctx, result, opts)
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mazetower/pkg/algorithms"
	"github.com/matzehuels/mazetower/pkg/errors"
	"github.com/matzehuels/mazetower/pkg/maze"
	"github.com/matzehuels/mazetower/pkg/render/sink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Config
// =============================================================================

const (
	// DefaultAlgorithm is the engine used when none is requested.
	DefaultAlgorithm = algorithms.Default

	// DefaultSize is the default grid side length in cells.
	DefaultSize = 16

	// DefaultMaxSize caps the grid side length. A 256×256 grid already
	// renders to a multi-megabyte SVG.
	DefaultMaxSize = 256

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)

	// DefaultCellSize is the default SVG cell size in pixels.
	DefaultCellSize = sink.DefaultCellSize

	// DefaultScale is the default PNG scale factor.
	DefaultScale = 2.0

	// DefaultView is the default visualization type.
	DefaultView = ViewWalls
)

// View constants for visualization types.
const (
	ViewWalls    = "walls"
	ViewNodelink = "nodelink"
)

// Format constants for output formats.
const (
	FormatTXT  = "txt"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatTXT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// ValidViews is the set of supported visualization types.
var ValidViews = map[string]bool{
	ViewWalls:    true,
	ViewNodelink: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the maze pipeline.
type Options struct {
	// Generate options
	Algorithm string `json:"algorithm"`
	Size      int    `json:"size"`
	Seed      uint64 `json:"seed,omitempty"`
	MaxSize   int    `json:"max_size,omitempty"`
	Refresh   bool   `json:"refresh,omitempty"` // Skip the grid cache on read

	// Render options
	View     string   `json:"view,omitempty"`
	Formats  []string `json:"formats,omitempty"`
	CellSize int      `json:"cell_size,omitempty"`
	Scale    float64  `json:"scale,omitempty"`
	Shade    bool     `json:"shade,omitempty"`    // Fill cells by distance from the entrance
	Openings bool     `json:"openings,omitempty"` // Open the entrance and exit walls
	Labels   bool     `json:"labels,omitempty"`   // Label nodes in the nodelink view

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies this run in logs and JSON output.
	RunID string

	// Algorithm is the registry key of the engine that carved Grid.
	Algorithm string

	// Seed is the seed the engine was built with.
	Seed uint64

	// Grid is the finished maze.
	Grid maze.Grid

	// GridHash is the content hash of the grid.
	GridHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Steps        int
	Passages     int
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: txt, svg, png, pdf, json, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateView checks that a visualization type is valid.
func ValidateView(view string) error {
	if !ValidViews[view] {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid view: %q (must be one of: walls, nodelink)", view)
	}
	return nil
}

// ValidateAlgorithm checks that name is a registered engine.
func ValidateAlgorithm(name string) error {
	if err := errors.ValidateAlgorithmName(name); err != nil {
		return err
	}
	if _, ok := algorithms.Lookup(name); !ok {
		return errors.New(errors.ErrCodeInvalidAlgorithm,
			"unknown algorithm %q (must be one of: %s)", name, strings.Join(algorithms.Names(), ", "))
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetGenerateDefaults sets default values for generation.
// A zero seed is kept as-is: it is a valid seed.
func (o *Options) SetGenerateDefaults() {
	if o.Algorithm == "" {
		o.Algorithm = DefaultAlgorithm
	}
	if o.Size == 0 {
		o.Size = DefaultSize
	}
	if o.MaxSize == 0 {
		o.MaxSize = DefaultMaxSize
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForGenerate validates and sets defaults for generation.
func (o *Options) ValidateForGenerate() error {
	o.SetGenerateDefaults()
	if err := ValidateAlgorithm(o.Algorithm); err != nil {
		return err
	}
	return errors.ValidateSize(o.Size, o.MaxSize)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.View == "" {
		o.View = DefaultView
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.CellSize == 0 {
		o.CellSize = DefaultCellSize
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateView(o.View); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.CellSize < 2 {
		return errors.New(errors.ErrCodeInvalidInput, "cell size must be at least 2, got %d", o.CellSize)
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %g", o.Scale)
	}
	return nil
}

// IsNodelink returns true if this is a nodelink visualization.
func (o *Options) IsNodelink() bool {
	return o.View == ViewNodelink
}

// NeedsConverter reports whether any requested format needs rsvg-convert.
func (o *Options) NeedsConverter() bool {
	for _, f := range o.Formats {
		if f == FormatPNG || f == FormatPDF {
			return true
		}
	}
	return false
}
