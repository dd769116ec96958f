package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mazetower/pkg/algorithms"
	"github.com/matzehuels/mazetower/pkg/pipeline"
)

// generateCommand creates the generate command for one-shot maze generation.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate a maze and write it to files",
		Long: `Generate a maze and write it to files.

The chosen algorithm runs to completion, the result is checked to be a
perfect maze (every cell reachable, no loops) and then rendered in each
requested format. With a single txt format and no --output the maze is
printed to stdout.

Mazes are deterministic for a given algorithm, size and seed, and finished
grids are cached locally so repeated runs skip generation.`,
		Example: `  mazetower generate -a eller -n 24 -f txt
  mazetower generate -n 40 --seed 7 -f svg,png --shade -o out/maze
  mazetower generate -t nodelink -f svg,dot`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyConfig(cmd, &opts, &formatsStr)
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), opts, output, noCache)
		},
	}

	addMazeFlags(cmd, &opts.Algorithm, &opts.Size, &opts.Seed)

	// Output flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): txt, svg (default), png, pdf, json, dot (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "regenerate even when the maze is cached")

	// Render flags
	cmd.Flags().StringVarP(&opts.View, "view", "t", pipeline.DefaultView, "visualization: walls (default), nodelink")
	cmd.Flags().IntVar(&opts.CellSize, "cell-size", pipeline.DefaultCellSize, "cell size in pixels (walls)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.Shade, "shade", false, "shade cells by distance from the top-left corner (walls)")
	cmd.Flags().BoolVar(&opts.Openings, "openings", false, "open an entrance top-left and an exit bottom-right (walls)")
	cmd.Flags().BoolVar(&opts.Labels, "labels", false, "label nodes with their coordinates (nodelink)")
	_ = cmd.RegisterFlagCompletionFunc("view", cobra.FixedCompletions(
		[]string{pipeline.ViewWalls, pipeline.ViewNodelink}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// addMazeFlags registers the flags that select an engine run.
func addMazeFlags(cmd *cobra.Command, algorithm *string, size *int, seed *uint64) {
	cmd.Flags().StringVarP(algorithm, "algorithm", "a", pipeline.DefaultAlgorithm, "maze algorithm (see 'mazetower list')")
	cmd.Flags().IntVarP(size, "size", "n", pipeline.DefaultSize, "grid side length in cells")
	cmd.Flags().Uint64Var(seed, "seed", pipeline.DefaultSeed, "random seed")
	_ = cmd.RegisterFlagCompletionFunc("algorithm", cobra.FixedCompletions(
		algorithms.Names(), cobra.ShellCompDirectiveNoFileComp))
}

// runGenerate runs the pipeline and writes its artifacts.
func (c *CLI) runGenerate(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	stdout := output == "" && slices.Equal(opts.Formats, []string{pipeline.FormatTXT})
	if err := opts.ValidateForGenerate(); err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	var spinner *Spinner
	if !stdout && opts.Size >= spinnerMinSize {
		spinner = newSpinnerWithContext(ctx, fmt.Sprintf("Carving %dx%d maze...", opts.Size, opts.Size))
		spinner.Start()
	}

	result, cacheHit, err := runner.GenerateWithCacheInfo(ctx, opts)
	if err != nil {
		spinner.StopWithError("Generation failed")
		return fmt.Errorf("generate: %w", err)
	}
	artifacts, err := runner.Render(ctx, result, opts)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	if stdout {
		return writeArtifacts(ctx, artifactWriteParams{
			artifacts: artifacts,
			formats:   opts.Formats,
			stdout:    true,
		})
	}

	printSuccess("Generated %s maze with %s", StyleNumber.Render(fmt.Sprintf("%dx%d", opts.Size, opts.Size)), StyleHighlight.Render(opts.Algorithm))
	printStats(result.Stats.Passages, result.Stats.Steps, cacheHit)

	base := basePath(output, fmt.Sprintf("maze-%s-%d", opts.Algorithm, opts.Size))
	if err := writeArtifacts(ctx, artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		base:      base,
		output:    output,
	}); err != nil {
		return err
	}

	if _, ok := artifacts[pipeline.FormatJSON]; ok {
		printNextStep("Re-render later", fmt.Sprintf("%s render %s.json -f png", appName, base))
	} else {
		printNextStep("Watch it being carved", fmt.Sprintf("%s animate -a %s -n %d --seed %d", appName, opts.Algorithm, opts.Size, opts.Seed))
	}
	return nil
}
