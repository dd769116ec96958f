package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mazetower/pkg/errors"
	"github.com/matzehuels/mazetower/pkg/pipeline"
)

// renderCommand creates the render command for re-rendering saved mazes.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [maze.json]",
		Short: "Render a saved maze to other formats",
		Long: `Render a saved maze to other formats.

The render command takes a maze.json file (produced by 'generate -f json')
and renders it again, for example as PNG or as a passage graph. The grid is
checked for consistency but not regenerated.`,
		Example: `  mazetower render maze-eller-24.json -f png --scale 3
  mazetower render maze.json -t nodelink -f svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyConfig(cmd, &opts, &formatsStr)
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): txt, svg (default), png, pdf, json, dot (comma-separated)")
	cmd.Flags().StringVarP(&opts.View, "view", "t", pipeline.DefaultView, "visualization: walls (default), nodelink")
	cmd.Flags().IntVar(&opts.CellSize, "cell-size", pipeline.DefaultCellSize, "cell size in pixels (walls)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.Shade, "shade", false, "shade cells by distance from the top-left corner (walls)")
	cmd.Flags().BoolVar(&opts.Openings, "openings", false, "open an entrance top-left and an exit bottom-right (walls)")
	cmd.Flags().BoolVar(&opts.Labels, "labels", false, "label nodes with their coordinates (nodelink)")

	return cmd
}

// runRender loads the maze and renders it.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string) error {
	data, err := os.ReadFile(input)
	if os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "maze file %s", input)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}
	result, err := pipeline.ResultFromJSON(data)
	if err != nil {
		return fmt.Errorf("load maze %s: %w", input, err)
	}
	c.Logger.Debug("loaded maze", "path", input, "size", result.Grid.Size(), "algorithm", result.Algorithm)

	runner, err := c.newRunner(true)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	artifacts, err := runner.Render(ctx, result, opts)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	base := basePath(output, input)
	if output == "" {
		// The default json path is the input itself.
		delete(artifacts, pipeline.FormatJSON)
		opts.Formats = withoutFormat(opts.Formats, pipeline.FormatJSON)
	}
	return writeArtifacts(ctx, artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		base:      base,
		output:    output,
	})
}

func withoutFormat(formats []string, drop string) []string {
	out := formats[:0:0]
	for _, f := range formats {
		if f != drop {
			out = append(out, f)
		}
	}
	return out
}
