package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/askoeller/menuboard/pkg/pipeline"
)

// layoutCommand creates the layout command for computing slide layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [board file]",
		Short: "Compute column count and font size for a slide",
		Long: `Compute column count and font size for a slide.

The layout command loads a board template and its product catalog, selects a
slide, and computes how many columns the menu needs and which font size makes
the content fill the screen. The output is a layout.json file describing the
grid (same format as 'render -f json').

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.TemplatePath = args[0]
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	// Layout flags
	cmd.Flags().StringVar(&opts.CatalogPath, "catalog", "", "product catalog file (required)")
	cmd.Flags().StringVar(&opts.SlideID, "slide", "", "slide to lay out (default: first slide)")
	cmd.Flags().Float64Var(&opts.ScreenWidth, "width", 0, "screen width in pixels (overrides template)")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even when cached")

	return cmd
}

// runLayout computes the slide layout and writes the JSON grid description.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	opts.Formats = []string{pipeline.FormatJSON}

	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	if err := os.WriteFile(outputPath, result.Artifacts[pipeline.FormatJSON], 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete: %d columns at %dpx", result.Layout.Columns, result.Layout.FontSizePx)
	printFile(outputPath)
	printStats(result.Stats.GroupCount, result.Stats.ProductCount, result.CacheInfo.LayoutHit)
	printNewline()
	printNextStep("Render", "menuboard render "+input+" --catalog "+opts.CatalogPath)

	return nil
}
