package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/askoeller/menuboard/pkg/pipeline"
)

// renderCommand creates the render command for producing board artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [board file]",
		Short: "Render a slide to SVG, JSON, or text",
		Long: `Render a slide to SVG, JSON, or text.

The render command computes the slide layout and produces one artifact per
requested format: an SVG preview of the screen, the JSON grid description
consumed by display runtimes, or a styled text rendition for the terminal.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.TemplatePath = args[0]
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if opts.Style != "" {
				if err := pipeline.ValidateStyle(opts.Style); err != nil {
					return err
				}
			}
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	// Render flags
	cmd.Flags().StringVar(&opts.CatalogPath, "catalog", "", "product catalog file (required)")
	cmd.Flags().StringVar(&opts.SlideID, "slide", "", "slide to render (default: first slide)")
	cmd.Flags().Float64Var(&opts.ScreenWidth, "width", 0, "screen width in pixels (overrides template)")
	cmd.Flags().StringVar(&opts.Style, "style", "", "visual style: dark (default), light")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, text (comma-separated)")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even when cached")

	return cmd
}

// runRender loads the board, computes the layout, and writes one artifact
// per format.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	t, cat, err := runner.Load(opts)
	if err != nil {
		return fmt.Errorf("load board: %w", err)
	}
	slide, err := pipeline.ResolveSlide(t, opts.SlideID)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	content, lay, layoutHit, err := runner.ComputeLayoutWithCacheInfo(ctx, t, cat, slide, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}

	spinner.SetMessage("Rendering artifacts...")
	artifacts, renderHit, err := runner.RenderWithCacheInfo(ctx, t, slide, content, lay, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	written, err := writeArtifacts(artifacts, opts.Formats, input, output)
	if err != nil {
		return err
	}
	if output == "-" {
		// Artifact went to stdout, keep it clean.
		return nil
	}

	printSuccess("Render complete: %d columns at %dpx", lay.Columns, lay.FontSizePx)
	for _, path := range written {
		printFile(path)
	}
	printStats(content.GroupCount(), content.ProductCount(), layoutHit && renderHit)
	printNewline()
	printNextStep("Serve", "menuboard serve "+input+" --catalog "+opts.CatalogPath)

	return nil
}

// =============================================================================
// Artifact Output
// =============================================================================

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .json, .txt), it strips that
// extension. This is used when generating multiple files
// (e.g., board.svg, board.json, board.txt).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if artifactExtensions[ext] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// artifactExtensions maps file extensions back to artifact formats.
var artifactExtensions = map[string]bool{".svg": true, ".json": true, ".txt": true}

// artifactExt returns the file extension for a format. Text artifacts use
// .txt so terminals and editors treat them as plain text.
func artifactExt(format string) string {
	if format == pipeline.FormatText {
		return ".txt"
	}
	return "." + format
}

// writeArtifacts writes each artifact next to the input file (or under the
// given output path) and returns the written paths in format order.
func writeArtifacts(artifacts map[string][]byte, formats []string, input, output string) ([]string, error) {
	// Single format with explicit output: write exactly there.
	if len(formats) == 1 && output != "" {
		if err := writeArtifact(output, artifacts[formats[0]]); err != nil {
			return nil, err
		}
		return []string{output}, nil
	}

	base := basePath(output, input)
	written := make([]string, 0, len(formats))
	for _, format := range formats {
		path := base + artifactExt(format)
		if err := writeArtifact(path, artifacts[format]); err != nil {
			return nil, err
		}
		written = append(written, path)
	}
	return written, nil
}

// writeArtifact writes a single artifact to path.
func writeArtifact(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return fmt.Errorf("open output %s: %w", path, err)
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}
	return nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty or "-", it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
