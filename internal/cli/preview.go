package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/askoeller/menuboard/pkg/pipeline"
)

// previewCommand creates the preview command for browsing slides in the terminal.
func (c *CLI) previewCommand() *cobra.Command {
	var noCache bool
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "preview [board file]",
		Short: "Browse board slides interactively in the terminal",
		Long: `Browse board slides interactively in the terminal.

The preview command renders each slide as a styled text grid and lets you
page through slides, cycle screen widths, and force a recompute of cached
layouts without leaving the terminal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.TemplatePath = args[0]
			return c.runPreview(cmd.Context(), opts, noCache)
		},
	}

	cmd.Flags().StringVar(&opts.CatalogPath, "catalog", "", "product catalog file (required)")
	cmd.Flags().Float64Var(&opts.ScreenWidth, "width", 0, "initial screen width in pixels (overrides template)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runPreview loads the board and hands control to the TUI.
func (c *CLI) runPreview(ctx context.Context, opts pipeline.Options, noCache bool) error {
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
	if len(t.Slides) == 0 {
		return fmt.Errorf("%s has no slides", opts.TemplatePath)
	}

	m := newPreviewModel(ctx, runner, t, cat, opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}
