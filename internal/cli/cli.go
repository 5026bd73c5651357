// Package cli implements the menuboard command-line interface.
//
// This package provides commands for computing slide layouts, validating
// board templates against product catalogs, rendering preview artifacts,
// and serving boards to display runtimes. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - layout: Compute column count and font size for a slide
//   - validate: Check a board template, optionally against a catalog
//   - render: Produce SVG, JSON, or text artifacts for a slide
//   - preview: Browse slides interactively in the terminal
//   - serve: Serve layouts over HTTP and push updates over websockets
//   - init: Scaffold a starter board template and catalog
//   - cache: Manage the layout cache
//   - schema: Print the template JSON Schema
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Interactive
// progress goes to stderr, command output to stdout.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/askoeller/menuboard/pkg/buildinfo"
	"github.com/askoeller/menuboard/pkg/cache"
	"github.com/askoeller/menuboard/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "menuboard"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "menuboard",
		Short:        "Menuboard fits menu content onto digital signage screens",
		Long:         `Menuboard computes how many columns a menu needs and which font size makes it fill a fixed TV screen, so boards never scroll and never waste space. It validates, renders, and serves board templates backed by a product catalog.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.initCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.schemaCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory. MENUBOARD_CACHE_DIR wins, then the
// XDG standard (~/.cache/menuboard/).
func cacheDir() (string, error) {
	if dir := os.Getenv("MENUBOARD_CACHE_DIR"); dir != "" {
		return dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}
