package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/askoeller/menuboard/pkg/cache"
	"github.com/askoeller/menuboard/pkg/pipeline"
	"github.com/askoeller/menuboard/pkg/server"
)

// serveCommand creates the serve command for running the board HTTP service.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		catalogPath string
		addr        string
		redisAddr   string
		noWatch     bool
		noCache     bool
	)

	cmd := &cobra.Command{
		Use:   "serve [board file]",
		Short: "Serve board layouts over HTTP and websockets",
		Long: `Serve board layouts over HTTP and websockets.

The serve command loads a board template and catalog, exposes layout and
preview endpoints, and pushes recomputed layouts to connected displays over
websockets whenever the board files change on disk.

Empty flags fall back to MENUBOARD_ADDR and MENUBOARD_REDIS_ADDR; a .env
file in the working directory is honored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), args[0], catalogPath, addr, redisAddr, !noWatch, noCache)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "product catalog file (required)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: MENUBOARD_ADDR or :8080)")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for a shared layout cache (default: MENUBOARD_REDIS_ADDR)")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "do not watch board files for changes")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe builds the cache, runner, and server, then blocks until ctx ends.
func (c *CLI) runServe(ctx context.Context, templatePath, catalogPath, addr, redisAddr string, watch, noCache bool) error {
	_ = godotenv.Load()

	if addr == "" {
		addr = os.Getenv("MENUBOARD_ADDR")
	}
	if addr == "" {
		addr = server.DefaultAddr
	}
	if redisAddr == "" {
		redisAddr = os.Getenv("MENUBOARD_REDIS_ADDR")
	}

	store, err := c.serveCache(ctx, redisAddr, noCache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	runner := pipeline.NewRunner(store, nil, c.Logger)
	defer runner.Close()

	prog := newProgress(c.Logger)
	srv, err := server.New(server.Config{
		Addr:         addr,
		TemplatePath: templatePath,
		CatalogPath:  catalogPath,
		Watch:        watch,
		Logger:       c.Logger,
	}, runner)
	if err != nil {
		return fmt.Errorf("load board: %w", err)
	}
	prog.done("Board loaded")

	display := addr
	if strings.HasPrefix(addr, ":") {
		display = "http://localhost" + addr
	}
	printInfo("Serving board on %s", StyleLink.Render(display))
	printDetail("Press Ctrl+C to stop")

	return srv.Run(ctx)
}

// serveCache picks redis when configured, otherwise the shared file cache.
// An unreachable redis degrades to the file cache instead of failing the
// command.
func (c *CLI) serveCache(ctx context.Context, redisAddr string, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisAddr != "" {
		store, err := cache.NewRedisCache(ctx, redisAddr)
		if err == nil {
			return store, nil
		}
		printWarning("Redis unreachable at %s, falling back to the file cache", redisAddr)
		c.Logger.Debug("redis cache unavailable", "addr", redisAddr, "err", err)
	}
	return newCache(false)
}
