package pipeline

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/askoeller/menuboard/pkg/board"
	"github.com/askoeller/menuboard/pkg/cache"
	"github.com/askoeller/menuboard/pkg/catalog"
	"github.com/askoeller/menuboard/pkg/errors"
	"github.com/askoeller/menuboard/pkg/layout"
	"github.com/askoeller/menuboard/pkg/observability"
	"github.com/askoeller/menuboard/pkg/render"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use this to avoid duplicating caching logic.
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
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
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

// Execute runs the complete load → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options")
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	t, cat, err := r.Load(opts)
	if err != nil {
		return nil, err
	}
	result.Template = t
	result.Catalog = cat
	result.Stats.LoadTime = time.Since(loadStart)

	slide, err := ResolveSlide(t, opts.SlideID)
	if err != nil {
		return nil, err
	}
	result.Slide = slide

	r.Logger.Info("loaded board",
		"template", t.Name,
		"slide", slide.ID,
		"groups", cat.GroupCount(),
		"products", cat.ProductCount(),
		"duration", result.Stats.LoadTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	content, lay, layoutHit, err := r.ComputeLayoutWithCacheInfo(ctx, t, cat, slide, opts)
	if err != nil {
		return nil, err
	}
	result.Content = content
	result.Layout = lay
	result.ContentHash = ContentHash(content)
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.GroupCount = content.GroupCount()
	result.Stats.ProductCount = content.ProductCount()
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"slide", slide.ID,
		"columns", lay.Columns,
		"font_size", lay.FontSizePx,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, t, slide, content, lay, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered artifacts",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads the template and catalog and cross-validates them. Pre-loaded
// documents in opts are used as-is, paths are read from disk.
func (r *Runner) Load(opts Options) (*board.Template, *catalog.Catalog, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, nil, err
	}

	t := opts.Template
	if t == nil {
		var err error
		t, err = board.DecodeFile(opts.TemplatePath)
		if err != nil {
			return nil, nil, err
		}
	}

	cat := opts.Catalog
	if cat == nil {
		var err error
		cat, err = catalog.ReadFile(opts.CatalogPath)
		if err != nil {
			return nil, nil, err
		}
	}

	if findings := board.ValidateWithCatalog(t, cat); len(findings) > 0 {
		return nil, nil, FindingsError(findings)
	}

	return t, cat, nil
}

// ComputeLayoutWithCacheInfo computes the slide layout with caching and
// returns cache hit info. The selected content is returned alongside the
// layout so renderers never resolve the slide twice.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, t *board.Template, cat *catalog.Catalog, slide board.Slide, opts Options) (layout.Content, layout.Result, bool, error) {
	r.applyLogger(&opts)
	hooks := observability.Cache()

	content := layout.Select(cat, slide)
	cacheKey := r.Keyer.LayoutKey(ContentHash(content), opts.LayoutKeyOpts(t))

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached layout.Result
			if err := json.Unmarshal(data, &cached); err == nil {
				hooks.OnCacheHit(ctx, "layout")
				return content, cached, true, nil
			}
			// If deserialization fails, fall through to recompute
		}
	}
	hooks.OnCacheMiss(ctx, "layout")

	_, result := layout.Compute(ctx, cat, slide, opts.EngineOptions(t))

	// Cache the result
	if data, err := json.Marshal(result); err == nil {
		if r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout) == nil {
			hooks.OnCacheSet(ctx, "layout", len(data))
		}
	}

	return content, result, false, nil
}

// ComputeLayout is a convenience wrapper that calls ComputeLayoutWithCacheInfo
// and discards the cache hit info.
func (r *Runner) ComputeLayout(ctx context.Context, t *board.Template, cat *catalog.Catalog, slide board.Slide, opts Options) (layout.Content, layout.Result, error) {
	content, lay, _, err := r.ComputeLayoutWithCacheInfo(ctx, t, cat, slide, opts)
	return content, lay, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, t *board.Template, slide board.Slide, content layout.Content, lay layout.Result, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)
	hooks := observability.Cache()

	// Artifacts are keyed by the layout they render, not the raw content.
	layoutHash := renderCacheHash(content, lay)

	// Try to get all formats from cache
	artifacts := make(map[string][]byte)
	if !opts.Refresh {
		allCached := true
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format, t))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			hooks.OnCacheHit(ctx, "artifact")
			return artifacts, true, nil
		}
	}
	hooks.OnCacheMiss(ctx, "artifact")

	// Render all formats
	rendered := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := r.renderFormat(format, t, slide, content, lay, opts)
		if err != nil {
			return nil, false, err
		}
		rendered[format] = data
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format, t))
		if r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact) == nil {
			hooks.OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return rendered, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Render(ctx context.Context, t *board.Template, slide board.Slide, content layout.Content, lay layout.Result, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, t, slide, content, lay, opts)
	return artifacts, err
}

// renderFormat produces a single artifact.
func (r *Runner) renderFormat(format string, t *board.Template, slide board.Slide, content layout.Content, lay layout.Result, opts Options) ([]byte, error) {
	title := slide.Name
	if title == "" {
		title = t.Name
	}
	renderOpts := []render.Option{
		render.WithStyle(opts.Style),
		render.WithTitle(title),
		render.WithCurrency(t.Display.Currency),
		render.WithScreenSize(opts.ResolveScreenWidth(t), t.ScreenHeight()),
	}

	switch format {
	case FormatJSON:
		return render.RenderJSON(content, lay, renderOpts...)
	case FormatSVG:
		return render.RenderSVG(content, lay, renderOpts...), nil
	case FormatText:
		return render.RenderText(content, lay, renderOpts...), nil
	default:
		return nil, ValidateFormat(format)
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// =============================================================================
// Helpers
// =============================================================================

// ContentHash returns the stable hash of resolved slide content, the basis
// of the layout cache key.
func ContentHash(c layout.Content) string {
	data, _ := json.Marshal(c)
	return cache.Hash(data)
}

// renderCacheHash hashes content and layout together for artifact keys.
func renderCacheHash(c layout.Content, lay layout.Result) string {
	cdata, _ := json.Marshal(c)
	ldata, _ := json.Marshal(lay)
	return cache.Hash(append(cdata, ldata...))
}

// ResolveSlide picks the slide to lay out: the requested one, or the first
// slide of the rotation when none is named.
func ResolveSlide(t *board.Template, slideID string) (board.Slide, error) {
	if slideID == "" {
		if len(t.Slides) == 0 {
			return board.Slide{}, errors.New(errors.ErrCodeSlideNotFound, "template has no slides")
		}
		return t.Slides[0], nil
	}
	s, ok := t.Slide(slideID)
	if !ok {
		return board.Slide{}, errors.New(errors.ErrCodeSlideNotFound, "slide %q not found in template", slideID)
	}
	return *s, nil
}

// FindingsError folds validation findings into a single INVALID_TEMPLATE
// error listing every finding.
func FindingsError(findings []board.FieldError) error {
	msgs := make([]string, len(findings))
	for i, f := range findings {
		msgs[i] = f.String()
	}
	return errors.New(errors.ErrCodeInvalidTemplate,
		"template validation failed: %s", strings.Join(msgs, "; "))
}
