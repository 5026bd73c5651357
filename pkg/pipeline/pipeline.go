// Package pipeline runs the complete load → layout → render flow behind the
// CLI and the HTTP server. Centralizing it keeps both entry points on the
// same caching, validation, and artifact behavior.
//
// # Architecture
//
// The pipeline has three stages:
//
//  1. Load: Read the template and catalog from disk and validate them
//  2. Layout: Select slide content and compute columns and font size
//  3. Render: Generate artifacts in the requested formats (JSON, SVG, text)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    TemplatePath: "board.toml",
//	    CatalogPath:  "catalog.json",
//	    Formats:      []string{"json", "svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/askoeller/menuboard/pkg/board"
	"github.com/askoeller/menuboard/pkg/cache"
	"github.com/askoeller/menuboard/pkg/catalog"
	"github.com/askoeller/menuboard/pkg/errors"
	"github.com/askoeller/menuboard/pkg/layout"
	"github.com/askoeller/menuboard/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatSVG  = "svg"
	FormatText = "text"
)

// DefaultFormat is the artifact produced when none is requested. JSON is
// what the display runtime consumes.
const DefaultFormat = FormatJSON

// DefaultStyle is the default visual style for rendered previews.
const DefaultStyle = render.StyleDark

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatSVG:  true,
	FormatText: true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	render.StyleDark:  true,
	render.StyleLight: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options. Paths are read from disk unless the documents are
	// already present in Template and Catalog.
	TemplatePath string `json:"template_path,omitempty"`
	CatalogPath  string `json:"catalog_path,omitempty"`

	// Layout options
	SlideID     string  `json:"slide_id,omitempty"`     // Slide to lay out, first slide when empty
	ScreenWidth float64 `json:"screen_width,omitempty"` // Overrides the template's screen width
	Refresh     bool    `json:"refresh,omitempty"`      // Bypass caches and recompute

	// Render options
	Formats []string `json:"formats,omitempty"`
	Style   string   `json:"style,omitempty"`

	// Runtime options (not serialized)
	Template *board.Template  `json:"-"` // Pre-loaded template, skips TemplatePath
	Catalog  *catalog.Catalog `json:"-"` // Pre-loaded catalog, skips CatalogPath
	Logger   *log.Logger      `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Template and Catalog are the loaded, validated input documents.
	Template *board.Template
	Catalog  *catalog.Catalog

	// Slide is the slide the layout was computed for.
	Slide board.Slide

	// Content is the resolved slide content in display order.
	Content layout.Content

	// Layout is the computed grid geometry.
	Layout layout.Result

	// ContentHash is the content hash the layout cache was keyed by.
	ContentHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	GroupCount   int
	ProductCount int
	LoadTime     time.Duration
	LayoutTime   time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: json, svg, text)", format)
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

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidStyle,
			"invalid style: %q (must be one of: dark, light)", style)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for the load stage.
func (o *Options) ValidateForLoad() error {
	if o.Template == nil && o.TemplatePath == "" {
		return errors.New(errors.ErrCodeInvalidInput, "template or template_path is required")
	}
	if o.Catalog == nil && o.CatalogPath == "" {
		return errors.New(errors.ErrCodeInvalidInput, "catalog or catalog_path is required")
	}

	// Logger default
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateStyle(o.Style)
}

// ResolveScreenWidth returns the effective screen width for a run: an
// explicit option wins over the template's display settings.
func (o *Options) ResolveScreenWidth(t *board.Template) float64 {
	if o.ScreenWidth > 0 {
		return o.ScreenWidth
	}
	return t.ScreenWidth()
}

// EngineOptions projects the template settings into engine options.
func (o *Options) EngineOptions(t *board.Template) layout.Options {
	return layout.Options{
		Fonts:       t.Fonts,
		Columns:     t.Columns,
		ScreenWidth: o.ResolveScreenWidth(t),
	}
}

// LayoutKeyOpts returns cache key options for layout computation. Every
// template setting the engine reads is part of the key.
func (o *Options) LayoutKeyOpts(t *board.Template) cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		AutoScale:        t.Fonts.AutoScale,
		ManualFontSize:   t.Fonts.ManualFontSize,
		MinFontSize:      t.Fonts.MinFontSize,
		MaxFontSize:      t.Fonts.MaxFontSize,
		ManualColumns:    t.Columns.Manual.Enabled,
		ColumnAdjustment: t.Columns.Manual.Adjustment,
		PreventEmpty:     t.Columns.Auto.PreventEmptyColumns,
		PreventOverflow:  t.Columns.Auto.PreventOverflow,
		FullWidth:        t.Columns.Auto.OptimizeForFullWidth,
		DensityThreshold: t.Columns.Auto.Threshold(),
		ScreenWidth:      o.ResolveScreenWidth(t),
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string, t *board.Template) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:       format,
		Style:        o.Style,
		Currency:     t.Display.Currency,
		ScreenWidth:  o.ResolveScreenWidth(t),
		ScreenHeight: t.ScreenHeight(),
	}
}
