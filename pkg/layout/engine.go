// Package layout computes how a menu slide is arranged on a fixed screen:
// how many columns the grid gets and how large the product text is rendered.
//
// The engine is deterministic and total. The same catalog, slide and options
// always produce the same result, and broken input degrades to a sensible
// layout instead of an error: a board on a wall has no one to read a stack
// trace.
package layout

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/askoeller/menuboard/pkg/board"
	"github.com/askoeller/menuboard/pkg/catalog"
	"github.com/askoeller/menuboard/pkg/observability"
)

// =============================================================================
// ENGINE
// =============================================================================

// Options carries the tuning a template grants the engine for one slide.
type Options struct {
	// Fonts configures the font scaling curve or a manual size.
	Fonts board.FontScalingConfig `json:"fonts"`

	// Columns configures manual override and automatic column heuristics.
	Columns board.ColumnControlConfig `json:"columns"`

	// ScreenWidth is the viewport width in pixels. Zero falls back to a
	// full-HD landscape screen.
	ScreenWidth float64 `json:"screen_width"`
}

// Result is the computed layout for one slide, ready to drive a CSS grid.
type Result struct {
	Columns             int    `json:"columns"`
	FontSizePx          int    `json:"font_size_px"`
	GridTemplateColumns string `json:"grid_template_columns"`
}

// CSSVars projects the result into CSS custom properties for the display
// runtime.
func (r Result) CSSVars() map[string]string {
	return map[string]string{
		"--menu-columns":       strconv.Itoa(r.Columns),
		"--menu-font-size":     strconv.Itoa(r.FontSizePx) + "px",
		"--menu-grid-template": r.GridTemplateColumns,
	}
}

// Compute resolves a slide against the catalog and derives its layout.
//
// The pass runs selection, column planning, the column policy and font
// scaling in order, with the font scaler consulting the final column count.
// Compute never fails; an empty or dangling slide yields the minimum grid at
// the maximum font size.
func Compute(ctx context.Context, cat *catalog.Catalog, slide board.Slide, opts Options) (Content, Result) {
	start := time.Now()
	hooks := observability.Engine()

	if opts.ScreenWidth <= 0 {
		opts.ScreenWidth = board.DefaultScreenWidth
	}

	content := Select(cat, slide)
	hooks.OnContentSelected(ctx, slide.ID, content.GroupCount(), content.ProductCount())

	plan := planColumns(content)
	columns, firings := applyPolicy(plan.columns, content, opts.Columns, opts.ScreenWidth)
	for _, f := range firings {
		hooks.OnPolicyRule(ctx, slide.ID, f.rule, f.delta)
	}
	hooks.OnColumnsPlanned(ctx, slide.ID, plan.baseline, plan.demand, columns)

	sizePx, manual := scaleFont(content, columns, opts.Fonts)
	hooks.OnFontScaled(ctx, slide.ID, sizePx, manual)

	result := Result{
		Columns:             columns,
		FontSizePx:          sizePx,
		GridTemplateColumns: fmt.Sprintf("repeat(%d, 1fr)", columns),
	}
	hooks.OnLayoutComputed(ctx, slide.ID, result.Columns, result.FontSizePx, time.Since(start))
	return content, result
}
