package layout

import (
	"math"

	"github.com/askoeller/menuboard/pkg/board"
)

// =============================================================================
// FONT SCALING
// =============================================================================

// scaleFont picks the product font size in pixels for the given content and
// final column count. The returned flag reports whether a manual size was
// used instead of the scaling curve.
func scaleFont(c Content, columns int, cfg board.FontScalingConfig) (sizePx int, manual bool) {
	lo, hi := sanitizeFontBounds(cfg)

	if !cfg.AutoScale && cfg.ManualFontSize > 0 {
		return clampInt(cfg.ManualFontSize, lo, hi), true
	}

	// Normalize effective units into [0,1], then follow a concave curve
	// downward: small menus sit near the maximum, large menus approach the
	// minimum quickly and then level off.
	units := c.EffectiveUnits(FontHeaderWeight)
	clamped := math.Min(math.Max(units, unitFloor), unitCeil)
	normalized := (clamped - unitFloor) / (unitCeil - unitFloor)
	scale := 1 - math.Pow(normalized, curveExponent)

	size := float64(lo) + float64(hi-lo)*scale
	size -= columnPenalty(columns)
	size -= densityCompensation(c.ProductCount(), columns)

	return clampInt(int(math.Round(size)), lo, hi), false
}

// sanitizeFontBounds repairs configured font bounds instead of failing:
// layout always produces a result, even from a template that slipped past
// validation. Bounds outside the global window snap to it, an inverted pair
// resets to the full window.
func sanitizeFontBounds(cfg board.FontScalingConfig) (lo, hi int) {
	lo, hi = cfg.MinFontSize, cfg.MaxFontSize
	if lo < board.GlobalMinFontSize || lo > board.GlobalMaxFontSize {
		lo = board.GlobalMinFontSize
	}
	if hi < board.GlobalMinFontSize || hi > board.GlobalMaxFontSize {
		hi = board.GlobalMaxFontSize
	}
	if lo >= hi {
		lo, hi = board.GlobalMinFontSize, board.GlobalMaxFontSize
	}
	return lo, hi
}

// densityCompensation shaves extra pixels when a wide layout still carries
// long columns, which happens when an override or heuristic pinned the
// count low while the product list kept growing.
func densityCompensation(products, columns int) float64 {
	if columns > densityCompMaxColumns || products <= densityCompMinProducts {
		return 0
	}
	perColumn := float64(products) / float64(columns)
	if perColumn <= densityCompPerColumn {
		return 0
	}
	comp := math.Floor((perColumn - densityCompPerColumn) * densityCompFactor)
	return math.Min(comp, densityCompMaxPx)
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
