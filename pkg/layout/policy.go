package layout

import (
	"math"

	"github.com/askoeller/menuboard/pkg/board"
)

// =============================================================================
// COLUMN POLICY
// =============================================================================

// Policy rule names as reported through observability hooks and logs.
const (
	RuleManualOverride       = "manual_override"
	RulePreventEmptyColumns  = "prevent_empty_columns"
	RulePreventOverflow      = "prevent_overflow"
	RuleOptimizeForFullWidth = "optimize_for_full_width"
)

// ruleFiring records one policy rule that fired and the column delta it
// proposed.
type ruleFiring struct {
	rule  string
	delta int
}

// applyPolicy turns the planned column count into the final one.
//
// An enabled manual override wins outright: the adjustment is applied and
// every automatic rule is skipped, so operators get exactly what they asked
// for (within bounds). Otherwise each enabled heuristic proposes its delta
// independently, the deltas are summed and the result clamped once.
func applyPolicy(planned int, c Content, cfg board.ColumnControlConfig, screenWidth float64) (int, []ruleFiring) {
	if cfg.Manual.Enabled {
		firing := ruleFiring{rule: RuleManualOverride, delta: cfg.Manual.Adjustment}
		return clampColumns(planned + cfg.Manual.Adjustment), []ruleFiring{firing}
	}

	units := c.EffectiveUnits(FontHeaderWeight)
	var firings []ruleFiring
	delta := 0

	if cfg.Auto.PreventEmptyColumns {
		if d := emptyColumnDelta(units, planned); d != 0 {
			firings = append(firings, ruleFiring{rule: RulePreventEmptyColumns, delta: d})
			delta += d
		}
	}
	if cfg.Auto.PreventOverflow {
		if d := overflowDelta(units, planned, cfg.Auto.Threshold()); d != 0 {
			firings = append(firings, ruleFiring{rule: RulePreventOverflow, delta: d})
			delta += d
		}
	}
	if cfg.Auto.OptimizeForFullWidth {
		if d := fullWidthDelta(planned, screenWidth); d != 0 {
			firings = append(firings, ruleFiring{rule: RuleOptimizeForFullWidth, delta: d})
			delta += d
		}
	}

	return clampColumns(planned + delta), firings
}

// emptyColumnDelta proposes dropping a column when the last one would stay
// nearly empty. Content flows greedily, so with per-column loads rounded up
// the last column carries whatever remains; a remainder below the minimum
// load reads as a stray sliver on screen.
func emptyColumnDelta(units float64, columns int) int {
	if units <= 0 || columns <= MinColumns {
		return 0
	}
	perColumn := math.Ceil(units / float64(columns))
	lastColumn := units - perColumn*float64(columns-1)
	if lastColumn < emptyColumnMinLoad {
		return -1
	}
	return 0
}

// overflowDelta proposes an extra column when the average load passes the
// configured share of a full column.
func overflowDelta(units float64, columns int, threshold float64) int {
	if columns >= MaxColumns {
		return 0
	}
	density := units / float64(columns) / idealItemsPerColumn
	if density > threshold {
		return 1
	}
	return 0
}

// fullWidthDelta nudges the count toward columns that actually fit the
// screen: very wide columns leave dead space, very narrow ones truncate
// product names.
func fullWidthDelta(columns int, screenWidth float64) int {
	if screenWidth <= 0 {
		return 0
	}
	width := screenWidth / float64(columns)
	switch {
	case width > baseColumnWidth*wideColumnRatio && columns < MaxColumns:
		return 1
	case width < baseColumnWidth*narrowColumnRatio && columns > MinColumns:
		return -1
	}
	return 0
}
