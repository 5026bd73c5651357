package layout

import "math"

// =============================================================================
// COLUMN PLANNING
// =============================================================================

// columnPlan is the outcome of the demand calculation, before policy rules
// and the final clamp.
type columnPlan struct {
	baseline int
	demand   int
	columns  int
}

// planColumns derives a column count from content volume. The group count
// sets a baseline, effective units may push it higher, and a safety margin
// opens one more column shortly before the planned capacity runs out.
func planColumns(c Content) columnPlan {
	baseline := baselineColumns(c.GroupCount())
	capacity := columnCapacity(baseline)
	units := c.EffectiveUnits(ColumnHeaderWeight)

	demand := int(math.Ceil(units / capacity))
	columns := max(baseline, demand)
	if units > safetyMarginRatio*float64(columns)*capacity {
		columns++
	}

	return columnPlan{baseline: baseline, demand: demand, columns: columns}
}

// clampColumns forces a proposed column count into the allowed window.
func clampColumns(columns int) int {
	return min(max(columns, MinColumns), MaxColumns)
}
