package layout

// =============================================================================
// COLUMN BOUNDS
// =============================================================================

// Column counts are always kept inside this window, no matter what the
// heuristics or a manual override propose. Fewer than two columns wastes a
// landscape TV; more than six renders rows too narrow to read at distance.
const (
	MinColumns = 2
	MaxColumns = 6
)

// =============================================================================
// CONTENT WEIGHTS
// =============================================================================

// Group headers occupy vertical space alongside product rows, so the sizing
// math counts them as fractional products. Column planning uses the larger
// weight because a header rendered atop a column consumes about two product
// rows. Font scaling and the density heuristics use the smaller weight,
// tuned against how headers shrink together with the body text.
const (
	// ColumnHeaderWeight converts a group header into product-row
	// equivalents for column planning.
	ColumnHeaderWeight = 2.0

	// FontHeaderWeight converts a group header into product-row equivalents
	// for font scaling and the policy heuristics.
	FontHeaderWeight = 1.5
)

// =============================================================================
// COLUMN PLANNING
// =============================================================================

// safetyMarginRatio pads the planned column count: once content passes 90%
// of the planned capacity, one more column is opened ahead of demand.
const safetyMarginRatio = 0.90

// baselineColumns maps how many groups a slide shows to a starting column
// count, before content volume is considered.
func baselineColumns(groupCount int) int {
	switch {
	case groupCount <= 2:
		return 2
	case groupCount <= 4:
		return 3
	case groupCount <= 6:
		return 4
	case groupCount <= 9:
		return 5
	default:
		return 6
	}
}

// columnCapacity returns how many effective units one column holds
// comfortably at the given column count. Fewer columns render wider rows and
// therefore fit more units per column.
func columnCapacity(columns int) float64 {
	switch {
	case columns <= 2:
		return 12
	case columns == 3:
		return 11
	case columns == 4:
		return 9
	default:
		return 8
	}
}

// =============================================================================
// POLICY HEURISTICS
// =============================================================================

const (
	// idealItemsPerColumn is the per-column load the overflow heuristic
	// treats as a full column.
	idealItemsPerColumn = 12.0

	// emptyColumnMinLoad is the smallest load the last column may carry.
	// Anything below it reads as a stray sliver on screen, so the empty
	// column heuristic drops a column instead.
	emptyColumnMinLoad = 2.0
)

// Column width targets in pixels for the full width heuristic. Columns wider
// than the base width by the wide ratio leave dead space, columns narrower
// than the base width by the narrow ratio truncate product names.
const (
	baseColumnWidth   = 350.0
	wideColumnRatio   = 1.3
	narrowColumnRatio = 0.7
)

// =============================================================================
// FONT SCALING
// =============================================================================

const (
	// unitFloor and unitCeil clamp effective units before normalization so
	// the scaling curve always operates on the same input window.
	unitFloor = 5.0
	unitCeil  = 55.0

	// curveExponent shapes the scaling curve. Below 1 the font falls
	// quickly for small menus and flattens out for large ones.
	curveExponent = 0.3
)

// columnPenalty returns the pixels shaved off the scaled font at the given
// column count. More columns mean narrower columns, which need smaller text
// to keep product rows on one line.
func columnPenalty(columns int) float64 {
	switch {
	case columns >= 6:
		return 4
	case columns == 5:
		return 3
	case columns == 4:
		return 2
	case columns == 3:
		return 1
	default:
		return 0
	}
}

// Density compensation kicks in when wide layouts still carry long columns:
// few columns, many products, more than densityCompPerColumn of them per
// column. The font drops by densityCompFactor pixels per excess product,
// capped at densityCompMaxPx.
const (
	densityCompMaxColumns  = 3
	densityCompMinProducts = 30
	densityCompPerColumn   = 12.0
	densityCompFactor      = 0.3
	densityCompMaxPx       = 3.0
)
