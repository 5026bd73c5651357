package render

import (
	"math"

	"github.com/askoeller/menuboard/pkg/layout"
)

// =============================================================================
// COLUMN FLOW
// =============================================================================

// Row is a single rendered line in a column.
type Row struct {
	Header bool   // group heading rather than a product
	Text   string // group or product name
	Price  string // formatted price, empty for headers
	Unit   string // serving unit, empty for headers
}

// Column is a vertical run of rows on the board.
type Column struct {
	Rows []Row
}

// Units is the visual weight of the column, headers counted heavier
// than product rows.
func (c Column) Units() float64 {
	units := 0.0
	for _, r := range c.Rows {
		if r.Header {
			units += layout.ColumnHeaderWeight
		} else {
			units++
		}
	}
	return units
}

// FlowColumns distributes content into exactly the given number of columns,
// top to bottom and left to right. Groups stay in selection order and a
// heading is never orphaned at the bottom of a column; the group it opens
// follows it into the next column instead. The result always has columns
// entries, trailing ones possibly empty.
func FlowColumns(content layout.Content, columns int, currency string) []Column {
	if columns < 1 {
		columns = 1
	}
	cols := make([]Column, 1, columns)
	if content.IsEmpty() {
		return padColumns(cols, columns)
	}

	target := math.Ceil(content.EffectiveUnits(layout.ColumnHeaderWeight) / float64(columns))
	cur := 0
	units := 0.0

	advance := func() {
		if cur < columns-1 {
			cols = append(cols, Column{})
			cur++
			units = 0
		}
	}

	for _, g := range content.Groups {
		// Move the heading along with its first product when the two
		// no longer fit together.
		if len(cols[cur].Rows) > 0 && units+layout.ColumnHeaderWeight+1 > target {
			advance()
		}
		cols[cur].Rows = append(cols[cur].Rows, Row{Header: true, Text: g.Name})
		units += layout.ColumnHeaderWeight

		for _, p := range g.Products {
			if units+1 > target && len(cols[cur].Rows) > 0 {
				advance()
			}
			cols[cur].Rows = append(cols[cur].Rows, Row{
				Text:  p.Name,
				Price: formatPrice(p.Price, currency),
				Unit:  p.Unit,
			})
			units++
		}
	}

	return padColumns(cols, columns)
}

func padColumns(cols []Column, columns int) []Column {
	for len(cols) < columns {
		cols = append(cols, Column{})
	}
	return cols
}
