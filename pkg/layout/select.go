package layout

import (
	"sort"

	"github.com/askoeller/menuboard/pkg/board"
	"github.com/askoeller/menuboard/pkg/catalog"
)

// =============================================================================
// CONTENT SELECTION
// =============================================================================

// Content is the resolved product content of one slide: the selected groups
// in display order, each holding only the products the slide actually shows.
type Content struct {
	Groups []catalog.Group `json:"groups"`
}

// GroupCount returns the number of selected groups.
func (c Content) GroupCount() int { return len(c.Groups) }

// ProductCount returns the number of selected products across all groups.
func (c Content) ProductCount() int {
	n := 0
	for i := range c.Groups {
		n += len(c.Groups[i].Products)
	}
	return n
}

// IsEmpty reports whether the slide resolved to no visible content.
func (c Content) IsEmpty() bool { return len(c.Groups) == 0 }

// EffectiveUnits converts the content into product-row equivalents: each
// product counts one unit, each group header counts headerWeight units.
func (c Content) EffectiveUnits(headerWeight float64) float64 {
	return float64(c.ProductCount()) + float64(c.GroupCount())*headerWeight
}

// Select resolves a slide's group selections against the catalog.
//
// References that no longer exist are dropped without error: catalogs and
// templates are edited independently, and a partially filled board is always
// preferable to a dark screen. Groups are ordered by their display order,
// selections without one sort last, ties keep document order. Products keep
// the order of the selection, duplicates are selected once. A selection left
// with no products disappears entirely so no orphaned header is rendered.
func Select(cat *catalog.Catalog, slide board.Slide) Content {
	selections := make([]board.GroupSelection, len(slide.GroupSelections))
	copy(selections, slide.GroupSelections)
	sort.SliceStable(selections, func(i, j int) bool {
		return selections[i].Order() < selections[j].Order()
	})

	var content Content
	for _, sel := range selections {
		group, ok := cat.Group(sel.GroupID)
		if !ok {
			continue
		}

		products := make([]catalog.Product, 0, len(sel.ProductIDs))
		seen := make(map[string]bool, len(sel.ProductIDs))
		for _, id := range sel.ProductIDs {
			if seen[id] {
				continue
			}
			seen[id] = true
			if p, ok := group.Product(id); ok {
				products = append(products, *p)
			}
		}
		if len(products) == 0 {
			continue
		}

		content.Groups = append(content.Groups, catalog.Group{
			ID:       group.ID,
			Name:     group.Name,
			Products: products,
		})
	}
	return content
}
