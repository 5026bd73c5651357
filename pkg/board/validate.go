package board

import (
	"fmt"

	"github.com/askoeller/menuboard/pkg/catalog"
)

// =============================================================================
// VALIDATION
// =============================================================================

// FieldError is a single validation finding, scoped to the document field
// that caused it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	return e.Field + ": " + e.Message
}

// Validate checks the structural rules a template must satisfy before it can
// drive a board. It returns every finding rather than stopping at the first,
// so an editor can surface all of them in one pass.
func Validate(t *Template) []FieldError {
	var findings []FieldError
	add := func(field, format string, args ...any) {
		findings = append(findings, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if t.Version != SupportedVersion {
		add("version", "must be %d", SupportedVersion)
	}
	if t.Type != TypeMenu {
		add("type", "must be %q", TypeMenu)
	}

	if len(t.Slides) == 0 {
		add("slides", "at least one slide is required")
	}

	slideIDs := make(map[string]bool, len(t.Slides))
	for i := range t.Slides {
		s := &t.Slides[i]
		path := fmt.Sprintf("slides[%d]", i)

		if s.ID == "" {
			add(path+".id", "required")
		} else if slideIDs[s.ID] {
			add(path+".id", "duplicate slide id %q", s.ID)
		}
		slideIDs[s.ID] = true

		if s.BackgroundProductID == "" {
			add(path+".background_product_id", "required")
		}
		if len(s.GroupSelections) == 0 {
			add(path+".group_selections", "at least one group selection is required")
		}

		groupIDs := make(map[string]bool, len(s.GroupSelections))
		for j := range s.GroupSelections {
			sel := &s.GroupSelections[j]
			selPath := fmt.Sprintf("%s.group_selections[%d]", path, j)

			if sel.GroupID == "" {
				add(selPath+".group_id", "required")
			} else if groupIDs[sel.GroupID] {
				add(selPath+".group_id", "group %q selected twice", sel.GroupID)
			}
			groupIDs[sel.GroupID] = true

			if len(sel.ProductIDs) == 0 {
				add(selPath+".product_ids", "at least one product is required")
			}
			seen := make(map[string]bool, len(sel.ProductIDs))
			for _, id := range sel.ProductIDs {
				if seen[id] {
					add(selPath+".product_ids", "duplicate product id %q", id)
				}
				seen[id] = true
			}
		}
	}

	findings = append(findings, validateFonts(&t.Fonts)...)

	if th := t.Columns.Auto.DensityThreshold; th != nil && *th <= 0 {
		add("columns.auto.density_threshold", "must be greater than 0")
	}

	return findings
}

func validateFonts(f *FontScalingConfig) []FieldError {
	var findings []FieldError
	add := func(field, format string, args ...any) {
		findings = append(findings, FieldError{Field: "fonts." + field, Message: fmt.Sprintf(format, args...)})
	}

	if f.MinFontSize < GlobalMinFontSize {
		add("min_font_size", "must be at least %d", GlobalMinFontSize)
	}
	if f.MaxFontSize > GlobalMaxFontSize {
		add("max_font_size", "must be at most %d", GlobalMaxFontSize)
	}
	if f.MinFontSize >= f.MaxFontSize {
		add("min_font_size", "must be smaller than max_font_size")
	}
	if !f.AutoScale && f.ManualFontSize <= 0 {
		add("manual_font_size", "required when auto_scale is disabled")
	}
	return findings
}

// ValidateWithCatalog runs Validate and additionally checks every catalog
// reference. Missing references are findings here even though the layout
// engine would drop them silently at render time: the editor should know, the
// screen should not go dark.
func ValidateWithCatalog(t *Template, c *catalog.Catalog) []FieldError {
	findings := Validate(t)
	add := func(field, format string, args ...any) {
		findings = append(findings, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	groupIDs := make(map[string]bool, len(c.Groups))
	productIDs := make(map[string]bool)
	for i := range c.Groups {
		g := &c.Groups[i]
		if groupIDs[g.ID] {
			add(fmt.Sprintf("catalog.groups[%d].id", i), "duplicate group id %q", g.ID)
		}
		groupIDs[g.ID] = true
		for j := range g.Products {
			p := &g.Products[j]
			if productIDs[p.ID] {
				add(fmt.Sprintf("catalog.groups[%d].products[%d].id", i, j), "duplicate product id %q", p.ID)
			}
			productIDs[p.ID] = true
		}
	}

	for i := range t.Slides {
		s := &t.Slides[i]
		path := fmt.Sprintf("slides[%d]", i)

		if s.BackgroundProductID != "" && !productIDs[s.BackgroundProductID] {
			add(path+".background_product_id", "product %q not found in catalog", s.BackgroundProductID)
		}

		for j := range s.GroupSelections {
			sel := &s.GroupSelections[j]
			selPath := fmt.Sprintf("%s.group_selections[%d]", path, j)

			g, ok := c.Group(sel.GroupID)
			if sel.GroupID != "" && !ok {
				add(selPath+".group_id", "group %q not found in catalog", sel.GroupID)
				continue
			}
			if g == nil {
				continue
			}
			for _, id := range sel.ProductIDs {
				if _, ok := g.Product(id); !ok {
					add(selPath+".product_ids", "product %q not found in group %q", id, sel.GroupID)
				}
			}
		}
	}

	return findings
}
