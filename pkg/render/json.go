package render

import (
	"encoding/json"

	"github.com/askoeller/menuboard/pkg/layout"
	"github.com/shopspring/decimal"
)

// =============================================================================
// JSON ARTIFACT
// =============================================================================

// jsonOutput is the document the display runtime consumes. It carries the
// computed layout, the CSS custom properties to apply verbatim, and the
// selected content in render order.
type jsonOutput struct {
	Columns             int               `json:"columns"`
	FontSizePx          int               `json:"font_size_px"`
	GridTemplateColumns string            `json:"grid_template_columns"`
	CSSVars             map[string]string `json:"css_vars"`
	ScreenWidth         float64           `json:"screen_width"`
	ScreenHeight        float64           `json:"screen_height"`
	Currency            string            `json:"currency,omitempty"`
	GroupCount          int               `json:"group_count"`
	ProductCount        int               `json:"product_count"`
	Groups              []jsonGroup       `json:"groups"`
}

type jsonGroup struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Products []jsonProduct `json:"products"`
}

type jsonProduct struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit,omitempty"`
}

// RenderJSON renders the layout and its content as an indented JSON document.
func RenderJSON(content layout.Content, result layout.Result, opts ...Option) ([]byte, error) {
	o := newOptions(opts...)

	out := jsonOutput{
		Columns:             result.Columns,
		FontSizePx:          result.FontSizePx,
		GridTemplateColumns: result.GridTemplateColumns,
		CSSVars:             result.CSSVars(),
		ScreenWidth:         o.width,
		ScreenHeight:        o.height,
		Currency:            o.currency,
		GroupCount:          content.GroupCount(),
		ProductCount:        content.ProductCount(),
		Groups:              make([]jsonGroup, 0, len(content.Groups)),
	}

	for _, g := range content.Groups {
		jg := jsonGroup{
			ID:       g.ID,
			Name:     g.Name,
			Products: make([]jsonProduct, 0, len(g.Products)),
		}
		for _, p := range g.Products {
			jg.Products = append(jg.Products, jsonProduct{
				ID:          p.ID,
				Name:        p.Name,
				Description: p.Description,
				Price:       p.Price,
				Unit:        p.Unit,
			})
		}
		out.Groups = append(out.Groups, jg)
	}

	return json.MarshalIndent(out, "", "  ")
}
