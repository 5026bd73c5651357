package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/askoeller/menuboard/pkg/layout"
)

// =============================================================================
// SVG GEOMETRY
// =============================================================================

const (
	svgMargin    = 48.0 // outer margin around the board
	svgGutter    = 32.0 // horizontal gap between columns
	svgPadding   = 24.0 // inner padding of a column panel
	svgFont      = "'Helvetica Neue', Arial, sans-serif"
	svgCornerRad = 12.0
)

// =============================================================================
// RENDERING
// =============================================================================

// RenderSVG renders the board as a self-contained SVG at the target screen
// size. The grid mirrors what the display runtime would show: the computed
// column count with the computed font size, content flowed top to bottom.
func RenderSVG(content layout.Content, result layout.Result, opts ...Option) []byte {
	o := newOptions(opts...)
	t := themes[o.style]
	cols := FlowColumns(content, result.Columns, o.currency)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.0f %.0f" font-family="%s">`+"\n",
		o.width, o.height, svgFont)
	fmt.Fprintf(&buf, `  <rect width="%.0f" height="%.0f" fill="%s"/>`+"\n", o.width, o.height, t.background)

	top := svgMargin
	if o.title != "" {
		titleSize := float64(result.FontSizePx) * 1.6
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-size="%.1f" font-weight="bold" fill="%s">%s</text>`+"\n",
			svgMargin, svgMargin+titleSize, titleSize, t.heading, xmlEscape(o.title))
		top += titleSize * 1.8
	}

	n := len(cols)
	colWidth := (o.width - 2*svgMargin - float64(n-1)*svgGutter) / float64(n)
	colHeight := o.height - top - svgMargin
	fontSize := float64(result.FontSizePx)
	headerSize := fontSize * 1.25
	rowHeight := fontSize * 1.7
	headerHeight := headerSize * 1.9

	for i, col := range cols {
		x := svgMargin + float64(i)*(colWidth+svgGutter)
		fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.0f" fill="%s"/>`+"\n",
			x, top, colWidth, colHeight, svgCornerRad, t.surface)
		renderColumn(&buf, col, t, x, top, colWidth, colHeight, fontSize, headerSize, rowHeight, headerHeight)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// renderColumn writes the rows of one column panel. Rows that would run past
// the bottom of the panel are dropped; the engine sizes the layout so this
// only happens on pathological input.
func renderColumn(buf *bytes.Buffer, col Column, t theme, x, top, width, height, fontSize, headerSize, rowHeight, headerHeight float64) {
	y := top + svgPadding
	bottom := top + height - svgPadding

	for _, row := range col.Rows {
		step := rowHeight
		if row.Header {
			step = headerHeight
		}
		if y+step > bottom {
			break
		}
		y += step
		if row.Header {
			fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="%.1f" font-weight="bold" letter-spacing="1.5" fill="%s">%s</text>`+"\n",
				x+svgPadding, y, headerSize, t.heading, xmlEscape(strings.ToUpper(row.Text)))
			continue
		}
		name := xmlEscape(row.Text)
		if row.Unit != "" {
			name += fmt.Sprintf(` <tspan font-size="%.1f" opacity="0.55">%s</tspan>`, fontSize*0.75, xmlEscape(row.Unit))
		}
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="%.1f" fill="%s">%s</text>`+"\n",
			x+svgPadding, y, fontSize, t.text, name)
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="%.1f" text-anchor="end" fill="%s">%s</text>`+"\n",
			x+width-svgPadding, y, fontSize, t.price, xmlEscape(row.Price))
	}
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func xmlEscape(s string) string {
	return xmlReplacer.Replace(s)
}
