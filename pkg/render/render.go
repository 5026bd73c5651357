// Package render turns computed layouts into artifacts: an SVG preview of
// the board, a JSON document for the display runtime, and a plain text grid
// for the terminal.
package render

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// STYLES
// =============================================================================

// Board color styles for the SVG preview.
const (
	StyleDark  = "dark"
	StyleLight = "light"
)

// theme is the color palette of one style.
type theme struct {
	background string
	surface    string
	heading    string
	text       string
	price      string
}

var themes = map[string]theme{
	StyleDark: {
		background: "#14161a",
		surface:    "#1e2127",
		heading:    "#e8c36a",
		text:       "#f2f2f0",
		price:      "#9ad1a3",
	},
	StyleLight: {
		background: "#faf7f0",
		surface:    "#ffffff",
		heading:    "#8a5a2b",
		text:       "#2b2b28",
		price:      "#3d7a4a",
	},
}

// =============================================================================
// OPTIONS
// =============================================================================

// Option adjusts rendering across all output formats.
type Option func(*options)

type options struct {
	style       string
	title       string
	width       float64
	height      float64
	currency    string
	columnWidth int
}

func newOptions(opts ...Option) options {
	o := options{
		style:       StyleDark,
		width:       1920,
		height:      1080,
		columnWidth: 28,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if _, ok := themes[o.style]; !ok {
		o.style = StyleDark
	}
	return o
}

// WithStyle selects a color style for the SVG preview.
func WithStyle(style string) Option { return func(o *options) { o.style = style } }

// WithTitle puts a heading line above the board.
func WithTitle(title string) Option { return func(o *options) { o.title = title } }

// WithScreenSize sets the target screen dimensions in pixels.
func WithScreenSize(width, height float64) Option {
	return func(o *options) {
		if width > 0 {
			o.width = width
		}
		if height > 0 {
			o.height = height
		}
	}
}

// WithCurrency sets the currency code used for price formatting.
func WithCurrency(currency string) Option { return func(o *options) { o.currency = currency } }

// WithColumnWidth sets the character width per column in text output.
func WithColumnWidth(chars int) Option {
	return func(o *options) {
		if chars > 0 {
			o.columnWidth = chars
		}
	}
}

// =============================================================================
// PRICES
// =============================================================================

var currencySymbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
}

// formatPrice renders a price for on-board display. Known currencies get
// their symbol, everything else keeps its code as a suffix.
func formatPrice(price decimal.Decimal, currency string) string {
	value := price.StringFixed(2)
	if symbol, ok := currencySymbols[currency]; ok {
		return value + " " + symbol
	}
	if currency != "" {
		return value + " " + currency
	}
	return value
}
