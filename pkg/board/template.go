// Package board defines the menu board template: the versioned document that
// declares which catalog groups appear on which slide and how fonts and
// columns may be tuned. Templates are written in TOML or JSON and validated
// before a board is put on screen.
package board

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	// SupportedVersion is the template document version this build reads.
	SupportedVersion = 1

	// TypeMenu is the only document type currently defined.
	TypeMenu = "menu"
)

const (
	// DefaultDisplayOrder sorts selections without an explicit order after
	// every ordered selection.
	DefaultDisplayOrder = 999

	// DefaultDensityThreshold triggers the overflow optimization once the
	// projected column fill passes 85% of the ideal load.
	DefaultDensityThreshold = 0.85
)

// Global font bounds in pixels. Template font settings outside this window
// are rejected by the validator and repaired by the engine.
const (
	GlobalMinFontSize = 12
	GlobalMaxFontSize = 48
)

// Default screen geometry in pixels, a landscape full-HD TV.
const (
	DefaultScreenWidth  = 1920.0
	DefaultScreenHeight = 1080.0
)

// =============================================================================
// TYPES
// =============================================================================

// Template is the root of a board document.
type Template struct {
	Version int                 `json:"version" toml:"version" jsonschema:"minimum=1,maximum=1"`
	Type    string              `json:"type" toml:"type" jsonschema:"enum=menu"`
	Name    string              `json:"name,omitempty" toml:"name"`
	Display Display             `json:"display,omitempty" toml:"display"`
	Fonts   FontScalingConfig   `json:"fonts" toml:"fonts"`
	Columns ColumnControlConfig `json:"columns,omitempty" toml:"columns"`
	Slides  []Slide             `json:"slides" toml:"slides"`
}

// Display describes the target screen. Zero values fall back to a full-HD
// landscape TV.
type Display struct {
	ScreenWidth  float64 `json:"screen_width,omitempty" toml:"screen_width"`
	ScreenHeight float64 `json:"screen_height,omitempty" toml:"screen_height"`
	Currency     string  `json:"currency,omitempty" toml:"currency"`
}

// Slide is one full-screen page of the board rotation.
type Slide struct {
	ID                  string           `json:"id" toml:"id"`
	Name                string           `json:"name,omitempty" toml:"name"`
	BackgroundProductID string           `json:"background_product_id" toml:"background_product_id" jsonschema:"description=Product whose imagery backs the slide"`
	GroupSelections     []GroupSelection `json:"group_selections" toml:"group_selections"`
}

// GroupSelection picks products out of one catalog group. DisplayOrder
// controls left-to-right placement; selections without one sort last.
type GroupSelection struct {
	GroupID      string   `json:"group_id" toml:"group_id"`
	ProductIDs   []string `json:"product_ids" toml:"product_ids"`
	DisplayOrder *int     `json:"display_order,omitempty" toml:"display_order" jsonschema:"description=Sort key; omitted selections sort last"`
}

// FontScalingConfig tunes product text sizing. With AutoScale off and a
// positive ManualFontSize the scaling curve is bypassed entirely.
type FontScalingConfig struct {
	AutoScale      bool `json:"auto_scale" toml:"auto_scale"`
	ManualFontSize int  `json:"manual_font_size,omitempty" toml:"manual_font_size"`
	MinFontSize    int  `json:"min_font_size" toml:"min_font_size" jsonschema:"minimum=12"`
	MaxFontSize    int  `json:"max_font_size" toml:"max_font_size" jsonschema:"maximum=48"`
}

// ManualColumnOverride shifts the automatic column count by a fixed
// adjustment. While enabled, all automatic optimizations are skipped.
type ManualColumnOverride struct {
	Enabled    bool `json:"enabled" toml:"enabled"`
	Adjustment int  `json:"adjustment,omitempty" toml:"adjustment"`
}

// AutoOptimizeConfig switches the individual column heuristics.
type AutoOptimizeConfig struct {
	PreventEmptyColumns  bool     `json:"prevent_empty_columns" toml:"prevent_empty_columns"`
	PreventOverflow      bool     `json:"prevent_overflow" toml:"prevent_overflow"`
	OptimizeForFullWidth bool     `json:"optimize_for_full_width" toml:"optimize_for_full_width"`
	DensityThreshold     *float64 `json:"density_threshold,omitempty" toml:"density_threshold" jsonschema:"description=Column fill ratio above which a column is added"`
}

// ColumnControlConfig groups manual and automatic column tuning.
type ColumnControlConfig struct {
	Manual ManualColumnOverride `json:"manual,omitempty" toml:"manual"`
	Auto   AutoOptimizeConfig   `json:"auto,omitempty" toml:"auto"`
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Order returns the selection's display order, defaulting omitted orders so
// they sort after every explicit one.
func (s *GroupSelection) Order() int {
	if s.DisplayOrder == nil {
		return DefaultDisplayOrder
	}
	return *s.DisplayOrder
}

// Threshold returns the overflow density threshold, defaulting when unset or
// non-positive.
func (a *AutoOptimizeConfig) Threshold() float64 {
	if a.DensityThreshold == nil || *a.DensityThreshold <= 0 {
		return DefaultDensityThreshold
	}
	return *a.DensityThreshold
}

// Slide returns the slide with the given ID, or false if absent.
func (t *Template) Slide(id string) (*Slide, bool) {
	for i := range t.Slides {
		if t.Slides[i].ID == id {
			return &t.Slides[i], true
		}
	}
	return nil, false
}

// ScreenWidth returns the configured screen width, defaulting to full HD.
func (t *Template) ScreenWidth() float64 {
	if t.Display.ScreenWidth <= 0 {
		return DefaultScreenWidth
	}
	return t.Display.ScreenWidth
}

// ScreenHeight returns the configured screen height, defaulting to full HD.
func (t *Template) ScreenHeight() float64 {
	if t.Display.ScreenHeight <= 0 {
		return DefaultScreenHeight
	}
	return t.Display.ScreenHeight
}
