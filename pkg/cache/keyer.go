package cache

// Keyer derives cache keys from content hashes and the settings that change
// the outcome. Two layers exist: layouts keyed by slide content plus engine
// settings, artifacts keyed by the layout they render plus output settings.
type Keyer interface {
	LayoutKey(contentHash string, opts LayoutKeyOpts) string
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts captures every engine input besides the slide content. Any
// field change must produce a different key, so the struct is flattened to
// plain values and hashed as a whole.
type LayoutKeyOpts struct {
	AutoScale        bool    `json:"auto_scale"`
	ManualFontSize   int     `json:"manual_font_size"`
	MinFontSize      int     `json:"min_font_size"`
	MaxFontSize      int     `json:"max_font_size"`
	ManualColumns    bool    `json:"manual_columns"`
	ColumnAdjustment int     `json:"column_adjustment"`
	PreventEmpty     bool    `json:"prevent_empty"`
	PreventOverflow  bool    `json:"prevent_overflow"`
	FullWidth        bool    `json:"full_width"`
	DensityThreshold float64 `json:"density_threshold"`
	ScreenWidth      float64 `json:"screen_width"`
}

// ArtifactKeyOpts captures every rendering input besides the layout itself.
type ArtifactKeyOpts struct {
	Format       string  `json:"format"`
	Style        string  `json:"style"`
	Currency     string  `json:"currency"`
	ScreenWidth  float64 `json:"screen_width"`
	ScreenHeight float64 `json:"screen_height"`
}

// DefaultKeyer hashes hierarchical keys with stable prefixes per layer.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for a computed layout.
func (k *DefaultKeyer) LayoutKey(contentHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", contentHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
