package board

import "testing"

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestSelectionOrder(t *testing.T) {
	tests := []struct {
		name string
		sel  GroupSelection
		want int
	}{
		{"explicit order", GroupSelection{DisplayOrder: intPtr(3)}, 3},
		{"explicit zero", GroupSelection{DisplayOrder: intPtr(0)}, 0},
		{"negative order", GroupSelection{DisplayOrder: intPtr(-1)}, -1},
		{"missing order sorts last", GroupSelection{}, DefaultDisplayOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sel.Order(); got != tt.want {
				t.Errorf("Order() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAutoOptimizeThreshold(t *testing.T) {
	tests := []struct {
		name string
		cfg  AutoOptimizeConfig
		want float64
	}{
		{"unset", AutoOptimizeConfig{}, DefaultDensityThreshold},
		{"explicit", AutoOptimizeConfig{DensityThreshold: floatPtr(0.7)}, 0.7},
		{"zero falls back", AutoOptimizeConfig{DensityThreshold: floatPtr(0)}, DefaultDensityThreshold},
		{"negative falls back", AutoOptimizeConfig{DensityThreshold: floatPtr(-1)}, DefaultDensityThreshold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Threshold(); got != tt.want {
				t.Errorf("Threshold() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTemplateSlide(t *testing.T) {
	tpl := &Template{
		Slides: []Slide{
			{ID: "main"},
			{ID: "specials"},
		},
	}

	s, ok := tpl.Slide("specials")
	if !ok {
		t.Fatal("Slide(specials) not found")
	}
	if s.ID != "specials" {
		t.Errorf("ID = %q, want %q", s.ID, "specials")
	}

	if _, ok := tpl.Slide("missing"); ok {
		t.Error("Slide(missing) should not be found")
	}
}

func TestTemplateScreenDefaults(t *testing.T) {
	var tpl Template

	if got := tpl.ScreenWidth(); got != DefaultScreenWidth {
		t.Errorf("ScreenWidth() = %v, want %v", got, DefaultScreenWidth)
	}
	if got := tpl.ScreenHeight(); got != DefaultScreenHeight {
		t.Errorf("ScreenHeight() = %v, want %v", got, DefaultScreenHeight)
	}

	tpl.Display = Display{ScreenWidth: 3840, ScreenHeight: 2160}
	if got := tpl.ScreenWidth(); got != 3840 {
		t.Errorf("ScreenWidth() = %v, want 3840", got)
	}
	if got := tpl.ScreenHeight(); got != 2160 {
		t.Errorf("ScreenHeight() = %v, want 2160", got)
	}
}
