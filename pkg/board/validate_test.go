package board

import (
	"strings"
	"testing"

	"github.com/askoeller/menuboard/pkg/catalog"
	"github.com/shopspring/decimal"
)

func validTemplate() *Template {
	return &Template{
		Version: SupportedVersion,
		Type:    TypeMenu,
		Fonts:   FontScalingConfig{AutoScale: true, MinFontSize: 16, MaxFontSize: 40},
		Slides: []Slide{
			{
				ID:                  "main",
				BackgroundProductID: "pils",
				GroupSelections: []GroupSelection{
					{GroupID: "draft", ProductIDs: []string{"pils", "ipa"}},
				},
			},
		},
	}
}

func findingFields(findings []FieldError) []string {
	fields := make([]string, len(findings))
	for i, f := range findings {
		fields[i] = f.Field
	}
	return fields
}

func hasFinding(findings []FieldError, field string) bool {
	for _, f := range findings {
		if f.Field == field {
			return true
		}
	}
	return false
}

func TestValidateOK(t *testing.T) {
	if findings := Validate(validTemplate()); len(findings) != 0 {
		t.Errorf("Validate() = %v, want no findings", findingFields(findings))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Template)
		wantField string
	}{
		{
			name:      "wrong version",
			mutate:    func(t *Template) { t.Version = 2 },
			wantField: "version",
		},
		{
			name:      "wrong type",
			mutate:    func(t *Template) { t.Type = "pizza" },
			wantField: "type",
		},
		{
			name:      "no slides",
			mutate:    func(t *Template) { t.Slides = nil },
			wantField: "slides",
		},
		{
			name:      "missing slide id",
			mutate:    func(t *Template) { t.Slides[0].ID = "" },
			wantField: "slides[0].id",
		},
		{
			name: "duplicate slide id",
			mutate: func(t *Template) {
				t.Slides = append(t.Slides, t.Slides[0])
			},
			wantField: "slides[1].id",
		},
		{
			name:      "missing background product",
			mutate:    func(t *Template) { t.Slides[0].BackgroundProductID = "" },
			wantField: "slides[0].background_product_id",
		},
		{
			name:      "no selections",
			mutate:    func(t *Template) { t.Slides[0].GroupSelections = nil },
			wantField: "slides[0].group_selections",
		},
		{
			name:      "missing group id",
			mutate:    func(t *Template) { t.Slides[0].GroupSelections[0].GroupID = "" },
			wantField: "slides[0].group_selections[0].group_id",
		},
		{
			name: "group selected twice",
			mutate: func(t *Template) {
				t.Slides[0].GroupSelections = append(t.Slides[0].GroupSelections, t.Slides[0].GroupSelections[0])
			},
			wantField: "slides[0].group_selections[1].group_id",
		},
		{
			name:      "empty product list",
			mutate:    func(t *Template) { t.Slides[0].GroupSelections[0].ProductIDs = nil },
			wantField: "slides[0].group_selections[0].product_ids",
		},
		{
			name: "duplicate product id",
			mutate: func(t *Template) {
				t.Slides[0].GroupSelections[0].ProductIDs = []string{"pils", "pils"}
			},
			wantField: "slides[0].group_selections[0].product_ids",
		},
		{
			name:      "min font too small",
			mutate:    func(t *Template) { t.Fonts.MinFontSize = 8 },
			wantField: "fonts.min_font_size",
		},
		{
			name:      "max font too large",
			mutate:    func(t *Template) { t.Fonts.MaxFontSize = 96 },
			wantField: "fonts.max_font_size",
		},
		{
			name: "min not below max",
			mutate: func(t *Template) {
				t.Fonts.MinFontSize = 40
				t.Fonts.MaxFontSize = 40
			},
			wantField: "fonts.min_font_size",
		},
		{
			name: "manual mode without size",
			mutate: func(t *Template) {
				t.Fonts.AutoScale = false
				t.Fonts.ManualFontSize = 0
			},
			wantField: "fonts.manual_font_size",
		},
		{
			name: "non-positive density threshold",
			mutate: func(t *Template) {
				t.Columns.Auto.DensityThreshold = floatPtr(-0.5)
			},
			wantField: "columns.auto.density_threshold",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl := validTemplate()
			tt.mutate(tpl)

			findings := Validate(tpl)
			if len(findings) == 0 {
				t.Fatal("Validate() returned no findings")
			}
			if !hasFinding(findings, tt.wantField) {
				t.Errorf("findings %v missing field %q", findingFields(findings), tt.wantField)
			}
		})
	}
}

func TestValidateCollectsAllFindings(t *testing.T) {
	tpl := validTemplate()
	tpl.Slides[0].BackgroundProductID = ""
	tpl.Fonts.MinFontSize = 4

	findings := Validate(tpl)
	if len(findings) < 2 {
		t.Errorf("Validate() = %d findings, want at least 2: %v", len(findings), findingFields(findings))
	}
}

func TestFieldErrorString(t *testing.T) {
	e := FieldError{Field: "slides[0].id", Message: "required"}
	if got := e.String(); got != "slides[0].id: required" {
		t.Errorf("String() = %q", got)
	}
}

func validationCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Groups: []catalog.Group{
			{
				ID:   "draft",
				Name: "Draft Beer",
				Products: []catalog.Product{
					{ID: "pils", Name: "Pilsner", Price: decimal.RequireFromString("4.20")},
					{ID: "ipa", Name: "IPA", Price: decimal.RequireFromString("5.50")},
				},
			},
		},
	}
}

func TestValidateWithCatalogOK(t *testing.T) {
	findings := ValidateWithCatalog(validTemplate(), validationCatalog())
	if len(findings) != 0 {
		t.Errorf("ValidateWithCatalog() = %v, want no findings", findingFields(findings))
	}
}

func TestValidateWithCatalog(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Template, *catalog.Catalog)
		wantField string
		wantIn    string
	}{
		{
			name: "unknown group",
			mutate: func(t *Template, c *catalog.Catalog) {
				t.Slides[0].GroupSelections[0].GroupID = "cocktails"
			},
			wantField: "slides[0].group_selections[0].group_id",
			wantIn:    "cocktails",
		},
		{
			name: "unknown product in group",
			mutate: func(t *Template, c *catalog.Catalog) {
				t.Slides[0].GroupSelections[0].ProductIDs = []string{"pils", "stout"}
			},
			wantField: "slides[0].group_selections[0].product_ids",
			wantIn:    "stout",
		},
		{
			name: "unknown background product",
			mutate: func(t *Template, c *catalog.Catalog) {
				t.Slides[0].BackgroundProductID = "ghost"
			},
			wantField: "slides[0].background_product_id",
			wantIn:    "ghost",
		},
		{
			name: "duplicate catalog group id",
			mutate: func(t *Template, c *catalog.Catalog) {
				c.Groups = append(c.Groups, catalog.Group{ID: "draft", Name: "Copy"})
			},
			wantField: "catalog.groups[1].id",
			wantIn:    "draft",
		},
		{
			name: "duplicate catalog product id",
			mutate: func(t *Template, c *catalog.Catalog) {
				c.Groups[0].Products = append(c.Groups[0].Products, catalog.Product{ID: "pils", Name: "Copy"})
			},
			wantField: "catalog.groups[0].products[2].id",
			wantIn:    "pils",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl := validTemplate()
			cat := validationCatalog()
			tt.mutate(tpl, cat)

			findings := ValidateWithCatalog(tpl, cat)
			if len(findings) == 0 {
				t.Fatal("ValidateWithCatalog() returned no findings")
			}

			found := false
			for _, f := range findings {
				if f.Field == tt.wantField && strings.Contains(f.Message, tt.wantIn) {
					found = true
				}
			}
			if !found {
				t.Errorf("findings %v missing %q mentioning %q", findingFields(findings), tt.wantField, tt.wantIn)
			}
		})
	}
}
