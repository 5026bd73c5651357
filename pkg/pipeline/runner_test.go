package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/askoeller/menuboard/pkg/board"
	"github.com/askoeller/menuboard/pkg/cache"
	"github.com/askoeller/menuboard/pkg/errors"
)

func TestRunnerExecute(t *testing.T) {
	runner := NewRunner(nil, nil, testLogger())
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{
		Template: testTemplateDoc(),
		Catalog:  testCatalogDoc(),
		Formats:  []string{FormatJSON, FormatSVG, FormatText},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.Slide.ID != "main" {
		t.Errorf("Default slide: got %q, want main", result.Slide.ID)
	}
	if result.Layout.Columns != 2 {
		t.Errorf("Columns: got %d, want 2", result.Layout.Columns)
	}
	if result.Layout.FontSizePx < 16 || result.Layout.FontSizePx > 40 {
		t.Errorf("Font size %d outside template bounds 16..40", result.Layout.FontSizePx)
	}
	if result.Stats.GroupCount != 2 || result.Stats.ProductCount != 5 {
		t.Errorf("Stats: got %d groups / %d products, want 2/5",
			result.Stats.GroupCount, result.Stats.ProductCount)
	}
	if result.ContentHash == "" {
		t.Error("ContentHash should be set")
	}

	for _, format := range []string{FormatJSON, FormatSVG, FormatText} {
		if len(result.Artifacts[format]) == 0 {
			t.Errorf("Missing %s artifact", format)
		}
	}
	if result.CacheInfo.LayoutHit || result.CacheInfo.RenderHit {
		t.Error("First run should not hit the cache")
	}
}

func TestRunnerExecuteSlideSelection(t *testing.T) {
	runner := NewRunner(nil, nil, testLogger())
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{
		Template: testTemplateDoc(),
		Catalog:  testCatalogDoc(),
		SlideID:  "drinks",
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Slide.ID != "drinks" {
		t.Errorf("Slide: got %q, want drinks", result.Slide.ID)
	}
	if result.Stats.GroupCount != 1 || result.Stats.ProductCount != 2 {
		t.Errorf("Stats: got %d/%d, want 1/2", result.Stats.GroupCount, result.Stats.ProductCount)
	}
}

func TestRunnerExecuteSlideNotFound(t *testing.T) {
	runner := NewRunner(nil, nil, testLogger())
	defer runner.Close()

	_, err := runner.Execute(context.Background(), Options{
		Template: testTemplateDoc(),
		Catalog:  testCatalogDoc(),
		SlideID:  "missing",
	})
	if !errors.Is(err, errors.ErrCodeSlideNotFound) {
		t.Errorf("Expected SLIDE_NOT_FOUND, got %v", err)
	}
}

func TestRunnerExecuteInvalidTemplate(t *testing.T) {
	tpl := testTemplateDoc()
	tpl.Slides[0].GroupSelections[0].GroupID = "unknown"

	runner := NewRunner(nil, nil, testLogger())
	defer runner.Close()

	_, err := runner.Execute(context.Background(), Options{
		Template: tpl,
		Catalog:  testCatalogDoc(),
	})
	if !errors.Is(err, errors.ErrCodeInvalidTemplate) {
		t.Errorf("Expected INVALID_TEMPLATE, got %v", err)
	}
}

func TestRunnerExecuteCaching(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache failed: %v", err)
	}
	runner := NewRunner(fc, nil, testLogger())
	defer runner.Close()

	opts := Options{
		Template: testTemplateDoc(),
		Catalog:  testCatalogDoc(),
		Formats:  []string{FormatJSON, FormatSVG},
	}

	first, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("First execute failed: %v", err)
	}
	if first.CacheInfo.LayoutHit || first.CacheInfo.RenderHit {
		t.Error("First run should miss the cache")
	}

	second, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Second execute failed: %v", err)
	}
	if !second.CacheInfo.LayoutHit {
		t.Error("Second run should hit the layout cache")
	}
	if !second.CacheInfo.RenderHit {
		t.Error("Second run should hit the artifact cache")
	}
	if second.Layout != first.Layout {
		t.Errorf("Cached layout differs: %+v vs %+v", second.Layout, first.Layout)
	}
	if !bytes.Equal(second.Artifacts[FormatSVG], first.Artifacts[FormatSVG]) {
		t.Error("Cached SVG artifact differs from the rendered one")
	}

	// Refresh bypasses both caches.
	refreshOpts := opts
	refreshOpts.Refresh = true
	third, err := runner.Execute(context.Background(), refreshOpts)
	if err != nil {
		t.Fatalf("Refresh execute failed: %v", err)
	}
	if third.CacheInfo.LayoutHit || third.CacheInfo.RenderHit {
		t.Error("Refresh run should bypass the cache")
	}
}

func TestRunnerExecuteFromDisk(t *testing.T) {
	dir := t.TempDir()

	templatePath := filepath.Join(dir, "board.toml")
	templateTOML := `version = 1
type = "menu"
name = "Taproom Board"

[display]
currency = "EUR"

[fonts]
auto_scale = true
min_font_size = 16
max_font_size = 40

[[slides]]
id = "main"
background_product_id = "p1"

[[slides.group_selections]]
group_id = "g1"
product_ids = ["p1", "p2", "p3"]
display_order = 1
`
	if err := os.WriteFile(templatePath, []byte(templateTOML), 0o644); err != nil {
		t.Fatal(err)
	}

	catalogPath := filepath.Join(dir, "catalog.json")
	if err := testCatalogDoc().WriteFile(catalogPath); err != nil {
		t.Fatal(err)
	}

	runner := NewRunner(nil, nil, testLogger())
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{
		TemplatePath: templatePath,
		CatalogPath:  catalogPath,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Template.Name != "Taproom Board" {
		t.Errorf("Template name: got %q", result.Template.Name)
	}
	if result.Stats.ProductCount != 3 {
		t.Errorf("ProductCount: got %d, want 3", result.Stats.ProductCount)
	}
	if len(result.Artifacts[FormatJSON]) == 0 {
		t.Error("Missing default json artifact")
	}
}

func TestRunnerExecuteMissingFile(t *testing.T) {
	runner := NewRunner(nil, nil, testLogger())
	defer runner.Close()

	_, err := runner.Execute(context.Background(), Options{
		TemplatePath: filepath.Join(t.TempDir(), "absent.toml"),
		CatalogPath:  filepath.Join(t.TempDir(), "absent.json"),
	})
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Expected FILE_NOT_FOUND, got %v", err)
	}
}

func TestResolveSlide(t *testing.T) {
	tpl := testTemplateDoc()

	slide, err := ResolveSlide(tpl, "")
	if err != nil || slide.ID != "main" {
		t.Errorf("Empty ID should resolve first slide, got %q, %v", slide.ID, err)
	}

	slide, err = ResolveSlide(tpl, "drinks")
	if err != nil || slide.ID != "drinks" {
		t.Errorf("Named slide: got %q, %v", slide.ID, err)
	}

	if _, err := ResolveSlide(tpl, "missing"); !errors.Is(err, errors.ErrCodeSlideNotFound) {
		t.Errorf("Missing slide should fail with SLIDE_NOT_FOUND, got %v", err)
	}

	if _, err := ResolveSlide(&board.Template{}, ""); !errors.Is(err, errors.ErrCodeSlideNotFound) {
		t.Errorf("Empty template should fail with SLIDE_NOT_FOUND, got %v", err)
	}
}

func TestFindingsError(t *testing.T) {
	err := FindingsError([]board.FieldError{
		{Field: "slides[0].id", Message: "is required"},
		{Field: "fonts.min_font_size", Message: "must be at least 12"},
	})
	if !errors.Is(err, errors.ErrCodeInvalidTemplate) {
		t.Errorf("Expected INVALID_TEMPLATE, got %v", err)
	}
	msg := err.Error()
	if !bytes.Contains([]byte(msg), []byte("slides[0].id")) {
		t.Errorf("Error should list finding fields, got %q", msg)
	}
}
