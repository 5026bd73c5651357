package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/askoeller/menuboard/pkg/catalog"
)

// starterTemplate is the scaffolded board document. The slide ID is filled
// in with a fresh UUID.
const starterTemplate = `version = 1
type = "menu"
name = "Taproom Board"

[display]
screen_width = 1920
screen_height = 1080
currency = "EUR"

[fonts]
auto_scale = true
min_font_size = 16
max_font_size = 40

[columns.auto]
prevent_empty_columns = true

[[slides]]
id = %q
name = "Main Menu"
background_product_id = "pilsner"

[[slides.group_selections]]
group_id = "draft-beer"
product_ids = ["pilsner", "helles", "weizen"]
display_order = 1

[[slides.group_selections]]
group_id = "soft-drinks"
product_ids = ["cola", "spezi"]
display_order = 2
`

// starterCatalog returns the product catalog matching starterTemplate.
func starterCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Name:     "Taproom",
		Currency: "EUR",
		Groups: []catalog.Group{
			{
				ID:   "draft-beer",
				Name: "Draft Beer",
				Products: []catalog.Product{
					{ID: "pilsner", Name: "Pilsner", Price: decimal.RequireFromString("4.20"), Unit: "0.4l"},
					{ID: "helles", Name: "Helles", Price: decimal.RequireFromString("4.40"), Unit: "0.5l"},
					{ID: "weizen", Name: "Weizen", Price: decimal.RequireFromString("4.60"), Unit: "0.5l"},
				},
			},
			{
				ID:   "soft-drinks",
				Name: "Soft Drinks",
				Products: []catalog.Product{
					{ID: "cola", Name: "Cola", Price: decimal.RequireFromString("3.20"), Unit: "0.33l"},
					{ID: "spezi", Name: "Spezi", Price: decimal.RequireFromString("3.40"), Unit: "0.33l"},
				},
			},
		},
	}
}

// initCommand creates the init command for scaffolding a starter board.
func (c *CLI) initCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init [dir]",
		Short: "Scaffold a starter board template and catalog",
		Long: `Scaffold a starter board template and catalog.

Writes a board.toml and a matching catalog.json into the given directory
(default: current directory). Existing files are never overwritten.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return c.runInit(dir)
		},
	}
}

// runInit writes board.toml and catalog.json into dir.
func (c *CLI) runInit(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	boardPath := filepath.Join(dir, "board.toml")
	catalogPath := filepath.Join(dir, "catalog.json")
	for _, path := range []string{boardPath, catalogPath} {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists, refusing to overwrite", path)
		}
	}

	doc := fmt.Sprintf(starterTemplate, uuid.NewString())
	if err := os.WriteFile(boardPath, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", boardPath, err)
	}
	if err := starterCatalog().WriteFile(catalogPath); err != nil {
		return fmt.Errorf("write %s: %w", catalogPath, err)
	}

	printSuccess("Scaffolded starter board")
	printFile(boardPath)
	printFile(catalogPath)
	printNewline()
	printNextStep("Preview", fmt.Sprintf("menuboard preview %s --catalog %s", boardPath, catalogPath))

	return nil
}
