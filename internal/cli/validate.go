package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/askoeller/menuboard/pkg/board"
	"github.com/askoeller/menuboard/pkg/catalog"
)

// validateCommand creates the validate command for checking board templates.
func (c *CLI) validateCommand() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "validate [board file]",
		Short: "Validate a board template",
		Long: `Validate a board template.

Checks the document version, type, font bounds, and slide structure. When a
catalog is supplied, group and product references are checked against it as
well. Exits non-zero when the template has findings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(args[0], catalogPath)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "product catalog file to check references against")

	return cmd
}

// runValidate loads the template, runs the checks, and prints each finding.
func (c *CLI) runValidate(input, catalogPath string) error {
	t, err := board.DecodeFile(input)
	if err != nil {
		return fmt.Errorf("load template %s: %w", input, err)
	}

	var findings []board.FieldError
	if catalogPath == "" {
		findings = board.Validate(t)
	} else {
		cat, err := catalog.ReadFile(catalogPath)
		if err != nil {
			return fmt.Errorf("load catalog %s: %w", catalogPath, err)
		}
		findings = board.ValidateWithCatalog(t, cat)
	}

	if len(findings) > 0 {
		printError("Template has %d finding(s)", len(findings))
		for _, f := range findings {
			printDetail("%s", f.String())
		}
		return fmt.Errorf("%d validation finding(s)", len(findings))
	}

	printSuccess("Template is valid")
	if t.Name != "" {
		printKeyValue("Name", t.Name)
	}
	printKeyValue("Slides", strconv.Itoa(len(t.Slides)))
	if catalogPath != "" {
		printKeyValue("Catalog", catalogPath)
	}

	return nil
}
