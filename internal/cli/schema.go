package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/askoeller/menuboard/pkg/board"
)

// schemaCommand creates the schema command for printing the template JSON Schema.
func (c *CLI) schemaCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the board template JSON Schema",
		Long: `Print the board template JSON Schema.

The schema describes the template document accepted by every other command
and by the HTTP API. Point editors or CI validators at it to check board
files before they reach a screen.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := board.SchemaJSON()
			if err != nil {
				return fmt.Errorf("generate schema: %w", err)
			}

			out, err := openOutput(output)
			if err != nil {
				return err
			}
			defer out.Close()

			if _, err := out.Write(data); err != nil {
				return err
			}
			_, err = fmt.Fprintln(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}
