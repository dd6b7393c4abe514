package commands

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"statement-importer/internal/importer"
	"statement-importer/internal/models"
)

func newSampleCommand() *cobra.Command {
	var schema, start, output string
	var months int
	var seed int64

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write a synthetic statement CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			first := time.Now().AddDate(0, -months, 0)
			if start != "" {
				parsed, err := time.Parse(models.DateLayout, start)
				if err != nil {
					return fmt.Errorf("invalid --start %q: must be YYYY-MM-DD", start)
				}
				first = parsed
			}

			var buf bytes.Buffer
			rows, err := importer.NewGenerator(seed).Generate(&buf, schema, first, months)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}

			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d rows to %s\n", rows, output)
			return nil
		},
	}

	cmd.Flags().StringVar(&schema, "schema", importer.SchemaTitleAmount, "statement layout: title_amount or description_value")
	cmd.Flags().IntVar(&months, "months", 3, "months of activity")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().StringVar(&start, "start", "", "first month as YYYY-MM-DD (default: --months ago)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}
