package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"statement-importer/internal/models"
)

func newImportCommand(opts *rootOptions) *cobra.Command {
	var accountID string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a statement CSV into an account",
		Long: "Import a statement CSV into an account.\n\n" +
			"With --dry-run the file is parsed and classified but nothing is written.\n" +
			"Use - to read the statement from stdin.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(accountID)
			if err != nil {
				return fmt.Errorf("invalid --account %q: %w", accountID, err)
			}

			content, fileName, err := readStatement(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			a, err := opts.openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			if dryRun {
				preview, err := a.imports.Preview(cmd.Context(), id, fileName, content)
				if err != nil {
					return fmt.Errorf("previewing %s: %w", fileName, err)
				}
				return writePreview(out, preview)
			}

			result, err := a.imports.Import(cmd.Context(), id, fileName, content)
			if err != nil {
				return fmt.Errorf("importing %s: %w", fileName, err)
			}
			return writeResult(out, result)
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "target account id (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "preview the import without writing")

	return cmd
}

func readStatement(stdin io.Reader, path string) ([]byte, string, error) {
	if path == "-" {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return nil, "", fmt.Errorf("reading stdin: %w", err)
		}
		return content, "stdin.csv", nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading statement: %w", err)
	}
	return content, filepath.Base(path), nil
}

func writePreview(w io.Writer, preview *models.ImportPreview) error {
	fmt.Fprintf(w, "%s: schema %s, %d rows, %d history entries\n\n",
		preview.FileName, preview.Schema, len(preview.Candidates), preview.HistorySize)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ROW\tDATE\tDESCRIPTION\tKIND\tAMOUNT\tCATEGORY\tMETHOD\tTRANSFER")
	for i, c := range preview.Candidates {
		method := ""
		if i < len(preview.Resolutions) {
			method = preview.Resolutions[i].Method
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.RowNumber,
			c.DateString(),
			c.Description,
			c.Kind,
			c.Amount.StringFixed(2),
			c.CategoryLabel,
			method,
			c.Transfer,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	writeDiagnostics(w, preview.Diagnostics)
	return nil
}

func writeResult(w io.Writer, result *models.ImportResult) error {
	fmt.Fprintf(w, "%s\n", result.Message())
	fmt.Fprintf(w, "batch %s: created=%d skipped=%d projected=%d projected_skipped=%d failed=%d\n",
		result.BatchID, result.Created, result.Skipped, result.Projected, result.ProjectedSkipped, result.Failed)

	if len(result.PossibleDuplicates) > 0 {
		fmt.Fprintln(w, "\npossible duplicates:")
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, d := range result.PossibleDuplicates {
			fmt.Fprintf(tw, "  row %d\t%s\t~ %s\t(distance %d)\n", d.Row, d.Description, d.ExistingDescription, d.Distance)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	writeDiagnostics(w, result.Diagnostics)
	return nil
}

func writeDiagnostics(w io.Writer, diagnostics []models.RowDiagnostic) {
	if len(diagnostics) == 0 {
		return
	}
	fmt.Fprintln(w, "\ndropped rows:")
	for _, d := range diagnostics {
		fmt.Fprintf(w, "  row %d: %s (%s)\n", d.Row, d.Message, d.Reason)
	}
}
