package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pharmatool/internal/fileio"
)

var templateCmd = &cobra.Command{
	Use:   "template [path]",
	Short: "Generate the Excel template for bulk medicine uploads",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "Medicine_Upload_Template.xlsx"
		if len(args) == 1 {
			path = args[0]
		}
		if err := fileio.WriteTemplate(path); err != nil {
			return err
		}
		fmt.Printf("Excel template created: %s\n\n", path)
		fmt.Println("Columns:", strings.Join(fileio.TemplateColumns, ", "))
		fmt.Println("Dates use YYYY-MM-DD; price is a plain number; stock is a whole number.")
		fmt.Println("Fill it in, save as .xlsx and run: pharmatool import", path)
		return nil
	},
}

var importDryRun bool

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import medicines from an upload file (.xlsx, .xls or .csv)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		meds, rowErrs, err := fileio.ReadMedicines(args[0])
		if err != nil {
			return err
		}
		for _, re := range rowErrs {
			fmt.Println("skipped:", re.Error())
		}
		if len(meds) == 0 {
			return fmt.Errorf("no valid rows in %s", args[0])
		}

		if importDryRun {
			for _, m := range meds {
				fmt.Printf("ok: %s (%s) price=%.2f stock=%d\n", m.Name, m.Category, m.Price, m.Stock)
			}
			fmt.Printf("Dry run: %d rows valid, %d skipped, nothing written\n", len(meds), len(rowErrs))
			return nil
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		for _, m := range meds {
			if err := s.UpsertMedicine(ctx, m); err != nil {
				return err
			}
		}
		logger.Info().Int("imported", len(meds)).Int("skipped", len(rowErrs)).
			Str("file", args[0]).Msg("medicines imported")
		fmt.Printf("Imported %d medicines (%d rows skipped)\n", len(meds), len(rowErrs))
		return nil
	},
}

func init() {
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "validate the file without writing")
	rootCmd.AddCommand(templateCmd, importCmd)
}
