package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/stamptrail/stampbook/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export [out.xlsx]",
	Short: "Export the travel history as a spreadsheet",
	Long: `Export the saved travel history to an xlsx file.

Examples:
  stampbook export passport_history.xlsx`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var exportOffline bool

func init() {
	exportCmd.Flags().BoolVar(&exportOffline, "offline", false, "Use the local cache without contacting the backend")
}

func runExport(cmd *cobra.Command, args []string) error {
	out := "passport_history.xlsx"
	if len(args) > 0 {
		out = args[0]
	}

	view, skipped, _, err := loadHistory(exportOffline)
	if err != nil {
		return err
	}

	for _, date := range skipped {
		fmt.Printf("Entry for date %s already exists and was skipped.\n", date)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}

	if err := export.WriteXLSX(f, view.Entries()); err != nil {
		f.Close()
		os.Remove(out)
		if errors.Is(err, export.ErrNothingToExport) {
			fmt.Println("No data to export.")
			return nil
		}
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Printf("Exported %d entries to %s\n", view.Len(), out)
	return nil
}
