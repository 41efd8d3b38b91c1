package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/stamptrail/stampbook/internal/grid"
	"github.com/stamptrail/stampbook/internal/model"
)

var uploadCmd = &cobra.Command{
	Use:   "upload [file]",
	Short: "Upload a passport page for extraction",
	Long: `Upload a passport-page scan and print the extracted travel records.

The extracted rows are printed as a table. Pass --save to persist them
immediately; for corrections, launch the interactive TUI instead.

Examples:
  stampbook upload page1.jpg
  stampbook upload page1.jpg --save`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

var uploadSave bool

func init() {
	uploadCmd.Flags().BoolVar(&uploadSave, "save", false, "Persist the extracted rows immediately")
}

func runUpload(cmd *cobra.Command, args []string) error {
	_, sess, client, err := bootstrap()
	if err != nil {
		return err
	}

	path := strings.TrimSpace(args[0])
	if path == "" {
		return grid.ErrNoFile
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	fmt.Println("Uploading...")
	rows, err := client.Upload(context.Background(), path, f)
	if err != nil {
		return err
	}

	g := grid.New()
	g.LoadOCR(rows)

	printGrid(g)

	if !uploadSave {
		return nil
	}

	if !sess.IsAuthenticated() {
		return fmt.Errorf("login required to save: run 'stampbook auth login' first")
	}

	payload, err := g.BeginSave()
	if err != nil {
		return err
	}
	defer g.EndSave()

	if err := client.SaveEntries(context.Background(), payload); err != nil {
		return err
	}

	fmt.Printf("Saved %d entries.\n", len(payload))
	return nil
}

func printGrid(g *grid.Grid) {
	fmt.Printf("\n%d extracted entries\n", g.Len())
	fmt.Println(strings.Repeat("─", 96))

	for i, row := range g.Rows() {
		printEntry(row, !g.RowValid(i))
	}

	if !g.Valid() {
		fmt.Println("\nSome rows have invalid dates (marked !). Fix them in the TUI before saving.")
	}
	fmt.Println()
}

func printEntry(e model.Entry, flagged bool) {
	mark := " "
	if flagged {
		mark = "!"
	}

	conf := ""
	if e.Confidence != nil {
		conf = fmt.Sprintf("%.0f%%", *e.Confidence*100)
	}

	country := e.Country
	if len(country) > 14 {
		country = country[:11] + "..."
	}
	airport := e.AirportName
	if len(airport) > 32 {
		airport = airport[:29] + "..."
	}

	fmt.Printf("  %s %3s  %-14s  %-32s  %-9s  %-10s  %s\n",
		mark, e.SequenceNumber, country, airport, e.ArrivalDeparture, e.Date, conf)
}
