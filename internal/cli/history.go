package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/stamptrail/stampbook/internal/cache"
	"github.com/stamptrail/stampbook/internal/history"
	"github.com/stamptrail/stampbook/internal/logger"
	"github.com/stamptrail/stampbook/internal/model"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show your saved travel history",
	Long: `Fetch and print the saved travel history, duplicates removed and sorted
by date. Falls back to the local cache when the backend is unreachable.

Examples:
  stampbook history
  stampbook history --desc
  stampbook history --offline`,
	RunE: runHistory,
}

var (
	historyDesc    bool
	historyOffline bool
)

func init() {
	historyCmd.Flags().BoolVar(&historyDesc, "desc", false, "Sort newest first")
	historyCmd.Flags().BoolVar(&historyOffline, "offline", false, "Use the local cache without contacting the backend")
}

func runHistory(cmd *cobra.Command, args []string) error {
	view, skipped, fromCache, err := loadHistory(historyOffline)
	if err != nil {
		return err
	}

	for _, date := range skipped {
		fmt.Printf("Entry for date %s already exists and was skipped.\n", date)
	}

	if historyDesc {
		view.Sort(history.Descending)
	}

	entries := view.Entries()
	if len(entries) == 0 {
		fmt.Println("No travel history yet. Upload a passport page with: stampbook upload <file>")
		return nil
	}

	if fromCache {
		fmt.Println("(offline: showing cached history)")
	}
	printHistory(entries)
	return nil
}

// loadHistory fetches the history, preferring the backend and falling back
// to the sqlite cache. A successful fetch refreshes the cache. offline skips
// the backend entirely.
func loadHistory(offline bool) (*history.View, []string, bool, error) {
	_, sess, client, err := bootstrap()
	if err != nil {
		return nil, nil, false, err
	}

	var entries []model.Entry
	fromCache := false

	if offline {
		entries, err = loadCached()
		if err != nil {
			return nil, nil, false, err
		}
		fromCache = true
	} else {
		if !sess.IsAuthenticated() {
			return nil, nil, false, fmt.Errorf("login required: run 'stampbook auth login' first")
		}
		entries, err = client.History(context.Background())
		if err != nil {
			logger.Warn("History fetch failed, trying cache", logger.F("error", err))
			cached, cacheErr := loadCached()
			if cacheErr != nil {
				return nil, nil, false, err
			}
			entries = cached
			fromCache = true
		} else {
			refreshCache(entries)
		}
	}

	view := &history.View{}
	skipped := view.Load(entries)
	return view, skipped, fromCache, nil
}

func loadCached() ([]model.Entry, error) {
	db, err := cache.OpenDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to open history cache: %w", err)
	}
	defer db.Close()
	return db.Load()
}

func refreshCache(entries []model.Entry) {
	db, err := cache.OpenDefault()
	if err != nil {
		logger.Warn("Failed to open history cache", logger.F("error", err))
		return
	}
	defer db.Close()

	if err := db.Replace(entries); err != nil {
		logger.Warn("Failed to refresh history cache", logger.F("error", err))
	}
}

func printHistory(entries []model.Entry) {
	fmt.Printf("\nTravel history (%d entries)\n", len(entries))
	fmt.Println(strings.Repeat("─", 96))

	for _, e := range entries {
		printEntry(e, false)
	}
	fmt.Println()
}
