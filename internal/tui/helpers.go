package tui

import "fmt"

// truncate shortens a string to max length with ellipsis
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// pad left-aligns s into a fixed-width cell
func pad(s string, width int) string {
	return fmt.Sprintf("%-*s", width, truncate(s, width))
}
