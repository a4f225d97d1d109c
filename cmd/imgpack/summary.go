package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"imgpack/internal/pipeline"
)

const summaryDurationStep = 10 * time.Millisecond

// printSummary reports what the run produced. Terminals get a table; pipes
// get plain lines.
func printSummary(out io.Writer, summary *pipeline.Summary) {
	fmt.Fprintf(out, "Gallery written to %s\n", summary.OutputDir)
	if summary.ArchivePath != "" {
		fmt.Fprintf(out, "Archive written to %s\n", summary.ArchivePath)
	}

	if isTerminal(out) {
		fmt.Fprintln(out, renderTable(
			[]string{"Tab", "Files"},
			tabRows(summary),
			1,
		))
	} else {
		for _, tab := range summary.Tabs {
			fmt.Fprintf(out, "tab %s: %d files\n", tab.Name, tab.Count)
		}
	}

	fmt.Fprintf(out, "Scanned %d files, copied %d", summary.Scanned, summary.Copied)
	if summary.Excluded > 0 {
		fmt.Fprintf(out, ", excluded %d non-media", summary.Excluded)
	}
	if summary.Compressed > 0 {
		fmt.Fprintf(out, ", compressed %d (saved %s)", summary.Compressed, formatBytes(summary.SavedBytes))
	}
	fmt.Fprintf(out, " in %s\n", summary.Elapsed.Round(summaryDurationStep))

	for _, ext := range summary.Extensions {
		fmt.Fprintf(out, "  .%s: %d\n", ext.Extension, ext.Count)
	}

	if len(summary.Skipped) > 0 {
		fmt.Fprintf(out, "Skipped %d files:\n", len(summary.Skipped))
		for _, skipped := range summary.Skipped {
			fmt.Fprintf(out, "  %s (%s): %s\n", skipped.Path, skipped.Tab, skipped.Reason)
		}
	}
}

func tabRows(summary *pipeline.Summary) [][]string {
	rows := make([][]string, 0, len(summary.Tabs))
	for _, tab := range summary.Tabs {
		rows = append(rows, []string{tab.Name, strconv.Itoa(tab.Count)})
	}
	return rows
}

func formatBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
