package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"downsort/internal/organizer"
)

// fullRunIDLength is the length of a canonical run id (UUID string form).
const fullRunIDLength = 36

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatWhen(ts time.Time) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Local().Format("2006-01-02 15:04:05")
}

func renderReport(w io.Writer, report *organizer.Report) {
	fmt.Fprintf(w, "Organized %s: %d moved, %d failed, %d skipped (run %s)\n",
		report.Target, report.MovedCount(), report.FailedCount(), report.Skipped, shortID(report.RunID))

	counts := report.CategoryCounts()
	if len(counts) > 0 {
		headers := []string{"Category", "Moved"}
		rows := make([][]string, 0, len(counts))
		for _, count := range counts {
			rows = append(rows, []string{count.Category, strconv.Itoa(count.Count)})
		}
		writeTable(w, headers, rows, []columnAlignment{alignLeft, alignRight})
	}

	failures := report.Failures()
	if len(failures) > 0 {
		fmt.Fprintln(w, "Failures:")
		for _, failure := range failures {
			fmt.Fprintf(w, "  %s: %s\n", failure.Name, failure.Reason)
		}
	}
}

func renderPlan(w io.Writer, report *organizer.Report) {
	if len(report.Outcomes) == 0 {
		fmt.Fprintf(w, "Nothing to move in %s (%d entries skipped).\n", report.Target, report.Skipped)
		return
	}

	headers := []string{"File", "Destination"}
	rows := make([][]string, 0, len(report.Outcomes))
	for _, outcome := range report.Outcomes {
		rows = append(rows, []string{outcome.Name, outcome.Category})
	}
	writeTable(w, headers, rows, nil)
	fmt.Fprintf(w, "%d files would be moved, %d entries skipped.\n", len(report.Outcomes), report.Skipped)
}
