package organizer

import (
	"sort"
	"time"
)

// Outcome is the terminal state of one discovered file: placed or failed.
type Outcome struct {
	Name      string
	Category  string
	FinalPath string
	Reason    string
	Moved     bool
}

// Report summarizes one run for the caller: per-file outcomes plus the
// counts the final summary prints.
type Report struct {
	RunID    string
	Target   string
	DryRun   bool
	Started  time.Time
	Finished time.Time
	Outcomes []Outcome
	Skipped  int
}

// MovedCount returns the number of successfully placed files.
func (r *Report) MovedCount() int {
	count := 0
	for _, outcome := range r.Outcomes {
		if outcome.Moved {
			count++
		}
	}
	return count
}

// FailedCount returns the number of per-entry failures.
func (r *Report) FailedCount() int {
	return len(r.Outcomes) - r.MovedCount()
}

// Failures returns the failed outcomes in discovery order.
func (r *Report) Failures() []Outcome {
	var failed []Outcome
	for _, outcome := range r.Outcomes {
		if !outcome.Moved {
			failed = append(failed, outcome)
		}
	}
	return failed
}

// CategoryCount pairs a category folder with its move count.
type CategoryCount struct {
	Category string
	Count    int
}

// CategoryCounts returns moved-file counts grouped by category folder,
// sorted by name for stable output.
func (r *Report) CategoryCounts() []CategoryCount {
	counts := make(map[string]int)
	for _, outcome := range r.Outcomes {
		if outcome.Moved {
			counts[outcome.Category]++
		}
	}
	result := make([]CategoryCount, 0, len(counts))
	for category, count := range counts {
		result = append(result, CategoryCount{Category: category, Count: count})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Category < result[j].Category })
	return result
}
