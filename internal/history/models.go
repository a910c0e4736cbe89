package history

import "time"

// Move statuses recorded for each processed file.
const (
	StatusMoved  = "moved"
	StatusFailed = "failed"
)

// Run summarizes one organizing run.
type Run struct {
	ID       string
	Target   string
	Started  time.Time
	Finished time.Time
	Moved    int
	Failed   int
	Skipped  int
}

// Move records the outcome for one file within a run.
type Move struct {
	ID         int64
	RunID      string
	SourceName string
	Category   string
	FinalPath  string
	Status     string
	Reason     string
	CreatedAt  time.Time
}
