package domain

import "time"

// RunStatus is the lifecycle state of a pipeline run.
type RunStatus string

const (
	RunRunning   RunStatus = "running"
	RunSucceeded RunStatus = "success"
	RunFailed    RunStatus = "failed"
)

// Run is one entry of the run journal.
type Run struct {
	RunID         string    `json:"runID"` // Primary Key (UUID)
	StartedAt     time.Time `json:"startedAt"`
	FinishedAt    time.Time `json:"finishedAt"` // Zero while running
	Status        RunStatus `json:"status"`
	RowsExtracted int       `json:"rowsExtracted"`
	RowsLoaded    int       `json:"rowsLoaded"`
	Error         string    `json:"error"`
}

// Finish marks the run as completed at now, failed if err is non-nil.
func (r *Run) Finish(now time.Time, err error) {
	r.FinishedAt = now
	if err != nil {
		r.Status = RunFailed
		r.Error = err.Error()
		return
	}
	r.Status = RunSucceeded
	r.Error = ""
}

// Duration returns how long the run took, or zero if it has not finished.
func (r Run) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
