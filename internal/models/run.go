package models

import (
	"database/sql"
	"time"
)

// Run is the database row of the etl_runs table.
type Run struct {
	RunID         string         `json:"runID"`         // Primary Key (UUID)
	StartedAt     time.Time      `json:"startedAt"`
	FinishedAt    sql.NullTime   `json:"finishedAt"`
	Status        string         `json:"status"`
	RowsExtracted int            `json:"rowsExtracted"`
	RowsLoaded    int            `json:"rowsLoaded"`
	ErrorMessage  sql.NullString `json:"errorMessage"`
}
