package repositories

import (
	"context"

	"github.com/SscSPs/banks_etl/internal/core/domain"
)

// RunReader defines read operations for the run journal
type RunReader interface {
	// ListRuns returns the most recent runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]domain.Run, error)
}

// RunWriter defines write operations for the run journal
type RunWriter interface {
	// SaveRun inserts or updates a run entry.
	SaveRun(ctx context.Context, run domain.Run) error
}

// RunRepositoryFacade combines all run journal repository interfaces
type RunRepositoryFacade interface {
	RunReader
	RunWriter
}
