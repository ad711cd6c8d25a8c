package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/banks_etl/internal/apperrors"
	"github.com/SscSPs/banks_etl/internal/core/domain"
	portsrepo "github.com/SscSPs/banks_etl/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/banks_etl/internal/core/ports/services"
	"github.com/google/uuid"
)

type runJournalService struct {
	BaseService
	repo portsrepo.RunRepositoryFacade // nil when journaling is off
	now  func() time.Time
}

// NewRunJournalService creates a run journal backed by repo. A nil repo still
// hands out run IDs but records nothing.
func NewRunJournalService(repo portsrepo.RunRepositoryFacade) portssvc.RunJournalSvc {
	return &runJournalService{repo: repo, now: time.Now}
}

// Start creates a running entry with a fresh ID.
func (s *runJournalService) Start(ctx context.Context) domain.Run {
	run := domain.Run{
		RunID:     uuid.NewString(),
		StartedAt: s.now().UTC(),
		Status:    domain.RunRunning,
	}
	s.save(ctx, run)
	return run
}

// Finish stamps the outcome of run and records it.
func (s *runJournalService) Finish(ctx context.Context, run domain.Run, err error) domain.Run {
	run.Finish(s.now().UTC(), err)
	s.save(ctx, run)
	return run
}

// save never fails the caller; the journal is advisory.
func (s *runJournalService) save(ctx context.Context, run domain.Run) {
	if s.repo == nil {
		return
	}
	if err := s.repo.SaveRun(ctx, run); err != nil {
		s.LogWarn(ctx, err, "Failed to record run in journal",
			slog.String("run_id", run.RunID), slog.String("status", string(run.Status)))
	}
}

// Recent lists the latest runs, newest first.
func (s *runJournalService) Recent(ctx context.Context, limit int) ([]domain.Run, error) {
	if s.repo == nil {
		return nil, fmt.Errorf("%w: run journal is disabled", apperrors.ErrNotFound)
	}
	return s.repo.ListRuns(ctx, limit)
}
