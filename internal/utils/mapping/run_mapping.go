package mapping

import (
	"database/sql"

	"github.com/SscSPs/banks_etl/internal/core/domain"
	"github.com/SscSPs/banks_etl/internal/models"
)

// ToModelRun converts a domain Run to a model Run. Times are stored in UTC.
func ToModelRun(d domain.Run) models.Run {
	m := models.Run{
		RunID:         d.RunID,
		StartedAt:     d.StartedAt.UTC(),
		Status:        string(d.Status),
		RowsExtracted: d.RowsExtracted,
		RowsLoaded:    d.RowsLoaded,
	}
	if !d.FinishedAt.IsZero() {
		m.FinishedAt = sql.NullTime{Time: d.FinishedAt.UTC(), Valid: true}
	}
	if d.Error != "" {
		m.ErrorMessage = sql.NullString{String: d.Error, Valid: true}
	}
	return m
}

// ToDomainRun converts a model Run to a domain Run
func ToDomainRun(m models.Run) domain.Run {
	d := domain.Run{
		RunID:         m.RunID,
		StartedAt:     m.StartedAt,
		Status:        domain.RunStatus(m.Status),
		RowsExtracted: m.RowsExtracted,
		RowsLoaded:    m.RowsLoaded,
		Error:         m.ErrorMessage.String,
	}
	if m.FinishedAt.Valid {
		d.FinishedAt = m.FinishedAt.Time
	}
	return d
}

// ToDomainRunSlice converts a slice of model Runs to a slice of domain Runs
func ToDomainRunSlice(ms []models.Run) []domain.Run {
	ds := make([]domain.Run, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRun(m)
	}
	return ds
}
