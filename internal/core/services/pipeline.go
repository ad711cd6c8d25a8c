package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/banks_etl/internal/apperrors"
	"github.com/SscSPs/banks_etl/internal/core/domain"
	portssvc "github.com/SscSPs/banks_etl/internal/core/ports/services"
	"github.com/SscSPs/banks_etl/internal/middleware"
)

// Stage names used in progress log lines.
const (
	StageExtract   = "extract"
	StageTransform = "transform"
	StageRate      = "rate"
	StageLoadCSV   = "load_to_csv"
	StageLoadDB    = "load_to_db"
	StageRunQuery  = "run_query"
)

// PipelineOptions locate the source and destinations of a run.
type PipelineOptions struct {
	SourceURL string
	CSVPath   string
	TableName string
}

// Pipeline sequences the ETL stages.
// Extract and database load failures abort the run; transform, CSV and query
// failures are logged and the run goes on.
type Pipeline struct {
	services *portssvc.ServiceContainer
	opts     PipelineOptions
	logger   *slog.Logger
}

// NewPipeline creates a Pipeline logging through logger.
func NewPipeline(services *portssvc.ServiceContainer, opts PipelineOptions, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{services: services, opts: opts, logger: logger}
}

// QueryStatements returns the read-back queries issued after loading table.
func QueryStatements(table string) []string {
	queries := make([]string, 0, len(domain.TargetCurrencies))
	for _, c := range domain.TargetCurrencies {
		queries = append(queries, fmt.Sprintf("SELECT %s, %s FROM %s", domain.NameColumn, domain.MarketCapColumn(c), table))
	}
	return queries
}

// Run executes one full pass and returns its journal entry.
func (p *Pipeline) Run(ctx context.Context) (domain.Run, error) {
	run := p.services.Runs.Start(ctx)
	ctx, logger := middleware.WithRunLogger(ctx, p.logger, run.RunID)

	logger.Info("Beginning the ETL process...")
	err := p.execute(ctx, &run)
	if err != nil {
		logger.Error("ETL process aborted.", slog.String("error", err.Error()))
	} else {
		logger.Info("Completed the ETL process.")
	}

	run = p.services.Runs.Finish(ctx, run, err)
	return run, err
}

func (p *Pipeline) execute(ctx context.Context, run *domain.Run) error {
	dataset, err := middleware.StageValue(ctx, StageExtract, func(ctx context.Context) (*domain.Dataset, error) {
		return p.services.Extract.Extract(ctx, p.opts.SourceURL, []string{domain.NameColumn, domain.MarketCapUSDColumn})
	})
	if err != nil {
		return err
	}
	run.RowsExtracted = dataset.Len()

	transformed, err := middleware.StageValue(ctx, StageTransform, func(ctx context.Context) (*domain.Dataset, error) {
		return p.services.Transform.Transform(ctx, dataset)
	})
	if err != nil && (transformed == nil || !errors.Is(err, apperrors.ErrDegraded)) {
		return err
	}
	dataset = transformed

	// LoadToCSV reports its own write failures and only returns the rest.
	_ = middleware.Stage(ctx, StageLoadCSV, func(ctx context.Context) error {
		return p.services.Load.LoadToCSV(ctx, dataset, p.opts.CSVPath)
	})

	if err := middleware.Stage(ctx, StageLoadDB, func(ctx context.Context) error {
		return p.services.Load.LoadToDB(ctx, dataset, p.opts.TableName)
	}); err != nil {
		return err
	}
	run.RowsLoaded = dataset.Len()

	for _, query := range QueryStatements(p.opts.TableName) {
		_ = middleware.Stage(ctx, StageRunQuery, func(ctx context.Context) error {
			// A failed query is logged by the query service and the next one still runs.
			_, _ = p.services.Query.RunQuery(ctx, query)
			return nil
		})
	}
	return nil
}
