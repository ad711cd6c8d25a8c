package cli

import (
	"context"
	"database/sql"
	"io"
	"log/slog"

	"github.com/SscSPs/banks_etl/internal/adapters/csvfile"
	"github.com/SscSPs/banks_etl/internal/adapters/database/sqlstore"
	"github.com/SscSPs/banks_etl/internal/adapters/web"
	portsrepo "github.com/SscSPs/banks_etl/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/banks_etl/internal/core/ports/services"
	"github.com/SscSPs/banks_etl/internal/core/services"
	"github.com/SscSPs/banks_etl/internal/platform/logging"
	"github.com/SscSPs/banks_etl/pkg/config"
	"github.com/SscSPs/banks_etl/pkg/database"
	"github.com/spf13/cobra"
)

// app holds the wired dependencies shared by the commands.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	logCloser io.Closer
	db        *sql.DB
	services  *portssvc.ServiceContainer
}

func newApp(cmd *cobra.Command) (*app, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig(cmd.Flags())
	if err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger, logCloser, err := logging.New(cfg.LogFile, level, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	a := &app{cfg: cfg, logger: logger, logCloser: logCloser}

	recordRuns := cfg.RecordRuns
	if recordRuns {
		if err := sqlstore.RunMigrations(ctx, logger, cfg.DBDriver, cfg.DBDSN); err != nil {
			logger.Warn("Run journal unavailable, continuing without it", slog.String("error", err.Error()))
			recordRuns = false
		}
	}

	db, err := database.Open(ctx, cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.db = db

	var rates portsrepo.RateReader = csvfile.NewRateRepository(cfg.RatesFile)
	if cfg.CacheRates {
		rates = csvfile.NewCachingRateRepository(rates)
	}

	repos, err := sqlstore.NewRepositoryProvider(db, cfg.DBDriver, recordRuns, portsrepo.RepositoryProvider{
		TableSource: web.NewHTMLTableSource(cfg.TableClass, cfg.HTTPTimeout),
		RateRepo:    rates,
		FileWriter:  csvfile.NewDatasetWriter(),
	})
	if err != nil {
		a.Close()
		return nil, err
	}

	a.services = services.NewServiceContainer(repos, cmd.OutOrStdout())
	return a, nil
}

// Close releases the database pool and the log file.
func (a *app) Close() {
	database.Close(a.db)
	if a.logCloser != nil {
		_ = a.logCloser.Close()
	}
}
