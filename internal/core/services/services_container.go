package services

import (
	"io"

	portsrepo "github.com/SscSPs/banks_etl/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/banks_etl/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// Query results are printed to out.
func NewServiceContainer(repos portsrepo.RepositoryProvider, out io.Writer) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Extract:   NewExtractService(repos.TableSource),
		Transform: NewTransformService(repos.RateRepo),
		Load:      NewLoadService(repos.FileWriter, repos.TableWriter),
		Query:     NewQueryService(repos.Queries, out),
		Runs:      NewRunJournalService(repos.RunRepo),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ExtractSvc    = (*extractService)(nil)
	_ portssvc.TransformSvc  = (*transformService)(nil)
	_ portssvc.LoadSvc       = (*loadService)(nil)
	_ portssvc.QuerySvc      = (*queryService)(nil)
	_ portssvc.RunJournalSvc = (*runJournalService)(nil)
)
