package services

// ServiceContainer holds instances of all the pipeline services.
// The pipeline and the CLI commands access stage functionality through it.
type ServiceContainer struct {
	Extract   ExtractSvc
	Transform TransformSvc
	Load      LoadSvc
	Query     QuerySvc
	Runs      RunJournalSvc
}
