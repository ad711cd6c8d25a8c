package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TableSource TableSource
	RateRepo    RateReader
	FileWriter  DatasetFileWriter
	TableWriter DatasetTableWriter
	Queries     QueryRunner
	RunRepo     RunRepositoryFacade // Optional; nil disables the run journal
}
