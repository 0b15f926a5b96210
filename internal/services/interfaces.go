package services

import (
	"github.com/guyitswalid/corefit/internal/entities"
	"github.com/guyitswalid/corefit/internal/importer"
)

// RunLedger persists the lifecycle of import runs.
// Implemented by the imports database repository.
type RunLedger interface {
	Create(run *entities.ImportRun) error
	MarkRunning(reference string) error
	Finalize(reference string, result importer.Result) error
	MarkFailed(reference, message string) error
}
