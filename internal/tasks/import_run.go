package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/guyitswalid/corefit/internal/importer"
	"github.com/guyitswalid/corefit/internal/services"
)

// ImportRunTask processes a previously registered import run in the background.
type ImportRunTask struct {
	Reference         string                  `json:"reference"`
	TenantID          string                  `json:"tenant_id"`
	DataType          string                  `json:"data_type"`
	Format            string                  `json:"format"`
	Content           string                  `json:"content"`
	DuplicateHandling string                  `json:"duplicate_handling"`
	FieldMappings     []importer.FieldMapping `json:"field_mappings"`
}

// Config returns the queue configuration for import run tasks.
// MaxAttempts is 1: a run that fails midway may already have applied part
// of the batch, so it must not be replayed automatically.
func (t ImportRunTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "import_run",
		MaxAttempts: 1,
		Backoff:     30 * time.Second,
		Timeout:     10 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// ImportRunProcessor creates a processor function for ImportRunTask.
// Run outcomes land in the import run ledger, so processor errors are logged
// and swallowed rather than bubbled up for a retry.
func ImportRunProcessor(service *services.ImportService) backlite.QueueProcessor[ImportRunTask] {
	return func(ctx context.Context, task ImportRunTask) error {
		if service == nil {
			return fmt.Errorf("import service not configured")
		}

		req := services.ImportRequest{
			TenantID:          task.TenantID,
			DataType:          importer.DataType(task.DataType),
			Format:            task.Format,
			Content:           task.Content,
			DuplicateHandling: importer.DuplicateHandling(task.DuplicateHandling),
			FieldMappings:     task.FieldMappings,
		}

		result, err := service.Process(ctx, task.Reference, req)
		if err != nil {
			log.Printf("[TASK ERROR] Import run %s failed: %v", task.Reference, err)
			return nil
		}

		log.Printf("[TASK] Import run %s finished: %d imported, %d updated, %d skipped, %d failed",
			task.Reference, result.Imported, result.Updated, result.Skipped, result.Failed)
		return nil
	}
}

// NewImportRunQueue creates a backlite queue for import run tasks.
func NewImportRunQueue(service *services.ImportService) backlite.Queue {
	return backlite.NewQueue(ImportRunProcessor(service))
}
