package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"
)

// ImportRunPruner provides the ability to delete old finished import runs.
type ImportRunPruner interface {
	DeleteFinishedBefore(cutoff time.Time) (int64, error)
}

// CleanupImportRunsTask removes finished import runs older than the
// configured retention period. Pending runs are left untouched.
type CleanupImportRunsTask struct {
	RetentionDays int `json:"retention_days"`
}

// Config returns the queue configuration for import run cleanup tasks.
func (t CleanupImportRunsTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "cleanup_import_runs",
		MaxAttempts: 3,
		Backoff:     5 * time.Minute,
		Timeout:     2 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// CleanupImportRunsProcessor creates a processor function for CleanupImportRunsTask.
func CleanupImportRunsProcessor(pruner ImportRunPruner) backlite.QueueProcessor[CleanupImportRunsTask] {
	return func(ctx context.Context, task CleanupImportRunsTask) error {
		if pruner == nil {
			return fmt.Errorf("import run pruner not configured")
		}

		retentionDays := task.RetentionDays
		if retentionDays <= 0 {
			retentionDays = 30
		}
		cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

		deleted, err := pruner.DeleteFinishedBefore(cutoff)
		if err != nil {
			return fmt.Errorf("cleanup import runs: %w", err)
		}

		log.Printf("[TASK] Cleaned up %d import runs older than %d days", deleted, retentionDays)
		return nil
	}
}

// NewCleanupImportRunsQueue creates a backlite queue for import run cleanup tasks.
func NewCleanupImportRunsQueue(pruner ImportRunPruner) backlite.Queue {
	return backlite.NewQueue(CleanupImportRunsProcessor(pruner))
}
