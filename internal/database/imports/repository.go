// Package imports provides database operations for the import-run ledger.
package imports

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/guyitswalid/corefit/internal/entities"
	"github.com/guyitswalid/corefit/internal/importer"
)

// Repository handles all import-run database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new import-runs repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new import run.
func (r *Repository) Create(run *entities.ImportRun) error {
	return r.db.Create(run).Error
}

// GetByReference retrieves a run by its public reference,
// or nil when none exists.
func (r *Repository) GetByReference(reference string) (*entities.ImportRun, error) {
	var run entities.ImportRun
	err := r.db.Where("reference = ?", reference).First(&run).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// List returns a tenant's import runs, newest first.
func (r *Repository) List(tenantID string) ([]entities.ImportRun, error) {
	var runs []entities.ImportRun
	err := r.db.Where("tenant_id = ?", tenantID).Order("started_at DESC").Find(&runs).Error
	return runs, err
}

// MarkRunning flips a pending run to running.
func (r *Repository) MarkRunning(reference string) error {
	return r.db.Model(&entities.ImportRun{}).
		Where("reference = ?", reference).
		Update("status", entities.ImportRunStatusRunning).Error
}

// Finalize records the outcome of a completed run.
func (r *Repository) Finalize(reference string, result importer.Result) error {
	status := entities.ImportRunStatusCompleted
	if !result.Success {
		status = entities.ImportRunStatusFailed
	}
	errorsJSON, err := json.Marshal(result.Errors)
	if err != nil {
		return err
	}
	now := time.Now()
	return r.db.Model(&entities.ImportRun{}).
		Where("reference = ?", reference).
		Updates(map[string]any{
			"status":        status,
			"total_records": result.TotalRecords,
			"imported":      result.Imported,
			"skipped":       result.Skipped,
			"updated":       result.Updated,
			"failed":        result.Failed,
			"errors":        string(errorsJSON),
			"completed_at":  &now,
		}).Error
}

// MarkFailed records a run that could not execute at all (e.g. parse failure
// happened before the orchestrator was invoked).
func (r *Repository) MarkFailed(reference, message string) error {
	errorsJSON, _ := json.Marshal([]string{message})
	now := time.Now()
	return r.db.Model(&entities.ImportRun{}).
		Where("reference = ?", reference).
		Updates(map[string]any{
			"status":       entities.ImportRunStatusFailed,
			"errors":       string(errorsJSON),
			"completed_at": &now,
		}).Error
}

// DeleteFinishedBefore removes completed and failed runs older than the
// cutoff, returning how many rows were deleted.
func (r *Repository) DeleteFinishedBefore(cutoff time.Time) (int64, error) {
	res := r.db.
		Where("status IN ? AND started_at < ?",
			[]entities.ImportRunStatus{entities.ImportRunStatusCompleted, entities.ImportRunStatusFailed},
			cutoff).
		Delete(&entities.ImportRun{})
	return res.RowsAffected, res.Error
}
