package entities

import "time"

type ImportRunStatus string

const (
	ImportRunStatusPending   ImportRunStatus = "pending"
	ImportRunStatusRunning   ImportRunStatus = "running"
	ImportRunStatusCompleted ImportRunStatus = "completed"
	ImportRunStatusFailed    ImportRunStatus = "failed"
)

// ImportRun is the persisted ledger of one bulk import execution.
// Counts mirror the ImportResult returned by the importer; Errors holds
// the row-level error list as a JSON array.
type ImportRun struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	Reference         string          `gorm:"uniqueIndex;size:36" json:"reference"`
	TenantID          string          `gorm:"index;size:64" json:"tenant_id"`
	DataType          string          `gorm:"size:32" json:"data_type"`
	Format            string          `gorm:"size:16" json:"format"`
	DuplicateHandling string          `gorm:"size:16" json:"duplicate_handling"`
	Status            ImportRunStatus `gorm:"size:20;default:'pending'" json:"status"`
	TotalRecords      int             `json:"total_records"`
	Imported          int             `json:"imported"`
	Skipped           int             `json:"skipped"`
	Updated           int             `json:"updated"`
	Failed            int             `json:"failed"`
	Errors            string          `gorm:"type:text" json:"errors,omitempty"`
	StartedAt         time.Time       `json:"started_at"`
	CompletedAt       *time.Time      `json:"completed_at,omitempty"`
}

func (ImportRun) TableName() string {
	return "import_runs"
}
