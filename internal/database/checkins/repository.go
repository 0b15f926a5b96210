// Package checkins provides database operations for check-in events.
package checkins

import (
	"gorm.io/gorm"

	"github.com/guyitswalid/corefit/internal/entities"
)

// Repository handles all check-in database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new check-ins repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new check-in event.
func (r *Repository) Create(checkIn *entities.CheckIn) error {
	return r.db.Create(checkIn).Error
}

// List returns a tenant's check-ins, most recent first.
func (r *Repository) List(tenantID string, limit int) ([]entities.CheckIn, error) {
	var checkIns []entities.CheckIn
	q := r.db.Where("tenant_id = ?", tenantID).Order("check_in_time DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&checkIns).Error
	return checkIns, err
}

// ListByMember returns one member's check-ins, most recent first.
func (r *Repository) ListByMember(memberID uint) ([]entities.CheckIn, error) {
	var checkIns []entities.CheckIn
	err := r.db.Where("member_id = ?", memberID).Order("check_in_time DESC").Find(&checkIns).Error
	return checkIns, err
}
