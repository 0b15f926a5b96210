// Package memberships provides database operations for member-package links.
package memberships

import (
	"time"

	"gorm.io/gorm"

	"github.com/guyitswalid/corefit/internal/entities"
)

// Repository handles all membership database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new memberships repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new membership.
func (r *Repository) Create(membership *entities.Membership) error {
	return r.db.Create(membership).Error
}

// List returns all of a tenant's memberships, newest first.
func (r *Repository) List(tenantID string) ([]entities.Membership, error) {
	var memberships []entities.Membership
	err := r.db.Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&memberships).Error
	return memberships, err
}

// ListExpiringBefore returns active memberships expiring before the cutoff,
// used by the console's renewal reminders.
func (r *Repository) ListExpiringBefore(tenantID string, cutoff time.Time) ([]entities.Membership, error) {
	var memberships []entities.Membership
	err := r.db.
		Where("tenant_id = ? AND status = ? AND expiry_date < ?", tenantID, "active", cutoff).
		Order("expiry_date").
		Find(&memberships).Error
	return memberships, err
}
