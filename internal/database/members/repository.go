// Package members provides database operations for gym members.
//
// # Usage
//
//	repo := members.NewRepository(db)
//	member, err := repo.FindByEmail(tenantID, email)
package members

import (
	"errors"

	"gorm.io/gorm"

	"github.com/guyitswalid/corefit/internal/entities"
)

// Repository handles all member database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new members repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByEmail returns the tenant's member with the given email,
// or nil when none exists.
func (r *Repository) FindByEmail(tenantID, email string) (*entities.Member, error) {
	var member entities.Member
	err := r.db.Where("tenant_id = ? AND email = ?", tenantID, email).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// FindByPhone returns the tenant's member with the given phone number,
// or nil when none exists.
func (r *Repository) FindByPhone(tenantID, phone string) (*entities.Member, error) {
	var member entities.Member
	err := r.db.Where("tenant_id = ? AND phone = ?", tenantID, phone).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByID retrieves a member by ID.
func (r *Repository) GetByID(id uint) (*entities.Member, error) {
	var member entities.Member
	if err := r.db.First(&member, id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// List returns all of a tenant's members, newest first.
func (r *Repository) List(tenantID string) ([]entities.Member, error) {
	var members []entities.Member
	err := r.db.Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&members).Error
	return members, err
}

// Update writes the given column values onto an existing member.
func (r *Repository) Update(id uint, fields map[string]any) error {
	return r.db.Model(&entities.Member{}).Where("id = ?", id).Updates(fields).Error
}

// Create persists a new member.
func (r *Repository) Create(member *entities.Member) error {
	return r.db.Create(member).Error
}
