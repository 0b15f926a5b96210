// Package packages provides database operations for membership packages.
package packages

import (
	"errors"

	"gorm.io/gorm"

	"github.com/guyitswalid/corefit/internal/entities"
)

// Repository handles all package database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new packages repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByName returns the tenant's package with the given name,
// or nil when none exists.
func (r *Repository) FindByName(tenantID, name string) (*entities.GymPackage, error) {
	var pkg entities.GymPackage
	err := r.db.Where("tenant_id = ? AND name = ?", tenantID, name).First(&pkg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

// List returns all of a tenant's packages.
func (r *Repository) List(tenantID string) ([]entities.GymPackage, error) {
	var pkgs []entities.GymPackage
	err := r.db.Where("tenant_id = ?", tenantID).Order("name").Find(&pkgs).Error
	return pkgs, err
}

// Update writes the given column values onto an existing package.
func (r *Repository) Update(id uint, fields map[string]any) error {
	return r.db.Model(&entities.GymPackage{}).Where("id = ?", id).Updates(fields).Error
}

// Create persists a new package.
func (r *Repository) Create(pkg *entities.GymPackage) error {
	return r.db.Create(pkg).Error
}
