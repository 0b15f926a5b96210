package entities

import (
	"time"

	"gorm.io/gorm"
)

// GymPackage is a purchasable membership plan configured per tenant.
type GymPackage struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	TenantID     string         `gorm:"index;size:64" json:"tenant_id"`
	Name         string         `gorm:"index;size:255" json:"name"`
	Description  string         `gorm:"type:text" json:"description,omitempty"`
	Price        float64        `json:"price"`
	DurationDays int            `json:"duration_days"`
	Features     string         `gorm:"type:text" json:"features,omitempty"`
	Status       string         `gorm:"size:20;default:'active'" json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (GymPackage) TableName() string {
	return "packages"
}

// Membership links a member to a package for a period of time.
type Membership struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	TenantID   string         `gorm:"index;size:64" json:"tenant_id"`
	MemberID   uint           `gorm:"index" json:"member_id"`
	PackageID  uint           `gorm:"index" json:"package_id"`
	StartDate  time.Time      `json:"start_date"`
	ExpiryDate time.Time      `json:"expiry_date"`
	Status     string         `gorm:"size:20;default:'active'" json:"status"`
	Member     Member         `gorm:"foreignKey:MemberID" json:"-"`
	Package    GymPackage     `gorm:"foreignKey:PackageID" json:"-"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Membership) TableName() string {
	return "memberships"
}
