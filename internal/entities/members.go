package entities

import (
	"time"

	"gorm.io/gorm"
)

type MemberStatus string

const (
	MemberStatusActive    MemberStatus = "active"
	MemberStatusInactive  MemberStatus = "inactive"
	MemberStatusSuspended MemberStatus = "suspended"
)

// Member is a gym member or staff account within a tenant.
type Member struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	TenantID         string         `gorm:"index;size:64" json:"tenant_id"`
	FirstName        string         `gorm:"size:100" json:"first_name"`
	LastName         string         `gorm:"size:100" json:"last_name"`
	Email            string         `gorm:"index;size:255" json:"email,omitempty"`
	Phone            string         `gorm:"index;size:32" json:"phone,omitempty"`
	Gender           string         `gorm:"size:20" json:"gender,omitempty"`
	DateOfBirth      string         `gorm:"size:32" json:"date_of_birth,omitempty"`
	Address          string         `gorm:"size:512" json:"address,omitempty"`
	EmergencyContact string         `gorm:"size:255" json:"emergency_contact,omitempty"`
	Status           MemberStatus   `gorm:"size:20;default:'active'" json:"status"`
	JoinDate         time.Time      `json:"join_date"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Member) TableName() string {
	return "members"
}

// FullName returns the member's display name.
func (m Member) FullName() string {
	if m.LastName == "" {
		return m.FirstName
	}
	return m.FirstName + " " + m.LastName
}
