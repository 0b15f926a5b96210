package entities

import "time"

// CheckIn records a member entering (and optionally leaving) the gym.
type CheckIn struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	TenantID     string     `gorm:"index;size:64" json:"tenant_id"`
	MemberID     uint       `gorm:"index" json:"member_id"`
	CheckInTime  time.Time  `gorm:"index" json:"check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time,omitempty"`
	Notes        string     `gorm:"size:512" json:"notes,omitempty"`
	Member       Member     `gorm:"foreignKey:MemberID" json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (CheckIn) TableName() string {
	return "check_ins"
}
