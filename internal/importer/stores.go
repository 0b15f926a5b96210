package importer

import "github.com/guyitswalid/corefit/internal/entities"

// The store interfaces below are the importer's only persistence surface.
// Find methods return (nil, nil) when no entity matches; a non-nil error
// means the lookup itself failed.

// MemberStore persists gym members.
type MemberStore interface {
	FindByEmail(tenantID, email string) (*entities.Member, error)
	FindByPhone(tenantID, phone string) (*entities.Member, error)
	Update(id uint, fields map[string]any) error
	Create(member *entities.Member) error
}

// PackageStore persists membership packages.
type PackageStore interface {
	FindByName(tenantID, name string) (*entities.GymPackage, error)
	Update(id uint, fields map[string]any) error
	Create(pkg *entities.GymPackage) error
}

// CheckInStore persists check-in events.
type CheckInStore interface {
	Create(checkIn *entities.CheckIn) error
}
