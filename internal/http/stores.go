package http

import "github.com/guyitswalid/corefit/internal/entities"

// This file consolidates the store interface definitions used by HTTP
// controllers. Each controller depends on the narrowest interface it needs;
// the database repositories satisfy them.

// RunStore provides read access to import runs.
type RunStore interface {
	List(tenantID string) ([]entities.ImportRun, error)
	GetByReference(reference string) (*entities.ImportRun, error)
}

// MemberLister provides read access to members.
type MemberLister interface {
	List(tenantID string) ([]entities.Member, error)
}

// MembershipLister provides read access to memberships.
type MembershipLister interface {
	List(tenantID string) ([]entities.Membership, error)
}

// PackageLister provides read access to packages.
type PackageLister interface {
	List(tenantID string) ([]entities.GymPackage, error)
}

// CheckInLister provides read access to check-ins.
type CheckInLister interface {
	List(tenantID string, limit int) ([]entities.CheckIn, error)
}
