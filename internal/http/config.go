package http

import (
	"github.com/guyitswalid/corefit/internal/database"
	"github.com/guyitswalid/corefit/internal/services"
	"github.com/guyitswalid/corefit/internal/tasks"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router. This replaces a long parameter list
// in NewRouter for better maintainability.
type RouterConfig struct {
	// Core dependencies
	Database      *database.Database
	ImportService *services.ImportService

	// Stores backing read endpoints
	Runs        RunStore
	Members     MemberLister
	Memberships MembershipLister
	Packages    PackageLister
	CheckIns    CheckInLister

	// Task queue client (optional; sync-only imports when nil)
	TaskClient *tasks.Client

	// Import defaults
	DefaultTenant string
	MaxUploadMB   int64

	// Application info
	Version string
}
