package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Create controllers with appropriate interfaces
	health := NewHealthController(cfg.Database, cfg.Version)

	var enqueuer TaskEnqueuer
	if cfg.TaskClient != nil {
		enqueuer = cfg.TaskClient
	}
	importController := NewImportController(cfg.ImportService, cfg.Runs, enqueuer, cfg.DefaultTenant, cfg.MaxUploadMB)

	membersController := NewMembersController(cfg.Members, cfg.DefaultTenant)
	membershipsController := NewMembershipsController(cfg.Memberships, cfg.DefaultTenant)
	packagesController := NewPackagesController(cfg.Packages, cfg.DefaultTenant)
	checkInsController := NewCheckInsController(cfg.CheckIns, cfg.DefaultTenant)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Import endpoints
	router.GET("/api/import/formats", importController.Formats)
	router.GET("/api/import/targets", importController.TargetFields)
	router.POST("/api/import/preview", importController.Preview)
	router.POST("/api/import/run", importController.Run)
	router.GET("/api/import/runs", importController.ListRuns)
	router.GET("/api/import/runs/:reference", importController.GetRun)

	// Entity read endpoints
	router.GET("/api/members", membersController.GetAllMembers)
	router.GET("/api/memberships", membershipsController.GetAllMemberships)
	router.GET("/api/packages", packagesController.GetAllPackages)
	router.GET("/api/checkins", checkInsController.GetAllCheckIns)

	return router
}
