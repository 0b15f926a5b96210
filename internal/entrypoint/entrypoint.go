package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guyitswalid/corefit/internal/config"
	"github.com/guyitswalid/corefit/internal/database"
	"github.com/guyitswalid/corefit/internal/database/checkins"
	"github.com/guyitswalid/corefit/internal/database/imports"
	"github.com/guyitswalid/corefit/internal/database/members"
	"github.com/guyitswalid/corefit/internal/database/memberships"
	"github.com/guyitswalid/corefit/internal/database/packages"
	http_controllers "github.com/guyitswalid/corefit/internal/http"
	"github.com/guyitswalid/corefit/internal/importer"
	"github.com/guyitswalid/corefit/internal/scheduler"
	"github.com/guyitswalid/corefit/internal/services"
	"github.com/guyitswalid/corefit/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop task queue)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting CoreFit v%s", version)

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Build repositories and the import pipeline
	memberRepo := members.NewRepository(db.DB)
	membershipRepo := memberships.NewRepository(db.DB)
	packageRepo := packages.NewRepository(db.DB)
	checkInRepo := checkins.NewRepository(db.DB)
	importRepo := imports.NewRepository(db.DB)

	imp := importer.New(memberRepo, packageRepo, checkInRepo)
	importService := services.NewImportService(imp, importRepo)

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	var cleanupScheduler *scheduler.CleanupScheduler
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:           cfg.Tasks.Workers,
			ReleaseAfter:      cfg.Tasks.ReleaseAfter,
			CleanupInterval:   cfg.Tasks.CleanupInterval,
			RetentionDuration: cfg.Tasks.RetentionDuration,
		}

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		// Register task queues
		taskClient.Register(
			tasks.NewImportRunQueue(importService),
			tasks.NewCleanupImportRunsQueue(importRepo),
		)

		// Start task workers in background
		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)

		// Schedule periodic import run cleanup
		if cfg.Cleanup.Enabled {
			cleanupScheduler = scheduler.NewCleanupScheduler(taskClient, cfg.Cleanup.Schedule, cfg.Cleanup.RetentionDays)
			if err := cleanupScheduler.Start(taskCtx); err != nil {
				log.Fatalf("Failed to start cleanup scheduler: %v", err)
			}
		}
	}

	// Build router configuration with all dependencies
	routerCfg := http_controllers.RouterConfig{
		Database:      db,
		ImportService: importService,
		Runs:          importRepo,
		Members:       memberRepo,
		Memberships:   membershipRepo,
		Packages:      packageRepo,
		CheckIns:      checkInRepo,
		TaskClient:    taskClient,
		DefaultTenant: cfg.Import.DefaultTenant,
		MaxUploadMB:   cfg.Import.MaxUploadMB,
		Version:       version,
	}

	router := http_controllers.NewRouter(routerCfg)

	Serve(router, cfg, func(ctx context.Context) {
		if cleanupScheduler != nil {
			cleanupScheduler.Stop()
		}
		if taskClient != nil {
			taskClient.Stop(ctx)
		}
		if taskCtxCancel != nil {
			taskCtxCancel()
		}
	})
}
