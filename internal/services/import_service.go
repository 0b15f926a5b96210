// Package services holds the business logic tying the format parsers, the
// import orchestrator, and the run ledger together.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/guyitswalid/corefit/internal/entities"
	"github.com/guyitswalid/corefit/internal/importer"
	"github.com/guyitswalid/corefit/internal/parsers"
)

// ImportRequest carries everything needed to execute one import run.
type ImportRequest struct {
	TenantID          string                     `json:"tenant_id"`
	DataType          importer.DataType          `json:"data_type"`
	Format            string                     `json:"format"`
	Content           string                     `json:"content"`
	DuplicateHandling importer.DuplicateHandling `json:"duplicate_handling"`
	FieldMappings     []importer.FieldMapping    `json:"field_mappings"`
}

// ImportService executes import runs and records them in the ledger.
type ImportService struct {
	importer *importer.Importer
	ledger   RunLedger
}

// NewImportService creates a new ImportService.
func NewImportService(imp *importer.Importer, ledger RunLedger) *ImportService {
	return &ImportService{importer: imp, ledger: ledger}
}

// Begin registers a pending run for the request and returns its ledger row.
// The returned reference identifies the run to clients and to the
// background task that will process it.
func (s *ImportService) Begin(req ImportRequest) (*entities.ImportRun, error) {
	run := &entities.ImportRun{
		Reference:         uuid.NewString(),
		TenantID:          req.TenantID,
		DataType:          string(req.DataType),
		Format:            req.Format,
		DuplicateHandling: string(req.DuplicateHandling),
		Status:            entities.ImportRunStatusPending,
		StartedAt:         time.Now(),
	}
	if err := s.ledger.Create(run); err != nil {
		return nil, fmt.Errorf("failed to record import run: %w", err)
	}
	return run, nil
}

// Process parses the request content and drives the orchestrator, then
// finalizes the ledger row. A parse failure never reaches the orchestrator;
// it fails the whole run with the parser's message.
func (s *ImportService) Process(ctx context.Context, reference string, req ImportRequest) (importer.Result, error) {
	parsed := parsers.Parse(req.Format, req.Content)
	if !parsed.Success {
		if err := s.ledger.MarkFailed(reference, parsed.Error); err != nil {
			return importer.Result{}, err
		}
		return importer.Result{}, fmt.Errorf("parse failed: %s", parsed.Error)
	}

	if err := s.ledger.MarkRunning(reference); err != nil {
		return importer.Result{}, err
	}

	cfg := importer.Config{
		TenantID:          req.TenantID,
		DataType:          req.DataType,
		DuplicateHandling: req.DuplicateHandling,
		FieldMappings:     req.FieldMappings,
	}
	result, err := s.importer.Run(ctx, parsed.Data, cfg)
	if err != nil {
		if markErr := s.ledger.MarkFailed(reference, err.Error()); markErr != nil {
			return result, markErr
		}
		return result, err
	}

	if err := s.ledger.Finalize(reference, result); err != nil {
		return result, err
	}
	return result, nil
}

// Execute runs an import synchronously: Begin followed by Process.
func (s *ImportService) Execute(ctx context.Context, req ImportRequest) (*entities.ImportRun, importer.Result, error) {
	run, err := s.Begin(req)
	if err != nil {
		return nil, importer.Result{}, err
	}
	result, err := s.Process(ctx, run.Reference, req)
	return run, result, err
}
