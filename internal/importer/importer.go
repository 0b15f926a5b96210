// Package importer executes bulk data imports: it applies a field mapping
// to parsed records, validates them, resolves duplicates per the configured
// policy, and persists them through narrow store interfaces, producing a
// row-level result ledger.
package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/guyitswalid/corefit/internal/parsers"
)

// DataType selects which entity an import run targets.
type DataType string

const (
	DataTypeUsers       DataType = "users"
	DataTypeMemberships DataType = "memberships"
	DataTypeCheckIns    DataType = "check_ins"
	DataTypePackages    DataType = "packages"
)

// DuplicateHandling is the policy applied when an incoming record's natural
// key already exists in the store.
type DuplicateHandling string

const (
	DuplicateSkip      DuplicateHandling = "skip"
	DuplicateUpdate    DuplicateHandling = "update"
	DuplicateCreateNew DuplicateHandling = "create_new"
)

// FieldMapping declares which source column feeds a target field.
// An empty SourceField leaves the target unmapped.
type FieldMapping struct {
	SourceField string `json:"source_field"`
	TargetField string `json:"target_field"`
}

// Config describes one import run. It is immutable during the run.
type Config struct {
	TenantID          string            `json:"tenant_id"`
	DataType          DataType          `json:"data_type"`
	DuplicateHandling DuplicateHandling `json:"duplicate_handling"`
	FieldMappings     []FieldMapping    `json:"field_mappings"`
}

// Result is the per-run ledger. Imported + Skipped + Updated + Failed
// always equals TotalRecords, and Success holds iff Failed is zero.
type Result struct {
	Success      bool     `json:"success"`
	TotalRecords int      `json:"total_records"`
	Imported     int      `json:"imported"`
	Skipped      int      `json:"skipped"`
	Updated      int      `json:"updated"`
	Failed       int      `json:"failed"`
	Errors       []string `json:"errors"`
}

// Importer runs imports against the configured entity stores.
type Importer struct {
	members  MemberStore
	packages PackageStore
	checkIns CheckInStore
}

// New creates an Importer writing through the given stores.
func New(members MemberStore, packages PackageStore, checkIns CheckInStore) *Importer {
	return &Importer{
		members:  members,
		packages: packages,
		checkIns: checkIns,
	}
}

// Run processes records sequentially, in source order. Every per-record
// failure is captured in the returned ledger; the run itself only errors
// on cancellation or an unknown data type. Records are intentionally not
// processed concurrently: duplicate detection depends on writes from
// earlier rows in the same run.
func (imp *Importer) Run(ctx context.Context, records []parsers.Record, cfg Config) (Result, error) {
	handler, err := imp.handlerFor(cfg.DataType)
	if err != nil {
		return Result{}, err
	}

	res := Result{TotalRecords: len(records), Errors: []string{}}
	run := &runState{
		tenantID:  cfg.TenantID,
		memberIDs: make(map[string]uint),
	}

	for i, record := range records {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		rowNum := i + 1

		mapped := applyMappings(record, cfg.FieldMappings)

		if missing := handler.Validate(mapped); len(missing) > 0 {
			res.Skipped++
			res.Errors = append(res.Errors,
				fmt.Sprintf("Row %d: missing required fields: %s", rowNum, strings.Join(missing, ", ")))
			continue
		}

		lk, err := handler.Lookup(run, mapped)
		if err != nil {
			res.Failed++
			res.Errors = append(res.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}
		if lk.softError != "" {
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Sprintf("Row %d: %s", rowNum, lk.softError))
			continue
		}

		if lk.existingID != 0 && cfg.DuplicateHandling != DuplicateCreateNew {
			if cfg.DuplicateHandling == DuplicateUpdate {
				if err := handler.ApplyUpdate(lk.existingID, mapped); err != nil {
					res.Failed++
					res.Errors = append(res.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
					continue
				}
				res.Updated++
				continue
			}
			// skip policy, also the fallback for unrecognized policies
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Sprintf("Row %d: duplicate record skipped", rowNum))
			continue
		}

		if err := handler.Insert(run, mapped); err != nil {
			res.Failed++
			res.Errors = append(res.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}
		res.Imported++
	}

	res.Success = res.Failed == 0
	return res, nil
}

// handlerFor selects the entity handler once per run.
// Memberships currently route to the member handler; membership-specific
// fields (package_name, expiry_date) are not yet consumed.
// TODO: route DataTypeMemberships to membershipHandler once it resolves
// package_name against the packages store.
func (imp *Importer) handlerFor(dataType DataType) (entityHandler, error) {
	switch dataType {
	case DataTypeUsers, DataTypeMemberships:
		return &memberHandler{members: imp.members}, nil
	case DataTypePackages:
		return &packageHandler{packages: imp.packages}, nil
	case DataTypeCheckIns:
		return &checkInHandler{members: imp.members, checkIns: imp.checkIns}, nil
	default:
		return nil, fmt.Errorf("unknown import data type: %s", dataType)
	}
}

// runState carries the mutable state of one run: the tenant scope and the
// member-id cache used by check-in imports. It is never shared across runs.
type runState struct {
	tenantID  string
	memberIDs map[string]uint
}

// applyMappings copies record values into target fields, following the
// configured mapping. Targets without a source column stay absent.
func applyMappings(record parsers.Record, mappings []FieldMapping) map[string]string {
	mapped := make(map[string]string, len(mappings))
	for _, m := range mappings {
		if m.SourceField == "" {
			continue
		}
		if value, ok := record[m.SourceField]; ok {
			mapped[m.TargetField] = value
		}
	}
	return mapped
}
