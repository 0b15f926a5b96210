// Package cli implements the command line entrypoints that run outside
// the HTTP server.
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/guyitswalid/corefit/internal/database"
	"github.com/guyitswalid/corefit/internal/database/checkins"
	"github.com/guyitswalid/corefit/internal/database/imports"
	"github.com/guyitswalid/corefit/internal/database/members"
	"github.com/guyitswalid/corefit/internal/database/packages"
	"github.com/guyitswalid/corefit/internal/importer"
	"github.com/guyitswalid/corefit/internal/parsers"
	"github.com/guyitswalid/corefit/internal/services"
)

// ImportFileCommand imports a data file directly into the database.
type ImportFileCommand struct {
	FilePath          string
	DataType          string
	Format            string
	TenantID          string
	DuplicateHandling string
	DatabasePath      string
	Verbose           bool
}

// NewImportFileCommand creates a new ImportFileCommand
func NewImportFileCommand() *ImportFileCommand {
	return &ImportFileCommand{}
}

// ParseFlags parses command line flags
func (cmd *ImportFileCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import-file", flag.ExitOnError)

	fs.StringVar(&cmd.FilePath, "file", "", "Path to the data file to import (required)")
	fs.StringVar(&cmd.DataType, "type", "users", "Data type: users, memberships, check_ins or packages")
	fs.StringVar(&cmd.Format, "format", "", "File format (csv, json, sql, xml, yaml); derived from the file extension when empty")
	fs.StringVar(&cmd.TenantID, "tenant", "default", "Tenant the records belong to")
	fs.StringVar(&cmd.DuplicateHandling, "duplicates", "skip", "Duplicate handling: skip, update or create_new")
	fs.StringVar(&cmd.DatabasePath, "db", "./corefit.db", "Path to the database file")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Print every row-level error")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import-file [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Import members, memberships, check-ins or packages from a data file.\n\n")
		fmt.Fprintf(os.Stderr, "Column mappings are auto-detected from the file's headers.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s import-file -file members.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s import-file -file packages.json -type packages -duplicates update\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s import-file -file visits.xml -type check_ins -tenant gym-1\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.FilePath == "" {
		fs.Usage()
		return fmt.Errorf("-file is required")
	}

	return nil
}

// Run executes the import command
func (cmd *ImportFileCommand) Run() error {
	content, err := os.ReadFile(cmd.FilePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", cmd.FilePath, err)
	}

	format := cmd.Format
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(cmd.FilePath)), ".")
	}

	// Parse upfront so mappings can be detected from the headers
	parsed := parsers.Parse(format, string(content))
	if !parsed.Success {
		return fmt.Errorf("failed to parse %s: %s", cmd.FilePath, parsed.Error)
	}

	dataType := importer.DataType(cmd.DataType)
	mappings := importer.AutoDetectMappings(parsed.Headers, dataType)

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	imp := importer.New(
		members.NewRepository(db.DB),
		packages.NewRepository(db.DB),
		checkins.NewRepository(db.DB),
	)
	service := services.NewImportService(imp, imports.NewRepository(db.DB))

	fmt.Printf("Importing %d %s records from %s\n", len(parsed.Data), cmd.DataType, cmd.FilePath)

	run, result, err := service.Execute(context.Background(), services.ImportRequest{
		TenantID:          cmd.TenantID,
		DataType:          dataType,
		Format:            format,
		Content:           string(content),
		DuplicateHandling: importer.DuplicateHandling(cmd.DuplicateHandling),
		FieldMappings:     mappings,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Run %s: %d imported, %d updated, %d skipped, %d failed\n",
		run.Reference, result.Imported, result.Updated, result.Skipped, result.Failed)

	if cmd.Verbose {
		for _, rowError := range result.Errors {
			fmt.Println("  " + rowError)
		}
	} else if len(result.Errors) > 0 {
		fmt.Printf("%d rows reported errors (re-run with -verbose to list them)\n", len(result.Errors))
	}

	return nil
}
