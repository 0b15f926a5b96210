package http

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mikestefanello/backlite"

	"github.com/guyitswalid/corefit/internal/importer"
	"github.com/guyitswalid/corefit/internal/parsers"
	"github.com/guyitswalid/corefit/internal/services"
	"github.com/guyitswalid/corefit/internal/tasks"
)

// TaskEnqueuer enqueues background tasks. Satisfied by the tasks client.
type TaskEnqueuer interface {
	Add(tasks ...backlite.Task) *backlite.TaskAddOp
}

// ImportController serves the tabular data import endpoints: format and
// target field discovery, file preview with auto-detected mappings, and
// synchronous or queued import runs.
type ImportController struct {
	service       *services.ImportService
	runs          RunStore
	enqueuer      TaskEnqueuer
	defaultTenant string
	maxUploadMB   int64
}

func NewImportController(service *services.ImportService, runs RunStore, enqueuer TaskEnqueuer, defaultTenant string, maxUploadMB int64) *ImportController {
	return &ImportController{
		service:       service,
		runs:          runs,
		enqueuer:      enqueuer,
		defaultTenant: defaultTenant,
		maxUploadMB:   maxUploadMB,
	}
}

// Formats lists the supported file formats.
func (ctrl *ImportController) Formats(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, gin.H{"formats": parsers.SupportedFormats()})
}

// TargetFields lists the mappable fields for a data type.
func (ctrl *ImportController) TargetFields(c *gin.Context) {
	dataType := importer.DataType(c.Query("data_type"))
	if dataType == "" {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "data_type query parameter is required"})
		return
	}

	fields := importer.TargetFields(dataType)
	if len(fields) == 0 {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown data type: %s", dataType)})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"data_type": dataType, "fields": fields})
}

type PreviewResponse struct {
	Success    bool                    `json:"success"`
	Error      string                  `json:"error,omitempty"`
	Format     string                  `json:"format"`
	Headers    []string                `json:"headers"`
	SampleRows []parsers.Record        `json:"sample_rows"`
	TotalRows  int                     `json:"total_rows"`
	Mappings   []importer.FieldMapping `json:"mappings"`
}

// Preview parses an uploaded file and returns its headers, a sample of
// rows, and auto-detected field mappings for the requested data type.
func (ctrl *ImportController) Preview(c *gin.Context) {
	dataType := importer.DataType(c.PostForm("data_type"))
	if len(importer.TargetFields(dataType)) == 0 {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown data type: %s", dataType)})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	defer file.Close()

	content, err := ctrl.readUpload(file)
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	format := c.PostForm("format")
	if format == "" {
		format = formatFromFilename(header.Filename)
	}

	parsed := parsers.Parse(format, content)
	if !parsed.Success {
		c.IndentedJSON(http.StatusBadRequest, PreviewResponse{
			Success: false,
			Error:   parsed.Error,
			Format:  format,
		})
		return
	}

	mappings := importer.AutoDetectMappings(parsed.Headers, dataType)

	sample := parsed.Data
	if len(sample) > 5 {
		sample = sample[:5]
	}

	c.IndentedJSON(http.StatusOK, PreviewResponse{
		Success:    true,
		Format:     format,
		Headers:    parsed.Headers,
		SampleRows: sample,
		TotalRows:  len(parsed.Data),
		Mappings:   mappings,
	})
}

type RunRequest struct {
	TenantID          string                  `json:"tenant_id"`
	DataType          string                  `json:"data_type" binding:"required"`
	Format            string                  `json:"format"`
	Content           string                  `json:"content" binding:"required"`
	DuplicateHandling string                  `json:"duplicate_handling"`
	FieldMappings     []importer.FieldMapping `json:"field_mappings" binding:"required"`
	Async             bool                    `json:"async"`
}

type RunResponse struct {
	Reference string           `json:"reference"`
	Status    string           `json:"status"`
	Result    *importer.Result `json:"result,omitempty"`
	Error     string           `json:"error,omitempty"`
}

// Run executes an import. With async=true and a task queue available, the
// run is registered and queued; the reference can be polled afterwards.
func (ctrl *ImportController) Run(c *gin.Context) {
	var body RunRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := services.ImportRequest{
		TenantID:          body.TenantID,
		DataType:          importer.DataType(body.DataType),
		Format:            body.Format,
		Content:           body.Content,
		DuplicateHandling: importer.DuplicateHandling(body.DuplicateHandling),
		FieldMappings:     body.FieldMappings,
	}
	if req.TenantID == "" {
		req.TenantID = ctrl.defaultTenant
	}
	if req.DuplicateHandling == "" {
		req.DuplicateHandling = importer.DuplicateSkip
	}

	if body.Async && ctrl.enqueuer != nil {
		run, err := ctrl.service.Begin(req)
		if err != nil {
			c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		task := tasks.ImportRunTask{
			Reference:         run.Reference,
			TenantID:          req.TenantID,
			DataType:          string(req.DataType),
			Format:            req.Format,
			Content:           req.Content,
			DuplicateHandling: string(req.DuplicateHandling),
			FieldMappings:     req.FieldMappings,
		}
		if _, err := ctrl.enqueuer.Add(task).Save(); err != nil {
			c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to enqueue import: %v", err)})
			return
		}

		c.IndentedJSON(http.StatusAccepted, RunResponse{
			Reference: run.Reference,
			Status:    "pending",
		})
		return
	}

	run, result, err := ctrl.service.Execute(c.Request.Context(), req)
	if err != nil {
		response := RunResponse{Status: "failed", Error: err.Error()}
		if run != nil {
			response.Reference = run.Reference
		}
		c.IndentedJSON(http.StatusUnprocessableEntity, response)
		return
	}

	c.IndentedJSON(http.StatusOK, RunResponse{
		Reference: run.Reference,
		Status:    "completed",
		Result:    &result,
	})
}

// ListRuns returns the import runs for a tenant, most recent first.
func (ctrl *ImportController) ListRuns(c *gin.Context) {
	tenantID := c.Query("tenant_id")
	if tenantID == "" {
		tenantID = ctrl.defaultTenant
	}

	runs, err := ctrl.runs.List(tenantID)
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"runs": runs, "count": len(runs)})
}

// GetRun returns a single import run by reference.
func (ctrl *ImportController) GetRun(c *gin.Context) {
	run, err := ctrl.runs.GetByReference(c.Param("reference"))
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if run == nil {
		c.IndentedJSON(http.StatusNotFound, gin.H{"error": "import run not found"})
		return
	}
	c.IndentedJSON(http.StatusOK, run)
}

func (ctrl *ImportController) readUpload(file io.Reader) (string, error) {
	limit := ctrl.maxUploadMB * 1024 * 1024
	data, err := io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(data)) > limit {
		return "", fmt.Errorf("file exceeds the %d MB upload limit", ctrl.maxUploadMB)
	}
	return string(data), nil
}

func formatFromFilename(name string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	if ext == "" {
		return "csv"
	}
	return ext
}
