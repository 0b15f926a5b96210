package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CheckInsController struct {
	store         CheckInLister
	defaultTenant string
}

func NewCheckInsController(store CheckInLister, defaultTenant string) *CheckInsController {
	return &CheckInsController{
		store:         store,
		defaultTenant: defaultTenant,
	}
}

func (controller *CheckInsController) GetAllCheckIns(c *gin.Context) {
	tenantID := c.Query("tenant_id")
	if tenantID == "" {
		tenantID = controller.defaultTenant
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	checkIns, err := controller.store.List(tenantID, limit)
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"check_ins": checkIns, "count": len(checkIns)})
}
