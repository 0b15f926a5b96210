package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type PackagesController struct {
	store         PackageLister
	defaultTenant string
}

func NewPackagesController(store PackageLister, defaultTenant string) *PackagesController {
	return &PackagesController{
		store:         store,
		defaultTenant: defaultTenant,
	}
}

func (controller *PackagesController) GetAllPackages(c *gin.Context) {
	tenantID := c.Query("tenant_id")
	if tenantID == "" {
		tenantID = controller.defaultTenant
	}

	packages, err := controller.store.List(tenantID)
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"packages": packages, "count": len(packages)})
}
