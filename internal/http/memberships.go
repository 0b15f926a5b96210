package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type MembershipsController struct {
	store         MembershipLister
	defaultTenant string
}

func NewMembershipsController(store MembershipLister, defaultTenant string) *MembershipsController {
	return &MembershipsController{
		store:         store,
		defaultTenant: defaultTenant,
	}
}

func (controller *MembershipsController) GetAllMemberships(c *gin.Context) {
	tenantID := c.Query("tenant_id")
	if tenantID == "" {
		tenantID = controller.defaultTenant
	}

	memberships, err := controller.store.List(tenantID)
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"memberships": memberships, "count": len(memberships)})
}
