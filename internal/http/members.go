package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type MembersController struct {
	store         MemberLister
	defaultTenant string
}

func NewMembersController(store MemberLister, defaultTenant string) *MembersController {
	return &MembersController{
		store:         store,
		defaultTenant: defaultTenant,
	}
}

func (controller *MembersController) GetAllMembers(c *gin.Context) {
	tenantID := c.Query("tenant_id")
	if tenantID == "" {
		tenantID = controller.defaultTenant
	}

	members, err := controller.store.List(tenantID)
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"members": members, "count": len(members)})
}
