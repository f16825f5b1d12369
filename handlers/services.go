// File: handlers/services.go
package handlers

import (
	"net/http"

	"github.com/J-Hunxho/LowkeyLuxuryMain/services/catalog"
	"github.com/J-Hunxho/LowkeyLuxuryMain/utils"

	"github.com/gin-gonic/gin"
)

// ListServicesHandler returns the full static catalog.
func ListServicesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": catalog.List()})
}

// GetServiceHandler returns one catalog entry by id.
func GetServiceHandler(c *gin.Context) {
	pkg, err := catalog.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Service not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, pkg)
}
