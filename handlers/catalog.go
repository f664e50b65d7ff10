package handlers

import (
	"net/http"

	"autocare/services/catalog"
	"autocare/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the public service catalog.
type CatalogHandler struct {
	Catalog catalog.CatalogService
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(cat catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Catalog: cat}
}

// ListServicesHandler handles GET /api/services. Customers only ever see
// active offerings.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	offerings, err := h.Catalog.ListActive()
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, offerings)
}
