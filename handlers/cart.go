package handlers

import (
	"net/http"

	"autocare/services/cart"
	"autocare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CartHandler serves the authenticated user's cart.
type CartHandler struct {
	Carts cart.CartService
}

// NewCartHandler creates a CartHandler.
func NewCartHandler(carts cart.CartService) *CartHandler {
	return &CartHandler{Carts: carts}
}

// GetCartHandler handles GET /api/cart.
func (h *CartHandler) GetCartHandler(c *gin.Context) {
	userID, ok := principalID(c, "userID")
	if !ok {
		return
	}

	crt, err := h.Carts.Get(userID)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, crt)
}

// AddCartItemHandler handles POST /api/cart/add.
func (h *CartHandler) AddCartItemHandler(c *gin.Context) {
	userID, ok := principalID(c, "userID")
	if !ok {
		return
	}

	var req struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	crt, err := h.Carts.AddItem(userID, req.ServiceID)
	if err != nil {
		utils.GetLogger().Warn("Cart add failed", zap.String("userID", userID), zap.Error(err))
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, crt)
}

// RemoveCartItemHandler handles DELETE /api/cart/remove/:serviceId.
func (h *CartHandler) RemoveCartItemHandler(c *gin.Context) {
	userID, ok := principalID(c, "userID")
	if !ok {
		return
	}

	crt, err := h.Carts.RemoveItem(userID, c.Param("serviceId"))
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, crt)
}

// ClearCartHandler handles DELETE /api/cart/clear, used by checkout.
func (h *CartHandler) ClearCartHandler(c *gin.Context) {
	userID, ok := principalID(c, "userID")
	if !ok {
		return
	}

	if err := h.Carts.Clear(userID); err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
