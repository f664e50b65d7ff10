package handlers

import (
	"net/http"

	"autocare/services/newsletter"
	"autocare/utils"

	"github.com/gin-gonic/gin"
)

// NewsletterHandler serves subscribe/verify for the mailing list.
type NewsletterHandler struct {
	Newsletter newsletter.NewsletterService
}

// NewNewsletterHandler creates a NewsletterHandler.
func NewNewsletterHandler(svc newsletter.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{Newsletter: svc}
}

// SubscribeHandler handles POST /api/newsletter/subscribe.
func (h *NewsletterHandler) SubscribeHandler(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if _, err := h.Newsletter.Subscribe(req.Email); err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Verification pending"})
}

// VerifyHandler handles GET /api/newsletter/verify?token=.
func (h *NewsletterHandler) VerifyHandler(c *gin.Context) {
	if err := h.Newsletter.Verify(c.Query("token")); err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Subscription verified"})
}
