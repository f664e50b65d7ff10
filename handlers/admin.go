package handlers

import (
	"net/http"
	"strings"

	"autocare/models"
	"autocare/services/admin"
	"autocare/services/booking"
	"autocare/services/catalog"
	"autocare/services/user"
	"autocare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the back-office surface: admin sessions plus user,
// booking, and catalog management.
type AdminHandler struct {
	Admins   admin.AdminService
	Users    user.UserService
	Bookings booking.BookingService
	Catalog  catalog.CatalogService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(admins admin.AdminService, users user.UserService, bookings booking.BookingService, cat catalog.CatalogService) *AdminHandler {
	return &AdminHandler{Admins: admins, Users: users, Bookings: bookings, Catalog: cat}
}

// LoginHandler handles POST /api/admin/login.
func (h *AdminHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	resp, err := h.Admins.Authenticate(req.Email, req.Password)
	if err != nil {
		utils.GetLogger().Warn("Admin login failed", zap.String("email", req.Email), zap.Error(err))
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler handles POST /api/admin/logout. Only the presented token is
// revoked; the admin's other sessions keep working.
func (h *AdminHandler) LogoutHandler(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if err := h.Admins.Logout(token); err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListUsersHandler handles GET /api/admin/users.
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.Users.GetAll()
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// ListBookingsHandler handles GET /api/admin/bookings, owners resolved.
func (h *AdminHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Bookings.ListAll()
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatusHandler handles PATCH /api/admin/bookings/:id.
func (h *AdminHandler) UpdateBookingStatusHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	bk, err := h.Bookings.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		utils.GetLogger().Warn("Status update failed", zap.String("bookingID", c.Param("id")), zap.Error(err))
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, bk)
}

// ListAllServicesHandler handles GET /api/admin/services, inactive included.
func (h *AdminHandler) ListAllServicesHandler(c *gin.Context) {
	offerings, err := h.Catalog.ListAll()
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, offerings)
}

// AddServiceHandler handles POST /api/admin/service.
func (h *AdminHandler) AddServiceHandler(c *gin.Context) {
	var req models.ServiceOffering
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	offering, err := h.Catalog.Create(req)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, offering)
}

// UpdateServiceHandler handles PUT /api/admin/service/:id.
func (h *AdminHandler) UpdateServiceHandler(c *gin.Context) {
	var req models.ServiceOffering
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	offering, err := h.Catalog.Update(c.Param("id"), req)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, offering)
}

// DeleteServiceHandler handles DELETE /api/admin/service/:id. Removal is a
// soft deactivation so past bookings keep a resolvable reference.
func (h *AdminHandler) DeleteServiceHandler(c *gin.Context) {
	if err := h.Catalog.Deactivate(c.Param("id")); err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
