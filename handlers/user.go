package handlers

import (
	"net/http"

	"autocare/models"
	"autocare/services/booking"
	"autocare/services/user"
	"autocare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves the authenticated customer's profile, cars, and bookings.
type UserHandler struct {
	Users    user.UserService
	Bookings booking.BookingService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(users user.UserService, bookings booking.BookingService) *UserHandler {
	return &UserHandler{Users: users, Bookings: bookings}
}

// principalID pulls the ID the auth gate attached to the request context.
func principalID(c *gin.Context, key string) (string, bool) {
	val, ok := c.Get(key)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing authentication"})
		return "", false
	}
	id, ok := val.(string)
	if !ok || id == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid principal in context"})
		return "", false
	}
	return id, true
}

// GetProfileHandler handles GET /api/user/profile.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	userID, ok := principalID(c, "userID")
	if !ok {
		return
	}

	usr, err := h.Users.GetByID(userID)
	if err != nil {
		utils.GetLogger().Error("Profile fetch failed", zap.String("userID", userID), zap.Error(err))
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateProfileHandler handles PUT /api/user/profile.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	userID, ok := principalID(c, "userID")
	if !ok {
		return
	}

	var req struct {
		Name        string `json:"name"`
		PhoneNumber string `json:"phoneNumber"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	usr, err := h.Users.UpdateProfile(userID, req.Name, req.PhoneNumber)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// ChangePasswordHandler handles PUT /api/user/password.
func (h *UserHandler) ChangePasswordHandler(c *gin.Context) {
	userID, ok := principalID(c, "userID")
	if !ok {
		return
	}

	var req struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Users.ChangePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AddCarHandler handles POST /api/user/cars.
func (h *UserHandler) AddCarHandler(c *gin.Context) {
	userID, ok := principalID(c, "userID")
	if !ok {
		return
	}

	var req models.Car
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	car, err := h.Users.AddCar(userID, req)
	if err != nil {
		utils.GetLogger().Warn("Add car failed", zap.String("userID", userID), zap.Error(err))
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, car)
}

// MyBookingsHandler handles GET /api/user/bookings.
func (h *UserHandler) MyBookingsHandler(c *gin.Context) {
	userID, ok := principalID(c, "userID")
	if !ok {
		return
	}

	bookings, err := h.Bookings.ListForUser(userID)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
