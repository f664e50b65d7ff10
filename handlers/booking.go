package handlers

import (
	"net/http"
	"time"

	"autocare/services/booking"
	"autocare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves booking creation and cancellation for customers.
type BookingHandler struct {
	Bookings booking.BookingService
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(bookings booking.BookingService) *BookingHandler {
	return &BookingHandler{Bookings: bookings}
}

// BookServiceHandler handles POST /api/services/book.
func (h *BookingHandler) BookServiceHandler(c *gin.Context) {
	userID, ok := principalID(c, "userID")
	if !ok {
		return
	}

	var req struct {
		ServiceID     string    `json:"serviceId" binding:"required"`
		LicensePlate  string    `json:"licensePlate" binding:"required"`
		ScheduledDate time.Time `json:"scheduledDate" binding:"required"`
		Notes         string    `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	bk, err := h.Bookings.Book(booking.BookRequest{
		UserID:        userID,
		ServiceID:     req.ServiceID,
		LicensePlate:  req.LicensePlate,
		ScheduledDate: req.ScheduledDate,
		Notes:         req.Notes,
	})
	if err != nil {
		utils.GetLogger().Warn("Booking failed", zap.String("userID", userID), zap.Error(err))
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "service": bk.ServiceName, "booking": bk})
}

// CancelBookingHandler handles DELETE /api/services/cancel/:id.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	userID, ok := principalID(c, "userID")
	if !ok {
		return
	}

	bookingID := c.Param("id")
	if err := h.Bookings.Cancel(bookingID, userID); err != nil {
		utils.GetLogger().Warn("Cancel failed", zap.String("bookingID", bookingID), zap.Error(err))
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
