package handlers

import (
	"io"
	"net/http"
	"time"

	"autocare/models"
	"autocare/services/notification"

	"github.com/gin-gonic/gin"
)

// NotifyHandler serves the notification relay: an SSE stream out, and a
// publish endpoint in. Everything here is advisory; clients must re-read the
// store for authoritative state.
type NotifyHandler struct {
	Relay notification.Relay
}

// NewNotifyHandler creates a NotifyHandler.
func NewNotifyHandler(relay notification.Relay) *NotifyHandler {
	return &NotifyHandler{Relay: relay}
}

const heartbeatInterval = 30 * time.Second

// StreamHandler handles GET /api/notify/stream. Events are delivered as
// server-sent events until the client disconnects; there is no replay.
func (h *NotifyHandler) StreamHandler(c *gin.Context) {
	events, cancel := h.Relay.Subscribe()
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("notification", event)
			return true
		case <-heartbeat.C:
			c.SSEvent("ping", time.Now().Unix())
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// PublishHandler handles POST /api/notify/booking: any connected client may
// announce a new booking to every other client.
func (h *NotifyHandler) PublishHandler(c *gin.Context) {
	var req struct {
		BookingID string `json:"bookingId"`
		Message   string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	h.Relay.Publish(models.NotificationEvent{
		Type:      models.EventNewBooking,
		BookingID: req.BookingID,
		Message:   req.Message,
		SentAt:    time.Now(),
	})
	c.JSON(http.StatusOK, gin.H{"success": true})
}
