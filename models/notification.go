package models

import "time"

// Notification event kinds carried by the relay.
const (
	EventNewBooking      = "booking.new"
	EventBookingReminder = "booking.reminder"
)

// NotificationEvent is the best-effort broadcast payload pushed to connected
// clients. The authoritative booking state is always the store; this is an
// advisory UI-refresh signal only.
type NotificationEvent struct {
	Type      string    `json:"type"`
	BookingID string    `json:"bookingId,omitempty"`
	Message   string    `json:"message,omitempty"`
	SentAt    time.Time `json:"sentAt"`
}
