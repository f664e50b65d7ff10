package booking

import (
	"time"

	"autocare/models"
)

// BookRequest is the input to Book.
type BookRequest struct {
	UserID        string
	ServiceID     string
	LicensePlate  string
	ScheduledDate time.Time
	Notes         string
}

// BookingService defines the booking lifecycle operations.
type BookingService interface {
	// Book creates a Pending booking for an active offering, snapshotting the
	// user's car by plate.
	Book(req BookRequest) (*models.Booking, error)
	// Cancel transitions the requester's own booking to Cancelled. Only
	// Pending and Approved bookings can be cancelled, and only by the owner.
	Cancel(bookingID, requesterID string) error
	// UpdateStatus writes any known status; admins are not restricted to
	// forward transitions.
	UpdateStatus(bookingID, newStatus string) (*models.Booking, error)
	// ListForUser retrieves the user's bookings, hiding cancelled ones.
	ListForUser(userID string) ([]models.Booking, error)
	// ListAll retrieves every booking with owner identity for the admin view.
	ListAll() ([]models.AdminBooking, error)
}

// Notifier is the best-effort broadcast side channel. Publish must never
// block and its failure must never fail a booking write.
type Notifier interface {
	Publish(event models.NotificationEvent)
}

// ReminderScheduler enqueues a deferred reminder for a booking.
type ReminderScheduler interface {
	Schedule(booking models.Booking) error
}
