package bookingRepo

import "autocare/models"

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID, or nil if absent.
	GetByID(id string) (*models.Booking, error)
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// SetStatus writes the status field and returns the updated booking.
	SetStatus(id, status string) (*models.Booking, error)
	// ListByUser retrieves a user's bookings, excluding the given statuses.
	ListByUser(userID string, excludeStatuses ...string) ([]models.Booking, error)
	// ListAllWithOwner retrieves every booking with its owner identity
	// eagerly resolved for the admin view.
	ListAllWithOwner() ([]models.AdminBooking, error)
}
