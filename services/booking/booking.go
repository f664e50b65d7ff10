package booking

import (
	"fmt"
	"time"

	bookingRepo "autocare/database/repository/booking"
	userRepo "autocare/database/repository/user"
	"autocare/models"
	"autocare/services/catalog"
	"autocare/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the production BookingService backed by MongoDB.
// Notifier and Reminders are optional; a nil value disables that side effect.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	UserRepo  userRepo.UserRepository
	Catalog   catalog.CatalogService
	Notifier  Notifier
	Reminders ReminderScheduler
}

// Book creates a Pending booking for an active offering. The car is embedded
// as a value snapshot: later edits to the user's car list do not change it.
func (s *DefaultBookingService) Book(req BookRequest) (*models.Booking, error) {
	if req.ServiceID == "" {
		return nil, utils.ValidationErrorf("service id is required")
	}
	if req.LicensePlate == "" {
		return nil, utils.ValidationErrorf("license plate is required")
	}
	if req.ScheduledDate.IsZero() {
		return nil, utils.ValidationErrorf("scheduled date is required")
	}

	offering, err := s.Catalog.GetActive(req.ServiceID)
	if err != nil {
		return nil, err
	}

	usr, err := s.UserRepo.GetByID(req.UserID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch user for booking", zap.Error(err))
		return nil, fmt.Errorf("%w: failed to create booking", utils.ErrInternal)
	}
	if usr == nil {
		return nil, fmt.Errorf("%w: user %s", utils.ErrNotFound, req.UserID)
	}

	var car *models.Car
	for i := range usr.Cars {
		if usr.Cars[i].LicensePlate == req.LicensePlate {
			car = &usr.Cars[i]
			break
		}
	}
	if car == nil {
		return nil, utils.ValidationErrorf("no car with plate %s on this account", req.LicensePlate)
	}

	bk := &models.Booking{
		ID:            uuid.New().String(),
		UserID:        req.UserID,
		ServiceID:     offering.ID,
		ServiceName:   offering.Name,
		Car:           *car,
		ScheduledDate: req.ScheduledDate,
		Status:        models.BookingStatusPending,
		Notes:         req.Notes,
		Invoice: models.BookingInvoice{
			TotalCost:     offering.Price,
			PaymentStatus: models.PaymentStatusUnpaid,
		},
	}

	if err := s.Repo.Create(bk); err != nil {
		utils.GetLogger().Error("Failed to create booking", zap.Error(err))
		return nil, fmt.Errorf("%w: failed to create booking", utils.ErrInternal)
	}

	// Side effects are strictly best-effort: the booking write already
	// succeeded, so a failed broadcast or enqueue is only logged.
	if s.Notifier != nil {
		s.Notifier.Publish(models.NotificationEvent{
			Type:      models.EventNewBooking,
			BookingID: bk.ID,
			Message:   fmt.Sprintf("New booking for %s", bk.ServiceName),
			SentAt:    time.Now(),
		})
	}
	if s.Reminders != nil {
		if err := s.Reminders.Schedule(*bk); err != nil {
			utils.GetLogger().Warn("Failed to schedule booking reminder",
				zap.String("bookingID", bk.ID), zap.Error(err))
		}
	}

	return bk, nil
}

// Cancel transitions a booking to Cancelled. Cancellation is the owner's
// operation only, and only from Pending or Approved. The record is kept (not
// hard-deleted) so admin history survives; ListForUser hides it.
func (s *DefaultBookingService) Cancel(bookingID, requesterID string) error {
	bk, err := s.Repo.GetByID(bookingID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch booking for cancel", zap.Error(err))
		return fmt.Errorf("%w: failed to cancel booking", utils.ErrInternal)
	}
	if bk == nil {
		return fmt.Errorf("%w: booking %s", utils.ErrNotFound, bookingID)
	}
	if bk.UserID != requesterID {
		return fmt.Errorf("%w: booking %s belongs to another user", utils.ErrForbidden, bookingID)
	}
	if bk.Status != models.BookingStatusPending && bk.Status != models.BookingStatusApproved {
		return utils.ValidationErrorf("a %s booking cannot be cancelled", bk.Status)
	}

	if _, err := s.Repo.SetStatus(bookingID, models.BookingStatusCancelled); err != nil {
		utils.GetLogger().Error("Failed to cancel booking", zap.String("bookingID", bookingID), zap.Error(err))
		return fmt.Errorf("%w: failed to cancel booking", utils.ErrInternal)
	}
	return nil
}

// UpdateStatus writes any known status value. Regressions (Completed back to
// Pending) are allowed on purpose; only unknown values are rejected.
func (s *DefaultBookingService) UpdateStatus(bookingID, newStatus string) (*models.Booking, error) {
	if !models.KnownBookingStatus(newStatus) {
		return nil, utils.ValidationErrorf("unknown booking status %q", newStatus)
	}

	bk, err := s.Repo.SetStatus(bookingID, newStatus)
	if err != nil {
		utils.GetLogger().Error("Failed to update booking status", zap.String("bookingID", bookingID), zap.Error(err))
		return nil, fmt.Errorf("%w: failed to update booking", utils.ErrInternal)
	}
	if bk == nil {
		return nil, fmt.Errorf("%w: booking %s", utils.ErrNotFound, bookingID)
	}
	return bk, nil
}

// ListForUser retrieves the user's bookings, hiding cancelled ones.
func (s *DefaultBookingService) ListForUser(userID string) ([]models.Booking, error) {
	bookings, err := s.Repo.ListByUser(userID, models.BookingStatusCancelled)
	if err != nil {
		utils.GetLogger().Error("Failed to list bookings", zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("%w: failed to list bookings", utils.ErrInternal)
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

// ListAll retrieves every booking with owner identity for the admin view.
func (s *DefaultBookingService) ListAll() ([]models.AdminBooking, error) {
	bookings, err := s.Repo.ListAllWithOwner()
	if err != nil {
		utils.GetLogger().Error("Failed to list all bookings", zap.Error(err))
		return nil, fmt.Errorf("%w: failed to list bookings", utils.ErrInternal)
	}
	if bookings == nil {
		bookings = []models.AdminBooking{}
	}
	return bookings, nil
}
