package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"autocare/config"
	"autocare/models"

	"github.com/hibiken/asynq"
)

// TypeBookingReminder is the asynq task type for appointment reminders.
const TypeBookingReminder = "booking:reminder"

// reminderLead is how far ahead of the appointment the reminder fires.
const reminderLead = time.Hour

// BookingReminderPayload is the serialized task payload.
type BookingReminderPayload struct {
	BookingID     string    `json:"bookingId"`
	ServiceName   string    `json:"serviceName"`
	ScheduledDate time.Time `json:"scheduledDate"`
}

// AsynqReminderScheduler enqueues deferred booking reminders on asynq.
type AsynqReminderScheduler struct {
	client *asynq.Client
}

// NewAsynqReminderScheduler creates a scheduler backed by the configured
// Redis reminder queue.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
	return &AsynqReminderScheduler{client: client}
}

// Schedule enqueues a reminder to fire ahead of the appointment. Bookings too
// close to (or past) their date get no reminder.
func (s *AsynqReminderScheduler) Schedule(booking models.Booking) error {
	remindAt := booking.ScheduledDate.Add(-reminderLead)
	if !remindAt.After(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(BookingReminderPayload{
		BookingID:     booking.ID,
		ServiceName:   booking.ServiceName,
		ScheduledDate: booking.ScheduledDate,
	})
	if err != nil {
		return fmt.Errorf("failed to encode reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeBookingReminder, payload)
	if _, err := s.client.Enqueue(task, asynq.ProcessAt(remindAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder for booking %s: %w", booking.ID, err)
	}
	return nil
}

// Close releases the underlying asynq client.
func (s *AsynqReminderScheduler) Close() error {
	return s.client.Close()
}
