package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"autocare/config"
	"autocare/models"
	"autocare/services/notification"
	"autocare/services/tasks"

	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the asynq worker in the background. Due reminders
// are pushed to connected clients through the notification relay; the relay
// is best-effort, so a missed reminder is never retried past asynq's own
// retry policy.
func InitReminderWorker(relay notification.Relay) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingReminder, handleReminderTask(relay))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(relay notification.Relay) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload tasks.BookingReminderPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("failed to decode reminder payload: %w", err)
		}

		relay.Publish(models.NotificationEvent{
			Type:      models.EventBookingReminder,
			BookingID: payload.BookingID,
			Message: fmt.Sprintf("Reminder: %s appointment at %s",
				payload.ServiceName, payload.ScheduledDate.Format(time.RFC1123)),
			SentAt: time.Now(),
		})
		return nil
	}
}
