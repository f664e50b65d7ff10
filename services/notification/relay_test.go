package notification

import (
	"testing"
	"time"

	"autocare/models"
)

func TestRelayFanout(t *testing.T) {
	relay := NewBroadcastRelay(nil)

	chA, cancelA := relay.Subscribe()
	chB, cancelB := relay.Subscribe()
	defer cancelA()
	defer cancelB()

	relay.Publish(models.NotificationEvent{Type: models.EventNewBooking, BookingID: "b1"})

	for _, ch := range []<-chan models.NotificationEvent{chA, chB} {
		select {
		case event := <-ch:
			if event.BookingID != "b1" {
				t.Fatalf("unexpected event: %+v", event)
			}
			if event.SentAt.IsZero() {
				t.Fatalf("expected a publish timestamp")
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber never received the event")
		}
	}
}

func TestRelayPublishNeverBlocks(t *testing.T) {
	relay := NewBroadcastRelay(nil)

	_, cancel := relay.Subscribe()
	defer cancel()

	// A subscriber that never drains must not stall the publisher.
	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer*4; i++ {
			relay.Publish(models.NotificationEvent{Type: models.EventNewBooking})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("publish blocked on a slow subscriber")
	}
}

func TestRelayCancelRemovesSubscriber(t *testing.T) {
	relay := NewBroadcastRelay(nil)

	ch, cancel := relay.Subscribe()
	if relay.SubscriberCount() != 1 {
		t.Fatalf("expected one subscriber, got %d", relay.SubscriberCount())
	}

	cancel()
	if relay.SubscriberCount() != 0 {
		t.Fatalf("expected no subscribers after cancel, got %d", relay.SubscriberCount())
	}
	if _, open := <-ch; open {
		t.Fatalf("expected the channel closed after cancel")
	}

	// Cancelling twice is safe.
	cancel()

	relay.Publish(models.NotificationEvent{Type: models.EventNewBooking})
}
