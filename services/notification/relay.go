package notification

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"autocare/models"
	"autocare/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Relay is a single best-effort broadcast topic: anything published is fanned
// out to every current subscriber. No persistence, no acknowledgment, no
// redelivery on reconnect; the store stays the source of truth.
type Relay interface {
	// Publish broadcasts an event. Never blocks; slow subscribers drop it.
	Publish(event models.NotificationEvent)
	// Subscribe returns an event channel and a cancel function that must be
	// called when the subscriber disconnects.
	Subscribe() (<-chan models.NotificationEvent, func())
}

const subscriberBuffer = 16

// BroadcastRelay implements Relay with an in-process hub, optionally bridged
// across instances through a Redis pub/sub channel.
type BroadcastRelay struct {
	mu     sync.RWMutex
	subs   map[chan models.NotificationEvent]struct{}
	bridge *redis.Client
}

// NewBroadcastRelay creates a relay. A nil client keeps the relay purely
// in-process; with a client, events travel through Redis so every instance
// (including the publisher's own subscribers) sees them.
func NewBroadcastRelay(bridge *redis.Client) *BroadcastRelay {
	r := &BroadcastRelay{
		subs:   make(map[chan models.NotificationEvent]struct{}),
		bridge: bridge,
	}
	if bridge != nil {
		go r.listenBridge()
	}
	return r
}

// listenBridge fans Redis messages into the local hub.
func (r *BroadcastRelay) listenBridge() {
	sub := r.bridge.Subscribe(context.Background(), utils.RelayChannel)
	for msg := range sub.Channel() {
		var event models.NotificationEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			utils.GetLogger().Warn("Dropping malformed relay payload", zap.Error(err))
			continue
		}
		r.fanout(event)
	}
}

// Publish broadcasts an event without ever blocking the caller.
func (r *BroadcastRelay) Publish(event models.NotificationEvent) {
	if event.SentAt.IsZero() {
		event.SentAt = time.Now()
	}

	if r.bridge == nil {
		r.fanout(event)
		return
	}

	// Local delivery happens through the bridge subscription, so publishing
	// to Redis is the only send. Done off the caller's goroutine: the relay
	// must never sit on the critical path of a booking write.
	go func() {
		payload, err := json.Marshal(event)
		if err != nil {
			utils.GetLogger().Warn("Failed to encode relay event", zap.Error(err))
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := r.bridge.Publish(ctx, utils.RelayChannel, payload).Err(); err != nil {
			utils.GetLogger().Warn("Failed to publish relay event", zap.Error(err))
		}
	}()
}

func (r *BroadcastRelay) fanout(event models.NotificationEvent) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for ch := range r.subs {
		select {
		case ch <- event:
		default:
			// Subscriber is not keeping up; the event is advisory, drop it.
		}
	}
}

// Subscribe registers a new subscriber channel.
func (r *BroadcastRelay) Subscribe() (<-chan models.NotificationEvent, func()) {
	ch := make(chan models.NotificationEvent, subscriberBuffer)

	r.mu.Lock()
	r.subs[ch] = struct{}{}
	r.mu.Unlock()

	cancel := func() {
		r.mu.Lock()
		if _, ok := r.subs[ch]; ok {
			delete(r.subs, ch)
			close(ch)
		}
		r.mu.Unlock()
	}
	return ch, cancel
}

// SubscriberCount reports the number of connected subscribers.
func (r *BroadcastRelay) SubscriberCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs)
}
