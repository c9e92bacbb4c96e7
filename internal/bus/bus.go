// Package bus is the in-process change-notification signal: stores publish
// a topic after every successful write, views subscribe and re-read storage.
// Signals carry no payload beyond the topic itself.
package bus

import (
	"log/slog"
	"sync"

	"github.com/kiliclub/clubdesk/internal/model"
)

// subscriptionBuffer is the per-subscriber signal buffer. Sends never block
// the publisher; a subscriber that falls this far behind loses signals, which
// is harmless since a single re-read catches it up.
const subscriptionBuffer = 16

// Bus fans change notifications out to subscribers
type Bus struct {
	mu     sync.RWMutex
	subs   map[*Subscription]struct{}
	closed bool
	logger *slog.Logger
}

// Subscription receives topic signals on C until closed
type Subscription struct {
	C      chan model.Topic
	topics map[model.Topic]struct{} // nil means all topics
	bus    *Bus
	once   sync.Once
}

// New creates a Bus
func New(logger *slog.Logger) *Bus {
	return &Bus{
		subs:   make(map[*Subscription]struct{}),
		logger: logger.With(slog.String("component", "bus")),
	}
}

// Subscribe registers for signals on the given topics. With no topics the
// subscription receives every signal.
func (b *Bus) Subscribe(topics ...model.Topic) *Subscription {
	sub := &Subscription{
		C:   make(chan model.Topic, subscriptionBuffer),
		bus: b,
	}
	if len(topics) > 0 {
		sub.topics = make(map[model.Topic]struct{}, len(topics))
		for _, t := range topics {
			sub.topics[t] = struct{}{}
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(sub.C)
		return sub
	}
	b.subs[sub] = struct{}{}
	return sub
}

// Publish signals that the collection behind topic changed. Never blocks;
// subscribers with full buffers miss the signal.
func (b *Bus) Publish(topic model.Topic) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}

	dropped := 0
	for sub := range b.subs {
		if sub.topics != nil {
			if _, ok := sub.topics[topic]; !ok {
				continue
			}
		}
		select {
		case sub.C <- topic:
		default:
			dropped++
		}
	}
	if dropped > 0 {
		b.logger.Warn("notification dropped - subscriber buffer full",
			slog.String("topic", string(topic)),
			slog.Int("dropped", dropped))
	}
}

// Close shuts the bus down and closes every subscription channel
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for sub := range b.subs {
		close(sub.C)
		delete(b.subs, sub)
	}
}

// Close detaches the subscription and closes its channel
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.bus.mu.Lock()
		defer s.bus.mu.Unlock()
		if _, ok := s.bus.subs[s]; ok {
			delete(s.bus.subs, s)
			close(s.C)
		}
	})
}
