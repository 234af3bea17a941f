package session

import (
	"sync"

	"vidcall_server/internal/model"

	"go.uber.org/zap"
)

// Hub fans session events out to every live subscription of a user.
// One Hub exists per process; it is created at boot and closed on shutdown.
type Hub struct {
	mu          sync.Mutex
	subscribers map[string]map[chan model.SessionEvent]struct{}
	bufferSize  int
	closed      bool
}

// NewHub creates a hub whose subscriber channels hold bufferSize events.
func NewHub(bufferSize int) *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan model.SessionEvent]struct{}),
		bufferSize:  bufferSize,
	}
}

// Subscribe registers a listener for userID. The channel is closed when
// cancel is called, when the user is dropped, or when the hub closes.
// cancel is safe to call more than once.
func (h *Hub) Subscribe(userID string) (<-chan model.SessionEvent, func()) {
	ch := make(chan model.SessionEvent, h.bufferSize)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(ch)
		return ch, func() {}
	}
	subs, ok := h.subscribers[userID]
	if !ok {
		subs = make(map[chan model.SessionEvent]struct{})
		h.subscribers[userID] = subs
	}
	subs[ch] = struct{}{}

	return ch, func() { h.unsubscribe(userID, ch) }
}

func (h *Hub) unsubscribe(userID string, ch chan model.SessionEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	subs, ok := h.subscribers[userID]
	if !ok {
		return
	}
	if _, ok := subs[ch]; !ok {
		return
	}
	delete(subs, ch)
	close(ch)
	if len(subs) == 0 {
		delete(h.subscribers, userID)
	}
}

// Publish delivers event to the user's subscribers without blocking.
// A subscriber whose buffer is full misses the event.
func (h *Hub) Publish(event model.SessionEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subscribers[event.UserID] {
		select {
		case ch <- event:
		default:
			zap.L().Warn("session subscriber buffer full, event dropped",
				zap.String("user_id", event.UserID),
				zap.String("type", string(event.Type)))
		}
	}
}

// Drop closes every subscription of userID. Events already buffered are
// still readable.
func (h *Hub) Drop(userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subscribers[userID] {
		close(ch)
	}
	delete(h.subscribers, userID)
}

// subscriberCount reports how many live subscriptions userID has.
func (h *Hub) subscriberCount(userID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers[userID])
}

// Close ends every subscription; later Subscribe calls get a closed channel.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for userID, subs := range h.subscribers {
		for ch := range subs {
			close(ch)
		}
		delete(h.subscribers, userID)
	}
}
