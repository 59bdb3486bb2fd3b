// Package notify is the change-notification hub the core emits into.
// Delivery is fire-and-forget: a slow subscriber loses events rather than
// blocking the operation that produced them.
package notify

import "sync"

const (
	EventDocumentUpdated = "document_updated"
	EventOverrideUpdated = "override_updated"
)

// Event describes a change to a reporting slice.
type Event struct {
	Name       string `json:"name"`
	CustomerID string `json:"customer_id"`
	AccountID  string `json:"account_id,omitempty"`
	Cadence    string `json:"cadence,omitempty"`
	Month      string `json:"month,omitempty"`
	Date       string `json:"date,omitempty"`
}

// Hub fans events out to subscribers over buffered channels.
type Hub struct {
	mu   sync.Mutex
	next int
	subs map[int]chan Event
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan Event)}
}

// Subscribe registers a new subscriber. The returned cancel func must be
// called to release the channel.
func (h *Hub) Subscribe(buffer int) (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.next
	h.next++

	ch := make(chan Event, buffer)
	h.subs[id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		if c, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(c)
		}
	}

	return ch, cancel
}

// Publish delivers the event to every subscriber without blocking. A nil hub
// is a valid no-op publisher, which keeps wiring optional in tests.
func (h *Hub) Publish(ev Event) {
	if h == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs {
		select {
		case ch <- ev:
		default:
			// Subscriber is behind; drop rather than block the core.
		}
	}
}
