package realtime

import (
	"sync"

	"foodpool-be/internal/metrics"

	"github.com/google/uuid"
)

type Side string

const (
	SideCustomer Side = "customer"
	SideCook     Side = "cook"
)

const subscriberBuffer = 8

type Subscription struct {
	Owner uuid.UUID
	Side  Side
	C     chan Event
}

func (s *Subscription) matches(e Event) bool {
	if e.Resync {
		return true
	}
	switch s.Side {
	case SideCustomer:
		return e.CustomerID == s.Owner
	case SideCook:
		return e.CookID == s.Owner
	}
	return false
}

// Hub fans order events out to the subscriptions they belong to.
type Hub struct {
	mu   sync.RWMutex
	subs map[*Subscription]struct{}

	open      *metrics.Gauge
	delivered *metrics.Counter
	dropped   *metrics.Counter
}

func NewHub(reg *metrics.Registry) *Hub {
	return &Hub{
		subs:      make(map[*Subscription]struct{}),
		open:      reg.Gauge("realtime_subscribers"),
		delivered: reg.Counter("realtime_delivered"),
		dropped:   reg.Counter("realtime_dropped"),
	}
}

func (h *Hub) Subscribe(owner uuid.UUID, side Side) *Subscription {
	s := &Subscription{Owner: owner, Side: side, C: make(chan Event, subscriberBuffer)}
	h.mu.Lock()
	h.subs[s] = struct{}{}
	h.mu.Unlock()
	h.open.Inc()
	return s
}

func (h *Hub) Unsubscribe(s *Subscription) {
	h.mu.Lock()
	_, ok := h.subs[s]
	delete(h.subs, s)
	h.mu.Unlock()
	if ok {
		h.open.Dec()
	}
}

// Publish never blocks. A full subscriber misses the event; the next one
// carries the complete list again.
func (h *Hub) Publish(e Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for s := range h.subs {
		if !s.matches(e) {
			continue
		}
		select {
		case s.C <- e:
			h.delivered.Inc()
		default:
			h.dropped.Inc()
		}
	}
}
