package realtime

import (
	"testing"

	"foodpool-be/internal/metrics"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEvent(t *testing.T) {
	id, customer, cook := uuid.New(), uuid.New(), uuid.New()
	payload := `{"table":"orders","op":"UPDATE","id":"` + id.String() +
		`","customer_id":"` + customer.String() + `","cook_id":"` + cook.String() +
		`","status":"accepted","old_status":"pending"}`

	e, err := ParseEvent(payload)
	require.NoError(t, err)
	assert.Equal(t, id, e.OrderID)
	assert.Equal(t, customer, e.CustomerID)
	assert.True(t, e.BecameAccepted())

	_, err = ParseEvent(`{"table":"listings"}`)
	assert.Error(t, err)
	_, err = ParseEvent(`not json`)
	assert.Error(t, err)
}

func TestEvent_BecameAccepted(t *testing.T) {
	assert.False(t, Event{Status: "accepted", OldStatus: "accepted"}.BecameAccepted())
	assert.False(t, Event{Status: "confirmed", OldStatus: "accepted"}.BecameAccepted())
	assert.True(t, Event{Status: "accepted", OldStatus: "pending"}.BecameAccepted())
}

func subscribers(h *Hub) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func TestHub_RoutesByOwner(t *testing.T) {
	hub := NewHub(metrics.NewRegistry())
	customer, cook, other := uuid.New(), uuid.New(), uuid.New()

	cs := hub.Subscribe(customer, SideCustomer)
	ks := hub.Subscribe(cook, SideCook)
	os := hub.Subscribe(other, SideCustomer)
	assert.Equal(t, 3, subscribers(hub))

	hub.Publish(Event{Table: "orders", CustomerID: customer, CookID: cook})

	assert.Len(t, cs.C, 1)
	assert.Len(t, ks.C, 1)
	assert.Len(t, os.C, 0)

	hub.Publish(Event{Resync: true})
	assert.Len(t, os.C, 1)

	hub.Unsubscribe(os)
	hub.Unsubscribe(os)
	assert.Equal(t, 2, subscribers(hub))
}

func TestHub_PublishNeverBlocks(t *testing.T) {
	reg := metrics.NewRegistry()
	hub := NewHub(reg)
	owner := uuid.New()
	sub := hub.Subscribe(owner, SideCook)

	for i := 0; i < subscriberBuffer+3; i++ {
		hub.Publish(Event{CookID: owner})
	}

	assert.Len(t, sub.C, subscriberBuffer)
	assert.Equal(t, uint64(3), reg.Counter("realtime_dropped").Load())
	assert.Equal(t, int64(1), reg.Gauge("realtime_subscribers").Load())
}
