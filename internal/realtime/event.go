package realtime

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Channel is the Postgres NOTIFY channel fed by the orders trigger.
const Channel = "order_changes"

const AcceptedNotice = "Order accepted! Please proceed to pay."

// Event is the trigger payload for one changed orders row. A zero Event
// (Resync) asks every subscriber to re-fetch.
type Event struct {
	Table      string    `json:"table"`
	Op         string    `json:"op"`
	OrderID    uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	CookID     uuid.UUID `json:"cook_id"`
	Status     string    `json:"status"`
	OldStatus  string    `json:"old_status"`
	Resync     bool      `json:"-"`
}

func ParseEvent(payload string) (Event, error) {
	var e Event
	if err := json.Unmarshal([]byte(payload), &e); err != nil {
		return Event{}, fmt.Errorf("realtime: decoding payload: %w", err)
	}
	if e.Table != "orders" {
		return Event{}, fmt.Errorf("realtime: unexpected table %q", e.Table)
	}
	return e, nil
}

// BecameAccepted reports whether this change moved the order into accepted.
func (e Event) BecameAccepted() bool {
	return e.Status == "accepted" && e.OldStatus != "accepted"
}
