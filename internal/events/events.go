package events

import (
	"context"
	"time"
)

// Event is one cart activity record published for downstream consumers
// (analytics, abandoned-cart jobs). Publishing is fire and forget; nothing
// in the cart core depends on delivery.
type Event struct {
	Type       string    `json:"type"`
	SessionID  string    `json:"session_id"`
	ProductID  string    `json:"product_id,omitempty"`
	Size       string    `json:"size,omitempty"`
	LookID     string    `json:"look_id,omitempty"`
	Count      int       `json:"count,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

const (
	TypeItemAdded = "cart.item_added"
	TypeLookAdded = "cart.look_added"
)

// Publisher emits cart events best effort. Implementations must swallow
// their own failures; a broker outage never surfaces to the shopper.
type Publisher interface {
	ItemAdded(ctx context.Context, sessionID, productID, size string)
	LookAdded(ctx context.Context, sessionID, lookID string, count int)
	Close() error
}

// Nop discards every event. Used when no broker is configured and in
// tests.
type Nop struct{}

func (Nop) ItemAdded(context.Context, string, string, string) {}
func (Nop) LookAdded(context.Context, string, string, int)    {}
func (Nop) Close() error                                      { return nil }
