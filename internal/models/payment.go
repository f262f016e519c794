package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const StatusUnknown = "unknown"

// PaymentEvent is the canonical view of one gateway delivery.
type PaymentEvent struct {
	SourceID      string
	EventType     string
	Kind          ResourceKind
	Status        string
	Amount        *decimal.Decimal
	CustomerEmail string
}

// PaymentStatusSnapshot is the latest known state for a single payment source.
// Snapshots are immutable once stored; every upsert replaces the whole value.
type PaymentStatusSnapshot struct {
	SourceID      string           `json:"source_id"`
	Status        string           `json:"status"`
	UpdatedAt     time.Time        `json:"updated_at"`
	CustomerEmail string           `json:"customer_email,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
}
