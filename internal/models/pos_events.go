package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DispatchOutcome string

const (
	OutcomeSkipped   DispatchOutcome = "skipped"
	OutcomeDuplicate DispatchOutcome = "duplicate"
	OutcomeSent      DispatchOutcome = "sent"
	OutcomeFailed    DispatchOutcome = "failed"
)

// BackToPosRequest is what the POS receives when a payment reaches a terminal status.
type BackToPosRequest struct {
	SourceID      string           `json:"source_id" validate:"required"`
	Status        string           `json:"status" validate:"required"`
	CustomerEmail string           `json:"customer_email,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty" validate:"-"`
	UpdatedAt     time.Time        `json:"updated_at"`
	TraceID       string           `json:"trace_id"`
}

func NewBackToPosRequest(snapshot PaymentStatusSnapshot) BackToPosRequest {
	return BackToPosRequest{
		SourceID:      snapshot.SourceID,
		Status:        snapshot.Status,
		CustomerEmail: snapshot.CustomerEmail,
		Amount:        snapshot.Amount,
		UpdatedAt:     snapshot.UpdatedAt,
		TraceID:       uuid.New().String(),
	}
}

// RetryMessage carries a failed POS dispatch through the retry topic.
type RetryMessage struct {
	Request  BackToPosRequest `json:"request"`
	Reason   string           `json:"reason"`
	FailedAt time.Time        `json:"failed_at"`
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
	Reason        string    `json:"reason,omitempty"`
}
