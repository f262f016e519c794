package models

import "time"

// PosDispatch is the ledger row of a (source, status) pair. A row with Acked=false
// is a claim held by a dispatch in flight.
type PosDispatch struct {
	ID           string     `gorm:"primaryKey" json:"id"`
	SourceID     string     `gorm:"index" json:"source_id"`
	Status       string     `json:"status"`
	TraceID      string     `json:"trace_id"`
	Acked        bool       `gorm:"not null;default:false" json:"acked"`
	ClaimedAt    time.Time  `json:"claimed_at"`
	DispatchedAt *time.Time `json:"dispatched_at,omitempty"`
}

func (PosDispatch) TableName() string {
	return "pos_dispatches"
}
