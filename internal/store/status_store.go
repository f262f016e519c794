package store

import (
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jeffleon2/draftea-webhook-service/internal/models"
	"github.com/shopspring/decimal"
)

// StatusStore keeps the latest PaymentStatusSnapshot per source id in memory.
//
// Keys are case-insensitive. Each upsert swaps in a new immutable snapshot, so
// readers always see one writer's complete value. Writes are ordered by arrival,
// not by event time: a late redelivery overwrites a newer status.
type StatusStore struct {
	snapshots sync.Map // lower(sourceID) -> *models.PaymentStatusSnapshot
	size      atomic.Int64
	now       func() time.Time
}

func NewStatusStore() *StatusStore {
	return &StatusStore{now: time.Now}
}

// WithClock replaces the time source used to stamp UpdatedAt.
func (s *StatusStore) WithClock(now func() time.Time) *StatusStore {
	s.now = now
	return s
}

// Upsert stores a new snapshot for sourceID, replacing any previous one in full.
// A blank status is stored as "unknown".
func (s *StatusStore) Upsert(sourceID, status, email string, amount *decimal.Decimal) models.PaymentStatusSnapshot {
	if strings.TrimSpace(status) == "" {
		status = models.StatusUnknown
	}

	snapshot := &models.PaymentStatusSnapshot{
		SourceID:      sourceID,
		Status:        status,
		UpdatedAt:     s.now(),
		CustomerEmail: email,
		Amount:        copyAmount(amount),
	}

	if _, loaded := s.snapshots.Swap(key(sourceID), snapshot); !loaded {
		s.size.Add(1)
	}
	return *snapshot
}

// TryGet returns the latest snapshot for sourceID.
func (s *StatusStore) TryGet(sourceID string) (models.PaymentStatusSnapshot, bool) {
	v, ok := s.snapshots.Load(key(sourceID))
	if !ok {
		return models.PaymentStatusSnapshot{}, false
	}
	snapshot := *v.(*models.PaymentStatusSnapshot)
	snapshot.Amount = copyAmount(snapshot.Amount)
	return snapshot, true
}

// Len returns the number of tracked sources.
func (s *StatusStore) Len() int {
	return int(s.size.Load())
}

func key(sourceID string) string {
	return strings.ToLower(sourceID)
}

func copyAmount(amount *decimal.Decimal) *decimal.Decimal {
	if amount == nil {
		return nil
	}
	c := amount.Copy()
	return &c
}
