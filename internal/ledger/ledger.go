package ledger

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jeffleon2/draftea-webhook-service/internal/models"
)

// DefaultClaimLease is how long a postgres claim may stay unacknowledged before
// another dispatch is allowed to take it over.
const DefaultClaimLease = 5 * time.Minute

// Key is the idempotency key of a POS dispatch.
func Key(sourceID, status string) string {
	return strings.ToLower(sourceID) + "|" + strings.ToLower(status)
}

type entryState int

const (
	inFlight entryState = iota
	acked
)

// Memory is the default in-process ledger.
type Memory struct {
	entries sync.Map
}

func NewMemory() *Memory {
	return &Memory{}
}

// Claim reserves the pair for the caller. It returns false when the pair is
// already acknowledged or another dispatch holds it.
func (m *Memory) Claim(_ context.Context, sourceID, status string) (bool, error) {
	_, loaded := m.entries.LoadOrStore(Key(sourceID, status), inFlight)
	return !loaded, nil
}

// Release drops an unacknowledged claim so a later dispatch can try again.
func (m *Memory) Release(_ context.Context, sourceID, status string) error {
	m.entries.CompareAndDelete(Key(sourceID, status), inFlight)
	return nil
}

func (m *Memory) Mark(_ context.Context, req models.BackToPosRequest) error {
	m.entries.Store(Key(req.SourceID, req.Status), acked)
	return nil
}

// DispatchRepo is the persistence the postgres ledger needs.
type DispatchRepo interface {
	CreateIfAbsent(ctx context.Context, entity *models.PosDispatch) (bool, error)
	UpdateWhere(ctx context.Context, values map[string]interface{}, query string, args []interface{}) (int64, error)
	DeleteWhere(ctx context.Context, query string, args []interface{}) (int64, error)
}

// Postgres keeps claims and acknowledged dispatches in the pos_dispatches table so
// retries stay idempotent across restarts and replicas.
type Postgres struct {
	Repo  DispatchRepo
	Lease time.Duration
	now   func() time.Time
}

func NewPostgres(repo DispatchRepo) *Postgres {
	return &Postgres{Repo: repo, Lease: DefaultClaimLease, now: time.Now}
}

// Claim inserts an unacknowledged row. If the row exists it only succeeds by
// taking over a claim older than Lease.
func (p *Postgres) Claim(ctx context.Context, sourceID, status string) (bool, error) {
	now := p.now().UTC()
	key := Key(sourceID, status)

	created, err := p.Repo.CreateIfAbsent(ctx, &models.PosDispatch{
		ID:        key,
		SourceID:  sourceID,
		Status:    status,
		ClaimedAt: now,
	})
	if err != nil {
		return false, err
	}
	if created {
		return true, nil
	}

	taken, err := p.Repo.UpdateWhere(ctx,
		map[string]interface{}{"claimed_at": now},
		"id = ? AND acked = ? AND claimed_at < ?",
		[]interface{}{key, false, now.Add(-p.Lease)},
	)
	if err != nil {
		return false, err
	}
	return taken == 1, nil
}

func (p *Postgres) Release(ctx context.Context, sourceID, status string) error {
	_, err := p.Repo.DeleteWhere(ctx, "id = ? AND acked = ?", []interface{}{Key(sourceID, status), false})
	return err
}

// Mark flags the pair as acknowledged, inserting the row when no claim was recorded.
func (p *Postgres) Mark(ctx context.Context, req models.BackToPosRequest) error {
	now := p.now().UTC()
	key := Key(req.SourceID, req.Status)

	updated, err := p.Repo.UpdateWhere(ctx,
		map[string]interface{}{"acked": true, "trace_id": req.TraceID, "dispatched_at": now},
		"id = ?",
		[]interface{}{key},
	)
	if err != nil {
		return err
	}
	if updated > 0 {
		return nil
	}

	_, err = p.Repo.CreateIfAbsent(ctx, &models.PosDispatch{
		ID:           key,
		SourceID:     req.SourceID,
		Status:       req.Status,
		TraceID:      req.TraceID,
		Acked:        true,
		ClaimedAt:    now,
		DispatchedAt: &now,
	})
	return err
}
