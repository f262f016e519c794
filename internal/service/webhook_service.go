package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jeffleon2/draftea-webhook-service/internal/metrics"
	"github.com/jeffleon2/draftea-webhook-service/internal/models"
	"github.com/jeffleon2/draftea-webhook-service/internal/normalizer"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Verifier authenticates a raw delivery against its signature header.
type Verifier interface {
	Verify(header string, payload []byte) bool
}

// StatusStore is the shared snapshot store.
type StatusStore interface {
	Upsert(sourceID, status, email string, amount *decimal.Decimal) models.PaymentStatusSnapshot
	TryGet(sourceID string) (models.PaymentStatusSnapshot, bool)
	Len() int
}

// Dispatcher forwards a stored snapshot to the POS when it warrants it.
type Dispatcher interface {
	MaybeDispatch(ctx context.Context, snapshot models.PaymentStatusSnapshot) models.DispatchOutcome
}

// WebhookService runs the ingestion pipeline: verify, normalize, upsert, dispatch.
// Dispatch happens off the caller's goroutine so a slow POS never holds up a delivery.
type WebhookService struct {
	Verifier        Verifier
	Store           StatusStore
	Dispatcher      Dispatcher
	DispatchTimeout time.Duration

	statusLabels metrics.StatusLabeler
	inflight     sync.WaitGroup
}

func NewWebhookService(v Verifier, s StatusStore, d Dispatcher, dispatchTimeout time.Duration) *WebhookService {
	if dispatchTimeout <= 0 {
		dispatchTimeout = 10 * time.Second
	}
	return &WebhookService{
		Verifier:        v,
		Store:           s,
		Dispatcher:      d,
		DispatchTimeout: dispatchTimeout,
		statusLabels:    metrics.NewStatusLabeler(metrics.DefaultTrackedStatuses...),
	}
}

// WithTrackedStatuses adds statuses that get their own metric label. Anything
// else is counted as "other".
func (s *WebhookService) WithTrackedStatuses(statuses []string) *WebhookService {
	all := append(append([]string{}, metrics.DefaultTrackedStatuses...), statuses...)
	s.statusLabels = metrics.NewStatusLabeler(all...)
	return s
}

// HandleDelivery processes one webhook delivery. Rejected deliveries leave the store untouched.
func (s *WebhookService) HandleDelivery(ctx context.Context, signatureHeader string, body []byte) (models.PaymentStatusSnapshot, error) {
	if !s.Verifier.Verify(signatureHeader, body) {
		metrics.WebhookDeliveriesTotal.WithLabelValues(metrics.ResultUnauthorized).Inc()
		return models.PaymentStatusSnapshot{}, fmt.Errorf("%w: signature mismatch", models.ErrAuthentication)
	}

	event, err := normalizer.Normalize(body)
	if err != nil {
		metrics.WebhookDeliveriesTotal.WithLabelValues(metrics.ResultMalformed).Inc()
		return models.PaymentStatusSnapshot{}, err
	}

	snapshot := s.Store.Upsert(event.SourceID, event.Status, event.CustomerEmail, event.Amount)

	metrics.WebhookDeliveriesTotal.WithLabelValues(metrics.ResultAccepted).Inc()
	metrics.StatusUpsertsTotal.WithLabelValues(s.statusLabels.Label(snapshot.Status)).Inc()
	if event.Amount != nil {
		metrics.PaymentAmounts.Observe(event.Amount.InexactFloat64())
	}

	logrus.WithFields(logrus.Fields{
		"source_id":  snapshot.SourceID,
		"status":     snapshot.Status,
		"event_type": event.EventType,
		"kind":       event.Kind,
	}).Info("Payment status updated")

	s.dispatchAsync(ctx, snapshot)

	return snapshot, nil
}

func (s *WebhookService) dispatchAsync(ctx context.Context, snapshot models.PaymentStatusSnapshot) {
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()

		dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.DispatchTimeout)
		defer cancel()

		outcome := s.Dispatcher.MaybeDispatch(dctx, snapshot)
		logrus.WithFields(logrus.Fields{
			"source_id": snapshot.SourceID,
			"status":    snapshot.Status,
			"outcome":   outcome,
		}).Debug("Reconciliation dispatch finished")
	}()
}

// GetStatus returns the latest snapshot for sourceID (case-insensitive).
func (s *WebhookService) GetStatus(sourceID string) (models.PaymentStatusSnapshot, bool) {
	return s.Store.TryGet(sourceID)
}

func (s *WebhookService) TrackedSources() int {
	return s.Store.Len()
}

// Wait blocks until every in-flight dispatch has finished.
func (s *WebhookService) Wait() {
	s.inflight.Wait()
}
