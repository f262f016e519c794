package dispatcher

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jeffleon2/draftea-webhook-service/internal/metrics"
	"github.com/jeffleon2/draftea-webhook-service/internal/models"
	"github.com/sirupsen/logrus"
)

// PosClient is the POS ingestion contract. A nil error is an acknowledgement.
type PosClient interface {
	Accept(ctx context.Context, req models.BackToPosRequest) error
}

// Ledger makes dispatch idempotent per (source, status). Claim is atomic: only one
// caller wins a pair until it is released or acknowledged.
type Ledger interface {
	Claim(ctx context.Context, sourceID, status string) (bool, error)
	Release(ctx context.Context, sourceID, status string) error
	Mark(ctx context.Context, req models.BackToPosRequest) error
}

// RetryQueue receives dispatches that failed so they can be redriven later.
type RetryQueue interface {
	Enqueue(ctx context.Context, req models.BackToPosRequest, reason string) error
}

// Dispatcher forwards terminal payment statuses to the POS. It never touches the
// status store: a failed dispatch leaves the stored snapshot as it is.
type Dispatcher struct {
	Client   PosClient
	Ledger   Ledger
	Retry    RetryQueue
	terminal map[string]struct{}
	validate *validator.Validate
}

// NewDispatcher builds a dispatcher. retry may be nil, in which case failed
// dispatches are only logged.
func NewDispatcher(client PosClient, ledger Ledger, retry RetryQueue, terminalStatuses []string) *Dispatcher {
	terminal := make(map[string]struct{}, len(terminalStatuses))
	for _, s := range terminalStatuses {
		terminal[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}

	return &Dispatcher{
		Client:   client,
		Ledger:   ledger,
		Retry:    retry,
		terminal: terminal,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (d *Dispatcher) IsTerminal(status string) bool {
	_, ok := d.terminal[strings.ToLower(strings.TrimSpace(status))]
	return ok
}

// MaybeDispatch sends snapshot to the POS when its status is terminal and the
// pair was not acknowledged before.
func (d *Dispatcher) MaybeDispatch(ctx context.Context, snapshot models.PaymentStatusSnapshot) models.DispatchOutcome {
	outcome := d.maybeDispatch(ctx, snapshot)
	metrics.PosDispatchTotal.WithLabelValues(string(outcome)).Inc()
	return outcome
}

func (d *Dispatcher) maybeDispatch(ctx context.Context, snapshot models.PaymentStatusSnapshot) models.DispatchOutcome {
	if !d.IsTerminal(snapshot.Status) {
		return models.OutcomeSkipped
	}

	log := logrus.WithFields(logrus.Fields{
		"source_id": snapshot.SourceID,
		"status":    snapshot.Status,
	})

	if !d.claim(ctx, snapshot.SourceID, snapshot.Status) {
		log.Info("POS dispatch for this status already done or in flight, skipping")
		return models.OutcomeDuplicate
	}

	req := models.NewBackToPosRequest(snapshot)
	log = log.WithField("trace_id", req.TraceID)

	if err := d.validate.Struct(req); err != nil {
		log.Errorf("Invalid BackToPosRequest, not dispatching: %s", err.Error())
		d.release(ctx, req)
		return models.OutcomeFailed
	}

	if err := d.send(ctx, req); err != nil {
		log.Errorf("Error dispatching to POS: %s", err.Error())
		d.release(ctx, req)
		d.enqueueRetry(ctx, req, err)
		return models.OutcomeFailed
	}

	log.Info("POS acknowledged payment status")
	return models.OutcomeSent
}

// Redeliver retries a previously failed request. Duplicates are acknowledged
// without calling the POS again.
func (d *Dispatcher) Redeliver(ctx context.Context, req models.BackToPosRequest) error {
	if !d.claim(ctx, req.SourceID, req.Status) {
		metrics.PosRetriesTotal.WithLabelValues(string(models.OutcomeDuplicate)).Inc()
		return nil
	}

	if err := d.validate.Struct(req); err != nil {
		d.release(ctx, req)
		metrics.PosRetriesTotal.WithLabelValues(string(models.OutcomeFailed)).Inc()
		return fmt.Errorf("%w: invalid request: %s", models.ErrDispatch, err.Error())
	}

	if err := d.send(ctx, req); err != nil {
		d.release(ctx, req)
		metrics.PosRetriesTotal.WithLabelValues(string(models.OutcomeFailed)).Inc()
		return err
	}

	metrics.PosRetriesTotal.WithLabelValues(string(models.OutcomeSent)).Inc()
	return nil
}

func (d *Dispatcher) send(ctx context.Context, req models.BackToPosRequest) error {
	if err := d.Client.Accept(ctx, req); err != nil {
		return fmt.Errorf("%w: %s", models.ErrDispatch, err.Error())
	}

	if err := d.Ledger.Mark(ctx, req); err != nil {
		logrus.Warnf("POS acknowledged %s/%s but the ledger could not record it: %s", req.SourceID, req.Status, err.Error())
	}
	return nil
}

// claim fails open: a ledger error means the POS may see the same status twice.
func (d *Dispatcher) claim(ctx context.Context, sourceID, status string) bool {
	claimed, err := d.Ledger.Claim(ctx, sourceID, status)
	if err != nil {
		logrus.Warnf("Error claiming dispatch ledger entry for %s/%s: %s", sourceID, status, err.Error())
		return true
	}
	return claimed
}

func (d *Dispatcher) release(ctx context.Context, req models.BackToPosRequest) {
	if err := d.Ledger.Release(ctx, req.SourceID, req.Status); err != nil {
		logrus.Warnf("Error releasing dispatch ledger entry for %s/%s: %s", req.SourceID, req.Status, err.Error())
	}
}

func (d *Dispatcher) enqueueRetry(ctx context.Context, req models.BackToPosRequest, cause error) {
	if d.Retry == nil {
		return
	}
	if err := d.Retry.Enqueue(ctx, req, cause.Error()); err != nil {
		logrus.Errorf("Error enqueueing POS retry for %s: %s", req.SourceID, err.Error())
	}
}
