package normalizer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jeffleon2/draftea-webhook-service/internal/models"
	"github.com/shopspring/decimal"
)

// Normalize decodes a raw webhook body into a PaymentEvent. Status is reported as
// observed, including empty.
func Normalize(raw []byte) (models.PaymentEvent, error) {
	var envelope models.Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return models.PaymentEvent{}, fmt.Errorf("%w: %s", models.ErrMalformedPayload, err.Error())
	}
	return FromEnvelope(envelope)
}

func FromEnvelope(envelope models.Envelope) (models.PaymentEvent, error) {
	if envelope.Data == nil {
		return models.PaymentEvent{}, fmt.Errorf("%w: missing data object", models.ErrMalformedPayload)
	}
	sourceID := strings.TrimSpace(envelope.Data.ID)
	if sourceID == "" {
		return models.PaymentEvent{}, fmt.Errorf("%w: missing data.id", models.ErrMalformedPayload)
	}

	resolved := envelope.Resolve()

	return models.PaymentEvent{
		SourceID:      sourceID,
		EventType:     resolved.EventType,
		Kind:          resolved.Kind,
		Status:        resolved.Attributes.Status,
		Amount:        MinorUnitsToAmount(resolved.Attributes.Amount),
		CustomerEmail: resolved.Attributes.Billing.EmailOrEmpty(),
	}, nil
}

// MinorUnitsToAmount converts cents to major units. nil stays nil.
func MinorUnitsToAmount(minor *int64) *decimal.Decimal {
	if minor == nil {
		return nil
	}
	amount := decimal.New(*minor, -2)
	return &amount
}
