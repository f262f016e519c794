package normalizer_test

import (
	"errors"
	"testing"

	"github.com/jeffleon2/draftea-webhook-service/internal/models"
	"github.com/jeffleon2/draftea-webhook-service/internal/normalizer"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_DirectResource(t *testing.T) {
	raw := []byte(`{
		"data": {
			"id": "src_123",
			"type": "source",
			"attributes": {
				"status": "pending",
				"amount": 1050,
				"billing": {"email": "buyer@example.com"}
			}
		}
	}`)

	event, err := normalizer.Normalize(raw)

	require.NoError(t, err)
	assert.Equal(t, "src_123", event.SourceID)
	assert.Equal(t, models.KindDirect, event.Kind)
	assert.Equal(t, "pending", event.Status)
	assert.Equal(t, "buyer@example.com", event.CustomerEmail)
	require.NotNil(t, event.Amount)
	assert.True(t, event.Amount.Equal(decimal.RequireFromString("10.50")))
}

func TestNormalize_WrappedResourceIsAuthoritative(t *testing.T) {
	raw := []byte(`{
		"data": {
			"id": "evt_1",
			"type": "event",
			"attributes": {
				"type": "source.chargeable",
				"status": "pending",
				"amount": 100,
				"billing": {"email": "outer@example.com"},
				"data": {
					"id": "src_inner",
					"type": "source",
					"attributes": {
						"status": "paid",
						"amount": 2599,
						"billing": {"email": "inner@example.com"}
					}
				}
			}
		}
	}`)

	event, err := normalizer.Normalize(raw)

	require.NoError(t, err)
	assert.Equal(t, "evt_1", event.SourceID)
	assert.Equal(t, models.KindWrapped, event.Kind)
	assert.Equal(t, "source.chargeable", event.EventType)
	assert.Equal(t, "paid", event.Status)
	assert.Equal(t, "inner@example.com", event.CustomerEmail)
	require.NotNil(t, event.Amount)
	assert.True(t, event.Amount.Equal(decimal.RequireFromString("25.99")))
}

func TestNormalize_WrappedWithoutAmountDoesNotFallBack(t *testing.T) {
	raw := []byte(`{"data":{"id":"evt_2","attributes":{"status":"pending","amount":500,
		"data":{"id":"src_2","attributes":{"status":"failed"}}}}}`)

	event, err := normalizer.Normalize(raw)

	require.NoError(t, err)
	assert.Equal(t, "failed", event.Status)
	assert.Nil(t, event.Amount)
	assert.Empty(t, event.CustomerEmail)
}

func TestNormalize_NestedWithoutAttributesIsDirect(t *testing.T) {
	raw := []byte(`{"data":{"id":"src_3","attributes":{"status":"pending","data":{"id":"x"}}}}`)

	event, err := normalizer.Normalize(raw)

	require.NoError(t, err)
	assert.Equal(t, models.KindDirect, event.Kind)
	assert.Equal(t, "pending", event.Status)
}

func TestNormalize_AbsentAmountIsNil(t *testing.T) {
	raw := []byte(`{"data":{"id":"src_4","attributes":{"status":"paid"}}}`)

	event, err := normalizer.Normalize(raw)

	require.NoError(t, err)
	assert.Nil(t, event.Amount)
}

func TestNormalize_ZeroAmountIsKept(t *testing.T) {
	raw := []byte(`{"data":{"id":"src_5","attributes":{"status":"paid","amount":0}}}`)

	event, err := normalizer.Normalize(raw)

	require.NoError(t, err)
	require.NotNil(t, event.Amount)
	assert.True(t, event.Amount.IsZero())
}

func TestNormalize_MissingStatusLeftEmpty(t *testing.T) {
	raw := []byte(`{"data":{"id":"src_6"}}`)

	event, err := normalizer.Normalize(raw)

	require.NoError(t, err)
	assert.Equal(t, "src_6", event.SourceID)
	assert.Empty(t, event.Status)
}

func TestNormalize_MalformedPayloads(t *testing.T) {
	cases := map[string]string{
		"invalid json":       `{"data":`,
		"missing data":       `{"id":"evt_1"}`,
		"null data":          `{"data":null}`,
		"missing id":         `{"data":{"attributes":{"status":"paid"}}}`,
		"blank id":           `{"data":{"id":"   "}}`,
		"amount wrong type":  `{"data":{"id":"src","attributes":{"amount":"10.50"}}}`,
		"attributes as list": `{"data":{"id":"src","attributes":[]}}`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := normalizer.Normalize([]byte(raw))

			require.Error(t, err)
			assert.True(t, errors.Is(err, models.ErrMalformedPayload))
		})
	}
}

func TestMinorUnitsToAmount(t *testing.T) {
	assert.Nil(t, normalizer.MinorUnitsToAmount(nil))

	cents := int64(1050)
	amount := normalizer.MinorUnitsToAmount(&cents)
	require.NotNil(t, amount)
	assert.Equal(t, "10.5", amount.String())
	assert.Equal(t, "10.50", amount.StringFixed(2))
}
