package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-webhook-service/config"
	"github.com/jeffleon2/draftea-webhook-service/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	kafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	failures int
	calls    int
	written  []kafka.Message
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.calls++
	if w.calls <= w.failures {
		return errors.New("leader not available")
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func fastRetry(attempts int) config.RetryConfig {
	return config.RetryConfig{
		MaxAttempts: attempts,
		BaseDelay:   time.Millisecond,
		MaxDelay:    2 * time.Millisecond,
	}
}

func TestPublish_WritesKeyedJSON(t *testing.T) {
	w := &fakeWriter{}
	p := NewWithWriters(map[string]MessageWriter{"pos": w}, fastRetry(3))

	err := p.Publish(context.Background(), "pos", "src_1", map[string]string{"status": "paid"})

	require.NoError(t, err)
	require.Len(t, w.written, 1)
	assert.Equal(t, "src_1", string(w.written[0].Key))

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.written[0].Value, &body))
	assert.Equal(t, "paid", body["status"])
}

func TestPublish_UnknownTopic(t *testing.T) {
	p := NewWithWriters(map[string]MessageWriter{}, fastRetry(1))

	err := p.Publish(context.Background(), "missing", "", "x")

	assert.ErrorContains(t, err, "no writer configured for topic missing")
}

func TestPublish_RetriesUntilSuccess(t *testing.T) {
	w := &fakeWriter{failures: 2}
	p := NewWithWriters(map[string]MessageWriter{"pos": w}, fastRetry(5))

	err := p.Publish(context.Background(), "pos", "k", "v")

	assert.NoError(t, err)
	assert.Equal(t, 3, w.calls)
}

func TestPublish_GivesUpAfterMaxAttempts(t *testing.T) {
	w := &fakeWriter{failures: 10}
	p := NewWithWriters(map[string]MessageWriter{"pos": w}, fastRetry(3))

	err := p.Publish(context.Background(), "pos", "k", "v")

	assert.ErrorContains(t, err, "after 3 attempts")
	assert.Equal(t, 3, w.calls)
}

func TestPublish_ContextCancelledDuringRetry(t *testing.T) {
	w := &fakeWriter{failures: 10}
	rc := config.RetryConfig{MaxAttempts: 5, BaseDelay: time.Second, MaxDelay: time.Second}
	p := NewWithWriters(map[string]MessageWriter{"pos": w}, rc)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Publish(ctx, "pos", "k", "v")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewWithWriters_Defaults(t *testing.T) {
	p := NewWithWriters(nil, config.RetryConfig{})

	assert.Equal(t, 5, p.RetryConfig.MaxAttempts)
	assert.Equal(t, 100*time.Millisecond, p.RetryConfig.BaseDelay)
	assert.Equal(t, 10*time.Second, p.RetryConfig.MaxDelay)
}

func TestBackoff_ExponentialAndCapped(t *testing.T) {
	rc := config.RetryConfig{BaseDelay: 100 * time.Millisecond, MaxDelay: time.Second}

	assert.Equal(t, 100*time.Millisecond, Backoff(rc, 0))
	assert.Equal(t, 400*time.Millisecond, Backoff(rc, 2))
	assert.Equal(t, time.Second, Backoff(rc, 10))
}

func TestBackoff_JitterStaysWithinBounds(t *testing.T) {
	rc := config.RetryConfig{BaseDelay: 100 * time.Millisecond, MaxDelay: time.Second, Jitter: true}

	for i := 0; i < 50; i++ {
		d := Backoff(rc, 1)
		assert.GreaterOrEqual(t, d, 170*time.Millisecond)
		assert.LessOrEqual(t, d, 230*time.Millisecond)
	}
}

func TestClose_ClosesEveryWriter(t *testing.T) {
	a, b := &fakeWriter{}, &fakeWriter{}
	p := NewWithWriters(map[string]MessageWriter{"a": a, "b": b}, fastRetry(1))

	require.NoError(t, p.Close())
	assert.True(t, a.closed)
	assert.True(t, b.closed)
}

func TestPublish_CountsOutcomesPerTopic(t *testing.T) {
	ok := &fakeWriter{}
	broken := &fakeWriter{failures: 10}
	p := NewWithWriters(map[string]MessageWriter{"ok-topic": ok, "broken-topic": broken}, fastRetry(2))

	okBefore := testutil.ToFloat64(metrics.KafkaPublishTotal.WithLabelValues("ok-topic", metrics.PublishOK))
	failedBefore := testutil.ToFloat64(metrics.KafkaPublishTotal.WithLabelValues("broken-topic", metrics.PublishFailed))

	require.NoError(t, p.Publish(context.Background(), "ok-topic", "k", "v"))
	require.Error(t, p.Publish(context.Background(), "broken-topic", "k", "v"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(metrics.KafkaPublishTotal.WithLabelValues("ok-topic", metrics.PublishOK)))
	assert.Equal(t, failedBefore+1, testutil.ToFloat64(metrics.KafkaPublishTotal.WithLabelValues("broken-topic", metrics.PublishFailed)))
	assert.Equal(t, 2, broken.calls)
}
