package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/jeffleon2/draftea-webhook-service/config"
	"github.com/jeffleon2/draftea-webhook-service/internal/metrics"
	kafka "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// MessageWriter is the subset of *kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher manages Kafka message publishing with retry capabilities.
// It keeps one writer per topic and retries failed writes with exponential backoff.
type KafkaPublisher struct {
	Writers     map[string]MessageWriter
	RetryConfig config.RetryConfig
}

// NewKafkaPublisher creates a KafkaPublisher with a writer for each topic.
// Zero retry values fall back to 5 attempts, 100ms base delay and 10s max delay.
func NewKafkaPublisher(brokers []string, topics []string, retryConfig config.RetryConfig) *KafkaPublisher {
	writers := make(map[string]MessageWriter)
	for _, t := range topics {
		writers[t] = &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        t,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		}
	}

	return NewWithWriters(writers, retryConfig)
}

func NewWithWriters(writers map[string]MessageWriter, retryConfig config.RetryConfig) *KafkaPublisher {
	if retryConfig.MaxAttempts == 0 {
		retryConfig.MaxAttempts = 5
	}
	if retryConfig.BaseDelay == 0 {
		retryConfig.BaseDelay = 100 * time.Millisecond
	}
	if retryConfig.MaxDelay == 0 {
		retryConfig.MaxDelay = 10 * time.Second
	}

	return &KafkaPublisher{
		Writers:     writers,
		RetryConfig: retryConfig,
	}
}

// Publish marshals message to JSON and writes it to topic under key, retrying on failure.
func (p *KafkaPublisher) Publish(ctx context.Context, topic string, key string, message interface{}) error {
	writer, ok := p.Writers[topic]
	if !ok {
		return fmt.Errorf("error no writer configured for topic %s", topic)
	}

	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("error marshaling message: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
	}

	return p.publishWithRetry(ctx, writer, msg, topic)
}

// publishWithRetry writes msg until the broker accepts it, the attempts run out or
// ctx ends. Every outcome is counted per topic.
func (p *KafkaPublisher) publishWithRetry(ctx context.Context, writer MessageWriter, msg kafka.Message, topic string) error {
	log := logrus.WithFields(logrus.Fields{
		"topic": topic,
		"key":   string(msg.Key),
	})

	var lastErr error
	for attempt := 1; attempt <= p.RetryConfig.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			metrics.KafkaPublishTotal.WithLabelValues(topic, metrics.PublishAborted).Inc()
			return fmt.Errorf("publish to '%s' aborted: %w", topic, err)
		}

		lastErr = writer.WriteMessages(ctx, msg)
		if lastErr == nil {
			metrics.KafkaPublishTotal.WithLabelValues(topic, metrics.PublishOK).Inc()
			if attempt > 1 {
				log.Infof("[Kafka Publisher] published after %d attempts", attempt)
			}
			return nil
		}
		if attempt == p.RetryConfig.MaxAttempts {
			break
		}

		delay := p.calculateBackoff(attempt - 1)
		log.WithField("attempt", attempt).Warnf("[Kafka Publisher] write failed, retrying in %v: %v", delay, lastErr)

		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			metrics.KafkaPublishTotal.WithLabelValues(topic, metrics.PublishAborted).Inc()
			return fmt.Errorf("publish to '%s' aborted during retry: %w", topic, ctx.Err())
		}
	}

	metrics.KafkaPublishTotal.WithLabelValues(topic, metrics.PublishFailed).Inc()
	return fmt.Errorf("failed to publish message to topic '%s' after %d attempts: %w",
		topic, p.RetryConfig.MaxAttempts, lastErr)
}

// calculateBackoff returns 2^attempt * BaseDelay capped at MaxDelay, with ±15% jitter when enabled.
func (p *KafkaPublisher) calculateBackoff(attempt int) time.Duration {
	return Backoff(p.RetryConfig, attempt)
}

func (p *KafkaPublisher) Close() error {
	var errs []error
	for topic, w := range p.Writers {
		if err := w.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing writer for %s: %w", topic, err))
		}
	}
	return errors.Join(errs...)
}

func Backoff(rc config.RetryConfig, attempt int) time.Duration {
	delay := time.Duration(math.Pow(2, float64(attempt))) * rc.BaseDelay

	if delay > rc.MaxDelay {
		delay = rc.MaxDelay
	}

	if rc.Jitter {
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.3)
		delay = delay + jitter - time.Duration(float64(delay)*0.15)
	}

	return delay
}
