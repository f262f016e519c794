package subscriber

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/jeffleon2/draftea-webhook-service/config"
	"github.com/jeffleon2/draftea-webhook-service/internal/models"
	"github.com/jeffleon2/draftea-webhook-service/internal/publisher"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// settleTimeout bounds publishes and commits that must finish after shutdown starts.
const settleTimeout = 5 * time.Second

// Redeliverer re-sends a failed POS request.
type Redeliverer interface {
	Redeliver(ctx context.Context, req models.BackToPosRequest) error
}

type Publisher interface {
	Publish(ctx context.Context, topic string, key string, message interface{}) error
}

// MessageReader is the subset of *kafka.Reader the consumer uses. Offsets are
// committed explicitly once a message is settled.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// RetryConsumer drains the POS retry topic. Each message is redriven with backoff;
// once attempts run out it is parked on the DLQ topic. A message interrupted by
// shutdown goes back on the retry topic.
type RetryConsumer struct {
	Readers     []MessageReader
	Redeliverer Redeliverer
	Publisher   Publisher
	RetryTopic  string
	DLQTopic    string
	RetryConfig config.RetryConfig
}

func NewRetryConsumer(
	brokers []string,
	topic string,
	groupID string,
	redeliverer Redeliverer,
	pub Publisher,
	dlqTopic string,
	retryConfig config.RetryConfig,
) *RetryConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		GroupID:  groupID,
		Topic:    topic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})

	return &RetryConsumer{
		Readers:     []MessageReader{reader},
		Redeliverer: redeliverer,
		Publisher:   pub,
		RetryTopic:  topic,
		DLQTopic:    dlqTopic,
		RetryConfig: retryConfig,
	}
}

// Listen blocks until ctx is done, processing messages from every reader.
func (c *RetryConsumer) Listen(ctx context.Context) {
	var wg sync.WaitGroup
	for _, reader := range c.Readers {
		wg.Add(1)
		go func(r MessageReader) {
			defer wg.Done()
			for {
				msg, err := r.FetchMessage(ctx)
				if err != nil {
					if ctx.Err() != nil {
						return
					}
					logrus.Errorf("Kafka error: %s", err.Error())
					continue
				}

				if err := c.Process(ctx, msg); err != nil {
					logrus.Errorf("Retry message left uncommitted (partition=%d offset=%d): %s", msg.Partition, msg.Offset, err.Error())
					continue
				}
				c.commit(ctx, r, msg)
			}
		}(reader)
	}
	wg.Wait()
}

// Process redrives one retry message. A nil error means the message is settled:
// delivered, parked on the DLQ or put back on the retry topic.
func (c *RetryConsumer) Process(ctx context.Context, msg kafka.Message) error {
	var retry models.RetryMessage
	if err := json.Unmarshal(msg.Value, &retry); err != nil {
		logrus.Errorf("Error unmarshalling RetryMessage: %s", err.Error())
		return c.sendToDLQ(ctx, msg, 0, err)
	}

	log := logrus.WithFields(logrus.Fields{
		"source_id": retry.Request.SourceID,
		"status":    retry.Request.Status,
		"trace_id":  retry.Request.TraceID,
	})

	var lastErr error
	for attempt := 0; attempt < c.RetryConfig.MaxAttempts; attempt++ {
		lastErr = c.Redeliverer.Redeliver(ctx, retry.Request)
		if lastErr == nil {
			log.Infof("POS redelivery succeeded after %d attempts", attempt+1)
			return nil
		}

		if attempt == c.RetryConfig.MaxAttempts-1 {
			break
		}

		backoff := publisher.Backoff(c.RetryConfig, attempt)
		log.Warnf("POS redelivery attempt %d/%d failed: %v. Retrying in %v", attempt+1, c.RetryConfig.MaxAttempts, lastErr, backoff)

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			log.Warn("Shutting down before POS redelivery completed, requeueing")
			return c.requeue(ctx, msg, retry, lastErr)
		}
	}

	log.Errorf("POS redelivery failed after %d attempts: %v", c.RetryConfig.MaxAttempts, lastErr)
	return c.sendToDLQ(ctx, msg, c.RetryConfig.MaxAttempts, lastErr)
}

// requeue puts an interrupted message back on the retry topic, falling back to
// the DLQ when that publish fails.
func (c *RetryConsumer) requeue(ctx context.Context, msg kafka.Message, retry models.RetryMessage, cause error) error {
	if c.Publisher == nil {
		return fmt.Errorf("no publisher to requeue %s", string(msg.Key))
	}

	pctx, cancel := detached(ctx)
	defer cancel()

	retry.Reason = cause.Error()
	retry.FailedAt = time.Now().UTC()
	if err := c.Publisher.Publish(pctx, c.RetryTopic, string(msg.Key), retry); err != nil {
		logrus.Errorf("Failed to requeue retry message: %s", err.Error())
		return c.sendToDLQ(ctx, msg, 0, cause)
	}
	return nil
}

func (c *RetryConsumer) sendToDLQ(ctx context.Context, msg kafka.Message, attempts int, cause error) error {
	if c.Publisher == nil {
		return fmt.Errorf("no publisher for DLQ topic %s", c.DLQTopic)
	}

	reason := ""
	if cause != nil {
		reason = cause.Error()
	}

	dlqMessage := models.DLQMessage{
		OriginalTopic: msg.Topic,
		Key:           string(msg.Key),
		Value:         string(msg.Value),
		Timestamp:     time.Now().UTC(),
		Attempts:      attempts,
		Reason:        reason,
	}

	pctx, cancel := detached(ctx)
	defer cancel()

	if err := c.Publisher.Publish(pctx, c.DLQTopic, string(msg.Key), dlqMessage); err != nil {
		logrus.Errorf("Failed to send message to DLQ: %s", err.Error())
		return fmt.Errorf("dlq publish: %w", err)
	}
	logrus.Warnf("Message sent to DLQ: original topic=%s, key=%s", msg.Topic, string(msg.Key))
	return nil
}

func (c *RetryConsumer) commit(ctx context.Context, r MessageReader, msg kafka.Message) {
	cctx, cancel := detached(ctx)
	defer cancel()

	if err := r.CommitMessages(cctx, msg); err != nil {
		logrus.Errorf("Error committing retry message offset %d: %s", msg.Offset, err.Error())
	}
}

func detached(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), settleTimeout)
}

func (c *RetryConsumer) Close() error {
	var firstErr error
	for _, r := range c.Readers {
		if err := r.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing retry consumer: %w", err)
		}
	}
	return firstErr
}
