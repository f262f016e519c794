package publisher

import (
	"context"
	"time"

	"github.com/jeffleon2/draftea-webhook-service/internal/models"
)

type Publisher interface {
	Publish(ctx context.Context, topic string, key string, message interface{}) error
}

// RetryQueue parks failed POS dispatches on a Kafka topic for the retry consumer.
type RetryQueue struct {
	Publisher Publisher
	Topic     string
}

func NewRetryQueue(p Publisher, topic string) *RetryQueue {
	return &RetryQueue{Publisher: p, Topic: topic}
}

func (q *RetryQueue) Enqueue(ctx context.Context, req models.BackToPosRequest, reason string) error {
	msg := models.RetryMessage{
		Request:  req,
		Reason:   reason,
		FailedAt: time.Now().UTC(),
	}
	return q.Publisher.Publish(ctx, q.Topic, req.SourceID, msg)
}
