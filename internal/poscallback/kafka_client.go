package poscallback

import (
	"context"

	"github.com/jeffleon2/draftea-webhook-service/internal/models"
)

type Publisher interface {
	Publish(ctx context.Context, topic string, key string, message interface{}) error
}

// KafkaClient hands BackToPosRequests to the POS through a topic keyed by source id,
// so every status change of one source lands on the same partition.
type KafkaClient struct {
	Publisher Publisher
	Topic     string
}

func NewKafkaClient(p Publisher, topic string) *KafkaClient {
	return &KafkaClient{Publisher: p, Topic: topic}
}

func (c *KafkaClient) Accept(ctx context.Context, req models.BackToPosRequest) error {
	return c.Publisher.Publish(ctx, c.Topic, req.SourceID, req)
}
