package event

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"pos/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/twmb/franz-go/pkg/kgo"
)

type kafkaPublisher struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

// NewKafkaPublisher creates an EventPublisher backed by a Kafka topic.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) (service.EventPublisher, error) {
	opts := []kgo.Opt{
		kgo.SeedBrokers(brokers...),
		kgo.AllowAutoTopicCreation(),
		kgo.RequiredAcks(kgo.AllISRAcks()),

		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
		kgo.ProducerLinger(10 * time.Millisecond),
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create kafka client")
	}

	return &kafkaPublisher{
		client: client,
		topic:  topic,
		logger: logger,
	}, nil
}

// PublishOrderConfirmed produces the event keyed by order id so retries
// of the same order land in the same partition.
func (p *kafkaPublisher) PublishOrderConfirmed(ctx context.Context, event *service.OrderConfirmedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(event.OrderID),
		Value: data,
	}

	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return errors.Wrap(err, "failed to produce order event")
	}

	p.logger.Info("order event published",
		slog.String("order_id", event.OrderID),
		slog.String("topic", p.topic),
	)

	return nil
}

// Close flushes and releases the Kafka client.
func (p *kafkaPublisher) Close() error {
	p.client.Close()

	return nil
}
