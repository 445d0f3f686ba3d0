// Package event implements order event publishing: Kafka for real
// deployments, a local HTTP push endpoint for development, and a no-op
// when publishing is not configured.
package event

import (
	"context"
	"log/slog"

	"pos/config"
	"pos/internal/domain/constants"
	"pos/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher is a no-op implementation when event publishing is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishOrderConfirmed(ctx context.Context, event *service.OrderConfirmedEvent) error {
	p.logger.Debug("event publishing disabled, skipping",
		slog.String("order_id", event.OrderID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.Events
	logger := params.Logger

	// If events are not configured, return a no-op publisher
	if cfg == nil || cfg.Provider == "" {
		logger.Info("order events not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.EventPublisher
	var err error

	switch cfg.Provider {
	case constants.EventProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("using local HTTP publisher for order events",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.EventProviderKafka:
		if len(cfg.Brokers) == 0 {
			return nil, errors.New("brokers are required for kafka provider")
		}
		if cfg.Topic == "" {
			return nil, errors.New("topic is required for kafka provider")
		}
		logger.Info("using Kafka publisher for order events",
			slog.String("topic", cfg.Topic),
		)

		publisher, err = NewKafkaPublisher(cfg.Brokers, cfg.Topic, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown event provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}
