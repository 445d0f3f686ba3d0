package main

import (
	"context"
	"log/slog"
	"os"

	"pos/config"
	"pos/internal/delivery"
	"pos/internal/delivery/http"
	"pos/internal/delivery/http/middleware"
	"pos/internal/delivery/http/router/handler"
	"pos/internal/domain/service"
	"pos/internal/infra/catalog"
	"pos/internal/infra/event"
	logs "pos/internal/infra/log"
	"pos/internal/infra/order"
	"pos/internal/infra/qrcode"
	"pos/internal/infra/scanner"
	"pos/internal/usecase"
	"pos/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			registerScanTeardown,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		catalog.NewHTTPClient,
		order.NewHTTPGateway,
		event.NewEventPublisher,
		scanner.New,
		asScanSource,
		newReceiptEncoder,
	)
}

func asScanSource(source *scanner.WebhookSource) service.ScanSource {
	return source
}

// newReceiptEncoder creates a receipt QR encoder with dependency injection
func newReceiptEncoder(cfg *config.Config) service.ReceiptEncoder {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewReceiptEncoder(256, "M")
	}

	return qrcode.NewReceiptEncoder(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCartService,
			impl.NewResolutionService,
			impl.NewCheckoutService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewScanHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// registerScanTeardown guarantees the scan source is released on
// shutdown even if a scan session is still active.
func registerScanTeardown(lc fx.Lifecycle, resolutionUC usecase.ResolutionUsecase) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			resolutionUC.StopScan(ctx)

			return nil
		},
	})
}

func startServer(params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(context.Background()); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
