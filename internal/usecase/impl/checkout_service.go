package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pos/config"
	deliverycontext "pos/internal/delivery/context"
	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/lifecycle"
	"pos/internal/domain/service"
	"pos/internal/usecase"

	"github.com/google/uuid"
)

type checkoutService struct {
	gateway   service.OrderGateway
	cart      usecase.CartUsecase
	publisher service.EventPublisher
	receipts  service.ReceiptEncoder
	logger    *slog.Logger
	timeout   time.Duration

	mu       sync.Mutex
	inFlight bool
	// idemKey is minted on the first submission of a cart and reused on
	// manual retries after rejection or transport failure, so the order
	// service can deduplicate a double submission. It is reset only
	// when the cart is cleared by a confirmed checkout.
	idemKey string
}

// NewCheckoutService creates the checkout submitter.
func NewCheckoutService(cfg *config.Config, gateway service.OrderGateway, cart usecase.CartUsecase, publisher service.EventPublisher, receipts service.ReceiptEncoder, logger *slog.Logger) usecase.CheckoutUsecase {
	timeout := cfg.Checkout.Timeout
	if timeout <= 0 {
		timeout = lifecycle.DefaultTimeout
	}

	return &checkoutService{
		gateway:   gateway,
		cart:      cart,
		publisher: publisher,
		receipts:  receipts,
		logger:    logger,
		timeout:   timeout,
	}
}

// Submit serializes a cart snapshot into an order and submits it. Only
// a confirmed checkout clears the cart; every failure path leaves it
// intact for an operator-initiated retry.
func (s *checkoutService) Submit(ctx context.Context) (*usecase.CheckoutResult, error) {
	snapshot := s.cart.Snapshot()
	if len(snapshot.Items) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()

		return nil, domainerrors.ErrCheckoutInProgress
	}
	s.inFlight = true
	if s.idemKey == "" {
		s.idemKey = uuid.New().String()
	}
	idemKey := s.idemKey
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	order := buildOrderRequest(snapshot, idemKey)
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	submitCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	confirmation, err := s.gateway.SubmitOrder(submitCtx, order)
	if err != nil {
		logger.Warn("checkout not confirmed, cart preserved",
			slog.String("idempotency_key", idemKey),
			slog.Any("error", err),
		)

		return nil, err
	}

	// The only path that clears the cart.
	s.cart.Clear(ctx)
	s.mu.Lock()
	s.idemKey = ""
	s.mu.Unlock()

	logger.Info("checkout confirmed",
		slog.String("order_id", confirmation.OrderID),
		slog.Int64("grand_total", confirmation.GrandTotal),
	)

	s.publishConfirmed(ctx, confirmation, len(snapshot.Items))

	result := &usecase.CheckoutResult{
		OrderID:    confirmation.OrderID,
		GrandTotal: confirmation.GrandTotal,
		TaxAmount:  confirmation.TaxAmount,
	}

	receipt, err := s.receipts.EncodeReceipt(confirmation.OrderID, confirmation.GrandTotal)
	if err != nil {
		// The order is confirmed; a missing receipt image is not a
		// checkout failure.
		logger.Warn("failed to encode receipt",
			slog.String("order_id", confirmation.OrderID),
			slog.Any("error", err),
		)
	} else {
		result.ReceiptQR = receipt
	}

	return result, nil
}

// publishConfirmed emits the order-confirmed event. Best effort only.
func (s *checkoutService) publishConfirmed(ctx context.Context, confirmation *entity.OrderConfirmation, itemCount int) {
	event := &service.OrderConfirmedEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:     confirmation.OrderID,
		GrandTotal:  confirmation.GrandTotal,
		TaxAmount:   confirmation.TaxAmount,
		ItemCount:   itemCount,
		SubmittedAt: time.Now().UTC(),
	}

	if err := s.publisher.PublishOrderConfirmed(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("failed to publish order confirmed event",
			slog.String("order_id", confirmation.OrderID),
			slog.Any("error", err),
		)
	}
}

func buildOrderRequest(snapshot *entity.Cart, idemKey string) *entity.OrderRequest {
	items := make([]entity.OrderItem, 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		items = append(items, entity.OrderItem{
			ProductID:   item.ProductID,
			ProductCode: item.ProductCode,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		})
	}

	return &entity.OrderRequest{
		IdempotencyKey:      idemKey,
		Items:               items,
		ClientComputedTotal: snapshot.GrandTotal,
	}
}
