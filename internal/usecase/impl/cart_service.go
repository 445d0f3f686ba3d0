// Package impl contains the use case implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"

	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/usecase"
)

type cartService struct {
	logger *slog.Logger

	mu   sync.Mutex
	cart entity.Cart
}

// NewCartService creates the in-memory cart ledger for one terminal
// session. The ledger starts empty and is never persisted locally.
func NewCartService(logger *slog.Logger) usecase.CartUsecase {
	return &cartService{
		logger: logger,
	}
}

// MergeOrAdd merges the product into the ledger by product code.
// A zero or negative unit price is accepted as-is; price validation
// belongs to catalog registration, not the ledger.
func (s *cartService) MergeOrAdd(ctx context.Context, product *entity.Product, quantityDelta int64) (*entity.Cart, error) {
	if product == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("product is required")
	}
	if quantityDelta < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Mutate a copy so an invariant violation aborts the operation
	// without persisting a corrupted cart.
	next := s.cart.Clone()

	merged := false
	for i := range next.Items {
		if next.Items[i].ProductCode == product.Code {
			next.Items[i].Quantity += quantityDelta
			merged = true

			break
		}
	}

	if !merged {
		next.Items = append(next.Items, entity.LineItem{
			ProductID:   product.ID,
			ProductCode: product.Code,
			ProductName: product.Name,
			UnitPrice:   product.UnitPrice,
			Quantity:    quantityDelta,
		})
	}

	next.RecomputeTotals()

	if err := next.Validate(); err != nil {
		s.logger.Error("cart invariant violated, aborting mutation",
			slog.String("product_code", product.Code),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrInvariantViolation.WithDetails(err.Error())
	}

	s.cart = *next

	s.logger.Debug("cart updated",
		slog.String("product_code", product.Code),
		slog.Int64("quantity_delta", quantityDelta),
		slog.Int64("grand_total", next.GrandTotal),
	)

	return next.Clone(), nil
}

// Snapshot returns a deep copy of the current cart.
func (s *cartService) Snapshot() *entity.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Clone()
}

// Clear empties the ledger. Idempotent.
func (s *cartService) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = entity.Cart{}
}
