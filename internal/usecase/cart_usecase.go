package usecase

import (
	"context"

	"pos/internal/domain/entity"
)

// CartUsecase is the cart ledger: the ordered list of distinct line
// items with identity-based merge-or-append and total recomputation.
type CartUsecase interface {
	// MergeOrAdd increments the quantity of the line item with the same
	// product code, or appends a new line item at the end. Totals are
	// recomputed and the ledger invariants checked on every mutation.
	// Returns the cart after the mutation.
	MergeOrAdd(ctx context.Context, product *entity.Product, quantityDelta int64) (*entity.Cart, error)

	// Snapshot returns a deep copy of the current items and totals, so
	// checkout observes a consistent view even while further scans
	// mutate the ledger.
	Snapshot() *entity.Cart

	// Clear empties the item sequence and resets all totals. Idempotent.
	Clear(ctx context.Context)
}
