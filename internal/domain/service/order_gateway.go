package service

import (
	"context"

	"pos/internal/domain/entity"
)

// OrderGateway submits checkout orders to the order service.
//
// SubmitOrder returns errors.ErrOrderRejected when the server refuses
// the order (for example a line item's price no longer matches catalog
// state) and errors.ErrTransportFailed for connectivity and server
// failures. Both leave the caller's cart untouched; only a returned
// confirmation may clear it.
type OrderGateway interface {
	SubmitOrder(ctx context.Context, order *entity.OrderRequest) (*entity.OrderConfirmation, error)
}
