package usecase

import (
	"context"
)

// CheckoutResult carries the authoritative outcome of a confirmed
// checkout. ReceiptQR is a PNG image and may be empty when receipt
// encoding is unavailable; the order is confirmed either way.
type CheckoutResult struct {
	OrderID    string `json:"order_id"`
	GrandTotal int64  `json:"grand_total"`
	TaxAmount  int64  `json:"tax_amount"`
	ReceiptQR  []byte `json:"receipt_qr,omitempty"`
}

// CheckoutUsecase submits the current cart as an order. Only a
// confirmed checkout clears the cart; rejection and transport failure
// preserve it so the operator can retry without re-scanning.
type CheckoutUsecase interface {
	Submit(ctx context.Context) (*CheckoutResult, error)
}
