package service

// ReceiptEncoder renders a confirmed order reference as a scannable
// receipt image.
type ReceiptEncoder interface {
	// EncodeReceipt returns a PNG QR code referencing the order.
	EncodeReceipt(orderID string, grandTotal int64) ([]byte, error)
}
