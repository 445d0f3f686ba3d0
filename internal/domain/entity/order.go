package entity

// OrderItem is one submitted order line. Quantities and totals are
// recomputed server-side; what we send is informational.
type OrderItem struct {
	ProductID   string `json:"product_id"`
	ProductCode string `json:"product_code"`
	ProductName string `json:"product_name"`
	UnitPrice   int64  `json:"unit_price"`
	Quantity    int64  `json:"quantity"`
}

// OrderRequest is the checkout payload built from a cart snapshot. The
// idempotency key stays stable across manual retries of the same cart
// so the order service can deduplicate double submissions.
type OrderRequest struct {
	IdempotencyKey      string      `json:"idempotency_key"`
	Items               []OrderItem `json:"items"`
	ClientComputedTotal int64       `json:"client_computed_total"`
}

// OrderConfirmation is the authoritative result of a confirmed checkout.
// The server's totals win over anything computed locally.
type OrderConfirmation struct {
	OrderID    string `json:"order_id"`
	GrandTotal int64  `json:"grand_total"`
	TaxAmount  int64  `json:"tax_amount"`
}
