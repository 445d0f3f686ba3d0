package entity

import (
	"pos/internal/errors"
)

// TaxRatePercent is the single fixed consumption tax rate applied to the
// cart subtotal. The tax amount is truncated toward zero.
const TaxRatePercent = 10

// LineItem is one row in the cart: a distinct product code and its
// accumulated quantity. Quantity grows in place when the same code is
// added again; the unit price is frozen at first resolution.
type LineItem struct {
	ProductID   string `json:"product_id"`
	ProductCode string `json:"product_code"`
	ProductName string `json:"product_name"`
	UnitPrice   int64  `json:"unit_price"`
	Quantity    int64  `json:"quantity"`
	LineTotal   int64  `json:"line_total"`
}

// Cart is the in-memory aggregate for one operator session. Items keep
// insertion order; product codes are unique across items. The cart is
// never persisted locally, it lives until checkout succeeds or the
// operator clears it.
type Cart struct {
	Items      []LineItem `json:"items"`
	Subtotal   int64      `json:"subtotal"`
	TaxAmount  int64      `json:"tax_amount"`
	GrandTotal int64      `json:"grand_total"`
}

// RecomputeTotals recalculates every line total and the cart totals.
func (c *Cart) RecomputeTotals() {
	var subtotal int64
	for i := range c.Items {
		c.Items[i].LineTotal = c.Items[i].UnitPrice * c.Items[i].Quantity
		subtotal += c.Items[i].LineTotal
	}

	c.Subtotal = subtotal
	c.TaxAmount = subtotal * TaxRatePercent / 100
	c.GrandTotal = c.Subtotal + c.TaxAmount
}

// Validate checks the ledger invariants: no two items may share a
// product code, the subtotal must equal the sum of line totals, and the
// tax amount and grand total must be derived from the subtotal. A
// violation is a programming error, not an expected runtime condition.
func (c *Cart) Validate() error {
	var sum int64
	seen := make(map[string]struct{}, len(c.Items))
	for _, item := range c.Items {
		if _, dup := seen[item.ProductCode]; dup {
			return errors.Errorf("duplicate line item for product code %q", item.ProductCode)
		}
		seen[item.ProductCode] = struct{}{}
		sum += item.LineTotal
	}

	if sum != c.Subtotal {
		return errors.Errorf("subtotal %d does not match line total sum %d", c.Subtotal, sum)
	}

	if tax := c.Subtotal * TaxRatePercent / 100; c.TaxAmount != tax {
		return errors.Errorf("tax amount %d does not match %d%% of subtotal %d", c.TaxAmount, TaxRatePercent, c.Subtotal)
	}

	if c.GrandTotal != c.Subtotal+c.TaxAmount {
		return errors.Errorf("grand total %d does not match subtotal %d plus tax %d", c.GrandTotal, c.Subtotal, c.TaxAmount)
	}

	return nil
}

// Clone returns a deep copy so a caller can hold a consistent snapshot
// while the live cart keeps mutating.
func (c *Cart) Clone() *Cart {
	clone := *c
	clone.Items = make([]LineItem, len(c.Items))
	copy(clone.Items, c.Items)

	return &clone
}
