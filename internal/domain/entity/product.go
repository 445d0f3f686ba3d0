// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Product is a read-only copy of a catalog record. The catalog service
// owns the record; the terminal only ever resolves and displays it.
// A later re-scan of the same code re-resolves against the catalog, it
// never mutates a line item already in the cart.
type Product struct {
	ID        string `json:"id"`         // Opaque identifier assigned by the catalog service.
	Code      string `json:"code"`       // The scanned/typed product code, unique within the catalog.
	Name      string `json:"name"`       // Display name shown on the ready-to-add form.
	UnitPrice int64  `json:"unit_price"` // Price per unit in the smallest currency unit (yen).
}
