// Package service declares the interfaces of the external collaborators
// the terminal depends on: the catalog/order service, the barcode scan
// source, event publishing and receipt encoding.
package service

import (
	"context"

	"pos/internal/domain/entity"
)

// CatalogClient resolves product codes against the remote catalog.
//
// Lookup returns errors.ErrProductNotFound when the catalog explicitly
// reports the code as unknown; this is a first-class outcome, distinct
// from errors.ErrTransportFailed which covers connectivity and server
// failures. Register returns errors.ErrRegistrationConflict when the
// code was registered by someone else in the meantime.
type CatalogClient interface {
	// Lookup resolves a product code to a catalog record.
	Lookup(ctx context.Context, code string) (*entity.Product, error)

	// Register creates a catalog record for a code the catalog did not know.
	Register(ctx context.Context, code, name string, unitPrice int64) (*entity.Product, error)
}
