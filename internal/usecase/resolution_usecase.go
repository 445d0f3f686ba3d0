// Package usecase defines the application's use case interfaces and the
// data transfer objects they exchange with the delivery layer.
package usecase

import (
	"context"

	"pos/internal/domain/entity"
)

// ResolutionUsecase drives one scanned or typed product code through
// catalog lookup, the optional registration fallback, and into the cart.
// One instance owns the state of one terminal session.
type ResolutionUsecase interface {
	// SubmitCode starts a resolution attempt for a raw code. An attempt
	// already in flight is superseded: its response, if it ever arrives,
	// is discarded. Returns the attempt in its post-lookup state, which
	// is Resolved, NotFound or TransportFailed.
	SubmitCode(ctx context.Context, code string) (*entity.ResolutionAttempt, error)

	// RegisterAndResolve registers the current NotFound code in the
	// catalog and resolves it. A registration conflict (the code was
	// registered concurrently) is recovered by a single automatic
	// re-lookup.
	RegisterAndResolve(ctx context.Context, name string, unitPrice int64) (*entity.ResolutionAttempt, error)

	// AddToCart merges the resolved product into the cart ledger and
	// returns the resolution to idle.
	AddToCart(ctx context.Context, quantity int64) (*entity.Cart, error)

	// Abandon discards the current attempt from any state and returns to
	// idle. Safe while a catalog request is outstanding: the late
	// response is ignored. Also releases an active scan session.
	Abandon(ctx context.Context)

	// Current returns a snapshot of the current attempt.
	Current() *entity.ResolutionAttempt

	// StartScan acquires the scan source for a single-shot scan: the
	// first decoded code is fed through SubmitCode and the source is
	// stopped. A previous session is stopped before the new one starts.
	StartScan(ctx context.Context) error

	// StopScan releases the scan source without waiting for a code.
	// Safe to call when no scan is active.
	StopScan(ctx context.Context)

	// Scanning reports whether a scan session is active.
	Scanning() bool
}
