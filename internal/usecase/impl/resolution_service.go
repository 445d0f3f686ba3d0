package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"pos/config"
	deliverycontext "pos/internal/delivery/context"
	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/lifecycle"
	"pos/internal/domain/service"
	"pos/internal/usecase"
)

type resolutionService struct {
	catalog service.CatalogClient
	cart    usecase.CartUsecase
	scanner service.ScanSource
	logger  *slog.Logger
	timeout time.Duration

	mu sync.Mutex
	// seq is the attempt sequence. Every new attempt, abandon or
	// add-to-cart bumps it; a catalog response is applied only when the
	// sequence it started under is still current. That is what discards
	// stale responses for superseded or abandoned attempts.
	seq         uint64
	attempt     entity.ResolutionAttempt
	scanning    bool
	scanSession uint64
}

// NewResolutionService creates the resolution state machine for one
// terminal session.
func NewResolutionService(cfg *config.Config, catalog service.CatalogClient, cart usecase.CartUsecase, scanner service.ScanSource, logger *slog.Logger) usecase.ResolutionUsecase {
	timeout := cfg.Catalog.Timeout
	if timeout <= 0 {
		timeout = lifecycle.DefaultTimeout
	}

	return &resolutionService{
		catalog: catalog,
		cart:    cart,
		scanner: scanner,
		logger:  logger,
		timeout: timeout,
		attempt: entity.ResolutionAttempt{State: entity.ResolutionIdle},
	}
}

// SubmitCode validates the raw code and drives it through catalog lookup.
func (s *resolutionService) SubmitCode(ctx context.Context, code string) (*entity.ResolutionAttempt, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domainerrors.ErrEmptyCode
	}

	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.attempt = entity.ResolutionAttempt{
		Seq:     seq,
		RawCode: code,
		State:   entity.ResolutionAwaitingLookup,
	}
	s.mu.Unlock()

	lookupCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	product, err := s.catalog.Lookup(lookupCtx, code)

	return s.applyOutcome(seq, product, err)
}

// RegisterAndResolve registers the current NotFound code and resolves it.
func (s *resolutionService) RegisterAndResolve(ctx context.Context, name string, unitPrice int64) (*entity.ResolutionAttempt, error) {
	if strings.TrimSpace(name) == "" || unitPrice < 0 {
		return nil, domainerrors.ErrInvalidRegistration
	}

	s.mu.Lock()
	if s.attempt.State != entity.ResolutionNotFound {
		state := s.attempt.State
		s.mu.Unlock()

		return nil, domainerrors.ErrResolutionState.WithDetails(fmt.Sprintf("registration requires a not-found code, current state is %s", state))
	}
	seq := s.attempt.Seq
	code := s.attempt.RawCode
	s.attempt.State = entity.ResolutionAwaitingLookup
	s.mu.Unlock()

	regCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	product, err := s.catalog.Register(regCtx, code, strings.TrimSpace(name), unitPrice)
	if errors.Is(err, domainerrors.ErrRegistrationConflict) {
		// Someone registered the code first. Recover with one re-lookup.
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("registration conflict, re-resolving code",
			slog.String("code", code),
		)
		product, err = s.catalog.Lookup(regCtx, code)
	}

	return s.applyOutcome(seq, product, err)
}

// applyOutcome applies a catalog response to the current attempt,
// unless the attempt was superseded or abandoned while the request was
// outstanding.
func (s *resolutionService) applyOutcome(seq uint64, product *entity.Product, err error) (*entity.ResolutionAttempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seq != seq {
		s.logger.Debug("discarding stale catalog response",
			slog.Uint64("attempt_seq", seq),
			slog.Uint64("current_seq", s.seq),
		)

		return nil, domainerrors.ErrAttemptSuperseded
	}

	switch {
	case err == nil:
		s.attempt.State = entity.ResolutionResolved
		s.attempt.Product = product
		s.attempt.FailureReason = ""
	case errors.Is(err, domainerrors.ErrProductNotFound):
		s.attempt.State = entity.ResolutionNotFound
		s.attempt.Product = nil
		s.attempt.FailureReason = ""
	default:
		s.attempt.State = entity.ResolutionTransportFailed
		s.attempt.Product = nil
		s.attempt.FailureReason = err.Error()
	}

	out := s.attempt

	return &out, nil
}

// AddToCart merges the resolved product into the ledger. The attempt is
// discarded by the operator acting on it, whatever the ledger outcome.
func (s *resolutionService) AddToCart(ctx context.Context, quantity int64) (*entity.Cart, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	s.mu.Lock()
	if s.attempt.State != entity.ResolutionResolved || s.attempt.Product == nil {
		state := s.attempt.State
		s.mu.Unlock()

		return nil, domainerrors.ErrResolutionState.WithDetails(fmt.Sprintf("add-to-cart requires a resolved product, current state is %s", state))
	}
	product := *s.attempt.Product
	s.seq++
	s.attempt = entity.ResolutionAttempt{Seq: s.seq, State: entity.ResolutionIdle}
	s.mu.Unlock()

	return s.cart.MergeOrAdd(ctx, &product, quantity)
}

// Abandon discards the current attempt and releases any scan session.
// A catalog response still outstanding for the abandoned attempt will
// be ignored when it arrives.
func (s *resolutionService) Abandon(ctx context.Context) {
	s.mu.Lock()
	s.seq++
	s.attempt = entity.ResolutionAttempt{Seq: s.seq, State: entity.ResolutionIdle}
	s.mu.Unlock()

	s.StopScan(ctx)
}

// Current returns a snapshot of the current attempt.
func (s *resolutionService) Current() *entity.ResolutionAttempt {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.attempt

	return &out
}

// StartScan acquires the scan source for a single-shot scan session.
func (s *resolutionService) StartScan(ctx context.Context) error {
	// The scan device is exclusive: release before acquire.
	s.StopScan(ctx)

	codes, err := s.scanner.Start(ctx)
	if err != nil {
		return fmt.Errorf("failed to start scan source: %w", err)
	}

	s.mu.Lock()
	s.scanSession++
	session := s.scanSession
	s.scanning = true
	s.mu.Unlock()

	go s.watchScan(session, codes)

	return nil
}

// StopScan releases the scan source. Safe when no scan is active.
func (s *resolutionService) StopScan(ctx context.Context) {
	s.mu.Lock()
	if !s.scanning {
		s.mu.Unlock()

		return
	}
	s.scanning = false
	s.mu.Unlock()

	if err := s.scanner.Stop(); err != nil {
		s.logger.Warn("failed to stop scan source", slog.Any("error", err))
	}
}

// Scanning reports whether a scan session is active.
func (s *resolutionService) Scanning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.scanning
}

// watchScan consumes the scan session channel. Scanning is single-shot:
// the first decoded code ends the session before it is resolved, so a
// scan never auto-adds more than one code.
func (s *resolutionService) watchScan(session uint64, codes <-chan string) {
	// Guarantees the source is stopped on every exit path, including
	// the channel closing underneath us on teardown.
	defer s.releaseScan(session)

	code, ok := <-codes
	if !ok {
		return
	}

	s.releaseScan(session)

	if _, err := s.SubmitCode(context.Background(), code); err != nil {
		s.logger.Warn("scanned code was not applied",
			slog.String("code", code),
			slog.Any("error", err),
		)
	}
}

// releaseScan stops the scan source if the given session is still the
// active one. Idempotent per session; a newer session is left alone.
func (s *resolutionService) releaseScan(session uint64) {
	s.mu.Lock()
	if !s.scanning || s.scanSession != session {
		s.mu.Unlock()

		return
	}
	s.scanning = false
	s.mu.Unlock()

	if err := s.scanner.Stop(); err != nil {
		s.logger.Warn("failed to stop scan source", slog.Any("error", err))
	}
}
