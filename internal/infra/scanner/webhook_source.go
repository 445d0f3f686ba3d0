// Package scanner adapts the external barcode decoder to the ScanSource
// interface. The decoder is a black box that pushes decoded codes to the
// terminal's scan webhook; this source gates them behind an explicit
// start/stop session.
package scanner

import (
	"context"
	"log/slog"
	"sync"

	"pos/config"
	"pos/internal/domain/service"
)

const defaultBuffer = 16

// WebhookSource buffers decoded codes pushed by the scan webhook while
// a session is active. Codes arriving outside a session are dropped:
// the device is only listened to between Start and Stop.
type WebhookSource struct {
	buffer int
	logger *slog.Logger

	mu    sync.Mutex
	codes chan string
}

var _ service.ScanSource = (*WebhookSource)(nil)

// New creates the scan source.
func New(cfg *config.Config, logger *slog.Logger) *WebhookSource {
	buffer := defaultBuffer
	if cfg.Scanner != nil && cfg.Scanner.Buffer > 0 {
		buffer = cfg.Scanner.Buffer
	}

	return &WebhookSource{
		buffer: buffer,
		logger: logger,
	}
}

// Start opens a scan session. The device is exclusive: an existing
// session is closed first.
func (s *WebhookSource) Start(ctx context.Context) (<-chan string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.codes != nil {
		close(s.codes)
	}
	s.codes = make(chan string, s.buffer)

	s.logger.Debug("scan session started")

	return s.codes, nil
}

// Stop closes the active session's channel. Safe without a session.
func (s *WebhookSource) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.codes != nil {
		close(s.codes)
		s.codes = nil
		s.logger.Debug("scan session stopped")
	}

	return nil
}

// Emit hands a decoded code to the active session. Reports whether the
// code was delivered; codes are dropped when no session is active or
// the session buffer is full.
func (s *WebhookSource) Emit(code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.codes == nil {
		return false
	}

	select {
	case s.codes <- code:
		return true
	default:
		s.logger.Warn("scan buffer full, dropping code", slog.String("code", code))

		return false
	}
}
