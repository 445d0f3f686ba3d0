package service

import (
	"context"
)

// ScanSource is the black-box barcode decoder integration. It is a
// singleton exclusive device: at most one active session exists, and
// starting a new session replaces any previous one.
//
// Start opens a session and returns the channel on which decoded codes
// arrive. Stop ends the session and closes the channel, which is how a
// subscriber learns the session is over. Stop is safe to call when no
// session is active.
type ScanSource interface {
	Start(ctx context.Context) (<-chan string, error)
	Stop() error
}
