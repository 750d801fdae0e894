package location

import (
	"context"
	"sync"

	"github.com/ataxihosur/dispatch/internal/pkg/models"
)

// Session is the explicit handle for one driver's tracking session. It is
// created by StartTracking and owned by the caller; there is no hidden
// process-wide tracking state.
type Session struct {
	DriverID string

	cancel context.CancelFunc
	done   chan struct{}

	mu      sync.Mutex
	lastFix models.PositionFix
}

// NewSession builds a session handle around the loop's cancel func and the
// initial fix.
func NewSession(driverID string, cancel context.CancelFunc, initial models.PositionFix) *Session {
	return &Session{
		DriverID: driverID,
		cancel:   cancel,
		done:     make(chan struct{}),
		lastFix:  initial,
	}
}

// LastFix returns the most recent fix the session has seen.
func (s *Session) LastFix() models.PositionFix {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastFix
}

// SetLastFix records the most recent fix.
func (s *Session) SetLastFix(fix models.PositionFix) {
	s.mu.Lock()
	s.lastFix = fix
	s.mu.Unlock()
}

// Cancel signals both emission triggers to stop.
func (s *Session) Cancel() {
	s.cancel()
}

// Close marks the session loop as drained. Called by the loop itself.
func (s *Session) Close() {
	close(s.done)
}

// Done is closed once both emission triggers have stopped.
func (s *Session) Done() <-chan struct{} {
	return s.done
}
