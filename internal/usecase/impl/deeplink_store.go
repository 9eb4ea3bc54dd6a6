// Package impl contains the concrete usecase services of the notification
// core.
package impl

import (
	"strings"
	"sync/atomic"

	"gatepass/internal/domain/entity"
	"gatepass/internal/usecase"
)

// deepLinkStore holds at most one pending deep link in a single atomic slot.
// Set and consume may race from the subscription callback goroutine and the
// foregrounding path; last write wins, and a consumed link is gone.
type deepLinkStore struct {
	slot atomic.Pointer[entity.PendingDeepLink]
}

// NewDeepLinkStore creates the process-wide deep link store.
func NewDeepLinkStore() usecase.DeepLinkStore {
	return &deepLinkStore{}
}

// SetFromLaunchSignal replaces the pending link with the signal's target.
// A route blank after trimming creates nothing and overwrites nothing.
func (s *deepLinkStore) SetFromLaunchSignal(sig entity.LaunchSignal) {
	route := strings.TrimSpace(sig.Route)
	if route == "" {
		return
	}

	s.slot.Store(&entity.PendingDeepLink{
		Route:   route,
		EventID: strings.TrimSpace(sig.EventID),
	})
}

// Consume atomically takes the pending link, leaving the slot empty.
func (s *deepLinkStore) Consume() (entity.PendingDeepLink, bool) {
	link := s.slot.Swap(nil)
	if link == nil {
		return entity.PendingDeepLink{}, false
	}

	return *link, true
}
