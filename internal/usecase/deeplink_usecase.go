// Package usecase declares the application-facing interfaces of the
// notification core.
package usecase

import "gatepass/internal/domain/entity"

// DeepLinkStore is the process-wide single-slot holder for the navigation
// target a tapped notification points at. Created once at process start and
// injected wherever needed; never a package global.
type DeepLinkStore interface {
	// SetFromLaunchSignal extracts the route and optional event ID from the
	// launch data. A route blank after trimming is a no-op; otherwise any
	// existing pending link is replaced.
	SetFromLaunchSignal(sig entity.LaunchSignal)

	// Consume atomically returns the pending link and clears it. A second
	// consecutive call without an intervening set reports no link.
	Consume() (entity.PendingDeepLink, bool)
}
