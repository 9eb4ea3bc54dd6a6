package entity

// LaunchSignal is the raw data attached to whatever woke or launched the app:
// an intent, a push payload, or an explicit call from a posted notification.
type LaunchSignal struct {
	Route   string `json:"route"`
	EventID string `json:"event_id,omitempty"`
}

// PendingDeepLink is the ephemeral, process-lifetime navigation target set by
// a tapped notification. At most one instance exists at a time and it is
// consumed exactly once by the initial-routing code path.
type PendingDeepLink struct {
	Route   string
	EventID string
}
