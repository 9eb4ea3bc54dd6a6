// Package constants holds shared domain-level constants.
package constants

const (
	// RoleUser is the general attendee access tier.
	RoleUser = "user"
	// RoleAdmin is the privileged access tier allowed to broadcast.
	RoleAdmin = "admin"

	// DefaultRoute is the generic detail route a notification without an
	// explicit navigation target falls back to.
	DefaultRoute = "detailed_event_screen"

	// DefaultNotificationTitle and DefaultNotificationBody back-fill a push
	// payload that arrives without usable text.
	DefaultNotificationTitle = "Gatepass"
	DefaultNotificationBody  = "You have a new notification"

	// BroadcastTopic is the single well-known push topic opted-in devices
	// subscribe to.
	BroadcastTopic = "broadcast"

	// ListenWindowSize bounds the live notification query to the most
	// recent records.
	ListenWindowSize = 50

	// NotificationChannelID identifies the one general-purpose device
	// notification channel, created lazily and at most once.
	NotificationChannelID = "gatepass_general"

	// PubSubProviderLocal and PubSubProviderGoogle select the event
	// publisher backend.
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
