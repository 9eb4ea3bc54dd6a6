package entity

// NotificationPreference is the per-user opt-in flag for notification
// delivery. A user without a stored preference is treated as opted in.
type NotificationPreference struct {
	UserID  string `json:"user_id"`
	Enabled bool   `json:"enabled"`
}

// PushPayload is an inbound out-of-process push message: notification-level
// title/body plus free-form data fields carrying the navigation target.
type PushPayload struct {
	Title string
	Body  string
	Data  map[string]string
}
