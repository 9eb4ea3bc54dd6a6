package entity

import "strings"

// PushIdentity pairs a user with the device token the push transport last
// handed out for them. The transport refreshes tokens at its own discretion,
// not on a fixed schedule.
type PushIdentity struct {
	UserID string
	Token  string
}

// NormalizeToken trims the surrounding whitespace a transport occasionally
// leaks into token strings. A token that is blank after normalization must
// never overwrite a previously stored valid one.
func NormalizeToken(token string) string {
	return strings.TrimSpace(token)
}
