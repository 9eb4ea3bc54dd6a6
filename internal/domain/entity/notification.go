// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"
)

// RoleAll is the sentinel target role matching every listener regardless of
// its own role.
const RoleAll = "all"

// NotificationRecord is a notification persisted in the backend notification
// collection. Records are immutable once written; the ingestion side never
// modifies or deletes them.
type NotificationRecord struct {
	ID         string    `firestore:"-" json:"id"`
	Title      string    `firestore:"title" json:"title"`
	Body       string    `firestore:"body" json:"body"`
	Route      string    `firestore:"route" json:"route"`
	EventID    string    `firestore:"eventId,omitempty" json:"event_id,omitempty"`
	TargetRole string    `firestore:"targetRole" json:"target_role"`
	CreatedAt  time.Time `firestore:"createdAt,serverTimestamp" json:"created_at"`
}

// Deliverable reports whether the record carries enough text to be surfaced
// to a user. Records failing this check are dropped at ingestion, never
// deleted server-side.
func (r *NotificationRecord) Deliverable() bool {
	return strings.TrimSpace(r.Title) != "" && strings.TrimSpace(r.Body) != ""
}

// MatchesRole reports whether the record should be visible to a listener
// running with the given role.
func (r *NotificationRecord) MatchesRole(role string) bool {
	return r.TargetRole == role || r.TargetRole == RoleAll
}

// ChangeKind classifies a single record change within a snapshot callback.
type ChangeKind int

const (
	// ChangeAdded marks a record that entered the query window.
	ChangeAdded ChangeKind = iota
	// ChangeModified marks a record whose content changed in place.
	ChangeModified
	// ChangeRemoved marks a record that left the query window.
	ChangeRemoved
)

// String returns the change kind label used in logs.
func (k ChangeKind) String() string {
	switch k {
	case ChangeAdded:
		return "added"
	case ChangeModified:
		return "modified"
	case ChangeRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// NotificationChange pairs a record with the kind of change that produced it.
type NotificationChange struct {
	Kind   ChangeKind
	Record *NotificationRecord
}
