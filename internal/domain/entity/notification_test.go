package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotificationRecord_Deliverable(t *testing.T) {
	tests := []struct {
		name     string
		record   NotificationRecord
		expected bool
	}{
		{name: "title and body present", record: NotificationRecord{Title: "t", Body: "b"}, expected: true},
		{name: "blank title", record: NotificationRecord{Title: "   ", Body: "b"}, expected: false},
		{name: "blank body", record: NotificationRecord{Title: "t", Body: "\t\n"}, expected: false},
		{name: "both blank", record: NotificationRecord{}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.record.Deliverable())
		})
	}
}

func TestNotificationRecord_MatchesRole(t *testing.T) {
	userRecord := NotificationRecord{TargetRole: "user"}
	allRecord := NotificationRecord{TargetRole: RoleAll}

	assert.True(t, userRecord.MatchesRole("user"))
	assert.False(t, userRecord.MatchesRole("admin"))
	assert.True(t, allRecord.MatchesRole("user"))
	assert.True(t, allRecord.MatchesRole("admin"))
}

func TestChangeKind_String(t *testing.T) {
	assert.Equal(t, "added", ChangeAdded.String())
	assert.Equal(t, "modified", ChangeModified.String())
	assert.Equal(t, "removed", ChangeRemoved.String())
	assert.Equal(t, "unknown", ChangeKind(99).String())
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "abc", NormalizeToken("  abc  "))
	assert.Equal(t, "", NormalizeToken("   "))
	assert.Equal(t, "abc", NormalizeToken("abc"))
}
