package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// NotifyUser decides to skip before touching the database, so a nil-DB
// service proves the skip: reaching the insert would panic.
func TestNotifyUserSkipsSelfNotification(t *testing.T) {
	svc := NewFanoutService(nil)
	actor := uuid.New()

	assert.NotPanics(t, func() {
		svc.NotifyUser(actor, actor, Event{Type: TypeCommentLiked, Content: "Dana liked your comment"})
	})
}

func TestNotifyUserSkipsNilRecipient(t *testing.T) {
	svc := NewFanoutService(nil)

	assert.NotPanics(t, func() {
		svc.NotifyUser(uuid.Nil, uuid.New(), Event{Type: TypeCommentCreated, Content: "orphaned"})
	})
}

func TestBuildRowsOneRowPerRecipient(t *testing.T) {
	recipients := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	link := "/forum"
	sourceID := uuid.New()
	ev := Event{
		Type:     TypePostCreated,
		Content:  "Dana published a new post: Kickoff",
		Link:     &link,
		SourceID: &sourceID,
	}

	rows := buildRows(recipients, ev)

	assert.Len(t, rows, len(recipients))
	seen := make(map[uuid.UUID]bool, len(rows))
	for i, row := range rows {
		assert.Equal(t, recipients[i], row.NotificationUserID)
		assert.Equal(t, TypePostCreated, row.NotificationType)
		assert.Equal(t, ev.Content, row.NotificationContent)
		assert.Equal(t, &link, row.NotificationLink)
		assert.Equal(t, &sourceID, row.NotificationSourceID)
		assert.False(t, seen[row.NotificationUserID])
		seen[row.NotificationUserID] = true
	}
}

func TestBuildRowsEmptyAudience(t *testing.T) {
	rows := buildRows(nil, Event{Type: TypePostCreated, Content: "nobody home"})
	assert.Empty(t, rows)
}
