package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesMatchingSubscribers(t *testing.T) {
	hub := NewHub()
	posts := hub.Subscribe([]string{"forum_posts"})
	all := hub.Subscribe(nil)
	defer hub.Unsubscribe(posts)
	defer hub.Unsubscribe(all)

	hub.Publish("forum_posts", ActionInsert, map[string]string{"id": "1"})

	require.Len(t, posts.C, 1)
	ch := <-posts.C
	assert.Equal(t, "forum_posts", ch.Table)
	assert.Equal(t, ActionInsert, ch.Action)

	require.Len(t, all.C, 1)
}

func TestPublishFiltersByTable(t *testing.T) {
	hub := NewHub()
	comments := hub.Subscribe([]string{"forum_comments"})
	defer hub.Unsubscribe(comments)

	hub.Publish("forum_posts", ActionUpdate, nil)

	assert.Empty(t, comments.C)
}

func TestPublishNeverBlocksOnSlowSubscriber(t *testing.T) {
	hub := NewHub()
	slow := hub.Subscribe([]string{"events"})
	defer hub.Unsubscribe(slow)

	// Overflow the buffer; the excess must be dropped, not deadlock.
	for i := 0; i < 200; i++ {
		hub.Publish("events", ActionUpdate, i)
	}

	assert.Len(t, slow.C, cap(slow.C))
}

func TestUnsubscribeClosesChannelOnce(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe(nil)

	hub.Unsubscribe(sub)
	// A second unsubscribe of the same handle is a no-op.
	hub.Unsubscribe(sub)

	_, open := <-sub.C
	assert.False(t, open)

	// Publishing after unsubscribe must not panic on the closed channel.
	hub.Publish("forum_posts", ActionDelete, nil)
}
