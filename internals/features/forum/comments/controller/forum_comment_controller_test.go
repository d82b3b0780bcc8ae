package controller

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"zarfuel_backend/internals/features/forum/comments/model"
	postModel "zarfuel_backend/internals/features/forum/posts/model"
	notifService "zarfuel_backend/internals/features/home/notifications/service"
)

func TestCommentBroadcastPlanTopLevel(t *testing.T) {
	actorID := uuid.New()
	post := postModel.ForumPostModel{
		ForumPostID:       uuid.New(),
		ForumPostTitle:    "Q3 budget review",
		ForumPostAuthorID: uuid.New(),
	}

	exclude, ev := commentBroadcastPlan(post, nil, actorID, "Dana")

	assert.ElementsMatch(t, []uuid.UUID{actorID, post.ForumPostAuthorID}, exclude)
	assert.Equal(t, notifService.TypeCommentCreated, ev.Type)
	assert.Equal(t, "Dana commented on a post: Q3 budget review", ev.Content)
}

func TestCommentBroadcastPlanReplyExcludesParentAuthor(t *testing.T) {
	actorID := uuid.New()
	post := postModel.ForumPostModel{
		ForumPostID:       uuid.New(),
		ForumPostTitle:    "Site survey notes",
		ForumPostAuthorID: uuid.New(),
	}
	parent := &model.ForumCommentModel{
		ForumCommentID:       uuid.New(),
		ForumCommentAuthorID: uuid.New(),
	}

	exclude, ev := commentBroadcastPlan(post, parent, actorID, "Dana")

	assert.ElementsMatch(t,
		[]uuid.UUID{actorID, post.ForumPostAuthorID, parent.ForumCommentAuthorID},
		exclude)
	assert.Equal(t, notifService.TypeCommentReplyCreated, ev.Type)
	assert.Equal(t, "Dana replied to a comment on a post: Site survey notes", ev.Content)
}

// The actor commenting on their own post still stays out of the broadcast;
// the duplicate id in the exclusion list is harmless for a NOT IN filter.
func TestCommentBroadcastPlanSelfPost(t *testing.T) {
	actorID := uuid.New()
	post := postModel.ForumPostModel{
		ForumPostID:       uuid.New(),
		ForumPostTitle:    "Weekly sync",
		ForumPostAuthorID: actorID,
	}

	exclude, _ := commentBroadcastPlan(post, nil, actorID, "Dana")

	for _, id := range exclude {
		assert.Equal(t, actorID, id)
	}
}
