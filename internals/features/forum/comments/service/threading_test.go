package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zarfuel_backend/internals/features/forum/comments/model"
)

func comment(id uuid.UUID, parent *uuid.UUID, at time.Time) model.ForumCommentModel {
	return model.ForumCommentModel{
		ForumCommentID:        id,
		ForumCommentParentID:  parent,
		ForumCommentCreatedAt: at,
	}
}

func TestBuildThreadsPartitionsRepliesUnderParents(t *testing.T) {
	base := time.Now()
	rootA := uuid.New()
	rootB := uuid.New()
	replyA1 := uuid.New()
	replyA2 := uuid.New()
	replyB1 := uuid.New()

	threads := BuildThreads([]model.ForumCommentModel{
		comment(rootA, nil, base),
		comment(replyA1, &rootA, base.Add(time.Minute)),
		comment(rootB, nil, base.Add(2*time.Minute)),
		comment(replyB1, &rootB, base.Add(3*time.Minute)),
		comment(replyA2, &rootA, base.Add(4*time.Minute)),
	})

	require.Len(t, threads, 2)
	assert.Equal(t, rootA, threads[0].Parent.ForumCommentID)
	assert.Equal(t, rootB, threads[1].Parent.ForumCommentID)

	require.Len(t, threads[0].Replies, 2)
	assert.Equal(t, replyA1, threads[0].Replies[0].ForumCommentID)
	assert.Equal(t, replyA2, threads[0].Replies[1].ForumCommentID)

	require.Len(t, threads[1].Replies, 1)
	assert.Equal(t, replyB1, threads[1].Replies[0].ForumCommentID)
}

func TestBuildThreadsDropsOrphanedReplies(t *testing.T) {
	root := uuid.New()
	missing := uuid.New()

	threads := BuildThreads([]model.ForumCommentModel{
		comment(root, nil, time.Now()),
		comment(uuid.New(), &missing, time.Now()),
	})

	require.Len(t, threads, 1)
	assert.Empty(t, threads[0].Replies)
}

func TestBuildThreadsEmptyInput(t *testing.T) {
	assert.Empty(t, BuildThreads(nil))
	assert.Empty(t, BuildThreads([]model.ForumCommentModel{}))
}

func TestBuildThreadsKeepsInputOrderForParents(t *testing.T) {
	base := time.Now()
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	input := make([]model.ForumCommentModel, 0, len(ids))
	for i, id := range ids {
		input = append(input, comment(id, nil, base.Add(time.Duration(i)*time.Second)))
	}

	threads := BuildThreads(input)
	require.Len(t, threads, len(ids))
	for i, id := range ids {
		assert.Equal(t, id, threads[i].Parent.ForumCommentID)
	}
}
