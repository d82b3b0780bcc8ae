package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyEditMarksPostEdited(t *testing.T) {
	post := ForumPostModel{
		ForumPostTitle:   "Draft title",
		ForumPostContent: "Draft body",
	}
	assert.False(t, post.ForumPostIsEdited)

	post.ApplyEdit("Final title", "Final body")

	assert.Equal(t, "Final title", post.ForumPostTitle)
	assert.Equal(t, "Final body", post.ForumPostContent)
	assert.True(t, post.ForumPostIsEdited)
}

func TestApplyEditNeverClearsEditedFlag(t *testing.T) {
	post := ForumPostModel{ForumPostIsEdited: true}

	post.ApplyEdit("Another pass", "Same words as before")

	assert.True(t, post.ForumPostIsEdited)
}
