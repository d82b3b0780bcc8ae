package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyEditMarksCommentEdited(t *testing.T) {
	comment := ForumCommentModel{ForumCommentContent: "first draft"}
	assert.False(t, comment.ForumCommentIsEdited)

	comment.ApplyEdit("second draft")

	assert.Equal(t, "second draft", comment.ForumCommentContent)
	assert.True(t, comment.ForumCommentIsEdited)
}

func TestApplyEditNeverClearsEditedFlag(t *testing.T) {
	comment := ForumCommentModel{ForumCommentIsEdited: true}

	comment.ApplyEdit("third draft")

	assert.True(t, comment.ForumCommentIsEdited)
}
