package model

import (
	"time"

	"github.com/google/uuid"

	"zarfuel_backend/internals/features/forum/reaction"
	profileModel "zarfuel_backend/internals/features/users/profiles/model"
)

// ForumCommentModel is a comment on a forum post. A nil parent id means a
// top-level comment; replies always point at a top-level comment (nesting is
// flattened to two levels at insert time).
type ForumCommentModel struct {
	ForumCommentID        uuid.UUID    `gorm:"column:forum_comment_id;primaryKey;type:uuid;default:gen_random_uuid()"`
	ForumCommentPostID    uuid.UUID    `gorm:"column:forum_comment_post_id;type:uuid;not null;index"`
	ForumCommentParentID  *uuid.UUID   `gorm:"column:forum_comment_parent_id;type:uuid"`
	ForumCommentContent   string       `gorm:"column:forum_comment_content;type:text;not null"`
	ForumCommentAuthorID  uuid.UUID    `gorm:"column:forum_comment_author_id;type:uuid;not null;index"`
	ForumCommentLikes     reaction.Set `gorm:"column:forum_comment_likes;type:jsonb;default:'[]'"`
	ForumCommentIsEdited  bool         `gorm:"column:forum_comment_is_edited;not null;default:false"`
	ForumCommentCreatedAt time.Time    `gorm:"column:forum_comment_created_at;autoCreateTime"`
	ForumCommentUpdatedAt time.Time    `gorm:"column:forum_comment_updated_at;autoUpdateTime"`

	// Relations
	Author *profileModel.ProfileModel `gorm:"foreignKey:ForumCommentAuthorID"`
}

func (ForumCommentModel) TableName() string {
	return "forum_comments"
}

// ApplyEdit replaces the comment body and marks it edited. The edited flag
// is monotonic: once set it is never cleared.
func (m *ForumCommentModel) ApplyEdit(content string) {
	m.ForumCommentContent = content
	m.ForumCommentIsEdited = true
}
