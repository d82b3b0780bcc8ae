package model

import (
	"time"

	"github.com/google/uuid"

	"zarfuel_backend/internals/features/forum/reaction"
	profileModel "zarfuel_backend/internals/features/users/profiles/model"
)

type ForumPostModel struct {
	ForumPostID        uuid.UUID    `gorm:"column:forum_post_id;primaryKey;type:uuid;default:gen_random_uuid()"`
	ForumPostTitle     string       `gorm:"column:forum_post_title;type:varchar(255);not null"`
	ForumPostContent   string       `gorm:"column:forum_post_content;type:text;not null"`
	ForumPostAuthorID  uuid.UUID    `gorm:"column:forum_post_author_id;type:uuid;not null;index"`
	ForumPostLikes     reaction.Set `gorm:"column:forum_post_likes;type:jsonb;default:'[]'"`
	ForumPostIsEdited  bool         `gorm:"column:forum_post_is_edited;not null;default:false"`
	ForumPostCreatedAt time.Time    `gorm:"column:forum_post_created_at;autoCreateTime"`
	ForumPostUpdatedAt time.Time    `gorm:"column:forum_post_updated_at;autoUpdateTime"`

	// Relations
	Author *profileModel.ProfileModel `gorm:"foreignKey:ForumPostAuthorID"`
}

func (ForumPostModel) TableName() string {
	return "forum_posts"
}

// ApplyEdit replaces the editable fields and marks the post edited. The
// edited flag is monotonic: once set it is never cleared.
func (m *ForumPostModel) ApplyEdit(title, content string) {
	m.ForumPostTitle = title
	m.ForumPostContent = content
	m.ForumPostIsEdited = true
}
