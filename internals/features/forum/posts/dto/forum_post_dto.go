package dto

import (
	"time"

	"github.com/google/uuid"

	"zarfuel_backend/internals/features/forum/posts/model"
	"zarfuel_backend/internals/features/forum/reaction"
)

// ============================
// Response DTO
// ============================
type AuthorDTO struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

type ForumPostDTO struct {
	ForumPostID        uuid.UUID       `json:"forum_post_id"`
	ForumPostTitle     string          `json:"forum_post_title"`
	ForumPostContent   string          `json:"forum_post_content"`
	ForumPostAuthorID  uuid.UUID       `json:"forum_post_author_id"`
	ForumPostIsEdited  bool            `json:"forum_post_is_edited"`
	ForumPostCreatedAt time.Time       `json:"forum_post_created_at"`
	ForumPostUpdatedAt time.Time       `json:"forum_post_updated_at"`
	Author             *AuthorDTO      `json:"author,omitempty"`
	LikeCount          int             `json:"like_count"`
	DislikeCount       int             `json:"dislike_count"`
	MyReaction         reaction.Status `json:"my_reaction"`
}

// ============================
// Create Request DTO
// ============================
type CreateForumPostRequest struct {
	ForumPostTitle   string `json:"forum_post_title" validate:"required,min=1,max=255"`
	ForumPostContent string `json:"forum_post_content" validate:"required,min=1"`
}

// ============================
// Update Request DTO
// ============================
type UpdateForumPostRequest struct {
	ForumPostTitle   string `json:"forum_post_title" validate:"required,min=1,max=255"`
	ForumPostContent string `json:"forum_post_content" validate:"required,min=1"`
}

// ============================
// Reaction Request DTO
// ============================
type ReactionRequest struct {
	IsLike *bool `json:"is_like" validate:"required"`
}

// ============================
// Converter
// ============================
func ToForumPostDTO(m model.ForumPostModel, viewer uuid.UUID) ForumPostDTO {
	out := ForumPostDTO{
		ForumPostID:        m.ForumPostID,
		ForumPostTitle:     m.ForumPostTitle,
		ForumPostContent:   m.ForumPostContent,
		ForumPostAuthorID:  m.ForumPostAuthorID,
		ForumPostIsEdited:  m.ForumPostIsEdited,
		ForumPostCreatedAt: m.ForumPostCreatedAt,
		ForumPostUpdatedAt: m.ForumPostUpdatedAt,
		LikeCount:          m.ForumPostLikes.Count(true),
		DislikeCount:       m.ForumPostLikes.Count(false),
		MyReaction:         m.ForumPostLikes.StatusFor(viewer),
	}
	if m.Author != nil {
		out.Author = &AuthorDTO{
			FirstName: m.Author.ProfileFirstName,
			LastName:  m.Author.ProfileLastName,
			Email:     m.Author.ProfileEmail,
			Role:      m.Author.ProfileRole,
		}
	}
	return out
}

func ToForumPostDTOList(models []model.ForumPostModel, viewer uuid.UUID) []ForumPostDTO {
	out := make([]ForumPostDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToForumPostDTO(m, viewer))
	}
	return out
}
