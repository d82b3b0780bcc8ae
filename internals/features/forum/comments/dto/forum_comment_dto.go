package dto

import (
	"time"

	"github.com/google/uuid"

	"zarfuel_backend/internals/features/forum/comments/model"
	"zarfuel_backend/internals/features/forum/comments/service"
	"zarfuel_backend/internals/features/forum/reaction"
)

// ============================
// Response DTO
// ============================
type CommentAuthorDTO struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

type ForumCommentDTO struct {
	ForumCommentID        uuid.UUID         `json:"forum_comment_id"`
	ForumCommentPostID    uuid.UUID         `json:"forum_comment_post_id"`
	ForumCommentParentID  *uuid.UUID        `json:"forum_comment_parent_id"`
	ForumCommentContent   string            `json:"forum_comment_content"`
	ForumCommentAuthorID  uuid.UUID         `json:"forum_comment_author_id"`
	ForumCommentIsEdited  bool              `json:"forum_comment_is_edited"`
	ForumCommentCreatedAt time.Time         `json:"forum_comment_created_at"`
	ForumCommentUpdatedAt time.Time         `json:"forum_comment_updated_at"`
	Author                *CommentAuthorDTO `json:"author,omitempty"`
	LikeCount             int               `json:"like_count"`
	DislikeCount          int               `json:"dislike_count"`
	MyReaction            reaction.Status   `json:"my_reaction"`
}

type CommentThreadDTO struct {
	Parent  ForumCommentDTO   `json:"parent"`
	Replies []ForumCommentDTO `json:"replies"`
}

// ============================
// Create Request DTO
// ============================
type CreateForumCommentRequest struct {
	ForumCommentContent  string     `json:"forum_comment_content" validate:"required,min=1"`
	ForumCommentParentID *uuid.UUID `json:"forum_comment_parent_id"`
}

// ============================
// Update Request DTO
// ============================
type UpdateForumCommentRequest struct {
	ForumCommentContent string `json:"forum_comment_content" validate:"required,min=1"`
}

// ReactionRequest toggles the caller's like/dislike on a comment.
type ReactionRequest struct {
	IsLike *bool `json:"is_like" validate:"required"`
}

// ============================
// Converter
// ============================
func ToForumCommentDTO(m model.ForumCommentModel, viewer uuid.UUID) ForumCommentDTO {
	out := ForumCommentDTO{
		ForumCommentID:        m.ForumCommentID,
		ForumCommentPostID:    m.ForumCommentPostID,
		ForumCommentParentID:  m.ForumCommentParentID,
		ForumCommentContent:   m.ForumCommentContent,
		ForumCommentAuthorID:  m.ForumCommentAuthorID,
		ForumCommentIsEdited:  m.ForumCommentIsEdited,
		ForumCommentCreatedAt: m.ForumCommentCreatedAt,
		ForumCommentUpdatedAt: m.ForumCommentUpdatedAt,
		LikeCount:             m.ForumCommentLikes.Count(true),
		DislikeCount:          m.ForumCommentLikes.Count(false),
		MyReaction:            m.ForumCommentLikes.StatusFor(viewer),
	}
	if m.Author != nil {
		out.Author = &CommentAuthorDTO{
			FirstName: m.Author.ProfileFirstName,
			LastName:  m.Author.ProfileLastName,
			Email:     m.Author.ProfileEmail,
			Role:      m.Author.ProfileRole,
		}
	}
	return out
}

func ToCommentThreadDTOList(threads []service.Thread, viewer uuid.UUID) []CommentThreadDTO {
	out := make([]CommentThreadDTO, 0, len(threads))
	for _, t := range threads {
		thread := CommentThreadDTO{
			Parent:  ToForumCommentDTO(t.Parent, viewer),
			Replies: make([]ForumCommentDTO, 0, len(t.Replies)),
		}
		for _, r := range t.Replies {
			thread.Replies = append(thread.Replies, ToForumCommentDTO(r, viewer))
		}
		out = append(out, thread)
	}
	return out
}
