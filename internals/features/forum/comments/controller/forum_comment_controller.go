package controller

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditService "zarfuel_backend/internals/features/audit/deletionlogs/service"
	"zarfuel_backend/internals/features/forum/comments/dto"
	"zarfuel_backend/internals/features/forum/comments/model"
	"zarfuel_backend/internals/features/forum/comments/service"
	postModel "zarfuel_backend/internals/features/forum/posts/model"
	notifService "zarfuel_backend/internals/features/home/notifications/service"
	helper "zarfuel_backend/internals/helpers"
	"zarfuel_backend/internals/realtime"
)

var validateComment = validator.New()

const forumLink = "/forum"

type ForumCommentController struct {
	DB     *gorm.DB
	Fanout *notifService.FanoutService
	Hub    *realtime.Hub
}

func NewForumCommentController(db *gorm.DB, fanout *notifService.FanoutService, hub *realtime.Hub) *ForumCommentController {
	return &ForumCommentController{DB: db, Fanout: fanout, Hub: hub}
}

// 📄 GET /api/u/forum/posts/:post_id/comments — two-level threads
func (ctrl *ForumCommentController) GetThreadsByPost(c *fiber.Ctx) error {
	viewerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	postID, err := uuid.Parse(c.Params("post_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid post id")
	}

	var comments []model.ForumCommentModel
	if err := ctrl.DB.Preload("Author").
		Where("forum_comment_post_id = ?", postID).
		Order("forum_comment_created_at ASC").
		Find(&comments).Error; err != nil {
		log.Printf("[ERROR] fetch comments: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load comments")
	}

	threads := service.BuildThreads(comments)
	return helper.JsonOK(c, "Comment threads", dto.ToCommentThreadDTOList(threads, viewerID))
}

// =====================================================
// ➕ POST /api/u/forum/posts/:post_id/comments
// A reply to a reply is re-parented to the root comment, keeping threads at
// two levels. After insert: reply → notify parent author; top-level →
// notify post author; then the forum-wide broadcast minus actor, post
// author, and parent author.
// =====================================================
func (ctrl *ForumCommentController) CreateComment(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	postID, err := uuid.Parse(c.Params("post_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid post id")
	}

	var req dto.CreateForumCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateComment.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var post postModel.ForumPostModel
	if err := ctrl.DB.Select("forum_post_id", "forum_post_title", "forum_post_author_id").
		Where("forum_post_id = ?", postID).
		First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load post")
	}

	var parent *model.ForumCommentModel
	if req.ForumCommentParentID != nil {
		var p model.ForumCommentModel
		if err := ctrl.DB.
			Where("forum_comment_id = ? AND forum_comment_post_id = ?", *req.ForumCommentParentID, postID).
			First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Parent comment not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load parent comment")
		}
		// Flatten: replying to a reply attaches to the root comment.
		if p.ForumCommentParentID != nil {
			var root model.ForumCommentModel
			if err := ctrl.DB.
				Where("forum_comment_id = ?", *p.ForumCommentParentID).
				First(&root).Error; err == nil {
				p = root
			}
		}
		parent = &p
	}

	comment := model.ForumCommentModel{
		ForumCommentPostID:   postID,
		ForumCommentContent:  req.ForumCommentContent,
		ForumCommentAuthorID: actorID,
	}
	if parent != nil {
		comment.ForumCommentParentID = &parent.ForumCommentID
	}
	if err := ctrl.DB.Create(&comment).Error; err != nil {
		log.Printf("[ERROR] create comment: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to add comment")
	}

	result := dto.ToForumCommentDTO(comment, actorID)
	ctrl.Hub.Publish(comment.TableName(), realtime.ActionInsert, result)

	actorName := ctrl.Fanout.ResolveDisplayName(helper.GetUserDisplayName(c), actorID)
	link := forumLink
	go ctrl.fanOutCommentNotifications(comment, post, parent, actorID, actorName, link)

	return helper.JsonCreated(c, "Comment added", result)
}

// fanOutCommentNotifications runs detached from the request; every failure
// inside the fan-out service is logged and swallowed.
func (ctrl *ForumCommentController) fanOutCommentNotifications(
	comment model.ForumCommentModel,
	post postModel.ForumPostModel,
	parent *model.ForumCommentModel,
	actorID uuid.UUID,
	actorName, link string,
) {
	commentID := comment.ForumCommentID
	postID := post.ForumPostID
	isReply := parent != nil

	// Direct notifications: parent author for replies, post author for
	// top-level comments. NotifyUser already skips self-notification.
	if isReply {
		ctrl.Fanout.NotifyUser(parent.ForumCommentAuthorID, actorID, notifService.Event{
			Type:     notifService.TypeCommentReply,
			Content:  fmt.Sprintf("%s replied to your comment", actorName),
			Link:     &link,
			SourceID: &commentID,
		})
	} else {
		ctrl.Fanout.NotifyUser(post.ForumPostAuthorID, actorID, notifService.Event{
			Type:     notifService.TypeCommentCreated,
			Content:  fmt.Sprintf("%s commented on your post: %s", actorName, post.ForumPostTitle),
			Link:     &link,
			SourceID: &postID,
		})
	}

	// Forum-wide broadcast, minus everyone already notified above.
	exclude, ev := commentBroadcastPlan(post, parent, actorID, actorName)
	ev.Link = &link
	ev.SourceID = &postID
	ctrl.Fanout.BroadcastNonViewers(exclude, ev)
}

// commentBroadcastPlan decides the forum-wide audience exclusions and wording
// for a freshly inserted comment. Everyone notified directly (the actor, the
// post author, and for replies the parent comment's author) stays out of the
// broadcast.
func commentBroadcastPlan(
	post postModel.ForumPostModel,
	parent *model.ForumCommentModel,
	actorID uuid.UUID,
	actorName string,
) ([]uuid.UUID, notifService.Event) {
	exclude := []uuid.UUID{actorID, post.ForumPostAuthorID}
	ev := notifService.Event{
		Type:    notifService.TypeCommentCreated,
		Content: fmt.Sprintf("%s commented on a post: %s", actorName, post.ForumPostTitle),
	}
	if parent != nil {
		exclude = append(exclude, parent.ForumCommentAuthorID)
		ev.Type = notifService.TypeCommentReplyCreated
		ev.Content = fmt.Sprintf("%s replied to a comment on a post: %s", actorName, post.ForumPostTitle)
	}
	return exclude, ev
}

// ✏️ PUT /api/u/forum/comments/:id (author only)
func (ctrl *ForumCommentController) UpdateComment(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	commentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid comment id")
	}

	var req dto.UpdateForumCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateComment.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var comment model.ForumCommentModel
	if err := ctrl.DB.Where("forum_comment_id = ?", commentID).First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Comment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load comment")
	}
	if comment.ForumCommentAuthorID != actorID {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the author may edit this comment")
	}

	comment.ApplyEdit(req.ForumCommentContent)
	if err := ctrl.DB.Model(&comment).Updates(map[string]any{
		"forum_comment_content":   comment.ForumCommentContent,
		"forum_comment_is_edited": comment.ForumCommentIsEdited,
	}).Error; err != nil {
		log.Printf("[ERROR] update comment: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update comment")
	}

	result := dto.ToForumCommentDTO(comment, actorID)
	ctrl.Hub.Publish(comment.TableName(), realtime.ActionUpdate, result)

	return helper.JsonUpdated(c, "Comment updated", result)
}

// 🗑️ DELETE /api/u/forum/comments/:id?confirm=true (author only, audit-logged)
func (ctrl *ForumCommentController) DeleteComment(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	commentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid comment id")
	}
	if c.Query("confirm") != "true" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Deletion must be confirmed with ?confirm=true")
	}

	var comment model.ForumCommentModel
	if err := ctrl.DB.Where("forum_comment_id = ?", commentID).First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Comment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load comment")
	}
	if comment.ForumCommentAuthorID != actorID {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the author may delete this comment")
	}

	actorName := ctrl.Fanout.ResolveDisplayName(helper.GetUserDisplayName(c), actorID)

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := auditService.LogDeletion(tx, comment.TableName(), comment.ForumCommentID, actorID, actorName, comment); err != nil {
			return err
		}
		// Replies under a deleted parent become orphans and drop out of the
		// rendered threads; they are removed here to keep the table clean.
		if comment.ForumCommentParentID == nil {
			if err := tx.Where("forum_comment_parent_id = ?", comment.ForumCommentID).
				Delete(&model.ForumCommentModel{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&comment).Error
	}); err != nil {
		log.Printf("[ERROR] delete comment: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete comment")
	}

	ctrl.Hub.Publish(comment.TableName(), realtime.ActionDelete, fiber.Map{"forum_comment_id": comment.ForumCommentID})

	return helper.JsonDeleted(c, "Comment deleted", fiber.Map{"forum_comment_id": comment.ForumCommentID})
}
