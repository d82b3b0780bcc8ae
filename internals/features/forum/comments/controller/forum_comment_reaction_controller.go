package controller

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"zarfuel_backend/internals/features/forum/comments/dto"
	"zarfuel_backend/internals/features/forum/comments/model"
	"zarfuel_backend/internals/features/forum/reaction"
	notifService "zarfuel_backend/internals/features/home/notifications/service"
	helper "zarfuel_backend/internals/helpers"
	"zarfuel_backend/internals/realtime"
)

type ForumCommentReactionController struct {
	DB     *gorm.DB
	Fanout *notifService.FanoutService
	Hub    *realtime.Hub
}

func NewForumCommentReactionController(db *gorm.DB, fanout *notifService.FanoutService, hub *realtime.Hub) *ForumCommentReactionController {
	return &ForumCommentReactionController{DB: db, Fanout: fanout, Hub: hub}
}

// =====================================================
// 🔄 POST /api/u/forum/comments/:id/reactions {is_like}
// Same toggle + row-lock semantics as post reactions.
// =====================================================
func (ctrl *ForumCommentReactionController) ToggleReaction(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	commentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid comment id")
	}

	var req dto.ReactionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateComment.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	isLike := *req.IsLike

	actorName := ctrl.Fanout.ResolveDisplayName(helper.GetUserDisplayName(c), actorID)

	var comment model.ForumCommentModel
	var outcome reaction.Outcome
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("forum_comment_id = ?", commentID).
			First(&comment).Error; err != nil {
			return err
		}
		updated, out, err := comment.ForumCommentLikes.Apply(actorID, isLike, actorName)
		if err != nil {
			return err
		}
		outcome = out
		comment.ForumCommentLikes = updated
		return tx.Model(&comment).Update("forum_comment_likes", updated).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Comment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to toggle reaction")
	}

	result := dto.ToForumCommentDTO(comment, actorID)
	ctrl.Hub.Publish(comment.TableName(), realtime.ActionUpdate, result)

	if outcome != reaction.OutcomeRemoved && comment.ForumCommentAuthorID != actorID {
		typ := notifService.TypeCommentLiked
		verb := "liked"
		if !isLike {
			typ = notifService.TypeCommentDisliked
			verb = "disliked"
		}
		link := forumLink
		sourceID := comment.ForumCommentID
		go ctrl.Fanout.NotifyUser(comment.ForumCommentAuthorID, actorID, notifService.Event{
			Type:     typ,
			Content:  fmt.Sprintf("%s %s your comment", actorName, verb),
			Link:     &link,
			SourceID: &sourceID,
		})
	}

	return helper.JsonOK(c, "Reaction updated", result)
}
