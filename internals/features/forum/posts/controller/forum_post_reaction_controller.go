package controller

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"zarfuel_backend/internals/features/forum/posts/dto"
	"zarfuel_backend/internals/features/forum/posts/model"
	"zarfuel_backend/internals/features/forum/reaction"
	notifService "zarfuel_backend/internals/features/home/notifications/service"
	helper "zarfuel_backend/internals/helpers"
	"zarfuel_backend/internals/realtime"
)

type ForumPostReactionController struct {
	DB     *gorm.DB
	Fanout *notifService.FanoutService
	Hub    *realtime.Hub
}

func NewForumPostReactionController(db *gorm.DB, fanout *notifService.FanoutService, hub *realtime.Hub) *ForumPostReactionController {
	return &ForumPostReactionController{DB: db, Fanout: fanout, Hub: hub}
}

// =====================================================
// 🔄 POST /api/u/forum/posts/:id/reactions {is_like}
// Toggle semantics: same reaction removes, opposite replaces, new appends.
// The row is locked for the read-modify-write so concurrent reactors cannot
// clobber each other's entries.
// =====================================================
func (ctrl *ForumPostReactionController) ToggleReaction(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid post id")
	}

	var req dto.ReactionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePost.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	isLike := *req.IsLike

	actorName := ctrl.Fanout.ResolveDisplayName(helper.GetUserDisplayName(c), actorID)

	var post model.ForumPostModel
	var outcome reaction.Outcome
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("forum_post_id = ?", postID).
			First(&post).Error; err != nil {
			return err
		}
		updated, out, err := post.ForumPostLikes.Apply(actorID, isLike, actorName)
		if err != nil {
			return err
		}
		outcome = out
		post.ForumPostLikes = updated
		return tx.Model(&post).Update("forum_post_likes", updated).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to toggle reaction")
	}

	result := dto.ToForumPostDTO(post, actorID)
	ctrl.Hub.Publish(post.TableName(), realtime.ActionUpdate, result)

	// Only a net-new or switched reaction notifies the author; toggling off
	// is silent, and self-reactions never notify.
	if outcome != reaction.OutcomeRemoved && post.ForumPostAuthorID != actorID {
		typ := notifService.TypePostLiked
		verb := "liked"
		if !isLike {
			typ = notifService.TypePostDisliked
			verb = "disliked"
		}
		link := forumLink
		sourceID := post.ForumPostID
		go ctrl.Fanout.NotifyUser(post.ForumPostAuthorID, actorID, notifService.Event{
			Type:     typ,
			Content:  fmt.Sprintf("%s %s your post: %s", actorName, verb, post.ForumPostTitle),
			Link:     &link,
			SourceID: &sourceID,
		})
	}

	return helper.JsonOK(c, "Reaction updated", result)
}

// 🔍 GET /api/u/forum/posts/:id/reactions
func (ctrl *ForumPostReactionController) GetReactions(c *fiber.Ctx) error {
	viewerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid post id")
	}

	var post model.ForumPostModel
	if err := ctrl.DB.Select("forum_post_id", "forum_post_likes").
		Where("forum_post_id = ?", postID).
		First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load reactions")
	}

	return helper.JsonOK(c, "Post reactions", fiber.Map{
		"like_count":    post.ForumPostLikes.Count(true),
		"dislike_count": post.ForumPostLikes.Count(false),
		"likers":        post.ForumPostLikes.DisplayNames(true),
		"dislikers":     post.ForumPostLikes.DisplayNames(false),
		"my_reaction":   post.ForumPostLikes.StatusFor(viewerID),
	})
}
