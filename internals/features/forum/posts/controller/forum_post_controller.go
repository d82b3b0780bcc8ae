package controller

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditService "zarfuel_backend/internals/features/audit/deletionlogs/service"
	commentModel "zarfuel_backend/internals/features/forum/comments/model"
	"zarfuel_backend/internals/features/forum/posts/dto"
	"zarfuel_backend/internals/features/forum/posts/model"
	notifService "zarfuel_backend/internals/features/home/notifications/service"
	helper "zarfuel_backend/internals/helpers"
	"zarfuel_backend/internals/realtime"

	"zarfuel_backend/internals/constants"
)

var validatePost = validator.New()

const forumLink = "/forum"

type ForumPostController struct {
	DB     *gorm.DB
	Fanout *notifService.FanoutService
	Hub    *realtime.Hub
}

func NewForumPostController(db *gorm.DB, fanout *notifService.FanoutService, hub *realtime.Hub) *ForumPostController {
	return &ForumPostController{DB: db, Fanout: fanout, Hub: hub}
}

// =====================================================
// 📄 GET /api/u/forum/posts?sort=recent|popular
// recent  → created_at desc (SQL)
// popular → likes − dislikes desc, recomputed per request
// =====================================================
func (ctrl *ForumPostController) GetAllPosts(c *fiber.Ctx) error {
	viewerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	sortMode := c.Query("sort", "recent")

	var total int64
	if err := ctrl.DB.Model(&model.ForumPostModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count posts")
	}

	var posts []model.ForumPostModel
	q := ctrl.DB.Preload("Author").Order("forum_post_created_at DESC")

	if sortMode == "popular" {
		// Score is derived from the serialized set, so the ordering happens
		// in memory after fetching the page universe.
		if err := q.Find(&posts).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load posts")
		}
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].ForumPostLikes.Score() > posts[j].ForumPostLikes.Score()
		})
		start := paging.Offset
		if start > len(posts) {
			start = len(posts)
		}
		end := start + paging.Limit
		if end > len(posts) {
			end = len(posts)
		}
		posts = posts[start:end]
	} else {
		if err := q.Limit(paging.Limit).Offset(paging.Offset).Find(&posts).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load posts")
		}
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Forum posts", dto.ToForumPostDTOList(posts, viewerID), pagination)
}

// 🔍 GET /api/u/forum/posts/:id
func (ctrl *ForumPostController) GetPostByID(c *fiber.Ctx) error {
	viewerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid post id")
	}

	var post model.ForumPostModel
	if err := ctrl.DB.Preload("Author").
		Where("forum_post_id = ?", postID).
		First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load post")
	}

	return helper.JsonOK(c, "Forum post", dto.ToForumPostDTO(post, viewerID))
}

// ➕ POST /api/u/forum/posts
func (ctrl *ForumPostController) CreatePost(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateForumPostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePost.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	post := model.ForumPostModel{
		ForumPostTitle:    req.ForumPostTitle,
		ForumPostContent:  req.ForumPostContent,
		ForumPostAuthorID: actorID,
		ForumPostLikes:    nil, // persisted as []
	}
	if err := ctrl.DB.Create(&post).Error; err != nil {
		log.Printf("[ERROR] create forum post: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create post")
	}

	result := dto.ToForumPostDTO(post, actorID)
	ctrl.Hub.Publish(model.ForumPostModel{}.TableName(), realtime.ActionInsert, result)

	// Fan-out to every non-viewer except the author; best-effort.
	actorName := ctrl.Fanout.ResolveDisplayName(helper.GetUserDisplayName(c), actorID)
	link := forumLink
	sourceID := post.ForumPostID
	go ctrl.Fanout.BroadcastNonViewers([]uuid.UUID{actorID}, notifService.Event{
		Type:     notifService.TypePostCreated,
		Content:  fmt.Sprintf("%s created a new post: %s", actorName, post.ForumPostTitle),
		Link:     &link,
		SourceID: &sourceID,
	})

	return helper.JsonCreated(c, "Post created successfully", result)
}

// ✏️ PUT /api/u/forum/posts/:id (author only)
func (ctrl *ForumPostController) UpdatePost(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid post id")
	}

	var req dto.UpdateForumPostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePost.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var post model.ForumPostModel
	if err := ctrl.DB.Where("forum_post_id = ?", postID).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load post")
	}
	if post.ForumPostAuthorID != actorID {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the author may edit this post")
	}

	post.ApplyEdit(req.ForumPostTitle, req.ForumPostContent)
	if err := ctrl.DB.Model(&post).Updates(map[string]any{
		"forum_post_title":     post.ForumPostTitle,
		"forum_post_content":   post.ForumPostContent,
		"forum_post_is_edited": post.ForumPostIsEdited,
	}).Error; err != nil {
		log.Printf("[ERROR] update forum post: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update post")
	}

	result := dto.ToForumPostDTO(post, actorID)
	ctrl.Hub.Publish(model.ForumPostModel{}.TableName(), realtime.ActionUpdate, result)

	actorName := ctrl.Fanout.ResolveDisplayName(helper.GetUserDisplayName(c), actorID)
	link := forumLink
	sourceID := post.ForumPostID
	go ctrl.Fanout.NotifyRoles(constants.SpecialAndAbove, actorID, notifService.Event{
		Type:     notifService.TypePostEdited,
		Content:  fmt.Sprintf("%s edited a post: %s", actorName, post.ForumPostTitle),
		Link:     &link,
		SourceID: &sourceID,
	})

	return helper.JsonUpdated(c, "Post updated successfully", result)
}

// =====================================================
// 🗑️ DELETE /api/u/forum/posts/:id?confirm=true (author only)
// Irreversible: the caller must confirm explicitly. The audit snapshot and
// the delete commit in one transaction.
// =====================================================
func (ctrl *ForumPostController) DeletePost(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid post id")
	}
	if c.Query("confirm") != "true" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Deletion must be confirmed with ?confirm=true")
	}

	var post model.ForumPostModel
	if err := ctrl.DB.Where("forum_post_id = ?", postID).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load post")
	}
	if post.ForumPostAuthorID != actorID {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the author may delete this post")
	}

	actorName := ctrl.Fanout.ResolveDisplayName(helper.GetUserDisplayName(c), actorID)

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := auditService.LogDeletion(tx, post.TableName(), post.ForumPostID, actorID, actorName, post); err != nil {
			return err
		}
		if err := tx.Where("forum_comment_post_id = ?", post.ForumPostID).
			Delete(&commentModel.ForumCommentModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	}); err != nil {
		log.Printf("[ERROR] delete forum post: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete post")
	}

	ctrl.Hub.Publish(post.TableName(), realtime.ActionDelete, fiber.Map{"forum_post_id": post.ForumPostID})

	link := forumLink
	go ctrl.Fanout.NotifyRoles(constants.AdminAndAbove, actorID, notifService.Event{
		Type:    notifService.TypeForumPostDeleted,
		Content: fmt.Sprintf("%s deleted forum post: %s", actorName, post.ForumPostTitle),
		Link:    &link,
	})

	return helper.JsonDeleted(c, "Post deleted successfully", fiber.Map{"forum_post_id": post.ForumPostID})
}
