// file: internals/features/home/notifications/service/types.go
package service

import (
	"fmt"

	"github.com/google/uuid"
)

// Notification type tags as stored in notifications.notification_type.
const (
	// Task
	TypeTaskCreated   = "task_created"
	TypeTaskUpdated   = "task_updated"
	TypeTaskCompleted = "task_completed"
	TypeTaskDeleted   = "task_deleted"

	// Meeting
	TypeMeetingCreated = "meeting_created"
	TypeMeetingUpdated = "meeting_updated"
	TypeMeetingDeleted = "meeting_deleted"

	// Budget
	TypeBudgetCreated = "budget_created"
	TypeBudgetUpdated = "budget_updated"
	TypeBudgetDeleted = "budget_deleted"

	// Risk
	TypeRiskCreated = "risk_created"
	TypeRiskUpdated = "risk_updated"
	TypeRiskDeleted = "risk_deleted"

	// Document repository
	TypeRepositoryCreated = "repository_created"
	TypeRepositoryUpdated = "repository_updated"
	TypeRepositoryDeleted = "repository_deleted"

	// Contact
	TypeContactCreated = "contact_created"
	TypeContactUpdated = "contact_updated"
	TypeContactDeleted = "contact_deleted"

	// Forum
	TypePostCreated         = "post_created"
	TypePostEdited          = "post_edited"
	TypePostLiked           = "post_liked"
	TypePostDisliked        = "post_disliked"
	TypeCommentCreated      = "comment_created"
	TypeCommentReply        = "comment_reply"
	TypeCommentReplyCreated = "comment_reply_created"
	TypeCommentLiked        = "comment_liked"
	TypeCommentDisliked     = "comment_disliked"
	TypeForumPostDeleted    = "forum_post_deleted"
)

// Event is one pre-rendered notification ready to fan out.
type Event struct {
	Type     string
	Content  string
	Link     *string
	SourceID *uuid.UUID
}

// entityTemplates maps entity+action to the content template. The %s slots
// are actor display name and entity title.
var entityTemplates = map[string]map[string]struct {
	typ     string
	content string
}{
	"task": {
		"created":   {TypeTaskCreated, "%s created a new task: %s"},
		"updated":   {TypeTaskUpdated, "%s updated task: %s"},
		"completed": {TypeTaskCompleted, "%s marked task as complete: %s"},
		"deleted":   {TypeTaskDeleted, "%s deleted task: %s"},
	},
	"meeting": {
		"created": {TypeMeetingCreated, "%s scheduled a new meeting: %s"},
		"updated": {TypeMeetingUpdated, "%s updated meeting: %s"},
		"deleted": {TypeMeetingDeleted, "%s cancelled meeting: %s"},
	},
	"budget": {
		"created": {TypeBudgetCreated, "%s added a new budget record: %s"},
		"updated": {TypeBudgetUpdated, "%s updated budget record: %s"},
		"deleted": {TypeBudgetDeleted, "%s deleted budget record: %s"},
	},
	"risk": {
		"created": {TypeRiskCreated, "%s added a new risk: %s"},
		"updated": {TypeRiskUpdated, "%s updated risk: %s"},
		"deleted": {TypeRiskDeleted, "%s deleted risk: %s"},
	},
	"repository": {
		"created": {TypeRepositoryCreated, "%s added a new document repository: %s"},
		"updated": {TypeRepositoryUpdated, "%s updated document repository: %s"},
		"deleted": {TypeRepositoryDeleted, "%s deleted document repository: %s"},
	},
	"contact": {
		"created": {TypeContactCreated, "%s added a new contact: %s"},
		"updated": {TypeContactUpdated, "%s updated contact: %s"},
		"deleted": {TypeContactDeleted, "%s deleted contact: %s"},
	},
}

// EntityEvent renders the notification for a domain entity action.
func EntityEvent(entity, action, actorName, title string, link *string, sourceID *uuid.UUID) (Event, error) {
	actions, ok := entityTemplates[entity]
	if !ok {
		return Event{}, fmt.Errorf("unknown notification entity %q", entity)
	}
	tpl, ok := actions[action]
	if !ok {
		return Event{}, fmt.Errorf("invalid %s action %q", entity, action)
	}
	return Event{
		Type:     tpl.typ,
		Content:  fmt.Sprintf(tpl.content, actorName, title),
		Link:     link,
		SourceID: sourceID,
	}, nil
}
