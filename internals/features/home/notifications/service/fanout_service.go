// file: internals/features/home/notifications/service/fanout_service.go
package service

import (
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"zarfuel_backend/internals/constants"
	notifModel "zarfuel_backend/internals/features/home/notifications/model"
	profileModel "zarfuel_backend/internals/features/users/profiles/model"
)

// Batched broadcasts insert 5 rows at a time with a courtesy pause between
// batches. The pause is a rate-limit nicety, not a correctness mechanism.
const (
	broadcastBatchSize = 5
	broadcastBatchWait = 300 * time.Millisecond
)

// FanoutService resolves a notification audience and writes one row per
// recipient. Delivery is best-effort and at-most-once: every failure is
// logged and swallowed so the primary mutation is never blocked.
type FanoutService struct {
	DB *gorm.DB
}

func NewFanoutService(db *gorm.DB) *FanoutService {
	return &FanoutService{DB: db}
}

// ResolveDisplayName returns a presentable actor name. An empty or
// email-shaped name is replaced by the actor's profile full name.
func (s *FanoutService) ResolveDisplayName(name string, actorID uuid.UUID) string {
	name = strings.TrimSpace(name)
	if name != "" && !strings.Contains(name, "@") {
		return name
	}
	var profile profileModel.ProfileModel
	if err := s.DB.
		Select("profile_first_name", "profile_last_name").
		Where("profile_id = ?", actorID).
		First(&profile).Error; err != nil {
		return "A user"
	}
	if full := profile.FullName(); full != "" {
		return full
	}
	return "A user"
}

// NotifyUser inserts a single-recipient notification. Self-notification is
// skipped entirely.
func (s *FanoutService) NotifyUser(recipient, actor uuid.UUID, ev Event) {
	if recipient == uuid.Nil || recipient == actor {
		return
	}
	row := notifModel.NotificationModel{
		NotificationUserID:   recipient,
		NotificationType:     ev.Type,
		NotificationContent:  ev.Content,
		NotificationLink:     ev.Link,
		NotificationSourceID: ev.SourceID,
	}
	if err := s.DB.Create(&row).Error; err != nil {
		log.Printf("[NOTIF ERROR] notify user %s (%s): %v", recipient, ev.Type, err)
	}
}

// NotifyRoles broadcasts to every user whose role is in roles, minus the
// excluded actor.
func (s *FanoutService) NotifyRoles(roles []string, exclude uuid.UUID, ev Event) {
	recipients, err := s.recipientIDs(roles, []uuid.UUID{exclude})
	if err != nil {
		log.Printf("[NOTIF ERROR] resolve role audience (%s): %v", ev.Type, err)
		return
	}
	if len(recipients) == 0 {
		return
	}
	rows := buildRows(recipients, ev)
	if err := s.DB.Create(&rows).Error; err != nil {
		log.Printf("[NOTIF ERROR] role broadcast (%s): %v", ev.Type, err)
	}
}

// BroadcastNonViewers notifies every non-viewer user except the excluded
// ids, inserting in small batches with a delay in between.
func (s *FanoutService) BroadcastNonViewers(exclude []uuid.UUID, ev Event) {
	recipients, err := s.recipientIDs(constants.NonViewerRoles, exclude)
	if err != nil {
		log.Printf("[NOTIF ERROR] resolve broadcast audience (%s): %v", ev.Type, err)
		return
	}
	for start := 0; start < len(recipients); start += broadcastBatchSize {
		end := start + broadcastBatchSize
		if end > len(recipients) {
			end = len(recipients)
		}
		rows := buildRows(recipients[start:end], ev)
		if err := s.DB.Create(&rows).Error; err != nil {
			log.Printf("[NOTIF ERROR] broadcast batch (%s): %v", ev.Type, err)
		}
		if end < len(recipients) {
			time.Sleep(broadcastBatchWait)
		}
	}
}

func (s *FanoutService) recipientIDs(roles []string, exclude []uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	q := s.DB.Model(&profileModel.ProfileModel{}).
		Where("profile_role IN ?", roles).
		Where("profile_is_active = TRUE")
	excluded := make([]uuid.UUID, 0, len(exclude))
	for _, id := range exclude {
		if id != uuid.Nil {
			excluded = append(excluded, id)
		}
	}
	if len(excluded) > 0 {
		q = q.Where("profile_id NOT IN ?", excluded)
	}
	if err := q.Pluck("profile_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func buildRows(recipients []uuid.UUID, ev Event) []notifModel.NotificationModel {
	rows := make([]notifModel.NotificationModel, 0, len(recipients))
	for _, id := range recipients {
		rows = append(rows, notifModel.NotificationModel{
			NotificationUserID:   id,
			NotificationType:     ev.Type,
			NotificationContent:  ev.Content,
			NotificationLink:     ev.Link,
			NotificationSourceID: ev.SourceID,
		})
	}
	return rows
}
