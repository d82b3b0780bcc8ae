package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ResponsePending  = "pending"
	ResponseAccepted = "accepted"
	ResponseDeclined = "declined"
)

// EventParticipantModel rows are replaced wholesale when a meeting's invite
// list changes, never diffed.
type EventParticipantModel struct {
	EventParticipantID        uuid.UUID `gorm:"column:event_participant_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"event_participant_id"`
	EventParticipantEventID   uuid.UUID `gorm:"column:event_participant_event_id;type:uuid;not null;uniqueIndex:uq_event_participants_event_user;constraint:OnDelete:CASCADE" json:"event_participant_event_id"`
	EventParticipantUserID    uuid.UUID `gorm:"column:event_participant_user_id;type:uuid;not null;index;uniqueIndex:uq_event_participants_event_user" json:"event_participant_user_id"`
	EventParticipantResponse  string    `gorm:"column:event_participant_response;type:varchar(20);not null;default:'pending'" json:"event_participant_response"`
	EventParticipantCreatedAt time.Time `gorm:"column:event_participant_created_at;autoCreateTime" json:"event_participant_created_at"`
}

func (EventParticipantModel) TableName() string {
	return "event_participants"
}
