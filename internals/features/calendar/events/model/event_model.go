package model

import (
	"time"

	"github.com/google/uuid"

	profileModel "zarfuel_backend/internals/features/users/profiles/model"
)

// EventModel is a calendar entry; when EventIsMeeting is set it carries a
// participant list. The composite unique index backs the duplicate-submission
// fallback: a retried insert of the same title/creator/start trips the
// constraint instead of creating a second row.
type EventModel struct {
	EventID          uuid.UUID  `gorm:"column:event_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"event_id"`
	EventTitle       string     `gorm:"column:event_title;type:varchar(255);not null;uniqueIndex:uq_events_title_creator_start" json:"event_title"`
	EventDescription *string    `gorm:"column:event_description;type:text" json:"event_description"`
	EventLocation    *string    `gorm:"column:event_location;type:varchar(255)" json:"event_location"`
	EventStartTime   time.Time  `gorm:"column:event_start_time;not null;index;uniqueIndex:uq_events_title_creator_start" json:"event_start_time"`
	EventEndTime     time.Time  `gorm:"column:event_end_time;not null" json:"event_end_time"`
	EventIsMeeting   bool       `gorm:"column:event_is_meeting;not null;default:false" json:"event_is_meeting"`
	EventCreatedBy   uuid.UUID  `gorm:"column:event_created_by;type:uuid;not null;index;uniqueIndex:uq_events_title_creator_start" json:"event_created_by"`
	EventCreatedAt   time.Time  `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt   time.Time  `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at"`

	// Relations
	Creator      *profileModel.ProfileModel `gorm:"foreignKey:EventCreatedBy" json:"creator,omitempty"`
	Participants []EventParticipantModel    `gorm:"foreignKey:EventParticipantEventID" json:"participants,omitempty"`
}

func (EventModel) TableName() string {
	return "events"
}
