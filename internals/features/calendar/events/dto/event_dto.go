// file: internals/features/calendar/events/dto/event_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"zarfuel_backend/internals/features/calendar/events/model"
)

// =====================================================
// 📤 Responses
// =====================================================

type ParticipantDTO struct {
	EventParticipantID uuid.UUID `json:"event_participant_id"`
	UserID             uuid.UUID `json:"user_id"`
	Response           string    `json:"response"`
}

type EventDTO struct {
	EventID          uuid.UUID        `json:"event_id"`
	EventTitle       string           `json:"event_title"`
	EventDescription *string          `json:"event_description"`
	EventLocation    *string          `json:"event_location"`
	EventStartTime   time.Time        `json:"event_start_time"`
	EventEndTime     time.Time        `json:"event_end_time"`
	EventIsMeeting   bool             `json:"event_is_meeting"`
	EventCreatedBy   uuid.UUID        `json:"event_created_by"`
	EventCreatedAt   time.Time        `json:"event_created_at"`
	EventUpdatedAt   time.Time        `json:"event_updated_at"`
	Participants     []ParticipantDTO `json:"participants"`
	EndWasAdjusted   bool             `json:"end_was_adjusted,omitempty"`
}

// =====================================================
// 📥 Requests — the form edits date and time-of-day separately,
// the server recombines them.
// =====================================================

type CreateEventRequest struct {
	EventTitle       string      `json:"event_title" validate:"required,min=1,max=255"`
	EventDescription *string     `json:"event_description"`
	EventLocation    *string     `json:"event_location" validate:"omitempty,max=255"`
	StartDate        string      `json:"start_date" validate:"required,datetime=2006-01-02"`
	StartTime        string      `json:"start_time" validate:"required,datetime=15:04"`
	EndDate          string      `json:"end_date" validate:"required,datetime=2006-01-02"`
	EndTime          string      `json:"end_time" validate:"required,datetime=15:04"`
	EventIsMeeting   bool        `json:"event_is_meeting"`
	AutoAdjustEnd    bool        `json:"auto_adjust_end"`
	ParticipantIDs   []uuid.UUID `json:"participant_ids"`
}

type UpdateEventRequest struct {
	EventTitle       string      `json:"event_title" validate:"required,min=1,max=255"`
	EventDescription *string     `json:"event_description"`
	EventLocation    *string     `json:"event_location" validate:"omitempty,max=255"`
	StartDate        string      `json:"start_date" validate:"required,datetime=2006-01-02"`
	StartTime        string      `json:"start_time" validate:"required,datetime=15:04"`
	EndDate          string      `json:"end_date" validate:"required,datetime=2006-01-02"`
	EndTime          string      `json:"end_time" validate:"required,datetime=15:04"`
	EventIsMeeting   bool        `json:"event_is_meeting"`
	AutoAdjustEnd    bool        `json:"auto_adjust_end"`
	ParticipantIDs   []uuid.UUID `json:"participant_ids"`
}

type RespondRequest struct {
	Response string `json:"response" validate:"required,oneof=accepted declined"`
}

// =====================================================
// 🔁 Converters
// =====================================================

func ToParticipantDTO(m model.EventParticipantModel) ParticipantDTO {
	return ParticipantDTO{
		EventParticipantID: m.EventParticipantID,
		UserID:             m.EventParticipantUserID,
		Response:           m.EventParticipantResponse,
	}
}

func ToEventDTO(m model.EventModel) EventDTO {
	participants := make([]ParticipantDTO, 0, len(m.Participants))
	for _, p := range m.Participants {
		participants = append(participants, ToParticipantDTO(p))
	}
	return EventDTO{
		EventID:          m.EventID,
		EventTitle:       m.EventTitle,
		EventDescription: m.EventDescription,
		EventLocation:    m.EventLocation,
		EventStartTime:   m.EventStartTime,
		EventEndTime:     m.EventEndTime,
		EventIsMeeting:   m.EventIsMeeting,
		EventCreatedBy:   m.EventCreatedBy,
		EventCreatedAt:   m.EventCreatedAt,
		EventUpdatedAt:   m.EventUpdatedAt,
		Participants:     participants,
	}
}

func ToEventDTOList(models []model.EventModel) []EventDTO {
	out := make([]EventDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToEventDTO(m))
	}
	return out
}
