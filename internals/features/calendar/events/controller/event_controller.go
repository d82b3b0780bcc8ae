package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditService "zarfuel_backend/internals/features/audit/deletionlogs/service"
	"zarfuel_backend/internals/constants"
	"zarfuel_backend/internals/features/calendar/events/dto"
	"zarfuel_backend/internals/features/calendar/events/model"
	"zarfuel_backend/internals/features/calendar/events/service"
	notifService "zarfuel_backend/internals/features/home/notifications/service"
	helper "zarfuel_backend/internals/helpers"
	"zarfuel_backend/internals/realtime"
)

var validateEvent = validator.New()

const calendarLink = "/calendar"

type EventController struct {
	DB     *gorm.DB
	Fanout *notifService.FanoutService
	Hub    *realtime.Hub
}

func NewEventController(db *gorm.DB, fanout *notifService.FanoutService, hub *realtime.Hub) *EventController {
	return &EventController{DB: db, Fanout: fanout, Hub: hub}
}

// 📄 GET /api/u/calendar/events?from=&to= — range-filtered, paged
func (ctrl *EventController) GetAllEvents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	q := ctrl.DB.Model(&model.EventModel{})
	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid from date")
		}
		q = q.Where("event_start_time >= ?", t)
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid to date")
		}
		q = q.Where("event_start_time < ?", t.AddDate(0, 0, 1))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count events")
	}

	var events []model.EventModel
	if err := q.Preload("Participants").
		Order("event_start_time ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&events).Error; err != nil {
		log.Printf("[ERROR] fetch events: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load events")
	}

	return helper.JsonList(c, "Events", dto.ToEventDTOList(events),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🔍 GET /api/u/calendar/events/:id
func (ctrl *EventController) GetEventByID(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var event model.EventModel
	if err := ctrl.DB.Preload("Participants").Preload("Creator").
		Where("event_id = ?", eventID).
		First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load event")
	}

	return helper.JsonOK(c, "Event detail", dto.ToEventDTO(event))
}

// =====================================================
// ➕ POST /api/u/calendar/events
// Start/end arrive as separate date + time-of-day fields and are recombined
// here; an inverted range is a 422 unless auto_adjust_end repairs it.
// Double-submits inside the 5s window reuse the existing row, and a
// unique-constraint loser falls back to fetching the winner.
// =====================================================
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateEvent.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	start, end, adjusted, err := service.ResolveRange(req.StartDate, req.StartTime, req.EndDate, req.EndTime, req.AutoAdjustEnd)
	if err != nil {
		if errors.Is(err, service.ErrEndBeforeStart) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date or time")
	}

	// Duplicate-submission guard.
	var existing model.EventModel
	err = ctrl.DB.Preload("Participants").
		Where("event_title = ? AND event_created_by = ? AND event_created_at > ?",
			req.EventTitle, actorID, service.DuplicateCutoff(time.Now())).
		Order("event_created_at DESC").
		First(&existing).Error
	if err == nil {
		return helper.JsonOK(c, "Event already submitted", dto.ToEventDTO(existing))
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check for duplicates")
	}

	event := model.EventModel{
		EventTitle:       req.EventTitle,
		EventDescription: req.EventDescription,
		EventLocation:    req.EventLocation,
		EventStartTime:   start,
		EventEndTime:     end,
		EventIsMeeting:   req.EventIsMeeting,
		EventCreatedBy:   actorID,
	}
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&event).Error; err != nil {
			return err
		}
		return ctrl.replaceParticipants(tx, &event, req.ParticipantIDs)
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrDuplicatedKey) {
			// Lost the insert race; hand back the winning row.
			var winner model.EventModel
			if err := ctrl.DB.Preload("Participants").
				Where("event_title = ? AND event_created_by = ?", req.EventTitle, actorID).
				Order("event_created_at DESC").
				First(&winner).Error; err == nil {
				return helper.JsonOK(c, "Event already submitted", dto.ToEventDTO(winner))
			}
		}
		log.Printf("[ERROR] create event: %v", txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event")
	}

	result := dto.ToEventDTO(event)
	result.EndWasAdjusted = adjusted
	ctrl.Hub.Publish(event.TableName(), realtime.ActionInsert, result)

	actorName := ctrl.Fanout.ResolveDisplayName(helper.GetUserDisplayName(c), actorID)
	link := calendarLink
	sourceID := event.EventID
	ev, _ := notifService.EntityEvent("meeting", "created", actorName, event.EventTitle, &link, &sourceID)
	go ctrl.Fanout.NotifyRoles(constants.SpecialAndAbove, actorID, ev)

	return helper.JsonCreated(c, "Event created", result)
}

// ✏️ PUT /api/u/calendar/events/:id (creator or admin)
func (ctrl *EventController) UpdateEvent(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateEvent.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	start, end, adjusted, err := service.ResolveRange(req.StartDate, req.StartTime, req.EndDate, req.EndTime, req.AutoAdjustEnd)
	if err != nil {
		if errors.Is(err, service.ErrEndBeforeStart) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date or time")
	}

	var event model.EventModel
	if err := ctrl.DB.Where("event_id = ?", eventID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load event")
	}
	if event.EventCreatedBy != actorID && !constants.IsAdmin(helper.GetUserRole(c)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the organizer may edit this event")
	}

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&event).Updates(map[string]any{
			"event_title":       req.EventTitle,
			"event_description": req.EventDescription,
			"event_location":    req.EventLocation,
			"event_start_time":  start,
			"event_end_time":    end,
			"event_is_meeting":  req.EventIsMeeting,
		}).Error; err != nil {
			return err
		}
		event.EventTitle = req.EventTitle
		event.EventDescription = req.EventDescription
		event.EventLocation = req.EventLocation
		event.EventStartTime = start
		event.EventEndTime = end
		event.EventIsMeeting = req.EventIsMeeting
		return ctrl.replaceParticipants(tx, &event, req.ParticipantIDs)
	})
	if txErr != nil {
		log.Printf("[ERROR] update event: %v", txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
	}

	result := dto.ToEventDTO(event)
	result.EndWasAdjusted = adjusted
	ctrl.Hub.Publish(event.TableName(), realtime.ActionUpdate, result)

	actorName := ctrl.Fanout.ResolveDisplayName(helper.GetUserDisplayName(c), actorID)
	link := calendarLink
	sourceID := event.EventID
	ev, _ := notifService.EntityEvent("meeting", "updated", actorName, event.EventTitle, &link, &sourceID)
	go ctrl.Fanout.NotifyRoles(constants.SpecialAndAbove, actorID, ev)

	return helper.JsonUpdated(c, "Event updated", result)
}

// 🗑️ DELETE /api/u/calendar/events/:id?confirm=true (creator or admin, audit-logged)
func (ctrl *EventController) DeleteEvent(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}
	if c.Query("confirm") != "true" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Deletion must be confirmed with ?confirm=true")
	}

	var event model.EventModel
	if err := ctrl.DB.Preload("Participants").
		Where("event_id = ?", eventID).
		First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load event")
	}
	if event.EventCreatedBy != actorID && !constants.IsAdmin(helper.GetUserRole(c)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the organizer may delete this event")
	}

	actorName := ctrl.Fanout.ResolveDisplayName(helper.GetUserDisplayName(c), actorID)

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := auditService.LogDeletion(tx, event.TableName(), event.EventID, actorID, actorName, event); err != nil {
			return err
		}
		if err := tx.Where("event_participant_event_id = ?", event.EventID).
			Delete(&model.EventParticipantModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&event).Error
	}); err != nil {
		log.Printf("[ERROR] delete event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}

	ctrl.Hub.Publish(event.TableName(), realtime.ActionDelete, fiber.Map{"event_id": event.EventID})

	link := calendarLink
	ev, _ := notifService.EntityEvent("meeting", "deleted", actorName, event.EventTitle, &link, nil)
	go ctrl.Fanout.NotifyRoles(constants.SpecialAndAbove, actorID, ev)

	return helper.JsonDeleted(c, "Event deleted", fiber.Map{"event_id": event.EventID})
}

// ✅ PATCH /api/u/calendar/events/:id/respond {response} — own row only
func (ctrl *EventController) RespondToEvent(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var req dto.RespondRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateEvent.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := ctrl.DB.Model(&model.EventParticipantModel{}).
		Where("event_participant_event_id = ? AND event_participant_user_id = ?", eventID, actorID).
		Update("event_participant_response", req.Response)
	if res.Error != nil {
		log.Printf("[ERROR] respond to event: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record response")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "You are not invited to this event")
	}

	ctrl.Hub.Publish((model.EventParticipantModel{}).TableName(), realtime.ActionUpdate, fiber.Map{
		"event_participant_event_id": eventID,
		"event_participant_user_id":  actorID,
		"event_participant_response": req.Response,
	})

	return helper.JsonUpdated(c, "Response recorded", fiber.Map{"response": req.Response})
}

// replaceParticipants swaps the invite list wholesale: old rows out, new rows
// in with a pending response. Only meetings carry participants.
func (ctrl *EventController) replaceParticipants(tx *gorm.DB, event *model.EventModel, userIDs []uuid.UUID) error {
	if err := tx.Where("event_participant_event_id = ?", event.EventID).
		Delete(&model.EventParticipantModel{}).Error; err != nil {
		return err
	}
	event.Participants = nil
	if !event.EventIsMeeting || len(userIDs) == 0 {
		return nil
	}
	seen := make(map[uuid.UUID]bool, len(userIDs))
	rows := make([]model.EventParticipantModel, 0, len(userIDs))
	for _, id := range userIDs {
		if id == uuid.Nil || seen[id] {
			continue
		}
		seen[id] = true
		rows = append(rows, model.EventParticipantModel{
			EventParticipantEventID:  event.EventID,
			EventParticipantUserID:   id,
			EventParticipantResponse: model.ResponsePending,
		})
	}
	if len(rows) == 0 {
		return nil
	}
	if err := tx.Create(&rows).Error; err != nil {
		return err
	}
	event.Participants = rows
	return nil
}
