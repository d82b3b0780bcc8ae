package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	auditService "zarfuel_backend/internals/features/audit/deletionlogs/service"
	"zarfuel_backend/internals/constants"
	notifService "zarfuel_backend/internals/features/home/notifications/service"
	"zarfuel_backend/internals/features/project/tasks/dto"
	"zarfuel_backend/internals/features/project/tasks/model"
	helper "zarfuel_backend/internals/helpers"
	"zarfuel_backend/internals/realtime"
)

var validateTask = validator.New()

const tasksLink = "/tasks"

type TaskController struct {
	DB     *gorm.DB
	Fanout *notifService.FanoutService
	Hub    *realtime.Hub
}

func NewTaskController(db *gorm.DB, fanout *notifService.FanoutService, hub *realtime.Hub) *TaskController {
	return &TaskController{DB: db, Fanout: fanout, Hub: hub}
}

// 📄 GET /api/u/tasks?status= — paged
func (ctrl *TaskController) GetAllTasks(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 100)

	q := ctrl.DB.Model(&model.TaskModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("task_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count tasks")
	}

	var tasks []model.TaskModel
	if err := q.Order("task_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&tasks).Error; err != nil {
		log.Printf("[ERROR] fetch tasks: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load tasks")
	}

	return helper.JsonList(c, "Tasks", dto.ToTaskDTOList(tasks),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🔍 GET /api/u/tasks/:id
func (ctrl *TaskController) GetTaskByID(c *fiber.Ctx) error {
	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid task id")
	}

	var task model.TaskModel
	if err := ctrl.DB.Preload("Creator").Where("task_id = ?", taskID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Task not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load task")
	}

	return helper.JsonOK(c, "Task detail", dto.ToTaskDTO(task))
}

// ➕ POST /api/u/tasks
func (ctrl *TaskController) CreateTask(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTask.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	status := req.TaskStatus
	if status == "" {
		status = model.StatusNotStarted
	}

	task := model.TaskModel{
		TaskTitle:            req.TaskTitle,
		TaskDescription:      req.TaskDescription,
		TaskStatus:           status,
		TaskProgress:         req.TaskProgress,
		TaskDueDate:          req.TaskDueDate,
		TaskResponsibleTeams: pq.StringArray(req.TaskResponsibleTeams),
		TaskCreatedBy:        actorID,
	}
	if err := ctrl.DB.Create(&task).Error; err != nil {
		log.Printf("[ERROR] create task: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create task")
	}

	result := dto.ToTaskDTO(task)
	ctrl.Hub.Publish(task.TableName(), realtime.ActionInsert, result)

	actorName := ctrl.Fanout.ResolveDisplayName(helper.GetUserDisplayName(c), actorID)
	link := tasksLink
	sourceID := task.TaskID
	ev, _ := notifService.EntityEvent("task", "created", actorName, task.TaskTitle, &link, &sourceID)
	go ctrl.Fanout.NotifyRoles(constants.SpecialAndAbove, actorID, ev)

	return helper.JsonCreated(c, "Task created", result)
}

// ✏️ PUT /api/u/tasks/:id — a status flip to complete sends its own signal
func (ctrl *TaskController) UpdateTask(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid task id")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTask.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var task model.TaskModel
	if err := ctrl.DB.Where("task_id = ?", taskID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Task not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load task")
	}

	becameComplete := task.TaskStatus != model.StatusComplete && req.TaskStatus == model.StatusComplete

	progress := req.TaskProgress
	if req.TaskStatus == model.StatusComplete {
		progress = 100
	}

	if err := ctrl.DB.Model(&task).Updates(map[string]any{
		"task_title":             req.TaskTitle,
		"task_description":       req.TaskDescription,
		"task_status":            req.TaskStatus,
		"task_progress":          progress,
		"task_due_date":          req.TaskDueDate,
		"task_responsible_teams": pq.StringArray(req.TaskResponsibleTeams),
	}).Error; err != nil {
		log.Printf("[ERROR] update task: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update task")
	}
	task.TaskTitle = req.TaskTitle
	task.TaskDescription = req.TaskDescription
	task.TaskStatus = req.TaskStatus
	task.TaskProgress = progress
	task.TaskDueDate = req.TaskDueDate
	task.TaskResponsibleTeams = pq.StringArray(req.TaskResponsibleTeams)

	result := dto.ToTaskDTO(task)
	ctrl.Hub.Publish(task.TableName(), realtime.ActionUpdate, result)

	actorName := ctrl.Fanout.ResolveDisplayName(helper.GetUserDisplayName(c), actorID)
	link := tasksLink
	sourceID := task.TaskID
	action := "updated"
	if becameComplete {
		action = "completed"
	}
	ev, _ := notifService.EntityEvent("task", action, actorName, task.TaskTitle, &link, &sourceID)
	go ctrl.Fanout.NotifyRoles(constants.SpecialAndAbove, actorID, ev)

	return helper.JsonUpdated(c, "Task updated", result)
}

// 🗑️ DELETE /api/u/tasks/:id?confirm=true — audit-logged
func (ctrl *TaskController) DeleteTask(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid task id")
	}
	if c.Query("confirm") != "true" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Deletion must be confirmed with ?confirm=true")
	}

	var task model.TaskModel
	if err := ctrl.DB.Where("task_id = ?", taskID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Task not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load task")
	}

	actorName := ctrl.Fanout.ResolveDisplayName(helper.GetUserDisplayName(c), actorID)

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := auditService.LogDeletion(tx, task.TableName(), task.TaskID, actorID, actorName, task); err != nil {
			return err
		}
		return tx.Delete(&task).Error
	}); err != nil {
		log.Printf("[ERROR] delete task: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete task")
	}

	ctrl.Hub.Publish(task.TableName(), realtime.ActionDelete, fiber.Map{"task_id": task.TaskID})

	link := tasksLink
	ev, _ := notifService.EntityEvent("task", "deleted", actorName, task.TaskTitle, &link, nil)
	go ctrl.Fanout.NotifyRoles(constants.SpecialAndAbove, actorID, ev)

	return helper.JsonDeleted(c, "Task deleted", fiber.Map{"task_id": task.TaskID})
}
