package dto

import (
	"time"

	"github.com/google/uuid"

	"zarfuel_backend/internals/features/project/tasks/model"
)

type TaskDTO struct {
	TaskID               uuid.UUID  `json:"task_id"`
	TaskTitle            string     `json:"task_title"`
	TaskDescription      *string    `json:"task_description"`
	TaskStatus           string     `json:"task_status"`
	TaskProgress         int        `json:"task_progress"`
	TaskDueDate          *time.Time `json:"task_due_date"`
	TaskResponsibleTeams []string   `json:"task_responsible_teams"`
	TaskCreatedBy        uuid.UUID  `json:"task_created_by"`
	TaskCreatedAt        time.Time  `json:"task_created_at"`
	TaskUpdatedAt        time.Time  `json:"task_updated_at"`
}

type CreateTaskRequest struct {
	TaskTitle            string     `json:"task_title" validate:"required,min=1,max=255"`
	TaskDescription      *string    `json:"task_description"`
	TaskStatus           string     `json:"task_status" validate:"omitempty,oneof=notstarted inprogress complete ongoing"`
	TaskProgress         int        `json:"task_progress" validate:"gte=0,lte=100"`
	TaskDueDate          *time.Time `json:"task_due_date"`
	TaskResponsibleTeams []string   `json:"task_responsible_teams" validate:"omitempty,dive,min=1,max=100"`
}

type UpdateTaskRequest struct {
	TaskTitle            string     `json:"task_title" validate:"required,min=1,max=255"`
	TaskDescription      *string    `json:"task_description"`
	TaskStatus           string     `json:"task_status" validate:"required,oneof=notstarted inprogress complete ongoing"`
	TaskProgress         int        `json:"task_progress" validate:"gte=0,lte=100"`
	TaskDueDate          *time.Time `json:"task_due_date"`
	TaskResponsibleTeams []string   `json:"task_responsible_teams" validate:"omitempty,dive,min=1,max=100"`
}

func ToTaskDTO(m model.TaskModel) TaskDTO {
	return TaskDTO{
		TaskID:               m.TaskID,
		TaskTitle:            m.TaskTitle,
		TaskDescription:      m.TaskDescription,
		TaskStatus:           m.TaskStatus,
		TaskProgress:         m.TaskProgress,
		TaskDueDate:          m.TaskDueDate,
		TaskResponsibleTeams: append([]string{}, m.TaskResponsibleTeams...),
		TaskCreatedBy:        m.TaskCreatedBy,
		TaskCreatedAt:        m.TaskCreatedAt,
		TaskUpdatedAt:        m.TaskUpdatedAt,
	}
}

func ToTaskDTOList(models []model.TaskModel) []TaskDTO {
	out := make([]TaskDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToTaskDTO(m))
	}
	return out
}
