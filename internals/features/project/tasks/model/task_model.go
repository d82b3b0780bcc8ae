package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	profileModel "zarfuel_backend/internals/features/users/profiles/model"
)

const (
	StatusNotStarted = "notstarted"
	StatusInProgress = "inprogress"
	StatusComplete   = "complete"
	StatusOngoing    = "ongoing"
)

type TaskModel struct {
	TaskID               uuid.UUID      `gorm:"column:task_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"task_id"`
	TaskTitle            string         `gorm:"column:task_title;type:varchar(255);not null" json:"task_title"`
	TaskDescription      *string        `gorm:"column:task_description;type:text" json:"task_description"`
	TaskStatus           string         `gorm:"column:task_status;type:varchar(20);not null;default:'notstarted';index" json:"task_status"`
	TaskProgress         int            `gorm:"column:task_progress;not null;default:0" json:"task_progress"`
	TaskDueDate          *time.Time     `gorm:"column:task_due_date" json:"task_due_date"`
	TaskResponsibleTeams pq.StringArray `gorm:"column:task_responsible_teams;type:text[]" json:"task_responsible_teams"`
	TaskCreatedBy        uuid.UUID      `gorm:"column:task_created_by;type:uuid;not null;index" json:"task_created_by"`
	TaskCreatedAt        time.Time      `gorm:"column:task_created_at;autoCreateTime" json:"task_created_at"`
	TaskUpdatedAt        time.Time      `gorm:"column:task_updated_at;autoUpdateTime" json:"task_updated_at"`

	// Relations
	Creator *profileModel.ProfileModel `gorm:"foreignKey:TaskCreatedBy" json:"creator,omitempty"`
}

func (TaskModel) TableName() string {
	return "tasks"
}
