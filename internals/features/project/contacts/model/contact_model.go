package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	VisibilityPublic          = "public"
	VisibilityAdminOnly       = "admin_only"
	VisibilityCompanySpecific = "company_specific"
)

type ContactModel struct {
	ContactID         uuid.UUID `gorm:"column:contact_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"contact_id"`
	ContactName       string    `gorm:"column:contact_name;type:varchar(255);not null" json:"contact_name"`
	ContactCompany    *string   `gorm:"column:contact_company;type:varchar(255);index" json:"contact_company"`
	ContactPosition   *string   `gorm:"column:contact_position;type:varchar(255)" json:"contact_position"`
	ContactEmail      *string   `gorm:"column:contact_email;type:varchar(255)" json:"contact_email"`
	ContactPhone      *string   `gorm:"column:contact_phone;type:varchar(50)" json:"contact_phone"`
	ContactNotes      *string   `gorm:"column:contact_notes;type:text" json:"contact_notes"`
	ContactVisibility string    `gorm:"column:contact_visibility;type:varchar(20);not null;default:'public'" json:"contact_visibility"`
	ContactCreatedBy  uuid.UUID `gorm:"column:contact_created_by;type:uuid;not null;index" json:"contact_created_by"`
	ContactCreatedAt  time.Time `gorm:"column:contact_created_at;autoCreateTime" json:"contact_created_at"`
	ContactUpdatedAt  time.Time `gorm:"column:contact_updated_at;autoUpdateTime" json:"contact_updated_at"`
}

func (ContactModel) TableName() string {
	return "contacts"
}
