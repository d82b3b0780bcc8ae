package dto

import (
	"time"

	"github.com/google/uuid"

	"zarfuel_backend/internals/features/project/contacts/model"
)

type ContactDTO struct {
	ContactID         uuid.UUID `json:"contact_id"`
	ContactName       string    `json:"contact_name"`
	ContactCompany    *string   `json:"contact_company"`
	ContactPosition   *string   `json:"contact_position"`
	ContactEmail      *string   `json:"contact_email"`
	ContactPhone      *string   `json:"contact_phone"`
	ContactNotes      *string   `json:"contact_notes"`
	ContactVisibility string    `json:"contact_visibility"`
	ContactCreatedBy  uuid.UUID `json:"contact_created_by"`
	ContactCreatedAt  time.Time `json:"contact_created_at"`
	ContactUpdatedAt  time.Time `json:"contact_updated_at"`
}

type CreateContactRequest struct {
	ContactName       string  `json:"contact_name" validate:"required,min=1,max=255"`
	ContactCompany    *string `json:"contact_company" validate:"omitempty,max=255"`
	ContactPosition   *string `json:"contact_position" validate:"omitempty,max=255"`
	ContactEmail      *string `json:"contact_email" validate:"omitempty,email,max=255"`
	ContactPhone      *string `json:"contact_phone" validate:"omitempty,max=50"`
	ContactNotes      *string `json:"contact_notes"`
	ContactVisibility string  `json:"contact_visibility" validate:"omitempty,oneof=public admin_only company_specific"`
}

type UpdateContactRequest struct {
	ContactName       string  `json:"contact_name" validate:"required,min=1,max=255"`
	ContactCompany    *string `json:"contact_company" validate:"omitempty,max=255"`
	ContactPosition   *string `json:"contact_position" validate:"omitempty,max=255"`
	ContactEmail      *string `json:"contact_email" validate:"omitempty,email,max=255"`
	ContactPhone      *string `json:"contact_phone" validate:"omitempty,max=50"`
	ContactNotes      *string `json:"contact_notes"`
	ContactVisibility string  `json:"contact_visibility" validate:"required,oneof=public admin_only company_specific"`
}

func ToContactDTO(m model.ContactModel) ContactDTO {
	return ContactDTO{
		ContactID:         m.ContactID,
		ContactName:       m.ContactName,
		ContactCompany:    m.ContactCompany,
		ContactPosition:   m.ContactPosition,
		ContactEmail:      m.ContactEmail,
		ContactPhone:      m.ContactPhone,
		ContactNotes:      m.ContactNotes,
		ContactVisibility: m.ContactVisibility,
		ContactCreatedBy:  m.ContactCreatedBy,
		ContactCreatedAt:  m.ContactCreatedAt,
		ContactUpdatedAt:  m.ContactUpdatedAt,
	}
}

func ToContactDTOList(models []model.ContactModel) []ContactDTO {
	out := make([]ContactDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToContactDTO(m))
	}
	return out
}
