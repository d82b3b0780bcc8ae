package dto

import (
	"time"

	"github.com/google/uuid"

	"zarfuel_backend/internals/features/users/profiles/model"
)

type ProfileDTO struct {
	ProfileID uuid.UUID `json:"profile_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Company   *string   `json:"company,omitempty"`
	Position  *string   `json:"position,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type UpdateMeRequest struct {
	FirstName string  `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string  `json:"last_name" validate:"required,min=1,max=100"`
	Company   *string `json:"company" validate:"omitempty,max=255"`
	Position  *string `json:"position" validate:"omitempty,max=255"`
	Phone     *string `json:"phone" validate:"omitempty,max=50"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=viewer special admin superadmin"`
}

func ToProfileDTO(m model.ProfileModel) ProfileDTO {
	return ProfileDTO{
		ProfileID: m.ProfileID,
		FirstName: m.ProfileFirstName,
		LastName:  m.ProfileLastName,
		Email:     m.ProfileEmail,
		Role:      m.ProfileRole,
		Company:   m.ProfileCompany,
		Position:  m.ProfilePosition,
		Phone:     m.ProfilePhone,
		IsActive:  m.ProfileIsActive,
		CreatedAt: m.ProfileCreatedAt,
	}
}

func ToProfileDTOList(models []model.ProfileModel) []ProfileDTO {
	out := make([]ProfileDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToProfileDTO(m))
	}
	return out
}
