package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProfileModel represents the profiles table. One row per account; the role
// column drives every permission decision.
type ProfileModel struct {
	ProfileID        uuid.UUID `gorm:"column:profile_id;type:uuid;default:gen_random_uuid();primaryKey" json:"profile_id"`
	ProfileFirstName string    `gorm:"column:profile_first_name;size:100" json:"profile_first_name"`
	ProfileLastName  string    `gorm:"column:profile_last_name;size:100" json:"profile_last_name"`
	ProfileEmail     string    `gorm:"column:profile_email;size:255;unique;not null" json:"profile_email"`
	ProfilePassword  string    `gorm:"column:profile_password;not null" json:"-"`
	ProfileRole      string    `gorm:"column:profile_role;type:varchar(20);not null;default:'viewer'" json:"profile_role"`
	ProfileCompany   *string   `gorm:"column:profile_company;size:255" json:"profile_company,omitempty"`
	ProfilePosition  *string   `gorm:"column:profile_position;size:255" json:"profile_position,omitempty"`
	ProfilePhone     *string   `gorm:"column:profile_phone;size:50" json:"profile_phone,omitempty"`
	ProfileIsActive  bool      `gorm:"column:profile_is_active;not null;default:true" json:"profile_is_active"`
	ProfileCreatedAt time.Time `gorm:"column:profile_created_at;autoCreateTime" json:"profile_created_at"`
	ProfileUpdatedAt time.Time `gorm:"column:profile_updated_at;autoUpdateTime" json:"profile_updated_at"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}

// FullName joins first and last name; empty when neither is set.
func (p ProfileModel) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(p.ProfileFirstName) + " " + strings.TrimSpace(p.ProfileLastName))
}
