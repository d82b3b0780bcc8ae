package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"zarfuel_backend/internals/constants"
	"zarfuel_backend/internals/features/users/profiles/dto"
	"zarfuel_backend/internals/features/users/profiles/model"
	helper "zarfuel_backend/internals/helpers"
)

var validateProfile = validator.New()

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

// 🔍 GET /api/u/profiles/me
func (ctrl *ProfileController) GetMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var profile model.ProfileModel
	if err := ctrl.DB.Where("profile_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Profile not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load profile")
	}

	return helper.JsonOK(c, "My profile", dto.ToProfileDTO(profile))
}

// ✏️ PUT /api/u/profiles/me — email and role are not self-serve
func (ctrl *ProfileController) UpdateMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateMeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProfile.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var profile model.ProfileModel
	if err := ctrl.DB.Where("profile_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Profile not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load profile")
	}

	if err := ctrl.DB.Model(&profile).Updates(map[string]any{
		"profile_first_name": strings.TrimSpace(req.FirstName),
		"profile_last_name":  strings.TrimSpace(req.LastName),
		"profile_company":    req.Company,
		"profile_position":   req.Position,
		"profile_phone":      req.Phone,
	}).Error; err != nil {
		log.Printf("[ERROR] update profile: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
	}
	profile.ProfileFirstName = strings.TrimSpace(req.FirstName)
	profile.ProfileLastName = strings.TrimSpace(req.LastName)
	profile.ProfileCompany = req.Company
	profile.ProfilePosition = req.Position
	profile.ProfilePhone = req.Phone

	return helper.JsonUpdated(c, "Profile updated", dto.ToProfileDTO(profile))
}

// 📄 GET /api/a/users?search= — admin listing, paged
func (ctrl *ProfileController) GetAllUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 100)

	q := ctrl.DB.Model(&model.ProfileModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"LOWER(profile_first_name) LIKE ? OR LOWER(profile_last_name) LIKE ? OR LOWER(profile_email) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var profiles []model.ProfileModel
	if err := q.Order("profile_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&profiles).Error; err != nil {
		log.Printf("[ERROR] list users: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load users")
	}

	return helper.JsonList(c, "Users", dto.ToProfileDTOList(profiles),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =====================================================
// 🔁 PATCH /api/a/users/:id/role {role}
// Admins manage roles, but the superadmin tier is closed to them: only a
// superadmin may grant it or demote a holder.
// =====================================================
func (ctrl *ProfileController) ChangeRole(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var req dto.ChangeRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProfile.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if targetID == actorID {
		return helper.JsonError(c, fiber.StatusBadRequest, "You cannot change your own role")
	}

	var target model.ProfileModel
	if err := ctrl.DB.Where("profile_id = ?", targetID).First(&target).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load user")
	}

	actorRole := helper.GetUserRole(c)
	touchesSuperAdmin := req.Role == constants.RoleSuperAdmin || target.ProfileRole == constants.RoleSuperAdmin
	if touchesSuperAdmin && !constants.IsSuperAdmin(actorRole) {
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorSuperAdmin("superadmin role changes"))
	}

	if err := ctrl.DB.Model(&target).Update("profile_role", req.Role).Error; err != nil {
		log.Printf("[ERROR] change role: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to change role")
	}
	target.ProfileRole = req.Role

	return helper.JsonUpdated(c, "Role updated", dto.ToProfileDTO(target))
}
