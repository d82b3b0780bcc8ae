package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"zarfuel_backend/internals/constants"
	"zarfuel_backend/internals/features/users/auth/dto"
	"zarfuel_backend/internals/features/users/auth/service"
	profileModel "zarfuel_backend/internals/features/users/profiles/model"
	helper "zarfuel_backend/internals/helpers"
)

var validateAuth = validator.New()

const accessTokenCookie = "access_token"

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// ➕ POST /api/auth/register — new accounts always start as viewer
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	hashed, err := service.HashPassword(req.Password)
	if err != nil {
		log.Printf("[ERROR] hash password: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register")
	}

	profile := profileModel.ProfileModel{
		ProfileFirstName: strings.TrimSpace(req.FirstName),
		ProfileLastName:  strings.TrimSpace(req.LastName),
		ProfileEmail:     strings.ToLower(strings.TrimSpace(req.Email)),
		ProfilePassword:  hashed,
		ProfileRole:      constants.RoleViewer,
		ProfileCompany:   req.Company,
		ProfilePosition:  req.Position,
		ProfilePhone:     req.Phone,
	}
	if err := ctrl.DB.Create(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Email is already registered")
		}
		log.Printf("[ERROR] create profile: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register")
	}

	return helper.JsonCreated(c, "Registration successful", dto.AuthUserDTO{
		ProfileID: profile.ProfileID,
		FirstName: profile.ProfileFirstName,
		LastName:  profile.ProfileLastName,
		Email:     profile.ProfileEmail,
		Role:      profile.ProfileRole,
	})
}

// 🔑 POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var profile profileModel.ProfileModel
	err := ctrl.DB.Where("profile_email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&profile).Error
	if err != nil || !service.VerifyPassword(profile.ProfilePassword, req.Password) {
		// Same answer for unknown email and wrong password.
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !profile.ProfileIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
	}

	token, expiresAt, err := service.CreateAccessToken(profile)
	if err != nil {
		log.Printf("[ERROR] sign token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to log in")
	}

	c.Cookie(&fiber.Cookie{
		Name:     accessTokenCookie,
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return helper.JsonOK(c, "Login successful", dto.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User: dto.AuthUserDTO{
			ProfileID: profile.ProfileID,
			FirstName: profile.ProfileFirstName,
			LastName:  profile.ProfileLastName,
			Email:     profile.ProfileEmail,
			Role:      profile.ProfileRole,
		},
	})
}

// 🚪 POST /api/u/auth/logout — blacklists the presented token
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	raw := rawToken(c)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "No token presented")
	}

	if err := service.BlacklistToken(ctrl.DB, raw, service.TokenExpiry(raw)); err != nil {
		log.Printf("[ERROR] blacklist token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to log out")
	}

	c.Cookie(&fiber.Cookie{
		Name:     accessTokenCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return helper.JsonOK(c, "Logged out", nil)
}

func rawToken(c *fiber.Ctx) string {
	if h := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return c.Cookies(accessTokenCookie)
}
