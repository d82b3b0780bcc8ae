package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditService "zarfuel_backend/internals/features/audit/deletionlogs/service"
	"zarfuel_backend/internals/constants"
	notifService "zarfuel_backend/internals/features/home/notifications/service"
	"zarfuel_backend/internals/features/project/contacts/dto"
	"zarfuel_backend/internals/features/project/contacts/model"
	profileModel "zarfuel_backend/internals/features/users/profiles/model"
	helper "zarfuel_backend/internals/helpers"
	"zarfuel_backend/internals/realtime"
)

var validateContact = validator.New()

const contactsLink = "/contacts"

type ContactController struct {
	DB     *gorm.DB
	Fanout *notifService.FanoutService
	Hub    *realtime.Hub
}

func NewContactController(db *gorm.DB, fanout *notifService.FanoutService, hub *realtime.Hub) *ContactController {
	return &ContactController{DB: db, Fanout: fanout, Hub: hub}
}

// =====================================================
// 📄 GET /api/u/contacts — visibility-scoped, paged
// Admins see everything; everyone else sees public contacts plus
// company_specific ones matching their own company.
// =====================================================
func (ctrl *ContactController) GetAllContacts(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 25, 100)

	q := ctrl.DB.Model(&model.ContactModel{})
	if !constants.IsAdmin(helper.GetUserRole(c)) {
		company := ctrl.actorCompany(actorID)
		if company != "" {
			q = q.Where(
				"contact_visibility = ? OR (contact_visibility = ? AND contact_company = ?)",
				model.VisibilityPublic, model.VisibilityCompanySpecific, company,
			)
		} else {
			q = q.Where("contact_visibility = ?", model.VisibilityPublic)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count contacts")
	}

	var contacts []model.ContactModel
	if err := q.Order("contact_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&contacts).Error; err != nil {
		log.Printf("[ERROR] fetch contacts: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load contacts")
	}

	return helper.JsonList(c, "Contacts", dto.ToContactDTOList(contacts),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ➕ POST /api/u/contacts
func (ctrl *ContactController) CreateContact(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateContact.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	visibility := req.ContactVisibility
	if visibility == "" {
		visibility = model.VisibilityPublic
	}

	contact := model.ContactModel{
		ContactName:       req.ContactName,
		ContactCompany:    req.ContactCompany,
		ContactPosition:   req.ContactPosition,
		ContactEmail:      req.ContactEmail,
		ContactPhone:      req.ContactPhone,
		ContactNotes:      req.ContactNotes,
		ContactVisibility: visibility,
		ContactCreatedBy:  actorID,
	}
	if err := ctrl.DB.Create(&contact).Error; err != nil {
		log.Printf("[ERROR] create contact: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create contact")
	}

	result := dto.ToContactDTO(contact)
	ctrl.Hub.Publish(contact.TableName(), realtime.ActionInsert, result)

	actorName := ctrl.Fanout.ResolveDisplayName(helper.GetUserDisplayName(c), actorID)
	link := contactsLink
	sourceID := contact.ContactID
	ev, _ := notifService.EntityEvent("contact", "created", actorName, contact.ContactName, &link, &sourceID)
	go ctrl.Fanout.NotifyRoles(constants.SpecialAndAbove, actorID, ev)

	return helper.JsonCreated(c, "Contact created", result)
}

// ✏️ PUT /api/u/contacts/:id
func (ctrl *ContactController) UpdateContact(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	contactID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid contact id")
	}

	var req dto.UpdateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateContact.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var contact model.ContactModel
	if err := ctrl.DB.Where("contact_id = ?", contactID).First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Contact not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load contact")
	}

	if err := ctrl.DB.Model(&contact).Updates(map[string]any{
		"contact_name":       req.ContactName,
		"contact_company":    req.ContactCompany,
		"contact_position":   req.ContactPosition,
		"contact_email":      req.ContactEmail,
		"contact_phone":      req.ContactPhone,
		"contact_notes":      req.ContactNotes,
		"contact_visibility": req.ContactVisibility,
	}).Error; err != nil {
		log.Printf("[ERROR] update contact: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update contact")
	}
	contact.ContactName = req.ContactName
	contact.ContactCompany = req.ContactCompany
	contact.ContactPosition = req.ContactPosition
	contact.ContactEmail = req.ContactEmail
	contact.ContactPhone = req.ContactPhone
	contact.ContactNotes = req.ContactNotes
	contact.ContactVisibility = req.ContactVisibility

	result := dto.ToContactDTO(contact)
	ctrl.Hub.Publish(contact.TableName(), realtime.ActionUpdate, result)

	actorName := ctrl.Fanout.ResolveDisplayName(helper.GetUserDisplayName(c), actorID)
	link := contactsLink
	sourceID := contact.ContactID
	ev, _ := notifService.EntityEvent("contact", "updated", actorName, contact.ContactName, &link, &sourceID)
	go ctrl.Fanout.NotifyRoles(constants.SpecialAndAbove, actorID, ev)

	return helper.JsonUpdated(c, "Contact updated", result)
}

// 🗑️ DELETE /api/u/contacts/:id?confirm=true — audit-logged
func (ctrl *ContactController) DeleteContact(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	contactID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid contact id")
	}
	if c.Query("confirm") != "true" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Deletion must be confirmed with ?confirm=true")
	}

	var contact model.ContactModel
	if err := ctrl.DB.Where("contact_id = ?", contactID).First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Contact not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load contact")
	}

	actorName := ctrl.Fanout.ResolveDisplayName(helper.GetUserDisplayName(c), actorID)

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := auditService.LogDeletion(tx, contact.TableName(), contact.ContactID, actorID, actorName, contact); err != nil {
			return err
		}
		return tx.Delete(&contact).Error
	}); err != nil {
		log.Printf("[ERROR] delete contact: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete contact")
	}

	ctrl.Hub.Publish(contact.TableName(), realtime.ActionDelete, fiber.Map{"contact_id": contact.ContactID})

	link := contactsLink
	ev, _ := notifService.EntityEvent("contact", "deleted", actorName, contact.ContactName, &link, nil)
	go ctrl.Fanout.NotifyRoles(constants.SpecialAndAbove, actorID, ev)

	return helper.JsonDeleted(c, "Contact deleted", fiber.Map{"contact_id": contact.ContactID})
}

func (ctrl *ContactController) actorCompany(actorID uuid.UUID) string {
	var profile profileModel.ProfileModel
	if err := ctrl.DB.Select("profile_company").
		Where("profile_id = ?", actorID).
		First(&profile).Error; err != nil || profile.ProfileCompany == nil {
		return ""
	}
	return *profile.ProfileCompany
}
