package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"zarfuel_backend/internals/features/audit/deletionlogs/dto"
	"zarfuel_backend/internals/features/audit/deletionlogs/model"
	helper "zarfuel_backend/internals/helpers"
)

type DeletionLogController struct {
	DB *gorm.DB
}

func NewDeletionLogController(db *gorm.DB) *DeletionLogController {
	return &DeletionLogController{DB: db}
}

// 🟢 GET /api/a/deletion-logs (superadmin) — newest first, paginated
func (ctrl *DeletionLogController) GetAllDeletionLogs(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.DeletionLogModel{})
	if table := c.Query("table"); table != "" {
		q = q.Where("deletion_log_table_name = ?", table)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count deletion logs: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count deletion logs")
	}

	var logs []model.DeletionLogModel
	if err := q.
		Order("deletion_log_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&logs).Error; err != nil {
		log.Printf("[ERROR] fetch deletion logs: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load deletion logs")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Deletion logs", dto.ToDeletionLogDTOList(logs), pagination)
}
