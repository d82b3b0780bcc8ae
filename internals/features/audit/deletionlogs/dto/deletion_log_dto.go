package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"zarfuel_backend/internals/features/audit/deletionlogs/model"
)

// ================== RESPONSE ==================
type DeletionLogDTO struct {
	DeletionLogID            uuid.UUID       `json:"deletion_log_id"`
	DeletionLogTableName     string          `json:"deletion_log_table_name"`
	DeletionLogRecordID      uuid.UUID       `json:"deletion_log_record_id"`
	DeletionLogDeletedBy     uuid.UUID       `json:"deletion_log_deleted_by"`
	DeletionLogDeletedByName string          `json:"deletion_log_deleted_by_name"`
	DeletionLogDetails       json.RawMessage `json:"deletion_log_details"`
	DeletionLogCreatedAt     time.Time       `json:"deletion_log_created_at"`
}

// ================ CONVERSION =================
func ToDeletionLogDTO(m model.DeletionLogModel) DeletionLogDTO {
	return DeletionLogDTO{
		DeletionLogID:            m.DeletionLogID,
		DeletionLogTableName:     m.DeletionLogTableName,
		DeletionLogRecordID:      m.DeletionLogRecordID,
		DeletionLogDeletedBy:     m.DeletionLogDeletedBy,
		DeletionLogDeletedByName: m.DeletionLogDeletedByName,
		DeletionLogDetails:       json.RawMessage(m.DeletionLogDetails),
		DeletionLogCreatedAt:     m.DeletionLogCreatedAt,
	}
}

func ToDeletionLogDTOList(models []model.DeletionLogModel) []DeletionLogDTO {
	out := make([]DeletionLogDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToDeletionLogDTO(m))
	}
	return out
}
