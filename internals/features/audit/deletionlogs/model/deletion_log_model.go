package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DeletionLogModel is the append-only audit trail. Rows are written in the
// same transaction as the delete they describe and are never mutated.
type DeletionLogModel struct {
	DeletionLogID            uuid.UUID      `gorm:"column:deletion_log_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"deletion_log_id"`
	DeletionLogTableName     string         `gorm:"column:deletion_log_table_name;type:varchar(100);not null" json:"deletion_log_table_name"`
	DeletionLogRecordID      uuid.UUID      `gorm:"column:deletion_log_record_id;type:uuid;not null" json:"deletion_log_record_id"`
	DeletionLogDeletedBy     uuid.UUID      `gorm:"column:deletion_log_deleted_by;type:uuid;not null" json:"deletion_log_deleted_by"`
	DeletionLogDeletedByName string         `gorm:"column:deletion_log_deleted_by_name;type:varchar(255)" json:"deletion_log_deleted_by_name"`
	DeletionLogDetails       datatypes.JSON `gorm:"column:deletion_log_details;type:jsonb" json:"deletion_log_details"`
	DeletionLogCreatedAt     time.Time      `gorm:"column:deletion_log_created_at;autoCreateTime" json:"deletion_log_created_at"`
}

func (DeletionLogModel) TableName() string {
	return "deletion_logs"
}
