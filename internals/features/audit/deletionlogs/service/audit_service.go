package service

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"zarfuel_backend/internals/features/audit/deletionlogs/model"
)

// NewEntry builds the audit row for a record that is about to be deleted,
// with the full record serialized into the details column.
func NewEntry(tableName string, recordID, deletedBy uuid.UUID, deletedByName string, snapshot any) (model.DeletionLogModel, error) {
	details, err := json.Marshal(snapshot)
	if err != nil {
		return model.DeletionLogModel{}, fmt.Errorf("marshal deletion snapshot: %w", err)
	}
	return model.DeletionLogModel{
		DeletionLogTableName:     tableName,
		DeletionLogRecordID:      recordID,
		DeletionLogDeletedBy:     deletedBy,
		DeletionLogDeletedByName: deletedByName,
		DeletionLogDetails:       datatypes.JSON(details),
	}, nil
}

// LogDeletion writes the audit snapshot for a record that is about to be
// deleted. Call it inside the same transaction as the delete so the log row
// and the removal commit (or roll back) together.
func LogDeletion(tx *gorm.DB, tableName string, recordID, deletedBy uuid.UUID, deletedByName string, snapshot any) error {
	entry, err := NewEntry(tableName, recordID, deletedBy, deletedByName, snapshot)
	if err != nil {
		return err
	}
	return tx.Create(&entry).Error
}
