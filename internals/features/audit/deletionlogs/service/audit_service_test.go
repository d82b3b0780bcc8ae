package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntryCarriesFullSnapshot(t *testing.T) {
	recordID := uuid.New()
	deletedBy := uuid.New()
	snapshot := map[string]any{
		"task_id":     recordID.String(),
		"task_title":  "Pour foundation",
		"task_status": "in_progress",
	}

	entry, err := NewEntry("tasks", recordID, deletedBy, "Dana", snapshot)
	require.NoError(t, err)

	assert.Equal(t, "tasks", entry.DeletionLogTableName)
	assert.Equal(t, recordID, entry.DeletionLogRecordID)
	assert.Equal(t, deletedBy, entry.DeletionLogDeletedBy)
	assert.Equal(t, "Dana", entry.DeletionLogDeletedByName)
	assert.JSONEq(t,
		`{"task_id":"`+recordID.String()+`","task_title":"Pour foundation","task_status":"in_progress"}`,
		string(entry.DeletionLogDetails))
}

func TestNewEntryRejectsUnserializableSnapshot(t *testing.T) {
	_, err := NewEntry("tasks", uuid.New(), uuid.New(), "Dana", make(chan int))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "deletion snapshot")
}
