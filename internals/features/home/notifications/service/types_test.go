package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityEventRendersContent(t *testing.T) {
	link := "/tasks"
	sourceID := uuid.New()

	ev, err := EntityEvent("task", "created", "Ana Pratama", "Draft budget", &link, &sourceID)
	require.NoError(t, err)
	assert.Equal(t, TypeTaskCreated, ev.Type)
	assert.Equal(t, "Ana Pratama created a new task: Draft budget", ev.Content)
	assert.Equal(t, &link, ev.Link)
	assert.Equal(t, &sourceID, ev.SourceID)
}

func TestEntityEventCoversAllEntityActions(t *testing.T) {
	cases := map[string][]string{
		"task":       {"created", "updated", "completed", "deleted"},
		"meeting":    {"created", "updated", "deleted"},
		"budget":     {"created", "updated", "deleted"},
		"risk":       {"created", "updated", "deleted"},
		"repository": {"created", "updated", "deleted"},
		"contact":    {"created", "updated", "deleted"},
	}
	for entity, actions := range cases {
		for _, action := range actions {
			ev, err := EntityEvent(entity, action, "Someone", "Thing", nil, nil)
			require.NoErrorf(t, err, "entity=%s action=%s", entity, action)
			assert.NotEmpty(t, ev.Type)
			assert.Contains(t, ev.Content, "Someone")
			assert.Contains(t, ev.Content, "Thing")
		}
	}
}

func TestEntityEventRejectsUnknowns(t *testing.T) {
	_, err := EntityEvent("invoice", "created", "Someone", "Thing", nil, nil)
	assert.Error(t, err)

	_, err = EntityEvent("task", "archived", "Someone", "Thing", nil, nil)
	assert.Error(t, err)
}
