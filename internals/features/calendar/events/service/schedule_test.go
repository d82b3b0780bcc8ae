package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineDateTime(t *testing.T) {
	got, err := CombineDateTime("2025-06-10", "14:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC), got)

	_, err = CombineDateTime("2025-13-01", "14:30")
	assert.Error(t, err)
	_, err = CombineDateTime("2025-06-10", "25:00")
	assert.Error(t, err)
}

func TestAdjustEndBumpsOneHour(t *testing.T) {
	start, err := CombineDateTime("2025-06-10", "14:00")
	require.NoError(t, err)

	date, clock := AdjustEnd(start)
	assert.Equal(t, "2025-06-10", date)
	assert.Equal(t, "15:00", clock)
}

func TestAdjustEndWrapsPastMidnight(t *testing.T) {
	start, err := CombineDateTime("2025-06-10", "23:30")
	require.NoError(t, err)

	date, clock := AdjustEnd(start)
	assert.Equal(t, "2025-06-11", date)
	assert.Equal(t, "00:30", clock)
}

func TestResolveRangeAcceptsValidRange(t *testing.T) {
	start, end, adjusted, err := ResolveRange("2025-06-10", "14:00", "2025-06-10", "16:00", false)
	require.NoError(t, err)
	assert.False(t, adjusted)
	assert.Equal(t, 2*time.Hour, end.Sub(start))
}

func TestResolveRangeRejectsInvertedRange(t *testing.T) {
	_, _, _, err := ResolveRange("2025-06-10", "14:00", "2025-06-10", "13:00", false)
	assert.ErrorIs(t, err, ErrEndBeforeStart)
}

func TestResolveRangeAutoAdjustRepairsInvertedRange(t *testing.T) {
	start, end, adjusted, err := ResolveRange("2025-06-10", "14:00", "2025-06-10", "13:00", true)
	require.NoError(t, err)
	assert.True(t, adjusted)
	assert.Equal(t, time.Hour, end.Sub(start))
	assert.Equal(t, "15:00", end.Format("15:04"))
}

func TestResolveRangeAutoAdjustCrossesMidnight(t *testing.T) {
	start, end, adjusted, err := ResolveRange("2025-06-10", "23:30", "2025-06-10", "22:00", true)
	require.NoError(t, err)
	assert.True(t, adjusted)
	assert.Equal(t, time.Hour, end.Sub(start))
	assert.Equal(t, "2025-06-11", end.Format("2006-01-02"))
}

func TestResolveRangeEqualEndpointsAreValid(t *testing.T) {
	start, end, adjusted, err := ResolveRange("2025-06-10", "14:00", "2025-06-10", "14:00", false)
	require.NoError(t, err)
	assert.False(t, adjusted)
	assert.True(t, end.Equal(start))
}

func TestIsDuplicateSubmissionInsideWindow(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	assert.True(t, IsDuplicateSubmission(now.Add(-time.Second), now))
	assert.True(t, IsDuplicateSubmission(now.Add(-DuplicateWindow+time.Millisecond), now))
}

func TestIsDuplicateSubmissionOutsideWindow(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	assert.False(t, IsDuplicateSubmission(now.Add(-DuplicateWindow), now))
	assert.False(t, IsDuplicateSubmission(now.Add(-time.Minute), now))
}

func TestDuplicateCutoffTrailsNowByWindow(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	assert.Equal(t, DuplicateWindow, now.Sub(DuplicateCutoff(now)))
}
