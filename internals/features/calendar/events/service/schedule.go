// file: internals/features/calendar/events/service/schedule.go
package service

import (
	"errors"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// ErrEndBeforeStart is returned by ResolveRange when the recombined range is
// inverted and auto-adjust was not requested.
var ErrEndBeforeStart = errors.New("event end must not be before its start")

// DuplicateWindow bounds how close together two identical submissions by the
// same creator must land to count as one (a double-click or retried request,
// not intent).
const DuplicateWindow = 5 * time.Second

// DuplicateCutoff returns the oldest creation instant that still absorbs a
// new identical submission arriving at now.
func DuplicateCutoff(now time.Time) time.Time {
	return now.Add(-DuplicateWindow)
}

// IsDuplicateSubmission reports whether an event created at createdAt absorbs
// an identical submission arriving at now.
func IsDuplicateSubmission(createdAt, now time.Time) bool {
	return createdAt.After(DuplicateCutoff(now))
}

// CombineDateTime rebuilds an absolute timestamp from the separately edited
// date and time-of-day form fields. Times are interpreted as UTC.
func CombineDateTime(date, clock string) (time.Time, error) {
	return time.ParseInLocation(dateLayout+" "+clockLayout, date+" "+clock, time.UTC)
}

// AdjustEnd returns the auto-bumped end for a given start: one hour later,
// rolling into the next day when the time-of-day wraps past midnight.
func AdjustEnd(start time.Time) (date, clock string) {
	end := start.Add(time.Hour)
	return end.Format(dateLayout), end.Format(clockLayout)
}

// ResolveRange recombines the four form fields into a [start, end] pair.
// An inverted range either fails with ErrEndBeforeStart or, when autoAdjust
// is set, is repaired by pushing the end to start+1h. The returned adjusted
// flag reports whether the repair fired.
func ResolveRange(startDate, startClock, endDate, endClock string, autoAdjust bool) (start, end time.Time, adjusted bool, err error) {
	start, err = CombineDateTime(startDate, startClock)
	if err != nil {
		return time.Time{}, time.Time{}, false, err
	}
	end, err = CombineDateTime(endDate, endClock)
	if err != nil {
		return time.Time{}, time.Time{}, false, err
	}
	if end.Before(start) {
		if !autoAdjust {
			return time.Time{}, time.Time{}, false, ErrEndBeforeStart
		}
		d, c := AdjustEnd(start)
		end, _ = CombineDateTime(d, c)
		adjusted = true
	}
	return start, end, adjusted, nil
}
