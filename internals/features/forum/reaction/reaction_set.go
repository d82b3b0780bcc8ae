// file: internals/features/forum/reaction/reaction_set.go
package reaction

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Reaction is one user's like or dislike on a post or comment.
// Key names match the rows written by the legacy frontend.
type Reaction struct {
	UserID   uuid.UUID `json:"userId"`
	IsLike   bool      `json:"isLike"`
	UserName string    `json:"userName"`
}

// Set is the serialized reaction collection stored in a jsonb likes column.
// Invariant: at most one entry per user.
type Set []Reaction

// Status of one user against a set.
type Status string

const (
	StatusLike    Status = "like"
	StatusDislike Status = "dislike"
	StatusNone    Status = "none"
)

// Outcome of applying a reaction.
type Outcome int

const (
	OutcomeAdded Outcome = iota
	OutcomeSwitched
	OutcomeRemoved
)

// Scan normalizes the two encodings found in legacy rows: a jsonb array and
// a double-encoded JSON string. Everything unparseable becomes an empty set
// rather than an error, matching the tolerant legacy reads.
func (s *Set) Scan(value any) error {
	*s = Set{}
	if value == nil {
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("reaction.Set: unsupported source type %T", value)
	}
	if len(raw) == 0 {
		return nil
	}

	// Double-encoded legacy rows: jsonb holding the string `"[...]"`.
	var inner string
	if err := json.Unmarshal(raw, &inner); err == nil {
		raw = []byte(inner)
	}

	var parsed []Reaction
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil
	}
	*s = parsed
	return nil
}

// Value always writes the canonical array encoding.
func (s Set) Value() (driver.Value, error) {
	if s == nil {
		s = Set{}
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (Set) GormDataType() string {
	return "jsonb"
}

var ErrNilUser = errors.New("reaction: user id is required")

// Apply toggles userID's reaction and returns the updated set:
//   - same reaction present  → removed (idempotent toggle-off)
//   - opposite present       → replaced in place
//   - absent                 → appended
func (s Set) Apply(userID uuid.UUID, isLike bool, userName string) (Set, Outcome, error) {
	if userID == uuid.Nil {
		return s, OutcomeRemoved, ErrNilUser
	}
	for i, r := range s {
		if r.UserID != userID {
			continue
		}
		if r.IsLike == isLike {
			out := make(Set, 0, len(s)-1)
			out = append(out, s[:i]...)
			out = append(out, s[i+1:]...)
			return out, OutcomeRemoved, nil
		}
		out := make(Set, len(s))
		copy(out, s)
		out[i] = Reaction{UserID: userID, IsLike: isLike, UserName: userName}
		return out, OutcomeSwitched, nil
	}
	out := make(Set, 0, len(s)+1)
	out = append(out, s...)
	out = append(out, Reaction{UserID: userID, IsLike: isLike, UserName: userName})
	return out, OutcomeAdded, nil
}

func (s Set) Count(isLike bool) int {
	n := 0
	for _, r := range s {
		if r.IsLike == isLike {
			n++
		}
	}
	return n
}

// Score is likes minus dislikes; the "popular" sort key.
func (s Set) Score() int {
	return s.Count(true) - s.Count(false)
}

func (s Set) StatusFor(userID uuid.UUID) Status {
	for _, r := range s {
		if r.UserID == userID {
			if r.IsLike {
				return StatusLike
			}
			return StatusDislike
		}
	}
	return StatusNone
}

func (s Set) DisplayNames(isLike bool) []string {
	names := make([]string, 0)
	for _, r := range s {
		if r.IsLike != isLike {
			continue
		}
		name := r.UserName
		if name == "" {
			name = "Anonymous"
		}
		names = append(names, name)
	}
	return names
}
