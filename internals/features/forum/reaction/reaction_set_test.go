package reaction

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyTogglesSameReactionOff(t *testing.T) {
	user := uuid.New()

	set, out, err := Set{}.Apply(user, true, "Ana")
	require.NoError(t, err)
	assert.Equal(t, OutcomeAdded, out)
	assert.Len(t, set, 1)

	set, out, err = set.Apply(user, true, "Ana")
	require.NoError(t, err)
	assert.Equal(t, OutcomeRemoved, out)
	assert.Empty(t, set)
}

func TestApplySwitchesOppositeInPlace(t *testing.T) {
	user := uuid.New()
	other := uuid.New()

	set, _, err := Set{}.Apply(other, true, "Ben")
	require.NoError(t, err)
	set, _, err = set.Apply(user, true, "Ana")
	require.NoError(t, err)

	set, out, err := set.Apply(user, false, "Ana")
	require.NoError(t, err)
	assert.Equal(t, OutcomeSwitched, out)
	require.Len(t, set, 2)
	// Position is preserved, only the direction flips.
	assert.Equal(t, other, set[0].UserID)
	assert.Equal(t, user, set[1].UserID)
	assert.False(t, set[1].IsLike)
}

func TestApplyKeepsAtMostOneEntryPerUser(t *testing.T) {
	user := uuid.New()
	set := Set{}

	var err error
	for _, like := range []bool{true, false, true, true, false} {
		var out Outcome
		set, out, err = set.Apply(user, like, "Ana")
		require.NoError(t, err)
		_ = out

		count := 0
		for _, r := range set {
			if r.UserID == user {
				count++
			}
		}
		assert.LessOrEqual(t, count, 1)
	}
}

func TestApplyRejectsNilUser(t *testing.T) {
	_, _, err := Set{}.Apply(uuid.Nil, true, "x")
	assert.ErrorIs(t, err, ErrNilUser)
}

func TestScanCanonicalArray(t *testing.T) {
	user := uuid.New()
	var set Set
	require.NoError(t, set.Scan([]byte(`[{"userId":"`+user.String()+`","isLike":true,"userName":"Ana"}]`)))
	require.Len(t, set, 1)
	assert.Equal(t, user, set[0].UserID)
	assert.True(t, set[0].IsLike)
}

func TestScanDoubleEncodedString(t *testing.T) {
	user := uuid.New()
	// Legacy rows sometimes hold the array as a JSON string inside jsonb.
	payload := `"[{\"userId\":\"` + user.String() + `\",\"isLike\":false,\"userName\":\"Ben\"}]"`

	var set Set
	require.NoError(t, set.Scan([]byte(payload)))
	require.Len(t, set, 1)
	assert.Equal(t, user, set[0].UserID)
	assert.False(t, set[0].IsLike)
}

func TestScanToleratesGarbageAndNull(t *testing.T) {
	var set Set
	require.NoError(t, set.Scan([]byte(`{not json`)))
	assert.Empty(t, set)

	require.NoError(t, set.Scan(nil))
	assert.Empty(t, set)

	require.NoError(t, set.Scan([]byte{}))
	assert.Empty(t, set)
}

func TestValueWritesCanonicalArray(t *testing.T) {
	v, err := Set(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	user := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	v, err = Set{{UserID: user, IsLike: true, UserName: "Ana"}}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `[{"userId":"11111111-1111-1111-1111-111111111111","isLike":true,"userName":"Ana"}]`, v.(string))
}

func TestScoreAndCounts(t *testing.T) {
	set := Set{
		{UserID: uuid.New(), IsLike: true, UserName: "a"},
		{UserID: uuid.New(), IsLike: true, UserName: "b"},
		{UserID: uuid.New(), IsLike: false, UserName: "c"},
	}
	assert.Equal(t, 2, set.Count(true))
	assert.Equal(t, 1, set.Count(false))
	assert.Equal(t, 1, set.Score())
}

func TestStatusFor(t *testing.T) {
	liker := uuid.New()
	disliker := uuid.New()
	set := Set{
		{UserID: liker, IsLike: true},
		{UserID: disliker, IsLike: false},
	}
	assert.Equal(t, StatusLike, set.StatusFor(liker))
	assert.Equal(t, StatusDislike, set.StatusFor(disliker))
	assert.Equal(t, StatusNone, set.StatusFor(uuid.New()))
}

func TestDisplayNamesFallsBackToAnonymous(t *testing.T) {
	set := Set{
		{UserID: uuid.New(), IsLike: true, UserName: "Ana"},
		{UserID: uuid.New(), IsLike: true, UserName: ""},
		{UserID: uuid.New(), IsLike: false, UserName: "Ben"},
	}
	assert.Equal(t, []string{"Ana", "Anonymous"}, set.DisplayNames(true))
	assert.Equal(t, []string{"Ben"}, set.DisplayNames(false))
}
