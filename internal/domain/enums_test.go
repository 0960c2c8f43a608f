package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDifficulty_LevelBudgetIsPerLevelTotal(t *testing.T) {
	assert.Equal(t, 15, DifficultyEasy.LevelBudget())
	assert.Equal(t, 10, DifficultyNormal.LevelBudget())
	assert.Equal(t, 7, DifficultyHard.LevelBudget())
	assert.Equal(t, 0, Difficulty("nightmare").LevelBudget())
}

func TestParseDifficulty_CaseInsensitive(t *testing.T) {
	cases := map[string]Difficulty{
		"easy":   DifficultyEasy,
		"Normal": DifficultyNormal,
		" HARD ": DifficultyHard,
		"eAsY":   DifficultyEasy,
	}
	for in, want := range cases {
		got, err := ParseDifficulty(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got)
	}
}

func TestParseDifficulty_Unknown(t *testing.T) {
	_, err := ParseDifficulty("insane")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insane")
}

func TestDifficulty_UnmarshalText(t *testing.T) {
	var d Difficulty
	require.NoError(t, d.UnmarshalText([]byte("Hard")))
	assert.Equal(t, DifficultyHard, d)

	assert.Error(t, d.UnmarshalText([]byte("")))
	assert.Equal(t, DifficultyHard, d, "failed unmarshal must not clobber the value")
}

func TestDifficulty_Label(t *testing.T) {
	assert.Equal(t, "Easy", DifficultyEasy.Label())
	assert.Equal(t, "Normal", DifficultyNormal.Label())
	assert.Equal(t, "", Difficulty("").Label())
}

func TestParseCategory(t *testing.T) {
	for _, in := range []string{"old", "OT", " Old "} {
		c, err := ParseCategory(in)
		require.NoError(t, err)
		assert.Equal(t, CategoryOld, c)
	}
	for _, in := range []string{"new", "nt", "NEW"} {
		c, err := ParseCategory(in)
		require.NoError(t, err)
		assert.Equal(t, CategoryNew, c)
	}
	c, err := ParseCategory("apocrypha")
	require.Error(t, err)
	assert.Equal(t, CategoryUnknown, c)
}

func TestCategory_Labels(t *testing.T) {
	assert.Equal(t, "Old Testament", CategoryOld.Label())
	assert.Equal(t, "New Testament", CategoryNew.Label())
	assert.Equal(t, "unknown", CategoryUnknown.String())
}

func TestRoundState_Terminal(t *testing.T) {
	assert.False(t, RoundIdle.Terminal())
	assert.False(t, RoundActive.Terminal())
	assert.True(t, RoundComplete.Terminal())
	assert.True(t, RoundFailed.Terminal())
	assert.True(t, RoundTimedOut.Terminal())
}

func TestPhase_InSession(t *testing.T) {
	assert.False(t, PhaseIdle.InSession())
	assert.True(t, PhaseReady.InSession())
	assert.True(t, PhasePlaying.InSession())
	assert.True(t, PhaseLevelComplete.InSession())
	assert.False(t, PhaseGameOver.InSession())
}

func TestSummary_NewRecord(t *testing.T) {
	assert.True(t, Summary{Score: 40, Best: 40}.NewRecord())
	assert.False(t, Summary{Score: 30, Best: 40}.NewRecord())
	assert.False(t, Summary{Score: 0, Best: 0}.NewRecord())
}
