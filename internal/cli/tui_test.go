package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/testament/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startFromMenu(t *testing.T) (*TestDriver, *App) {
	t.Helper()
	app := testApp(t)
	d := NewTestDriver(t, app)
	d.Press("s")
	require.Equal(t, ViewPlay, d.ActiveViewID())
	require.Equal(t, domain.PhasePlaying, app.Game.Phase())
	return d, app
}

func TestTUI_MenuRenders(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	assert.Equal(t, ViewMenu, d.ActiveViewID())
	screen := d.Screen()
	assert.Contains(t, screen, "OLD OR NEW?")
	assert.Contains(t, screen, "Start")
	assert.Contains(t, screen, "How to Play")
	assert.Contains(t, screen, "Normal (10s per level)")
	assert.Contains(t, screen, "Best 0")
}

func TestTUI_MenuCursorSelectsStart(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.Press("down", "up", "enter")
	assert.Equal(t, ViewPlay, d.ActiveViewID())
	assert.Equal(t, domain.PhasePlaying, app.Game.Phase())
}

func TestTUI_StartShowsFirstItem(t *testing.T) {
	d, app := startFromMenu(t)

	f := app.Frames.Last()
	assert.Equal(t, 1, f.Level)
	assert.Equal(t, 10, f.Remaining)
	screen := d.Screen()
	assert.Contains(t, screen, "Level 1/50")
	assert.Contains(t, screen, f.Item)
	assert.Contains(t, screen, "Play")
	assert.Positive(t, app.Frames.pushCount())
}

func TestTUI_CorrectAnswerScores(t *testing.T) {
	d, app := startFromMenu(t)

	d.AnswerCorrectly()

	assert.Equal(t, 2, app.Frames.Last().Score)
	assert.Equal(t, 1, app.Frames.Last().Selections)
	screen := d.Screen()
	assert.Contains(t, screen, "Score 2")
	assert.Contains(t, screen, "Correct")
}

func TestTUI_ArrowKeysAnswer(t *testing.T) {
	d, app := startFromMenu(t)

	item := app.Frames.Last().Item
	if app.Catalog.Classify(item) == domain.CategoryOld {
		d.Press("left")
	} else {
		d.Press("right")
	}
	assert.Equal(t, 2, app.Frames.Last().Score)
}

func TestTUI_TickCountsDown(t *testing.T) {
	d, app := startFromMenu(t)

	d.Tick()
	assert.Equal(t, 9, app.Frames.Last().Remaining)

	d.AnswerCorrectly()
	assert.Equal(t, 9, app.Frames.Last().Remaining, "answers keep the level timer running")
}

func TestTUI_StaleTickIgnored(t *testing.T) {
	d, app := startFromMenu(t)

	stale := app.Game.Epoch() - 1
	d.Send(countdownTickMsg{epoch: stale})
	assert.Equal(t, 10, app.Frames.Last().Remaining)
}

func TestTUI_TimeoutEndsGame(t *testing.T) {
	d, app := startFromMenu(t)
	d.AnswerCorrectly()

	for i := 0; i < 10; i++ {
		d.Tick()
	}

	assert.Equal(t, domain.PhaseGameOver, app.Game.Phase())
	screen := d.Screen()
	assert.Contains(t, screen, "Time's up")
	assert.Contains(t, screen, "GAME OVER")
	assert.Equal(t, 2, app.Game.Best(context.Background()))
}

func TestTUI_WrongAnswerEndsGame(t *testing.T) {
	d, app := startFromMenu(t)
	d.AnswerCorrectly()
	d.AnswerCorrectly()

	d.AnswerWrongly()

	assert.Equal(t, domain.PhaseGameOver, app.Game.Phase())
	screen := d.Screen()
	assert.Contains(t, screen, "Wrong answer")
	assert.Contains(t, screen, "GAME OVER")
	assert.Contains(t, screen, "Final score: 4")
	assert.Contains(t, screen, "New best score!")
	assert.Equal(t, 4, app.Game.Best(context.Background()))
}

func TestTUI_LevelCompleteAndAdvance(t *testing.T) {
	d, app := startFromMenu(t)
	d.Tick()

	d.ClearLevel()

	require.Equal(t, domain.PhaseLevelComplete, app.Game.Phase())
	screen := d.Screen()
	assert.Contains(t, screen, "WELL DONE!")
	assert.Contains(t, screen, "Level 1 complete with 9s to spare.")

	// A tick from the finished level must not touch the next one.
	oldEpoch := app.Game.Epoch()
	d.Press("enter")
	require.Equal(t, domain.PhasePlaying, app.Game.Phase())
	d.Send(countdownTickMsg{epoch: oldEpoch})

	f := app.Frames.Last()
	assert.Equal(t, 2, f.Level)
	assert.Equal(t, 10, f.Remaining)
	assert.Equal(t, 0, f.Selections)
	assert.Equal(t, 24, f.Score)
	assert.Contains(t, d.Screen(), "Level 2/50")
}

func TestTUI_RestartAfterGameOver(t *testing.T) {
	d, app := startFromMenu(t)
	d.AnswerCorrectly()
	d.AnswerWrongly()
	require.Equal(t, domain.PhaseGameOver, app.Game.Phase())

	d.Press("r")

	f := app.Frames.Last()
	assert.Equal(t, domain.PhasePlaying, f.Phase)
	assert.Equal(t, 1, f.Level)
	assert.Equal(t, 0, f.Score)
	assert.NotContains(t, d.Screen(), "GAME OVER")
}

func TestTUI_EscLeavesGameAndRecordsScore(t *testing.T) {
	d, app := startFromMenu(t)
	d.AnswerCorrectly()
	d.AnswerCorrectly()

	d.Press("esc")

	assert.Equal(t, ViewMenu, d.ActiveViewID())
	assert.Equal(t, 1, d.StackDepth())
	assert.Equal(t, domain.PhaseGameOver, app.Game.Phase())
	assert.Equal(t, 4, app.Game.Best(context.Background()))
	assert.Contains(t, d.Screen(), "Best 4")
}

func TestTUI_QuitDuringGameRecordsScore(t *testing.T) {
	d, app := startFromMenu(t)
	d.AnswerCorrectly()

	d.Press("q")

	assert.True(t, d.Quitting)
	assert.Equal(t, domain.PhaseGameOver, app.Game.Phase())
	assert.Equal(t, 2, app.Game.Best(context.Background()))
	assert.Empty(t, d.View())
}

func TestTUI_MenuQuitAction(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Press("x")
	assert.True(t, d.Quitting)
}

func TestTUI_HowToPlay(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Press("?")
	assert.Equal(t, ViewHowTo, d.ActiveViewID())
	screen := d.Screen()
	assert.Contains(t, screen, "HOW TO PLAY")
	assert.Contains(t, screen, "esc: back")

	d.Press("esc")
	assert.Equal(t, ViewMenu, d.ActiveViewID())
}

func TestTUI_HighScoreView(t *testing.T) {
	app := testApp(t)
	seedBest(t, app, 5)
	d := NewTestDriver(t, app)

	d.Press("h")
	assert.Equal(t, ViewScores, d.ActiveViewID())
	assert.Contains(t, d.Screen(), "10")
}

func TestTUI_ClearHighScoreConfirmed(t *testing.T) {
	app := testApp(t)
	seedBest(t, app, 5)
	d := NewTestDriver(t, app)

	d.Press("h", "c")
	require.Equal(t, ViewForm, d.ActiveViewID())
	assert.Contains(t, d.Screen(), "Clear the best score?")

	d.Press("y")

	assert.Equal(t, ViewScores, d.ActiveViewID())
	assert.Equal(t, 0, app.Game.Best(context.Background()))
	assert.Contains(t, d.Notice(), "High scores cleared!")
}

func TestTUI_ClearHighScoreCancelled(t *testing.T) {
	app := testApp(t)
	seedBest(t, app, 5)
	d := NewTestDriver(t, app)

	d.Press("h", "c")
	require.Equal(t, ViewForm, d.ActiveViewID())

	d.Press("esc")

	assert.Equal(t, ViewScores, d.ActiveViewID())
	assert.Equal(t, 10, app.Game.Best(context.Background()))
	assert.Contains(t, d.Notice(), "Cancelled.")
}

func TestTUI_SettingsKeepDefaults(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.Press("e")
	require.Equal(t, ViewForm, d.ActiveViewID())
	assert.Contains(t, d.Screen(), "Difficulty")

	d.Press("enter", "enter")

	assert.Equal(t, ViewMenu, d.ActiveViewID())
	assert.Contains(t, d.Notice(), "Settings saved.")
	assert.Equal(t, domain.DifficultyNormal, app.Game.Difficulty())
	assert.True(t, app.Game.Music())
}

func TestTUI_SettingsChangeDifficulty(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.Press("e", "down", "enter", "enter")

	assert.Equal(t, ViewMenu, d.ActiveViewID())
	assert.Equal(t, domain.DifficultyHard, app.Game.Difficulty())
	assert.Contains(t, d.Screen(), "Hard (7s per level)")
}

func TestTUI_SettingsDuringMenuApplyToNextGame(t *testing.T) {
	app := testApp(t)
	require.NoError(t, app.Game.SetDifficulty(domain.DifficultyEasy))
	d := NewTestDriver(t, app)

	d.Press("s")

	assert.Equal(t, 15, app.Frames.Last().Budget)
	assert.Equal(t, 15, app.Frames.Last().Remaining)
}
