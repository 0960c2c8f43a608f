package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

type pushViewMsg struct {
	view View
}

type popViewMsg struct{}

type replaceViewMsg struct {
	view View
}

// noticeMsg shows a transient line above the status bar until the next key.
type noticeMsg struct {
	text string
}

// refreshViewMsg asks every view on the stack to reload what it shows.
type refreshViewMsg struct{}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel pops the wizard view, then runs nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

type quitMsg struct{}

// countdownTickMsg is one elapsed second of the level countdown scheduled
// under epoch.
type countdownTickMsg struct {
	epoch uint64
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}

func notice(text string) tea.Cmd {
	return func() tea.Msg { return noticeMsg{text: text} }
}

func refreshViews() tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{} }
}

// tickInterval is the countdown resolution.
const tickInterval = time.Second

// scheduleTick delivers the next countdown second for epoch.
func scheduleTick(epoch uint64) tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return countdownTickMsg{epoch: epoch}
	})
}
