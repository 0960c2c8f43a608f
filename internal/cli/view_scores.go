package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/testament/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// scoresView shows the best score and offers to clear it.
type scoresView struct {
	state *SharedState
	best  int
}

func newScoresView(state *SharedState) *scoresView {
	return &scoresView{state: state}
}

func (v *scoresView) ID() ViewID    { return ViewScores }
func (v *scoresView) Title() string { return "High Score" }

func (v *scoresView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
	}
}

func (v *scoresView) Init() tea.Cmd {
	v.reload()
	return nil
}

func (v *scoresView) reload() {
	v.best = v.state.App.Game.Best(context.Background())
}

func (v *scoresView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.reload()
	case tea.KeyMsg:
		if msg.String() == "c" {
			return v, v.actionClear()
		}
	}
	return v, nil
}

func (v *scoresView) actionClear() tea.Cmd {
	g := v.state.App.Game
	var confirmed bool
	return startWizardCmd(v.state, "Clear", confirmClearForm(&confirmed), func() tea.Cmd {
		if !confirmed {
			return notice(formatter.Dim("Best score kept."))
		}
		if err := g.ClearBest(context.Background()); err != nil {
			return notice(formatter.StyleRed.Render(err.Error()))
		}
		return notice(formatter.StyleGreen.Render("High scores cleared!"))
	})
}

func (v *scoresView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	for _, line := range strings.Split(strings.TrimRight(formatter.FormatBest(v.best), "\n"), "\n") {
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}
