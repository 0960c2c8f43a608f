package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/testament/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// menuAction is one entry on the start screen.
type menuAction struct {
	label string
	key   string // single-key shortcut
	fn    func() tea.Cmd
}

// menuView is the start screen.
type menuView struct {
	state   *SharedState
	cursor  int
	actions []menuAction
	best    int
}

func newMenuView(state *SharedState) *menuView {
	v := &menuView{state: state}
	v.actions = []menuAction{
		{label: "Start", key: "s", fn: v.actionStart},
		{label: "Settings", key: "e", fn: v.actionSettings},
		{label: "High Score", key: "h", fn: v.actionScores},
		{label: "How to Play", key: "?", fn: v.actionHowTo},
		{label: "Quit", key: "x", fn: func() tea.Cmd { return func() tea.Msg { return quitMsg{} } }},
	}
	return v
}

func (v *menuView) ID() ViewID    { return ViewMenu }
func (v *menuView) Title() string { return "" }

func (v *menuView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "move")),
	}
}

func (v *menuView) Init() tea.Cmd {
	v.reload()
	return nil
}

func (v *menuView) reload() {
	v.best = v.state.App.Game.Best(context.Background())
}

func (v *menuView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.reload()
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.actions)-1 {
				v.cursor++
			}
		case "enter":
			return v, v.actions[v.cursor].fn()
		default:
			for i, a := range v.actions {
				if msg.String() == a.key {
					v.cursor = i
					return v, a.fn()
				}
			}
		}
	}
	return v, nil
}

func (v *menuView) View() string {
	var b strings.Builder
	g := v.state.App.Game

	b.WriteString("\n")
	b.WriteString("  " + formatter.StyleHeader.Render("OLD OR NEW?") + "\n")
	b.WriteString("  " + formatter.Dim("Sort the books of the Bible before time runs out.") + "\n\n")

	for i, a := range v.actions {
		cursor := "  "
		style := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			style = formatter.StyleBold
		}
		fmt.Fprintf(&b, "%s%s  %s\n", cursor, style.Render(a.label), formatter.Dim("["+a.key+"]"))
	}

	d := g.Difficulty()
	music := "off"
	if g.Music() {
		music = "on"
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s  %s %s  %s %s\n",
		formatter.Dim("Difficulty"), formatter.Bold(fmt.Sprintf("%s (%ds per level)", d.Label(), d.LevelBudget())),
		formatter.Dim("Music"), formatter.Bold(music),
		formatter.Dim("Best"), formatter.StyleYellow.Render(fmt.Sprint(v.best)))
	return b.String()
}

// ── actions ──────────────────────────────────────────────────────────────────

func (v *menuView) actionStart() tea.Cmd {
	play, err := startGame(context.Background(), v.state)
	if err != nil {
		return notice(formatter.StyleRed.Render(err.Error()))
	}
	return pushView(play)
}

func (v *menuView) actionSettings() tea.Cmd {
	g := v.state.App.Game
	difficulty, music := g.Difficulty(), g.Music()

	return startWizardCmd(v.state, "Settings", settingsForm(&difficulty, &music), func() tea.Cmd {
		if err := g.SetDifficulty(difficulty); err != nil {
			return notice(formatter.StyleRed.Render(err.Error()))
		}
		g.SetMusic(music)
		v.state.App.Log.Info().
			Str("difficulty", string(difficulty)).
			Bool("music", music).
			Msg("settings changed")
		return notice(formatter.StyleGreen.Render("Settings saved."))
	})
}

func (v *menuView) actionScores() tea.Cmd {
	return pushView(newScoresView(v.state))
}

func (v *menuView) actionHowTo() tea.Cmd {
	return pushView(newHowToView(v.state))
}

// startGame opens a fresh session at the current difficulty and returns the
// game screen for it.
func startGame(ctx context.Context, state *SharedState) (View, error) {
	g := state.App.Game
	if err := g.NewSession(ctx, g.Difficulty()); err != nil {
		return nil, err
	}
	return newPlayView(state), nil
}

