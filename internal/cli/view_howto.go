package cli

import (
	"github.com/alexanderramin/testament/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// howToView shows the rules in a scrollable viewport.
type howToView struct {
	state *SharedState
	vp    viewport.Model
}

func newHowToView(state *SharedState) *howToView {
	vp := viewport.New(max(state.Width, 40), state.ContentHeight())
	vp.KeyMap = howToKeyMap()
	vp.SetContent(lipgloss.NewStyle().PaddingLeft(2).Render(formatter.HowToPlay()))
	return &howToView{state: state, vp: vp}
}

func (v *howToView) ID() ViewID    { return ViewHowTo }
func (v *howToView) Title() string { return "How to Play" }

func (v *howToView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
	}
}

func (v *howToView) Init() tea.Cmd { return nil }

func (v *howToView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		v.vp.Width = size.Width
		v.vp.Height = v.state.ContentHeight()
		return v, nil
	}
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *howToView) View() string {
	return v.vp.View()
}

// howToKeyMap leaves letter keys free for the global bindings.
func howToKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}
