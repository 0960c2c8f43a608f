package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type pingMsg struct{}

// echoModel records what it sees.
type echoModel struct {
	keys  []string
	pings int
	size  tea.WindowSizeMsg
}

func (m echoModel) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return pingMsg{} },
		tea.Tick(time.Second, func(time.Time) tea.Msg { return pingMsg{} }),
	)
}

func (m echoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.size = msg
	case pingMsg:
		m.pings++
	case tea.KeyMsg:
		m.keys = append(m.keys, msg.String())
		if msg.String() == "q" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m echoModel) View() string { return "" }

func TestDriver_DrainInitRunsImmediateCmdsAndDropsTimers(t *testing.T) {
	d := New(t, echoModel{}, WithSize(80, 24))
	d.DrainInit()

	m := d.Model.(echoModel)
	assert.Equal(t, 1, m.pings)
	assert.Equal(t, 1, d.Dropped)
	assert.Equal(t, 80, m.size.Width)
}

func TestDriver_PressMapsNamedKeys(t *testing.T) {
	d := New(t, echoModel{})
	d.Press("enter", "left", "ab")

	assert.Equal(t, []string{"enter", "left", "a", "b"}, d.Model.(echoModel).keys)
}

func TestDriver_QuitStopsFurtherInput(t *testing.T) {
	d := New(t, echoModel{})
	d.Press("q", "x")

	assert.True(t, d.Quitting)
	assert.Equal(t, []string{"q"}, d.Model.(echoModel).keys)
}
