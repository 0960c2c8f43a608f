package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/alexanderramin/testament/internal/cli/formatter"
	"github.com/alexanderramin/testament/internal/domain"
	"github.com/alexanderramin/testament/internal/game"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	keyOld     = key.NewBinding(key.WithKeys("o", "left", "1"), key.WithHelp("o/←", "old testament"))
	keyNew     = key.NewBinding(key.WithKeys("n", "right", "2"), key.WithHelp("n/→", "new testament"))
	keyNext    = key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "next level"))
	keyRestart = key.NewBinding(key.WithKeys("r", "enter"), key.WithHelp("r", "play again"))
	keyLeave   = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "menu"))
)

// playView is the game screen. It renders the latest frame the controller
// pushed and owns the countdown: one tea.Tick per second, tagged with the
// epoch of the level it belongs to.
type playView struct {
	state *SharedState
	epoch uint64

	verdict domain.Verdict
	outcome domain.Outcome
	summary *domain.Summary
	best    int
	err     error
}

func newPlayView(state *SharedState) *playView {
	return &playView{state: state}
}

func (v *playView) ID() ViewID    { return ViewPlay }
func (v *playView) Title() string { return "Play" }

func (v *playView) ShortHelp() []key.Binding {
	switch v.state.App.Game.Phase() {
	case domain.PhasePlaying:
		return []key.Binding{keyOld, keyNew, keyLeave}
	case domain.PhaseLevelComplete:
		return []key.Binding{keyNext, keyLeave}
	case domain.PhaseGameOver:
		return []key.Binding{keyRestart, keyLeave}
	}
	return []key.Binding{keyLeave}
}

func (v *playView) Init() tea.Cmd {
	v.best = v.state.App.Game.Best(context.Background())
	return v.beginLevel(false)
}

// beginLevel starts the first level of the session, or the next one when
// advance is set, and schedules its countdown.
func (v *playView) beginLevel(advance bool) tea.Cmd {
	ctx := context.Background()
	g := v.state.App.Game

	var epoch uint64
	var err error
	if advance {
		epoch, err = g.Advance(ctx)
	} else {
		epoch, err = g.StartLevel(ctx)
	}
	if err != nil {
		v.err = err
		return nil
	}

	v.epoch = epoch
	v.verdict = domain.VerdictNone
	v.outcome = domain.OutcomeNone
	v.err = nil
	return scheduleTick(epoch)
}

func (v *playView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case countdownTickMsg:
		return v, v.onTick(msg)
	case tea.KeyMsg:
		return v, v.onKey(msg)
	}
	return v, nil
}

func (v *playView) onTick(msg countdownTickMsg) tea.Cmd {
	g := v.state.App.Game
	res, err := g.Tick(context.Background(), msg.epoch)
	if err != nil {
		// Stale ticks from a finished level end their chain here.
		return nil
	}
	v.apply(res)
	if g.Phase() == domain.PhasePlaying {
		return scheduleTick(msg.epoch)
	}
	return nil
}

func (v *playView) onKey(msg tea.KeyMsg) tea.Cmd {
	ctx := context.Background()
	g := v.state.App.Game

	if key.Matches(msg, keyLeave) {
		if g.Phase().InSession() {
			if _, err := g.Abort(ctx); err != nil {
				v.state.App.Log.Warn().Err(err).Msg("abort on leave")
			}
		}
		return popView()
	}

	switch g.Phase() {
	case domain.PhasePlaying:
		switch {
		case key.Matches(msg, keyOld):
			v.submit(domain.CategoryOld)
		case key.Matches(msg, keyNew):
			v.submit(domain.CategoryNew)
		}
	case domain.PhaseLevelComplete:
		if key.Matches(msg, keyNext) {
			return v.beginLevel(true)
		}
	case domain.PhaseGameOver:
		if key.Matches(msg, keyRestart) {
			if err := g.NewSession(ctx, g.Difficulty()); err != nil {
				v.err = err
				return nil
			}
			v.summary = nil
			return v.beginLevel(false)
		}
	}
	return nil
}

func (v *playView) submit(choice domain.Category) {
	res, err := v.state.App.Game.Submit(context.Background(), choice)
	if err != nil && !errors.Is(err, game.ErrInternalInconsistency) {
		return
	}
	v.apply(res)
	v.err = err
}

func (v *playView) apply(res game.Result) {
	if res.Verdict != domain.VerdictNone {
		v.verdict = res.Verdict
	}
	v.outcome = res.Outcome
	if res.Summary != nil {
		v.summary = res.Summary
		v.best = res.Summary.Best
	}
}

func (v *playView) View() string {
	f := v.state.App.Frames.Last()
	var b strings.Builder
	b.WriteString("\n  " + formatter.FormatHUD(f, max(v.best, f.Score)) + "\n\n")

	switch f.Phase {
	case domain.PhasePlaying:
		b.WriteString("  " + formatter.RenderCountdown(f.Remaining, f.Budget, 20) +
			"   " + formatter.RenderPips(f.Selections, domain.SelectionsPerLevel) + "\n\n")
		b.WriteString(indent(formatter.FormatItemCard(f.Item), "  ") + "\n\n")
		b.WriteString("  " + formatter.FormatChoices() + "\n")
		if line := formatter.FormatVerdict(v.verdict); line != "" {
			b.WriteString("\n  " + line + "\n")
		}

	case domain.PhaseLevelComplete:
		b.WriteString(indent(formatter.FormatLevelComplete(f), "  ") + "\n")

	case domain.PhaseGameOver:
		if line := formatter.FormatOutcome(v.outcome); line != "" {
			b.WriteString("  " + line + "\n\n")
		}
		if v.summary != nil {
			b.WriteString(indent(formatter.FormatGameOver(*v.summary), "  ") + "\n")
		}

	default:
		b.WriteString("  " + formatter.Dim("Get ready…") + "\n")
	}

	if v.err != nil {
		b.WriteString("\n  " + formatter.StyleRed.Render(v.err.Error()) + "\n")
	}
	return b.String()
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
