package cli

import (
	"regexp"
	"testing"

	"github.com/alexanderramin/testament/internal/domain"
	"github.com/alexanderramin/testament/internal/teatest"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// TestDriver wraps teatest.Driver with access to the appModel internals
// (view stack, notice) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
	app *App
}

// NewTestDriver builds the menu TUI for app at 120x40 and drains Init.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d, app: app}
}

func (d *TestDriver) model() appModel {
	d.T.Helper()
	m, ok := d.Model.(appModel)
	if !ok {
		d.T.Fatalf("model is %T, want appModel", d.Model)
	}
	return m
}

// ActiveViewID returns the ID of the top view, or -1 when the stack is empty.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.model()
	if v := m.activeView(); v != nil {
		return v.ID()
	}
	return -1
}

func (d *TestDriver) StackDepth() int {
	return len(d.model().viewStack)
}

func (d *TestDriver) Notice() string {
	return stripANSI(d.model().notice)
}

// Screen is the rendered view without styling.
func (d *TestDriver) Screen() string {
	return stripANSI(d.View())
}

// ── game helpers ─────────────────────────────────────────────────────────────

func (d *TestDriver) keyFor(c domain.Category) string {
	if c == domain.CategoryOld {
		return "o"
	}
	return "n"
}

// AnswerCorrectly classifies the item on screen correctly.
func (d *TestDriver) AnswerCorrectly() {
	d.T.Helper()
	item := d.app.Frames.Last().Item
	d.Press(d.keyFor(d.app.Catalog.Classify(item)))
}

// AnswerWrongly picks the other testament for the item on screen.
func (d *TestDriver) AnswerWrongly() {
	d.T.Helper()
	item := d.app.Frames.Last().Item
	wrong := domain.CategoryOld
	if d.app.Catalog.Classify(item) == domain.CategoryOld {
		wrong = domain.CategoryNew
	}
	d.Press(d.keyFor(wrong))
}

// ClearLevel answers every selection of the current level correctly.
func (d *TestDriver) ClearLevel() {
	d.T.Helper()
	for i := 0; i < domain.SelectionsPerLevel; i++ {
		d.AnswerCorrectly()
	}
}

// Tick delivers one countdown second for the current level.
func (d *TestDriver) Tick() {
	d.T.Helper()
	d.Send(countdownTickMsg{epoch: d.app.Game.Epoch()})
}
