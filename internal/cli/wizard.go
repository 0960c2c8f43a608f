package cli

import (
	"fmt"

	"github.com/alexanderramin/testament/internal/cli/formatter"
	"github.com/alexanderramin/testament/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// testamentHuhTheme returns a huh theme in the formatter's Gruvbox palette.
func testamentHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// settingsForm edits the difficulty for upcoming levels and the music toggle.
func settingsForm(difficulty *domain.Difficulty, music *bool) *huh.Form {
	options := make([]huh.Option[domain.Difficulty], 0, len(domain.Difficulties))
	for _, d := range domain.Difficulties {
		label := fmt.Sprintf("%-7s %2ds per level", d.Label(), d.LevelBudget())
		options = append(options, huh.NewOption(label, d))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Difficulty]().
				Title("Difficulty").
				Description("Applies from the next level.").
				Options(options...).
				Value(difficulty),
			huh.NewConfirm().
				Title("Background music").
				Affirmative("On").
				Negative("Off").
				Value(music),
		),
	).WithTheme(testamentHuhTheme()).WithShowHelp(false)
}

// confirmClearForm asks before the best score is wiped.
func confirmClearForm(confirmed *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Clear the best score?").
				Description("This cannot be undone.").
				Affirmative("Clear").
				Negative("Keep").
				Value(confirmed),
		),
	).WithTheme(testamentHuhTheme()).WithShowHelp(false)
}
