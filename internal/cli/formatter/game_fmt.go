package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/testament/internal/domain"
)

// FormatHUD renders the one-line status shown above the current book.
func FormatHUD(f domain.Frame, best int) string {
	parts := []string{
		Dim("Level ") + Bold(fmt.Sprintf("%d/%d", f.Level, domain.FinalLevel)),
		Dim("Score ") + StyleGreen.Render(strconv.Itoa(f.Score)),
		Dim("Best ") + StyleYellow.Render(strconv.Itoa(best)),
		Dim(f.Difficulty.Label()),
	}
	return strings.Join(parts, Dim("  •  "))
}

// FormatItemCard renders the book name the player must classify.
func FormatItemCard(item string) string {
	return RenderCard("", StyleBold.Render(item), ColorHeader)
}

// FormatChoices renders the two answer keys.
func FormatChoices() string {
	old := StyleBlue.Render("← [o] " + domain.CategoryOld.Label())
	nw := StylePurple.Render(domain.CategoryNew.Label() + " [n] →")
	return old + "      " + nw
}

// FormatLevelComplete renders the card between levels.
func FormatLevelComplete(f domain.Frame) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Level %d complete with %ds to spare.\n", f.Level, f.Remaining)
	fmt.Fprintf(&b, "Score: %s\n\n", StyleGreen.Render(strconv.Itoa(f.Score)))
	b.WriteString(Dim("enter: next level"))
	return RenderCard("Well Done!", b.String(), ColorGreen)
}

// FormatGameOver renders the end-of-session card.
func FormatGameOver(s domain.Summary) string {
	title := "Game Over"
	border := ColorRed
	var b strings.Builder
	if s.Won {
		title = "Congratulations!"
		border = ColorGreen
		fmt.Fprintf(&b, "You beat all %d levels!\n", domain.FinalLevel)
	} else {
		fmt.Fprintf(&b, "You reached level %d on %s.\n", s.Level, s.Difficulty.Label())
	}
	fmt.Fprintf(&b, "Final score: %s\n", StyleGreen.Render(strconv.Itoa(s.Score)))
	fmt.Fprintf(&b, "Best score:  %s\n", StyleYellow.Render(strconv.Itoa(s.Best)))
	if s.NewRecord() {
		b.WriteString(StyleYellow.Render("New best score!") + "\n")
	}
	b.WriteString("\n" + Dim("r: play again  esc: menu"))
	return RenderCard(title, b.String(), border)
}

// FormatVerdict renders the flash shown after an answer.
func FormatVerdict(v domain.Verdict) string {
	switch v {
	case domain.VerdictCorrect:
		return StyleGreen.Render(fmt.Sprintf("✓ Correct  +%d", domain.Reward))
	case domain.VerdictIncorrect:
		return StyleRed.Render("✗ Wrong testament")
	}
	return ""
}

// FormatOutcome explains how a level ended.
func FormatOutcome(o domain.Outcome) string {
	switch o {
	case domain.OutcomeComplete:
		return StyleGreen.Render("Level complete")
	case domain.OutcomeFailed:
		return StyleRed.Render("Wrong answer")
	case domain.OutcomeTimedOut:
		return StyleRed.Render("Time's up")
	}
	return ""
}

// FormatBest renders the high score line.
func FormatBest(best int) string {
	return Header("High Score") + "\n" + StyleYellow.Render(strconv.Itoa(best)) + "\n"
}

// FormatBooks renders the catalog as a numbered table, Old Testament first.
func FormatBooks(oldBooks, newBooks []string) string {
	rows := make([][]string, 0, len(oldBooks)+len(newBooks))
	add := func(books []string, c domain.Category) {
		for _, name := range books {
			rows = append(rows, []string{strconv.Itoa(len(rows) + 1), name, CategoryBadge(c)})
		}
	}
	add(oldBooks, domain.CategoryOld)
	add(newBooks, domain.CategoryNew)
	return RenderTable([]string{"#", "Book", "Testament"}, rows)
}

// FormatDifficulties renders the difficulty table, marking current.
func FormatDifficulties(current domain.Difficulty) string {
	rows := make([][]string, 0, len(domain.Difficulties))
	for _, d := range domain.Difficulties {
		mark := ""
		if d == current {
			mark = StyleGreen.Render("●")
		}
		rows = append(rows, []string{d.Label(), strconv.Itoa(d.LevelBudget()), mark})
	}
	return RenderTable([]string{"Difficulty", "Seconds", "Current"}, rows)
}

// HowToPlay is the rules text for the help screen.
func HowToPlay() string {
	var b strings.Builder
	b.WriteString(Header("How to Play") + "\n\n")
	fmt.Fprintf(&b, "A book of the Bible appears. Decide whether it belongs to the\n")
	fmt.Fprintf(&b, "%s or the %s.\n\n",
		StyleBlue.Render(domain.CategoryOld.Label()), StylePurple.Render(domain.CategoryNew.Label()))
	fmt.Fprintf(&b, "  %s  or  %s   Old Testament\n", Bold("o"), Bold("←"))
	fmt.Fprintf(&b, "  %s  or  %s   New Testament\n\n", Bold("n"), Bold("→"))
	fmt.Fprintf(&b, "Each correct answer scores %d points. Sort %d books to clear a level.\n",
		domain.Reward, domain.SelectionsPerLevel)
	b.WriteString("The timer covers the whole level and keeps running between books,\n")
	b.WriteString("so quick answers leave time for the rest.\n\n")
	b.WriteString("A wrong answer or an empty timer ends the game.\n")
	fmt.Fprintf(&b, "Clear all %d levels to win.\n\n", domain.FinalLevel)
	b.WriteString(Header("Time per level") + "\n")
	for _, d := range domain.Difficulties {
		fmt.Fprintf(&b, "  %-8s %2ds\n", d.Label(), d.LevelBudget())
	}
	return b.String()
}
