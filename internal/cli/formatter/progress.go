package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
	filledPip   = "●"
	emptyPip    = "○"
)

// RenderCountdown renders the level timer as [██████░░░░] 6s. The bar turns
// yellow under two thirds of the budget and red under one third.
func RenderCountdown(remaining, budget, width int) string {
	if budget < 1 {
		budget = 1
	}
	remaining = max(0, min(remaining, budget))
	if width < 2 {
		width = 2
	}

	frac := float64(remaining) / float64(budget)
	filled := min(int(frac*float64(width)+0.5), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case frac < 0.34:
		style = StyleRed
	case frac < 0.67:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %2ds", style.Render(bar), remaining)
}

// RenderPips renders level progress as filled and empty dots, e.g. ●●●○○○.
func RenderPips(done, total int) string {
	if total < 0 {
		total = 0
	}
	done = max(0, min(done, total))
	return StyleGreen.Render(strings.Repeat(filledPip, done)) +
		StyleDim.Render(strings.Repeat(emptyPip, total-done))
}
