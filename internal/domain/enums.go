package domain

import (
	"fmt"
	"strings"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists every setting in menu order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}

// levelBudgets holds the total seconds for a whole level. All twelve
// selections of the level draw from the same budget.
var levelBudgets = map[Difficulty]int{
	DifficultyEasy:   15,
	DifficultyNormal: 10,
	DifficultyHard:   7,
}

// LevelBudget returns the countdown for one level in seconds, or 0 for an
// unknown difficulty.
func (d Difficulty) LevelBudget() int {
	return levelBudgets[d]
}

func (d Difficulty) Valid() bool {
	_, ok := levelBudgets[d]
	return ok
}

// Label returns the capitalized name shown in menus.
func (d Difficulty) Label() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

// ParseDifficulty accepts a difficulty name in any letter case.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
	return d, nil
}

func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Category names one of the two canonical collections a book belongs to.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryOld
	CategoryNew
)

func (c Category) String() string {
	switch c {
	case CategoryOld:
		return "old"
	case CategoryNew:
		return "new"
	default:
		return "unknown"
	}
}

func (c Category) Label() string {
	switch c {
	case CategoryOld:
		return "Old Testament"
	case CategoryNew:
		return "New Testament"
	default:
		return "Unknown"
	}
}

// ParseCategory accepts "old"/"ot" and "new"/"nt" in any letter case.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "old", "ot":
		return CategoryOld, nil
	case "new", "nt":
		return CategoryNew, nil
	}
	return CategoryUnknown, fmt.Errorf("unknown category %q (want old or new)", s)
}

// RoundState is the state of the per-level round engine.
type RoundState string

const (
	RoundIdle     RoundState = "idle"
	RoundActive   RoundState = "active"
	RoundComplete RoundState = "complete"
	RoundFailed   RoundState = "failed"
	RoundTimedOut RoundState = "timed_out"
)

// Terminal reports whether the round has ended.
func (s RoundState) Terminal() bool {
	return s == RoundComplete || s == RoundFailed || s == RoundTimedOut
}

// Phase is the session-level state that every screen projects from.
type Phase string

const (
	PhaseIdle          Phase = "idle"
	PhaseReady         Phase = "ready"
	PhasePlaying       Phase = "playing"
	PhaseLevelComplete Phase = "level_complete"
	PhaseGameOver      Phase = "game_over"
)

// InSession reports whether a session is underway and not yet finalized.
func (p Phase) InSession() bool {
	return p == PhaseReady || p == PhasePlaying || p == PhaseLevelComplete
}

type Verdict string

const (
	VerdictNone      Verdict = ""
	VerdictCorrect   Verdict = "correct"
	VerdictIncorrect Verdict = "incorrect"
)

// Outcome is how a level ended. OutcomeNone means the level is still running.
type Outcome string

const (
	OutcomeNone     Outcome = ""
	OutcomeComplete Outcome = "complete"
	OutcomeFailed   Outcome = "failed"
	OutcomeTimedOut Outcome = "timed_out"
)
