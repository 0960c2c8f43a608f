package domain

import "time"

const (
	// Reward is the number of points for one correct classification.
	Reward = 2
	// SelectionsPerLevel is the number of correct answers that completes a level.
	SelectionsPerLevel = 12
	// FinalLevel is the level whose completion wins the game.
	FinalLevel = 50
)

// Frame is what the display shows at any moment.
type Frame struct {
	Phase      Phase
	Difficulty Difficulty
	Level      int
	Remaining  int
	Budget     int
	Score      int
	Selections int
	Item       string
}

// Summary is the terminal result of a session.
type Summary struct {
	SessionID  string
	Won        bool
	Score      int
	Best       int
	Level      int
	Difficulty Difficulty
	EndedAt    time.Time
}

// NewRecord reports whether the session set the best score.
func (s Summary) NewRecord() bool {
	return s.Score > 0 && s.Score == s.Best
}
