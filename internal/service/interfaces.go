package service

import "context"

// ScoreService keeps the best score across sessions. Storage failures never
// reach the caller of Best or Record; they are logged and the game goes on.
type ScoreService interface {
	// Best returns the stored best score, or 0 when none is stored or the
	// store is unreadable.
	Best(ctx context.Context) int
	// Record stores score if it beats the stored best and returns the best
	// after the update.
	Record(ctx context.Context, score int) int
	// Clear resets the best score to 0.
	Clear(ctx context.Context) error
}
