package game

import (
	"fmt"

	"github.com/alexanderramin/testament/internal/domain"
)

// Round is the state machine for one level:
//
//	idle -> active -> complete | failed | timed_out
//
// The countdown belongs to the level as a whole. Submit never resets, pauses
// or extends it, so time saved on quick answers carries over to later items.
type Round struct {
	classifier Classifier
	pool       Drawer

	state      domain.RoundState
	remaining  int
	selections int
	current    string
}

func NewRound(c Classifier) *Round {
	return &Round{classifier: c, state: domain.RoundIdle}
}

// Begin starts the level with budget seconds and draws the first item.
func (r *Round) Begin(budget int, pool Drawer) error {
	if r.state == domain.RoundActive {
		return fmt.Errorf("begin round while active: %w", ErrInvalidTransition)
	}
	if budget <= 0 {
		return fmt.Errorf("level budget must be positive, got %d", budget)
	}
	r.pool = pool
	r.selections = 0
	r.remaining = budget
	r.current = pool.Next()
	r.state = domain.RoundActive
	return nil
}

// Tick consumes one second. Reaching zero times the level out.
func (r *Round) Tick() (domain.RoundState, error) {
	if r.state != domain.RoundActive {
		return r.state, fmt.Errorf("tick in state %s: %w", r.state, ErrInvalidTransition)
	}
	r.remaining--
	if r.remaining <= 0 {
		r.remaining = 0
		r.state = domain.RoundTimedOut
	}
	return r.state, nil
}

// Submit evaluates the player's claimed category for the current item.
func (r *Round) Submit(choice domain.Category) (domain.Verdict, error) {
	if r.state != domain.RoundActive {
		return domain.VerdictNone, fmt.Errorf("submit in state %s: %w", r.state, ErrInvalidTransition)
	}

	truth := r.classifier.Classify(r.current)
	if truth == domain.CategoryUnknown {
		r.state = domain.RoundFailed
		return domain.VerdictNone, fmt.Errorf("classifying %q: %w", r.current, ErrInternalInconsistency)
	}
	if choice != truth {
		r.state = domain.RoundFailed
		return domain.VerdictIncorrect, nil
	}

	r.selections++
	if r.selections >= domain.SelectionsPerLevel {
		r.state = domain.RoundComplete
		return domain.VerdictCorrect, nil
	}
	r.current = r.pool.Next()
	return domain.VerdictCorrect, nil
}

func (r *Round) State() domain.RoundState { return r.state }
func (r *Round) Remaining() int           { return r.remaining }
func (r *Round) Selections() int          { return r.selections }
func (r *Round) Current() string          { return r.current }

// Outcome maps the terminal state to a level outcome.
func (r *Round) Outcome() domain.Outcome {
	if !r.state.Terminal() {
		return domain.OutcomeNone
	}
	switch r.state {
	case domain.RoundComplete:
		return domain.OutcomeComplete
	case domain.RoundFailed:
		return domain.OutcomeFailed
	case domain.RoundTimedOut:
		return domain.OutcomeTimedOut
	}
	return domain.OutcomeNone
}
