package game

import (
	"context"

	"github.com/alexanderramin/testament/internal/domain"
)

// DisplaySink receives a fresh frame after every state change. Show is called
// with the controller lock held and must not call back into the controller.
type DisplaySink interface {
	Show(frame domain.Frame)
}

// Ambience is background music control. Signals are fire-and-forget.
type Ambience interface {
	Start()
	Stop()
}

// BestScores persists the best final score across sessions. Implementations
// degrade instead of failing: an unreadable store reports 0 and a failed write
// is skipped.
type BestScores interface {
	Best(ctx context.Context) int
	Record(ctx context.Context, score int) int
	Clear(ctx context.Context) error
}

// Classifier resolves which category a name belongs to.
type Classifier interface {
	Classify(item string) domain.Category
}

// Drawer hands out the next name to classify.
type Drawer interface {
	Next() string
}

type noopDisplay struct{}

func (noopDisplay) Show(domain.Frame) {}

type noopAmbience struct{}

func (noopAmbience) Start() {}
func (noopAmbience) Stop()  {}
