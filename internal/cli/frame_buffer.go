package cli

import (
	"sync"

	"github.com/alexanderramin/testament/internal/domain"
)

// FrameBuffer is the game's display sink. The controller pushes a frame on
// every state change; views render the latest one.
type FrameBuffer struct {
	mu     sync.Mutex
	last   domain.Frame
	pushes int
}

func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{}
}

// Show implements game.DisplaySink.
func (b *FrameBuffer) Show(f domain.Frame) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.last = f
	b.pushes++
}

func (b *FrameBuffer) Last() domain.Frame {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last
}

// pushCount counts frames received so far.
func (b *FrameBuffer) pushCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pushes
}
