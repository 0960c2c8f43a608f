package service

import (
	"sync"

	"github.com/rs/zerolog"
)

// LogAmbience stands in for background music. It tracks whether the loop is
// playing and logs each change; repeated Start or Stop calls are no-ops.
type LogAmbience struct {
	mu      sync.Mutex
	log     zerolog.Logger
	track   string
	playing bool
}

func NewLogAmbience(log zerolog.Logger, track string) *LogAmbience {
	return &LogAmbience{log: log.With().Str("component", "ambience").Logger(), track: track}
}

func (a *LogAmbience) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.playing {
		return
	}
	a.playing = true
	a.log.Info().Str("track", a.track).Msg("music started")
}

func (a *LogAmbience) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.playing {
		return
	}
	a.playing = false
	a.log.Info().Str("track", a.track).Msg("music stopped")
}

func (a *LogAmbience) Playing() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.playing
}
