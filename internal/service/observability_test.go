package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/testament/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver_WritesStructuredEvent(t *testing.T) {
	logger, logs := testutil.NewTestLogger()
	obs := NewLogUseCaseObserver(logger)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "record-score",
		Duration: 3 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"score": 12},
	})

	out := logs.String()
	assert.Contains(t, out, `"use_case":"record-score"`)
	assert.Contains(t, out, `"duration_ms":3`)
	assert.Contains(t, out, `"score":12`)
	assert.Contains(t, out, `"level":"debug"`)
}

func TestLogUseCaseObserver_ErrorsLogAtErrorLevel(t *testing.T) {
	logger, logs := testutil.NewTestLogger()
	obs := NewLogUseCaseObserver(logger)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "clear-score", Err: errors.New("locked")})

	assert.Contains(t, logs.String(), `"level":"error"`)
	assert.Contains(t, logs.String(), `"error":"locked"`)
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop([]UseCaseObserver{nil}))

	obs := &recordingObserver{}
	assert.Same(t, obs, useCaseObserverOrNoop([]UseCaseObserver{nil, obs}))
}
