package testutil

import (
	"bytes"
	"sync"
	"testing"

	"github.com/alexanderramin/testament/internal/catalog"
	"github.com/rs/zerolog"
)

// SmallCatalog is a four-book catalog for tests that want predictable draws.
func SmallCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]string{"Genesis", "Ruth"}, []string{"Mark", "Jude"})
	if err != nil {
		t.Fatalf("building test catalog: %v", err)
	}
	return cat
}

// LogBuffer collects zerolog JSON lines. Safe for concurrent writers.
type LogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *LogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// NewTestLogger returns a debug-level logger writing to the returned buffer.
func NewTestLogger() (zerolog.Logger, *LogBuffer) {
	buf := &LogBuffer{}
	return zerolog.New(buf).Level(zerolog.DebugLevel).With().Timestamp().Logger(), buf
}
