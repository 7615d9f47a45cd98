package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/mhollis/gamewire/internal/dependencies/mocks"
	"github.com/mhollis/gamewire/internal/dependencies/random"
	"github.com/mhollis/gamewire/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App backed by in-memory storage with a fixed
// clock. Real randomness is kept so issued API keys are unique.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	app := newWithDependencies(store, mockClock, random.New(), logger)

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
