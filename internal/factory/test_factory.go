package factory

import (
	"time"

	"github.com/mribera/penjat3d/internal/dependencies/mocks"
	"github.com/mribera/penjat3d/internal/model"
	"github.com/mribera/penjat3d/internal/services/content"
	"github.com/mribera/penjat3d/internal/storage/memory"
	"github.com/mribera/penjat3d/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing: in-memory storage,
// mocked clock and random, the local word catalog, and no reaction delay so
// outcomes resolve inline.
func NewTestApp() *TestApp {
	return NewTestAppWithReactionDelay(0)
}

// NewTestAppWithReactionDelay is NewTestApp with deferred outcome
// resolution: terminal flips wait until the mock clock advances past delay.
func NewTestAppWithReactionDelay(delay time.Duration) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	provider := content.NewCatalogProvider(mockRandom)

	app := newWithDependencies(store, mockClock, mockRandom, provider, model.DefaultGridSize, delay, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
