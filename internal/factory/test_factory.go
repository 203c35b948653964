package factory

import (
	"context"
	"fmt"
	"time"

	"github.com/mearas/realmwar/internal/dependencies/mocks"
	"github.com/mearas/realmwar/internal/model"
	"github.com/mearas/realmwar/internal/storage/memory"
	"github.com/mearas/realmwar/internal/testutil"
)

// TestDirectory resolves IGNs from a fixed map, standing in for the real
// account directory
type TestDirectory struct {
	Accounts map[string]string
}

func (d *TestDirectory) LookupUUID(_ context.Context, ign string) (string, error) {
	uuid, ok := d.Accounts[ign]
	if !ok {
		return "", fmt.Errorf("%w: %q", model.ErrAccountNotFound, ign)
	}
	return uuid, nil
}

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
	Directory *TestDirectory
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	directory := &TestDirectory{Accounts: make(map[string]string)}

	app := newWithDependencies(store, directory, mockClock, testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
		Directory: directory,
	}
}
