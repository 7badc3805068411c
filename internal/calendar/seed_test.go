package calendar

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSeedContent = `[
	{"id": 1, "type": "workout", "date": "2026-01-19", "title": "Series cortas", "duration": "1h 15m", "tss": 85},
	{"id": 2, "type": "race", "date": "2026-02-15", "title": "Media de Madrid", "priority": "A"},
	{"id": 3, "type": "health", "date": "2026-01-20", "endDate": "2026-01-22", "title": "Viaje", "restriction": "sin bici"}
]`

func writeTestSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "calendar.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSeedItems(t *testing.T) {
	path := writeTestSeed(t, testSeedContent)

	items, err := LoadSeedItems(path)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, ItemTypeWorkout, items[0].Type)
	assert.Equal(t, "Media de Madrid", items[1].Title)
	assert.Equal(t, "2026-01-22", items[2].EndDate)
}

func TestLoadSeedItems_invalidItem(t *testing.T) {
	path := writeTestSeed(t, `[{"id": 1, "type": "gala", "date": "2026-01-19"}]`)

	_, err := LoadSeedItems(path)
	assert.ErrorIs(t, err, ErrUnknownItemType)
}

func TestLoadSeedItems_missingFile(t *testing.T) {
	_, err := LoadSeedItems("/nonexistent/calendar.json")
	require.Error(t, err)
}

func TestService_SeedFromFile(t *testing.T) {
	path := writeTestSeed(t, testSeedContent)

	repo := newRepoMock()
	service := NewService(repo)
	ctx := context.Background()

	require.NoError(t, service.SeedFromFile(ctx, path))
	items, err := repo.List(ctx, ListParams{})
	require.NoError(t, err)
	assert.Len(t, items, 3)

	// second run is a no-op, the calendar is populated already
	require.NoError(t, service.SeedFromFile(ctx, path))
	items, err = repo.List(ctx, ListParams{})
	require.NoError(t, err)
	assert.Len(t, items, 3)
}
