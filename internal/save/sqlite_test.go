package save

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	require.NoError(t, err, "Open() should succeed")
	t.Cleanup(func() { store.Close() })

	_, statErr := os.Stat(dbPath)
	require.NoError(t, statErr, "database file should be created")
	return store
}

func TestLoadMissingProfileReturnsDefaults(t *testing.T) {
	store := openTestStore(t)

	d := store.Load()
	require.Equal(t, CurrentVersion, d.Version)
	require.Equal(t, 0, d.HighScore)
	require.Equal(t, Upgrades{}, d.Upgrades)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store := openTestStore(t)

	want := Data{
		Version:   CurrentVersion,
		HighScore: 230,
		Upgrades:  Upgrades{FuelEff: 1, HookPower: 3, DigSpeed: 2},
	}
	require.NoError(t, store.Save(want))
	require.Equal(t, want, store.Load())

	// Overwrite replaces, not appends.
	want.HighScore = 410
	want.Upgrades.FuelEff = 2
	require.NoError(t, store.Save(want))
	require.Equal(t, want, store.Load())
}

func TestSaveNormalizesInvalidFields(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Save(Data{
		Version:   "",
		HighScore: -5,
		Upgrades:  Upgrades{FuelEff: -1, HookPower: -2, DigSpeed: -3},
	}))

	d := store.Load()
	require.Equal(t, CurrentVersion, d.Version)
	require.Equal(t, 0, d.HighScore)
	require.Equal(t, Upgrades{}, d.Upgrades)
}

func TestRunHistory(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		_, err := store.RecordRun(score, score/2, float64(score)*1.5)
		require.NoError(t, err)
	}

	runs, err := store.TopRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	require.Equal(t, 200, runs[0].Score, "runs should be ordered by score descending")
	require.Equal(t, 100, runs[1].Score)
	require.Equal(t, 50, runs[2].Score)

	runs, err = store.TopRuns(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
}

func TestReset(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Save(Data{Version: CurrentVersion, HighScore: 99}))
	_, err := store.RecordRun(99, 90, 42)
	require.NoError(t, err)

	require.NoError(t, store.Reset())

	require.Equal(t, Defaults(), store.Load())
	runs, err := store.TopRuns(10)
	require.NoError(t, err)
	require.Empty(t, runs)
}
