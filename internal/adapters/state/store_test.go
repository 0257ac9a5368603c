package state_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftbuild/helper/internal/adapters/state"
	"github.com/swiftbuild/helper/internal/core/domain"
)

func record(product, action string, success bool) domain.Record {
	return domain.Record{
		Product:     product,
		Action:      action,
		Fingerprint: "deadbeefdeadbeef",
		Success:     success,
		Timestamp:   time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC),
	}
}

func TestStore_PutGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), state.DefaultFilename)
	store, err := state.NewStore(path)
	require.NoError(t, err)

	want := record("swift-backtrace", "build", true)
	require.NoError(t, store.Put(want))

	got, err := store.Get("swift-backtrace", "build")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
}

func TestStore_Get_Missing(t *testing.T) {
	store, err := state.NewStore(filepath.Join(t.TempDir(), state.DefaultFilename))
	require.NoError(t, err)

	got, err := store.Get("swift-backtrace", "test")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), state.DefaultFilename)

	first, err := state.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Put(record("swift-backtrace", "install", false)))

	second, err := state.NewStore(path)
	require.NoError(t, err)

	got, err := second.Get("swift-backtrace", "install")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Success)
}

func TestStore_Put_Overwrites(t *testing.T) {
	store, err := state.NewStore(filepath.Join(t.TempDir(), state.DefaultFilename))
	require.NoError(t, err)

	require.NoError(t, store.Put(record("swift-backtrace", "build", false)))
	require.NoError(t, store.Put(record("swift-backtrace", "build", true)))

	got, err := store.Get("swift-backtrace", "build")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Success)

	all, err := store.All()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestStore_All_Sorted(t *testing.T) {
	store, err := state.NewStore(filepath.Join(t.TempDir(), state.DefaultFilename))
	require.NoError(t, err)

	require.NoError(t, store.Put(record("swiftpm", "build", true)))
	require.NoError(t, store.Put(record("swift-backtrace", "test", true)))
	require.NoError(t, store.Put(record("swift-backtrace", "build", true)))

	all, err := store.All()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "swift-backtrace", all[0].Product)
	assert.Equal(t, "build", all[0].Action)
	assert.Equal(t, "test", all[1].Action)
	assert.Equal(t, "swiftpm", all[2].Product)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), state.DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := state.NewStore(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal state file")
}

func TestStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), state.DefaultFilename)
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	store, err := state.NewStore(path)
	require.NoError(t, err)

	all, err := store.All()
	require.NoError(t, err)
	assert.Empty(t, all)
}
