package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/gift-exchange-service/internal/domain"
	"github.com/spec-kit/gift-exchange-service/internal/store"
)

func strPtr(s string) *string { return &s }

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	st := store.NewFileStore(path, zap.NewNop())
	ctx := context.Background()

	snapshot := domain.Snapshot{
		Participants: []domain.Participant{
			{ID: "a", Name: "Alice", GiftPreference: strPtr("books"), AssignedTo: strPtr("b")},
			{ID: "b", Name: "Bob", AssignedTo: strPtr("a")},
		},
		Shuffled: true,
	}
	require.NoError(t, st.Save(ctx, snapshot))

	loaded, err := st.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, snapshot, loaded)
}

func TestFileStoreMissingFileIsFreshInstall(t *testing.T) {
	st := store.NewFileStore(filepath.Join(t.TempDir(), "missing.json"), zap.NewNop())

	loaded, err := st.Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, loaded.Participants)
	require.False(t, loaded.Shuffled)
	require.Equal(t, domain.PhaseOpen, loaded.Phase())
}

func TestFileStoreDirectoryPathStoresInside(t *testing.T) {
	dir := t.TempDir()
	st := store.NewFileStore(dir, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, domain.Snapshot{
		Participants: []domain.Participant{{ID: "a", Name: "Alice"}},
	}))

	_, err := os.Stat(filepath.Join(dir, "data.json"))
	require.NoError(t, err)

	loaded, err := st.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Participants, 1)
}

func TestFileStoreCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "data.json")
	st := store.NewFileStore(path, zap.NewNop())

	require.NoError(t, st.Save(context.Background(), domain.Snapshot{}))
	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestFileStoreCorruptFileFailsLoudly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	st := store.NewFileStore(path, zap.NewNop())
	_, err := st.Load(context.Background())
	require.Error(t, err)
}

func TestFileStoreMalformedEntriesSkippedBySanitize(t *testing.T) {
	raw := `{
  "participants": [
    {"id": "a", "name": "Alice", "giftPreference": null, "assignedTo": "b"},
    {"name": "NoIdentity"},
    {"id": "c"},
    {"id": "b", "name": "Bob"}
  ],
  "shuffled": false
}`
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	st := store.NewFileStore(path, zap.NewNop())
	loaded, err := st.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded.Participants, 4)

	sanitized := loaded.Sanitize()
	require.Len(t, sanitized.Participants, 2)
	require.Equal(t, "Alice", sanitized.Participants[0].Name)
	require.Equal(t, "Bob", sanitized.Participants[1].Name)
	// stray assignment without the flag still loads as shuffled
	require.True(t, sanitized.Shuffled)
}

func TestFileStoreSaveReplacesPriorSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	st := store.NewFileStore(path, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, domain.Snapshot{
		Participants: []domain.Participant{{ID: "a", Name: "Alice"}, {ID: "b", Name: "Bob"}},
	}))
	require.NoError(t, st.Save(ctx, domain.Snapshot{
		Participants: []domain.Participant{{ID: "b", Name: "Bob"}},
	}))

	loaded, err := st.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Participants, 1)
	require.Equal(t, "Bob", loaded.Participants[0].Name)
}

func TestFileStorePing(t *testing.T) {
	st := store.NewFileStore(filepath.Join(t.TempDir(), "data.json"), zap.NewNop())
	require.NoError(t, st.Ping(context.Background()))
	require.NoError(t, st.Close())
}
