package store

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdullahAbukalaf/real-estate-reign/storage"
)

// recordingNotifier captures emitted notifications for assertions.
type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	infos     []string
	errors    []string
}

func (r *recordingNotifier) Success(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.successes = append(r.successes, msg)
}

func (r *recordingNotifier) Info(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.infos = append(r.infos, msg)
}

func (r *recordingNotifier) Error(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, msg)
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestFavorites_AddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	notifier := &recordingNotifier{}
	favorites := NewFavorites(ctx, kv, notifier, testLogger())

	require.NoError(t, favorites.Add(ctx, 3))
	require.NoError(t, favorites.Add(ctx, 3))

	assert.Equal(t, []int{3}, favorites.IDs())
	assert.Len(t, notifier.successes, 1, "duplicate add emits nothing")
}

func TestFavorites_RemoveAbsentIsNoOp(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	notifier := &recordingNotifier{}
	favorites := NewFavorites(ctx, kv, notifier, testLogger())

	require.NoError(t, favorites.Add(ctx, 1))
	require.NoError(t, favorites.Remove(ctx, 42))

	assert.Equal(t, []int{1}, favorites.IDs())
	assert.Empty(t, notifier.infos)

	require.NoError(t, favorites.Remove(ctx, 1))
	assert.Empty(t, favorites.IDs())
	assert.Len(t, notifier.infos, 1)
}

func TestFavorites_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	favorites := NewFavorites(ctx, kv, &recordingNotifier{}, testLogger())

	for _, id := range []int{4, 8, 1, 9} {
		require.NoError(t, favorites.Add(ctx, id))
	}

	// A fresh store over the same storage reconstructs the same set.
	reloaded := NewFavorites(ctx, kv, &recordingNotifier{}, testLogger())
	assert.Equal(t, []int{4, 8, 1, 9}, reloaded.IDs())
	assert.True(t, reloaded.IsFavorite(8))
	assert.False(t, reloaded.IsFavorite(2))
}

func TestFavorites_CorruptEntryResetsToEmpty(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	require.NoError(t, kv.Set(ctx, storage.FavoritesKey, []byte(`"not-an-array"`)))

	favorites := NewFavorites(ctx, kv, &recordingNotifier{}, testLogger())
	assert.Empty(t, favorites.IDs())

	// The corrupt entry is overwritten on the next mutation.
	require.NoError(t, favorites.Add(ctx, 7))

	raw, err := kv.Get(ctx, storage.FavoritesKey)
	require.NoError(t, err)

	var ids []int
	require.NoError(t, json.Unmarshal(raw, &ids))
	assert.Equal(t, []int{7}, ids)
}

func TestFavorites_MissingEntryStartsEmpty(t *testing.T) {
	ctx := context.Background()
	favorites := NewFavorites(ctx, storage.NewMemoryKV(), &recordingNotifier{}, testLogger())
	assert.Empty(t, favorites.IDs())
	assert.False(t, favorites.IsFavorite(1))
}
