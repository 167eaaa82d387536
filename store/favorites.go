// Package store holds the two stateful stores of the system: the favorite
// set and the session. Both are constructed once at process root and passed
// to their consumers explicitly.
package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/AbdullahAbukalaf/real-estate-reign/notify"
	"github.com/AbdullahAbukalaf/real-estate-reign/storage"
)

// Favorites maintains the set of favorited property ids and mirrors every
// mutation to durable storage as a full JSON array. The set is scoped to the
// storage profile, not to the logged-in session.
type Favorites struct {
	mu       sync.RWMutex
	present  map[int]struct{}
	order    []int
	kv       storage.KV
	notifier notify.Notifier
	log      *logrus.Logger
}

func NewFavorites(ctx context.Context, kv storage.KV, notifier notify.Notifier, log *logrus.Logger) *Favorites {
	f := &Favorites{
		present:  make(map[int]struct{}),
		kv:       kv,
		notifier: notifier,
		log:      log,
	}

	raw, err := kv.Get(ctx, storage.FavoritesKey)
	if err != nil {
		if err != storage.ErrNotFound {
			log.Warnf("Failed to read favorites from storage: %v", err)
		}
		return f
	}

	ids, err := decodeFavorites(raw)
	if err != nil {
		// Corrupt entry: start empty. The next mutation overwrites it.
		log.Warnf("Discarding corrupt favorites entry: %v", err)
		return f
	}

	for _, id := range ids {
		if _, ok := f.present[id]; ok {
			continue
		}
		f.present[id] = struct{}{}
		f.order = append(f.order, id)
	}
	return f
}

// decodeFavorites is the typed parse step for the persisted favorites blob:
// anything that is not a JSON array of integers is a failure.
func decodeFavorites(raw []byte) ([]int, error) {
	var ids []int
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// Add inserts id into the set and persists it. Adding a present id is a
// no-op and emits nothing.
func (f *Favorites) Add(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.present[id]; ok {
		return nil
	}

	f.present[id] = struct{}{}
	f.order = append(f.order, id)

	if err := f.persist(ctx); err != nil {
		return err
	}
	f.notifier.Success("Property added to favorites!")
	return nil
}

// Remove deletes id from the set and persists it. Removing an absent id is a
// no-op.
func (f *Favorites) Remove(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.present[id]; !ok {
		return nil
	}

	delete(f.present, id)
	for i, existing := range f.order {
		if existing == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}

	if err := f.persist(ctx); err != nil {
		return err
	}
	f.notifier.Info("Property removed from favorites")
	return nil
}

func (f *Favorites) IsFavorite(id int) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	_, ok := f.present[id]
	return ok
}

// IDs returns the favorited ids in insertion order.
func (f *Favorites) IDs() []int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]int, len(f.order))
	copy(out, f.order)
	return out
}

// persist re-serializes the whole set. Callers hold the write lock.
func (f *Favorites) persist(ctx context.Context) error {
	ids := f.order
	if ids == nil {
		ids = []int{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	if err := f.kv.Set(ctx, storage.FavoritesKey, raw); err != nil {
		f.log.Errorf("Failed to persist favorites: %v", err)
		return err
	}
	return nil
}
