package session

import (
	"context"
	goCache "github.com/patrickmn/go-cache"
	"github.com/umalmyha/customers-console/internal/ui"
	"time"
)

const defaultCleanupInterval = 10 * time.Minute

type memoryFormStore struct {
	cache *goCache.Cache
	ttl   time.Duration
}

func NewMemoryFormStore(ttl time.Duration) FormStore {
	return &memoryFormStore{
		cache: goCache.New(ttl, defaultCleanupInterval),
		ttl:   ttl,
	}
}

func (s *memoryFormStore) FindByID(_ context.Context, id string) (*ui.Snapshot, error) {
	v, ok := s.cache.Get(key(id))
	if !ok {
		return nil, nil
	}

	snap := clone(v.(ui.Snapshot))
	return &snap, nil
}

func (s *memoryFormStore) Save(_ context.Context, id string, snap ui.Snapshot) error {
	s.cache.Set(key(id), clone(snap), s.ttl)
	return nil
}

func (s *memoryFormStore) DeleteByID(_ context.Context, id string) error {
	s.cache.Delete(key(id))
	return nil
}

func clone(snap ui.Snapshot) ui.Snapshot {
	return ui.FromSnapshot(snap).Snapshot()
}
