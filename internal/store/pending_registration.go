package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/mirror-gallery/models"
	"github.com/redis/go-redis/v9"
)

const pendingKeyPrefix = "gallery:pending:"

// redisPendingStore keeps pending registrations in Redis. Take uses GETDEL so
// a record is handed out at most once even across replicas.
type redisPendingStore struct {
	rdb redis.Cmdable
}

func NewRedisPendingRegistrationStore(rdb redis.Cmdable) PendingRegistrationStore {
	return &redisPendingStore{rdb: rdb}
}

func (s *redisPendingStore) Put(ctx context.Context, key string, rec models.PendingRegistration, ttl time.Duration) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding pending registration: %w", err)
	}

	if err = s.rdb.Set(ctx, pendingKeyPrefix+key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("storing pending registration: %w", err)
	}
	return nil
}

func (s *redisPendingStore) Take(ctx context.Context, key string) (models.PendingRegistration, bool, error) {
	payload, err := s.rdb.GetDel(ctx, pendingKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.PendingRegistration{}, false, nil
	}
	if err != nil {
		return models.PendingRegistration{}, false, fmt.Errorf("taking pending registration: %w", err)
	}

	var rec models.PendingRegistration
	if err = json.Unmarshal(payload, &rec); err != nil {
		return models.PendingRegistration{}, false, fmt.Errorf("decoding pending registration: %w", err)
	}
	return rec, true, nil
}

type pendingEntry struct {
	rec     models.PendingRegistration
	expires time.Time
}

// memoryPendingStore is the single-process fallback when no Redis is configured.
type memoryPendingStore struct {
	mu      sync.Mutex
	entries map[string]pendingEntry
	now     func() time.Time
}

func NewMemoryPendingRegistrationStore() PendingRegistrationStore {
	return &memoryPendingStore{
		entries: make(map[string]pendingEntry),
		now:     time.Now,
	}
}

func (s *memoryPendingStore) Put(_ context.Context, key string, rec models.PendingRegistration, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, e := range s.entries {
		if now.After(e.expires) {
			delete(s.entries, k)
		}
	}

	s.entries[key] = pendingEntry{rec: rec, expires: now.Add(ttl)}
	return nil
}

func (s *memoryPendingStore) Take(_ context.Context, key string) (models.PendingRegistration, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return models.PendingRegistration{}, false, nil
	}
	delete(s.entries, key)

	if s.now().After(e.expires) {
		return models.PendingRegistration{}, false, nil
	}
	return e.rec, true, nil
}
