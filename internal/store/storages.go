package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/mirror-gallery/internal/config"
	"github.com/MKhiriev/mirror-gallery/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages aggregates every persistence backend used by the services.
type Storages struct {
	UserRepository           UserRepository
	PostRepository           PostRepository
	ContentStore             ContentStore
	ContentLinker            ContentLinker
	PendingRegistrationStore PendingRegistrationStore

	closers []func() error
}

// NewStorages connects the database, applies migrations and builds the
// content and pending registration stores selected by cfg.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}
	s := &Storages{closers: []func() error{db.Close}}

	if err = db.Migrate(); err != nil {
		_ = s.Close()
		return nil, err
	}
	log.Info().Str("func", "NewStorages").Str("driver", cfg.DB.Driver).Msg("migrations applied")

	s.UserRepository = NewUserRepository(db, log)
	s.PostRepository = NewPostRepository(db, log)

	switch cfg.ContentBackend {
	case config.ContentBackendS3:
		s.ContentStore, err = NewS3ContentStore(ctx, cfg.S3, log)
	default:
		s.ContentStore, err = NewFileContentStore(cfg.Files.UserContentDir, log)
	}
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	if linker, ok := s.ContentStore.(ContentLinker); ok {
		s.ContentLinker = linker
	}

	if cfg.Redis.Addr == "" {
		log.Info().Str("func", "NewStorages").Msg("redis not configured, pending registrations kept in memory")
		s.PendingRegistrationStore = NewMemoryPendingRegistrationStore()
		return s, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	s.closers = append(s.closers, rdb.Close)
	if err = rdb.Ping(ctx).Err(); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("connecting redis: %w", err)
	}
	s.PendingRegistrationStore = NewRedisPendingRegistrationStore(rdb)

	return s, nil
}

// Close releases database and cache connections.
func (s *Storages) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i]())
	}
	s.closers = nil
	return errors.Join(errs...)
}
