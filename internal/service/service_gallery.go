package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/mirror-gallery/internal/logger"
	"github.com/MKhiriev/mirror-gallery/internal/store"
	"github.com/MKhiriev/mirror-gallery/models"
)

// RecentPostsLimit is how many posts the front page shows.
const RecentPostsLimit = 20

type galleryService struct {
	userRepository store.UserRepository
	postRepository store.PostRepository
	contentLinker  store.ContentLinker

	logger *logger.Logger
}

// NewGalleryService builds the read side of the gallery. contentLinker may be
// nil when attachments are served from the local static root.
func NewGalleryService(userRepository store.UserRepository, postRepository store.PostRepository, contentLinker store.ContentLinker, logger *logger.Logger) GalleryService {
	return &galleryService{
		userRepository: userRepository,
		postRepository: postRepository,
		contentLinker:  contentLinker,
		logger:         logger,
	}
}

func (g *galleryService) RecentPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := g.postRepository.ListRecent(ctx, RecentPostsLimit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*galleryService.RecentPosts").Msg("listing recent posts failed")
		return nil, fmt.Errorf("listing recent posts failed: %w", err)
	}

	return posts, nil
}

// UserPosts returns ErrUserNotFound for an unknown username.
func (g *galleryService) UserPosts(ctx context.Context, username string) (models.User, []models.Post, error) {
	log := logger.FromContext(ctx)

	user, err := g.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, nil, fmt.Errorf("%w: %q", ErrUserNotFound, username)
	}
	if err != nil {
		log.Err(err).Str("func", "*galleryService.UserPosts").Str("username", username).Msg("user search by username failed")
		return models.User{}, nil, fmt.Errorf("user search by username failed: %w", err)
	}

	posts, err := g.postRepository.ListByUser(ctx, user.UID)
	if err != nil {
		log.Err(err).Str("func", "*galleryService.UserPosts").Str("uid", user.UID).Msg("listing user posts failed")
		return models.User{}, nil, fmt.Errorf("listing user posts failed: %w", err)
	}

	return user, posts, nil
}

func (g *galleryService) ContentURL(ctx context.Context, name string) (string, error) {
	if g.contentLinker == nil {
		return "", store.ErrContentNotServed
	}

	link, err := g.contentLinker.ContentURL(ctx, name)
	if err != nil {
		return "", fmt.Errorf("linking content %q: %w", name, err)
	}

	return link, nil
}
