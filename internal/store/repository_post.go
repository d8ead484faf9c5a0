package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/mirror-gallery/internal/logger"
	"github.com/MKhiriev/mirror-gallery/models"
)

type postRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost inserts post and returns it with the assigned id. A transient
// failure (see [ErrorClassificator]) is retried once.
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreatePostQuery(r.db.builder, post)
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&post.ID)
	if err != nil && r.db.retryable(err) {
		log.Warn().Err(err).Str("func", "*postRepository.CreatePost").Msg("transient error, retrying insert")
		err = r.db.QueryRowContext(ctx, query, args...).Scan(&post.ID)
	}
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error inserting post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if post.ID == 0 {
		return models.Post{}, ErrPostNotSaved
	}

	return post, nil
}

func (r *postRepository) ListRecent(ctx context.Context, limit uint64) ([]models.Post, error) {
	return r.list(ctx, "", limit)
}

func (r *postRepository) ListByUser(ctx context.Context, uid string) ([]models.Post, error) {
	return r.list(ctx, uid, 0)
}

func (r *postRepository) list(ctx context.Context, uid string, limit uint64) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPostsQuery(r.db.builder, uid, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.list").Msg("error listing posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		var p models.Post
		if err = rows.Scan(
			&p.ID,
			&p.AttachmentID,
			&p.TimelineID,
			&p.ContentType,
			&p.ContentPath,
			&p.CreatedAt,
			&p.UserUID,
			&p.Username,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}
