package store

import (
	"context"

	"github.com/MKhiriev/inkspire/internal/logger"
)

type likeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewLikeRepository constructs a [LikeRepository] backed by db.
func NewLikeRepository(db *DB, logger *logger.Logger) LikeRepository {
	logger.Debug().Msg("creating like repository")
	return &likeRepository{
		db:     db,
		logger: logger,
	}
}

// CreateLike returns [ErrLikeAlreadyExists] when the user already liked the post.
func (r *likeRepository) CreateLike(ctx context.Context, postID, userID int64) error {
	query, args, err := buildInsertLikeQuery(postID, userID)
	if err != nil {
		return buildQueryError(err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return repositoryError(err, nil)
	}
	return nil
}

func (r *likeRepository) DeleteLike(ctx context.Context, postID, userID int64) (bool, error) {
	query, args, err := buildDeleteLikeQuery(postID, userID)
	if err != nil {
		return false, buildQueryError(err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*likeRepository.DeleteLike").Msg("error deleting like")
		return false, repositoryError(err, nil)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, repositoryError(err, nil)
	}
	return affected > 0, nil
}

func (r *likeRepository) CountLikes(ctx context.Context, postID int64) (int64, error) {
	query, args, err := buildCountLikesQuery(postID)
	if err != nil {
		return 0, buildQueryError(err)
	}

	var count int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, repositoryError(err, nil)
	}
	return count, nil
}
