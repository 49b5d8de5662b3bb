package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/inkspire/internal/logger"
	"github.com/MKhiriev/inkspire/models"
	sq "github.com/Masterminds/squirrel"
)

type commentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCommentRepository constructs a [CommentRepository] backed by db.
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	query, args, err := buildInsertCommentQuery(comment)
	if err != nil {
		return models.Comment{}, buildQueryError(err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*commentRepository.CreateComment").
			Int64("post_id", comment.PostID).Msg("error inserting comment")
		return models.Comment{}, repositoryError(err, nil)
	}

	return r.FindCommentByID(ctx, comment.ID)
}

func (r *commentRepository) FindCommentByID(ctx context.Context, commentID int64) (models.Comment, error) {
	query, args, err := selectComments().Where(sq.Eq{"c.id": commentID}).ToSql()
	if err != nil {
		return models.Comment{}, buildQueryError(err)
	}

	comment, err := scanComment(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Comment{}, repositoryError(err, ErrCommentNotFound)
	}
	return comment, nil
}

// ListCommentsByPost returns the comments of postID, oldest first.
func (r *commentRepository) ListCommentsByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	query, args, err := selectComments().Where(sq.Eq{"c.post_id": postID}).ToSql()
	if err != nil {
		return nil, buildQueryError(err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*commentRepository.ListCommentsByPost").Msg("error selecting comments")
		return nil, repositoryError(err, nil)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		comments = append(comments, comment)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return comments, nil
}

// UpdateComment replaces the content of the comment and refreshes
// UpdatedAt.
func (r *commentRepository) UpdateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	query, args, err := buildUpdateCommentQuery(comment)
	if err != nil {
		return models.Comment{}, buildQueryError(err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&comment.UpdatedAt); err != nil {
		return models.Comment{}, repositoryError(err, ErrCommentNotFound)
	}
	return comment, nil
}

func (r *commentRepository) DeleteComment(ctx context.Context, commentID int64) error {
	query, args, err := buildDeleteByIDQuery("comments", commentID)
	if err != nil {
		return buildQueryError(err)
	}

	return execAffectingOne(ctx, r.db.DB, ErrCommentNotFound, query, args...)
}

func scanComment(row rowScanner) (models.Comment, error) {
	var c models.Comment
	err := row.Scan(&c.ID, &c.PostID, &c.UserID, &c.AuthorName, &c.Content, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}
