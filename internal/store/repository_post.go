// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/inkspire/internal/logger"
	"github.com/MKhiriev/inkspire/models"
	sq "github.com/Masterminds/squirrel"
)

type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by db.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost inserts the post and its media keys in one transaction.
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPostQuery(post)
	if err != nil {
		return models.Post{}, buildQueryError(err)
	}

	err = r.db.withTx(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt); err != nil {
			return repositoryError(err, nil)
		}
		if len(post.MediaKeys) == 0 {
			return nil
		}

		mediaQuery, mediaArgs, err := buildInsertPostMediaQuery(post.ID, post.MediaKeys)
		if err != nil {
			return buildQueryError(err)
		}
		if _, err = tx.ExecContext(ctx, mediaQuery, mediaArgs...); err != nil {
			return repositoryError(err, nil)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Int64("user_id", post.UserID).Msg("error inserting post")
		return models.Post{}, err
	}

	// creator name comes from the users join
	return r.FindPostByID(ctx, post.ID)
}

func (r *postRepository) FindPostByID(ctx context.Context, postID int64) (models.Post, error) {
	query, args, err := selectPosts().Where(sq.Eq{"p.id": postID}).ToSql()
	if err != nil {
		return models.Post{}, buildQueryError(err)
	}

	post, err := scanPost(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Post{}, repositoryError(err, ErrPostNotFound)
	}

	posts := []models.Post{post}
	if err = r.loadMedia(ctx, posts); err != nil {
		return models.Post{}, err
	}
	return posts[0], nil
}

// ListPublicPosts returns every non-private post, newest first.
func (r *postRepository) ListPublicPosts(ctx context.Context) ([]models.Post, error) {
	return r.listPosts(ctx, selectPosts().Where(sq.Eq{"p.is_private": false}))
}

// ListPostsByUser returns all posts of userID including private ones.
func (r *postRepository) ListPostsByUser(ctx context.Context, userID int64) ([]models.Post, error) {
	return r.listPosts(ctx, selectPosts().Where(sq.Eq{"p.user_id": userID}))
}

// UpdatePost changes description and visibility. Media is immutable.
func (r *postRepository) UpdatePost(ctx context.Context, post models.Post) (models.Post, error) {
	query, args, err := buildUpdatePostQuery(post)
	if err != nil {
		return models.Post{}, buildQueryError(err)
	}

	if err = execAffectingOne(ctx, r.db.DB, ErrPostNotFound, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postRepository.UpdatePost").Int64("post_id", post.ID).Msg("error updating post")
		return models.Post{}, err
	}

	return r.FindPostByID(ctx, post.ID)
}

func (r *postRepository) DeletePost(ctx context.Context, postID int64) error {
	query, args, err := buildDeleteByIDQuery("posts", postID)
	if err != nil {
		return buildQueryError(err)
	}

	return execAffectingOne(ctx, r.db.DB, ErrPostNotFound, query, args...)
}

func (r *postRepository) listPosts(ctx context.Context, builder sq.SelectBuilder) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, buildQueryError(err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.listPosts").Msg("error selecting posts")
		return nil, repositoryError(err, nil)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		posts = append(posts, post)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if err = r.loadMedia(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// loadMedia fills MediaKeys of posts with a single IN query.
func (r *postRepository) loadMedia(ctx context.Context, posts []models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	index := make(map[int64]int, len(posts))
	ids := make([]int64, 0, len(posts))
	for i := range posts {
		index[posts[i].ID] = i
		ids = append(ids, posts[i].ID)
		posts[i].MediaKeys = []string{}
	}

	query, args, err := buildSelectPostMediaQuery(ids)
	if err != nil {
		return buildQueryError(err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return repositoryError(err, nil)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			postID int64
			key    string
		)
		if err = rows.Scan(&postID, &key); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if i, ok := index[postID]; ok {
			posts[i].MediaKeys = append(posts[i].MediaKeys, key)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return nil
}

func scanPost(row rowScanner) (models.Post, error) {
	var post models.Post
	err := row.Scan(&post.ID, &post.UserID, &post.CreatorName, &post.Description,
		&post.IsPrivate, &post.IsVideo, &post.CreatedAt, &post.UpdatedAt)
	return post, err
}
