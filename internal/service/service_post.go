package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/inkspire/internal/logger"
	"github.com/MKhiriev/inkspire/internal/store"
	"github.com/MKhiriev/inkspire/internal/utils"
	"github.com/MKhiriev/inkspire/internal/validators"
	"github.com/MKhiriev/inkspire/models"
)

type postService struct {
	postRepository store.PostRepository
	files          store.FileStorage
	validator      validators.Validator
	keys           *utils.UUIDGenerator
	logger         *logger.Logger
}

func NewPostService(postRepository store.PostRepository, files store.FileStorage, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		files:          files,
		validator:      validators.NewRequestValidator(),
		keys:           utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// CreatePost stores the media of post and publishes it for callerID.
// Stored blobs are removed again when the post cannot be saved.
func (s *postService) CreatePost(ctx context.Context, callerID int64, post models.NewPost) (models.Post, error) {
	if err := s.validator.Validate(ctx, post); err != nil {
		return models.Post{}, fmt.Errorf("invalid post: %w", err)
	}

	keys := make([]string, 0, len(post.Media))
	for _, file := range post.Media {
		key, err := saveFile(ctx, s.files, s.keys, file)
		if err != nil {
			removeFiles(ctx, s.files, keys...)
			return models.Post{}, err
		}
		keys = append(keys, key)
	}

	created, err := s.postRepository.CreatePost(ctx, models.Post{
		UserID:      callerID,
		Description: post.Description,
		IsPrivate:   post.IsPrivate,
		IsVideo:     len(post.Media) == 1 && post.Media[0].IsVideo(),
		MediaKeys:   keys,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postService.CreatePost").Int64("user_id", callerID).Msg("error saving post")
		removeFiles(ctx, s.files, keys...)
		return models.Post{}, err
	}

	return withMediaURLs(created), nil
}

func (s *postService) GetPost(ctx context.Context, callerID, postID int64) (models.Post, error) {
	post, err := loadReadable(ctx, s.postRepository.FindPostByID, postID, callerID)
	if err != nil {
		return models.Post{}, err
	}
	return withMediaURLs(post), nil
}

func (s *postService) ListPublicPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := s.postRepository.ListPublicPosts(ctx)
	if err != nil {
		return nil, err
	}
	return withMediaURLsAll(posts), nil
}

func (s *postService) ListUserPosts(ctx context.Context, userID int64) ([]models.Post, error) {
	posts, err := s.postRepository.ListPostsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return withMediaURLsAll(posts), nil
}

func (s *postService) UpdatePost(ctx context.Context, callerID, postID int64, req models.UpdatePostRequest) (models.Post, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Post{}, fmt.Errorf("invalid post update: %w", err)
	}

	post, err := loadOwned(ctx, s.postRepository.FindPostByID, postID, callerID)
	if err != nil {
		return models.Post{}, err
	}

	post.Description = req.Description
	post.IsPrivate = req.IsPrivate

	updated, err := s.postRepository.UpdatePost(ctx, post)
	if err != nil {
		return models.Post{}, err
	}
	return withMediaURLs(updated), nil
}

// DeletePost removes the post with its comments and likes, then its media.
func (s *postService) DeletePost(ctx context.Context, callerID, postID int64) error {
	post, err := loadOwned(ctx, s.postRepository.FindPostByID, postID, callerID)
	if err != nil {
		return err
	}

	if err = s.postRepository.DeletePost(ctx, postID); err != nil {
		return err
	}

	removeFiles(ctx, s.files, post.MediaKeys...)
	return nil
}

func withMediaURLs(post models.Post) models.Post {
	post.MediaURLs = make([]string, 0, len(post.MediaKeys))
	for _, key := range post.MediaKeys {
		post.MediaURLs = append(post.MediaURLs, MediaURL(key))
	}
	return post
}

func withMediaURLsAll(posts []models.Post) []models.Post {
	for i := range posts {
		posts[i] = withMediaURLs(posts[i])
	}
	return posts
}
