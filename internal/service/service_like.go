package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/inkspire/internal/logger"
	"github.com/MKhiriev/inkspire/internal/store"
)

type likeService struct {
	postRepository store.PostRepository
	likeRepository store.LikeRepository
	logger         *logger.Logger
}

func NewLikeService(postRepository store.PostRepository, likeRepository store.LikeRepository, logger *logger.Logger) LikeService {
	return &likeService{
		postRepository: postRepository,
		likeRepository: likeRepository,
		logger:         logger,
	}
}

// ToggleLike removes the caller's like when present and adds it otherwise.
// Losing an insert race to an identical toggle still leaves the post liked.
func (s *likeService) ToggleLike(ctx context.Context, callerID, postID int64) (bool, error) {
	if _, err := loadReadable(ctx, s.postRepository.FindPostByID, postID, callerID); err != nil {
		return false, err
	}

	removed, err := s.likeRepository.DeleteLike(ctx, postID, callerID)
	if err != nil {
		return false, err
	}
	if removed {
		return false, nil
	}

	err = s.likeRepository.CreateLike(ctx, postID, callerID)
	if err != nil && !errors.Is(err, store.ErrLikeAlreadyExists) {
		return false, err
	}
	return true, nil
}

func (s *likeService) CountLikes(ctx context.Context, callerID, postID int64) (int64, error) {
	if _, err := loadReadable(ctx, s.postRepository.FindPostByID, postID, callerID); err != nil {
		return 0, err
	}
	return s.likeRepository.CountLikes(ctx, postID)
}
