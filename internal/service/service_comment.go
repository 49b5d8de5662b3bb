package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/inkspire/internal/logger"
	"github.com/MKhiriev/inkspire/internal/store"
	"github.com/MKhiriev/inkspire/internal/validators"
	"github.com/MKhiriev/inkspire/models"
)

type commentService struct {
	postRepository    store.PostRepository
	commentRepository store.CommentRepository
	validator         validators.Validator
	logger            *logger.Logger
}

func NewCommentService(postRepository store.PostRepository, commentRepository store.CommentRepository, logger *logger.Logger) CommentService {
	return &commentService{
		postRepository:    postRepository,
		commentRepository: commentRepository,
		validator:         validators.NewRequestValidator(),
		logger:            logger,
	}
}

// AddComment comments on a post the caller can read.
func (s *commentService) AddComment(ctx context.Context, callerID, postID int64, req models.CommentRequest) (models.Comment, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Comment{}, fmt.Errorf("invalid comment: %w", err)
	}

	if _, err := loadReadable(ctx, s.postRepository.FindPostByID, postID, callerID); err != nil {
		return models.Comment{}, err
	}

	return s.commentRepository.CreateComment(ctx, models.Comment{
		PostID:  postID,
		UserID:  callerID,
		Content: req.Content,
	})
}

func (s *commentService) ListComments(ctx context.Context, callerID, postID int64) ([]models.Comment, error) {
	if _, err := loadReadable(ctx, s.postRepository.FindPostByID, postID, callerID); err != nil {
		return nil, err
	}
	return s.commentRepository.ListCommentsByPost(ctx, postID)
}

func (s *commentService) UpdateComment(ctx context.Context, callerID, postID, commentID int64, req models.CommentRequest) (models.Comment, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Comment{}, fmt.Errorf("invalid comment: %w", err)
	}

	comment, err := s.ownedComment(ctx, callerID, postID, commentID)
	if err != nil {
		return models.Comment{}, err
	}

	comment.Content = req.Content
	return s.commentRepository.UpdateComment(ctx, comment)
}

func (s *commentService) DeleteComment(ctx context.Context, callerID, postID, commentID int64) error {
	if _, err := s.ownedComment(ctx, callerID, postID, commentID); err != nil {
		return err
	}
	return s.commentRepository.DeleteComment(ctx, commentID)
}

// ownedComment loads a comment of postID and checks the caller wrote it.
// A comment of another post is reported as missing.
func (s *commentService) ownedComment(ctx context.Context, callerID, postID, commentID int64) (models.Comment, error) {
	comment, err := s.commentRepository.FindCommentByID(ctx, commentID)
	if err != nil {
		return models.Comment{}, err
	}
	if comment.PostID != postID {
		return models.Comment{}, store.ErrCommentNotFound
	}
	if err = authorizeOwner(comment, callerID); err != nil {
		return models.Comment{}, err
	}
	return comment, nil
}
