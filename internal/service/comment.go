package service

import (
	"context"
	"log"
	"strings"

	"yatube/internal/model"
	"yatube/internal/repository"
)

// CommentService handles adding comments to posts. Commenting requires an
// authenticated caller; the author is always the caller.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// Add creates a comment on the given post. Empty text is rejected before any
// write; an unknown post is NotFound.
func (s *CommentService) Add(ctx context.Context, postID, authorID int64, text string) (*model.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, model.ErrTextRequired
	}

	// Verify the post exists before writing.
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.Create(ctx, postID, authorID, text)
	if err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetByID(ctx, authorID)
	if err == nil {
		comment.Author = &model.UserSummary{ID: author.ID, Username: author.Username}
	}

	log.Printf("[CommentService] User %d commented on post %d", authorID, postID)
	return comment, nil
}
