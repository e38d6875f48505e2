package service

import (
	"context"
	"log"

	"yatube/internal/model"
	"yatube/internal/repository"
)

// FollowService manages the follow-edge set. Both Follow and Unfollow are
// idempotent: repeating either call leaves the edge set unchanged and
// surfaces no error. Duplicate prevention is delegated to the storage unique
// constraint, so two concurrent follows of the same pair cannot both insert.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow creates a follow edge from the caller to the named author. A
// self-follow or an already-existing edge is a silent no-op. The target
// username must exist.
func (s *FollowService) Follow(ctx context.Context, followerID int64, username string) (*model.User, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if followerID == author.ID {
		return author, nil
	}

	created, err := s.followRepo.Create(ctx, followerID, author.ID)
	if err != nil {
		return nil, err
	}
	if !created {
		log.Printf("[FollowService] Follow no-op (edge exists): follower=%d author=%d", followerID, author.ID)
		return author, nil
	}

	log.Printf("[FollowService] Followed: follower=%d author=%d", followerID, author.ID)
	return author, nil
}

// Unfollow deletes the follow edge to the named author if present.
func (s *FollowService) Unfollow(ctx context.Context, followerID int64, username string) (*model.User, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := s.followRepo.Delete(ctx, followerID, author.ID); err != nil {
		return nil, err
	}

	log.Printf("[FollowService] Unfollowed: follower=%d author=%d", followerID, author.ID)
	return author, nil
}

// IsFollowing reports whether the follower currently follows the author.
func (s *FollowService) IsFollowing(ctx context.Context, followerID, authorID int64) (bool, error) {
	return s.followRepo.Exists(ctx, followerID, authorID)
}

// FollowedAuthorIDs returns the ids of every author the follower follows.
func (s *FollowService) FollowedAuthorIDs(ctx context.Context, followerID int64) ([]int64, error) {
	return s.followRepo.AuthorIDs(ctx, followerID)
}
