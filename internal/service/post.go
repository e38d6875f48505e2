package service

import (
	"context"
	"log"
	"strings"

	"yatube/internal/model"
	"yatube/internal/repository"
	"yatube/internal/storage"
)

// PostService handles post creation, editing and detail views. The author is
// always the authenticated caller; edits never reassign authorship, and a
// non-owner editing a post sees NotFound rather than Forbidden.
type PostService struct {
	postRepo    repository.PostRepository
	groupRepo   repository.GroupRepository
	commentRepo repository.CommentRepository
	imageStore  storage.ImageStore
}

func NewPostService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	commentRepo repository.CommentRepository,
	imageStore storage.ImageStore,
) *PostService {
	return &PostService{
		postRepo:    postRepo,
		groupRepo:   groupRepo,
		commentRepo: commentRepo,
		imageStore:  imageStore,
	}
}

func (s *PostService) validateInput(ctx context.Context, input *model.PostInput) error {
	if strings.TrimSpace(input.Text) == "" {
		return model.ErrTextRequired
	}
	if input.GroupID != nil {
		if _, err := s.groupRepo.GetByID(ctx, *input.GroupID); err != nil {
			return err
		}
	}
	return nil
}

// Create inserts a new post authored by the caller.
func (s *PostService) Create(ctx context.Context, authorID int64, input model.PostInput) (*model.Post, error) {
	if err := s.validateInput(ctx, &input); err != nil {
		return nil, err
	}

	post := &model.Post{
		AuthorID: authorID,
		GroupID:  input.GroupID,
		Text:     input.Text,
		ImageURL: input.ImageURL,
		ImageKey: input.ImageKey,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	log.Printf("[PostService] Post created: post=%d author=%d", post.ID, authorID)

	// Re-read to pick up the joined author and group fields.
	return s.postRepo.GetByID(ctx, post.ID)
}

// Edit updates a post's writable fields. The ownership check sits in the
// storage layer's WHERE clause, so a non-owner sees ErrPostNotFound.
// Replacing the image deletes the old object from storage once the row
// update has committed.
func (s *PostService) Edit(ctx context.Context, postID, callerID int64, input model.PostInput) (*model.Post, error) {
	if err := s.validateInput(ctx, &input); err != nil {
		return nil, err
	}

	previous, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	post, err := s.postRepo.Update(ctx, postID, callerID, input)
	if err != nil {
		return nil, err
	}

	if input.ImageKey != nil && previous.ImageKey != nil && *previous.ImageKey != *input.ImageKey {
		if err := s.imageStore.Remove(ctx, *previous.ImageKey); err != nil {
			// The row already points at the new image; the orphaned object
			// only costs storage, so log and move on.
			log.Printf("[PostService] Failed to remove replaced image %s: %v", *previous.ImageKey, err)
		}
	}

	log.Printf("[PostService] Post edited: post=%d author=%d", postID, callerID)
	return post, nil
}

// ForEdit fetches a post for the edit form. Callers who are not the author
// get ErrPostNotFound — the post's existence is not revealed to them.
func (s *PostService) ForEdit(ctx context.Context, postID, callerID int64) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != callerID {
		return nil, model.ErrPostNotFound
	}
	return post, nil
}

// Detail returns a post with its comments (oldest first) and how many posts
// its author has published.
func (s *PostService) Detail(ctx context.Context, postID int64) (*model.PostDetail, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []model.Comment{}
	}

	authorPostCount, err := s.postRepo.CountByAuthors(ctx, []int64{post.AuthorID})
	if err != nil {
		return nil, err
	}

	return &model.PostDetail{
		Post:            *post,
		Comments:        comments,
		AuthorPostCount: authorPostCount,
	}, nil
}

// GroupChoices lists the groups a post may be filed under (create/edit form data).
func (s *PostService) GroupChoices(ctx context.Context) ([]model.Group, error) {
	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if groups == nil {
		groups = []model.Group{}
	}
	return groups, nil
}
