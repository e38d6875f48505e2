package repository

import (
	"context"

	"yatube/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

type GroupRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Group, error)
	GetBySlug(ctx context.Context, slug string) (*model.Group, error)
	List(ctx context.Context) ([]model.Group, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, postID int64) (*model.Post, error)
	// Update rewrites the writable fields of a post owned by authorID.
	// A non-owner caller gets model.ErrPostNotFound, indistinguishable from
	// a missing post.
	Update(ctx context.Context, postID, authorID int64, input model.PostInput) (*model.Post, error)

	CountAll(ctx context.Context) (int, error)
	ListAll(ctx context.Context, limit, offset int) ([]model.Post, error)
	CountByGroup(ctx context.Context, groupID int64) (int, error)
	ListByGroup(ctx context.Context, groupID int64, limit, offset int) ([]model.Post, error)
	CountByAuthors(ctx context.Context, authorIDs []int64) (int, error)
	ListByAuthors(ctx context.Context, authorIDs []int64, limit, offset int) ([]model.Post, error)
}

type CommentRepository interface {
	Create(ctx context.Context, postID, authorID int64, text string) (*model.Comment, error)
	// ListByPost returns all comments for a post in ascending
	// (created_at, id) order.
	ListByPost(ctx context.Context, postID int64) ([]model.Comment, error)
}

type FollowRepository interface {
	// Create inserts a follow edge. Returns false when the edge already
	// existed; uniqueness is enforced by the storage constraint, so
	// concurrent calls cannot both insert.
	Create(ctx context.Context, followerID, authorID int64) (bool, error)
	// Delete removes the edge if present. Deleting an absent edge is a no-op.
	Delete(ctx context.Context, followerID, authorID int64) error
	Exists(ctx context.Context, followerID, authorID int64) (bool, error)
	// AuthorIDs returns the ids of all authors the follower currently follows.
	AuthorIDs(ctx context.Context, followerID int64) ([]int64, error)
}
