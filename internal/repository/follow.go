package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type followRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create inserts a follow edge. ON CONFLICT DO NOTHING leans on the
// (user_id, author_id) primary key: concurrent inserts for the same pair
// cannot both succeed, so no application-level existence check is needed.
func (r *followRepository) Create(ctx context.Context, followerID, authorID int64) (bool, error) {
	query := `
		INSERT INTO follows (user_id, author_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, author_id) DO NOTHING
	`
	result, err := r.db.ExecContext(ctx, query, followerID, authorID)
	if err != nil {
		return false, fmt.Errorf("failed to create follow: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// Delete removes the follow edge. Deleting an edge that does not exist is a
// no-op, not an error — unfollow is idempotent.
func (r *followRepository) Delete(ctx context.Context, followerID, authorID int64) error {
	query := `DELETE FROM follows WHERE user_id = $1 AND author_id = $2`
	if _, err := r.db.ExecContext(ctx, query, followerID, authorID); err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}
	return nil
}

func (r *followRepository) Exists(ctx context.Context, followerID, authorID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM follows WHERE user_id = $1 AND author_id = $2)`
	var exists bool
	err := r.db.GetContext(ctx, &exists, query, followerID, authorID)
	if err != nil {
		return false, fmt.Errorf("failed to check follow existence: %w", err)
	}
	return exists, nil
}

func (r *followRepository) AuthorIDs(ctx context.Context, followerID int64) ([]int64, error) {
	query := `SELECT author_id FROM follows WHERE user_id = $1`
	var ids []int64
	err := r.db.SelectContext(ctx, &ids, query, followerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get followed author ids: %w", err)
	}
	return ids, nil
}
