package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"yatube/internal/model"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

// postRow scans a post joined with its author and optional group.
type postRow struct {
	ID             int64     `db:"id"`
	AuthorID       int64     `db:"author_id"`
	GroupID        *int64    `db:"group_id"`
	Text           string    `db:"text"`
	ImageURL       *string   `db:"image_url"`
	ImageKey       *string   `db:"image_key"`
	CreatedAt      time.Time `db:"created_at"`
	AuthorUsername string    `db:"author_username"`
	GroupTitle     *string   `db:"group_title"`
	GroupSlug      *string   `db:"group_slug"`
}

// selectPost joins author and group so feed pages render without N+1 lookups.
// Feed ordering is explicit everywhere: (created_at DESC, id DESC) — the id
// tiebreaker keeps pages deterministic when timestamps collide.
const selectPost = `
	SELECT p.id, p.author_id, p.group_id, p.text, p.image_url, p.image_key, p.created_at,
	       u.username AS author_username,
	       g.title AS group_title, g.slug AS group_slug
	FROM posts p
	JOIN users u ON u.id = p.author_id
	LEFT JOIN groups g ON g.id = p.group_id
`

func (row postRow) toPost() model.Post {
	post := model.Post{
		ID:        row.ID,
		AuthorID:  row.AuthorID,
		GroupID:   row.GroupID,
		Text:      row.Text,
		ImageURL:  row.ImageURL,
		ImageKey:  row.ImageKey,
		CreatedAt: row.CreatedAt,
		Author: &model.UserSummary{
			ID:       row.AuthorID,
			Username: row.AuthorUsername,
		},
	}
	if row.GroupID != nil && row.GroupTitle != nil && row.GroupSlug != nil {
		post.Group = &model.GroupSummary{
			ID:    *row.GroupID,
			Title: *row.GroupTitle,
			Slug:  *row.GroupSlug,
		}
	}
	return post
}

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	query := `
		INSERT INTO posts (author_id, group_id, text, image_url, image_key)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		post.AuthorID, post.GroupID, post.Text, post.ImageURL, post.ImageKey).
		Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, postID int64) (*model.Post, error) {
	query := selectPost + ` WHERE p.id = $1`
	var row postRow
	err := r.db.GetContext(ctx, &row, query, postID)
	if err == sql.ErrNoRows {
		return nil, model.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	post := row.toPost()
	return &post, nil
}

// Update rewrites the writable fields of a post. The author check lives in
// the WHERE clause, so a non-owner caller and a missing post are both a
// zero-row update and surface identically as ErrPostNotFound — existence is
// never leaked to non-owners. Authorship itself is never reassigned.
func (r *postRepository) Update(ctx context.Context, postID, authorID int64, input model.PostInput) (*model.Post, error) {
	query := `
		UPDATE posts
		SET text = $1,
		    group_id = $2,
		    image_url = COALESCE($3, image_url),
		    image_key = COALESCE($4, image_key)
		WHERE id = $5 AND author_id = $6
	`
	result, err := r.db.ExecContext(ctx, query,
		input.Text, input.GroupID, input.ImageURL, input.ImageKey, postID, authorID)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return nil, model.ErrPostNotFound
	}

	return r.GetByID(ctx, postID)
}

func (r *postRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM posts`)
	if err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return count, nil
}

func (r *postRepository) ListAll(ctx context.Context, limit, offset int) ([]model.Post, error) {
	query := selectPost + `
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $1 OFFSET $2
	`
	return r.listPosts(ctx, query, limit, offset)
}

func (r *postRepository) CountByGroup(ctx context.Context, groupID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM posts WHERE group_id = $1`, groupID)
	if err != nil {
		return 0, fmt.Errorf("count group posts: %w", err)
	}
	return count, nil
}

func (r *postRepository) ListByGroup(ctx context.Context, groupID int64, limit, offset int) ([]model.Post, error) {
	query := selectPost + `
		WHERE p.group_id = $3
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $1 OFFSET $2
	`
	return r.listPosts(ctx, query, limit, offset, groupID)
}

func (r *postRepository) CountByAuthors(ctx context.Context, authorIDs []int64) (int, error) {
	if len(authorIDs) == 0 {
		return 0, nil
	}
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM posts WHERE author_id = ANY($1)`, pq.Array(authorIDs))
	if err != nil {
		return 0, fmt.Errorf("count author posts: %w", err)
	}
	return count, nil
}

func (r *postRepository) ListByAuthors(ctx context.Context, authorIDs []int64, limit, offset int) ([]model.Post, error) {
	if len(authorIDs) == 0 {
		return []model.Post{}, nil
	}
	query := selectPost + `
		WHERE p.author_id = ANY($3)
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $1 OFFSET $2
	`
	return r.listPosts(ctx, query, limit, offset, pq.Array(authorIDs))
}

func (r *postRepository) listPosts(ctx context.Context, query string, limit, offset int, extra ...interface{}) ([]model.Post, error) {
	args := append([]interface{}{limit, offset}, extra...)

	var rows []postRow
	err := r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	posts := make([]model.Post, len(rows))
	for i, row := range rows {
		posts[i] = row.toPost()
	}
	return posts, nil
}
