package model

import (
	"errors"
	"time"
)

// Comment represents a comment on a post. Comments are displayed in
// ascending (created_at, id) order.
type Comment struct {
	ID        int64        `db:"id" json:"id"`
	PostID    int64        `db:"post_id" json:"post_id"`
	AuthorID  int64        `db:"author_id" json:"-"`
	Text      string       `db:"text" json:"text"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
	Author    *UserSummary `json:"author,omitempty"` // Joined field
}

// CreateCommentRequest is the form body for adding a comment.
type CreateCommentRequest struct {
	Text string `json:"text"`
}

// Comment errors
var (
	ErrCommentNotFound = errors.New("comment not found")
)
