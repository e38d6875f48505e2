package model

import "errors"

// Group is a named, slugged topic a post may belong to.
type Group struct {
	ID          int64  `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Slug        string `db:"slug" json:"slug"`
	Description string `db:"description" json:"description"`
}

// GroupSummary is the group representation embedded in posts.
type GroupSummary struct {
	ID    int64  `db:"id" json:"id"`
	Title string `db:"title" json:"title"`
	Slug  string `db:"slug" json:"slug"`
}

var (
	// ErrGroupNotFound is returned when a group slug or id is unknown
	ErrGroupNotFound = errors.New("group not found")
)
