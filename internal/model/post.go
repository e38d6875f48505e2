package model

import (
	"errors"
	"time"
)

// Post represents a published entry. The author is fixed at creation and
// never reassigned by edits.
type Post struct {
	ID        int64     `db:"id" json:"id"`
	AuthorID  int64     `db:"author_id" json:"-"`
	GroupID   *int64    `db:"group_id" json:"-"`
	Text      string    `db:"text" json:"text"`
	ImageURL  *string   `db:"image_url" json:"image_url,omitempty"`
	ImageKey  *string   `db:"image_key" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	// Joined fields (not in posts table)
	Author *UserSummary  `json:"author,omitempty"`
	Group  *GroupSummary `json:"group,omitempty"`
}

// Page is an ordered slice of posts plus pagination metadata. Posts are
// sorted by (created_at DESC, id DESC).
type Page struct {
	Posts      []Post `json:"posts"`
	Number     int    `json:"page"`
	TotalPages int    `json:"total_pages"`
	TotalPosts int    `json:"total_posts"`
	HasNext    bool   `json:"has_next"`
	HasPrev    bool   `json:"has_prev"`
}

// GroupPage is the group feed response: the group plus its page of posts.
type GroupPage struct {
	Group Group `json:"group"`
	Page  Page  `json:"page"`
}

// ProfilePage is the author feed response. Following is only meaningful when
// the viewer is authenticated.
type ProfilePage struct {
	Author    UserSummary `json:"author"`
	Following bool        `json:"following"`
	Page      Page        `json:"page"`
}

// PostDetail is the single-post response with its comments.
type PostDetail struct {
	Post            Post      `json:"post"`
	Comments        []Comment `json:"comments"`
	AuthorPostCount int       `json:"author_post_count"`
}

// PostInput carries the writable post fields from create/edit forms.
type PostInput struct {
	Text    string
	GroupID *int64

	// Set when a new image was uploaded with the form.
	ImageURL *string
	ImageKey *string
}

// Post constraints
const (
	PostTextField  = "text"
	PostGroupField = "group"
	PostImageField = "image"
)

// Post errors
var (
	ErrPostNotFound = errors.New("post not found")
	ErrTextRequired = errors.New("text is required")
)
