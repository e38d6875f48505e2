package model

import "time"

// Follow is a directed edge: the follower receives the author's posts in
// their personalized feed. At most one edge exists per (user, author) pair;
// the pair is unique at the storage level.
type Follow struct {
	UserID    int64     `db:"user_id" json:"user_id"`
	AuthorID  int64     `db:"author_id" json:"author_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
