package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schema bootstraps the tables on startup. The follows table carries the
// unique (user_id, author_id) constraint the follow write path relies on:
// duplicate-edge prevention lives here, not in application checks.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id              BIGSERIAL PRIMARY KEY,
	username        TEXT NOT NULL UNIQUE,
	password_hashed TEXT NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS groups (
	id          BIGSERIAL PRIMARY KEY,
	title       TEXT NOT NULL,
	slug        TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS posts (
	id         BIGSERIAL PRIMARY KEY,
	author_id  BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	group_id   BIGINT REFERENCES groups(id) ON DELETE SET NULL,
	text       TEXT NOT NULL,
	image_url  TEXT,
	image_key  TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_posts_feed ON posts (created_at DESC, id DESC);
CREATE INDEX IF NOT EXISTS idx_posts_author ON posts (author_id, created_at DESC, id DESC);
CREATE INDEX IF NOT EXISTS idx_posts_group ON posts (group_id, created_at DESC, id DESC);

CREATE TABLE IF NOT EXISTS comments (
	id         BIGSERIAL PRIMARY KEY,
	post_id    BIGINT NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
	author_id  BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	text       TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_comments_post ON comments (post_id, created_at ASC, id ASC);

CREATE TABLE IF NOT EXISTS follows (
	user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	author_id  BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (user_id, author_id)
);
`

// EnsureSchema creates the tables and indexes if they do not exist yet.
func EnsureSchema(db *sqlx.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
