package postgres

import (
	"time"

	"BlogAPI/internal/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id         TEXT PRIMARY KEY,
	email      TEXT NOT NULL UNIQUE,
	password   TEXT NOT NULL,
	full_name  TEXT NOT NULL,
	avatar_url TEXT,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS blog_categories (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL UNIQUE,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS blogs (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	content     TEXT NOT NULL,
	image_url   TEXT NOT NULL,
	creator_id  TEXT NOT NULL,
	category_id TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_blogs_created_at ON blogs (created_at DESC);
`

const seedCategory = `
INSERT INTO blog_categories (id, name, created_at, updated_at)
VALUES ($1, $2, $3, $3)
ON CONFLICT (name) DO NOTHING
`

// Bootstrap creates the tables if they are missing and seeds the closed
// category set. Safe to run on every startup.
func Bootstrap(db *sqlx.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return err
	}

	now := time.Now()
	for _, name := range entity.CategoryNames() {
		if _, err := db.Exec(seedCategory, uuid.NewString(), string(name), now); err != nil {
			return err
		}
	}

	return nil
}
