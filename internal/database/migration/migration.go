package migration

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_members",
		SQL: `CREATE TABLE IF NOT EXISTS members (
  id                BIGSERIAL   PRIMARY KEY,
  email             TEXT        NOT NULL UNIQUE,
  password_hash     TEXT        NOT NULL,
  nickname          TEXT        NOT NULL UNIQUE,
  introduction      TEXT        NOT NULL DEFAULT '',
  profile_image_url TEXT        NOT NULL DEFAULT '',
  status            TEXT        NOT NULL CHECK (status IN ('PENDING', 'ACTIVE')),
  activation_token  TEXT,
  created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_members_activation_token",
		SQL:  `CREATE UNIQUE INDEX IF NOT EXISTS idx_members_activation_token ON members (activation_token) WHERE activation_token IS NOT NULL;`,
	},
	{
		Name: "create_table_posts",
		SQL: `CREATE TABLE IF NOT EXISTS posts (
  id              BIGSERIAL   PRIMARY KEY,
  writer_id       BIGINT      NOT NULL REFERENCES members (id) ON DELETE CASCADE,
  writer_nickname TEXT        NOT NULL,
  content         TEXT        NOT NULL,
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_posts_writer_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_posts_writer_created_at ON posts (writer_id, created_at DESC);`,
	},
	{
		Name: "create_table_comments",
		SQL: `CREATE TABLE IF NOT EXISTS comments (
  id                       BIGSERIAL   PRIMARY KEY,
  post_id                  BIGINT      NOT NULL REFERENCES posts (id) ON DELETE CASCADE,
  writer_id                BIGINT      NOT NULL REFERENCES members (id) ON DELETE CASCADE,
  writer_nickname          TEXT        NOT NULL,
  writer_profile_image_url TEXT        NOT NULL DEFAULT '',
  content                  TEXT        NOT NULL,
  created_at               TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at               TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_comments_post_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_comments_post_id ON comments (post_id, created_at);`,
	},
	{
		Name: "create_table_follows",
		SQL: `CREATE TABLE IF NOT EXISTS follows (
  id                         BIGSERIAL   PRIMARY KEY,
  follower_id                BIGINT      NOT NULL REFERENCES members (id) ON DELETE CASCADE,
  follower_nickname          TEXT        NOT NULL,
  follower_profile_image_url TEXT        NOT NULL DEFAULT '',
  followee_id                BIGINT      NOT NULL REFERENCES members (id) ON DELETE CASCADE,
  followee_nickname          TEXT        NOT NULL,
  followee_profile_image_url TEXT        NOT NULL DEFAULT '',
  created_at                 TIMESTAMPTZ NOT NULL DEFAULT now(),
  UNIQUE (follower_id, followee_id),
  CHECK (follower_id <> followee_id)
);`,
	},
	{
		Name: "create_index_follows_followee_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_follows_followee_id ON follows (followee_id);`,
	},
	{
		Name: "create_table_friendships",
		SQL: `CREATE TABLE IF NOT EXISTS friendships (
  id                          BIGSERIAL   PRIMARY KEY,
  requester_id                BIGINT      NOT NULL REFERENCES members (id) ON DELETE CASCADE,
  requester_nickname          TEXT        NOT NULL,
  requester_profile_image_url TEXT        NOT NULL DEFAULT '',
  addressee_id                BIGINT      NOT NULL REFERENCES members (id) ON DELETE CASCADE,
  addressee_nickname          TEXT        NOT NULL,
  addressee_profile_image_url TEXT        NOT NULL DEFAULT '',
  status                      TEXT        NOT NULL CHECK (status IN ('PENDING', 'ACCEPTED', 'REJECTED')),
  created_at                  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at                  TIMESTAMPTZ NOT NULL DEFAULT now(),
  CHECK (requester_id <> addressee_id)
);`,
	},
	{
		Name: "create_index_friendships_pair",
		SQL:  `CREATE UNIQUE INDEX IF NOT EXISTS idx_friendships_pair ON friendships (LEAST(requester_id, addressee_id), GREATEST(requester_id, addressee_id));`,
	},
	{
		Name: "create_table_post_collections",
		SQL: `CREATE TABLE IF NOT EXISTS post_collections (
  id         BIGSERIAL   PRIMARY KEY,
  member_id  BIGINT      NOT NULL REFERENCES members (id) ON DELETE CASCADE,
  name       TEXT        NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_collection_items",
		SQL: `CREATE TABLE IF NOT EXISTS collection_items (
  collection_id BIGINT      NOT NULL REFERENCES post_collections (id) ON DELETE CASCADE,
  post_id       BIGINT      NOT NULL REFERENCES posts (id) ON DELETE CASCADE,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
  PRIMARY KEY (collection_id, post_id)
);`,
	},
	{
		Name: "create_table_images",
		SQL: `CREATE TABLE IF NOT EXISTS images (
  id           BIGSERIAL   PRIMARY KEY,
  uploader_id  BIGINT      NOT NULL REFERENCES members (id) ON DELETE CASCADE,
  post_id      BIGINT      REFERENCES posts (id) ON DELETE CASCADE,
  storage_path TEXT        NOT NULL UNIQUE,
  content_type TEXT        NOT NULL,
  size         BIGINT      NOT NULL CHECK (size > 0),
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_images_post_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_images_post_id ON images (post_id);`,
	},
	{
		Name: "create_table_member_events",
		SQL: `CREATE TABLE IF NOT EXISTS member_events (
  id             BIGSERIAL   PRIMARY KEY,
  member_id      BIGINT      NOT NULL REFERENCES members (id) ON DELETE CASCADE,
  type           TEXT        NOT NULL,
  actor_id       BIGINT      NOT NULL,
  actor_nickname TEXT        NOT NULL,
  target_id      BIGINT      NOT NULL,
  message        TEXT        NOT NULL,
  read           BOOLEAN     NOT NULL DEFAULT false,
  created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_member_events_member_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_member_events_member_id ON member_events (member_id, created_at DESC);`,
	},
}

// sentinelTable is the last table created; its presence means the schema is current.
const sentinelTable = "public.member_events"

// EnsureMigrated checks whether the schema exists and runs the migration steps if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, logger *slog.Logger, dbHost string) error {
	start := time.Now()
	logger = logger.With("component", "database", "db_host", dbHost)

	logger.Info("db_migration_check", "status", "starting")

	var exists bool
	err := db.QueryRowContext(ctx, "SELECT to_regclass($1) IS NOT NULL", sentinelTable).Scan(&exists)
	if err != nil {
		logger.Error("db_migration_failed",
			"status", "error",
			"error_message", fmt.Sprintf("failed to check sentinel table: %v", err),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logger.Info("db_migration_skip",
			"status", "success",
			"reason", "schema already exists, skipping migration",
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil
	}

	logger.Info("db_migration_start", "status", "in_progress", "steps", len(steps))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			logger.Error("db_migration_failed",
				"status", "error",
				"migration_step", step.Name,
				"error_message", err.Error(),
				"duration_ms", time.Since(start).Milliseconds(),
				"step_duration_ms", time.Since(stepStart).Milliseconds(),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logger.Info("db_migration_step",
			"status", "success",
			"migration_step", step.Name,
			"step_duration_ms", time.Since(stepStart).Milliseconds(),
		)
	}

	logger.Info("db_migration_success",
		"status", "success",
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
