package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// Migration represents a database migration
type Migration struct {
	Name string
	SQL  string
}

// Migrations lists every migration in the order it must run. Each statement
// is idempotent so the list can be replayed on every start.
var Migrations = []Migration{
	{
		Name: "create_resumes",
		SQL: `CREATE TABLE IF NOT EXISTS resumes (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL UNIQUE,
			content TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	},
	{
		Name: "create_cover_letters",
		SQL: `CREATE TABLE IF NOT EXISTS cover_letters (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	},
	{
		Name: "index_cover_letters_user_id",
		SQL:  `CREATE INDEX IF NOT EXISTS cover_letters_user_id_idx ON cover_letters (user_id)`,
	},
	{
		Name: "create_profiles",
		SQL: `CREATE TABLE IF NOT EXISTS profiles (
			user_id UUID PRIMARY KEY,
			industry TEXT NOT NULL DEFAULT '',
			sub_industry TEXT NOT NULL DEFAULT '',
			bio TEXT NOT NULL DEFAULT '',
			experience INT NULL,
			skills TEXT[] NOT NULL DEFAULT '{}',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	},
	{
		Name: "create_assessments",
		SQL: `CREATE TABLE IF NOT EXISTS assessments (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			quiz_score DOUBLE PRECISION NOT NULL DEFAULT 0,
			questions JSONB NOT NULL DEFAULT '[]',
			improvement_tip TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	},
	{
		Name: "index_assessments_user_id",
		SQL:  `CREATE INDEX IF NOT EXISTS assessments_user_id_idx ON assessments (user_id, created_at)`,
	},
}

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Starting database migrations")

	for _, m := range Migrations {
		if _, err := pool.Exec(ctx, m.SQL); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}
