package store

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS interview_sessions (
		id UUID PRIMARY KEY,
		date TIMESTAMPTZ NOT NULL,
		type_label TEXT NOT NULL,
		duration_minutes INTEGER NOT NULL,
		average_score INTEGER NOT NULL,
		config JSONB NOT NULL,
		transcript JSONB NOT NULL,
		summary JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_interview_sessions_date ON interview_sessions (date DESC)`,
	`CREATE TABLE IF NOT EXISTS assessments (
		id UUID PRIMARY KEY,
		job_role TEXT NOT NULL,
		created_by TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		type TEXT NOT NULL,
		difficulty TEXT NOT NULL,
		persona TEXT NOT NULL,
		questions JSONB NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS assessment_results (
		id UUID PRIMARY KEY,
		assessment_id UUID NOT NULL REFERENCES assessments(id) ON DELETE CASCADE,
		candidate_name TEXT NOT NULL,
		candidate_email TEXT NOT NULL,
		completed_at TIMESTAMPTZ NOT NULL,
		session JSONB NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_assessment_results_assessment ON assessment_results (assessment_id, completed_at)`,
}

func RunMigration(ctx context.Context, pool *pgxpool.Pool) error {
	for _, s := range migrationStatements {
		stmt := strings.TrimSpace(s)
		if stmt == "" {
			continue
		}
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
