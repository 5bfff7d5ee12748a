package store

import (
	"context"

	"github.com/interprepai/interprep/internal/store"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) store.Store {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) AppendSession(ctx context.Context, session store.InterviewSession) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO interview_sessions (id, date, type_label, duration_minutes, average_score, config, transcript, summary)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		session.ID, session.Date, session.TypeLabel, session.DurationMinutes,
		session.AverageScore, session.Config, session.Transcript, session.Summary)
	return err
}

func (s *PostgresStore) ListSessions(ctx context.Context) ([]store.InterviewSession, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, date, type_label, duration_minutes, average_score, config, transcript, summary
		 FROM interview_sessions ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []store.InterviewSession
	for rows.Next() {
		var sess store.InterviewSession
		if err := rows.Scan(&sess.ID, &sess.Date, &sess.TypeLabel, &sess.DurationMinutes,
			&sess.AverageScore, &sess.Config, &sess.Transcript, &sess.Summary); err != nil {
			return nil, err
		}
		list = append(list, sess)
	}
	return list, rows.Err()
}

func (s *PostgresStore) CreateAssessment(ctx context.Context, a store.Assessment) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO assessments (id, job_role, created_by, created_at, type, difficulty, persona, questions)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.JobRole, a.CreatedBy, a.CreatedAt, a.Type, a.Difficulty, a.Persona, a.Questions)
	return err
}

func (s *PostgresStore) ListAssessments(ctx context.Context) ([]store.Assessment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, job_role, created_by, created_at, type, difficulty, persona, questions
		 FROM assessments ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []store.Assessment
	for rows.Next() {
		var a store.Assessment
		if err := rows.Scan(&a.ID, &a.JobRole, &a.CreatedBy, &a.CreatedAt,
			&a.Type, &a.Difficulty, &a.Persona, &a.Questions); err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// DeleteAssessment relies on the results table's ON DELETE CASCADE to remove
// every recorded result along with the assessment.
func (s *PostgresStore) DeleteAssessment(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM assessments WHERE id = $1`, id)
	return err
}

func (s *PostgresStore) AppendAssessmentResult(ctx context.Context, r store.AssessmentResult) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO assessment_results (id, assessment_id, candidate_name, candidate_email, completed_at, session)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		r.ID, r.AssessmentID, r.CandidateName, r.CandidateEmail, r.CompletedAt, r.Session)
	return err
}

func (s *PostgresStore) ListAssessmentResults(ctx context.Context, assessmentID string) ([]store.AssessmentResult, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, assessment_id, candidate_name, candidate_email, completed_at, session
		 FROM assessment_results WHERE assessment_id = $1 ORDER BY completed_at ASC`,
		assessmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []store.AssessmentResult
	for rows.Next() {
		var r store.AssessmentResult
		if err := rows.Scan(&r.ID, &r.AssessmentID, &r.CandidateName, &r.CandidateEmail,
			&r.CompletedAt, &r.Session); err != nil {
			return nil, err
		}
		list = append(list, r)
	}
	return list, rows.Err()
}
