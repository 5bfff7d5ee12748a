package assessment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/interprepai/interprep/internal/oracle"
	"github.com/interprepai/interprep/internal/store"
)

// ErrNoQuestions is returned when question generation yields an empty list;
// an assessment with nothing to ask is never persisted.
var ErrNoQuestions = errors.New("assessment: question generation returned no questions")

// CreateInput is the recruiter's assessment definition.
type CreateInput struct {
	JobRole       string
	CreatedBy     string
	Type          store.InterviewType
	Difficulty    store.Difficulty
	Persona       store.Persona
	QuestionCount int
}

// Service manages recruiter-authored assessments: generating their question
// sets and persisting assessments and candidate results.
type Service struct {
	oracle oracle.Client
	store  store.AssessmentStore
}

func NewService(oracleClient oracle.Client, st store.AssessmentStore) *Service {
	return &Service{oracle: oracleClient, store: st}
}

// Create generates the question set for the role and persists the
// assessment.
func (s *Service) Create(ctx context.Context, input CreateInput) (*store.Assessment, error) {
	if strings.TrimSpace(input.JobRole) == "" {
		return nil, errors.New("assessment: job role is required")
	}
	count := input.QuestionCount
	if count <= 0 {
		count = 5
	}

	questions, err := s.oracle.GenerateAssessmentQuestions(ctx,
		input.JobRole, string(input.Type), string(input.Difficulty), count)
	if err != nil {
		return nil, fmt.Errorf("generate assessment questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	assessment := store.Assessment{
		ID:         uuid.NewString(),
		JobRole:    input.JobRole,
		CreatedBy:  input.CreatedBy,
		CreatedAt:  time.Now(),
		Type:       input.Type,
		Difficulty: input.Difficulty,
		Persona:    input.Persona,
		Questions:  questions,
	}
	if err := s.store.CreateAssessment(ctx, assessment); err != nil {
		return nil, fmt.Errorf("persist assessment: %w", err)
	}
	slog.Info("assessment created",
		"assessment_id", assessment.ID, "job_role", assessment.JobRole,
		"questions", len(assessment.Questions))
	return &assessment, nil
}

func (s *Service) List(ctx context.Context) ([]store.Assessment, error) {
	return s.store.ListAssessments(ctx)
}

// Delete removes the assessment together with every result recorded for it.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteAssessment(ctx, id); err != nil {
		return fmt.Errorf("delete assessment: %w", err)
	}
	slog.Info("assessment deleted", "assessment_id", id)
	return nil
}

// SubmitResult records a candidate's completed run of an assessment.
func (s *Service) SubmitResult(ctx context.Context, assessmentID, candidateName, candidateEmail string, session store.InterviewSession) (*store.AssessmentResult, error) {
	result := store.AssessmentResult{
		ID:             uuid.NewString(),
		AssessmentID:   assessmentID,
		CandidateName:  candidateName,
		CandidateEmail: candidateEmail,
		CompletedAt:    time.Now(),
		Session:        session,
	}
	if err := s.store.AppendAssessmentResult(ctx, result); err != nil {
		return nil, fmt.Errorf("persist assessment result: %w", err)
	}
	slog.Info("assessment result recorded",
		"assessment_id", assessmentID, "result_id", result.ID, "candidate", candidateName)
	return &result, nil
}

func (s *Service) ListResults(ctx context.Context, assessmentID string) ([]store.AssessmentResult, error) {
	return s.store.ListAssessmentResults(ctx, assessmentID)
}
