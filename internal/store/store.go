package store

import "context"

// HistoryStore records completed interview sessions. AppendSession is the
// Session History Sink: it is called exactly once per finished session.
type HistoryStore interface {
	AppendSession(ctx context.Context, session InterviewSession) error
	ListSessions(ctx context.Context) ([]InterviewSession, error)
}

// AssessmentStore holds recruiter-authored assessments and their results.
type AssessmentStore interface {
	CreateAssessment(ctx context.Context, a Assessment) error
	ListAssessments(ctx context.Context) ([]Assessment, error)
	// DeleteAssessment removes the assessment and every result recorded
	// against it.
	DeleteAssessment(ctx context.Context, id string) error
	AppendAssessmentResult(ctx context.Context, r AssessmentResult) error
	ListAssessmentResults(ctx context.Context, assessmentID string) ([]AssessmentResult, error)
}

type Store interface {
	HistoryStore
	AssessmentStore
}
