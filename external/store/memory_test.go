package store

import (
	"context"
	"testing"
	"time"

	"github.com/interprepai/interprep/internal/store"
)

func TestMemoryStoreSessions(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	sessions, err := s.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions returned error: %v", err)
	}
	if len(sessions) != 0 {
		t.Fatalf("expected empty history, got %d", len(sessions))
	}

	if err := s.AppendSession(ctx, store.InterviewSession{ID: "s1", AverageScore: 7}); err != nil {
		t.Fatalf("AppendSession returned error: %v", err)
	}
	if err := s.AppendSession(ctx, store.InterviewSession{ID: "s2", AverageScore: 9}); err != nil {
		t.Fatalf("AppendSession returned error: %v", err)
	}

	sessions, err = s.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions returned error: %v", err)
	}
	if len(sessions) != 2 || sessions[0].ID != "s1" || sessions[1].ID != "s2" {
		t.Fatalf("unexpected history: %+v", sessions)
	}
}

func TestMemoryStoreAssessmentLifecycle(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	a := store.Assessment{
		ID:        "a1",
		JobRole:   "Data Engineer",
		CreatedAt: time.Now(),
		Questions: []string{"Q1", "Q2"},
	}
	if err := s.CreateAssessment(ctx, a); err != nil {
		t.Fatalf("CreateAssessment returned error: %v", err)
	}
	if err := s.CreateAssessment(ctx, a); err == nil {
		t.Fatal("duplicate assessment must be rejected")
	}

	if err := s.AppendAssessmentResult(ctx, store.AssessmentResult{ID: "r1", AssessmentID: "a1"}); err != nil {
		t.Fatalf("AppendAssessmentResult returned error: %v", err)
	}
	if err := s.AppendAssessmentResult(ctx, store.AssessmentResult{ID: "r2", AssessmentID: "missing"}); err == nil {
		t.Fatal("result for unknown assessment must be rejected")
	}

	results, err := s.ListAssessmentResults(ctx, "a1")
	if err != nil {
		t.Fatalf("ListAssessmentResults returned error: %v", err)
	}
	if len(results) != 1 || results[0].ID != "r1" {
		t.Fatalf("unexpected results: %+v", results)
	}

	// Deleting the assessment takes its results with it.
	if err := s.DeleteAssessment(ctx, "a1"); err != nil {
		t.Fatalf("DeleteAssessment returned error: %v", err)
	}
	list, err := s.ListAssessments(ctx)
	if err != nil {
		t.Fatalf("ListAssessments returned error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected no assessments, got %+v", list)
	}
	results, err = s.ListAssessmentResults(ctx, "a1")
	if err != nil {
		t.Fatalf("ListAssessmentResults returned error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results after delete, got %+v", results)
	}

	if err := s.DeleteAssessment(ctx, "a1"); err == nil {
		t.Fatal("deleting a missing assessment must fail")
	}
}
