package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/interprepai/interprep/internal/store"
)

// MemoryStore keeps everything in process memory. It backs demo runs and
// tests when no database is configured.
type MemoryStore struct {
	mu          sync.Mutex
	sessions    []store.InterviewSession
	assessments map[string]store.Assessment
	order       []string
	results     map[string][]store.AssessmentResult
}

func NewMemoryStore() store.Store {
	return &MemoryStore{
		assessments: make(map[string]store.Assessment),
		results:     make(map[string][]store.AssessmentResult),
	}
}

func (s *MemoryStore) AppendSession(_ context.Context, session store.InterviewSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = append(s.sessions, session)
	return nil
}

func (s *MemoryStore) ListSessions(_ context.Context) ([]store.InterviewSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]store.InterviewSession(nil), s.sessions...), nil
}

func (s *MemoryStore) CreateAssessment(_ context.Context, a store.Assessment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.assessments[a.ID]; exists {
		return fmt.Errorf("assessment %s already exists", a.ID)
	}
	s.assessments[a.ID] = a
	s.order = append(s.order, a.ID)
	return nil
}

func (s *MemoryStore) ListAssessments(_ context.Context) ([]store.Assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]store.Assessment, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, s.assessments[id])
	}
	return list, nil
}

func (s *MemoryStore) DeleteAssessment(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.assessments[id]; !exists {
		return fmt.Errorf("assessment %s not found", id)
	}
	delete(s.assessments, id)
	delete(s.results, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) AppendAssessmentResult(_ context.Context, r store.AssessmentResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.assessments[r.AssessmentID]; !exists {
		return fmt.Errorf("assessment %s not found", r.AssessmentID)
	}
	s.results[r.AssessmentID] = append(s.results[r.AssessmentID], r)
	return nil
}

func (s *MemoryStore) ListAssessmentResults(_ context.Context, assessmentID string) ([]store.AssessmentResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]store.AssessmentResult(nil), s.results[assessmentID]...), nil
}
