package report

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/interprepai/interprep/internal/oracle"
	"github.com/interprepai/interprep/internal/resume"
	"github.com/interprepai/interprep/internal/store"
)

func sampleSession() store.InterviewSession {
	return store.InterviewSession{
		ID:              "session-1",
		Date:            time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
		TypeLabel:       "Behavioral - Backend Engineer",
		DurationMinutes: 12,
		AverageScore:    82,
		Config: store.InterviewConfig{
			Type:       store.TypeBehavioral,
			Difficulty: store.DifficultyMedium,
			Persona:    store.PersonaNeutral,
			Role:       "Backend Engineer",
		},
		Transcript: []store.TranscriptEntry{
			{
				Question: "Tell me about a challenge you faced.",
				Answer:   "I migrated a monolith to services.",
				Feedback: oracle.Feedback{
					Score:           82,
					ResponseQuality: 78,
					Evaluation: oracle.Evaluation{
						Clarity:    "Clear narrative.",
						Relevance:  "On topic.",
						Structure:  "Good STAR structure.",
						Confidence: "Confident delivery.",
					},
					GrammarCorrection:   oracle.GrammarCorrection{HasErrors: true, Explanation: "Tense slip in the second sentence."},
					ProfessionalRewrite: "I led the migration of a monolith into services.",
					Tips:                []string{"Quantify the outcome."},
					WordCount:           42,
					FillerWords:         3,
					HasExample:          true,
				},
			},
		},
		Summary: oracle.SessionSummary{
			OverallSummary:                    "Strong, example-driven answers.",
			ActionableTips:                    []string{"Slow down.", "Quantify results."},
			Encouragement:                     "Keep practicing!",
			SimulatedFacialExpressionAnalysis: "Steady eye contact.",
			SimulatedBodyLanguageAnalysis:     "Open posture.",
			SimulatedAudioAnalysis:            "Even pacing.",
		},
	}
}

func TestRenderSummary(t *testing.T) {
	body := RenderSummary(sampleSession())
	for _, want := range []string{
		"Interview Report: Behavioral - Backend Engineer",
		"Duration: 12 min",
		"Average Score: 82%",
		"Strong, example-driven answers.",
		"1. Slow down.",
		"2. Quantify results.",
		"Facial expression: Steady eye contact.",
		"Keep practicing!",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("summary missing %q:\n%s", want, body)
		}
	}
}

func TestRenderTranscript(t *testing.T) {
	body := RenderTranscript(sampleSession())
	for _, want := range []string{
		"Question 1: Tell me about a challenge you faced.",
		"Answer: I migrated a monolith to services.",
		"Score: 82% | Quality: 78% | Words: 42 | Filler words: 3 | Example: yes",
		"Structure: Good STAR structure.",
		"Grammar: Tense slip in the second sentence.",
		"Suggested rewrite: I led the migration of a monolith into services.",
		"- Quantify the outcome.",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("transcript missing %q:\n%s", want, body)
		}
	}
}

type stubOracle struct {
	answer  string
	askErr  error
	entered chan struct{}
	release chan struct{}

	digests []oracle.SessionDigest
}

func (s *stubOracle) Ask(_ context.Context, digest oracle.SessionDigest, _ string) (string, error) {
	s.digests = append(s.digests, digest)
	if s.entered != nil {
		s.entered <- struct{}{}
	}
	if s.release != nil {
		<-s.release
	}
	if s.askErr != nil {
		return "", s.askErr
	}
	return s.answer, nil
}

func (s *stubOracle) GenerateQuestions(_ context.Context, _ oracle.QuestionRequest) ([]string, error) {
	return nil, nil
}
func (s *stubOracle) GenerateAssessmentQuestions(_ context.Context, _, _, _ string, _ int) ([]string, error) {
	return nil, nil
}
func (s *stubOracle) Score(_ context.Context, _, _ string) (oracle.Feedback, error) {
	return oracle.Feedback{}, nil
}
func (s *stubOracle) Summarize(_ context.Context, _ []oracle.Feedback) (oracle.SessionSummary, error) {
	return oracle.SessionSummary{}, nil
}
func (s *stubOracle) ParseResume(_ context.Context, _ string) (resume.ResumeData, error) {
	return resume.ResumeData{}, nil
}
func (s *stubOracle) GenerateRoadmap(_ context.Context, _ []string, _ string) (resume.CareerRoadmap, error) {
	return resume.CareerRoadmap{}, nil
}

func TestChatAppendsOneExchangePerQuestion(t *testing.T) {
	orc := &stubOracle{answer: "Focus on quantified results."}
	chat := NewChat(orc, sampleSession())

	answer, err := chat.Ask(context.Background(), "What should I improve first?")
	if err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	if answer != "Focus on quantified results." {
		t.Errorf("unexpected answer %q", answer)
	}

	log := chat.Log()
	if len(log) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(log))
	}
	if log[0].Role != RoleUser || log[0].Text != "What should I improve first?" {
		t.Errorf("unexpected user message %+v", log[0])
	}
	if log[1].Role != RoleAssistant || log[1].Text != answer {
		t.Errorf("unexpected assistant message %+v", log[1])
	}
}

func TestChatDigestTruncatesAnswers(t *testing.T) {
	session := sampleSession()
	session.Transcript[0].Answer = strings.Repeat("a", 250)
	orc := &stubOracle{answer: "ok"}
	chat := NewChat(orc, session)

	if _, err := chat.Ask(context.Background(), "anything"); err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	if len(orc.digests) != 1 {
		t.Fatalf("expected one digest, got %d", len(orc.digests))
	}
	digest := orc.digests[0]
	if len(digest.Entries) != 1 {
		t.Fatalf("expected one digest entry, got %d", len(digest.Entries))
	}
	if got := len(digest.Entries[0].AnswerSnippet); got != 100 {
		t.Errorf("expected 100-character snippet, got %d", got)
	}
	if digest.Entries[0].FeedbackSummary != "Good STAR structure." {
		t.Errorf("unexpected feedback summary %q", digest.Entries[0].FeedbackSummary)
	}
	if digest.Role != "Backend Engineer" || digest.AverageScore != 82 {
		t.Errorf("unexpected digest header: %+v", digest)
	}
}

func TestChatRejectsConcurrentQuestions(t *testing.T) {
	orc := &stubOracle{
		answer:  "ok",
		entered: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	chat := NewChat(orc, sampleSession())

	done := make(chan struct{})
	go func() {
		_, _ = chat.Ask(context.Background(), "first")
		close(done)
	}()

	<-orc.entered
	if _, err := chat.Ask(context.Background(), "second"); !errors.Is(err, ErrQuestionInFlight) {
		t.Fatalf("expected ErrQuestionInFlight, got %v", err)
	}

	close(orc.release)
	<-done
	log := chat.Log()
	if len(log) != 2 {
		t.Fatalf("expected only the first exchange in the log, got %d messages", len(log))
	}
	if log[0].Text != "first" {
		t.Errorf("rejected question must not enter the log: %+v", log)
	}
}

func TestChatConvertsFailureToApology(t *testing.T) {
	orc := &stubOracle{askErr: errors.New("model unavailable")}
	chat := NewChat(orc, sampleSession())

	answer, err := chat.Ask(context.Background(), "anything")
	if err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	if answer != chatApology {
		t.Errorf("expected apologetic answer, got %q", answer)
	}
	log := chat.Log()
	if len(log) != 2 || log[1].Text != chatApology {
		t.Errorf("apology not recorded in log: %+v", log)
	}
}
