package oracle

import (
	"strings"
	"testing"

	"github.com/interprepai/interprep/internal/oracle"
	"github.com/interprepai/interprep/internal/resume"
)

func validFeedback() oracle.Feedback {
	return oracle.Feedback{
		Score:           74,
		ResponseQuality: 68,
		Evaluation: oracle.Evaluation{
			Clarity:    "Clear and direct.",
			Relevance:  "On topic throughout.",
			Structure:  "Followed the STAR method well.",
			Confidence: "Steady and assured tone.",
		},
		ProfessionalRewrite: "In my last role I led the migration of our billing system.",
		Tips:                []string{"Quantify the outcome."},
		SpokenSummary:       "Nice work. Try adding concrete numbers next time.",
		WordCount:           120,
	}
}

func TestValidateFeedback(t *testing.T) {
	if err := validateFeedback(validFeedback()); err != nil {
		t.Fatalf("expected valid feedback to pass, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*oracle.Feedback)
	}{
		{"score above range", func(fb *oracle.Feedback) { fb.Score = 101 }},
		{"score below range", func(fb *oracle.Feedback) { fb.Score = -1 }},
		{"quality above range", func(fb *oracle.Feedback) { fb.ResponseQuality = 130 }},
		{"missing clarity", func(fb *oracle.Feedback) { fb.Evaluation.Clarity = "" }},
		{"missing confidence", func(fb *oracle.Feedback) { fb.Evaluation.Confidence = "" }},
		{"missing spoken summary", func(fb *oracle.Feedback) { fb.SpokenSummary = "" }},
		{"missing rewrite", func(fb *oracle.Feedback) { fb.ProfessionalRewrite = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := validFeedback()
			tt.mutate(&fb)
			if err := validateFeedback(fb); err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}

func TestValidateSummary(t *testing.T) {
	valid := oracle.SessionSummary{
		OverallSummary:                    "Solid performance overall.",
		ActionableTips:                    []string{"Practice concise openings."},
		Encouragement:                     "Keep going, you are close.",
		SimulatedFacialExpressionAnalysis: "Expressions appeared engaged.",
		SimulatedBodyLanguageAnalysis:     "Posture seemed open.",
		SimulatedAudioAnalysis:            "Pace was even.",
	}
	if err := validateSummary(valid); err != nil {
		t.Fatalf("expected valid summary to pass, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*oracle.SessionSummary)
	}{
		{"missing overall summary", func(s *oracle.SessionSummary) { s.OverallSummary = "" }},
		{"missing tips", func(s *oracle.SessionSummary) { s.ActionableTips = nil }},
		{"missing encouragement", func(s *oracle.SessionSummary) { s.Encouragement = "" }},
		{"missing audio analysis", func(s *oracle.SessionSummary) { s.SimulatedAudioAnalysis = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			if err := validateSummary(s); err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}

func TestCleanQuestionList(t *testing.T) {
	got := cleanQuestionList([]string{"  Tell me about yourself.  ", "", "   ", "Why this role?"})
	want := []string{"Tell me about yourself.", "Why this role?"}
	if len(got) != len(want) {
		t.Fatalf("expected %d questions, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("question %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestQuestionPromptIncludesCandidateBackground(t *testing.T) {
	prompt := questionPrompt(oracle.QuestionRequest{
		Resume: resume.ResumeData{
			Summary: "Backend engineer with six years of Go experience.",
			Skills:  []string{"Go", "PostgreSQL"},
			Experience: []resume.Experience{
				{JobTitle: "Senior Engineer", Company: "Acme", Duration: "2021 - Present"},
			},
		},
		TargetRole:  "Staff Engineer",
		LinkedInURL: "https://linkedin.com/in/example",
		Count:       5,
	})

	for _, want := range []string{
		"Staff Engineer",
		"Go, PostgreSQL",
		"Senior Engineer at Acme (2021 - Present)",
		"https://linkedin.com/in/example",
		"Generate exactly 5 questions",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("expected prompt to contain %q", want)
		}
	}
}

func TestQuestionPromptWithoutExperienceFallsBackToScenarios(t *testing.T) {
	prompt := questionPrompt(oracle.QuestionRequest{
		TargetRole: "Product Manager",
		Count:      3,
	})

	if !strings.Contains(prompt, "hypothetical scenarios") {
		t.Error("expected scenario instruction for a blank background")
	}
	if strings.Contains(prompt, "LinkedIn") {
		t.Error("expected no LinkedIn line when the URL is empty")
	}
}

func TestAssessmentQuestionPromptIncludesParameters(t *testing.T) {
	prompt := assessmentQuestionPrompt("Data Analyst", "Technical", "Hard", 7)

	for _, want := range []string{"Data Analyst", "Technical", "Hard", "Generate exactly 7 questions"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("expected prompt to contain %q", want)
		}
	}
}

func TestFollowUpPromptIncludesSessionContext(t *testing.T) {
	prompt := followUpPrompt(oracle.SessionDigest{
		Role:           "Backend Engineer",
		AverageScore:   81,
		OverallSummary: "Strong technical answers.",
		ActionableTips: []string{"Slow down", "Use more examples"},
		Entries: []oracle.EntryDigest{
			{Question: "Describe a hard bug.", AnswerSnippet: "A race in the cache layer.", Score: 85},
		},
	}, "How can I improve my second answer?")

	for _, want := range []string{
		"Backend Engineer",
		"81%",
		"Slow down; Use more examples",
		"Describe a hard bug.",
		"How can I improve my second answer?",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("expected prompt to contain %q", want)
		}
	}
}
