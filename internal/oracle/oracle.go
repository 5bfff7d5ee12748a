package oracle

import (
	"context"
	"fmt"

	"github.com/interprepai/interprep/internal/resume"
)

// Evaluation holds one-sentence feedback per criterion.
type Evaluation struct {
	Clarity    string `json:"clarity"`
	Relevance  string `json:"relevance"`
	Structure  string `json:"structure"`
	Confidence string `json:"confidence"`
}

type GrammarCorrection struct {
	HasErrors   bool   `json:"hasErrors"`
	Explanation string `json:"explanation"`
}

// Feedback is the structured scoring result for a single answer. It is
// treated as an opaque value produced by the oracle; the controller never
// derives behavior from its contents beyond the score.
type Feedback struct {
	Score               int               `json:"score"`
	ResponseQuality     int               `json:"responseQuality"`
	Evaluation          Evaluation        `json:"evaluation"`
	GrammarCorrection   GrammarCorrection `json:"grammarCorrection"`
	ProfessionalRewrite string            `json:"professionalRewrite"`
	Tips                []string          `json:"tips"`
	SpokenSummary       string            `json:"spokenSummary"`
	WordCount           int               `json:"wordCount"`
	FillerWords         int               `json:"fillerWords"`
	HasExample          bool              `json:"hasExample"`
}

// SessionSummary is the end-of-session digest derived from all feedback.
type SessionSummary struct {
	OverallSummary                    string   `json:"overallSummary"`
	ActionableTips                    []string `json:"actionableTips"`
	Encouragement                     string   `json:"encouragement"`
	SimulatedFacialExpressionAnalysis string   `json:"simulatedFacialExpressionAnalysis"`
	SimulatedBodyLanguageAnalysis     string   `json:"simulatedBodyLanguageAnalysis"`
	SimulatedAudioAnalysis            string   `json:"simulatedAudioAnalysis"`
}

// QuestionRequest carries everything question generation needs about the
// candidate.
type QuestionRequest struct {
	Resume      resume.ResumeData
	TargetRole  string
	LinkedInURL string
	Count       int
}

// SessionDigest is the truncated context sent along with follow-up chat
// questions.
type SessionDigest struct {
	Role           string        `json:"role"`
	AverageScore   int           `json:"averageScore"`
	OverallSummary string        `json:"overallSummary"`
	ActionableTips []string      `json:"actionableTips"`
	Entries        []EntryDigest `json:"entries"`
}

type EntryDigest struct {
	Question        string `json:"question"`
	AnswerSnippet   string `json:"answer"`
	Score           int    `json:"score"`
	FeedbackSummary string `json:"feedbackSummary"`
}

// Client is the generative-AI boundary. Every method fails with a
// *ServiceError when the service returns a malformed or incomplete
// response; callers decide whether to degrade or halt.
type Client interface {
	GenerateQuestions(ctx context.Context, req QuestionRequest) ([]string, error)
	GenerateAssessmentQuestions(ctx context.Context, jobRole, interviewType, difficulty string, count int) ([]string, error)
	Score(ctx context.Context, question, answer string) (Feedback, error)
	Summarize(ctx context.Context, feedback []Feedback) (SessionSummary, error)
	Ask(ctx context.Context, digest SessionDigest, question string) (string, error)
	ParseResume(ctx context.Context, resumeText string) (resume.ResumeData, error)
	GenerateRoadmap(ctx context.Context, skills []string, targetRole string) (resume.CareerRoadmap, error)
}

// ServiceError marks a failed or malformed oracle response.
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("oracle %s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// FallbackFeedback is substituted when per-answer scoring fails, so that the
// one-entry-per-question invariant holds and the session can continue.
func FallbackFeedback(answer string) Feedback {
	return Feedback{
		Score:           0,
		ResponseQuality: 0,
		Evaluation: Evaluation{
			Clarity:    "N/A",
			Relevance:  "N/A",
			Structure:  "N/A",
			Confidence: "N/A",
		},
		GrammarCorrection: GrammarCorrection{
			HasErrors:   false,
			Explanation: "Error analyzing.",
		},
		ProfessionalRewrite: answer,
		Tips:                []string{},
		SpokenSummary:       "Sorry, I couldn't process that.",
		WordCount:           0,
		FillerWords:         0,
		HasExample:          false,
	}
}
