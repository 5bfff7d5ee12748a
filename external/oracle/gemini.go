package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/interprepai/interprep/internal/oracle"
	"github.com/interprepai/interprep/internal/resume"
)

// GeminiClient implements oracle.Client against the Gemini API. Structured
// calls pin a response schema so the model returns JSON that unmarshals
// directly into the internal types.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

// generateJSON runs one structured generation and unmarshals the response
// into out. Failures are reported as *oracle.ServiceError tagged with op.
func (g *GeminiClient) generateJSON(ctx context.Context, op, prompt string, schema *genai.Schema, out any) error {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return &oracle.ServiceError{Op: op, Err: err}
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return &oracle.ServiceError{Op: op, Err: fmt.Errorf("empty response")}
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return &oracle.ServiceError{Op: op, Err: fmt.Errorf("malformed response: %w", err)}
	}

	return nil
}

func (g *GeminiClient) GenerateQuestions(ctx context.Context, req oracle.QuestionRequest) ([]string, error) {
	var questions []string
	if err := g.generateJSON(ctx, "generate questions", questionPrompt(req), questionListSchema, &questions); err != nil {
		return nil, err
	}

	return cleanQuestionList(questions), nil
}

func (g *GeminiClient) GenerateAssessmentQuestions(ctx context.Context, jobRole, interviewType, difficulty string, count int) ([]string, error) {
	prompt := assessmentQuestionPrompt(jobRole, interviewType, difficulty, count)

	var questions []string
	if err := g.generateJSON(ctx, "generate assessment questions", prompt, questionListSchema, &questions); err != nil {
		return nil, err
	}

	return cleanQuestionList(questions), nil
}

func (g *GeminiClient) Score(ctx context.Context, question, answer string) (oracle.Feedback, error) {
	var fb oracle.Feedback
	if err := g.generateJSON(ctx, "score answer", feedbackPrompt(question, answer), feedbackSchema, &fb); err != nil {
		return oracle.Feedback{}, err
	}
	if err := validateFeedback(fb); err != nil {
		return oracle.Feedback{}, &oracle.ServiceError{Op: "score answer", Err: err}
	}

	return fb, nil
}

func (g *GeminiClient) Summarize(ctx context.Context, feedback []oracle.Feedback) (oracle.SessionSummary, error) {
	var summary oracle.SessionSummary
	if err := g.generateJSON(ctx, "summarize session", summaryPrompt(feedback), summarySchema, &summary); err != nil {
		return oracle.SessionSummary{}, err
	}
	if err := validateSummary(summary); err != nil {
		return oracle.SessionSummary{}, &oracle.ServiceError{Op: "summarize session", Err: err}
	}

	return summary, nil
}

func (g *GeminiClient) Ask(ctx context.Context, digest oracle.SessionDigest, question string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(followUpPrompt(digest, question)), nil)
	if err != nil {
		return "", &oracle.ServiceError{Op: "follow-up question", Err: err}
	}

	answer := strings.TrimSpace(resp.Text())
	if answer == "" {
		return "", &oracle.ServiceError{Op: "follow-up question", Err: fmt.Errorf("empty response")}
	}

	return answer, nil
}

func (g *GeminiClient) ParseResume(ctx context.Context, resumeText string) (resume.ResumeData, error) {
	var data resume.ResumeData
	if err := g.generateJSON(ctx, "parse resume", resumePrompt(resumeText), resumeSchema, &data); err != nil {
		return resume.ResumeData{}, err
	}
	if data.Name == "" && data.Summary == "" && len(data.Skills) == 0 {
		return resume.ResumeData{}, &oracle.ServiceError{Op: "parse resume", Err: fmt.Errorf("no usable fields extracted")}
	}

	return data, nil
}

func (g *GeminiClient) GenerateRoadmap(ctx context.Context, skills []string, targetRole string) (resume.CareerRoadmap, error) {
	var roadmap resume.CareerRoadmap
	if err := g.generateJSON(ctx, "generate roadmap", roadmapPrompt(skills, targetRole), roadmapSchema, &roadmap); err != nil {
		return resume.CareerRoadmap{}, err
	}
	if len(roadmap.ShortTermPlan) == 0 && len(roadmap.LongTermPlan) == 0 {
		return resume.CareerRoadmap{}, &oracle.ServiceError{Op: "generate roadmap", Err: fmt.Errorf("empty plan")}
	}

	return roadmap, nil
}

// cleanQuestionList drops blank entries and trims the rest.
func cleanQuestionList(questions []string) []string {
	cleaned := make([]string, 0, len(questions))
	for _, q := range questions {
		q = strings.TrimSpace(q)
		if q == "" {
			continue
		}
		cleaned = append(cleaned, q)
	}

	return cleaned
}

func validateFeedback(fb oracle.Feedback) error {
	if fb.Score < 0 || fb.Score > 100 {
		return fmt.Errorf("score %d out of range", fb.Score)
	}
	if fb.ResponseQuality < 0 || fb.ResponseQuality > 100 {
		return fmt.Errorf("response quality %d out of range", fb.ResponseQuality)
	}
	ev := fb.Evaluation
	if ev.Clarity == "" || ev.Relevance == "" || ev.Structure == "" || ev.Confidence == "" {
		return fmt.Errorf("incomplete evaluation")
	}
	if fb.SpokenSummary == "" {
		return fmt.Errorf("missing spoken summary")
	}
	if fb.ProfessionalRewrite == "" {
		return fmt.Errorf("missing professional rewrite")
	}

	return nil
}

func validateSummary(s oracle.SessionSummary) error {
	switch {
	case s.OverallSummary == "":
		return fmt.Errorf("missing overall summary")
	case len(s.ActionableTips) == 0:
		return fmt.Errorf("missing actionable tips")
	case s.Encouragement == "":
		return fmt.Errorf("missing encouragement")
	case s.SimulatedFacialExpressionAnalysis == "", s.SimulatedBodyLanguageAnalysis == "", s.SimulatedAudioAnalysis == "":
		return fmt.Errorf("missing simulated analysis")
	}

	return nil
}
