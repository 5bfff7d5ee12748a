package report

import (
	"fmt"
	"strings"

	"github.com/interprepai/interprep/internal/interview"
	"github.com/interprepai/interprep/internal/store"
)

const reportDateLayout = "2006-01-02 15:04"

// RenderSummary presents the session's aggregate view: score, overall
// summary, ranked tips, the simulated non-verbal analyses and the closing
// encouragement.
func RenderSummary(session store.InterviewSession) string {
	lines := []string{
		fmt.Sprintf("Interview Report: %s", session.TypeLabel),
		fmt.Sprintf("Date: %s", session.Date.Format(reportDateLayout)),
		fmt.Sprintf("Duration: %d min", session.DurationMinutes),
		fmt.Sprintf("Average Score: %d%%", session.AverageScore),
	}
	if desc, ok := interview.DescribeType(session.Config.Type); ok {
		lines = append(lines, "", desc.Description)
	}
	lines = append(lines, "", "Summary", session.Summary.OverallSummary)
	if len(session.Summary.ActionableTips) > 0 {
		lines = append(lines, "", "Actionable Tips")
		for i, tip := range session.Summary.ActionableTips {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, tip))
		}
	}
	lines = append(lines, "",
		"Simulated Analysis",
		fmt.Sprintf("Facial expression: %s", session.Summary.SimulatedFacialExpressionAnalysis),
		fmt.Sprintf("Body language: %s", session.Summary.SimulatedBodyLanguageAnalysis),
		fmt.Sprintf("Audio: %s", session.Summary.SimulatedAudioAnalysis),
	)
	if session.Summary.Encouragement != "" {
		lines = append(lines, "", session.Summary.Encouragement)
	}
	return strings.Join(lines, "\n")
}

// RenderTranscript presents one block per answered question, with the
// per-entry metrics and the criterion evaluations.
func RenderTranscript(session store.InterviewSession) string {
	lines := make([]string, 0, len(session.Transcript)*12)
	for i, entry := range session.Transcript {
		if i > 0 {
			lines = append(lines, "")
		}
		fb := entry.Feedback
		lines = append(lines,
			fmt.Sprintf("Question %d: %s", i+1, entry.Question),
			fmt.Sprintf("Answer: %s", entry.Answer),
			fmt.Sprintf("Score: %d%% | Quality: %d%% | Words: %d | Filler words: %d | Example: %s",
				fb.Score, fb.ResponseQuality, fb.WordCount, fb.FillerWords, yesNo(fb.HasExample)),
			fmt.Sprintf("Clarity: %s", fb.Evaluation.Clarity),
			fmt.Sprintf("Relevance: %s", fb.Evaluation.Relevance),
			fmt.Sprintf("Structure: %s", fb.Evaluation.Structure),
			fmt.Sprintf("Confidence: %s", fb.Evaluation.Confidence),
		)
		if fb.GrammarCorrection.HasErrors {
			lines = append(lines, fmt.Sprintf("Grammar: %s", fb.GrammarCorrection.Explanation))
		}
		if fb.ProfessionalRewrite != "" {
			lines = append(lines, fmt.Sprintf("Suggested rewrite: %s", fb.ProfessionalRewrite))
		}
		for _, tip := range fb.Tips {
			lines = append(lines, fmt.Sprintf("- %s", tip))
		}
	}
	return strings.Join(lines, "\n")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
