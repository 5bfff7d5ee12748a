package webhook

import (
	"context"
	"time"
)

// ReportPayload is the JSON body posted to the configured report endpoint
// when an interview session completes.
type ReportPayload struct {
	SessionID       string    `json:"sessionId"`
	CandidateName   string    `json:"candidateName,omitempty"`
	Date            time.Time `json:"date"`
	Type            string    `json:"type"`
	DurationMinutes int       `json:"duration"`
	AverageScore    int       `json:"averageScore"`
	QuestionCount   int       `json:"questionCount"`
	OverallSummary  string    `json:"overallSummary"`
}

// Sender delivers a completed session report to an external consumer.
type Sender interface {
	SendReport(ctx context.Context, payload ReportPayload) error
}
