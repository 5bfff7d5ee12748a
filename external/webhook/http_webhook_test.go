package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/interprepai/interprep/internal/webhook"
)

func samplePayload() webhook.ReportPayload {
	return webhook.ReportPayload{
		SessionID:       "session-1",
		CandidateName:   "Jordan Reyes",
		Date:            time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
		Type:            "Behavioral - Backend Engineer",
		DurationMinutes: 12,
		AverageScore:    8,
		QuestionCount:   5,
		OverallSummary:  "Strong, example-driven answers.",
	}
}

func TestSendReport_EmptyWebhookURL(t *testing.T) {
	sender := NewHTTPSender("")
	if err := sender.SendReport(context.Background(), samplePayload()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestSendReport_Success(t *testing.T) {
	var got webhook.ReportPayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("unexpected content type: %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sender := NewHTTPSender(server.URL)
	if err := sender.SendReport(context.Background(), samplePayload()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got.SessionID != "session-1" {
		t.Fatalf("unexpected session ID: %s", got.SessionID)
	}
	if got.AverageScore != 8 || got.QuestionCount != 5 {
		t.Fatalf("unexpected stats: %+v", got)
	}
}

func TestSendReport_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	sender := NewHTTPSender(server.URL)
	if err := sender.SendReport(context.Background(), samplePayload()); err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}
