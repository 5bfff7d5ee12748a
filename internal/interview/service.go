package interview

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/interprepai/interprep/internal/config"
	"github.com/interprepai/interprep/internal/oracle"
	"github.com/interprepai/interprep/internal/resume"
	"github.com/interprepai/interprep/internal/speech"
	"github.com/interprepai/interprep/internal/store"
	"github.com/interprepai/interprep/internal/webhook"
)

// ErrMissingSetup is returned when a session is requested without the
// inputs the setup screen would have collected.
var ErrMissingSetup = errors.New("interview: a parsed resume and a target role are required")

// SetupInput is everything a candidate supplies before a session starts.
type SetupInput struct {
	Resume  resume.ResumeData
	Profile CandidateProfile
	Config  store.InterviewConfig
}

func (in SetupInput) resumeMissing() bool {
	return in.Resume.Name == "" && in.Resume.Summary == "" && len(in.Resume.Skills) == 0
}

// Service runs interview sessions end to end: questions generated from the
// resume, the spoken turn loop, and the completed session recorded and
// reported.
type Service struct {
	cfg        *config.Config
	oracle     oracle.Client
	recognizer speech.Recognizer
	synth      speech.Synthesizer
	store      store.Store
	webhook    webhook.Sender
}

func NewService(
	cfg *config.Config,
	oracleClient oracle.Client,
	recognizer speech.Recognizer,
	synth speech.Synthesizer,
	st store.Store,
	wh webhook.Sender,
) *Service {
	return &Service{
		cfg:        cfg,
		oracle:     oracleClient,
		recognizer: recognizer,
		synth:      synth,
		store:      st,
		webhook:    wh,
	}
}

// StartSession blocks until the interview finishes or ctx is cancelled.
// It returns (nil, nil) when the session ends with nothing to record.
// The returned controller error is the session's terminal failure, if any.
func (s *Service) StartSession(ctx context.Context, input SetupInput, observer Observer) (*store.InterviewSession, error) {
	if input.resumeMissing() || strings.TrimSpace(input.Config.Role) == "" {
		return nil, ErrMissingSetup
	}

	request := oracle.QuestionRequest{
		Resume:      input.Resume,
		TargetRole:  input.Config.Role,
		LinkedInURL: input.Profile.LinkedInURL,
		Count:       s.cfg.QuestionCount,
	}
	opts := Options{
		SilenceWindow:    s.cfg.SilenceWindow,
		SpeechRetryWait:  s.cfg.SpeechRetryWait,
		MaxSpeechRetries: s.cfg.MaxSpeechRetries,
	}.WithTransitionDwell(s.cfg.TransitionDwell)

	slog.Info("starting interview session",
		"role", input.Config.Role, "type", input.Config.Type,
		"difficulty", input.Config.Difficulty, "questions", s.cfg.QuestionCount)

	controller := NewController(input.Config, request, s.oracle, s.recognizer, s.synth, s.store, observer, opts)
	session, err := controller.Run(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		slog.Info("interview session ended without a recorded session")
		return nil, nil
	}

	s.report(ctx, input.Profile, session)
	return session, nil
}

// report posts the session summary to the configured webhook. Delivery
// failure never fails the session; the report is best effort.
func (s *Service) report(ctx context.Context, profile CandidateProfile, session *store.InterviewSession) {
	payload := webhook.ReportPayload{
		SessionID:       session.ID,
		CandidateName:   profile.FullName,
		Date:            session.Date,
		Type:            session.TypeLabel,
		DurationMinutes: session.DurationMinutes,
		AverageScore:    session.AverageScore,
		QuestionCount:   len(session.Transcript),
		OverallSummary:  session.Summary.OverallSummary,
	}
	if err := s.webhook.SendReport(ctx, payload); err != nil {
		slog.Error("failed to send session report", "error", err, "session_id", session.ID)
		return
	}
	slog.Info("session report sent", "session_id", session.ID)
}
