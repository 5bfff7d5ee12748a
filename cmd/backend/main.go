package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	audioimpl "github.com/interprepai/interprep/external/audio"
	configloader "github.com/interprepai/interprep/external/config"
	oracleimpl "github.com/interprepai/interprep/external/oracle"
	speechimpl "github.com/interprepai/interprep/external/speech"
	storeimpl "github.com/interprepai/interprep/external/store"
	ttsimpl "github.com/interprepai/interprep/external/tts"
	webhookimpl "github.com/interprepai/interprep/external/webhook"
	"github.com/interprepai/interprep/internal/assessment"
	"github.com/interprepai/interprep/internal/config"
	"github.com/interprepai/interprep/internal/interview"
	"github.com/interprepai/interprep/internal/oracle"
	"github.com/interprepai/interprep/internal/report"
	"github.com/interprepai/interprep/internal/resume"
	"github.com/interprepai/interprep/internal/store"
	"github.com/samber/do/v2"
)

const resumeParseTimeout = 60 * time.Second

func main() {
	slog.Info("startup: loading configuration")
	cfg := mustLoadConfig()
	initLogger(cfg)
	slog.Info("startup: configuration loaded", "env", cfg.Env)

	slog.Info("startup: building dependency graph")
	injector := setupDI(cfg)

	slog.Info("startup: launching interview session")
	runInterview(cfg, injector)
}

func mustLoadConfig() *config.Config {
	cfg, err := configloader.Load()
	if err != nil {
		slog.Error("config validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

func initLogger(cfg *config.Config) {
	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
}

func setupDI(cfg *config.Config) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	storeimpl.RegisterDI(injector)
	audioimpl.RegisterDI(injector)
	speechimpl.RegisterDI(injector)
	ttsimpl.RegisterDI(injector)
	oracleimpl.RegisterDI(injector)
	webhookimpl.RegisterDI(injector)
	interview.RegisterDI(injector)
	assessment.RegisterDI(injector)

	return injector
}

func runInterview(cfg *config.Config, injector do.Injector) {
	svc, err := do.Invoke[*interview.Service](injector)
	if err != nil {
		slog.Error("failed to resolve interview service", "error", err)
		os.Exit(1)
	}
	oracleClient, err := do.Invoke[oracle.Client](injector)
	if err != nil {
		slog.Error("failed to resolve oracle client", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	resumeData := mustParseResume(ctx, oracleClient, cfg.ResumePath)

	input := interview.SetupInput{
		Resume: resumeData,
		Profile: interview.CandidateProfile{
			FullName: resumeData.Name,
			Email:    resumeData.Email,
		},
		Config: store.InterviewConfig{
			Type:       store.InterviewType(cfg.InterviewType),
			Difficulty: store.Difficulty(cfg.InterviewDifficulty),
			Persona:    store.Persona(cfg.InterviewPersona),
			Role:       cfg.TargetRole,
		},
	}

	session, err := svc.StartSession(ctx, input, &consoleObserver{out: os.Stderr})
	if err != nil {
		slog.Error("interview session failed", "error", err)
		os.Exit(1)
	}
	if session == nil {
		slog.Info("no session recorded")
		return
	}

	fmt.Println(report.RenderSummary(*session))
	fmt.Println()
	fmt.Println(report.RenderTranscript(*session))

	// The follow-up chat reads from stdin, which is only free when the
	// microphone capture came from a file.
	if cfg.AudioSourcePath != "" {
		runFollowUpChat(ctx, oracleClient, session)
	}
}

func runFollowUpChat(ctx context.Context, oracleClient oracle.Client, session *store.InterviewSession) {
	chat := report.NewChat(oracleClient, *session)
	fmt.Fprintln(os.Stderr, "\nAsk follow-up questions about your performance (empty line to quit):")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(os.Stderr, "? ")
		if !scanner.Scan() {
			return
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			return
		}
		answer, err := chat.Ask(ctx, question)
		if err != nil {
			slog.Error("follow-up chat failed", "error", err)
			return
		}
		fmt.Fprintf(os.Stderr, "%s\n\n", answer)
	}
}

func mustParseResume(ctx context.Context, oracleClient oracle.Client, path string) resume.ResumeData {
	raw, err := os.ReadFile(path)
	if err != nil {
		slog.Error("failed to read resume file", "error", err, "path", path)
		os.Exit(1)
	}

	parseCtx, cancel := context.WithTimeout(ctx, resumeParseTimeout)
	defer cancel()

	data, err := oracleClient.ParseResume(parseCtx, string(raw))
	if err != nil {
		slog.Error("failed to parse resume", "error", err, "path", path)
		os.Exit(1)
	}
	slog.Info("resume parsed", "name", data.Name, "skills", len(data.Skills))

	return data
}

// consoleObserver narrates the session to the terminal while the report is
// written to stdout at the end.
type consoleObserver struct {
	out *os.File
}

func (o *consoleObserver) OnStage(stage interview.Stage) {
	fmt.Fprintf(o.out, "\n[%s]\n", stage)
}

func (o *consoleObserver) OnQuestion(index, total int, question string) {
	fmt.Fprintf(o.out, "\nQuestion %d of %d: %s\n", index+1, total, question)
}

func (o *consoleObserver) OnTranscript(text string) {
	if text == "" {
		return
	}
	fmt.Fprintf(o.out, "\r> %s", text)
}

func (o *consoleObserver) OnNotice(message string) {
	fmt.Fprintf(o.out, "\n%s\n", message)
}

func (o *consoleObserver) OnTimer(elapsedSeconds int) {}
