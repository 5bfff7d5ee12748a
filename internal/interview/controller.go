package interview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/interprepai/interprep/internal/oracle"
	"github.com/interprepai/interprep/internal/speech"
	"github.com/interprepai/interprep/internal/store"
)

// ErrMicrophoneDenied halts a session when the capture device reports that
// microphone access was revoked mid-interview.
var ErrMicrophoneDenied = errors.New("interview: microphone access denied")

// HistorySink records the completed session. It is invoked exactly once,
// after the controller reaches its finished state with a session to record.
type HistorySink interface {
	AppendSession(ctx context.Context, session store.InterviewSession) error
}

// Observer receives UI-facing progress callbacks. All callbacks are invoked
// from the controller's event loop goroutine, never concurrently.
type Observer interface {
	OnStage(stage Stage)
	OnQuestion(index, total int, question string)
	OnTranscript(text string)
	OnNotice(message string)
	OnTimer(elapsedSeconds int)
}

type nopObserver struct{}

func (nopObserver) OnStage(Stage)               {}
func (nopObserver) OnQuestion(int, int, string) {}
func (nopObserver) OnTranscript(string)         {}
func (nopObserver) OnNotice(string)             {}
func (nopObserver) OnTimer(int)                 {}

// Options tune the controller's timing and retry policy. Zero values take
// the defaults used by the real application.
type Options struct {
	// SilenceWindow is the quiet period after a final recognition result
	// before the answer is submitted automatically.
	SilenceWindow time.Duration
	// TransitionDwell is the pause between an answer being saved and the
	// next question. Purely cosmetic; zero disables it.
	TransitionDwell time.Duration
	// SpeechRetryWait is the backoff before restarting speech input after
	// a transient failure.
	SpeechRetryWait time.Duration
	// MaxSpeechRetries bounds consecutive restart attempts.
	MaxSpeechRetries int
	// TimerTick is the granularity of the turn timer.
	TimerTick time.Duration

	dwellSet bool
}

const (
	defaultSilenceWindow    = 5 * time.Second
	defaultTransitionDwell  = 1500 * time.Millisecond
	defaultSpeechRetryWait  = 1500 * time.Millisecond
	defaultMaxSpeechRetries = 3
	defaultTimerTick        = time.Second
)

// WithTransitionDwell marks the dwell as explicitly set, so zero means
// "advance immediately" rather than "use the default".
func (o Options) WithTransitionDwell(d time.Duration) Options {
	o.TransitionDwell = d
	o.dwellSet = true
	return o
}

func (o *Options) applyDefaults() {
	if o.SilenceWindow <= 0 {
		o.SilenceWindow = defaultSilenceWindow
	}
	if o.TransitionDwell <= 0 && !o.dwellSet {
		o.TransitionDwell = defaultTransitionDwell
	}
	if o.SpeechRetryWait <= 0 {
		o.SpeechRetryWait = defaultSpeechRetryWait
	}
	if o.MaxSpeechRetries <= 0 {
		o.MaxSpeechRetries = defaultMaxSpeechRetries
	}
	if o.TimerTick <= 0 {
		o.TimerTick = defaultTimerTick
	}
}

// Controller drives one interview session through
// generating_questions → asking → listening → analyzing → transitioning →
// (asking | generating_summary) → finished. It owns the speech devices for
// the session's lifetime and releases them on any termination path.
type Controller struct {
	request    oracle.QuestionRequest
	icfg       store.InterviewConfig
	opts       Options
	oracle     oracle.Client
	recognizer speech.Recognizer
	synth      speech.Synthesizer
	history    HistorySink
	observer   Observer

	events chan event
	done   chan struct{}

	state        sessionState
	questions    []Question
	transcript   []store.TranscriptEntry
	totalSeconds int
	seq          int
	startedAt    time.Time
}

// NewController wires a controller for a single session. The observer may
// be nil.
func NewController(
	icfg store.InterviewConfig,
	request oracle.QuestionRequest,
	oracleClient oracle.Client,
	recognizer speech.Recognizer,
	synth speech.Synthesizer,
	history HistorySink,
	observer Observer,
	opts Options,
) *Controller {
	opts.applyDefaults()
	if observer == nil {
		observer = nopObserver{}
	}
	return &Controller{
		request:    request,
		icfg:       icfg,
		opts:       opts,
		oracle:     oracleClient,
		recognizer: recognizer,
		synth:      synth,
		history:    history,
		observer:   observer,
		events:     make(chan event, 32),
		done:       make(chan struct{}),
	}
}

// Finish ends the interview early, as the session's End control does. The
// transcript collected so far is summarized and recorded; an empty
// transcript exits without a session.
func (c *Controller) Finish() {
	c.post(finishRequested{})
}

// post delivers an event to the loop unless the controller has already
// terminated, in which case the event is dropped. This is what keeps device
// callbacks from mutating anything after teardown.
func (c *Controller) post(ev event) {
	select {
	case <-c.done:
	case c.events <- ev:
	}
}

// Run executes the session to completion and returns the recorded session.
// It returns (nil, nil) when the interview ends without anything to record
// (no questions generated, or ended before any answer). Cancelling ctx tears
// the session down: devices stopped, timers cleared, no callbacks applied
// afterwards.
func (c *Controller) Run(ctx context.Context) (*store.InterviewSession, error) {
	c.startedAt = time.Now()
	defer c.teardown()

	c.setState(generatingQuestionsState{})
	go func() {
		questions, err := c.oracle.GenerateQuestions(ctx, c.request)
		if err != nil {
			c.post(questionsFailed{err: err})
			return
		}
		c.post(questionsReady{questions: questions})
	}()

	ticker := time.NewTicker(c.opts.TimerTick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
			if ls, ok := c.state.(*listeningState); ok && ls.armed {
				ls.elapsed++
				c.observer.OnTimer(ls.elapsed)
			}
		case ev := <-c.events:
			c.apply(ctx, ev)
			if fs, ok := c.state.(*finishedState); ok {
				return fs.session, fs.err
			}
		}
	}
}

func (c *Controller) setState(s sessionState) {
	c.state = s
	c.observer.OnStage(s.stage())
}

// teardown releases every resource the current state owns. It runs on the
// loop goroutine after Run returns, so it never races with apply.
func (c *Controller) teardown() {
	close(c.done)
	switch s := c.state.(type) {
	case *askingState:
		if s.cancelSpeak != nil {
			s.cancelSpeak()
		}
	case *listeningState:
		c.stopListening(s)
		c.recognizer.Abort()
	case *transitioningState:
		if s.dwell != nil {
			s.dwell.Stop()
		}
	}
}

// stopListening clears the stage-owned timers and folds the turn timer into
// the session total. Called on every path that leaves listening.
func (c *Controller) stopListening(ls *listeningState) {
	if ls.silence != nil {
		ls.silence.Stop()
		ls.silence = nil
	}
	if ls.retry != nil {
		ls.retry.Stop()
		ls.retry = nil
	}
	c.totalSeconds += ls.elapsed
	ls.elapsed = 0
	ls.armed = false
}

func (c *Controller) apply(ctx context.Context, ev event) {
	switch ev := ev.(type) {
	case questionsReady:
		c.applyQuestionsReady(ctx, ev)
	case questionsFailed:
		slog.Error("question generation failed", "error", ev.err)
		c.observer.OnNotice(noticeQuestionsGen)
		c.setState(&finishedState{err: fmt.Errorf("generate questions: %w", ev.err)})
	case speakDone:
		c.applySpeakDone(ev)
	case speakFailed:
		c.applySpeakFailed(ev)
	case recStarted:
		c.applyRecStarted(ev)
	case recResult:
		c.applyRecResult(ev)
	case recEnded:
		c.applyRecEnded(ctx, ev)
	case recFailed:
		c.applyRecFailed(ev)
	case silenceElapsed:
		c.applySilenceElapsed(ev)
	case retryElapsed:
		c.applyRetryElapsed(ev)
	case scored:
		c.applyScored(ctx, ev)
	case dwellElapsed:
		c.applyDwellElapsed(ctx, ev)
	case summaryReady:
		c.applySummaryReady(ctx, ev)
	case summaryFailed:
		slog.Error("summary generation failed", "error", ev.err)
		c.observer.OnNotice(noticeSummaryGen)
		c.setState(&finishedState{err: fmt.Errorf("generate summary: %w", ev.err)})
	case finishRequested:
		c.applyFinishRequested(ctx)
	}
}

func (c *Controller) applyQuestionsReady(ctx context.Context, ev questionsReady) {
	if _, ok := c.state.(generatingQuestionsState); !ok {
		return
	}
	if len(ev.questions) == 0 {
		slog.Warn("question generation returned an empty list; exiting without a session")
		c.setState(&finishedState{})
		return
	}
	c.questions = make([]Question, len(ev.questions))
	for i, q := range ev.questions {
		c.questions[i] = Question{ID: i, Question: q}
	}
	slog.Info("questions generated", "count", len(c.questions), "role", c.icfg.Role)
	c.ask(ctx, 0)
}

// ask speaks question index and moves to listening when playback completes.
// Speech input stays disarmed for the whole asking stage.
func (c *Controller) ask(ctx context.Context, index int) {
	q := c.questions[index]
	speakCtx, cancel := context.WithCancel(ctx)
	c.setState(&askingState{index: index, cancelSpeak: cancel})
	c.observer.OnQuestion(index, len(c.questions), q.Question)

	go func() {
		defer cancel()
		if err := c.synth.Speak(speakCtx, q.Question); err != nil {
			c.post(speakFailed{index: index, err: err})
			return
		}
		c.post(speakDone{index: index})
	}()
}

func (c *Controller) applySpeakDone(ev speakDone) {
	as, ok := c.state.(*askingState)
	if !ok || as.index != ev.index {
		return
	}
	c.startListening(ev.index)
}

func (c *Controller) applySpeakFailed(ev speakFailed) {
	as, ok := c.state.(*askingState)
	if !ok || as.index != ev.index {
		return
	}
	if errors.Is(ev.err, context.Canceled) {
		return
	}
	// Playback trouble should not strand the turn; listen anyway.
	slog.Warn("speech output failed; listening without playback", "error", ev.err, "question_index", ev.index)
	c.startListening(ev.index)
}

func (c *Controller) startListening(index int) {
	c.seq++
	ls := &listeningState{index: index, seq: c.seq}
	c.setState(ls)
	// Residual transcript from the previous turn must never leak in.
	c.observer.OnTranscript("")
	if err := c.recognizer.Start(eventListener{c: c, seq: ls.seq}); err != nil {
		c.handleInputFailure(ls, speech.ErrorNetwork, err)
	}
}

func (c *Controller) applyRecStarted(ev recStarted) {
	ls, ok := c.currentListening(ev.seq)
	if !ok {
		return
	}
	// A successful start ends any retry cycle and re-arms a clean buffer.
	ls.armed = true
	ls.retries = 0
	ls.transcript = ""
	c.observer.OnTranscript("")
}

func (c *Controller) applyRecResult(ev recResult) {
	ls, ok := c.currentListening(ev.seq)
	if !ok {
		// Transcript updates outside listening are discarded.
		return
	}
	if ls.silence != nil {
		ls.silence.Stop()
		ls.silence = nil
	}
	ls.transcript = ev.text
	c.observer.OnTranscript(ev.text)
	if ev.isFinal {
		seq := ls.seq
		ls.silence = time.AfterFunc(c.opts.SilenceWindow, func() {
			c.post(silenceElapsed{seq: seq})
		})
	}
}

func (c *Controller) applySilenceElapsed(ev silenceElapsed) {
	if _, ok := c.currentListening(ev.seq); !ok {
		return
	}
	// Stopping input triggers the device's end event, which submits.
	c.recognizer.Stop()
}

func (c *Controller) applyRecEnded(ctx context.Context, ev recEnded) {
	ls, ok := c.currentListening(ev.seq)
	if !ok {
		return
	}
	c.totalSeconds += ls.elapsed
	ls.elapsed = 0
	ls.armed = false
	if ls.silence != nil {
		ls.silence.Stop()
		ls.silence = nil
	}
	switch {
	case ls.fatal:
		c.setState(&finishedState{err: ErrMicrophoneDenied})
	case ls.exhausted:
		// Persistent error already surfaced; do not auto-advance.
	case ls.retries > 0:
		// Input ended because of a failure; the pending retry restarts it.
	default:
		c.submit(ctx, ls)
	}
}

func (c *Controller) applyRecFailed(ev recFailed) {
	ls, ok := c.currentListening(ev.seq)
	if !ok {
		return
	}
	c.handleInputFailure(ls, ev.kind, ev.err)
}

func (c *Controller) handleInputFailure(ls *listeningState, kind speech.ErrorKind, err error) {
	switch kind {
	case speech.ErrorAborted:
		// Expected during programmatic stop; never an error.
		return
	case speech.ErrorNetwork:
		if ls.retries < c.opts.MaxSpeechRetries {
			ls.retries++
			c.observer.OnNotice(noticeRetrying(ls.retries, c.opts.MaxSpeechRetries))
			slog.Warn("transient speech input failure; scheduling restart",
				"error", err, "attempt", ls.retries, "max", c.opts.MaxSpeechRetries)
			seq := ls.seq
			ls.retry = time.AfterFunc(c.opts.SpeechRetryWait, func() {
				c.post(retryElapsed{seq: seq})
			})
			return
		}
		slog.Error("speech input retries exhausted", "error", err)
		ls.exhausted = true
		c.observer.OnNotice(noticeNetworkDown)
	case speech.ErrorNoSpeech:
		// Informational only; does not count against the retry budget.
		c.observer.OnNotice(noticeNoSpeech)
	case speech.ErrorNotAllowed:
		slog.Error("microphone permission denied", "error", err)
		ls.fatal = true
		c.observer.OnNotice(noticeMicDenied)
	default:
		slog.Error("speech input failed", "error", err, "kind", kind.String())
		c.observer.OnNotice(noticeUnexpected(kind.String()))
	}
}

func (c *Controller) applyRetryElapsed(ev retryElapsed) {
	ls, ok := c.currentListening(ev.seq)
	if !ok || ls.exhausted || ls.fatal {
		return
	}
	ls.retry = nil
	if err := c.recognizer.Start(eventListener{c: c, seq: ls.seq}); err != nil {
		c.handleInputFailure(ls, speech.ErrorNetwork, err)
	}
}

// submit moves the turn into analyzing with the best transcript captured so
// far. Exactly one submission happens per question: the state transition
// here makes any later end event for the same turn a no-op.
func (c *Controller) submit(ctx context.Context, ls *listeningState) {
	answer := strings.TrimSpace(ls.transcript)
	if answer == "" {
		answer = SentinelAnswer
	}
	index := ls.index
	question := c.questions[index].Question
	c.setState(&analyzingState{index: index, answer: answer})

	go func() {
		feedback, err := c.oracle.Score(ctx, question, answer)
		if err != nil {
			slog.Error("scoring failed; substituting fallback feedback",
				"error", err, "question_index", index)
			feedback = oracle.FallbackFeedback(answer)
		}
		c.post(scored{index: index, entry: store.TranscriptEntry{
			Question: question,
			Answer:   answer,
			Feedback: feedback,
		}})
	}()
}

func (c *Controller) applyScored(ctx context.Context, ev scored) {
	as, ok := c.state.(*analyzingState)
	if !ok || as.index != ev.index {
		return
	}
	c.transcript = append(c.transcript, ev.entry)
	if c.opts.TransitionDwell <= 0 {
		c.advance(ctx, ev.index)
		return
	}
	index := ev.index
	ts := &transitioningState{index: index}
	ts.dwell = time.AfterFunc(c.opts.TransitionDwell, func() {
		c.post(dwellElapsed{index: index})
	})
	c.setState(ts)
}

func (c *Controller) applyDwellElapsed(ctx context.Context, ev dwellElapsed) {
	ts, ok := c.state.(*transitioningState)
	if !ok || ts.index != ev.index {
		return
	}
	c.advance(ctx, ev.index)
}

func (c *Controller) advance(ctx context.Context, index int) {
	if index+1 < len(c.questions) {
		c.ask(ctx, index+1)
		return
	}
	c.finishInterview(ctx)
}

func (c *Controller) finishInterview(ctx context.Context) {
	if len(c.transcript) == 0 {
		c.setState(&finishedState{})
		return
	}
	c.setState(generatingSummaryState{})
	feedback := make([]oracle.Feedback, len(c.transcript))
	for i, entry := range c.transcript {
		feedback[i] = entry.Feedback
	}
	go func() {
		summary, err := c.oracle.Summarize(ctx, feedback)
		if err != nil {
			c.post(summaryFailed{err: err})
			return
		}
		c.post(summaryReady{summary: summary})
	}()
}

func (c *Controller) applySummaryReady(ctx context.Context, ev summaryReady) {
	if _, ok := c.state.(generatingSummaryState); !ok {
		return
	}
	session := store.InterviewSession{
		ID:              uuid.NewString(),
		Date:            c.startedAt,
		TypeLabel:       fmt.Sprintf("%s - %s", c.icfg.Type, c.icfg.Role),
		DurationMinutes: int(math.Round(float64(c.totalSeconds) / 60)),
		AverageScore:    averageScore(c.transcript),
		Config:          c.icfg,
		Transcript:      c.transcript,
		Summary:         ev.summary,
	}
	if err := c.history.AppendSession(ctx, session); err != nil {
		slog.Error("failed to record session history", "error", err, "session_id", session.ID)
	}
	slog.Info("interview session finished",
		"session_id", session.ID, "questions", len(c.transcript),
		"average_score", session.AverageScore, "duration_minutes", session.DurationMinutes)
	c.setState(&finishedState{session: &session})
}

func (c *Controller) applyFinishRequested(ctx context.Context) {
	switch s := c.state.(type) {
	case generatingSummaryState, *finishedState:
		return
	case *askingState:
		if s.cancelSpeak != nil {
			s.cancelSpeak()
		}
	case *listeningState:
		c.stopListening(s)
		c.recognizer.Abort()
	case *transitioningState:
		if s.dwell != nil {
			s.dwell.Stop()
		}
	}
	c.finishInterview(ctx)
}

func (c *Controller) currentListening(seq int) (*listeningState, bool) {
	ls, ok := c.state.(*listeningState)
	if !ok || ls.seq != seq {
		return nil, false
	}
	return ls, true
}

func averageScore(transcript []store.TranscriptEntry) int {
	if len(transcript) == 0 {
		return 0
	}
	sum := 0
	for _, entry := range transcript {
		sum += entry.Feedback.Score
	}
	return int(math.Round(float64(sum) / float64(len(transcript))))
}
