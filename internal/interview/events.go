package interview

import (
	"github.com/interprepai/interprep/internal/oracle"
	"github.com/interprepai/interprep/internal/speech"
	"github.com/interprepai/interprep/internal/store"
)

// Device callbacks, timers and collaborator completions are all delivered to
// the controller as events on a single channel, so the event loop always
// observes current state rather than state captured at subscription time.
type event interface{}

type questionsReady struct{ questions []string }

type questionsFailed struct{ err error }

type speakDone struct{ index int }

type speakFailed struct {
	index int
	err   error
}

type recStarted struct{ seq int }

type recResult struct {
	seq     int
	text    string
	isFinal bool
}

type recEnded struct{ seq int }

type recFailed struct {
	seq  int
	kind speech.ErrorKind
	err  error
}

type silenceElapsed struct{ seq int }

type retryElapsed struct{ seq int }

type dwellElapsed struct{ index int }

type scored struct {
	index int
	entry store.TranscriptEntry
}

type summaryReady struct{ summary oracle.SessionSummary }

type summaryFailed struct{ err error }

type finishRequested struct{}

// eventListener adapts speech.Listener callbacks into controller events.
// It carries the sequence number of the listening phase it was armed for.
type eventListener struct {
	c   *Controller
	seq int
}

func (l eventListener) OnStart() { l.c.post(recStarted{seq: l.seq}) }

func (l eventListener) OnResult(text string, isFinal bool) {
	l.c.post(recResult{seq: l.seq, text: text, isFinal: isFinal})
}

func (l eventListener) OnEnd() { l.c.post(recEnded{seq: l.seq}) }

func (l eventListener) OnError(kind speech.ErrorKind, err error) {
	l.c.post(recFailed{seq: l.seq, kind: kind, err: err})
}
