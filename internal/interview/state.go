package interview

import (
	"context"
	"time"

	"github.com/interprepai/interprep/internal/store"
)

// Stage identifies where the controller is in its turn-taking protocol.
type Stage string

const (
	StageGeneratingQuestions Stage = "generating_questions"
	StageAsking              Stage = "asking"
	StageListening           Stage = "listening"
	StageAnalyzing           Stage = "analyzing"
	StageTransitioning       Stage = "transitioning"
	StageGeneratingSummary   Stage = "generating_summary"
	StageFinished            Stage = "finished"
)

// sessionState is the tagged state variant for the controller. Each variant
// carries exactly the data that is valid in that stage; events that do not
// apply to the current variant are discarded by the event loop.
type sessionState interface {
	stage() Stage
}

type generatingQuestionsState struct{}

func (generatingQuestionsState) stage() Stage { return StageGeneratingQuestions }

type askingState struct {
	index       int
	cancelSpeak context.CancelFunc
}

func (*askingState) stage() Stage { return StageAsking }

// listeningState owns everything that only exists while speech input is
// armed: the live transcript buffer, the per-turn timer, the silence timer
// and the retry bookkeeping. seq changes every time a new listening phase
// begins, so stale timer and device callbacks identify themselves.
type listeningState struct {
	index      int
	seq        int
	transcript string
	armed      bool
	elapsed    int
	retries    int
	exhausted  bool
	fatal      bool
	silence    *time.Timer
	retry      *time.Timer
}

func (*listeningState) stage() Stage { return StageListening }

type analyzingState struct {
	index  int
	answer string
}

func (*analyzingState) stage() Stage { return StageAnalyzing }

type transitioningState struct {
	index int
	dwell *time.Timer
}

func (*transitioningState) stage() Stage { return StageTransitioning }

type generatingSummaryState struct{}

func (generatingSummaryState) stage() Stage { return StageGeneratingSummary }

type finishedState struct {
	session *store.InterviewSession
	err     error
}

func (*finishedState) stage() Stage { return StageFinished }
