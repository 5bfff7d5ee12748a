package report

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/interprepai/interprep/internal/oracle"
	"github.com/interprepai/interprep/internal/store"
)

// ErrQuestionInFlight rejects a follow-up question submitted while a prior
// one is still being answered.
var ErrQuestionInFlight = errors.New("report: a follow-up question is already in flight")

const chatApology = "I'm sorry, I couldn't process that question. Please try again."

const answerSnippetLimit = 100

type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	Role ChatRole
	Text string
}

// Chat answers free-text questions about one frozen session. The exchange
// log lives only on the chat; nothing is written back onto the session.
type Chat struct {
	oracle  oracle.Client
	session store.InterviewSession
	digest  oracle.SessionDigest

	mu       sync.Mutex
	inFlight bool
	log      []ChatMessage
}

func NewChat(oracleClient oracle.Client, session store.InterviewSession) *Chat {
	return &Chat{
		oracle:  oracleClient,
		session: session,
		digest:  buildDigest(session),
	}
}

// Ask answers one question. Oracle failures are converted into an apologetic
// in-band answer rather than an error; the only error returned is the
// in-flight rejection.
func (c *Chat) Ask(ctx context.Context, question string) (string, error) {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return "", ErrQuestionInFlight
	}
	c.inFlight = true
	c.log = append(c.log, ChatMessage{Role: RoleUser, Text: question})
	c.mu.Unlock()

	answer, err := c.oracle.Ask(ctx, c.digest, question)
	if err != nil {
		slog.Warn("follow-up question failed", "error", err, "session_id", c.session.ID)
		answer = chatApology
	}

	c.mu.Lock()
	c.log = append(c.log, ChatMessage{Role: RoleAssistant, Text: answer})
	c.inFlight = false
	c.mu.Unlock()
	return answer, nil
}

// Log returns a copy of the exchange so far, alternating user and assistant
// messages in the order asked.
func (c *Chat) Log() []ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]ChatMessage(nil), c.log...)
}

// buildDigest truncates the session to the context the oracle needs: per
// entry a 100-character answer snippet, the score and the structure
// evaluation as the feedback summary.
func buildDigest(session store.InterviewSession) oracle.SessionDigest {
	entries := make([]oracle.EntryDigest, 0, len(session.Transcript))
	for _, entry := range session.Transcript {
		entries = append(entries, oracle.EntryDigest{
			Question:        entry.Question,
			AnswerSnippet:   snippet(entry.Answer),
			Score:           entry.Feedback.Score,
			FeedbackSummary: entry.Feedback.Evaluation.Structure,
		})
	}
	return oracle.SessionDigest{
		Role:           session.Config.Role,
		AverageScore:   session.AverageScore,
		OverallSummary: session.Summary.OverallSummary,
		ActionableTips: session.Summary.ActionableTips,
		Entries:        entries,
	}
}

func snippet(s string) string {
	if len(s) <= answerSnippetLimit {
		return s
	}
	return s[:answerSnippetLimit]
}
