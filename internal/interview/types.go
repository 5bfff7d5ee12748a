package interview

import (
	"github.com/interprepai/interprep/internal/store"
)

// SentinelAnswer is substituted when no speech was captured for a turn.
// Scoring still runs against it.
const SentinelAnswer = "No answer provided."

// Question wraps a generated question with its ordinal index.
type Question struct {
	ID       int
	Question string
}

// CandidateProfile carries the read-only candidate hints consumed before a
// session starts.
type CandidateProfile struct {
	FullName    string
	Email       string
	LinkedInURL string
}

// TypeDescription is the setup copy shown for an interview type.
type TypeDescription struct {
	Description string
	Examples    []string
}

var typeDescriptions = map[store.InterviewType]TypeDescription{
	store.TypeBehavioral: {
		Description: "Focus on your past experiences, behaviors, and soft skills with questions about how you've handled specific situations.",
		Examples: []string{
			"Tell me about a challenge you faced at work and how you overcame it.",
			"Describe a situation where you had to work under pressure.",
		},
	},
	store.TypeTechnical: {
		Description: "Assesses your technical knowledge, problem-solving skills, and coding abilities related to the job role.",
		Examples: []string{
			"Explain the difference between SQL and NoSQL databases.",
			"How would you design a rate limiter for an API?",
		},
	},
	store.TypeRoleSpecific: {
		Description: "Tailored questions that dive deep into the specific responsibilities and challenges of the role you're applying for.",
		Examples: []string{
			"How would you approach developing a product roadmap for a new feature?",
			"Describe your process for conducting user research.",
		},
	},
}

// DescribeType returns the setup copy for an interview type.
func DescribeType(t store.InterviewType) (TypeDescription, bool) {
	d, ok := typeDescriptions[t]
	return d, ok
}
