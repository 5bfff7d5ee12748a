package store

import (
	"time"

	"github.com/interprepai/interprep/internal/oracle"
)

type InterviewType string

const (
	TypeBehavioral   InterviewType = "Behavioral"
	TypeTechnical    InterviewType = "Technical"
	TypeRoleSpecific InterviewType = "Role-Specific"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

type Persona string

const (
	PersonaNeutral  Persona = "Neutral"
	PersonaFriendly Persona = "Friendly"
	PersonaStrict   Persona = "Strict"
)

// InterviewConfig is chosen at setup and immutable once a session starts.
type InterviewConfig struct {
	Type       InterviewType `json:"type"`
	Difficulty Difficulty    `json:"difficulty"`
	Persona    Persona       `json:"persona"`
	Role       string        `json:"role"`
}

// TranscriptEntry is appended exactly once per question, in question order,
// and never mutated after append.
type TranscriptEntry struct {
	Question string          `json:"question"`
	Answer   string          `json:"answer"`
	Feedback oracle.Feedback `json:"feedback"`
}

// InterviewSession is created once, after every question has been answered
// and a summary produced; immutable thereafter.
type InterviewSession struct {
	ID              string                `json:"id"`
	Date            time.Time             `json:"date"`
	TypeLabel       string                `json:"type"`
	DurationMinutes int                   `json:"durationMinutes"`
	AverageScore    int                   `json:"averageScore"`
	Config          InterviewConfig       `json:"config"`
	Transcript      []TranscriptEntry     `json:"transcript"`
	Summary         oracle.SessionSummary `json:"summary"`
}

// Assessment is a recruiter-authored question set for a job role.
type Assessment struct {
	ID         string        `json:"id"`
	JobRole    string        `json:"jobRole"`
	CreatedBy  string        `json:"createdBy"`
	CreatedAt  time.Time     `json:"createdAt"`
	Type       InterviewType `json:"type"`
	Difficulty Difficulty    `json:"difficulty"`
	Persona    Persona       `json:"persona"`
	Questions  []string      `json:"questions"`
}

// AssessmentResult records a candidate's completed run of an assessment.
type AssessmentResult struct {
	ID             string           `json:"id"`
	AssessmentID   string           `json:"assessmentId"`
	CandidateName  string           `json:"candidateName"`
	CandidateEmail string           `json:"candidateEmail"`
	CompletedAt    time.Time        `json:"completedAt"`
	Session        InterviewSession `json:"session"`
}
