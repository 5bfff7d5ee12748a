package config

import (
	"fmt"
	"time"
)

type Config struct {
	Env string

	GeminiAPIKey string
	GeminiModel  string

	GoogleCloudProjectID       string
	GoogleCloudCredentialsJSON string
	GoogleCloudSpeechLocation  string
	GoogleCloudSpeechModel     string
	SpeechLanguage             string

	TTSLanguage string
	TTSVoice    string

	DatabaseURL      string
	ReportWebhookURL string

	QuestionCount    int
	SilenceWindow    time.Duration
	TransitionDwell  time.Duration
	SpeechRetryWait  time.Duration
	MaxSpeechRetries int

	AudioSourcePath     string
	ResumePath          string
	TargetRole          string
	InterviewType       string
	InterviewDifficulty string
	InterviewPersona    string
}

func (c *Config) Validate() error {
	for _, req := range c.requiredFieldChecks() {
		if req.value == "" {
			return fmt.Errorf("%s is required", req.name)
		}
	}
	if c.QuestionCount <= 0 {
		return fmt.Errorf("QUESTION_COUNT must be positive, got %d", c.QuestionCount)
	}
	if c.SilenceWindow <= 0 {
		return fmt.Errorf("SILENCE_WINDOW must be positive, got %s", c.SilenceWindow)
	}
	if c.MaxSpeechRetries < 0 {
		return fmt.Errorf("MAX_SPEECH_RETRIES must not be negative, got %d", c.MaxSpeechRetries)
	}
	return nil
}

type requiredEnvField struct {
	name  string
	value string
}

func (c *Config) requiredFieldChecks() []requiredEnvField {
	return []requiredEnvField{
		{name: "GEMINI_API_KEY", value: c.GeminiAPIKey},
		{name: "GOOGLE_CLOUD_PROJECT_ID", value: c.GoogleCloudProjectID},
		{name: "GOOGLE_CLOUD_CREDENTIALS_JSON", value: c.GoogleCloudCredentialsJSON},
		{name: "SPEECH_LANGUAGE", value: c.SpeechLanguage},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
