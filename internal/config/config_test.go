package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Env:                        "development",
		GeminiAPIKey:               "key",
		GeminiModel:                "gemini-1.5-flash",
		GoogleCloudProjectID:       "project-id",
		GoogleCloudCredentialsJSON: `{"type":"service_account"}`,
		SpeechLanguage:             "en-US",
		QuestionCount:              5,
		SilenceWindow:              5 * time.Second,
		TransitionDwell:            1500 * time.Millisecond,
		SpeechRetryWait:            1500 * time.Millisecond,
		MaxSpeechRetries:           3,
	}
}

func TestValidate_Valid(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidate_MissingRequired(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when required fields are missing")
	}
}

func TestValidate_InvalidQuestionCount(t *testing.T) {
	cfg := validConfig()
	cfg.QuestionCount = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-positive question count")
	}
}

func TestValidate_InvalidSilenceWindow(t *testing.T) {
	cfg := validConfig()
	cfg.SilenceWindow = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-positive silence window")
	}
}

func TestValidate_NegativeRetries(t *testing.T) {
	cfg := validConfig()
	cfg.MaxSpeechRetries = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative retry bound")
	}
}

func TestIsDevelopment(t *testing.T) {
	cfg := &Config{Env: "development"}
	if !cfg.IsDevelopment() {
		t.Fatal("expected development mode")
	}
	cfg.Env = "production"
	if cfg.IsDevelopment() {
		t.Fatal("expected non-development mode")
	}
}
