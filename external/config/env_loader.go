package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	internalconfig "github.com/interprepai/interprep/internal/config"
)

type envConfig struct {
	Env                        string        `env:"ENV" envDefault:"production"`
	GeminiAPIKey               string        `env:"GEMINI_API_KEY,required"`
	GeminiModel                string        `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	GoogleCloudProjectID       string        `env:"GOOGLE_CLOUD_PROJECT_ID,required"`
	GoogleCloudCredentialsJSON string        `env:"GOOGLE_CLOUD_CREDENTIALS_JSON,required"`
	GoogleCloudSpeechLocation  string        `env:"GOOGLE_CLOUD_SPEECH_LOCATION" envDefault:"global"`
	GoogleCloudSpeechModel     string        `env:"GOOGLE_CLOUD_SPEECH_MODEL" envDefault:"latest_long"`
	SpeechLanguage             string        `env:"SPEECH_LANGUAGE" envDefault:"en-US"`
	TTSLanguage                string        `env:"TTS_LANGUAGE" envDefault:"en-US"`
	TTSVoice                   string        `env:"TTS_VOICE"`
	DatabaseURL                string        `env:"DATABASE_URL"`
	ReportWebhookURL           string        `env:"REPORT_WEBHOOK_URL"`
	QuestionCount              int           `env:"QUESTION_COUNT" envDefault:"5"`
	SilenceWindow              time.Duration `env:"SILENCE_WINDOW" envDefault:"5s"`
	TransitionDwell            time.Duration `env:"TRANSITION_DWELL" envDefault:"1500ms"`
	SpeechRetryWait            time.Duration `env:"SPEECH_RETRY_WAIT" envDefault:"1500ms"`
	MaxSpeechRetries           int           `env:"MAX_SPEECH_RETRIES" envDefault:"3"`
	AudioSourcePath            string        `env:"AUDIO_SOURCE_PATH"`
	ResumePath                 string        `env:"RESUME_PATH,required"`
	TargetRole                 string        `env:"TARGET_ROLE,required"`
	InterviewType              string        `env:"INTERVIEW_TYPE" envDefault:"Behavioral"`
	InterviewDifficulty        string        `env:"INTERVIEW_DIFFICULTY" envDefault:"Medium"`
	InterviewPersona           string        `env:"INTERVIEW_PERSONA" envDefault:"Neutral"`
}

func Load() (*internalconfig.Config, error) {
	var raw envConfig
	if err := env.Parse(&raw); err != nil {
		return nil, fmt.Errorf("environment variables are invalid or missing: %w", err)
	}

	cfg := &internalconfig.Config{
		Env:                        raw.Env,
		GeminiAPIKey:               raw.GeminiAPIKey,
		GeminiModel:                raw.GeminiModel,
		GoogleCloudProjectID:       raw.GoogleCloudProjectID,
		GoogleCloudCredentialsJSON: raw.GoogleCloudCredentialsJSON,
		GoogleCloudSpeechLocation:  raw.GoogleCloudSpeechLocation,
		GoogleCloudSpeechModel:     raw.GoogleCloudSpeechModel,
		SpeechLanguage:             raw.SpeechLanguage,
		TTSLanguage:                raw.TTSLanguage,
		TTSVoice:                   raw.TTSVoice,
		DatabaseURL:                raw.DatabaseURL,
		ReportWebhookURL:           raw.ReportWebhookURL,
		QuestionCount:              raw.QuestionCount,
		SilenceWindow:              raw.SilenceWindow,
		TransitionDwell:            raw.TransitionDwell,
		SpeechRetryWait:            raw.SpeechRetryWait,
		MaxSpeechRetries:           raw.MaxSpeechRetries,
		AudioSourcePath:            raw.AudioSourcePath,
		ResumePath:                 raw.ResumePath,
		TargetRole:                 raw.TargetRole,
		InterviewType:              raw.InterviewType,
		InterviewDifficulty:        raw.InterviewDifficulty,
		InterviewPersona:           raw.InterviewPersona,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
