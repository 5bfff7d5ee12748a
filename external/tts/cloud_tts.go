package tts

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"cloud.google.com/go/auth/credentials"
	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	texttospeechpb "cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/interprepai/interprep/internal/speech"
	"google.golang.org/api/option"
)

const synthesisSampleRateHertz = 16000

type CloudTTSConfig struct {
	CredentialsJSON string
	Language        string
	Voice           string
}

// CloudTTSSynthesizer speaks question text through Cloud Text-to-Speech,
// playing the synthesized LINEAR16 audio into the sink. Speak returns when
// playback completes or the context is cancelled.
type CloudTTSSynthesizer struct {
	cfg  CloudTTSConfig
	sink speech.AudioSink

	mu        sync.Mutex
	client    *texttospeech.Client
	voiceName string
	resolved  bool
}

func NewCloudTTSSynthesizer(cfg CloudTTSConfig, sink speech.AudioSink) speech.Synthesizer {
	return &CloudTTSSynthesizer{cfg: cfg, sink: sink}
}

func (s *CloudTTSSynthesizer) Speak(ctx context.Context, text string) error {
	client, err := s.getClient(ctx)
	if err != nil {
		return err
	}
	voiceName, err := s.resolveVoice(ctx, client)
	if err != nil {
		return err
	}

	resp, err := client.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: s.cfg.Language,
			Name:         voiceName,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding:   texttospeechpb.AudioEncoding_LINEAR16,
			SampleRateHertz: synthesisSampleRateHertz,
		},
	})
	if err != nil {
		return fmt.Errorf("synthesize speech: %w", err)
	}
	return s.sink.Play(ctx, resp.GetAudioContent(), synthesisSampleRateHertz)
}

func (s *CloudTTSSynthesizer) getClient(ctx context.Context) (*texttospeech.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client != nil {
		return s.client, nil
	}

	creds, err := credentials.DetectDefault(&credentials.DetectOptions{
		CredentialsJSON: []byte(s.cfg.CredentialsJSON),
		Scopes:          []string{"https://www.googleapis.com/auth/cloud-platform"},
	})
	if err != nil {
		return nil, fmt.Errorf("detect credentials: %w", err)
	}
	client, err := texttospeech.NewClient(ctx, option.WithAuthCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("create text-to-speech client: %w", err)
	}
	s.client = client
	return client, nil
}

// resolveVoice lists the voices for the configured language once and caches
// the ranked-preference pick for the rest of the process.
func (s *CloudTTSSynthesizer) resolveVoice(ctx context.Context, client *texttospeech.Client) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.resolved {
		return s.voiceName, nil
	}

	resp, err := client.ListVoices(ctx, &texttospeechpb.ListVoicesRequest{LanguageCode: s.cfg.Language})
	if err != nil {
		return "", fmt.Errorf("list voices: %w", err)
	}
	names := make([]string, 0, len(resp.GetVoices()))
	for _, v := range resp.GetVoices() {
		names = append(names, v.GetName())
	}
	s.voiceName = selectVoiceName(s.cfg.Voice, names)
	s.resolved = true
	if s.voiceName == "" {
		slog.Warn("no matching voice found; using engine default", "language", s.cfg.Language)
	} else {
		slog.Info("interviewer voice selected", "voice", s.voiceName)
	}
	return s.voiceName, nil
}
