package speech

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"cloud.google.com/go/auth/credentials"
	speechapi "cloud.google.com/go/speech/apiv2"
	speechpb "cloud.google.com/go/speech/apiv2/speechpb"
	"github.com/interprepai/interprep/internal/speech"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	speechAPIEndpointPort = 443
	audioSampleRateHertz  = 16000
	audioChannelCount     = 1
	// 100ms of LINEAR16 mono at 16kHz.
	audioFrameBytes = audioSampleRateHertz / 10 * 2
)

type CloudSpeechConfig struct {
	ProjectID       string
	CredentialsJSON string
	Language        string
	Location        string
	Model           string
}

// CloudSpeechRecognizer streams microphone PCM to Cloud Speech for one
// listening turn at a time. Start opens a fresh streaming session; Stop
// drains it gracefully so trailing final results still arrive; Abort kills
// it outright.
type CloudSpeechRecognizer struct {
	cfg    CloudSpeechConfig
	source speech.AudioSource

	mu     sync.Mutex
	active *recognitionTurn
}

func NewCloudSpeechRecognizer(cfg CloudSpeechConfig, source speech.AudioSource) speech.Recognizer {
	cfg.Location = strings.TrimSpace(cfg.Location)
	cfg.Model = strings.TrimSpace(cfg.Model)
	return &CloudSpeechRecognizer{cfg: cfg, source: source}
}

func (r *CloudSpeechRecognizer) Start(listener speech.Listener) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active != nil {
		return errors.New("recognizer already started")
	}

	ctx, cancel := context.WithCancel(context.Background())
	client, stream, err := r.openStream(ctx)
	if err != nil {
		cancel()
		return err
	}
	slog.Info("cloud speech stream initialized", "location", r.cfg.Location, "language", r.cfg.Language, "model", r.cfg.Model)

	t := &recognitionTurn{
		cancel:   cancel,
		client:   client,
		stream:   stream,
		listener: listener,
	}
	r.active = t
	go t.pump(r.source)
	go t.receive(r.clearActive)
	listener.OnStart()
	return nil
}

func (r *CloudSpeechRecognizer) Stop() {
	r.mu.Lock()
	t := r.active
	r.mu.Unlock()
	if t != nil {
		t.stopSending()
	}
}

func (r *CloudSpeechRecognizer) Abort() {
	r.mu.Lock()
	t := r.active
	r.mu.Unlock()
	if t != nil {
		t.stopping.Store(true)
		t.cancel()
	}
}

func (r *CloudSpeechRecognizer) clearActive() {
	r.mu.Lock()
	r.active = nil
	r.mu.Unlock()
}

func (r *CloudSpeechRecognizer) openStream(ctx context.Context) (*speechapi.Client, speechpb.Speech_StreamingRecognizeClient, error) {
	creds, err := credentials.DetectDefault(&credentials.DetectOptions{
		CredentialsJSON: []byte(r.cfg.CredentialsJSON),
		Scopes:          []string{"https://www.googleapis.com/auth/cloud-platform"},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("detect credentials: %w", err)
	}

	opts := []option.ClientOption{
		option.WithAuthCredentials(creds),
	}
	if r.cfg.Location != "global" {
		opts = append(opts, option.WithEndpoint(fmt.Sprintf("%s-speech.googleapis.com:%d", r.cfg.Location, speechAPIEndpointPort)))
	}

	client, err := speechapi.NewClient(ctx, opts...)
	if err != nil {
		return nil, nil, err
	}
	stream, err := client.StreamingRecognize(ctx)
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	recognizer := fmt.Sprintf("projects/%s/locations/%s/recognizers/_", r.cfg.ProjectID, r.cfg.Location)
	err = stream.Send(&speechpb.StreamingRecognizeRequest{
		Recognizer: recognizer,
		StreamingRequest: &speechpb.StreamingRecognizeRequest_StreamingConfig{
			StreamingConfig: &speechpb.StreamingRecognitionConfig{
				Config: &speechpb.RecognitionConfig{
					Model:         r.cfg.Model,
					LanguageCodes: []string{r.cfg.Language},
					DecodingConfig: &speechpb.RecognitionConfig_ExplicitDecodingConfig{
						ExplicitDecodingConfig: &speechpb.ExplicitDecodingConfig{
							Encoding:          speechpb.ExplicitDecodingConfig_LINEAR16,
							SampleRateHertz:   audioSampleRateHertz,
							AudioChannelCount: audioChannelCount,
						},
					},
					Features: &speechpb.RecognitionFeatures{},
				},
				StreamingFeatures: &speechpb.StreamingRecognitionFeatures{InterimResults: true},
			},
		},
	})
	if err != nil {
		_ = stream.CloseSend()
		_ = client.Close()
		return nil, nil, err
	}
	return client, stream, nil
}

type recognitionTurn struct {
	cancel   context.CancelFunc
	client   *speechapi.Client
	stream   speechpb.Speech_StreamingRecognizeClient
	listener speech.Listener

	stopping atomic.Bool
	stopOnce sync.Once
}

// stopSending ends the audio half of the stream. The service then flushes
// its remaining results and closes the receive half, which fires OnEnd.
func (t *recognitionTurn) stopSending() {
	t.stopOnce.Do(func() {
		t.stopping.Store(true)
		if err := t.stream.CloseSend(); err != nil {
			slog.Warn("failed to close send stream", "error", err)
		}
	})
}

// pump copies capture frames into the stream until the turn stops or the
// source dries up. Send failures are left for the receive loop to classify.
func (t *recognitionTurn) pump(source speech.AudioSource) {
	buf := make([]byte, audioFrameBytes)
	for !t.stopping.Load() {
		n, err := source.Read(buf)
		if err != nil {
			if err != io.EOF {
				slog.Warn("audio source read failed", "error", err)
			}
			t.stopSending()
			return
		}
		if n == 0 {
			continue
		}
		req := &speechpb.StreamingRecognizeRequest{
			StreamingRequest: &speechpb.StreamingRecognizeRequest_Audio{
				Audio: buf[:n],
			},
		}
		if err := t.stream.Send(req); err != nil {
			return
		}
	}
}

func (t *recognitionTurn) receive(done func()) {
	defer func() {
		t.cancel()
		_ = t.client.Close()
		done()
		t.listener.OnEnd()
	}()

	var finals []string
	interim := ""
	for {
		resp, err := t.stream.Recv()
		if err != nil {
			if err == io.EOF && t.stopping.Load() {
				return
			}
			kind := classifyStreamError(err)
			if kind == speech.ErrorAborted {
				slog.Info("recognition stream aborted", "reason", err.Error())
			} else {
				slog.Error("recognition stream failed", "error", err, "kind", kind.String())
			}
			t.listener.OnError(kind, err)
			return
		}

		delivered := false
		for _, result := range resp.GetResults() {
			alts := result.GetAlternatives()
			if len(alts) == 0 {
				continue
			}
			if result.GetIsFinal() {
				finals = append(finals, strings.TrimSpace(alts[0].GetTranscript()))
				interim = ""
			} else {
				interim = alts[0].GetTranscript()
			}
			delivered = true
		}
		if !delivered {
			continue
		}
		combined := strings.TrimSpace(strings.Join(finals, " ") + " " + interim)
		t.listener.OnResult(combined, interim == "" && len(finals) > 0)
	}
}

// classifyStreamError maps transport errors onto the recognizer error kinds
// the session controller's retry policy is written against.
func classifyStreamError(err error) speech.ErrorKind {
	if errors.Is(err, context.Canceled) || strings.Contains(err.Error(), "operation was cancelled") {
		return speech.ErrorAborted
	}
	if err == io.EOF {
		return speech.ErrorNetwork
	}
	st, ok := status.FromError(err)
	if !ok {
		return speech.ErrorOther
	}
	switch st.Code() {
	case codes.Canceled:
		return speech.ErrorAborted
	case codes.Unavailable, codes.DeadlineExceeded, codes.Aborted:
		return speech.ErrorNetwork
	case codes.PermissionDenied, codes.Unauthenticated:
		return speech.ErrorNotAllowed
	case codes.OutOfRange:
		return speech.ErrorNoSpeech
	default:
		return speech.ErrorOther
	}
}
