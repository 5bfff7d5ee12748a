package speech

import "context"

// ErrorKind classifies recognizer failures so the session controller can
// apply the right policy without inspecting adapter-specific errors.
type ErrorKind int

const (
	// ErrorAborted is raised when recognition is torn down programmatically.
	// It is part of a normal stop and must never be treated as a failure.
	ErrorAborted ErrorKind = iota
	// ErrorNetwork is a transient transport failure; recognition may be
	// restarted.
	ErrorNetwork
	// ErrorNoSpeech means the device heard nothing usable. Informational.
	ErrorNoSpeech
	// ErrorNotAllowed means microphone access was denied.
	ErrorNotAllowed
	// ErrorOther covers everything else.
	ErrorOther
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorAborted:
		return "aborted"
	case ErrorNetwork:
		return "network"
	case ErrorNoSpeech:
		return "no-speech"
	case ErrorNotAllowed:
		return "not-allowed"
	default:
		return "other"
	}
}

// Listener receives recognition lifecycle and result events. Callbacks may
// arrive on adapter-owned goroutines; implementations must hand them off
// rather than mutate state in place.
type Listener interface {
	// OnStart fires once capture is actually armed.
	OnStart()
	// OnResult delivers the best transcript accumulated for the current
	// utterance. isFinal marks that all pending results are final.
	OnResult(text string, isFinal bool)
	// OnEnd fires when recognition ends, by any path.
	OnEnd()
	OnError(kind ErrorKind, err error)
}

// Recognizer is a continuous, interim-results capable speech input device.
type Recognizer interface {
	// Start arms capture and begins streaming events to the listener.
	Start(listener Listener) error
	// Stop ends capture gracefully; pending results are flushed and OnEnd
	// fires afterwards.
	Stop()
	// Abort tears capture down immediately. OnEnd still fires, but the
	// accompanying error, if any, carries ErrorAborted.
	Abort()
}

// Synthesizer speaks text aloud. Speak returns once playback has finished,
// or early with ctx.Err() when cancelled.
type Synthesizer interface {
	Speak(ctx context.Context, text string) error
}

// AudioSource supplies LINEAR16 PCM frames from the capture device.
// Read blocks until a frame is available and reports io.EOF when the
// device closes.
type AudioSource interface {
	Read(buf []byte) (int, error)
	Close() error
}

// AudioSink consumes synthesized LINEAR16 PCM for playback.
type AudioSink interface {
	Play(ctx context.Context, pcm []byte, sampleRateHertz int) error
}
