package audio

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/interprepai/interprep/internal/speech"
)

const bytesPerSample = 2

// pcmDuration is the wall-clock length of LINEAR16 mono PCM.
func pcmDuration(byteLen, sampleRateHertz int) time.Duration {
	if sampleRateHertz <= 0 {
		return 0
	}
	samples := byteLen / bytesPerSample
	return time.Duration(samples) * time.Second / time.Duration(sampleRateHertz)
}

// ReaderSource adapts an io.ReadCloser of LINEAR16 mono PCM into a capture
// source, pacing reads to real time so file input behaves like a live
// microphone.
type ReaderSource struct {
	sampleRateHertz int

	mu   sync.Mutex
	r    io.ReadCloser
	next time.Time
}

func NewReaderSource(r io.ReadCloser, sampleRateHertz int) speech.AudioSource {
	return &ReaderSource{r: r, sampleRateHertz: sampleRateHertz}
}

func (s *ReaderSource) Read(buf []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if s.next.IsZero() {
		s.next = now
	}
	if wait := s.next.Sub(now); wait > 0 {
		time.Sleep(wait)
	}

	n, err := io.ReadFull(s.r, buf)
	if err == io.ErrUnexpectedEOF {
		err = nil
	}
	if n > 0 {
		s.next = s.next.Add(pcmDuration(n, s.sampleRateHertz))
	}
	return n, err
}

func (s *ReaderSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Close()
}

// WriterSink plays synthesized PCM by writing it to the underlying writer
// and blocking for the audio's real-time length, so Speak completion tracks
// playback completion.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterSink(w io.Writer) speech.AudioSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Play(ctx context.Context, pcm []byte, sampleRateHertz int) error {
	s.mu.Lock()
	_, err := s.w.Write(pcm)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	timer := time.NewTimer(pcmDuration(len(pcm), sampleRateHertz))
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
