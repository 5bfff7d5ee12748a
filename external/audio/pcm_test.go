package audio

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"
)

func TestPCMDuration(t *testing.T) {
	// 16000 samples of mono LINEAR16 at 16kHz is exactly one second.
	if got := pcmDuration(32000, 16000); got != time.Second {
		t.Errorf("pcmDuration(32000, 16000) = %s, want 1s", got)
	}
	if got := pcmDuration(3200, 16000); got != 100*time.Millisecond {
		t.Errorf("pcmDuration(3200, 16000) = %s, want 100ms", got)
	}
	if got := pcmDuration(100, 0); got != 0 {
		t.Errorf("pcmDuration with zero rate = %s, want 0", got)
	}
}

func TestReaderSourceDrainsAndEOFs(t *testing.T) {
	data := bytes.Repeat([]byte{1, 2}, 100)
	src := NewReaderSource(io.NopCloser(bytes.NewReader(data)), 16000)

	buf := make([]byte, 64)
	total := 0
	for {
		n, err := src.Read(buf)
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Read returned error: %v", err)
		}
	}
	if total != len(data) {
		t.Errorf("read %d bytes, want %d", total, len(data))
	}
}

func TestWriterSinkPlaysAndHonorsCancel(t *testing.T) {
	var out bytes.Buffer
	sink := NewWriterSink(&out)

	// 10ms of audio plays to completion.
	pcm := make([]byte, 320)
	if err := sink.Play(context.Background(), pcm, 16000); err != nil {
		t.Fatalf("Play returned error: %v", err)
	}
	if out.Len() != len(pcm) {
		t.Errorf("wrote %d bytes, want %d", out.Len(), len(pcm))
	}

	// A long clip is cut short by cancellation.
	ctx, cancel := context.WithCancel(context.Background())
	long := make([]byte, 32000*10)
	done := make(chan error, 1)
	go func() { done <- sink.Play(ctx, long, 16000) }()
	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Play did not return after cancellation")
	}
}
