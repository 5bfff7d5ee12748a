package audio

import (
	"fmt"
	"io"
	"os"

	"github.com/interprepai/interprep/internal/config"
	"github.com/interprepai/interprep/internal/speech"
	"github.com/samber/do/v2"
)

const captureSampleRateHertz = 16000

// RegisterDI provides the demo audio devices: capture reads LINEAR16 PCM
// from the configured file, or stdin when none is set, paced to real time;
// playback is discarded.
func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (speech.AudioSource, error) {
		c := do.MustInvoke[*config.Config](i)
		if c.AudioSourcePath == "" {
			return NewReaderSource(os.Stdin, captureSampleRateHertz), nil
		}
		f, err := os.Open(c.AudioSourcePath)
		if err != nil {
			return nil, fmt.Errorf("open audio source: %w", err)
		}
		return NewReaderSource(f, captureSampleRateHertz), nil
	})
	do.Provide(injector, func(i do.Injector) (speech.AudioSink, error) {
		return NewWriterSink(io.Discard), nil
	})
}
