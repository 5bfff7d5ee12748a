package tts

import (
	"github.com/interprepai/interprep/internal/config"
	"github.com/interprepai/interprep/internal/speech"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (speech.Synthesizer, error) {
		c := do.MustInvoke[*config.Config](i)
		sink := do.MustInvoke[speech.AudioSink](i)
		return NewCloudTTSSynthesizer(CloudTTSConfig{
			CredentialsJSON: c.GoogleCloudCredentialsJSON,
			Language:        c.TTSLanguage,
			Voice:           c.TTSVoice,
		}, sink), nil
	})
}
