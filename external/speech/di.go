package speech

import (
	"github.com/interprepai/interprep/internal/config"
	"github.com/interprepai/interprep/internal/speech"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (speech.Recognizer, error) {
		c := do.MustInvoke[*config.Config](i)
		source := do.MustInvoke[speech.AudioSource](i)
		return NewCloudSpeechRecognizer(CloudSpeechConfig{
			ProjectID:       c.GoogleCloudProjectID,
			CredentialsJSON: c.GoogleCloudCredentialsJSON,
			Language:        c.SpeechLanguage,
			Location:        c.GoogleCloudSpeechLocation,
			Model:           c.GoogleCloudSpeechModel,
		}, source), nil
	})
}
