package interview

import (
	"github.com/interprepai/interprep/internal/config"
	"github.com/interprepai/interprep/internal/oracle"
	"github.com/interprepai/interprep/internal/speech"
	"github.com/interprepai/interprep/internal/store"
	"github.com/interprepai/interprep/internal/webhook"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		oracleClient := do.MustInvoke[oracle.Client](i)
		recognizer := do.MustInvoke[speech.Recognizer](i)
		synth := do.MustInvoke[speech.Synthesizer](i)
		st := do.MustInvoke[store.Store](i)
		wh := do.MustInvoke[webhook.Sender](i)
		return NewService(cfg, oracleClient, recognizer, synth, st, wh), nil
	})
}
