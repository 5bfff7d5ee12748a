package oracle

import (
	"context"

	"github.com/interprepai/interprep/internal/config"
	"github.com/interprepai/interprep/internal/oracle"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (oracle.Client, error) {
		c := do.MustInvoke[*config.Config](i)
		return NewGeminiClient(context.Background(), c.GeminiAPIKey, c.GeminiModel)
	})
}
