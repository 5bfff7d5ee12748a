package assessment

import (
	"github.com/interprepai/interprep/internal/oracle"
	"github.com/interprepai/interprep/internal/store"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*Service, error) {
		oracleClient := do.MustInvoke[oracle.Client](i)
		st := do.MustInvoke[store.Store](i)
		return NewService(oracleClient, st), nil
	})
}
