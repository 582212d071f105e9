package storagefx

import (
	"go.uber.org/fx"
	"promptly/internal/infra"
)

var Module = fx.Provide(
	provideObjectStore)

func provideObjectStore() (infra.ObjectStore, error) {
	return infra.NewS3ObjectStore()
}
