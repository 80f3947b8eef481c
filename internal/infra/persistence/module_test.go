package persistence

import (
	"testing"

	"petkeeper/config"
	"petkeeper/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
)

func TestModule_UnknownProvider(t *testing.T) {
	cfg := &config.Config{Store: &config.StoreConfig{Provider: "dynamo"}}

	app := fx.New(Module(cfg), fx.NopLogger)

	assert.ErrorContains(t, app.Err(), "unknown store provider: dynamo")
}

func TestModule_KnownProviders(t *testing.T) {
	for _, provider := range []string{constants.StoreProviderFirestore, constants.StoreProviderPostgres} {
		t.Run(provider, func(t *testing.T) {
			cfg := &config.Config{Store: &config.StoreConfig{Provider: provider}}

			// Constructors only run when something depends on them.
			app := fx.New(Module(cfg), fx.NopLogger)

			assert.NoError(t, app.Err())
		})
	}
}
