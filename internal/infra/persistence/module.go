// Package persistence selects the document store backing the repositories.
package persistence

import (
	"petkeeper/config"
	"petkeeper/internal/domain/constants"
	"petkeeper/internal/infra/firebaseapp"
	"petkeeper/internal/infra/persistence/firestore"
	"petkeeper/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Module provides the user, pet and task repositories of the configured store.
func Module(cfg *config.Config) fx.Option {
	switch cfg.Store.Provider {
	case constants.StoreProviderFirestore:
		return fx.Provide(
			firebaseapp.NewFirestoreClient,
			firestore.NewUserRepository,
			firestore.NewPetRepository,
			firestore.NewTaskRepository,
		)
	case constants.StoreProviderPostgres:
		return fx.Provide(
			postgres.New,
			postgres.NewUserRepository,
			postgres.NewPetRepository,
			postgres.NewTaskRepository,
		)
	default:
		return fx.Error(errors.Errorf("unknown store provider: %s", cfg.Store.Provider))
	}
}
