//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/ecdbg/internal/adapters"
	"github.com/trebuchet-org/ecdbg/internal/config"
	"github.com/trebuchet-org/ecdbg/internal/logging"
	"github.com/trebuchet-org/ecdbg/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewListNetworks,
		usecase.NewResolveTopology,
		usecase.NewAggregateBalances,
		usecase.NewVerifyPriorityQueue,
		usecase.NewInspectNetwork,

		// App
		NewApp,
	)
	return nil, nil
}
