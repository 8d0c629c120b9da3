package app

import (
	"github.com/trebuchet-org/ecdbg/internal/domain/config"
	"github.com/trebuchet-org/ecdbg/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Use cases
	ListNetworks   *usecase.ListNetworks
	InspectNetwork *usecase.InspectNetwork
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	listNetworks *usecase.ListNetworks,
	inspectNetwork *usecase.InspectNetwork,
) (*App, error) {
	return &App{
		Config:         cfg,
		ListNetworks:   listNetworks,
		InspectNetwork: inspectNetwork,
	}, nil
}
