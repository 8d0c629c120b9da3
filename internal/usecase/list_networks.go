package usecase

import (
	"context"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/ecdbg/internal/domain/config"
	"github.com/trebuchet-org/ecdbg/internal/domain/models"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// Currently no parameters, but we keep the struct for future extensibility
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Name     string
	RPCURL   string
	Endpoint *models.Endpoint
	Error    error
}

// Endpoints returns the endpoints that were reached
func (r *ListNetworksResult) Endpoints() []*models.Endpoint {
	var endpoints []*models.Endpoint
	for _, status := range r.Networks {
		if status.Endpoint != nil {
			endpoints = append(endpoints, status.Endpoint)
		}
	}
	return endpoints
}

// ListNetworks is a use case for detecting the configured endpoints
type ListNetworks struct {
	cfg      *config.RuntimeConfig
	detector EndpointDetector
	log      *slog.Logger
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(cfg *config.RuntimeConfig, detector EndpointDetector, log *slog.Logger) *ListNetworks {
	return &ListNetworks{
		cfg:      cfg,
		detector: detector,
		log:      log.With("component", "ListNetworks"),
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	networks := make([]NetworkStatus, 0, len(uc.cfg.Networks))
	for _, network := range uc.cfg.Networks {
		status := NetworkStatus{
			Name:   network.Name,
			RPCURL: network.RPCURL,
		}

		endpoint, err := uc.detector.Detect(ctx, network)
		if err != nil {
			uc.log.Debug("endpoint unavailable", "network", network.Name, "error", err)
			status.Error = err
		} else {
			status.Endpoint = endpoint
		}

		networks = append(networks, status)
	}

	linkBaseRegistries(networks)

	return &ListNetworksResult{
		Networks: networks,
	}, nil
}

// linkBaseRegistries gives base layer endpoints without a configured
// registry root the one their rollups report
func linkBaseRegistries(networks []NetworkStatus) {
	reported := make(map[uint64]common.Address)
	for _, status := range networks {
		if ep := status.Endpoint; ep != nil && ep.Layer.IsRollup() {
			reported[ep.Layer.Rollup.BaseChainID] = ep.Layer.Rollup.BaseRegistryRoot
		}
	}
	for _, status := range networks {
		ep := status.Endpoint
		if ep == nil || !ep.Layer.IsBase() || ep.RegistryRoot != (common.Address{}) {
			continue
		}
		if root, ok := reported[ep.ChainID]; ok {
			ep.RegistryRoot = root
		}
	}
}
