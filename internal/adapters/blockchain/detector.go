package blockchain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trebuchet-org/ecdbg/internal/domain"
	"github.com/trebuchet-org/ecdbg/internal/domain/config"
	"github.com/trebuchet-org/ecdbg/internal/domain/models"
	"github.com/trebuchet-org/ecdbg/internal/usecase"
)

const detectTimeout = 5 * time.Second

// DetectorAdapter classifies configured endpoints. An endpoint that answers
// zks_getBridgehubContract is a rollup; anything else is treated as a base layer.
type DetectorAdapter struct {
	clients *ClientFactoryAdapter
	log     *slog.Logger
}

// NewDetectorAdapter creates a new endpoint detector
func NewDetectorAdapter(clients *ClientFactoryAdapter, log *slog.Logger) *DetectorAdapter {
	return &DetectorAdapter{
		clients: clients,
		log:     log.With("component", "Detector"),
	}
}

// Detect probes network and returns the endpoint it describes
func (d *DetectorAdapter) Detect(ctx context.Context, network config.Network) (*models.Endpoint, error) {
	ctx, cancel := context.WithTimeout(ctx, detectTimeout)
	defer cancel()

	if err := checkPort(ctx, network.RPCURL); err != nil {
		return nil, &domain.TransportError{Op: "connect " + network.RPCURL, Err: err}
	}

	client, err := d.clients.dial(ctx, network.RPCURL)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	latest, err := client.BlockNumber(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := &models.Endpoint{
		Name:        network.Name,
		RPCURL:      network.RPCURL,
		ChainID:     chainID,
		LatestBlock: latest,
	}

	var baseRegistry *common.Address
	err = client.Probe(ctx, &baseRegistry, "zks_getBridgehubContract")
	switch {
	case errors.Is(err, domain.ErrMissingCapability):
		d.log.Debug("no rollup namespace, treating as base layer", "network", network.Name, "error", err)
		endpoint.Layer = models.BaseLayer()
		if network.Bridgehub != nil {
			endpoint.RegistryRoot = *network.Bridgehub
		}
		return endpoint, nil
	case err != nil:
		return nil, err
	}

	var baseChainID hexutil.Uint64
	if err := client.Probe(ctx, &baseChainID, "zks_L1ChainId"); err != nil {
		return nil, fmt.Errorf("rollup endpoint %s: %w", network.Name, err)
	}

	info := models.RollupLayerInfo{BaseChainID: uint64(baseChainID)}
	if baseRegistry != nil {
		info.BaseRegistryRoot = *baseRegistry
	}
	endpoint.Layer = models.RollupLayer(info)
	endpoint.RegistryRoot = domain.L2BridgehubAddress
	if network.Bridgehub != nil {
		endpoint.RegistryRoot = *network.Bridgehub
	}

	d.log.Debug("endpoint detected", "network", network.Name, "chain", chainID, "layer", endpoint.Layer)
	return endpoint, nil
}

// checkPort fails fast when nothing listens on the endpoint's host
func checkPort(ctx context.Context, rpcURL string) error {
	u, err := url.Parse(rpcURL)
	if err != nil {
		return fmt.Errorf("invalid RPC URL: %w", err)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid RPC URL %q: missing host", rpcURL)
	}

	port := u.Port()
	if port == "" {
		switch u.Scheme {
		case "https", "wss":
			port = "443"
		default:
			port = "80"
		}
	}

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(u.Hostname(), port))
	if err != nil {
		return err
	}
	return conn.Close()
}

var _ usecase.EndpointDetector = (*DetectorAdapter)(nil)
