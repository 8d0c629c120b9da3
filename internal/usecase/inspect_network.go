package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/samber/lo"
	"github.com/trebuchet-org/ecdbg/internal/domain"
	"github.com/trebuchet-org/ecdbg/internal/domain/config"
	"github.com/trebuchet-org/ecdbg/internal/domain/models"
)

// Check names used in failure records
const (
	CheckDetect   = "detect"
	CheckTopology = "topology"
	CheckBalances = "balances"
	CheckPriority = "priority"
)

// InspectNetworkParams selects the checks to run
type InspectNetworkParams struct {
	Balances bool
	Priority bool

	// ChainIDs limits per-chain checks; all known chains when empty
	ChainIDs []uint64

	// SelectChain asks for a chain interactively when ChainIDs is empty.
	// SelectChains asks for any number of chains instead.
	SelectChain  bool
	SelectChains bool

	// SnapshotPath writes the report to disk when set
	SnapshotPath string
}

// CheckFailure is a failed check that did not stop the others
type CheckFailure struct {
	Endpoint string `json:"endpoint"`
	Check    string `json:"check"`
	ChainID  uint64 `json:"chainId,omitempty"`
	Error    string `json:"error"`
	Err      error  `json:"-"`
}

// LayerReport is everything learned about one endpoint
type LayerReport struct {
	Endpoint *models.Endpoint          `json:"endpoint"`
	Snapshot *models.Snapshot          `json:"snapshot,omitempty"`
	Balances []*models.ChainBalances   `json:"balances,omitempty"`
	Verdicts []*models.PriorityVerdict `json:"verdicts,omitempty"`
}

// InspectNetworkResult contains the per-layer reports and every recorded failure
type InspectNetworkResult struct {
	Layers   []*LayerReport `json:"layers"`
	Failures []CheckFailure `json:"failures,omitempty"`
}

// Healthy reports whether every check ran and every priority tree matched
func (r *InspectNetworkResult) Healthy() bool {
	if len(r.Failures) > 0 {
		return false
	}
	for _, layer := range r.Layers {
		for _, verdict := range layer.Verdicts {
			if !verdict.Matches() {
				return false
			}
		}
	}
	return true
}

// InspectNetwork runs topology resolution and the requested checks over
// every configured endpoint. Failures are recorded per endpoint, chain and
// check so that unrelated results remain available.
type InspectNetwork struct {
	cfg       *config.RuntimeConfig
	networks  *ListNetworks
	topology  *ResolveTopology
	balances  *AggregateBalances
	priority  *VerifyPriorityQueue
	clients   ChainClientFactory
	selector  ChainSelector
	snapshots SnapshotWriter
	log       *slog.Logger
}

// NewInspectNetwork creates a new InspectNetwork use case
func NewInspectNetwork(
	cfg *config.RuntimeConfig,
	networks *ListNetworks,
	topology *ResolveTopology,
	balances *AggregateBalances,
	priority *VerifyPriorityQueue,
	clients ChainClientFactory,
	selector ChainSelector,
	snapshots SnapshotWriter,
	log *slog.Logger,
) *InspectNetwork {
	return &InspectNetwork{
		cfg:       cfg,
		networks:  networks,
		topology:  topology,
		balances:  balances,
		priority:  priority,
		clients:   clients,
		selector:  selector,
		snapshots: snapshots,
		log:       log.With("component", "InspectNetwork"),
	}
}

type inspection struct {
	result *InspectNetworkResult

	// chain ids known from base layers, offered to rollups
	candidates []uint64
}

func (in *inspection) fail(endpoint, check string, chainID uint64, err error) {
	in.result.Failures = append(in.result.Failures, CheckFailure{
		Endpoint: endpoint,
		Check:    check,
		ChainID:  chainID,
		Error:    err.Error(),
		Err:      err,
	})
}

// Run executes the use case
func (uc *InspectNetwork) Run(ctx context.Context, params InspectNetworkParams) (*InspectNetworkResult, error) {
	if uc.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.cfg.Timeout)
		defer cancel()
	}

	listed, err := uc.networks.Run(ctx, ListNetworksParams{})
	if err != nil {
		return nil, err
	}

	in := &inspection{result: &InspectNetworkResult{}}
	for _, status := range listed.Networks {
		if status.Error != nil {
			in.fail(status.Name, CheckDetect, 0, status.Error)
		}
	}

	// Base layers first so rollups can look up the chains they may host
	endpoints := listed.Endpoints()
	sort.SliceStable(endpoints, func(i, j int) bool {
		return endpoints[i].Layer.IsBase() && !endpoints[j].Layer.IsBase()
	})

	for _, endpoint := range endpoints {
		if err := uc.inspectEndpoint(ctx, in, params, endpoint); err != nil {
			return nil, err
		}
	}

	if params.SnapshotPath != "" {
		if err := uc.snapshots.WriteSnapshot(ctx, params.SnapshotPath, in.result); err != nil {
			return nil, fmt.Errorf("failed to write snapshot: %w", err)
		}
	}
	return in.result, nil
}

// inspectEndpoint records check failures in the inspection and returns only
// errors that end the whole run
func (uc *InspectNetwork) inspectEndpoint(ctx context.Context, in *inspection, params InspectNetworkParams, endpoint *models.Endpoint) error {
	layer := &LayerReport{Endpoint: endpoint}
	in.result.Layers = append(in.result.Layers, layer)

	client, err := uc.clients.Dial(ctx, endpoint.RPCURL)
	if err != nil {
		in.fail(endpoint.Name, CheckDetect, 0, err)
		return nil
	}
	defer client.Close()

	resolved, err := uc.topology.Run(ctx, ResolveTopologyParams{
		Endpoint:          endpoint,
		Client:            client,
		CandidateChainIDs: in.candidates,
	})
	if err != nil {
		in.fail(endpoint.Name, CheckTopology, 0, err)
		return nil
	}
	layer.Snapshot = resolved.Snapshot

	// Vault balances and priority trees live on the base layer
	if !endpoint.Layer.IsBase() {
		return nil
	}
	in.candidates = lo.Uniq(append(in.candidates, resolved.Snapshot.ChainIDs()...))

	chainIDs, err := uc.chainIDs(ctx, params, resolved.Snapshot)
	if err != nil {
		return err
	}

	if params.Balances {
		uc.runBalances(ctx, in, layer, client, chainIDs)
	}
	if params.Priority {
		uc.runPriority(ctx, in, layer, client, chainIDs)
	}
	return nil
}

func (uc *InspectNetwork) chainIDs(ctx context.Context, params InspectNetworkParams, snapshot *models.Snapshot) ([]uint64, error) {
	if len(params.ChainIDs) > 0 {
		return params.ChainIDs, nil
	}
	interactive := params.SelectChain || params.SelectChains
	if !interactive || uc.cfg.NonInteractive || len(snapshot.Chains) == 0 {
		return snapshot.ChainIDs(), nil
	}

	chains := lo.Map(snapshot.ChainIDs(), func(id uint64, _ int) *models.ChainEntry {
		return snapshot.Chains[id]
	})
	book := domain.NewAddressBook().With(snapshot.RegistryRoot, "Bridgehub")

	if params.SelectChains {
		picked, err := uc.selector.SelectChains(ctx, chains, book, fmt.Sprintf("Select chains on %s", snapshot.Endpoint))
		if err != nil {
			return nil, fmt.Errorf("chain selection: %w", err)
		}
		return lo.Map(picked, func(c *models.ChainEntry, _ int) uint64 { return c.ChainID }), nil
	}

	picked, err := uc.selector.SelectChain(ctx, chains, book, fmt.Sprintf("Select a chain on %s", snapshot.Endpoint))
	if err != nil {
		return nil, fmt.Errorf("chain selection: %w", err)
	}
	return []uint64{picked.ChainID}, nil
}

func (uc *InspectNetwork) runBalances(ctx context.Context, in *inspection, layer *LayerReport, client ChainClient, chainIDs []uint64) {
	result, err := uc.balances.Run(ctx, AggregateBalancesParams{
		Snapshot: layer.Snapshot,
		Client:   client,
		ChainIDs: chainIDs,
	})
	if err != nil {
		in.fail(layer.Endpoint.Name, CheckBalances, 0, err)
		return
	}
	layer.Balances = result.Chains
	failed := lo.Keys(result.Failures)
	sort.Slice(failed, func(i, j int) bool { return failed[i] < failed[j] })
	for _, id := range failed {
		in.fail(layer.Endpoint.Name, CheckBalances, id, result.Failures[id])
	}
}

func (uc *InspectNetwork) runPriority(ctx context.Context, in *inspection, layer *LayerReport, client ChainClient, chainIDs []uint64) {
	for _, id := range chainIDs {
		result, err := uc.priority.Run(ctx, VerifyPriorityQueueParams{
			Snapshot: layer.Snapshot,
			Client:   client,
			ChainID:  id,
		})
		if err != nil {
			if errors.Is(err, domain.ErrMissingCapability) {
				uc.log.Info("priority tree not exposed", "chain", id)
			}
			in.fail(layer.Endpoint.Name, CheckPriority, id, err)
			continue
		}
		layer.Verdicts = append(layer.Verdicts, result.Verdict)
		if err := result.Err(); err != nil {
			in.fail(layer.Endpoint.Name, CheckPriority, id, err)
		}
	}
}
