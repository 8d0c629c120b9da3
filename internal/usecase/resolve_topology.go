package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
	"github.com/trebuchet-org/ecdbg/internal/domain"
	"github.com/trebuchet-org/ecdbg/internal/domain/bindings"
	"github.com/trebuchet-org/ecdbg/internal/domain/config"
	"github.com/trebuchet-org/ecdbg/internal/domain/models"
	"golang.org/x/sync/errgroup"
)

// ResolveTopologyParams contains parameters for resolving a layer's registry graph
type ResolveTopologyParams struct {
	Endpoint *models.Endpoint
	Client   ChainClient

	// CandidateChainIDs and ManagerHints seed manager discovery on a
	// rollup layer, where managers are not enumerated
	CandidateChainIDs []uint64
	ManagerHints      []common.Address
}

// ResolveTopologyResult contains the resolved snapshot
type ResolveTopologyResult struct {
	Snapshot *models.Snapshot
}

// ResolveTopology builds the registry graph of one layer at a single block
type ResolveTopology struct {
	cfg      *config.RuntimeConfig
	progress ProgressSink
	log      *slog.Logger

	bridgehub *bindings.Bridgehub
	ctm       *bindings.ChainTypeManager
	router    *bindings.L1AssetRouter
	vault     *bindings.NativeTokenVault
	erc20     *bindings.ERC20
	states    stateTransitionReader
}

// NewResolveTopology creates a new ResolveTopology use case
func NewResolveTopology(cfg *config.RuntimeConfig, progress ProgressSink, log *slog.Logger) *ResolveTopology {
	return &ResolveTopology{
		cfg:       cfg,
		progress:  progress,
		log:       log.With("component", "ResolveTopology"),
		bridgehub: bindings.NewBridgehub(),
		ctm:       bindings.NewChainTypeManager(),
		router:    bindings.NewL1AssetRouter(),
		vault:     bindings.NewNativeTokenVault(),
		erc20:     bindings.NewERC20(),
		states:    newStateTransitionReader(),
	}
}

// resolution is the in-progress state of one Run
type resolution struct {
	params   ResolveTopologyParams
	reader   reader
	scanner  *EventScanner
	snapshot *models.Snapshot
}

func (res *resolution) add(entity models.Entity) error {
	address := entity.EntityAddress()
	if existing, ok := res.snapshot.Entities[address]; ok {
		if existing.EntityKind() == entity.EntityKind() {
			return nil
		}
		return fmt.Errorf("address %s resolved as both %s and %s", address.Hex(), existing.EntityKind(), entity.EntityKind())
	}
	res.snapshot.Entities[address] = entity
	return nil
}

func (res *resolution) warn(warns warnings) {
	res.snapshot.Warnings = append(res.snapshot.Warnings, warns...)
}

// Run executes the use case
func (uc *ResolveTopology) Run(ctx context.Context, params ResolveTopologyParams) (*ResolveTopologyResult, error) {
	endpoint := params.Endpoint
	root := endpoint.RegistryRoot
	if root == (common.Address{}) {
		return nil, fmt.Errorf("no registry root known for %s: %w", endpoint.Name, domain.ErrNotFound)
	}

	head, err := params.Client.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read head of %s: %w", endpoint.Name, err)
	}

	res := &resolution{
		params:  params,
		reader:  newReader(params.Client, head),
		scanner: NewEventScanner(params.Client, head, uc.cfg.Scan, uc.log),
		snapshot: &models.Snapshot{
			Endpoint:     endpoint.Name,
			ChainID:      endpoint.ChainID,
			Layer:        endpoint.Layer,
			Block:        head,
			RegistryRoot: root,
			Entities:     make(map[common.Address]models.Entity),
			Chains:       make(map[uint64]*models.ChainEntry),
		},
	}
	uc.log.Debug("resolving topology", "endpoint", endpoint.Name, "root", root.Hex(), "block", head, "layer", endpoint.Layer.String())

	code, err := params.Client.CodeAt(ctx, root, res.reader.block)
	if err != nil {
		return nil, fmt.Errorf("failed to read code of registry root: %w", err)
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("registry root %s on %s: %w", root.Hex(), endpoint.Name, domain.ErrEmptyCode)
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "registry", Message: fmt.Sprintf("Reading registry on %s", endpoint.Name), Spinner: true})
	registry, err := uc.resolveRegistry(ctx, res)
	if err != nil {
		return nil, err
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "managers", Message: fmt.Sprintf("Discovering chain managers on %s", endpoint.Name), Spinner: true})
	managers, err := uc.discoverManagers(ctx, res, registry.ChainIDs)
	if err != nil {
		return nil, err
	}
	registry.Managers = managers

	if endpoint.Layer.IsRollup() && len(registry.ChainIDs) == 0 && len(managers) > 0 {
		ids, err := uc.chainIDsFromManagerEvents(ctx, res, managers)
		if err != nil {
			return nil, err
		}
		registry.ChainIDs = ids
		registry.Discovery = models.DiscoveryManagerEvents
	}

	if err := res.add(registry); err != nil {
		return nil, err
	}
	if err := uc.resolveManagers(ctx, res, managers); err != nil {
		return nil, err
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "assets", Message: fmt.Sprintf("Reading asset router on %s", endpoint.Name), Spinner: true})
	if err := uc.resolveAssetRouter(ctx, res, registry.SharedBridge); err != nil {
		return nil, err
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "chains", Message: fmt.Sprintf("Reading %d chains on %s", len(registry.ChainIDs), endpoint.Name), Spinner: true})
	if err := uc.resolveChains(ctx, res, registry.ChainIDs); err != nil {
		return nil, err
	}
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "done"})

	return &ResolveTopologyResult{Snapshot: res.snapshot}, nil
}

// resolveRegistry reads the registry root pointers and its known chain ids
func (uc *ResolveTopology) resolveRegistry(ctx context.Context, res *resolution) (*models.ChainRegistry, error) {
	root := res.snapshot.RegistryRoot
	bh := uc.bridgehub

	sharedBridge, err := call(ctx, res.reader, root, bh.PackSharedBridge(), bh.UnpackSharedBridge)
	if err != nil {
		return nil, fmt.Errorf("failed to read shared bridge: %w", err)
	}
	deployer, err := call(ctx, res.reader, root, bh.PackL1CtmDeployer(), bh.UnpackL1CtmDeployer)
	if err != nil {
		return nil, fmt.Errorf("failed to read chain manager deployer: %w", err)
	}

	registry := &models.ChainRegistry{
		Address:      root,
		SharedBridge: sharedBridge,
		Deployer:     deployer,
	}

	ids, err := call(ctx, res.reader, root, bh.PackGetAllZKChainChainIDs(), bh.UnpackGetAllZKChainChainIDs)
	switch {
	case err == nil:
		registry.Discovery = models.DiscoveryEnumeration
		for _, id := range ids {
			if !id.IsUint64() {
				return nil, fmt.Errorf("registry returned chain id %s: %w", id, domain.ErrInvalidChainID)
			}
			registry.ChainIDs = append(registry.ChainIDs, id.Uint64())
		}
	case isMissing(err):
		uc.log.Debug("chain enumeration unavailable, scanning creation events", "root", root.Hex())
		registry.Discovery = models.DiscoveryCreationEvents
		registry.ChainIDs, err = uc.chainIDsFromCreationEvents(ctx, res)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("failed to enumerate chains: %w", err)
	}

	registry.ChainIDs = lo.Uniq(registry.ChainIDs)
	return registry, nil
}

func (uc *ResolveTopology) chainIDsFromCreationEvents(ctx context.Context, res *resolution) ([]uint64, error) {
	root := res.snapshot.RegistryRoot
	topic := bindings.MustEventID(uc.bridgehub.GetEventID(bindings.BridgehubNewChainEventName))
	logs, err := res.scanner.Scan(ctx, root, topic)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(logs))
	for i := range logs {
		event, err := uc.bridgehub.UnpackNewChainEvent(&logs[i])
		if err != nil {
			return nil, malformed(bindings.BridgehubNewChainEventName, logs[i].TxHash, logs[i].Index, err)
		}
		if !event.ChainId.IsUint64() {
			return nil, malformed(bindings.BridgehubNewChainEventName, logs[i].TxHash, logs[i].Index, domain.ErrInvalidChainID)
		}
		ids = append(ids, event.ChainId.Uint64())
	}
	return ids, nil
}

// chainIDsFromManagerEvents recovers the chains of a rollup layer from the
// chain creation and migration events of its managers
func (uc *ResolveTopology) chainIDsFromManagerEvents(ctx context.Context, res *resolution, managers []common.Address) ([]uint64, error) {
	created := bindings.MustEventID(uc.ctm.GetEventID(bindings.ChainTypeManagerNewZKChainEventName))
	migrated := bindings.MustEventID(uc.ctm.GetEventID(bindings.ChainTypeManagerMigrationFinalizedEventName))

	var ids []uint64
	for _, manager := range managers {
		logs, err := res.scanner.Scan(ctx, manager, created)
		if err != nil {
			return nil, err
		}
		for i := range logs {
			event, err := uc.ctm.UnpackNewZKChainEvent(&logs[i])
			if err != nil || !event.ChainId.IsUint64() {
				return nil, malformed(bindings.ChainTypeManagerNewZKChainEventName, logs[i].TxHash, logs[i].Index, err)
			}
			ids = append(ids, event.ChainId.Uint64())
		}

		logs, err = res.scanner.Scan(ctx, manager, migrated)
		if err != nil {
			return nil, err
		}
		for i := range logs {
			event, err := uc.ctm.UnpackMigrationFinalizedEvent(&logs[i])
			if err != nil || !event.ChainId.IsUint64() {
				return nil, malformed(bindings.ChainTypeManagerMigrationFinalizedEventName, logs[i].TxHash, logs[i].Index, err)
			}
			ids = append(ids, event.ChainId.Uint64())
		}
	}
	return lo.Uniq(ids), nil
}

// discoverManagers lists manager addresses. The base layer enumerates them
// from registration events; a rollup layer only knows the managers of the
// chains it was asked about.
func (uc *ResolveTopology) discoverManagers(ctx context.Context, res *resolution, chainIDs []uint64) ([]common.Address, error) {
	root := res.snapshot.RegistryRoot
	var managers []common.Address

	if res.snapshot.Layer.IsBase() {
		topic := bindings.MustEventID(uc.bridgehub.GetEventID(bindings.BridgehubChainTypeManagerAddedEventName))
		logs, err := res.scanner.Scan(ctx, root, topic)
		if err != nil {
			return nil, err
		}
		for i := range logs {
			event, err := uc.bridgehub.UnpackChainTypeManagerAddedEvent(&logs[i])
			if err != nil {
				return nil, malformed(bindings.BridgehubChainTypeManagerAddedEventName, logs[i].TxHash, logs[i].Index, err)
			}
			managers = append(managers, event.ChainTypeManager)
		}
		return lo.Uniq(managers), nil
	}

	candidates := lo.Uniq(append(append([]uint64{}, chainIDs...), res.params.CandidateChainIDs...))
	for _, id := range candidates {
		manager, err := call(ctx, res.reader, root, uc.bridgehub.PackChainTypeManager(new(big.Int).SetUint64(id)), uc.bridgehub.UnpackChainTypeManager)
		if err != nil {
			return nil, fmt.Errorf("failed to read manager of chain %d: %w", id, err)
		}
		if manager != (common.Address{}) {
			managers = append(managers, manager)
		}
	}
	managers = append(managers, res.params.ManagerHints...)
	return lo.Uniq(managers), nil
}

// resolveManagers reads every manager concurrently and joins before returning
func (uc *ResolveTopology) resolveManagers(ctx context.Context, res *resolution, addresses []common.Address) error {
	resolved := make([]*models.ChainManager, len(addresses))
	warned := make([]warnings, len(addresses))

	g, ctx := errgroup.WithContext(ctx)
	for i, address := range addresses {
		g.Go(func() error {
			manager, warns, err := uc.resolveManager(ctx, res, address)
			if err != nil {
				return fmt.Errorf("failed to resolve chain manager %s: %w", address.Hex(), err)
			}
			resolved[i] = manager
			warned[i] = warns
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, manager := range resolved {
		if err := res.add(manager); err != nil {
			return err
		}
		res.warn(warned[i])
	}
	return nil
}

func (uc *ResolveTopology) resolveManager(ctx context.Context, res *resolution, address common.Address) (*models.ChainManager, warnings, error) {
	ctm := uc.ctm
	r := res.reader
	manager := &models.ChainManager{Address: address}
	var warns warnings
	var err error

	if manager.RegistryRoot, err = call(ctx, r, address, ctm.PackBRIDGEHUB(), ctm.UnpackBRIDGEHUB); err != nil {
		return nil, nil, fmt.Errorf("bridgehub: %w", err)
	}
	if manager.Admin, err = call(ctx, r, address, ctm.PackAdmin(), ctm.UnpackAdmin); err != nil {
		return nil, nil, fmt.Errorf("admin: %w", err)
	}
	if manager.Owner, err = call(ctx, r, address, ctm.PackOwner(), ctm.UnpackOwner); err != nil {
		return nil, nil, fmt.Errorf("owner: %w", err)
	}
	root := res.snapshot.RegistryRoot
	if manager.AssetID, err = call(ctx, r, root, uc.bridgehub.PackCtmAssetIdFromAddress(address), uc.bridgehub.UnpackCtmAssetIdFromAddress); err != nil {
		return nil, nil, fmt.Errorf("asset id: %w", err)
	}

	if manager.ValidatorTimelock, err = call(ctx, r, address, ctm.PackValidatorTimelock(), ctm.UnpackValidatorTimelock); err != nil {
		if err = warns.degrade(address, "validatorTimelock", err); err != nil {
			return nil, nil, err
		}
	}
	if manager.ProtocolVersion, err = call(ctx, r, address, ctm.PackProtocolVersion(), ctm.UnpackProtocolVersion); err != nil {
		if err = warns.degrade(address, "protocolVersion", err); err != nil {
			return nil, nil, err
		}
	}
	return manager, warns, nil
}

// ClassifyAsset decides the handler of a registered asset from its deployment tracker
func ClassifyAsset(tracker, vault, registryRoot common.Address) models.HandlerKind {
	switch tracker {
	case vault:
		return models.VaultBackedHandler
	case registryRoot:
		return models.RegistryBackedHandler
	default:
		return models.UnknownHandler
	}
}

// resolveAssetRouter builds the asset router. Only the base layer router
// carries a vault and registered assets.
func (uc *ResolveTopology) resolveAssetRouter(ctx context.Context, res *resolution, address common.Address) error {
	if address == (common.Address{}) {
		res.warn(warnings{{Subject: res.snapshot.RegistryRoot, Field: "sharedBridge", Message: "registry has no asset router"}})
		return nil
	}
	res.snapshot.Router = address
	if !res.snapshot.Layer.IsBase() {
		return res.add(&models.AssetRouter{Address: address, Stub: true})
	}

	r := res.reader
	vault, err := call(ctx, r, address, uc.router.PackNativeTokenVault(), uc.router.UnpackNativeTokenVault)
	if err != nil {
		return fmt.Errorf("failed to read native token vault: %w", err)
	}
	backRef, err := call(ctx, r, address, uc.router.PackBRIDGEHUB(), uc.router.UnpackBRIDGEHUB)
	if err != nil {
		return fmt.Errorf("failed to read asset router bridgehub: %w", err)
	}

	topic := bindings.MustEventID(uc.router.GetEventID(bindings.L1AssetRouterAssetHandlerRegisteredInitialEventName))
	logs, err := res.scanner.Scan(ctx, address, topic)
	if err != nil {
		return err
	}

	// Logs are chronological, so a re-registered asset keeps its latest tracker
	trackers := make(map[common.Hash]common.Address)
	var order []common.Hash
	for i := range logs {
		event, err := uc.router.UnpackAssetHandlerRegisteredInitialEvent(&logs[i])
		if err != nil {
			return malformed(bindings.L1AssetRouterAssetHandlerRegisteredInitialEventName, logs[i].TxHash, logs[i].Index, err)
		}
		id := common.Hash(event.AssetId)
		if _, seen := trackers[id]; !seen {
			order = append(order, id)
		}
		trackers[id] = event.AssetHandlerAddress
	}

	assets := make([]*models.RegisteredAsset, len(order))
	warned := make([]warnings, len(order))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range order {
		g.Go(func() error {
			asset, warns, err := uc.resolveAsset(gctx, r, id, trackers[id], vault, res.snapshot.RegistryRoot)
			if err != nil {
				return fmt.Errorf("failed to resolve asset %s: %w", id.Hex(), err)
			}
			assets[i] = asset
			warned[i] = warns
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	router := &models.AssetRouter{
		Address:          address,
		NativeTokenVault: vault,
		RegistryRoot:     backRef,
		Assets:           make(map[common.Hash]*models.RegisteredAsset, len(assets)),
	}
	for i, asset := range assets {
		router.Assets[asset.AssetID] = asset
		res.warn(warned[i])
	}
	return res.add(router)
}

func (uc *ResolveTopology) resolveAsset(ctx context.Context, r reader, id common.Hash, tracker, vault, root common.Address) (*models.RegisteredAsset, warnings, error) {
	asset := &models.RegisteredAsset{
		AssetID: id,
		Handler: models.AssetHandler{Kind: ClassifyAsset(tracker, vault, root), Tracker: tracker},
	}
	if asset.Handler.Kind != models.VaultBackedHandler {
		return asset, nil, nil
	}

	token, err := call(ctx, r, vault, uc.vault.PackTokenAddress(id), uc.vault.UnpackTokenAddress)
	if err != nil {
		return nil, nil, fmt.Errorf("token address: %w", err)
	}
	asset.Handler.TokenAddress = token
	if token == domain.ETHTokenAddress {
		asset.Handler.TokenName, asset.Handler.TokenDecimals = "ETH", 18
		return asset, nil, nil
	}

	var warns warnings
	name, err := call(ctx, r, token, uc.erc20.PackName(), uc.erc20.UnpackName)
	if err = warns.degrade(token, "name", err); err != nil {
		return nil, nil, err
	}
	asset.Handler.TokenName = lo.Ternary(name != "", name, token.Hex())

	decimals, err := call(ctx, r, token, uc.erc20.PackDecimals(), uc.erc20.UnpackDecimals)
	if err != nil {
		if err = warns.degrade(token, "decimals", err); err != nil {
			return nil, nil, err
		}
		decimals = 18
	}
	asset.Handler.TokenDecimals = decimals
	return asset, warns, nil
}

// resolveChains reads the registry entry and state transition of every
// known chain concurrently
func (uc *ResolveTopology) resolveChains(ctx context.Context, res *resolution, ids []uint64) error {
	entries := make([]*models.ChainEntry, len(ids))
	states := make([]*models.StateTransition, len(ids))
	warned := make([]warnings, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			entry, state, warns, err := uc.resolveChain(gctx, res, id)
			if err != nil {
				return fmt.Errorf("failed to resolve chain %d: %w", id, err)
			}
			entries[i], states[i], warned[i] = entry, state, warns
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, entry := range entries {
		res.snapshot.Chains[entry.ChainID] = entry
		if states[i] != nil {
			if err := res.add(states[i]); err != nil {
				return err
			}
		}
		res.warn(warned[i])
	}
	return nil
}

func (uc *ResolveTopology) resolveChain(ctx context.Context, res *resolution, id uint64) (*models.ChainEntry, *models.StateTransition, warnings, error) {
	bh := uc.bridgehub
	r := res.reader
	root := res.snapshot.RegistryRoot
	chainID := new(big.Int).SetUint64(id)
	entry := &models.ChainEntry{ChainID: id}
	var warns warnings
	var err error

	if entry.Manager, err = call(ctx, r, root, bh.PackChainTypeManager(chainID), bh.UnpackChainTypeManager); err != nil {
		return nil, nil, nil, fmt.Errorf("manager: %w", err)
	}
	if entry.StateTransition, err = call(ctx, r, root, bh.PackGetZKChain(chainID), bh.UnpackGetZKChain); err != nil {
		return nil, nil, nil, fmt.Errorf("state transition: %w", err)
	}

	// Unset after a chain migrates away
	if entry.BaseToken, err = call(ctx, r, root, bh.PackBaseToken(chainID), bh.UnpackBaseToken); err != nil {
		if err = warns.degrade(root, fmt.Sprintf("baseToken(%d)", id), err); err != nil {
			return nil, nil, nil, err
		}
	}
	if entry.ManagerAssetID, err = call(ctx, r, root, bh.PackCtmAssetIdFromChainId(chainID), bh.UnpackCtmAssetIdFromChainId); err != nil {
		if err = warns.degrade(root, fmt.Sprintf("ctmAssetIdFromChainId(%d)", id), err); err != nil {
			return nil, nil, nil, err
		}
	}

	if entry.StateTransition == (common.Address{}) {
		return entry, nil, warns, nil
	}
	state, stateWarns, err := uc.states.read(ctx, r, entry.StateTransition)
	if err != nil {
		return nil, nil, nil, err
	}
	return entry, state, append(warns, stateWarns...), nil
}

func malformed(event string, txHash common.Hash, index uint, err error) error {
	reason := "value out of range"
	if err != nil {
		reason = err.Error()
	}
	return &domain.MalformedEventError{Event: event, TxHash: txHash, Index: index, Reason: reason}
}
