package models

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// EntityKind identifies the concrete type behind an Entity
type EntityKind string

const (
	ChainRegistryEntity   EntityKind = "CHAIN_REGISTRY"
	ChainManagerEntity    EntityKind = "CHAIN_MANAGER"
	StateTransitionEntity EntityKind = "STATE_TRANSITION"
	AssetRouterEntity     EntityKind = "ASSET_ROUTER"
)

// Entity is a contract in the registry graph. Entities refer to each other by
// address only; the owning map lives in Snapshot.
type Entity interface {
	EntityAddress() common.Address
	EntityKind() EntityKind
}

// ChainDiscovery records how the known chain id set was obtained
type ChainDiscovery string

const (
	DiscoveryEnumeration    ChainDiscovery = "ENUMERATION"
	DiscoveryCreationEvents ChainDiscovery = "CREATION_EVENTS"
	DiscoveryManagerEvents  ChainDiscovery = "MANAGER_EVENTS"
)

// ChainRegistry is the registry root (bridgehub)
type ChainRegistry struct {
	Address      common.Address   `json:"address"`
	SharedBridge common.Address   `json:"sharedBridge"`
	Deployer     common.Address   `json:"deployer"`
	ChainIDs     []uint64         `json:"chainIds"`
	Discovery    ChainDiscovery   `json:"discovery"`
	Managers     []common.Address `json:"managers"`
}

func (r *ChainRegistry) EntityAddress() common.Address { return r.Address }
func (r *ChainRegistry) EntityKind() EntityKind        { return ChainRegistryEntity }

// ChainManager governs a class of chains (chain type manager)
type ChainManager struct {
	Address           common.Address `json:"address"`
	RegistryRoot      common.Address `json:"registryRoot"`
	Admin             common.Address `json:"admin"`
	Owner             common.Address `json:"owner"`
	AssetID           common.Hash    `json:"assetId"`
	ValidatorTimelock common.Address `json:"validatorTimelock"`
	ProtocolVersion   *big.Int       `json:"protocolVersion,omitempty"`
}

func (m *ChainManager) EntityAddress() common.Address { return m.Address }
func (m *ChainManager) EntityKind() EntityKind        { return ChainManagerEntity }

// ProtocolVersion is the semver triple exposed by a state transition contract
type ProtocolVersion struct {
	Major uint32 `json:"major"`
	Minor uint32 `json:"minor"`
	Patch uint32 `json:"patch"`
}

// PriorityQueueSummary is the on-chain view of the priority queue
type PriorityQueueSummary struct {
	Unprocessed *big.Int    `json:"unprocessed"`
	Total       *big.Int    `json:"total"`
	Root        common.Hash `json:"root"`

	// RootKnown is set only when Root was read from the contract
	RootKnown bool `json:"rootKnown"`
}

// StateTransition is the per-chain contract (hyperchain / ZK chain)
type StateTransition struct {
	Address               common.Address       `json:"address"`
	ChainID               *big.Int             `json:"chainId"`
	TotalBatchesCommitted *big.Int             `json:"totalBatchesCommitted"`
	TotalBatchesVerified  *big.Int             `json:"totalBatchesVerified"`
	TotalBatchesExecuted  *big.Int             `json:"totalBatchesExecuted"`
	ProtocolVersion       ProtocolVersion      `json:"protocolVersion"`
	Verifier              common.Address       `json:"verifier"`
	Admin                 common.Address       `json:"admin"`
	BootloaderHash        common.Hash          `json:"bootloaderHash"`
	DefaultAccountHash    common.Hash          `json:"defaultAccountHash"`
	SystemUpgradeTxHash   common.Hash          `json:"systemUpgradeTxHash"`
	SettlementLayer       common.Address       `json:"settlementLayer"`
	BaseToken             common.Address       `json:"baseToken"`
	PriorityQueue         PriorityQueueSummary `json:"priorityQueue"`

	// FromStorage is set when the fields were decoded from raw storage slots
	FromStorage bool `json:"fromStorage,omitempty"`
}

func (s *StateTransition) EntityAddress() common.Address { return s.Address }
func (s *StateTransition) EntityKind() EntityKind        { return StateTransitionEntity }

// Passive reports whether the chain settles elsewhere
func (s *StateTransition) Passive() bool {
	return s.SettlementLayer != (common.Address{})
}

// HandlerKind classifies a registered asset
type HandlerKind string

const (
	RegistryBackedHandler HandlerKind = "REGISTRY"
	VaultBackedHandler    HandlerKind = "NATIVE_TOKEN_VAULT"
	UnknownHandler        HandlerKind = "OTHER"
)

// AssetHandler is the handler variant of a registered asset. Token fields are
// only meaningful for VaultBackedHandler.
type AssetHandler struct {
	Kind          HandlerKind    `json:"kind"`
	Tracker       common.Address `json:"tracker"`
	TokenAddress  common.Address `json:"tokenAddress,omitempty"`
	TokenName     string         `json:"tokenName,omitempty"`
	TokenDecimals uint8          `json:"tokenDecimals,omitempty"`
}

// RegisteredAsset is an asset known to the asset router
type RegisteredAsset struct {
	AssetID common.Hash  `json:"assetId"`
	Handler AssetHandler `json:"handler"`
}

// AssetRouter is the shared bridge. On a rollup layer only Address is set.
type AssetRouter struct {
	Address          common.Address                   `json:"address"`
	Stub             bool                             `json:"stub"`
	NativeTokenVault common.Address                   `json:"nativeTokenVault"`
	RegistryRoot     common.Address                   `json:"registryRoot"`
	Assets           map[common.Hash]*RegisteredAsset `json:"assets"`
}

func (a *AssetRouter) EntityAddress() common.Address { return a.Address }
func (a *AssetRouter) EntityKind() EntityKind        { return AssetRouterEntity }

// ChainEntry is the registry's view of a single chain
type ChainEntry struct {
	ChainID         uint64         `json:"chainId"`
	Manager         common.Address `json:"manager"`
	StateTransition common.Address `json:"stateTransition"`
	BaseToken       common.Address `json:"baseToken"`
	ManagerAssetID  common.Hash    `json:"managerAssetId"`
}

// Warning records optional data that could not be read
type Warning struct {
	Subject common.Address `json:"subject"`
	Field   string         `json:"field"`
	Message string         `json:"message"`
}
