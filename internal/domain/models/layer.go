package models

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// LayerKind distinguishes the settlement chain from chains that settle on it
type LayerKind string

const (
	BaseLayerKind   LayerKind = "BASE"
	RollupLayerKind LayerKind = "ROLLUP"
)

// RollupLayerInfo is what a rollup endpoint reports about the chain it settles on
type RollupLayerInfo struct {
	BaseChainID      uint64         `json:"baseChainId"`
	BaseRegistryRoot common.Address `json:"baseRegistryRoot"`
}

// Layer is resolved once when an endpoint is discovered. Rollup is nil for a base layer.
type Layer struct {
	Kind   LayerKind        `json:"kind"`
	Rollup *RollupLayerInfo `json:"rollup,omitempty"`
}

// BaseLayer returns the base layer variant
func BaseLayer() Layer {
	return Layer{Kind: BaseLayerKind}
}

// RollupLayer returns the rollup layer variant
func RollupLayer(info RollupLayerInfo) Layer {
	return Layer{Kind: RollupLayerKind, Rollup: &info}
}

func (l Layer) IsBase() bool {
	return l.Kind == BaseLayerKind
}

func (l Layer) IsRollup() bool {
	return l.Kind == RollupLayerKind && l.Rollup != nil
}

func (l Layer) String() string {
	if l.IsRollup() {
		return fmt.Sprintf("L2 -> %d", l.Rollup.BaseChainID)
	}
	return "L1"
}

// Endpoint is a detected RPC endpoint
type Endpoint struct {
	Name        string `json:"name"`
	RPCURL      string `json:"rpcUrl"`
	ChainID     uint64 `json:"chainId"`
	LatestBlock uint64 `json:"latestBlock"`
	Layer       Layer  `json:"layer"`

	// RegistryRoot is the bridgehub hosted on this endpoint's chain
	RegistryRoot common.Address `json:"registryRoot"`
}

func (e *Endpoint) String() string {
	return fmt.Sprintf("Sequencer at %s (Chain: %d, Last Block: %d), %s", e.RPCURL, e.ChainID, e.LatestBlock, e.Layer)
}
