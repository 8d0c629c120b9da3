package models

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// L2CanonicalTransaction is the envelope carried by a priority request.
// Field names follow the ABI tuple so it can be converted directly.
type L2CanonicalTransaction struct {
	TxType                 *big.Int    `json:"txType"`
	From                   *big.Int    `json:"from"`
	To                     *big.Int    `json:"to"`
	GasLimit               *big.Int    `json:"gasLimit"`
	GasPerPubdataByteLimit *big.Int    `json:"gasPerPubdataByteLimit"`
	MaxFeePerGas           *big.Int    `json:"maxFeePerGas"`
	MaxPriorityFeePerGas   *big.Int    `json:"maxPriorityFeePerGas"`
	Paymaster              *big.Int    `json:"paymaster"`
	Nonce                  *big.Int    `json:"nonce"`
	Value                  *big.Int    `json:"value"`
	Reserved               [4]*big.Int `json:"reserved"`
	Data                   []byte      `json:"data"`
	Signature              []byte      `json:"signature"`
	FactoryDeps            []*big.Int  `json:"factoryDeps"`
	PaymasterInput         []byte      `json:"paymasterInput"`
	ReservedDynamic        []byte      `json:"reservedDynamic"`
}

// PriorityTransaction is a decoded NewPriorityRequest event
type PriorityTransaction struct {
	Index               uint64                  `json:"index"`
	TxID                common.Hash             `json:"txId"`
	ExpirationTimestamp uint64                  `json:"expirationTimestamp"`
	BlockNumber         uint64                  `json:"blockNumber"`
	Transaction         *L2CanonicalTransaction `json:"transaction,omitempty"`
}

// IndexConflict is two events claiming the same queue index with different ids
type IndexConflict struct {
	Index    uint64      `json:"index"`
	Kept     common.Hash `json:"kept"`
	Replaced common.Hash `json:"replaced"`
}

// PriorityVerdict is the result of checking a chain's priority tree
type PriorityVerdict struct {
	ChainID         uint64                 `json:"chainId"`
	StateTransition common.Address         `json:"stateTransition"`
	OnChainRoot     common.Hash            `json:"onChainRoot"`
	ComputedRoot    common.Hash            `json:"computedRoot"`
	Unprocessed     *big.Int               `json:"unprocessed"`
	Total           *big.Int               `json:"total"`
	Decoded         int                    `json:"decoded"`
	LeafCount       int                    `json:"leafCount"`
	Conflicts       []IndexConflict        `json:"conflicts,omitempty"`
	Transactions    []*PriorityTransaction `json:"transactions,omitempty"`
}

// Matches reports whether the computed root equals the on-chain root and no
// index was claimed twice
func (v *PriorityVerdict) Matches() bool {
	return v.OnChainRoot == v.ComputedRoot && len(v.Conflicts) == 0
}

// CountMatches reports whether every priority transaction was decoded
func (v *PriorityVerdict) CountMatches() bool {
	return v.Total != nil && v.Total.IsUint64() && v.Total.Uint64() == uint64(v.Decoded)
}

// Balance is a single vault-backed asset balance held for a chain
type Balance struct {
	AssetID   common.Hash    `json:"assetId"`
	Token     common.Address `json:"token"`
	Name      string         `json:"name"`
	Amount    *big.Int       `json:"amount"`
	Formatted string         `json:"formatted"`
}

// ChainBalances is the balance table of one chain
type ChainBalances struct {
	ChainID  uint64              `json:"chainId"`
	Balances map[string]*Balance `json:"balances"`
}
