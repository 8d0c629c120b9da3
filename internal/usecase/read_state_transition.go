package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/ecdbg/internal/domain/bindings"
	"github.com/trebuchet-org/ecdbg/internal/domain/models"
)

// Storage layout of state transition contracts that predate the getters
const (
	slotVerifier              = 10
	slotTotalBatchesExecuted  = 11
	slotTotalBatchesVerified  = 12
	slotTotalBatchesCommitted = 13
	slotBootloaderHash        = 23
	slotDefaultAccountHash    = 24
	slotProtocolVersion       = 33
	slotSystemUpgradeTxHash   = 34
	slotAdmin                 = 36
	slotChainID               = 40
)

// UnpackProtocolVersion splits a packed protocol version into its semver triple
func UnpackProtocolVersion(packed *big.Int) models.ProtocolVersion {
	if packed == nil {
		return models.ProtocolVersion{}
	}
	mask := new(big.Int).SetUint64(0xffffffff)
	return models.ProtocolVersion{
		Major: uint32(new(big.Int).And(new(big.Int).Rsh(packed, 64), mask).Uint64()),
		Minor: uint32(new(big.Int).And(new(big.Int).Rsh(packed, 32), mask).Uint64()),
		Patch: uint32(new(big.Int).And(packed, mask).Uint64()),
	}
}

var errNoLegacySlot = errors.New("not present in the legacy storage layout")

type stateTransitionReader struct {
	zk *bindings.ZKChain
}

func newStateTransitionReader() stateTransitionReader {
	return stateTransitionReader{zk: bindings.NewZKChain()}
}

// read loads a state transition through its getters, falling back to raw
// storage when the contract does not expose them
func (s stateTransitionReader) read(ctx context.Context, r reader, address common.Address) (*models.StateTransition, warnings, error) {
	chainID, err := call(ctx, r, address, s.zk.PackGetChainId(), s.zk.UnpackGetChainId)
	if isMissing(err) {
		return s.readStorage(ctx, r, address)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read chain id of %s: %w", address.Hex(), err)
	}

	st := &models.StateTransition{Address: address, ChainID: chainID}
	var warns warnings
	zk := s.zk

	if st.Verifier, err = call(ctx, r, address, zk.PackGetVerifier(), zk.UnpackGetVerifier); err != nil {
		return nil, nil, fmt.Errorf("failed to read verifier of %s: %w", address.Hex(), err)
	}
	if st.Admin, err = call(ctx, r, address, zk.PackGetAdmin(), zk.UnpackGetAdmin); err != nil {
		return nil, nil, fmt.Errorf("failed to read admin of %s: %w", address.Hex(), err)
	}
	if st.TotalBatchesCommitted, err = call(ctx, r, address, zk.PackGetTotalBatchesCommitted(), zk.UnpackGetTotalBatchesCommitted); err != nil {
		return nil, nil, fmt.Errorf("failed to read committed batches of %s: %w", address.Hex(), err)
	}
	if st.TotalBatchesVerified, err = call(ctx, r, address, zk.PackGetTotalBatchesVerified(), zk.UnpackGetTotalBatchesVerified); err != nil {
		return nil, nil, fmt.Errorf("failed to read verified batches of %s: %w", address.Hex(), err)
	}
	if st.TotalBatchesExecuted, err = call(ctx, r, address, zk.PackGetTotalBatchesExecuted(), zk.UnpackGetTotalBatchesExecuted); err != nil {
		return nil, nil, fmt.Errorf("failed to read executed batches of %s: %w", address.Hex(), err)
	}

	hashes := []struct {
		field  string
		target *common.Hash
		data   []byte
		unpack func([]byte) ([32]byte, error)
	}{
		{"bootloaderHash", &st.BootloaderHash, zk.PackGetL2BootloaderBytecodeHash(), zk.UnpackGetL2BootloaderBytecodeHash},
		{"defaultAccountHash", &st.DefaultAccountHash, zk.PackGetL2DefaultAccountBytecodeHash(), zk.UnpackGetL2DefaultAccountBytecodeHash},
		{"systemUpgradeTxHash", &st.SystemUpgradeTxHash, zk.PackGetL2SystemContractsUpgradeTxHash(), zk.UnpackGetL2SystemContractsUpgradeTxHash},
	}
	for _, h := range hashes {
		value, err := call(ctx, r, address, h.data, h.unpack)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read %s of %s: %w", h.field, address.Hex(), err)
		}
		*h.target = value
	}

	if st.PriorityQueue.Unprocessed, err = call(ctx, r, address, zk.PackGetPriorityQueueSize(), zk.UnpackGetPriorityQueueSize); err != nil {
		return nil, nil, fmt.Errorf("failed to read priority queue size of %s: %w", address.Hex(), err)
	}
	if st.PriorityQueue.Total, err = call(ctx, r, address, zk.PackGetTotalPriorityTxs(), zk.UnpackGetTotalPriorityTxs); err != nil {
		return nil, nil, fmt.Errorf("failed to read total priority txs of %s: %w", address.Hex(), err)
	}

	// Optional on older protocol versions
	semver, err := call(ctx, r, address, zk.PackGetSemverProtocolVersion(), zk.UnpackGetSemverProtocolVersion)
	if err = warns.degrade(address, "protocolVersion", err); err != nil {
		return nil, nil, err
	}
	st.ProtocolVersion = models.ProtocolVersion{Major: semver.Arg0, Minor: semver.Arg1, Patch: semver.Arg2}

	root, err := call(ctx, r, address, zk.PackGetPriorityTreeRoot(), zk.UnpackGetPriorityTreeRoot)
	if err == nil {
		st.PriorityQueue.Root = root
		st.PriorityQueue.RootKnown = true
	} else if err = warns.degrade(address, "priorityTreeRoot", err); err != nil {
		return nil, nil, err
	}

	if st.SettlementLayer, err = call(ctx, r, address, zk.PackGetSettlementLayer(), zk.UnpackGetSettlementLayer); err != nil {
		if err = warns.degrade(address, "settlementLayer", err); err != nil {
			return nil, nil, err
		}
	}
	if st.BaseToken, err = call(ctx, r, address, zk.PackGetBaseToken(), zk.UnpackGetBaseToken); err != nil {
		if err = warns.degrade(address, "baseToken", err); err != nil {
			return nil, nil, err
		}
	}

	return st, warns, nil
}

// readStorage decodes the legacy fixed slot layout. Fields without a slot
// are reported as unavailable.
func (s stateTransitionReader) readStorage(ctx context.Context, r reader, address common.Address) (*models.StateTransition, warnings, error) {
	slots := []uint64{
		slotVerifier, slotTotalBatchesExecuted, slotTotalBatchesVerified, slotTotalBatchesCommitted,
		slotBootloaderHash, slotDefaultAccountHash, slotProtocolVersion, slotSystemUpgradeTxHash,
		slotAdmin, slotChainID,
	}
	values := make(map[uint64]common.Hash, len(slots))
	for _, slot := range slots {
		value, err := r.storage(ctx, address, slot)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read storage slot %d of %s: %w", slot, address.Hex(), err)
		}
		values[slot] = value
	}

	st := &models.StateTransition{
		Address:               address,
		ChainID:               values[slotChainID].Big(),
		TotalBatchesCommitted: values[slotTotalBatchesCommitted].Big(),
		TotalBatchesVerified:  values[slotTotalBatchesVerified].Big(),
		TotalBatchesExecuted:  values[slotTotalBatchesExecuted].Big(),
		ProtocolVersion:       UnpackProtocolVersion(values[slotProtocolVersion].Big()),
		Verifier:              common.BytesToAddress(values[slotVerifier].Bytes()),
		Admin:                 common.BytesToAddress(values[slotAdmin].Bytes()),
		BootloaderHash:        values[slotBootloaderHash],
		DefaultAccountHash:    values[slotDefaultAccountHash],
		SystemUpgradeTxHash:   values[slotSystemUpgradeTxHash],
		PriorityQueue: models.PriorityQueueSummary{
			Unprocessed: new(big.Int),
			Total:       new(big.Int),
		},
		FromStorage: true,
	}

	warns := warnings{}
	for _, field := range []string{"priorityTreeRoot", "settlementLayer", "baseToken"} {
		_ = warns.degrade(address, field, errNoLegacySlot)
	}
	return st, warns, nil
}
