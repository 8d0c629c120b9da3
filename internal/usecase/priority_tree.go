package usecase

import (
	"math/bits"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/ecdbg/internal/domain"
	"github.com/trebuchet-org/ecdbg/internal/domain/bindings"
	"github.com/trebuchet-org/ecdbg/internal/domain/models"
)

// EmptyLeaf pads the priority tree
var EmptyLeaf = crypto.Keccak256Hash(nil)

// NextPowerOfTwo returns the smallest power of two no less than value, and 1 for 0
func NextPowerOfTwo(value uint64) uint64 {
	if value <= 1 {
		return 1
	}
	return 1 << bits.Len64(value-1)
}

// PriorityTreeLeaves places every transaction id at its queue index. The
// leaf count covers both the highest index and the number of transactions.
// An index claimed by a different id is overwritten and reported.
func PriorityTreeLeaves(txs []*models.PriorityTransaction) ([]common.Hash, []models.IndexConflict) {
	var width uint64
	for _, tx := range txs {
		width = max(width, tx.Index+1)
	}
	width = max(width, uint64(len(txs)))

	leaves := make([]common.Hash, NextPowerOfTwo(width))
	for i := range leaves {
		leaves[i] = EmptyLeaf
	}

	var conflicts []models.IndexConflict
	placed := make(map[uint64]bool, len(txs))
	for _, tx := range txs {
		if placed[tx.Index] && leaves[tx.Index] != tx.TxID {
			conflicts = append(conflicts, models.IndexConflict{
				Index:    tx.Index,
				Kept:     tx.TxID,
				Replaced: leaves[tx.Index],
			})
		}
		leaves[tx.Index] = tx.TxID
		placed[tx.Index] = true
	}
	return leaves, conflicts
}

// MerkleRoot reduces a power-of-two leaf array pairwise with keccak256(left ‖ right)
func MerkleRoot(leaves []common.Hash) common.Hash {
	if len(leaves) == 0 {
		return EmptyLeaf
	}
	level := leaves
	for len(level) > 1 {
		parents := make([]common.Hash, len(level)/2)
		for i := range parents {
			parents[i] = crypto.Keccak256Hash(level[2*i].Bytes(), level[2*i+1].Bytes())
		}
		level = parents
	}
	return level[0]
}

// DecodePriorityRequest decodes a NewPriorityRequest log
func DecodePriorityRequest(zk *bindings.ZKChain, log *types.Log) (*models.PriorityTransaction, error) {
	event, err := zk.UnpackNewPriorityRequestEvent(log)
	if err != nil {
		return nil, &domain.MalformedEventError{
			Event:  bindings.ZKChainNewPriorityRequestEventName,
			TxHash: log.TxHash,
			Index:  log.Index,
			Reason: err.Error(),
		}
	}
	if !event.TxId.IsUint64() {
		return nil, &domain.MalformedEventError{
			Event:  bindings.ZKChainNewPriorityRequestEventName,
			TxHash: log.TxHash,
			Index:  log.Index,
			Reason: "queue index " + event.TxId.String() + " out of range",
		}
	}

	envelope := models.L2CanonicalTransaction(event.Transaction)
	return &models.PriorityTransaction{
		Index:               event.TxId.Uint64(),
		TxID:                event.TxHash,
		ExpirationTimestamp: event.ExpirationTimestamp,
		BlockNumber:         log.BlockNumber,
		Transaction:         &envelope,
	}, nil
}
