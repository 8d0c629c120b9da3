package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/trebuchet-org/ecdbg/internal/domain"
	"github.com/trebuchet-org/ecdbg/internal/domain/bindings"
	"github.com/trebuchet-org/ecdbg/internal/domain/config"
	"github.com/trebuchet-org/ecdbg/internal/domain/models"
)

// VerifyPriorityQueueParams contains parameters for verifying a chain's priority tree
type VerifyPriorityQueueParams struct {
	Snapshot *models.Snapshot
	Client   ChainClient
	ChainID  uint64
}

// VerifyPriorityQueueResult contains the verdict for one chain
type VerifyPriorityQueueResult struct {
	Verdict *models.PriorityVerdict
}

// Err returns an *domain.IntegrityMismatchError when the roots differ or an
// index was claimed twice
func (r *VerifyPriorityQueueResult) Err() error {
	if r.Verdict.Matches() {
		return nil
	}
	return &domain.IntegrityMismatchError{
		ChainID:  r.Verdict.ChainID,
		OnChain:  r.Verdict.OnChainRoot,
		Computed: r.Verdict.ComputedRoot,
	}
}

// VerifyPriorityQueue recomputes a chain's priority tree root from its full
// event history and compares it with the on-chain root
type VerifyPriorityQueue struct {
	cfg      *config.RuntimeConfig
	progress ProgressSink
	log      *slog.Logger
	zk       *bindings.ZKChain
}

// NewVerifyPriorityQueue creates a new VerifyPriorityQueue use case
func NewVerifyPriorityQueue(cfg *config.RuntimeConfig, progress ProgressSink, log *slog.Logger) *VerifyPriorityQueue {
	return &VerifyPriorityQueue{
		cfg:      cfg,
		progress: progress,
		log:      log.With("component", "VerifyPriorityQueue"),
		zk:       bindings.NewZKChain(),
	}
}

// Run executes the use case
func (uc *VerifyPriorityQueue) Run(ctx context.Context, params VerifyPriorityQueueParams) (*VerifyPriorityQueueResult, error) {
	snapshot := params.Snapshot
	if !snapshot.Layer.IsBase() {
		return nil, fmt.Errorf("priority transactions of chain %d on %s: %w", params.ChainID, snapshot.Endpoint, domain.ErrBaseLayerRequired)
	}

	entry, err := snapshot.Chain(params.ChainID)
	if err != nil {
		return nil, err
	}
	state, err := snapshot.StateTransition(entry.StateTransition)
	if err != nil {
		return nil, fmt.Errorf("chain %d has no state transition: %w", params.ChainID, err)
	}
	if state.FromStorage {
		return nil, fmt.Errorf("priority tree of chain %d: %w", params.ChainID, domain.ErrMissingCapability)
	}
	if !state.PriorityQueue.RootKnown {
		return nil, fmt.Errorf("priority tree root of chain %d is unreadable: %w", params.ChainID, domain.ErrMissingCapability)
	}

	// The tree commits to every request ever made, so depth limits do not apply
	scan := uc.cfg.Scan
	scan.MaxBlockDepth = 0
	scanner := NewEventScanner(params.Client, snapshot.Block, scan, uc.log)

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   "priority",
		Message: fmt.Sprintf("Scanning priority requests of chain %d", params.ChainID),
		Spinner: true,
	})
	defer uc.progress.OnProgress(ctx, ProgressEvent{Stage: "done"})

	topic := bindings.MustEventID(uc.zk.GetEventID(bindings.ZKChainNewPriorityRequestEventName))
	logs, err := scanner.Scan(ctx, state.Address, topic)
	if err != nil {
		return nil, err
	}

	txs := make([]*models.PriorityTransaction, 0, len(logs))
	for i := range logs {
		tx, err := DecodePriorityRequest(uc.zk, &logs[i])
		if err != nil {
			return nil, err
		}
		if total := state.PriorityQueue.Total; total != nil && total.IsUint64() && tx.Index >= total.Uint64() {
			return nil, &domain.MalformedEventError{
				Event:  bindings.ZKChainNewPriorityRequestEventName,
				TxHash: logs[i].TxHash,
				Index:  logs[i].Index,
				Reason: fmt.Sprintf("queue index %d beyond total %s", tx.Index, total),
			}
		}
		txs = append(txs, tx)
	}

	leaves, conflicts := PriorityTreeLeaves(txs)
	verdict := &models.PriorityVerdict{
		ChainID:         params.ChainID,
		StateTransition: state.Address,
		OnChainRoot:     state.PriorityQueue.Root,
		ComputedRoot:    MerkleRoot(leaves),
		Unprocessed:     state.PriorityQueue.Unprocessed,
		Total:           state.PriorityQueue.Total,
		Decoded:         len(txs),
		LeafCount:       len(leaves),
		Conflicts:       conflicts,
	}

	sort.SliceStable(txs, func(i, j int) bool { return txs[i].Index < txs[j].Index })
	verdict.Transactions = txs

	uc.log.Debug("priority tree computed",
		"chain", params.ChainID,
		"decoded", verdict.Decoded,
		"leaves", verdict.LeafCount,
		"onChain", verdict.OnChainRoot.Hex(),
		"computed", verdict.ComputedRoot.Hex(),
	)
	return &VerifyPriorityQueueResult{Verdict: verdict}, nil
}
