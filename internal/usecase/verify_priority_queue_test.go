package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/ecdbg/internal/domain"
	"github.com/trebuchet-org/ecdbg/internal/domain/bindings"
	"github.com/trebuchet-org/ecdbg/internal/domain/models"
	"github.com/trebuchet-org/ecdbg/internal/usecase"
)

func priorityChain(t *testing.T, ids ...common.Hash) *fakeChain {
	t.Helper()
	chain := newFakeChain(testHead)
	for i, id := range ids {
		chain.emit(priorityLog(t, testST, 100+uint64(i)*150, 0, uint64(i), id))
	}
	return chain
}

func TestVerifyPriorityQueue_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("matching root", func(t *testing.T) {
		cfg := testConfig()
		cfg.Scan.MaxBlockDepth = 50
		progress := &MockProgressSink{}
		uc := usecase.NewVerifyPriorityQueue(cfg, progress, discard)

		chain := priorityChain(t, u256(1), u256(2), u256(3))
		result, err := uc.Run(ctx, usecase.VerifyPriorityQueueParams{
			Snapshot: prioritySnapshot(threeTxRoot, 3),
			Client:   chain,
			ChainID:  testChainID,
		})
		require.NoError(t, err)

		verdict := result.Verdict
		assert.True(t, verdict.Matches())
		assert.True(t, verdict.CountMatches())
		assert.NoError(t, result.Err())
		assert.Equal(t, 3, verdict.Decoded)
		assert.Equal(t, 4, verdict.LeafCount)
		assert.Equal(t, testST, verdict.StateTransition)
		require.Len(t, verdict.Transactions, 3)
		assert.Equal(t, u256(3), verdict.Transactions[2].TxID)

		// The depth limit is ignored: every window down to block 1 is queried
		assert.Len(t, chain.queries, 10)
		assert.NotEmpty(t, progress.events)
	})

	t.Run("corrupted id exposes both roots", func(t *testing.T) {
		uc := usecase.NewVerifyPriorityQueue(testConfig(), usecase.NopProgress{}, discard)
		result, err := uc.Run(ctx, usecase.VerifyPriorityQueueParams{
			Snapshot: prioritySnapshot(threeTxRoot, 3),
			Client:   priorityChain(t, u256(1), u256(0xbad), u256(3)),
			ChainID:  testChainID,
		})
		require.NoError(t, err)
		assert.False(t, result.Verdict.Matches())

		var mismatch *domain.IntegrityMismatchError
		require.ErrorAs(t, result.Err(), &mismatch)
		assert.Equal(t, uint64(testChainID), mismatch.ChainID)
		assert.Equal(t, threeTxRoot, mismatch.OnChain)
		assert.NotEqual(t, threeTxRoot, mismatch.Computed)
		assert.Equal(t, result.Verdict.ComputedRoot, mismatch.Computed)
	})

	t.Run("missing events change the count", func(t *testing.T) {
		uc := usecase.NewVerifyPriorityQueue(testConfig(), usecase.NopProgress{}, discard)
		result, err := uc.Run(ctx, usecase.VerifyPriorityQueueParams{
			Snapshot: prioritySnapshot(threeTxRoot, 3),
			Client:   priorityChain(t, u256(1), u256(2)),
			ChainID:  testChainID,
		})
		require.NoError(t, err)
		assert.False(t, result.Verdict.Matches())
		assert.False(t, result.Verdict.CountMatches())
	})

	t.Run("index beyond total is malformed", func(t *testing.T) {
		uc := usecase.NewVerifyPriorityQueue(testConfig(), usecase.NopProgress{}, discard)
		_, err := uc.Run(ctx, usecase.VerifyPriorityQueueParams{
			Snapshot: prioritySnapshot(threeTxRoot, 2),
			Client:   priorityChain(t, u256(1), u256(2), u256(3)),
			ChainID:  testChainID,
		})
		var malformed *domain.MalformedEventError
		require.ErrorAs(t, err, &malformed)
		assert.Contains(t, malformed.Reason, "beyond total")
	})

	t.Run("rollup layer", func(t *testing.T) {
		snapshot := prioritySnapshot(threeTxRoot, 3)
		snapshot.Layer = models.RollupLayer(models.RollupLayerInfo{BaseChainID: 9})

		uc := usecase.NewVerifyPriorityQueue(testConfig(), usecase.NopProgress{}, discard)
		_, err := uc.Run(ctx, usecase.VerifyPriorityQueueParams{Snapshot: snapshot, Client: newFakeChain(testHead), ChainID: testChainID})
		assert.ErrorIs(t, err, domain.ErrBaseLayerRequired)
	})

	t.Run("legacy state transition", func(t *testing.T) {
		snapshot := prioritySnapshot(threeTxRoot, 3)
		snapshot.Entities[testST].(*models.StateTransition).FromStorage = true

		uc := usecase.NewVerifyPriorityQueue(testConfig(), usecase.NopProgress{}, discard)
		_, err := uc.Run(ctx, usecase.VerifyPriorityQueueParams{Snapshot: snapshot, Client: newFakeChain(testHead), ChainID: testChainID})
		assert.ErrorIs(t, err, domain.ErrMissingCapability)
	})

	t.Run("unreadable on-chain root is not a mismatch", func(t *testing.T) {
		chain := baseFixture(t)
		chain.fail(testST, bindings.NewZKChain().PackGetPriorityTreeRoot(), reverted())

		snapshot, err := resolve(t, chain, baseEndpoint())
		require.NoError(t, err)
		state, err := snapshot.StateTransition(testST)
		require.NoError(t, err)
		assert.False(t, state.PriorityQueue.RootKnown)

		uc := usecase.NewVerifyPriorityQueue(testConfig(), usecase.NopProgress{}, discard)
		result, err := uc.Run(ctx, usecase.VerifyPriorityQueueParams{Snapshot: snapshot, Client: chain, ChainID: testChainID})
		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrMissingCapability)
		var mismatch *domain.IntegrityMismatchError
		assert.False(t, errors.As(err, &mismatch))
	})

	t.Run("unknown chain", func(t *testing.T) {
		uc := usecase.NewVerifyPriorityQueue(testConfig(), usecase.NopProgress{}, discard)
		_, err := uc.Run(ctx, usecase.VerifyPriorityQueueParams{Snapshot: prioritySnapshot(threeTxRoot, 3), Client: newFakeChain(testHead), ChainID: 1})
		assert.ErrorContains(t, err, "not registered")
	})
}
