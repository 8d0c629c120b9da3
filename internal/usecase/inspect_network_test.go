package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/ecdbg/internal/domain"
	"github.com/trebuchet-org/ecdbg/internal/domain/bindings"
	"github.com/trebuchet-org/ecdbg/internal/domain/config"
	"github.com/trebuchet-org/ecdbg/internal/domain/models"
	"github.com/trebuchet-org/ecdbg/internal/usecase"
)

type inspectDeps struct {
	cfg       *config.RuntimeConfig
	detector  *MockEndpointDetector
	clients   *MockClientFactory
	selector  *MockChainSelector
	snapshots *MockSnapshotWriter
}

func newInspectDeps(networks ...config.Network) *inspectDeps {
	cfg := testConfig()
	cfg.Networks = networks
	return &inspectDeps{
		cfg:       cfg,
		detector:  new(MockEndpointDetector),
		clients:   new(MockClientFactory),
		selector:  new(MockChainSelector),
		snapshots: new(MockSnapshotWriter),
	}
}

func (d *inspectDeps) build() *usecase.InspectNetwork {
	progress := usecase.NopProgress{}
	return usecase.NewInspectNetwork(
		d.cfg,
		usecase.NewListNetworks(d.cfg, d.detector, discard),
		usecase.NewResolveTopology(d.cfg, progress, discard),
		usecase.NewAggregateBalances(progress, discard),
		usecase.NewVerifyPriorityQueue(d.cfg, progress, discard),
		d.clients,
		d.selector,
		d.snapshots,
		discard,
	)
}

func TestInspectNetwork_Run(t *testing.T) {
	ctx := context.Background()
	l1 := config.Network{Name: "l1", RPCURL: "http://localhost:8545"}
	down := config.Network{Name: "down", RPCURL: "http://localhost:9999"}

	t.Run("healthy base layer", func(t *testing.T) {
		deps := newInspectDeps(l1)
		deps.detector.On("Detect", mock.Anything, l1).Return(baseEndpoint(), nil)
		chain := baseFixture(t)
		deps.clients.On("Dial", mock.Anything, l1.RPCURL).Return(chain, nil)

		result, err := deps.build().Run(ctx, usecase.InspectNetworkParams{Balances: true, Priority: true})
		require.NoError(t, err)
		assert.True(t, result.Healthy(), "failures: %v", result.Failures)
		assert.Equal(t, 1, chain.closed)

		require.Len(t, result.Layers, 1)
		layer := result.Layers[0]
		require.NotNil(t, layer.Snapshot)
		require.Len(t, layer.Balances, 1)
		assert.Equal(t, "1.5", layer.Balances[0].Balances["ETH"].Formatted)
		assert.Equal(t, "2.5", layer.Balances[0].Balances["USD Coin"].Formatted)
		require.Len(t, layer.Verdicts, 1)
		assert.Equal(t, threeTxRoot, layer.Verdicts[0].ComputedRoot)

		deps.snapshots.AssertNotCalled(t, "WriteSnapshot", mock.Anything, mock.Anything, mock.Anything)
		deps.selector.AssertNotCalled(t, "SelectChain", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("failures are recorded per check", func(t *testing.T) {
		chain := baseFixture(t)
		// Tamper with the on-chain root and one vault balance
		zk := bindings.NewZKChain()
		chain.on(testST, zk.PackGetPriorityTreeRoot(), outputs(t, &bindings.ZKChainMetaData, "getPriorityTreeRoot", [32]byte(u256(0xbad))))
		vault := bindings.NewNativeTokenVault()
		delete(chain.returns, callKey(testVault, vault.PackChainBalance(bigChainID(), tokenAssetID)))

		deps := newInspectDeps(l1, down)
		deps.detector.On("Detect", mock.Anything, l1).Return(baseEndpoint(), nil)
		deps.detector.On("Detect", mock.Anything, down).Return(nil, &domain.TransportError{Op: "dial", Err: errors.New("connection refused")})
		deps.clients.On("Dial", mock.Anything, l1.RPCURL).Return(chain, nil)
		deps.snapshots.On("WriteSnapshot", mock.Anything, "report.yaml", mock.AnythingOfType("*usecase.InspectNetworkResult")).Return(nil)

		result, err := deps.build().Run(ctx, usecase.InspectNetworkParams{Balances: true, Priority: true, SnapshotPath: "report.yaml"})
		require.NoError(t, err)
		assert.False(t, result.Healthy())

		checks := make(map[string]usecase.CheckFailure)
		for _, failure := range result.Failures {
			checks[failure.Check] = failure
		}
		require.Len(t, checks, 3)
		assert.Equal(t, "down", checks[usecase.CheckDetect].Endpoint)
		assert.Equal(t, uint64(testChainID), checks[usecase.CheckBalances].ChainID)

		var mismatch *domain.IntegrityMismatchError
		assert.ErrorAs(t, checks[usecase.CheckPriority].Err, &mismatch)

		// The priority check still ran after balances failed
		require.Len(t, result.Layers[0].Verdicts, 1)
		deps.snapshots.AssertExpectations(t)
		assert.Equal(t, 1, chain.closed)
	})

	t.Run("unresolvable topology still closes the client", func(t *testing.T) {
		chain := newFakeChain(testHead)
		deps := newInspectDeps(l1)
		deps.detector.On("Detect", mock.Anything, l1).Return(baseEndpoint(), nil)
		deps.clients.On("Dial", mock.Anything, l1.RPCURL).Return(chain, nil)

		result, err := deps.build().Run(ctx, usecase.InspectNetworkParams{Balances: true, Priority: true})
		require.NoError(t, err)
		require.Len(t, result.Failures, 1)
		assert.Equal(t, usecase.CheckTopology, result.Failures[0].Check)
		assert.ErrorIs(t, result.Failures[0].Err, domain.ErrEmptyCode)
		assert.Nil(t, result.Layers[0].Snapshot)
		assert.Equal(t, 1, chain.closed)
	})

	t.Run("selects a chain interactively", func(t *testing.T) {
		deps := newInspectDeps(l1)
		deps.detector.On("Detect", mock.Anything, l1).Return(baseEndpoint(), nil)
		deps.clients.On("Dial", mock.Anything, l1.RPCURL).Return(baseFixture(t), nil)
		deps.selector.On("SelectChain", mock.Anything, mock.Anything, mock.Anything, "Select a chain on l1").
			Return(&models.ChainEntry{ChainID: testChainID}, nil)

		result, err := deps.build().Run(ctx, usecase.InspectNetworkParams{Priority: true, SelectChain: true})
		require.NoError(t, err)
		assert.True(t, result.Healthy())
		deps.selector.AssertExpectations(t)
	})

	t.Run("selects several chains for balances", func(t *testing.T) {
		deps := newInspectDeps(l1)
		deps.detector.On("Detect", mock.Anything, l1).Return(baseEndpoint(), nil)
		deps.clients.On("Dial", mock.Anything, l1.RPCURL).Return(baseFixture(t), nil)
		deps.selector.On("SelectChains", mock.Anything, mock.Anything, mock.Anything, "Select chains on l1").
			Return([]*models.ChainEntry{{ChainID: testChainID}}, nil)

		result, err := deps.build().Run(ctx, usecase.InspectNetworkParams{Balances: true, SelectChains: true})
		require.NoError(t, err)
		require.Len(t, result.Layers[0].Balances, 1)
		assert.Equal(t, uint64(testChainID), result.Layers[0].Balances[0].ChainID)
		deps.selector.AssertExpectations(t)
	})

	t.Run("selection is skipped when non-interactive", func(t *testing.T) {
		deps := newInspectDeps(l1)
		deps.cfg.NonInteractive = true
		deps.detector.On("Detect", mock.Anything, l1).Return(baseEndpoint(), nil)
		deps.clients.On("Dial", mock.Anything, l1.RPCURL).Return(baseFixture(t), nil)

		result, err := deps.build().Run(ctx, usecase.InspectNetworkParams{Priority: true, SelectChain: true})
		require.NoError(t, err)
		assert.Len(t, result.Layers[0].Verdicts, 1)
		deps.selector.AssertNotCalled(t, "SelectChain", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("snapshot write failure is returned", func(t *testing.T) {
		deps := newInspectDeps(l1)
		deps.detector.On("Detect", mock.Anything, l1).Return(baseEndpoint(), nil)
		deps.clients.On("Dial", mock.Anything, l1.RPCURL).Return(baseFixture(t), nil)
		deps.snapshots.On("WriteSnapshot", mock.Anything, "out.json", mock.Anything).Return(errors.New("permission denied"))

		_, err := deps.build().Run(ctx, usecase.InspectNetworkParams{SnapshotPath: "out.json"})
		assert.ErrorContains(t, err, "failed to write snapshot")
	})
}
