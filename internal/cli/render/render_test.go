package render

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/ecdbg/internal/domain/models"
	"github.com/trebuchet-org/ecdbg/internal/usecase"
)

var (
	testRoot   = common.HexToAddress("0x303a465B659cBB0ab36eE643eA362c509EEb5213")
	testRouter = common.HexToAddress("0xc4D3598AA3d26a0Ac30DAc3e1B5dE1bC2f1458E4")
	testVault  = common.HexToAddress("0x0Ca6A1C19a5cCE9B6e9bf0f3D0b8D7C2e3b1a4f5")
	testCTM    = common.HexToAddress("0xc2eE6b6af7d616f6e27ce7F4A451Aedc2b0F5f5C")
	testST     = common.HexToAddress("0x7D4b3c5B3e5A1e52d3b8B1E4F5a6B7c8D9e0F1a2")
	testToken  = common.HexToAddress("0x1111111111111111111111111111111111111111")
)

func noColor(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })
}

func testSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Endpoint:     "l1",
		ChainID:      9,
		Layer:        models.BaseLayer(),
		Block:        100,
		RegistryRoot: testRoot,
		Router:       testRouter,
		Entities: map[common.Address]models.Entity{
			testRoot: &models.ChainRegistry{Address: testRoot, SharedBridge: testRouter, ChainIDs: []uint64{270}, Discovery: models.DiscoveryEnumeration, Managers: []common.Address{testCTM}},
			testCTM:  &models.ChainManager{Address: testCTM, RegistryRoot: testRoot},
			testST: &models.StateTransition{
				Address:               testST,
				ChainID:               big.NewInt(270),
				TotalBatchesCommitted: big.NewInt(3),
				TotalBatchesVerified:  big.NewInt(2),
				TotalBatchesExecuted:  big.NewInt(1),
				ProtocolVersion:       models.ProtocolVersion{Minor: 26},
				PriorityQueue:         models.PriorityQueueSummary{Unprocessed: big.NewInt(0), Total: big.NewInt(5)},
			},
			testRouter: &models.AssetRouter{
				Address:          testRouter,
				NativeTokenVault: testVault,
				RegistryRoot:     testRoot,
				Assets: map[common.Hash]*models.RegisteredAsset{
					common.HexToHash("0x01"): {AssetID: common.HexToHash("0x01"), Handler: models.AssetHandler{Kind: models.VaultBackedHandler, Tracker: testVault, TokenAddress: testToken, TokenName: "Wrapped", TokenDecimals: 18}},
					common.HexToHash("0x02"): {AssetID: common.HexToHash("0x02"), Handler: models.AssetHandler{Kind: models.RegistryBackedHandler, Tracker: testRoot}},
				},
			},
		},
		Chains: map[uint64]*models.ChainEntry{
			270: {ChainID: 270, Manager: testCTM, StateTransition: testST, BaseToken: testToken},
		},
		Warnings: []models.Warning{{Subject: testST, Field: "settlementLayer", Message: "missing capability"}},
	}
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Native Token Vault", Title(string(models.VaultBackedHandler)))
	assert.Equal(t, "Creation Events", Title(string(models.DiscoveryCreationEvents)))
	assert.Equal(t, "Registry", Title(string(models.RegistryBackedHandler)))
}

func TestSnapshotBook(t *testing.T) {
	book := SnapshotBook(testSnapshot())

	for address, want := range map[common.Address]string{
		testRoot:   "Bridgehub",
		testRouter: "Shared Bridge",
		testVault:  "Native Token Vault",
		testCTM:    "CTM",
		testST:     "ST 270",
		testToken:  "Wrapped",
	} {
		name, ok := book.Name(address)
		require.True(t, ok, address.Hex())
		assert.Equal(t, want, name)
	}
}

func TestTopologyRenderer(t *testing.T) {
	noColor(t)
	var out bytes.Buffer

	require.NoError(t, NewTopologyRenderer(&out).RenderSnapshot(testSnapshot()))

	s := out.String()
	assert.Contains(t, s, "l1 (chain 9, L1) at block 100")
	assert.Contains(t, s, "[270] (Enumeration)")
	assert.Contains(t, s, "v0.26.0")
	assert.Contains(t, s, "3/2/1")
	assert.Contains(t, s, "0 of 5")
	assert.Contains(t, s, "Native Token Vault")
	assert.Contains(t, s, "Wrapped")
	assert.Contains(t, s, "settlementLayer: missing capability")
}

func TestBalancesRenderer(t *testing.T) {
	noColor(t)
	var out bytes.Buffer

	err := NewBalancesRenderer(&out).RenderBalances([]*models.ChainBalances{
		{ChainID: 270, Balances: map[string]*models.Balance{
			"Wrapped": {Token: testToken, Name: "Wrapped", Amount: big.NewInt(1500), Formatted: "0.0000000000000015"},
		}},
		{ChainID: 271, Balances: map[string]*models.Balance{}},
	})
	require.NoError(t, err)

	s := out.String()
	assert.Contains(t, s, "Balances of chain 270")
	assert.Contains(t, s, "Wrapped")
	assert.Contains(t, s, "0.0000000000000015")
	assert.Contains(t, s, "no vault-backed assets")
}

func TestPriorityRenderer(t *testing.T) {
	noColor(t)
	onChain := common.HexToHash("0xaa")
	computed := common.HexToHash("0xbb")

	t.Run("mismatch shows both roots", func(t *testing.T) {
		var out bytes.Buffer
		err := NewPriorityRenderer(&out, false).RenderVerdict(&models.PriorityVerdict{
			ChainID:      270,
			OnChainRoot:  onChain,
			ComputedRoot: computed,
			Unprocessed:  big.NewInt(1),
			Total:        big.NewInt(2),
			Decoded:      2,
			LeafCount:    2,
		})
		require.NoError(t, err)

		s := out.String()
		assert.Contains(t, s, onChain.Hex())
		assert.Contains(t, s, computed.Hex())
		assert.Contains(t, s, "Priority tree mismatch")
	})

	t.Run("verbose lists transactions", func(t *testing.T) {
		var out bytes.Buffer
		err := NewPriorityRenderer(&out, true).RenderVerdict(&models.PriorityVerdict{
			ChainID:      270,
			OnChainRoot:  onChain,
			ComputedRoot: onChain,
			Total:        big.NewInt(1),
			Unprocessed:  big.NewInt(0),
			Decoded:      1,
			LeafCount:    1,
			Transactions: []*models.PriorityTransaction{{Index: 0, TxID: computed, BlockNumber: 42}},
		})
		require.NoError(t, err)

		s := out.String()
		assert.Contains(t, s, computed.Hex())
		assert.Contains(t, s, "Priority tree matches")
	})
}

func TestReportRenderer_Failures(t *testing.T) {
	noColor(t)
	var out bytes.Buffer

	result := &usecase.InspectNetworkResult{
		Layers: []*usecase.LayerReport{{
			Endpoint: &models.Endpoint{Name: "gateway", RPCURL: "http://127.0.0.1:3050", ChainID: 506, Layer: models.RollupLayer(models.RollupLayerInfo{BaseChainID: 9})},
		}},
		Failures: []usecase.CheckFailure{
			{Endpoint: "gateway", Check: usecase.CheckTopology, Error: "no code at address"},
			{Endpoint: "l1", Check: usecase.CheckPriority, ChainID: 270, Error: "priority tree mismatch"},
		},
	}
	require.NoError(t, NewReportRenderer(&out, false, true).Render(result))

	s := out.String()
	assert.Contains(t, s, "Sequencer at http://127.0.0.1:3050 (Chain: 506")
	assert.Contains(t, s, "[topology] gateway:")
	assert.Contains(t, s, "[priority] l1 chain 270:")
}

func TestRenderJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, RenderJSON(&out, map[string]uint64{"chainId": 9}))
	assert.JSONEq(t, `{"chainId": 9}`, out.String())
}

func TestJSONRenderer(t *testing.T) {
	var out bytes.Buffer
	var r Renderer[*usecase.CheckFailure] = NewJSONRenderer[*usecase.CheckFailure](&out)
	require.NoError(t, r.Render(&usecase.CheckFailure{Endpoint: "l1", Check: usecase.CheckBalances, ChainID: 270, Error: "i/o timeout"}))
	assert.JSONEq(t, `{"endpoint": "l1", "check": "balances", "chainId": 270, "error": "i/o timeout"}`, out.String())
}
