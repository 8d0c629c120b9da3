package usecase_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/ecdbg/internal/domain"
	"github.com/trebuchet-org/ecdbg/internal/domain/bindings"
	"github.com/trebuchet-org/ecdbg/internal/domain/models"
)

const (
	testHead    = 1000
	testChainID = 270
)

var (
	testRoot     = common.HexToAddress("0x00000000000000000000000000000000000000b1")
	testDeployer = common.HexToAddress("0x00000000000000000000000000000000000000b2")
	testCTM      = common.HexToAddress("0x00000000000000000000000000000000000000c1")
	testTimelock = common.HexToAddress("0x00000000000000000000000000000000000000c2")
	testAdmin    = common.HexToAddress("0x00000000000000000000000000000000000000c3")
	testRouter   = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	testVault    = common.HexToAddress("0x00000000000000000000000000000000000000a2")
	testST       = common.HexToAddress("0x00000000000000000000000000000000000000d1")
	testToken    = common.HexToAddress("0x00000000000000000000000000000000000000e1")
	testOther    = common.HexToAddress("0x00000000000000000000000000000000000000f1")

	ethAssetID   = crypto.Keccak256Hash([]byte("eth"))
	tokenAssetID = crypto.Keccak256Hash([]byte("token"))
	ctmAssetID   = crypto.Keccak256Hash([]byte("ctm"))
	otherAssetID = crypto.Keccak256Hash([]byte("other"))

	// Root of the tree over priority ids 1, 2, 3
	threeTxRoot = common.HexToHash("0x717728cd95be3577516ae4622a65828ddd573e0d29dbaa3693b7cd32f25119b8")
)

func addressTopic(address common.Address) common.Hash {
	return common.BytesToHash(address.Bytes())
}

// baseFixture is a base layer with one chain manager, one chain and an
// asset router holding ETH, an ERC20 token, the manager's asset and an
// asset with a foreign handler
func baseFixture(t *testing.T) *fakeChain {
	t.Helper()
	chain := newFakeChain(testHead)
	chain.deploy(testRoot)

	bh := bindings.NewBridgehub()
	id := big.NewInt(testChainID)
	chain.on(testRoot, bh.PackSharedBridge(), outputs(t, &bindings.BridgehubMetaData, "sharedBridge", testRouter))
	chain.on(testRoot, bh.PackL1CtmDeployer(), outputs(t, &bindings.BridgehubMetaData, "l1CtmDeployer", testDeployer))
	chain.on(testRoot, bh.PackGetAllZKChainChainIDs(), outputs(t, &bindings.BridgehubMetaData, "getAllZKChainChainIDs", []*big.Int{id}))
	chain.on(testRoot, bh.PackChainTypeManager(id), outputs(t, &bindings.BridgehubMetaData, "chainTypeManager", testCTM))
	chain.on(testRoot, bh.PackGetZKChain(id), outputs(t, &bindings.BridgehubMetaData, "getZKChain", testST))
	chain.on(testRoot, bh.PackBaseToken(id), outputs(t, &bindings.BridgehubMetaData, "baseToken", domain.ETHTokenAddress))
	chain.on(testRoot, bh.PackCtmAssetIdFromChainId(id), outputs(t, &bindings.BridgehubMetaData, "ctmAssetIdFromChainId", [32]byte(ctmAssetID)))
	chain.on(testRoot, bh.PackCtmAssetIdFromAddress(testCTM), outputs(t, &bindings.BridgehubMetaData, "ctmAssetIdFromAddress", [32]byte(ctmAssetID)))
	chain.emit(eventLog(t, &bindings.BridgehubMetaData, "ChainTypeManagerAdded", testRoot, 10, 0, []common.Hash{addressTopic(testCTM)}))

	stubManager(t, chain, testCTM, testRoot)
	stubStateTransition(t, chain, testST, testChainID, threeTxRoot, 1, 3)
	for i := uint64(0); i < 3; i++ {
		chain.emit(priorityLog(t, testST, 100+i, 0, i, u256(i+1)))
	}

	router := bindings.NewL1AssetRouter()
	chain.on(testRouter, router.PackNativeTokenVault(), outputs(t, &bindings.L1AssetRouterMetaData, "nativeTokenVault", testVault))
	chain.on(testRouter, router.PackBRIDGEHUB(), outputs(t, &bindings.L1AssetRouterMetaData, "BRIDGE_HUB", testRoot))
	registrations := []struct {
		asset   common.Hash
		handler common.Address
	}{
		{ethAssetID, testVault},
		{tokenAssetID, testVault},
		{ctmAssetID, testRoot},
		{otherAssetID, testOther},
	}
	for i, r := range registrations {
		chain.emit(eventLog(t, &bindings.L1AssetRouterMetaData, "AssetHandlerRegisteredInitial", testRouter, 20+uint64(i), 0,
			[]common.Hash{r.asset, addressTopic(r.handler), {}}, testAdmin))
	}

	vault := bindings.NewNativeTokenVault()
	chain.on(testVault, vault.PackTokenAddress(ethAssetID), outputs(t, &bindings.NativeTokenVaultMetaData, "tokenAddress", domain.ETHTokenAddress))
	chain.on(testVault, vault.PackTokenAddress(tokenAssetID), outputs(t, &bindings.NativeTokenVaultMetaData, "tokenAddress", testToken))
	chain.on(testVault, vault.PackChainBalance(id, ethAssetID), outputs(t, &bindings.NativeTokenVaultMetaData, "chainBalance", new(big.Int).Mul(big.NewInt(15), big.NewInt(1e17))))
	chain.on(testVault, vault.PackChainBalance(id, tokenAssetID), outputs(t, &bindings.NativeTokenVaultMetaData, "chainBalance", big.NewInt(2_500_000)))

	erc20 := bindings.NewERC20()
	chain.on(testToken, erc20.PackName(), outputs(t, &bindings.ERC20MetaData, "name", "USD Coin"))
	chain.on(testToken, erc20.PackDecimals(), outputs(t, &bindings.ERC20MetaData, "decimals", uint8(6)))
	return chain
}

func stubManager(t *testing.T, chain *fakeChain, address, root common.Address) {
	t.Helper()
	ctm := bindings.NewChainTypeManager()
	chain.on(address, ctm.PackBRIDGEHUB(), outputs(t, &bindings.ChainTypeManagerMetaData, "BRIDGE_HUB", root))
	chain.on(address, ctm.PackAdmin(), outputs(t, &bindings.ChainTypeManagerMetaData, "admin", testAdmin))
	chain.on(address, ctm.PackOwner(), outputs(t, &bindings.ChainTypeManagerMetaData, "owner", testAdmin))
	chain.on(address, ctm.PackValidatorTimelock(), outputs(t, &bindings.ChainTypeManagerMetaData, "validatorTimelock", testTimelock))
	chain.on(address, ctm.PackProtocolVersion(), outputs(t, &bindings.ChainTypeManagerMetaData, "protocolVersion", big.NewInt(26)))
}

func stubStateTransition(t *testing.T, chain *fakeChain, address common.Address, chainID uint64, root common.Hash, unprocessed, total int64) {
	t.Helper()
	zk := bindings.NewZKChain()
	meta := &bindings.ZKChainMetaData
	chain.on(address, zk.PackGetChainId(), outputs(t, meta, "getChainId", new(big.Int).SetUint64(chainID)))
	chain.on(address, zk.PackGetVerifier(), outputs(t, meta, "getVerifier", testOther))
	chain.on(address, zk.PackGetAdmin(), outputs(t, meta, "getAdmin", testAdmin))
	chain.on(address, zk.PackGetTotalBatchesCommitted(), outputs(t, meta, "getTotalBatchesCommitted", big.NewInt(12)))
	chain.on(address, zk.PackGetTotalBatchesVerified(), outputs(t, meta, "getTotalBatchesVerified", big.NewInt(11)))
	chain.on(address, zk.PackGetTotalBatchesExecuted(), outputs(t, meta, "getTotalBatchesExecuted", big.NewInt(10)))
	chain.on(address, zk.PackGetL2BootloaderBytecodeHash(), outputs(t, meta, "getL2BootloaderBytecodeHash", [32]byte(u256(0xb0))))
	chain.on(address, zk.PackGetL2DefaultAccountBytecodeHash(), outputs(t, meta, "getL2DefaultAccountBytecodeHash", [32]byte(u256(0xda))))
	chain.on(address, zk.PackGetL2SystemContractsUpgradeTxHash(), outputs(t, meta, "getL2SystemContractsUpgradeTxHash", [32]byte{}))
	chain.on(address, zk.PackGetPriorityQueueSize(), outputs(t, meta, "getPriorityQueueSize", big.NewInt(unprocessed)))
	chain.on(address, zk.PackGetTotalPriorityTxs(), outputs(t, meta, "getTotalPriorityTxs", big.NewInt(total)))
	chain.on(address, zk.PackGetSemverProtocolVersion(), outputs(t, meta, "getSemverProtocolVersion", uint32(0), uint32(26), uint32(0)))
	chain.on(address, zk.PackGetPriorityTreeRoot(), outputs(t, meta, "getPriorityTreeRoot", [32]byte(root)))
	chain.on(address, zk.PackGetSettlementLayer(), outputs(t, meta, "getSettlementLayer", common.Address{}))
	chain.on(address, zk.PackGetBaseToken(), outputs(t, meta, "getBaseToken", domain.ETHTokenAddress))
}

func baseEndpoint() *models.Endpoint {
	return &models.Endpoint{
		Name:         "l1",
		RPCURL:       "http://localhost:8545",
		ChainID:      9,
		LatestBlock:  testHead,
		Layer:        models.BaseLayer(),
		RegistryRoot: testRoot,
	}
}

// prioritySnapshot is a base layer snapshot with one chain whose state
// transition reports root and total
func prioritySnapshot(root common.Hash, total int64) *models.Snapshot {
	return &models.Snapshot{
		Endpoint:     "l1",
		ChainID:      9,
		Layer:        models.BaseLayer(),
		Block:        testHead,
		RegistryRoot: testRoot,
		Entities: map[common.Address]models.Entity{
			testST: &models.StateTransition{
				Address: testST,
				ChainID: big.NewInt(testChainID),
				PriorityQueue: models.PriorityQueueSummary{
					Unprocessed: big.NewInt(0),
					Total:       big.NewInt(total),
					Root:        root,
					RootKnown:   true,
				},
			},
		},
		Chains: map[uint64]*models.ChainEntry{
			testChainID: {ChainID: testChainID, Manager: testCTM, StateTransition: testST},
		},
	}
}

func bigChainID() *big.Int {
	return big.NewInt(testChainID)
}
