package usecase_test

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/ecdbg/internal/domain"
	"github.com/trebuchet-org/ecdbg/internal/domain/bindings"
	"github.com/trebuchet-org/ecdbg/internal/domain/config"
	"github.com/trebuchet-org/ecdbg/internal/domain/models"
	"github.com/trebuchet-org/ecdbg/internal/usecase"
)

var discard = slog.New(slog.DiscardHandler)

// fakeChain answers contract reads from registered ABI-encoded return data.
// Unregistered calls revert.
type fakeChain struct {
	mu       sync.Mutex
	head     uint64
	code     map[common.Address][]byte
	returns  map[string][]byte
	failures map[string]error
	storage  map[common.Address]map[common.Hash]common.Hash
	logs     []types.Log
	logErr   error
	queries  []ethereum.FilterQuery
	closed   int
}

func newFakeChain(head uint64) *fakeChain {
	return &fakeChain{
		head:     head,
		code:     make(map[common.Address][]byte),
		returns:  make(map[string][]byte),
		failures: make(map[string]error),
		storage:  make(map[common.Address]map[common.Hash]common.Hash),
	}
}

func callKey(to common.Address, data []byte) string {
	return to.Hex() + common.Bytes2Hex(data)
}

func reverted() error {
	return &domain.TransportError{Op: "eth_call", Err: fmt.Errorf("%w: execution reverted", domain.ErrMissingCapability)}
}

func (f *fakeChain) deploy(address common.Address) {
	f.code[address] = []byte{0x60, 0x80}
}

// on registers the return data of a call
func (f *fakeChain) on(to common.Address, data []byte, out []byte) {
	f.returns[callKey(to, data)] = out
}

// fail makes a call return err
func (f *fakeChain) fail(to common.Address, data []byte, err error) {
	f.failures[callKey(to, data)] = err
}

func (f *fakeChain) setStorage(address common.Address, slot uint64, value common.Hash) {
	if f.storage[address] == nil {
		f.storage[address] = make(map[common.Hash]common.Hash)
	}
	f.storage[address][common.BigToHash(new(big.Int).SetUint64(slot))] = value
}

func (f *fakeChain) emit(logs ...types.Log) {
	f.logs = append(f.logs, logs...)
}

func (f *fakeChain) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	key := callKey(*msg.To, msg.Data)
	if err, ok := f.failures[key]; ok {
		return nil, err
	}
	if out, ok := f.returns[key]; ok {
		return out, nil
	}
	return nil, reverted()
}

func (f *fakeChain) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed++
}

func (f *fakeChain) FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	if f.logErr != nil {
		return nil, f.logErr
	}

	var found []types.Log
	for _, l := range f.logs {
		if l.BlockNumber < q.FromBlock.Uint64() || l.BlockNumber > q.ToBlock.Uint64() {
			continue
		}
		if len(q.Addresses) > 0 && q.Addresses[0] != l.Address {
			continue
		}
		if len(q.Topics) > 0 && len(q.Topics[0]) > 0 && q.Topics[0][0] != l.Topics[0] {
			continue
		}
		found = append(found, l)
	}
	// Newest first, as some nodes return them
	for i, j := 0, len(found)-1; i < j; i, j = i+1, j-1 {
		found[i], found[j] = found[j], found[i]
	}
	return found, nil
}

func (f *fakeChain) BlockNumber(ctx context.Context) (uint64, error) {
	return f.head, nil
}

func (f *fakeChain) StorageAt(ctx context.Context, account common.Address, key common.Hash, blockNumber *big.Int) ([]byte, error) {
	return f.storage[account][key].Bytes(), nil
}

func (f *fakeChain) CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
	return f.code[account], nil
}

var _ usecase.ChainClient = (*fakeChain)(nil)

// outputs ABI-encodes the return values of method
func outputs(t *testing.T, meta *bind.MetaData, method string, values ...any) []byte {
	t.Helper()
	parsed, err := meta.ParseABI()
	require.NoError(t, err)
	m, ok := parsed.Methods[method]
	require.True(t, ok, method)
	out, err := m.Outputs.Pack(values...)
	require.NoError(t, err)
	return out
}

// eventLog builds a log for event with the given indexed topics and
// non-indexed values
func eventLog(t *testing.T, meta *bind.MetaData, event string, address common.Address, block uint64, index uint, topics []common.Hash, values ...any) types.Log {
	t.Helper()
	parsed, err := meta.ParseABI()
	require.NoError(t, err)
	ev, ok := parsed.Events[event]
	require.True(t, ok, event)
	data, err := ev.Inputs.NonIndexed().Pack(values...)
	require.NoError(t, err)
	return types.Log{
		Address:     address,
		Topics:      append([]common.Hash{ev.ID}, topics...),
		Data:        data,
		BlockNumber: block,
		Index:       index,
		TxHash:      crypto.Keccak256Hash([]byte(fmt.Sprintf("%s-%d-%d", event, block, index))),
	}
}

func u256(v uint64) common.Hash {
	return common.BigToHash(new(big.Int).SetUint64(v))
}

func canonicalTx(nonce int64) bindings.L2CanonicalTransaction {
	zero := func() *big.Int { return new(big.Int) }
	return bindings.L2CanonicalTransaction{
		TxType:                 big.NewInt(255),
		From:                   zero(),
		To:                     zero(),
		GasLimit:               big.NewInt(72000),
		GasPerPubdataByteLimit: big.NewInt(800),
		MaxFeePerGas:           zero(),
		MaxPriorityFeePerGas:   zero(),
		Paymaster:              zero(),
		Nonce:                  big.NewInt(nonce),
		Value:                  zero(),
		Reserved:               [4]*big.Int{zero(), zero(), zero(), zero()},
		Data:                   []byte{},
		Signature:              []byte{},
		FactoryDeps:            []*big.Int{},
		PaymasterInput:         []byte{},
		ReservedDynamic:        []byte{},
	}
}

// priorityLog builds a NewPriorityRequest log for queue index with id txID
func priorityLog(t *testing.T, address common.Address, block uint64, logIndex uint, index uint64, txID common.Hash) types.Log {
	t.Helper()
	return eventLog(t, &bindings.ZKChainMetaData, "NewPriorityRequest", address, block, logIndex, nil,
		new(big.Int).SetUint64(index), [32]byte(txID), uint64(1700000000), canonicalTx(int64(index)), [][]byte{})
}

func testConfig() *config.RuntimeConfig {
	return &config.RuntimeConfig{Scan: config.ScanConfig{WindowSize: 100}}
}

// MockProgressSink records progress events
type MockProgressSink struct {
	mu     sync.Mutex
	events []usecase.ProgressEvent
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(string)  {}
func (m *MockProgressSink) Error(string) {}

// MockEndpointDetector is a mock implementation of EndpointDetector
type MockEndpointDetector struct {
	mock.Mock
}

func (m *MockEndpointDetector) Detect(ctx context.Context, network config.Network) (*models.Endpoint, error) {
	args := m.Called(ctx, network)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Endpoint), args.Error(1)
}

// MockClientFactory is a mock implementation of ChainClientFactory
type MockClientFactory struct {
	mock.Mock
}

func (m *MockClientFactory) Dial(ctx context.Context, rpcURL string) (usecase.ChainClient, error) {
	args := m.Called(ctx, rpcURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(usecase.ChainClient), args.Error(1)
}

// MockSnapshotWriter is a mock implementation of SnapshotWriter
type MockSnapshotWriter struct {
	mock.Mock
}

func (m *MockSnapshotWriter) WriteSnapshot(ctx context.Context, path string, report any) error {
	args := m.Called(ctx, path, report)
	return args.Error(0)
}

// MockChainSelector is a mock implementation of ChainSelector
type MockChainSelector struct {
	mock.Mock
}

func (m *MockChainSelector) SelectChain(ctx context.Context, chains []*models.ChainEntry, book *domain.AddressBook, prompt string) (*models.ChainEntry, error) {
	args := m.Called(ctx, chains, book, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChainEntry), args.Error(1)
}

func (m *MockChainSelector) SelectChains(ctx context.Context, chains []*models.ChainEntry, book *domain.AddressBook, prompt string) ([]*models.ChainEntry, error) {
	args := m.Called(ctx, chains, book, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ChainEntry), args.Error(1)
}
