package blockchain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/trebuchet-org/ecdbg/internal/domain"
	"github.com/trebuchet-org/ecdbg/internal/usecase"
)

// ClientAdapter implements usecase.ChainClient on top of ethclient. Every
// failure is returned as a *domain.TransportError. Reverted calls and unknown
// methods also match domain.ErrMissingCapability.
type ClientAdapter struct {
	rpc *rpc.Client
	eth *ethclient.Client
}

// NewClientAdapter wraps an RPC connection
func NewClientAdapter(client *rpc.Client) *ClientAdapter {
	return &ClientAdapter{
		rpc: client,
		eth: ethclient.NewClient(client),
	}
}

// CallContract executes a read-only call
func (c *ClientAdapter) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	out, err := c.eth.CallContract(ctx, msg, blockNumber)
	if err != nil {
		return nil, wrap("eth_call", err)
	}
	return out, nil
}

// FilterLogs queries historical logs
func (c *ClientAdapter) FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	logs, err := c.eth.FilterLogs(ctx, q)
	if err != nil {
		return nil, wrap("eth_getLogs", err)
	}
	return logs, nil
}

// BlockNumber returns the latest block height
func (c *ClientAdapter) BlockNumber(ctx context.Context) (uint64, error) {
	n, err := c.eth.BlockNumber(ctx)
	if err != nil {
		return 0, wrap("eth_blockNumber", err)
	}
	return n, nil
}

// StorageAt reads a raw storage slot
func (c *ClientAdapter) StorageAt(ctx context.Context, account common.Address, key common.Hash, blockNumber *big.Int) ([]byte, error) {
	out, err := c.eth.StorageAt(ctx, account, key, blockNumber)
	if err != nil {
		return nil, wrap("eth_getStorageAt", err)
	}
	return out, nil
}

// CodeAt reads the code of a contract
func (c *ClientAdapter) CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
	code, err := c.eth.CodeAt(ctx, account, blockNumber)
	if err != nil {
		return nil, wrap("eth_getCode", err)
	}
	return code, nil
}

// ChainID returns the chain id reported by the endpoint
func (c *ClientAdapter) ChainID(ctx context.Context) (uint64, error) {
	id, err := c.eth.ChainID(ctx)
	if err != nil {
		return 0, wrap("eth_chainId", err)
	}
	if !id.IsUint64() {
		return 0, fmt.Errorf("chain id %s: %w", id, domain.ErrInvalidChainID)
	}
	return id.Uint64(), nil
}

// Probe calls a non-standard RPC method
func (c *ClientAdapter) Probe(ctx context.Context, result any, method string, args ...any) error {
	if err := c.rpc.CallContext(ctx, result, method, args...); err != nil {
		return wrap(method, err)
	}
	return nil
}

// Close closes the underlying connection
func (c *ClientAdapter) Close() {
	c.rpc.Close()
}

// JSON-RPC error codes of requests the node understood but cannot serve
const (
	codeExecutionReverted = 3
	codeMethodNotFound    = -32601
)

func wrap(op string, err error) error {
	if unsupported(err) {
		err = fmt.Errorf("%w: %w", domain.ErrMissingCapability, err)
	}
	return &domain.TransportError{Op: op, Err: err}
}

// unsupported reports whether the node rejected the request itself. Rate
// limits, range caps and missing headers are not.
func unsupported(err error) bool {
	var remote rpc.Error
	if !errors.As(err, &remote) {
		return false
	}
	switch remote.ErrorCode() {
	case codeExecutionReverted, codeMethodNotFound:
		return true
	}
	var data rpc.DataError
	if errors.As(err, &data) && data.ErrorData() != nil {
		return true
	}
	return strings.Contains(remote.Error(), "execution reverted")
}

// ClientFactoryAdapter dials RPC endpoints
type ClientFactoryAdapter struct {
	log *slog.Logger
}

// NewClientFactoryAdapter creates a new client factory
func NewClientFactoryAdapter(log *slog.Logger) *ClientFactoryAdapter {
	return &ClientFactoryAdapter{log: log.With("component", "ClientFactory")}
}

// Dial opens a client for rpcURL
func (f *ClientFactoryAdapter) Dial(ctx context.Context, rpcURL string) (usecase.ChainClient, error) {
	return f.dial(ctx, rpcURL)
}

func (f *ClientFactoryAdapter) dial(ctx context.Context, rpcURL string) (*ClientAdapter, error) {
	f.log.Debug("dialing endpoint", "url", rpcURL)
	client, err := rpc.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, &domain.TransportError{Op: "dial " + rpcURL, Err: err}
	}
	return NewClientAdapter(client), nil
}

// Ensure the adapters implement the interfaces
var (
	_ usecase.ChainClient        = (*ClientAdapter)(nil)
	_ usecase.ChainClientFactory = (*ClientFactoryAdapter)(nil)
)
