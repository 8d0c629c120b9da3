package usecase

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/trebuchet-org/ecdbg/internal/domain"
	"github.com/trebuchet-org/ecdbg/internal/domain/config"
	"github.com/trebuchet-org/ecdbg/internal/domain/models"
)

// ChainClient is the read-only surface of a remote endpoint.
// Failed calls are returned as *domain.TransportError; calls the remote
// executed but rejected additionally match domain.ErrMissingCapability.
type ChainClient interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
	BlockNumber(ctx context.Context) (uint64, error)
	StorageAt(ctx context.Context, account common.Address, key common.Hash, blockNumber *big.Int) ([]byte, error)
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
	Close()
}

// ChainClientFactory opens clients for RPC endpoints
type ChainClientFactory interface {
	Dial(ctx context.Context, rpcURL string) (ChainClient, error)
}

// EndpointDetector probes a configured network and classifies its layer
type EndpointDetector interface {
	Detect(ctx context.Context, network config.Network) (*models.Endpoint, error)
}

// SnapshotWriter persists a report to disk
type SnapshotWriter interface {
	WriteSnapshot(ctx context.Context, path string, report any) error
}

// ChainSelector handles interactive selection of chains
type ChainSelector interface {
	SelectChain(ctx context.Context, chains []*models.ChainEntry, book *domain.AddressBook, prompt string) (*models.ChainEntry, error)
	SelectChains(ctx context.Context, chains []*models.ChainEntry, book *domain.AddressBook, prompt string) ([]*models.ChainEntry, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
