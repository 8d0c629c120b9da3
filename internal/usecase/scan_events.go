package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"sort"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/trebuchet-org/ecdbg/internal/domain/config"
)

// BlockWindow is an inclusive block range queried in one log request
type BlockWindow struct {
	From uint64
	To   uint64
}

// PlanWindows splits [1, head] into windows of at most size blocks, newest
// first. With maxBlockDepth set, at most ceil(maxBlockDepth/size)+1 windows
// are planned.
func PlanWindows(head, size, maxBlockDepth uint64) []BlockWindow {
	if size == 0 {
		size = config.DefaultWindowSize
	}
	var limit uint64
	if maxBlockDepth > 0 {
		limit = (maxBlockDepth+size-1)/size + 1
	}

	var windows []BlockWindow
	for end := head; end >= 1; {
		if limit > 0 && uint64(len(windows)) == limit {
			break
		}
		start := uint64(1)
		if end > size {
			start = end - size + 1
		}
		windows = append(windows, BlockWindow{From: start, To: end})
		end = start - 1
	}
	return windows
}

// EventScanner retrieves the full log history of an (address, topic) pair
// up to a pinned head block
type EventScanner struct {
	client ChainClient
	head   uint64
	scan   config.ScanConfig
	log    *slog.Logger
}

// NewEventScanner creates a scanner pinned at head
func NewEventScanner(client ChainClient, head uint64, scan config.ScanConfig, log *slog.Logger) *EventScanner {
	return &EventScanner{
		client: client,
		head:   head,
		scan:   scan,
		log:    log.With("component", "EventScanner"),
	}
}

// Head returns the block the scanner is pinned at
func (s *EventScanner) Head() uint64 {
	return s.head
}

// Scan queries windows sequentially from the head backwards and returns the
// logs in chronological order. The first failed window aborts the scan.
func (s *EventScanner) Scan(ctx context.Context, address common.Address, topic common.Hash) ([]types.Log, error) {
	windows := PlanWindows(s.head, s.scan.WindowSize, s.scan.MaxBlockDepth)
	s.log.Debug("scanning logs",
		"address", address.Hex(),
		"topic", topic.Hex(),
		"head", s.head,
		"windows", len(windows),
	)

	var logs []types.Log
	for _, w := range windows {
		query := ethereum.FilterQuery{
			FromBlock: new(big.Int).SetUint64(w.From),
			ToBlock:   new(big.Int).SetUint64(w.To),
			Addresses: []common.Address{address},
			Topics:    [][]common.Hash{{topic}},
		}
		found, err := s.client.FilterLogs(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s logs of %s in [%d, %d]: %w", topic.Hex(), address.Hex(), w.From, w.To, err)
		}
		logs = append(logs, found...)
	}

	sort.SliceStable(logs, func(i, j int) bool {
		if logs[i].BlockNumber != logs[j].BlockNumber {
			return logs[i].BlockNumber < logs[j].BlockNumber
		}
		return logs[i].Index < logs[j].Index
	})
	return logs, nil
}
