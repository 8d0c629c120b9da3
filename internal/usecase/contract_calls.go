package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/ecdbg/internal/domain"
	"github.com/trebuchet-org/ecdbg/internal/domain/models"
)

// reader issues contract reads against one client at one pinned block
type reader struct {
	client ChainClient
	block  *big.Int
}

func newReader(client ChainClient, block uint64) reader {
	return reader{client: client, block: new(big.Int).SetUint64(block)}
}

// call executes a read-only call and decodes its return data. Empty return
// data means the target does not implement the function.
func call[T any](ctx context.Context, r reader, to common.Address, data []byte, unpack func([]byte) (T, error)) (T, error) {
	var zero T
	out, err := r.client.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, r.block)
	if err != nil {
		return zero, err
	}
	if len(out) == 0 {
		return zero, fmt.Errorf("empty return data from %s: %w", to.Hex(), domain.ErrMissingCapability)
	}
	value, err := unpack(out)
	if err != nil {
		return zero, fmt.Errorf("failed to decode return data from %s: %w", to.Hex(), err)
	}
	return value, nil
}

// storage reads one raw slot
func (r reader) storage(ctx context.Context, address common.Address, slot uint64) (common.Hash, error) {
	out, err := r.client.StorageAt(ctx, address, common.BigToHash(new(big.Int).SetUint64(slot)), r.block)
	if err != nil {
		return common.Hash{}, err
	}
	return common.BytesToHash(out), nil
}

// isMissing reports whether err is a negative probe result rather than a
// broken connection
func isMissing(err error) bool {
	return errors.Is(err, domain.ErrMissingCapability)
}

// warnings collects degraded optional reads of a single task
type warnings []models.Warning

// degrade swallows a failed optional read and records it. Connection
// failures are still returned.
func (w *warnings) degrade(subject common.Address, field string, err error) error {
	if err == nil {
		return nil
	}
	if domain.IsTransportError(err) && !isMissing(err) {
		return err
	}
	partial := &domain.PartialDataError{Subject: subject, Field: field, Err: err}
	*w = append(*w, models.Warning{Subject: subject, Field: field, Message: partial.Error()})
	return nil
}
