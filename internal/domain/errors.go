package domain

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrMissingCapability is returned when an endpoint or contract does not
	// support a probed call. Callers branch on it instead of failing.
	ErrMissingCapability = errors.New("missing capability")

	// ErrEmptyCode is returned when a contract address has no code
	ErrEmptyCode = errors.New("no code at address")

	// ErrInvalidChainID is returned when a chain ID is invalid
	ErrInvalidChainID = errors.New("invalid chain ID")

	// ErrBaseLayerRequired is returned for checks only defined on the settlement chain
	ErrBaseLayerRequired = errors.New("only available on the base layer")
)

// TransportError wraps a failed remote call. It is never retried.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IntegrityMismatchError is returned when a recomputed commitment differs
// from the on-chain one
type IntegrityMismatchError struct {
	ChainID  uint64
	OnChain  common.Hash
	Computed common.Hash
}

func (e *IntegrityMismatchError) Error() string {
	return fmt.Sprintf("priority tree mismatch on chain %d: on-chain root %s, computed root %s",
		e.ChainID, e.OnChain.Hex(), e.Computed.Hex())
}

// PartialDataError describes an optional field that could not be read
type PartialDataError struct {
	Subject common.Address
	Field   string
	Err     error
}

func (e *PartialDataError) Error() string {
	return fmt.Sprintf("%s of %s unavailable: %v", e.Field, e.Subject.Hex(), e.Err)
}

func (e *PartialDataError) Unwrap() error {
	return e.Err
}

// MalformedEventError is returned when a log doesn't decode into its expected shape
type MalformedEventError struct {
	Event  string
	TxHash common.Hash
	Index  uint
	Reason string
}

func (e *MalformedEventError) Error() string {
	return fmt.Sprintf("malformed %s event (tx %s, log %d): %s", e.Event, e.TxHash.Hex(), e.Index, e.Reason)
}

// IsTransportError reports whether err came from a failed remote call
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
