package blockchain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/ecdbg/internal/domain"
)

// remoteError mimics the error values go-ethereum's rpc client returns
type remoteError struct {
	code    int
	message string
	data    any
}

func (e *remoteError) Error() string          { return e.message }
func (e *remoteError) ErrorCode() int         { return e.code }
func (e *remoteError) ErrorData() interface{} { return e.data }

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		missing bool
	}{
		{"revert with data", &remoteError{code: 3, message: "execution reverted", data: "0x08c379a0"}, true},
		{"revert without code", &remoteError{code: -32000, message: "execution reverted"}, true},
		{"revert reason in data", &remoteError{code: -32015, message: "vm error", data: "0x"}, true},
		{"method not found", &remoteError{code: -32601, message: "the method zks_L1ChainId does not exist/is not available"}, true},
		{"rate limited", &remoteError{code: -32005, message: "limit exceeded"}, false},
		{"header not found", &remoteError{code: -32000, message: "header not found"}, false},
		{"range cap", &remoteError{code: -32602, message: "query exceeds max block range 10000"}, false},
		{"connection", errors.New("dial tcp 127.0.0.1:8545: connect: connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := wrap("eth_call", tt.err)

			var transport *domain.TransportError
			require.ErrorAs(t, err, &transport)
			assert.Equal(t, "eth_call", transport.Op)
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.missing, errors.Is(err, domain.ErrMissingCapability))
		})
	}
}
