package config

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	WorkDir    string
	ConfigFile string // empty when running on defaults

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool // Output in JSON format
	Timeout        time.Duration

	// Networks selected for this invocation, in configuration order
	Networks []Network

	Scan ScanConfig
}

// Network is a configured RPC endpoint
type Network struct {
	Name   string `json:"name"`
	RPCURL string `json:"rpcUrl"`

	// Bridgehub overrides the registry root of the endpoint. Without it a
	// rollup uses the system bridgehub.
	Bridgehub *common.Address `json:"bridgehub,omitempty"`
}

// ScanConfig tunes historical log retrieval
type ScanConfig struct {
	WindowSize    uint64 `json:"windowSize"`
	MaxBlockDepth uint64 `json:"maxBlockDepth"` // 0 scans the full history
}

// DefaultWindowSize is the block range of a single log query
const DefaultWindowSize uint64 = 1000
