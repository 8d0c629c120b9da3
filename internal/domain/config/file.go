package config

// FileConfig is the raw ecdbg.toml structure
type FileConfig struct {
	Networks map[string]NetworkFile `toml:"networks"`
	Scan     ScanFile               `toml:"scan"`
}

// NetworkFile is a [networks.<name>] table
type NetworkFile struct {
	RPCURL    string `toml:"rpc_url"`
	Bridgehub string `toml:"bridgehub"`
}

// ScanFile is the [scan] table
type ScanFile struct {
	WindowSize    uint64 `toml:"window_size"`
	MaxBlockDepth uint64 `toml:"max_block_depth"`
}
