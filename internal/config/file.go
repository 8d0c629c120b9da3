package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/trebuchet-org/ecdbg/internal/domain/config"
)

// DefaultConfigFile is looked up in the working directory
const DefaultConfigFile = "ecdbg.toml"

// DefaultNetworks are used when no config file is present
var DefaultNetworks = []config.Network{
	{Name: "l1", RPCURL: "http://127.0.0.1:8545"},
	{Name: "gateway", RPCURL: "http://127.0.0.1:3050"},
}

// loadEnvFiles loads .env and .env.local without overriding the environment
func loadEnvFiles(workDir string) {
	envFiles := []string{
		filepath.Join(workDir, ".env"),
		filepath.Join(workDir, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// loadFileConfig parses an ecdbg.toml. Networks are returned in the order
// they appear in the file with ${VAR} references expanded.
func loadFileConfig(path string) ([]config.Network, config.ScanFile, error) {
	var raw config.FileConfig
	md, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, config.ScanFile{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, config.ScanFile{}, fmt.Errorf("unknown keys in %s: %v", filepath.Base(path), undecoded)
	}

	var networks []config.Network
	for _, key := range md.Keys() {
		if len(key) != 2 || key[0] != "networks" {
			continue
		}
		name := key[1]
		network, err := parseNetwork(name, raw.Networks[name])
		if err != nil {
			return nil, config.ScanFile{}, err
		}
		networks = append(networks, network)
	}

	return networks, raw.Scan, nil
}

func parseNetwork(name string, raw config.NetworkFile) (config.Network, error) {
	network := config.Network{
		Name:   name,
		RPCURL: os.ExpandEnv(raw.RPCURL),
	}
	if network.RPCURL == "" {
		return network, fmt.Errorf("network %s: rpc_url is empty", name)
	}

	if raw.Bridgehub != "" {
		hex := os.ExpandEnv(raw.Bridgehub)
		if !common.IsHexAddress(hex) {
			return network, fmt.Errorf("network %s: invalid bridgehub address %q", name, hex)
		}
		addr := common.HexToAddress(hex)
		network.Bridgehub = &addr
	}
	return network, nil
}
