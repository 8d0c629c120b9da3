package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/ecdbg/internal/domain/config"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	workDir := v.GetString("work_dir")
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	loadEnvFiles(workDir)

	cfg := &config.RuntimeConfig{
		WorkDir:        workDir,
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		Timeout:        v.GetDuration("timeout"),
		Networks:       append([]config.Network(nil), DefaultNetworks...),
		Scan: config.ScanConfig{
			WindowSize: config.DefaultWindowSize,
		},
	}

	configFile, err := findConfigFile(workDir, v.GetString("config"))
	if err != nil {
		return nil, err
	}
	if configFile != "" {
		networks, scan, err := loadFileConfig(configFile)
		if err != nil {
			return nil, err
		}
		cfg.ConfigFile = configFile
		if len(networks) > 0 {
			cfg.Networks = networks
		}
		if scan.WindowSize > 0 {
			cfg.Scan.WindowSize = scan.WindowSize
		}
		cfg.Scan.MaxBlockDepth = scan.MaxBlockDepth
	}

	if window := v.GetUint64("window"); window > 0 {
		cfg.Scan.WindowSize = window
	}
	if v.IsSet("max_depth") {
		cfg.Scan.MaxBlockDepth = v.GetUint64("max_depth")
	}

	if rpcs := v.GetStringSlice("rpc"); len(rpcs) > 0 {
		cfg.Networks, err = adHocNetworks(rpcs)
		if err != nil {
			return nil, err
		}
	}

	if names := v.GetStringSlice("network"); len(names) > 0 {
		cfg.Networks, err = selectNetworks(cfg.Networks, names)
		if err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// findConfigFile returns the explicit config file, or the default one when it exists
func findConfigFile(workDir, explicit string) (string, error) {
	if explicit != "" {
		if !filepath.IsAbs(explicit) {
			explicit = filepath.Join(workDir, explicit)
		}
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return explicit, nil
	}

	path := filepath.Join(workDir, DefaultConfigFile)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("config file: %w", err)
	}
	return path, nil
}

// adHocNetworks builds networks from --rpc URLs, named after their host
func adHocNetworks(rpcs []string) ([]config.Network, error) {
	networks := make([]config.Network, 0, len(rpcs))
	for _, raw := range rpcs {
		u, err := url.Parse(raw)
		if err != nil || u.Host == "" {
			return nil, fmt.Errorf("invalid RPC URL %q", raw)
		}
		networks = append(networks, config.Network{Name: u.Host, RPCURL: raw})
	}
	return lo.UniqBy(networks, func(n config.Network) string { return n.Name }), nil
}

// selectNetworks keeps the named networks, preserving configuration order
func selectNetworks(networks []config.Network, names []string) ([]config.Network, error) {
	known := lo.Map(networks, func(n config.Network, _ int) string { return n.Name })
	if missing, _ := lo.Difference(names, known); len(missing) > 0 {
		return nil, fmt.Errorf("unknown network(s) %s, configured: %s", strings.Join(missing, ", "), strings.Join(known, ", "))
	}
	return lo.Filter(networks, func(n config.Network, _ int) bool {
		return lo.Contains(names, n.Name)
	}), nil
}

// SetupViper creates and configures a viper instance
func SetupViper(workDir string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix("ECDBG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("timeout", "5m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("work_dir", workDir)

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
		if err != nil {
			panic(err)
		}
	})

	return v
}
