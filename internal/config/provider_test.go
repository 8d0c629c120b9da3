package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/ecdbg/internal/domain/config"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func newViper(workDir string) *viper.Viper {
	v := viper.New()
	v.Set("work_dir", workDir)
	return v
}

func TestProvider_Defaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Provider(newViper(dir))
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.WorkDir)
	assert.Empty(t, cfg.ConfigFile)
	assert.Equal(t, DefaultNetworks, cfg.Networks)
	assert.Equal(t, config.DefaultWindowSize, cfg.Scan.WindowSize)
	assert.Zero(t, cfg.Scan.MaxBlockDepth)
}

func TestProvider_ConfigFile(t *testing.T) {
	t.Run("networks keep file order and expand env", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("ECDBG_TEST_L1_RPC", "http://l1.example:8545")
		writeFile(t, dir, DefaultConfigFile, `
[networks.zeta]
rpc_url = "http://zeta.example:3050"

[networks.alpha]
rpc_url = "${ECDBG_TEST_L1_RPC}"
bridgehub = "0x303a465B659cBB0ab36eE643eA362c509EEb5213"

[scan]
window_size = 500
max_block_depth = 20000
`)

		cfg, err := Provider(newViper(dir))
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(dir, DefaultConfigFile), cfg.ConfigFile)
		require.Len(t, cfg.Networks, 2)
		assert.Equal(t, "zeta", cfg.Networks[0].Name)
		assert.Nil(t, cfg.Networks[0].Bridgehub)
		assert.Equal(t, "alpha", cfg.Networks[1].Name)
		assert.Equal(t, "http://l1.example:8545", cfg.Networks[1].RPCURL)
		require.NotNil(t, cfg.Networks[1].Bridgehub)
		assert.Equal(t, common.HexToAddress("0x303a465B659cBB0ab36eE643eA362c509EEb5213"), *cfg.Networks[1].Bridgehub)
		assert.Equal(t, uint64(500), cfg.Scan.WindowSize)
		assert.Equal(t, uint64(20000), cfg.Scan.MaxBlockDepth)
	})

	t.Run("dotenv feeds expansion", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".env", "ECDBG_TEST_DOTENV_RPC=http://dotenv.example:8545\n")
		writeFile(t, dir, DefaultConfigFile, `
[networks.l1]
rpc_url = "${ECDBG_TEST_DOTENV_RPC}"
`)
		t.Cleanup(func() { os.Unsetenv("ECDBG_TEST_DOTENV_RPC") })

		cfg, err := Provider(newViper(dir))
		require.NoError(t, err)
		require.Len(t, cfg.Networks, 1)
		assert.Equal(t, "http://dotenv.example:8545", cfg.Networks[0].RPCURL)
	})

	t.Run("explicit path", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "other.toml", `
[networks.only]
rpc_url = "http://only.example"
`)
		v := newViper(dir)
		v.Set("config", "other.toml")

		cfg, err := Provider(v)
		require.NoError(t, err)
		require.Len(t, cfg.Networks, 1)
		assert.Equal(t, "only", cfg.Networks[0].Name)
	})

	t.Run("missing explicit path", func(t *testing.T) {
		v := newViper(t.TempDir())
		v.Set("config", "nope.toml")

		_, err := Provider(v)
		assert.Error(t, err)
	})

	t.Run("invalid bridgehub", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, DefaultConfigFile, `
[networks.l1]
rpc_url = "http://127.0.0.1:8545"
bridgehub = "not-an-address"
`)
		_, err := Provider(newViper(dir))
		assert.ErrorContains(t, err, "invalid bridgehub")
	})

	t.Run("unknown key", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, DefaultConfigFile, `
[networks.l1]
rpc = "http://127.0.0.1:8545"
`)
		_, err := Provider(newViper(dir))
		assert.Error(t, err)
	})
}

func TestProvider_Overrides(t *testing.T) {
	t.Run("window and depth flags", func(t *testing.T) {
		v := newViper(t.TempDir())
		v.Set("window", 250)
		v.Set("max_depth", 5000)

		cfg, err := Provider(v)
		require.NoError(t, err)
		assert.Equal(t, uint64(250), cfg.Scan.WindowSize)
		assert.Equal(t, uint64(5000), cfg.Scan.MaxBlockDepth)
	})

	t.Run("network filter", func(t *testing.T) {
		v := newViper(t.TempDir())
		v.Set("network", []string{"gateway"})

		cfg, err := Provider(v)
		require.NoError(t, err)
		require.Len(t, cfg.Networks, 1)
		assert.Equal(t, "gateway", cfg.Networks[0].Name)
	})

	t.Run("unknown network", func(t *testing.T) {
		v := newViper(t.TempDir())
		v.Set("network", []string{"mainnet"})

		_, err := Provider(v)
		assert.ErrorContains(t, err, "mainnet")
	})

	t.Run("ad-hoc rpc replaces configured networks", func(t *testing.T) {
		v := newViper(t.TempDir())
		v.Set("rpc", []string{"http://10.0.0.1:8545", "http://10.0.0.2:3050"})

		cfg, err := Provider(v)
		require.NoError(t, err)
		require.Len(t, cfg.Networks, 2)
		assert.Equal(t, "10.0.0.1:8545", cfg.Networks[0].Name)
		assert.Equal(t, "http://10.0.0.2:3050", cfg.Networks[1].RPCURL)
	})

	t.Run("invalid ad-hoc rpc", func(t *testing.T) {
		v := newViper(t.TempDir())
		v.Set("rpc", []string{"localhost"})

		_, err := Provider(v)
		assert.Error(t, err)
	})
}

func TestSetupViper(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Bool("non-interactive", false, "")
	cmd.Flags().Duration("timeout", 0, "")
	require.NoError(t, cmd.Flags().Set("non-interactive", "true"))

	v := SetupViper("/work", cmd)

	assert.True(t, v.GetBool("non_interactive"))
	assert.Equal(t, "/work", v.GetString("work_dir"))
	assert.Equal(t, 5*time.Minute, v.GetDuration("timeout"))

	t.Setenv("ECDBG_DEBUG", "true")
	assert.True(t, v.GetBool("debug"))
}
