package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/ecdbg/internal/domain/config"
	"github.com/trebuchet-org/ecdbg/internal/domain/models"
	"gopkg.in/yaml.v3"
)

var testRoot = common.HexToAddress("0x303a465B659cBB0ab36eE643eA362c509EEb5213")

func newTestSnapshotWriter(t *testing.T) (*SnapshotWriterAdapter, string) {
	t.Helper()
	tmpDir := t.TempDir()
	return NewSnapshotWriterAdapter(&config.RuntimeConfig{WorkDir: tmpDir}), tmpDir
}

func testSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Endpoint:     "l1",
		ChainID:      9,
		Layer:        models.BaseLayer(),
		Block:        42,
		RegistryRoot: testRoot,
		Entities: map[common.Address]models.Entity{
			testRoot: &models.ChainRegistry{Address: testRoot, ChainIDs: []uint64{270}},
		},
		Chains: map[uint64]*models.ChainEntry{
			270: {ChainID: 270},
		},
	}
}

func TestSnapshotWriter_JSON(t *testing.T) {
	writer, dir := newTestSnapshotWriter(t)
	ctx := context.Background()

	err := writer.WriteSnapshot(ctx, filepath.Join("out", "snapshot.json"), testSnapshot())
	require.NoError(t, err)

	path := filepath.Join(dir, "out", "snapshot.json")
	assert.FileExists(t, path)
	assert.NoFileExists(t, path+".tmp")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.EqualValues(t, 42, doc["block"])
	// Addresses are text-marshalled as lower-case hex
	root := strings.ToLower(testRoot.Hex())
	assert.Equal(t, root, doc["registryRoot"])

	entities, ok := doc["entities"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, entities, root)
}

func TestSnapshotWriter_YAML(t *testing.T) {
	writer, dir := newTestSnapshotWriter(t)
	ctx := context.Background()

	for _, name := range []string{"snapshot.yaml", "snapshot.YML"} {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, writer.WriteSnapshot(ctx, name, testSnapshot()))

			data, err := os.ReadFile(filepath.Join(dir, name))
			require.NoError(t, err)

			var doc map[string]any
			require.NoError(t, yaml.Unmarshal(data, &doc))
			assert.EqualValues(t, 42, doc["block"])
			assert.Equal(t, "l1", doc["endpoint"])
		})
	}
}

func TestSnapshotWriter_ReplacesExisting(t *testing.T) {
	writer, dir := newTestSnapshotWriter(t)
	ctx := context.Background()
	path := filepath.Join(dir, "snapshot.json")

	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))

	snapshot := testSnapshot()
	snapshot.Block = 43
	require.NoError(t, writer.WriteSnapshot(ctx, path, snapshot))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"block": 43`)
}
