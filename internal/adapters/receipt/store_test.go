package receipt_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/anvil/internal/adapters/receipt"
	"go.trai.ch/anvil/internal/core/domain"
)

func TestStore_Put(t *testing.T) {
	tmpDir := t.TempDir()

	artifact := filepath.Join(tmpDir, "loader")
	require.NoError(t, os.WriteFile(artifact, []byte("\x7fELF fake binary"), 0o755))

	path := filepath.Join(tmpDir, receipt.DefaultFilename)
	store := receipt.NewStore(path)

	err := store.Put(domain.BuildReceipt{
		Toolchain:  domain.ToolchainGCC,
		Host:       "linux/x86_64",
		OutputPath: artifact,
		Duration:   1200 * time.Millisecond,
		Timestamp:  time.Now(),
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got domain.BuildReceipt
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, domain.ToolchainGCC, got.Toolchain)
	assert.Equal(t, artifact, got.OutputPath)
	assert.Len(t, got.OutputHash, 16)
}

func TestStore_Put_Deterministic(t *testing.T) {
	tmpDir := t.TempDir()

	artifact := filepath.Join(tmpDir, "loader")
	require.NoError(t, os.WriteFile(artifact, []byte("same content"), 0o755))

	store := receipt.NewStore(filepath.Join(tmpDir, receipt.DefaultFilename))

	hashes := make([]string, 2)
	for i := range hashes {
		require.NoError(t, store.Put(domain.BuildReceipt{OutputPath: artifact}))

		data, err := os.ReadFile(filepath.Join(tmpDir, receipt.DefaultFilename))
		require.NoError(t, err)

		var got domain.BuildReceipt
		require.NoError(t, json.Unmarshal(data, &got))
		hashes[i] = got.OutputHash
	}

	assert.Equal(t, hashes[0], hashes[1])
}

func TestStore_Put_MissingArtifactStillWrites(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, receipt.DefaultFilename)
	store := receipt.NewStore(path)

	err := store.Put(domain.BuildReceipt{
		Toolchain:  domain.ToolchainClang,
		OutputPath: filepath.Join(tmpDir, "does-not-exist"),
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got domain.BuildReceipt
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Empty(t, got.OutputHash)
}
