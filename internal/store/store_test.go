package store

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/realisasi/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountStore_LoadMissingFile(t *testing.T) {
	s := NewAccountStore(filepath.Join(t.TempDir(), "accounts.yaml"), nil)

	names, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, names)
	assert.NotNil(t, names)
}

func TestAccountStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "accounts.yaml")
	s := NewAccountStore(path, logging.NewMockLogger())

	names := map[string]string{"521211": "Belanja Bahan", "052": "Komponen"}
	require.NoError(t, s.Save(names))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, names, loaded)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Komponen")
}

func TestAccountStore_Merge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.yaml")
	s := NewAccountStore(path, nil)
	require.NoError(t, s.Save(map[string]string{"521211": "Belanja Bahan"}))

	added, err := s.Merge(map[string]string{
		"521211": "Nama Baru",
		"521219": "Belanja Barang Non Operasional Lainnya",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"521211": "Belanja Bahan",
		"521219": "Belanja Barang Non Operasional Lainnya",
	}, loaded)

	added, err = s.Merge(map[string]string{"521211": "lagi"})
	require.NoError(t, err)
	assert.Zero(t, added)
}

func TestAccountStore_LoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- not\n- a map\n"), 0o600))

	_, err := NewAccountStore(path, nil).Load()
	assert.Error(t, err)
}

func TestNewAccountStore_DefaultFile(t *testing.T) {
	assert.Equal(t, DefaultAccountsFile, NewAccountStore("", nil).File)
}
