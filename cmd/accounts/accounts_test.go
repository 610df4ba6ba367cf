package accounts_test

import (
	"bytes"
	"testing"

	"fjacquet/realisasi/cmd/accounts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountsCommand_Metadata(t *testing.T) {
	assert.Equal(t, "accounts", accounts.Cmd.Use)
	assert.Contains(t, accounts.Cmd.Short, "account store")
	assert.Contains(t, accounts.Cmd.Long, "Names already in the store are kept")
	assert.NotNil(t, accounts.Cmd.Run)
}

func TestAccountsCommand_Flags(t *testing.T) {
	storeFlag := accounts.Cmd.Flags().Lookup("store")
	require.NotNil(t, storeFlag)
	assert.Equal(t, "", storeFlag.DefValue)

	dryRun := accounts.Cmd.Flags().Lookup("dry-run")
	require.NotNil(t, dryRun)
	assert.Equal(t, "false", dryRun.DefValue)
}

func TestPrintNames(t *testing.T) {
	var buf bytes.Buffer
	accounts.PrintNames(&buf, map[string]string{
		"521219": "Belanja Barang Non Operasional Lainnya",
		"052":    "Komponen Pendukung",
		"521211": "Belanja Bahan",
	})

	assert.Equal(t, "052\tKomponen Pendukung\n"+
		"521211\tBelanja Bahan\n"+
		"521219\tBelanja Barang Non Operasional Lainnya\n", buf.String())
}

func TestPrintNames_Empty(t *testing.T) {
	var buf bytes.Buffer
	accounts.PrintNames(&buf, nil)
	assert.Empty(t, buf.String())
}
