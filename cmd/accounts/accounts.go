// Package accounts maintains the account-name store from report workbooks.
package accounts

import (
	"fmt"
	"io"
	"sort"

	"fjacquet/realisasi/cmd/root"
	"fjacquet/realisasi/internal/store"
	"fjacquet/realisasi/internal/validation"

	"github.com/spf13/cobra"
)

var (
	// StoreFile overrides accounts.file for this run
	StoreFile string
	// DryRun lists the derived names without saving them
	DryRun bool
)

// Cmd represents the accounts command
var Cmd = &cobra.Command{
	Use:   "accounts",
	Short: "Collect account names from a workbook into the account store",
	Long: `Normalize a budget realisation workbook and merge the account names it
describes (last code segment to description) into the YAML account store.
Names already in the store are kept.

Example:
  realisasi accounts -i laporan.xlsx --store accounts.yaml`,
	Run: accountsFunc,
}

func init() {
	Cmd.Flags().StringVar(&StoreFile, "store", "", "Account store file (default accounts.file)")
	Cmd.Flags().BoolVar(&DryRun, "dry-run", false, "Print the derived names without saving")
}

func accountsFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	appContainer := root.GetContainer()
	if appContainer == nil {
		logger.Fatal("Container not initialized")
		return
	}

	input := root.SharedFlags.Input
	if err := validation.ValidateInputFile(input); err != nil {
		logger.Fatalf("Invalid input: %v", err)
		return
	}

	result, err := appContainer.GetConverter().Analyze(input)
	if err != nil {
		logger.Fatalf("Error analyzing file: %v", err)
		return
	}

	if DryRun {
		PrintNames(cmd.OutOrStdout(), result.AccountNames)
		return
	}

	accountStore := appContainer.GetAccountStore()
	if StoreFile != "" {
		accountStore = store.NewAccountStore(StoreFile, logger)
	}

	added, err := accountStore.Merge(result.AccountNames)
	if err != nil {
		logger.Fatalf("Error updating account store: %v", err)
		return
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d new account names saved to %s (%d derived)\n",
		added, accountStore.File, len(result.AccountNames))
}

// PrintNames writes the names sorted by code, one "code<TAB>name" per line.
func PrintNames(w io.Writer, names map[string]string) {
	codes := make([]string, 0, len(names))
	for code := range names {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", code, names[code])
	}
}
