package main

import (
	"fmt"
	"os"

	"fjacquet/realisasi/cmd/accounts"
	"fjacquet/realisasi/cmd/batch"
	"fjacquet/realisasi/cmd/convert"
	"fjacquet/realisasi/cmd/preview"
	"fjacquet/realisasi/cmd/root"
	"fjacquet/realisasi/internal/config"
)

func init() {
	// 1. Load .env before viper reads the environment
	_, _ = config.LoadEnv()

	// 2. Initialize root command flags
	root.Init()

	// 3. Add all subcommands
	root.Cmd.AddCommand(convert.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(preview.Cmd)
	root.Cmd.AddCommand(accounts.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
