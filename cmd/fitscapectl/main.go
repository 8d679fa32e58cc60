package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fitscape/internal/storage"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "fitscapectl",
	Short: "Synthesize fitness landscapes for viral evolution engines",
	Long: "Fitscapectl builds additive+epistatic fitness landscapes from\n" +
		"statistical parameters and installs them into a population engine.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
}

var (
	storeKind string
	dbPath    string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&storeKind, "store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db-path", "fitscape.db", "sqlite database path")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(synthCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openStore(cmd *cobra.Command) (storage.Store, error) {
	store, err := storage.NewStore(storeKind, dbPath)
	if err != nil {
		return nil, err
	}
	if err := store.Init(cmd.Context()); err != nil {
		return nil, err
	}
	return store, nil
}
