package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fitscape/internal/storage"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the landscape archive",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer storage.CloseIfSupported(store)
		fmt.Fprintf(cmd.OutOrStdout(), "initialized %s store\n", storeKind)
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all archived landscapes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer storage.CloseIfSupported(store)
		if err := store.Reset(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "archive cleared")
		return nil
	},
}
