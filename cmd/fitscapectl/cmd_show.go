package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"fitscape/internal/storage"
)

var showCmd = &cobra.Command{
	Use:   "show <landscape-id>",
	Short: "Show one archived landscape",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer storage.CloseIfSupported(store)

		record, ok, err := store.GetLandscape(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("landscape %s not found", args[0])
		}

		negative, positive := 0, 0
		for _, effect := range record.Effects {
			switch {
			case effect < 0:
				negative++
			case effect > 0:
				positive++
			}
		}
		params, err := json.MarshalIndent(record.Params, "", "  ")
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "landscape %s\n", record.ID)
		fmt.Fprintf(out, "  trait: %d\n", record.TraitIndex)
		fmt.Fprintf(out, "  genome length: %d\n", record.GenomeLength)
		fmt.Fprintf(out, "  region: %s\n", record.Region)
		fmt.Fprintf(out, "  seed: %d\n", record.Seed)
		fmt.Fprintf(out, "  deleterious/lethal sites: %d\n", negative)
		fmt.Fprintf(out, "  beneficial sites: %d\n", positive)
		fmt.Fprintf(out, "  epistatic terms: %d\n", len(record.Terms))
		fmt.Fprintf(out, "  params: %s\n", params)
		return nil
	},
}
