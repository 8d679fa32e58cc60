package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fitscape/pkg/fitscape"
)

var synthConfigPath string

var synthCmd = &cobra.Command{
	Use:   "synth",
	Short: "Synthesize and install the landscapes of a scenario file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		opts, requests, err := loadScenario(synthConfigPath)
		if err != nil {
			return err
		}
		opts.StoreKind = storeKind
		opts.DBPath = dbPath

		client, err := fitscape.New(cmd.Context(), opts)
		if err != nil {
			return err
		}
		defer client.Close()

		summaries, err := client.SynthesizeAll(cmd.Context(), requests)
		if err != nil {
			return err
		}
		for _, summary := range summaries {
			fmt.Fprintf(cmd.OutOrStdout(),
				"trait %d: landscape %s seed=%d selected=%d/%d terms=%d\n",
				summary.TraitIndex, summary.ID, summary.Seed,
				summary.SelectedSites, summary.GenomeLength, summary.EpistaticTerms)
		}
		return nil
	},
}

func init() {
	synthCmd.Flags().StringVar(&synthConfigPath, "config", "", "scenario file (yaml)")
	_ = synthCmd.MarkFlagRequired("config")
}
