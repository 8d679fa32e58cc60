package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"fitscape/internal/storage"
)

var listLimit int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived landscapes, newest first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer storage.CloseIfSupported(store)

		records, err := store.ListLandscapes(cmd.Context(), listLimit)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTRAIT\tLOCI\tTERMS\tSEED\tCREATED")
		for _, record := range records {
			created := record.CreatedAtUTC
			if at, err := time.Parse(time.RFC3339Nano, record.CreatedAtUTC); err == nil {
				created = humanize.Time(at)
			}
			fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%d\t%s\n",
				record.ID, record.TraitIndex,
				humanize.Comma(int64(record.GenomeLength)),
				len(record.Terms), record.Seed, created)
		}
		return w.Flush()
	},
}

func init() {
	listCmd.Flags().IntVar(&listLimit, "limit", 20, "max records to show (0 = all)")
}
