package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mentorbridge/seeder/internal/store"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show per-collection row counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := cmd.Context()

			st, err := newStore(ctx, logger)
			if err != nil {
				return fmt.Errorf("stats: connecting to store: %w", err)
			}
			defer func() { _ = st.Close() }()

			var total int64
			for _, coll := range store.Collections {
				n, err := st.Count(ctx, coll)
				if err != nil {
					return fmt.Errorf("stats: counting %s: %w", coll, err)
				}
				fmt.Printf("  %-26s %d\n", coll, n)
				total += n
			}
			fmt.Printf("\nTotal rows: %d\n", total)
			return nil
		},
	}
}
