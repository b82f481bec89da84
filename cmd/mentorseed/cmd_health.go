package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mentorbridge/seeder/internal/store"
)

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check connectivity to the database and schema presence",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := cmd.Context()
			allOK := true

			st, err := newStore(ctx, logger)
			if err != nil {
				fmt.Printf("Database: FAIL (%v)\n", err)
				return fmt.Errorf("one or more health checks failed")
			}
			defer func() { _ = st.Close() }()

			if err := st.Ping(ctx); err != nil {
				fmt.Printf("Database: FAIL (%v)\n", err)
				allOK = false
			} else {
				fmt.Println("Database: OK")
			}

			// A failing existence check on any table means the migrations
			// have not been applied.
			for _, coll := range store.Collections {
				if _, err := st.HasAny(ctx, coll); err != nil {
					fmt.Printf("Schema (%s): FAIL (%v)\n", coll, err)
					allOK = false
				}
			}
			if allOK {
				fmt.Println("Schema: OK")
				return nil
			}
			return fmt.Errorf("one or more health checks failed")
		},
	}
}
