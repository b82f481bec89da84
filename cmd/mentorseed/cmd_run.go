package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mentorbridge/seeder/internal/config"
	"github.com/mentorbridge/seeder/internal/seed"
)

func runCmd() *cobra.Command {
	var (
		profile string
		rndSeed uint64
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full seeding pipeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := cmd.Context()

			if profile != "" {
				seedCfg, err := config.Profile(profile)
				if err != nil {
					return err
				}
				cfg.Seed = seedCfg
			}

			if cfg.Environment == "production" && !force {
				return fmt.Errorf("refusing to seed a production environment without --force")
			}

			st, err := newStore(ctx, logger)
			if err != nil {
				return fmt.Errorf("run: connecting to store: %w", err)
			}
			defer func() { _ = st.Close() }()

			rnd := seed.NewRandomizer()
			if rndSeed != 0 {
				rnd = seed.NewSeededRandomizer(rndSeed)
				logger.Info("using fixed random seed", "seed", rndSeed)
			}

			summary, err := seed.New(st, cfg.Seed, rnd, logger).Run(ctx)
			if err != nil {
				return fmt.Errorf("run: %w", err)
			}

			fmt.Println("Seeding complete:")
			fmt.Printf("  %-22s %d\n", "organizations", summary.Organizations)
			fmt.Printf("  %-22s %d\n", "activity groups", summary.ActivityGroups)
			fmt.Printf("  %-22s %d\n", "tags", summary.Tags)
			fmt.Printf("  %-22s %d\n", "people", summary.People)
			fmt.Printf("  %-22s %d\n", "affiliations", summary.Affiliations)
			fmt.Printf("  %-22s %d\n", "activity memberships", summary.ActivityMemberships)
			fmt.Printf("  %-22s %d\n", "relationship types", summary.RelationshipTypes)
			fmt.Printf("  %-22s %d\n", "relationships", summary.Relationships)
			fmt.Printf("  %-22s %d\n", "milestone templates", summary.MilestoneTemplates)
			fmt.Printf("  %-22s %d\n", "milestones", summary.Milestones)
			fmt.Printf("  %-22s %d\n", "interactions", summary.Interactions)
			fmt.Printf("  %-22s %d\n", "participants", summary.Participants)
			if cfg.Seed.SpecialCases {
				fmt.Printf("  %-22s %d\n", "special case records", summary.SpecialCaseRecords)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "", "seed profile: default, development, or special-only")
	cmd.Flags().Uint64Var(&rndSeed, "seed", 0, "fixed random seed for reproducible runs (0 = random)")
	cmd.Flags().BoolVar(&force, "force", false, "allow seeding when environment is production")
	return cmd
}
