package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mentorbridge/seeder/internal/config"
)

func profilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List seed profiles and their entity counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range []string{"default", "development", "special-only"} {
				p, err := config.Profile(name)
				if err != nil {
					return err
				}
				fmt.Printf("%s:\n", name)
				fmt.Printf("  organizations    %d\n", p.Organizations)
				fmt.Printf("  activity groups  %d\n", p.ActivityGroups)
				fmt.Printf("  people           %d\n", p.People)
				fmt.Printf("  tags             %d\n", p.TagsTotal)
				fmt.Printf("  rels/person      %d\n", p.RelationshipsPerPerson)
				fmt.Printf("  interactions/rel %d\n", p.InteractionsPerRelationship)
				fmt.Printf("  milestones/rel   %d\n", p.MilestonesPerRelationship)
				fmt.Printf("  special cases    %t\n\n", p.SpecialCases)
			}
			return nil
		},
	}
}
