package seed

import (
	"context"
	"fmt"

	"github.com/mentorbridge/seeder/internal/models"
	"github.com/mentorbridge/seeder/internal/store"
)

// KeySpecialOrganization names the fixture organization seeded ahead of the
// curated and random ones when special cases are enabled.
const KeySpecialOrganization = "special-organization"

func (s *Seeder) seedOrganizations(ctx context.Context) ([]models.Organization, error) {
	exists, err := s.store.HasAny(ctx, store.CollOrganizations)
	if err != nil {
		return nil, err
	}
	if exists {
		s.logger.Info("organizations already seeded, reusing existing records")
		return s.store.ListOrganizations(ctx)
	}

	var orgs []models.Organization

	if s.cfg.SpecialCases {
		orgs = append(orgs, models.Organization{
			ID:          DeterministicID(KeySpecialOrganization),
			Name:        "Meadowbrook Mentoring Alliance",
			Description: "Fixture organization referenced by the hand-designed test scenarios",
			Category:    models.OrgCategoryNonprofit,
			CreatedAt:   s.now,
			UpdatedAt:   s.now,
		})
	}

	for _, common := range commonOrganizations {
		if len(orgs) >= s.cfg.Organizations {
			break
		}
		o := common
		o.ID = NewID()
		o.CreatedAt = s.now
		o.UpdatedAt = s.now
		orgs = append(orgs, o)
	}

	usedNames := make(map[string]struct{}, len(orgs))
	for i := range orgs {
		usedNames[orgs[i].Name] = struct{}{}
	}
	for len(orgs) < s.cfg.Organizations {
		category := PickWeighted(s.rnd, orgCategoryWeights)
		name := s.uniqueName(usedNames, func() string {
			return Pick(s.rnd, placeTokens) + " " + Pick(s.rnd, orgSuffixes[category])
		})
		orgs = append(orgs, models.Organization{
			ID:          NewID(),
			Name:        name,
			Description: fmt.Sprintf("%s partnering with the mentoring program", name),
			Category:    category,
			Metadata:    map[string]any{"city": Pick(s.rnd, cities)},
			CreatedAt:   s.now,
			UpdatedAt:   s.now,
		})
	}

	err = store.InBatches(orgs, store.DefaultBatchSize, func(chunk []models.Organization) error {
		return s.store.InsertOrganizations(ctx, chunk)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("seeded organizations", "count", len(orgs))
	return orgs, nil
}

// uniqueName draws candidate names until one is unused, suffixing a counter
// after a few collisions so the loop always terminates.
func (s *Seeder) uniqueName(used map[string]struct{}, draw func() string) string {
	name := draw()
	for attempt := 0; attempt < 5; attempt++ {
		if _, taken := used[name]; !taken {
			break
		}
		name = draw()
	}
	if _, taken := used[name]; taken {
		name = fmt.Sprintf("%s %d", name, len(used)+1)
	}
	used[name] = struct{}{}
	return name
}
