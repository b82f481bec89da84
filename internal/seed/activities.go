package seed

import (
	"context"
	"fmt"

	"github.com/mentorbridge/seeder/internal/models"
	"github.com/mentorbridge/seeder/internal/store"
)

// KeySpecialActivityGroup names the fixture activity group.
const KeySpecialActivityGroup = "special-activity-group"

func (s *Seeder) seedActivityGroups(ctx context.Context) ([]models.ActivityGroup, error) {
	exists, err := s.store.HasAny(ctx, store.CollActivityGroups)
	if err != nil {
		return nil, err
	}
	if exists {
		s.logger.Info("activity groups already seeded, reusing existing records")
		return s.store.ListActivityGroups(ctx)
	}

	var groups []models.ActivityGroup

	if s.cfg.SpecialCases {
		groups = append(groups, models.ActivityGroup{
			ID:          DeterministicID(KeySpecialActivityGroup),
			Name:        "Mentor Demo Cohort",
			Description: "Fixture activity group referenced by the hand-designed test scenarios",
			Category:    models.ActivityCategoryLeadership,
			CreatedAt:   s.now,
			UpdatedAt:   s.now,
		})
	}

	for _, common := range commonActivityGroups {
		if len(groups) >= s.cfg.ActivityGroups {
			break
		}
		g := common
		g.ID = NewID()
		g.CreatedAt = s.now
		g.UpdatedAt = s.now
		groups = append(groups, g)
	}

	usedNames := make(map[string]struct{}, len(groups))
	for i := range groups {
		usedNames[groups[i].Name] = struct{}{}
	}
	for len(groups) < s.cfg.ActivityGroups {
		category := PickWeighted(s.rnd, activityCategoryWeights)
		name := s.uniqueName(usedNames, func() string {
			return Pick(s.rnd, placeTokens) + " " + Pick(s.rnd, activitySuffixes[category])
		})
		groups = append(groups, models.ActivityGroup{
			ID:          NewID(),
			Name:        name,
			Description: fmt.Sprintf("%s open to program participants", name),
			Category:    category,
			CreatedAt:   s.now,
			UpdatedAt:   s.now,
		})
	}

	err = store.InBatches(groups, store.DefaultBatchSize, func(chunk []models.ActivityGroup) error {
		return s.store.InsertActivityGroups(ctx, chunk)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("seeded activity groups", "count", len(groups))
	return groups, nil
}
