package seed

import (
	"context"

	"github.com/mentorbridge/seeder/internal/models"
	"github.com/mentorbridge/seeder/internal/store"
)

// KeySpecialTag names the fixture tag.
const KeySpecialTag = "special-tag"

func (s *Seeder) seedTags(ctx context.Context) ([]models.Tag, error) {
	exists, err := s.store.HasAny(ctx, store.CollTags)
	if err != nil {
		return nil, err
	}
	if exists {
		s.logger.Info("tags already seeded, reusing existing records")
		return s.store.ListTags(ctx)
	}

	var tags []models.Tag

	if s.cfg.SpecialCases {
		tags = append(tags, models.Tag{
			ID:        DeterministicID(KeySpecialTag),
			Name:      "Demo Fixture",
			Category:  models.TagCategoryStatus,
			Color:     Pick(s.rnd, tagColors),
			CreatedAt: s.now,
		})
	}

	usedNames := make(map[string]struct{})
	for len(tags) < s.cfg.TagsTotal {
		category := PickWeighted(s.rnd, tagCategoryWeights)
		name := s.uniqueName(usedNames, func() string {
			return Pick(s.rnd, tagNames[category])
		})
		tags = append(tags, models.Tag{
			ID:        NewID(),
			Name:      name,
			Category:  category,
			Color:     Pick(s.rnd, tagColors),
			CreatedAt: s.now,
		})
	}

	err = store.InBatches(tags, store.DefaultBatchSize, func(chunk []models.Tag) error {
		return s.store.InsertTags(ctx, chunk)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("seeded tags", "count", len(tags))
	return tags, nil
}
