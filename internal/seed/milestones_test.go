package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorbridge/seeder/internal/models"
	"github.com/mentorbridge/seeder/internal/store"
)

func TestEnsureMilestoneTemplates_StableIDs(t *testing.T) {
	s, st := newTestSeeder(t, testSeedConfig(), 30)
	ctx := context.Background()

	first, err := s.ensureMilestoneTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, first, len(milestoneTemplateDefs))

	// A second ensure reuses the stored catalog, id for id.
	again, err := s.ensureMilestoneTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, again, len(first))
	for i := range first {
		assert.Equal(t, first[i].ID, again[i].ID)
	}

	n, err := st.Count(ctx, store.CollMilestoneTemplates)
	require.NoError(t, err)
	assert.EqualValues(t, len(milestoneTemplateDefs), n)
}

func TestBuildAchievements_NoDuplicateTemplates(t *testing.T) {
	s, _ := newTestSeeder(t, testSeedConfig(), 31)

	var required, optional []models.MilestoneTemplate
	for _, def := range milestoneTemplateDefs {
		tmpl := def.Template
		tmpl.ID = DeterministicID("milestone-template-" + def.Key)
		if tmpl.IsRequired {
			required = append(required, tmpl)
		} else {
			optional = append(optional, tmpl)
		}
	}

	rel := models.Relationship{
		ID:        "rel",
		Status:    models.RelStatusActive,
		StartDate: s.now.AddDate(-1, 0, 0),
	}

	for i := 0; i < 500; i++ {
		achievements := s.buildAchievements(rel, required, optional)
		require.NotEmpty(t, achievements)
		assert.LessOrEqual(t, len(achievements), s.cfg.MilestonesPerRelationship)

		seen := map[string]bool{}
		for _, a := range achievements {
			assert.False(t, seen[a.MilestoneID], "template achieved twice for one relationship")
			seen[a.MilestoneID] = true

			assert.Equal(t, "rel", a.RelationshipID)
			assert.False(t, a.AchievedDate.Before(rel.StartDate))
			assert.False(t, a.AchievedDate.After(s.now))
			assert.NotEmpty(t, a.Notes)
		}
	}
}

// With the required-milestone probability pinned to 1, required templates are
// always consumed before any optional one.
func TestBuildAchievements_RequiredFirst(t *testing.T) {
	cfg := testSeedConfig()
	cfg.RequiredMilestoneProbability = 1.0
	cfg.MilestonesPerRelationship = 4
	s, _ := newTestSeeder(t, cfg, 32)

	var required, optional []models.MilestoneTemplate
	for _, def := range milestoneTemplateDefs {
		tmpl := def.Template
		tmpl.ID = DeterministicID("milestone-template-" + def.Key)
		if tmpl.IsRequired {
			required = append(required, tmpl)
		} else {
			optional = append(optional, tmpl)
		}
	}
	requiredIDs := map[string]bool{}
	for _, tmpl := range required {
		requiredIDs[tmpl.ID] = true
	}

	rel := models.Relationship{ID: "rel", Status: models.RelStatusActive, StartDate: s.now.AddDate(-1, 0, 0)}
	for i := 0; i < 200; i++ {
		achievements := s.buildAchievements(rel, required, optional)
		for _, a := range achievements {
			assert.True(t, requiredIDs[a.MilestoneID],
				"optional template achieved while required ones remained")
		}
	}
}

func TestSeedMilestones_SkipsWhenAlreadySeeded(t *testing.T) {
	s, st := newTestSeeder(t, testSeedConfig(), 33)
	ctx := context.Background()

	rels := []models.Relationship{{
		ID:        "rel",
		Status:    models.RelStatusActive,
		StartDate: s.now.AddDate(-1, 0, 0),
	}}

	templates, created, err := s.seedMilestones(ctx, rels)
	require.NoError(t, err)
	assert.Len(t, templates, len(milestoneTemplateDefs))
	assert.Positive(t, created)

	templates, createdAgain, err := s.seedMilestones(ctx, rels)
	require.NoError(t, err)
	assert.Len(t, templates, len(milestoneTemplateDefs))
	assert.Zero(t, createdAgain)

	assert.Len(t, st.ListRelationshipMilestones(), created)
}
