package seed

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorbridge/seeder/internal/config"
	"github.com/mentorbridge/seeder/internal/models"
	"github.com/mentorbridge/seeder/internal/store"
)

// testSeedConfig returns the development profile with special cases off, so
// base-pipeline tests see only generated records.
func testSeedConfig() config.SeedConfig {
	cfg := config.ProfileDevelopment()
	cfg.SpecialCases = false
	return cfg
}

func newTestSeeder(t *testing.T, cfg config.SeedConfig, rndSeed uint64) (*Seeder, *store.MockStore) {
	t.Helper()
	st := store.NewMockStore()
	return New(st, cfg, NewSeededRandomizer(rndSeed), slog.New(slog.DiscardHandler)), st
}

func TestPipeline_CountsMatchConfig(t *testing.T) {
	cfg := testSeedConfig()
	s, _ := newTestSeeder(t, cfg, 1)

	sum, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, cfg.Organizations, sum.Organizations)
	assert.Equal(t, cfg.ActivityGroups, sum.ActivityGroups)
	assert.Equal(t, cfg.TagsTotal, sum.Tags)
	assert.Equal(t, cfg.People, sum.People)
	assert.Equal(t, len(models.ValidRelationshipTypeCodes), sum.RelationshipTypes)
	assert.Equal(t, 10, sum.MilestoneTemplates)
}

// TestPipeline_ReferentialValidity walks every generated reference field and
// resolves it against the collection it points into.
func TestPipeline_ReferentialValidity(t *testing.T) {
	s, st := newTestSeeder(t, testSeedConfig(), 2)
	ctx := context.Background()

	_, err := s.Run(ctx)
	require.NoError(t, err)

	people, err := st.ListPeople(ctx)
	require.NoError(t, err)
	personIDs := map[string]bool{}
	for _, p := range people {
		personIDs[p.ID] = true
	}

	types, err := st.ListRelationshipTypes(ctx)
	require.NoError(t, err)
	typeIDs := map[string]bool{}
	for _, rt := range types {
		typeIDs[rt.ID] = true
	}

	rels, err := st.ListRelationships(ctx)
	require.NoError(t, err)
	relIDs := map[string]bool{}
	for _, r := range rels {
		relIDs[r.ID] = true
		assert.True(t, personIDs[r.FromPersonID], "relationship from_person_id must resolve")
		assert.True(t, personIDs[r.ToPersonID], "relationship to_person_id must resolve")
		assert.True(t, typeIDs[r.RelationshipTypeID], "relationship_type_id must resolve")
	}

	templates, err := st.ListMilestoneTemplates(ctx)
	require.NoError(t, err)
	templateIDs := map[string]bool{}
	for _, tmpl := range templates {
		templateIDs[tmpl.ID] = true
	}
	for _, a := range st.ListRelationshipMilestones() {
		assert.True(t, relIDs[a.RelationshipID], "milestone relationship_id must resolve")
		assert.True(t, templateIDs[a.MilestoneID], "milestone_id must resolve")
	}

	interactions, err := st.ListInteractions(ctx)
	require.NoError(t, err)
	interactionIDs := map[string]bool{}
	for _, in := range interactions {
		interactionIDs[in.ID] = true
	}
	for _, part := range st.ListInteractionParticipants() {
		assert.True(t, interactionIDs[part.InteractionID], "participant interaction_id must resolve")
		assert.True(t, personIDs[part.PersonID], "participant person_id must resolve")
	}

	orgs, err := st.ListOrganizations(ctx)
	require.NoError(t, err)
	orgIDs := map[string]bool{}
	for _, o := range orgs {
		orgIDs[o.ID] = true
	}
	for _, a := range st.ListAffiliations() {
		assert.True(t, personIDs[a.PersonID], "affiliation person_id must resolve")
		assert.True(t, orgIDs[a.OrganizationID], "affiliation organization_id must resolve")
	}

	groups, err := st.ListActivityGroups(ctx)
	require.NoError(t, err)
	groupIDs := map[string]bool{}
	for _, g := range groups {
		groupIDs[g.ID] = true
	}
	for _, m := range st.ListPersonActivities() {
		assert.True(t, personIDs[m.PersonID], "membership person_id must resolve")
		assert.True(t, groupIDs[m.ActivityGroupID], "membership activity_group_id must resolve")
	}
}

// TestPipeline_Idempotent runs the pipeline twice against the same store and
// verifies the second run changes nothing — every collection keeps its count
// and receives no further insert calls.
func TestPipeline_Idempotent(t *testing.T) {
	cfg := config.ProfileDevelopment() // special cases on: they must be idempotent too
	s, st := newTestSeeder(t, cfg, 3)
	ctx := context.Background()

	_, err := s.Run(ctx)
	require.NoError(t, err)

	counts := map[string]int64{}
	inserts := map[string]int{}
	for _, coll := range store.Collections {
		n, err := st.Count(ctx, coll)
		require.NoError(t, err)
		counts[coll] = n
		inserts[coll] = st.InsertCalls(coll)
	}

	// Second run with a different random sequence must still be a no-op.
	second := New(st, cfg, NewSeededRandomizer(99), slog.New(slog.DiscardHandler))
	_, err = second.Run(ctx)
	require.NoError(t, err)

	for _, coll := range store.Collections {
		n, err := st.Count(ctx, coll)
		require.NoError(t, err)
		assert.Equal(t, counts[coll], n, "collection %s grew on second run", coll)
		assert.Equal(t, inserts[coll], st.InsertCalls(coll), "collection %s received inserts on second run", coll)
	}
}

// TestPipeline_StatusConditionedNullability verifies score and attendance
// fields are populated exactly when the owning interaction is completed.
func TestPipeline_StatusConditionedNullability(t *testing.T) {
	s, st := newTestSeeder(t, testSeedConfig(), 4)
	ctx := context.Background()

	_, err := s.Run(ctx)
	require.NoError(t, err)

	interactions, err := st.ListInteractions(ctx)
	require.NoError(t, err)
	byID := map[string]models.Interaction{}
	for _, in := range interactions {
		byID[in.ID] = in
		if in.Status == models.InteractionCompleted {
			assert.NotNil(t, in.QualityScore)
			assert.NotNil(t, in.ReciprocityScore)
			assert.NotNil(t, in.SentimentScore)
		} else {
			assert.Nil(t, in.QualityScore)
			assert.Nil(t, in.ReciprocityScore)
			assert.Nil(t, in.SentimentScore)
		}
	}

	for _, part := range st.ListInteractionParticipants() {
		owner, ok := byID[part.InteractionID]
		require.True(t, ok)
		if owner.Status != models.InteractionCompleted {
			assert.Nil(t, part.Attended, "attended must be nil unless the interaction completed")
		} else {
			assert.NotNil(t, part.Attended)
		}
	}
}

// TestPipeline_PeopleBranchExclusive verifies the student/graduate branch:
// exactly one of post-grad plan and employment status is set.
func TestPipeline_PeopleBranchExclusive(t *testing.T) {
	s, st := newTestSeeder(t, testSeedConfig(), 5)
	ctx := context.Background()

	_, err := s.Run(ctx)
	require.NoError(t, err)

	people, err := st.ListPeople(ctx)
	require.NoError(t, err)
	for _, p := range people {
		set := 0
		if p.PostGradPlan != nil {
			set++
			assert.Nil(t, p.College, "students have no college yet")
		}
		if p.EmploymentStatus != nil {
			set++
		}
		assert.Equal(t, 1, set, "exactly one of post_grad_plan and employment_status must be set")
	}
}
