package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorbridge/seeder/internal/config"
	"github.com/mentorbridge/seeder/internal/models"
)

func specialCaseConfig() config.SeedConfig {
	cfg := config.ProfileDevelopment()
	cfg.Organizations = 2
	cfg.People = 10
	cfg.RelationshipsPerPerson = 2
	cfg.SpecialCases = true
	return cfg
}

func TestSpecialCases_MentorCohort(t *testing.T) {
	s, st := newTestSeeder(t, specialCaseConfig(), 40)
	ctx := context.Background()

	sum, err := s.Run(ctx)
	require.NoError(t, err)
	assert.Positive(t, sum.SpecialCaseRecords)

	mentorID := DeterministicID(KeySpecialMentor)
	mentor, err := st.GetPerson(ctx, mentorID)
	require.NoError(t, err)
	assert.Equal(t, "Morgan", mentor.FirstName)
	assert.Equal(t, "Wells", mentor.LastName)
	require.NotNil(t, mentor.EmploymentStatus)
	assert.Nil(t, mentor.PostGradPlan)

	people, err := st.ListPeople(ctx)
	require.NoError(t, err)
	found := 0
	for _, p := range people {
		if p.ID == mentorID {
			found++
		}
	}
	assert.Equal(t, 1, found, "exactly one fixture mentor")

	var prevStart time.Time
	for i := 0; i < specialMenteeCount; i++ {
		rel, err := st.GetRelationship(ctx, DeterministicID(KeySpecialRelationship(i)))
		require.NoError(t, err, "cohort relationship %d missing", i)

		assert.Equal(t, mentorID, rel.FromPersonID)
		assert.Equal(t, DeterministicID(KeySpecialMentee(i)), rel.ToPersonID)

		wantStatus := models.RelStatusActive
		if i == specialMenteeCount-1 {
			wantStatus = models.RelStatusPending
		}
		assert.Equal(t, wantStatus, rel.Status)

		require.NotNil(t, rel.StrengthScore)
		assert.Equal(t, 95-i*10, *rel.StrengthScore)

		if i > 0 {
			assert.True(t, rel.StartDate.Before(prevStart),
				"cohort start dates must be staggered older with each mentee")
		}
		prevStart = rel.StartDate
	}
}

func TestSpecialCases_RecentAndStaleInteractions(t *testing.T) {
	s, st := newTestSeeder(t, specialCaseConfig(), 41)
	ctx := context.Background()

	_, err := s.Run(ctx)
	require.NoError(t, err)

	recent, err := st.GetInteraction(ctx, DeterministicID(KeySpecialRecentInteraction))
	require.NoError(t, err)
	assert.Equal(t, models.InteractionCompleted, recent.Status)
	assert.True(t, recent.StartTime.After(s.now.AddDate(0, 0, -3)),
		"recent fixture interaction must fall within the last three days")
	require.NotNil(t, recent.QualityScore)
	assert.Equal(t, 92, *recent.QualityScore)

	stale, err := st.GetInteraction(ctx, DeterministicID(KeySpecialStaleInteraction))
	require.NoError(t, err)
	assert.Equal(t, models.InteractionCompleted, stale.Status)
	assert.True(t, stale.StartTime.Before(s.now.AddDate(0, -2, 0)),
		"stale fixture interaction must be months old")
	require.NotNil(t, stale.QualityScore)
	assert.Equal(t, 58, *stale.QualityScore)

	staleRel, err := st.GetRelationship(ctx, DeterministicID(KeySpecialStaleRelationship))
	require.NoError(t, err)
	assert.Equal(t, models.RelStatusActive, staleRel.Status)
	require.NotNil(t, staleRel.StrengthScore)
	assert.Equal(t, 35, *staleRel.StrengthScore)
	assert.Equal(t, DeterministicID(KeySpecialStaleMentee), staleRel.ToPersonID)
}

func TestSpecialCases_MilestoneSweepCompletesCatalog(t *testing.T) {
	s, st := newTestSeeder(t, specialCaseConfig(), 42)
	ctx := context.Background()

	_, err := s.Run(ctx)
	require.NoError(t, err)

	relID := DeterministicID(KeySpecialRelationship(0))
	achieved, err := st.ListMilestonesForRelationship(ctx, relID)
	require.NoError(t, err)
	require.Len(t, achieved, len(milestoneTemplateDefs),
		"first cohort relationship must achieve the full template catalog")

	seen := map[string]bool{}
	for _, a := range achieved {
		assert.False(t, seen[a.MilestoneID])
		seen[a.MilestoneID] = true
		assert.True(t, a.AchievedDate.Before(s.now))
	}
}

func TestSpecialCases_TagAssignments(t *testing.T) {
	s, st := newTestSeeder(t, specialCaseConfig(), 43)
	ctx := context.Background()

	_, err := s.Run(ctx)
	require.NoError(t, err)

	tags, err := st.ListTagsForPerson(ctx, DeterministicID(KeySpecialMentor))
	require.NoError(t, err)
	assert.NotEmpty(t, tags)
	assert.LessOrEqual(t, len(tags), maxSpecialTags)

	seen := map[string]bool{}
	for _, tg := range tags {
		assert.False(t, seen[tg.TagID], "tag assigned twice")
		seen[tg.TagID] = true
	}
}

// A second pass over the special scenarios creates nothing: every record is
// keyed by a deterministic id and found on lookup.
func TestSpecialCases_RerunCreatesNothing(t *testing.T) {
	cfg := specialCaseConfig()
	s, st := newTestSeeder(t, cfg, 44)
	ctx := context.Background()

	_, err := s.Run(ctx)
	require.NoError(t, err)

	tags, err := st.ListTags(ctx)
	require.NoError(t, err)
	templates, err := st.ListMilestoneTemplates(ctx)
	require.NoError(t, err)
	types, err := st.ListRelationshipTypes(ctx)
	require.NoError(t, err)

	again := New(st, cfg, NewSeededRandomizer(45), s.logger)
	created, err := again.seedSpecialCases(ctx, types, tags, templates)
	require.NoError(t, err)
	assert.Zero(t, created)
}

// The stale-mentee scenario depends on the cohort's fixture mentor. On an
// empty store it steps aside without error.
func TestSpecialStaleMentee_SkipsWithoutFixtureMentor(t *testing.T) {
	s, _ := newTestSeeder(t, specialCaseConfig(), 46)

	created, err := s.specialStaleMentee(context.Background(), "type-id")
	require.NoError(t, err)
	assert.Zero(t, created)
}
