package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorbridge/seeder/internal/models"
)

func TestPartitionByGraduation_Eligibility(t *testing.T) {
	year := 2026
	people := []models.Person{
		{ID: "old", GraduationYear: year - 10},     // mentor only
		{ID: "edge-mentor", GraduationYear: year - 3},  // both: exactly 3 years out
		{ID: "edge-student", GraduationYear: year - 5}, // both: exactly 5 years back
		{ID: "current", GraduationYear: year + 1},      // student only
	}

	mentors, students := partitionByGraduation(people, year)

	mentorIDs := make([]string, 0, len(mentors))
	for _, p := range mentors {
		mentorIDs = append(mentorIDs, p.ID)
	}
	studentIDs := make([]string, 0, len(students))
	for _, p := range students {
		studentIDs = append(studentIDs, p.ID)
	}

	assert.ElementsMatch(t, []string{"old", "edge-mentor", "edge-student"}, mentorIDs)
	assert.ElementsMatch(t, []string{"edge-mentor", "edge-student", "current"}, studentIDs)
}

func TestPartitionByGraduation_Empty(t *testing.T) {
	mentors, students := partitionByGraduation(nil, 2026)
	assert.Empty(t, mentors)
	assert.Empty(t, students)
}

func TestSamplePair_NoSelfOrDuplicatePairs(t *testing.T) {
	s, _ := newTestSeeder(t, testSeedConfig(), 10)
	mentors := []models.Person{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	students := []models.Person{{ID: "b"}, {ID: "c"}, {ID: "d"}}

	used := map[string]struct{}{}
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		mentor, student, ok := s.samplePair(mentors, students, used)
		if !ok {
			continue
		}
		assert.NotEqual(t, mentor.ID, student.ID)
		key := mentor.ID + ":" + student.ID
		assert.False(t, seen[key], "pair %s drawn twice", key)
		seen[key] = true
	}
	assert.NotEmpty(t, seen)
}

// TestSamplePair_GivesUpOnExhaustedPool checks the redraw cap: once every
// valid pair has been used, sampling reports failure instead of looping.
func TestSamplePair_GivesUpOnExhaustedPool(t *testing.T) {
	s, _ := newTestSeeder(t, testSeedConfig(), 11)
	mentors := []models.Person{{ID: "a"}}
	students := []models.Person{{ID: "b"}}

	used := map[string]struct{}{}
	_, _, ok := s.samplePair(mentors, students, used)
	require.True(t, ok)

	_, _, ok = s.samplePair(mentors, students, used)
	assert.False(t, ok)
}

func TestBuildRelationship_StatusAndScores(t *testing.T) {
	s, _ := newTestSeeder(t, testSeedConfig(), 12)
	types := make([]models.RelationshipType, 0, len(relationshipTypeDefs))
	for _, def := range relationshipTypeDefs {
		rt := def
		rt.ID = DeterministicID("relationship-type-" + string(def.Code))
		types = append(types, rt)
	}
	mentorStudent := typeByCode(types, models.RelTypeMentorStudent)

	mentor := models.Person{ID: "mentor", GraduationYear: 2010}
	student := models.Person{ID: "student", GraduationYear: 2027}

	typeIDs := map[string]bool{}
	for _, rt := range types {
		typeIDs[rt.ID] = true
	}

	for i := 0; i < 2000; i++ {
		r := s.buildRelationship(mentor, student, types, mentorStudent)

		assert.True(t, typeIDs[r.RelationshipTypeID])
		assert.False(t, r.StartDate.Before(s.cfg.Start()))
		assert.False(t, r.StartDate.After(s.now))
		require.NotNil(t, r.StrengthScore)

		switch r.Status {
		case models.RelStatusActive:
			assert.Nil(t, r.EndDate)
			assert.GreaterOrEqual(t, *r.StrengthScore, 60)
			assert.LessOrEqual(t, *r.StrengthScore, 100)
		case models.RelStatusInactive:
			require.NotNil(t, r.EndDate)
			assert.True(t, r.EndDate.After(r.StartDate), "end date must follow start date")
			assert.False(t, r.EndDate.After(s.now.Add(24*time.Hour)))
			assert.GreaterOrEqual(t, *r.StrengthScore, 20)
			assert.LessOrEqual(t, *r.StrengthScore, 70)
		default:
			t.Fatalf("unexpected generated status %q", r.Status)
		}
	}
}

func TestEnsureRelationshipTypes_TopsUpMissingCodes(t *testing.T) {
	s, st := newTestSeeder(t, testSeedConfig(), 13)
	ctx := context.Background()

	partial := relationshipTypeDefs[0]
	partial.ID = DeterministicID("relationship-type-" + string(partial.Code))
	require.NoError(t, st.InsertRelationshipTypes(ctx, []models.RelationshipType{partial}))

	types, err := s.ensureRelationshipTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, types, len(relationshipTypeDefs))

	// A second pass finds every code present and adds nothing.
	again, err := s.ensureRelationshipTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, again, len(relationshipTypeDefs))
}
