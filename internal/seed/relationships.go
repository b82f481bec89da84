package seed

import (
	"context"
	"time"

	"github.com/mentorbridge/seeder/internal/models"
	"github.com/mentorbridge/seeder/internal/store"
)

// Mentor/student partition windows relative to the current year. A person
// who graduated at least mentorMinYearsOut years ago can mentor; anyone who
// graduated within studentMaxYearsBack years (or has not graduated yet) can
// be mentored. The windows overlap on purpose.
const (
	mentorMinYearsOut   = 3
	studentMaxYearsBack = 5

	// pairRetryLimit caps how often a duplicate mentor/student pair is
	// redrawn before the iteration is skipped. Undercounting the target is
	// accepted; the alternative is an unbounded loop on small pools.
	pairRetryLimit = 10

	mentorStudentBias = 0.8
)

var relationshipTypeDefs = []models.RelationshipType{
	{Code: models.RelTypeMentorStudent, Name: "Mentor / Student", Description: "An adult mentor paired with a current student"},
	{Code: models.RelTypePeerMentor, Name: "Peer Mentor", Description: "A near-peer guiding a younger participant"},
	{Code: models.RelTypeCoach, Name: "Coach", Description: "A skills or athletics coach"},
	{Code: models.RelTypeSponsor, Name: "Sponsor", Description: "A professional sponsoring career development"},
	{Code: models.RelTypeAlumniStudent, Name: "Alumni / Student", Description: "A program alum mentoring a current student"},
}

// ensureRelationshipTypes creates any type from the defined list that is not
// yet in the store. The check is per code, not per count, so a partially
// seeded list is topped up rather than duplicated.
func (s *Seeder) ensureRelationshipTypes(ctx context.Context) ([]models.RelationshipType, error) {
	existing, err := s.store.ListRelationshipTypes(ctx)
	if err != nil {
		return nil, err
	}
	present := make(map[models.RelationshipTypeCode]struct{}, len(existing))
	for i := range existing {
		present[existing[i].Code] = struct{}{}
	}

	var missing []models.RelationshipType
	for _, def := range relationshipTypeDefs {
		if _, ok := present[def.Code]; ok {
			continue
		}
		t := def
		t.ID = DeterministicID("relationship-type-" + string(def.Code))
		t.CreatedAt = s.now
		missing = append(missing, t)
	}
	if len(missing) > 0 {
		err := store.InBatches(missing, store.DefaultBatchSize, func(chunk []models.RelationshipType) error {
			return s.store.InsertRelationshipTypes(ctx, chunk)
		})
		if err != nil {
			return nil, err
		}
		s.logger.Info("created relationship types", "count", len(missing))
	}
	return append(existing, missing...), nil
}

func (s *Seeder) seedRelationships(ctx context.Context, people []models.Person) ([]models.RelationshipType, []models.Relationship, error) {
	types, err := s.ensureRelationshipTypes(ctx)
	if err != nil {
		return nil, nil, err
	}

	exists, err := s.store.HasAny(ctx, store.CollRelationships)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		s.logger.Info("relationships already seeded, reusing existing records")
		rels, err := s.store.ListRelationships(ctx)
		return types, rels, err
	}

	mentors, students := partitionByGraduation(people, s.now.Year())
	if len(mentors) == 0 || len(students) == 0 {
		s.logger.Warn("no eligible mentor/student pairs", "mentors", len(mentors), "students", len(students))
		return types, nil, nil
	}

	mentorStudent := typeByCode(types, models.RelTypeMentorStudent)
	target := min(len(mentors)*s.cfg.RelationshipsPerPerson, len(students)*2)

	used := make(map[string]struct{}, target)
	rels := make([]models.Relationship, 0, target)
	for i := 0; i < target; i++ {
		mentor, student, ok := s.samplePair(mentors, students, used)
		if !ok {
			continue
		}
		rels = append(rels, s.buildRelationship(mentor, student, types, mentorStudent))
	}

	err = store.InBatches(rels, store.DefaultBatchSize, func(chunk []models.Relationship) error {
		return s.store.InsertRelationships(ctx, chunk)
	})
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("seeded relationships", "count", len(rels), "target", target,
		"mentors", len(mentors), "students", len(students))
	return types, rels, nil
}

// partitionByGraduation splits people into mentor- and student-eligible
// pools. The pools can overlap for mid-range graduation years.
func partitionByGraduation(people []models.Person, currentYear int) (mentors, students []models.Person) {
	for _, p := range people {
		if p.GraduationYear <= currentYear-mentorMinYearsOut {
			mentors = append(mentors, p)
		}
		if p.GraduationYear >= currentYear-studentMaxYearsBack {
			students = append(students, p)
		}
	}
	return mentors, students
}

// samplePair draws a mentor/student pair not seen before in this run. After
// pairRetryLimit redraws it gives up and the caller skips the iteration.
func (s *Seeder) samplePair(mentors, students []models.Person, used map[string]struct{}) (models.Person, models.Person, bool) {
	var mentor, student models.Person
	for attempt := 0; attempt <= pairRetryLimit; attempt++ {
		mentor = Pick(s.rnd, mentors)
		student = Pick(s.rnd, students)
		if mentor.ID == student.ID {
			continue
		}
		key := mentor.ID + ":" + student.ID
		if _, dup := used[key]; dup {
			continue
		}
		used[key] = struct{}{}
		return mentor, student, true
	}
	return mentor, student, false
}

func (s *Seeder) buildRelationship(mentor, student models.Person, types []models.RelationshipType, mentorStudent *models.RelationshipType) models.Relationship {
	typeID := mentorStudent.ID
	if !s.rnd.Bool(mentorStudentBias) {
		typeID = Pick(s.rnd, types).ID
	}

	start := s.rnd.DateBetween(s.cfg.Start(), s.now)
	active := s.rnd.Bool(s.cfg.ActiveMentorshipProbability)

	r := models.Relationship{
		ID:                 NewID(),
		FromPersonID:       mentor.ID,
		ToPersonID:         student.ID,
		RelationshipTypeID: typeID,
		Status:             models.RelStatusActive,
		StartDate:          start,
		CreatedAt:          s.now,
		UpdatedAt:          s.now,
	}

	if active {
		score := s.rnd.Between(60, 100)
		r.StrengthScore = &score
	} else {
		r.Status = models.RelStatusInactive
		end := s.rnd.DateBetween(start, s.now)
		if !end.After(start) {
			end = start.Add(24 * time.Hour)
		}
		r.EndDate = &end
		score := s.rnd.Between(20, 70)
		r.StrengthScore = &score
	}
	return r
}

func typeByCode(types []models.RelationshipType, code models.RelationshipTypeCode) *models.RelationshipType {
	for i := range types {
		if types[i].Code == code {
			return &types[i]
		}
	}
	return &types[0]
}
