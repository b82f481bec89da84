package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mentorbridge/seeder/internal/models"
	"github.com/mentorbridge/seeder/internal/store"
)

// Fixture keys. DeterministicID over these names every record the special
// scenarios create, so re-runs find them instead of duplicating them and
// tests can address them directly.
const (
	KeySpecialMentor      = "special-mentor"
	KeySpecialStaleMentee = "special-stale-mentee"

	keySpecialMenteeFmt       = "special-mentee-%d"
	keySpecialRelationshipFmt = "special-relationship-%d"

	KeySpecialRecentInteraction = "special-interaction-recent"
	KeySpecialStaleRelationship = "special-stale-relationship"
	KeySpecialStaleInteraction  = "special-stale-interaction"

	specialMenteeCount = 5
	maxSpecialTags     = 10
)

// KeySpecialMentee returns the fixture key of the i-th mentee in the demo
// cohort.
func KeySpecialMentee(i int) string {
	return fmt.Sprintf(keySpecialMenteeFmt, i)
}

// KeySpecialRelationship returns the fixture key of the i-th cohort
// relationship.
func KeySpecialRelationship(i int) string {
	return fmt.Sprintf(keySpecialRelationshipFmt, i)
}

// seedSpecialCases layers four hand-designed scenarios over the base data:
// a mentor with a staggered cohort of five mentees, a mentee whose only
// interaction has gone stale, a relationship with every milestone completed,
// and a heavily tagged person. Unlike the bulk generators, each scenario is
// idempotent per record: it looks up its fixture ids before creating
// anything. A scenario missing its prerequisite fixture logs and bows out
// without failing the others; store errors are still fatal.
func (s *Seeder) seedSpecialCases(ctx context.Context, relTypes []models.RelationshipType, tags []models.Tag, templates []models.MilestoneTemplate) (int, error) {
	mentorStudent := typeByCode(relTypes, models.RelTypeMentorStudent)

	created := 0

	n, err := s.specialMentorCohort(ctx, mentorStudent.ID)
	if err != nil {
		return created, fmt.Errorf("mentor cohort scenario: %w", err)
	}
	created += n

	n, err = s.specialStaleMentee(ctx, mentorStudent.ID)
	if err != nil {
		return created, fmt.Errorf("stale mentee scenario: %w", err)
	}
	created += n

	n, err = s.specialMilestoneSweep(ctx, templates)
	if err != nil {
		return created, fmt.Errorf("milestone sweep scenario: %w", err)
	}
	created += n

	n, err = s.specialTagAssignments(ctx, tags)
	if err != nil {
		return created, fmt.Errorf("tag assignment scenario: %w", err)
	}
	created += n

	s.logger.Info("seeded special cases", "records", created)
	return created, nil
}

// ensurePerson inserts the person if its id is not in the store yet. Returns
// whether a record was created.
func (s *Seeder) ensurePerson(ctx context.Context, p models.Person) (bool, error) {
	_, err := s.store.GetPerson(ctx, p.ID)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return false, err
	}
	if err := s.store.InsertPeople(ctx, []models.Person{p}); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Seeder) ensureRelationship(ctx context.Context, r models.Relationship) (bool, error) {
	_, err := s.store.GetRelationship(ctx, r.ID)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return false, err
	}
	if err := s.store.InsertRelationships(ctx, []models.Relationship{r}); err != nil {
		return false, err
	}
	return true, nil
}

// fixturePerson builds a fixture person with fully populated contact fields
// so every UI path has data to render.
func (s *Seeder) fixturePerson(key, first, last string, gradYear int, student bool) models.Person {
	email := fmt.Sprintf("%s@fixtures.mentorbridge.example", key)
	phone := "555-010-0000"
	p := models.Person{
		ID:             DeterministicID(key),
		FirstName:      first,
		LastName:       last,
		Email:          &email,
		Phone:          &phone,
		GraduationYear: gradYear,
		CreatedAt:      s.now,
		UpdatedAt:      s.now,
	}
	if student {
		plan := models.PlanFourYearCollege
		p.PostGradPlan = &plan
	} else {
		status := models.EmploymentFullTime
		p.EmploymentStatus = &status
		college := colleges[0]
		p.College = &college
	}
	return p
}

// specialMentorCohort creates one mentor with five mentees. Relationship
// start dates are staggered two months apart, strength scores descend, and
// the last relationship is left pending. The first relationship also gets a
// fresh interaction from yesterday so recency-sensitive views have a live
// example next to the stale one.
func (s *Seeder) specialMentorCohort(ctx context.Context, mentorStudentTypeID string) (int, error) {
	created := 0

	mentor := s.fixturePerson(KeySpecialMentor, "Morgan", "Wells", s.now.Year()-10, false)
	ok, err := s.ensurePerson(ctx, mentor)
	if err != nil {
		return created, err
	}
	if ok {
		created++
	}

	for i := 0; i < specialMenteeCount; i++ {
		mentee := s.fixturePerson(KeySpecialMentee(i), "Casey", fmt.Sprintf("Fixture%d", i), s.now.Year()+1, true)
		ok, err := s.ensurePerson(ctx, mentee)
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}

		status := models.RelStatusActive
		if i == specialMenteeCount-1 {
			status = models.RelStatusPending
		}
		strength := 95 - i*10
		rel := models.Relationship{
			ID:                 DeterministicID(KeySpecialRelationship(i)),
			FromPersonID:       mentor.ID,
			ToPersonID:         mentee.ID,
			RelationshipTypeID: mentorStudentTypeID,
			Status:             status,
			StartDate:          s.now.AddDate(0, -2*(i+1), 0),
			StrengthScore:      &strength,
			CreatedAt:          s.now,
			UpdatedAt:          s.now,
		}
		ok, err = s.ensureRelationship(ctx, rel)
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}

	n, err := s.ensureFixtureInteraction(ctx, fixtureInteraction{
		key:            KeySpecialRecentInteraction,
		relationshipID: DeterministicID(KeySpecialRelationship(0)),
		mentorID:       mentor.ID,
		menteeID:       DeterministicID(KeySpecialMentee(0)),
		title:          "Weekly Check-In",
		start:          s.now.AddDate(0, 0, -1),
		quality:        92,
	})
	if err != nil {
		return created, err
	}
	return created + n, nil
}

// specialStaleMentee creates a mentee whose single interaction is three
// months old, exercising the neglected-relationship paths. It requires the
// fixture mentor from the cohort scenario; if that fixture is absent the
// scenario logs and steps aside instead of failing the run.
func (s *Seeder) specialStaleMentee(ctx context.Context, mentorStudentTypeID string) (int, error) {
	mentorID := DeterministicID(KeySpecialMentor)
	if _, err := s.store.GetPerson(ctx, mentorID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.logger.Warn("fixture mentor not found, skipping stale mentee scenario")
			return 0, nil
		}
		return 0, err
	}

	created := 0
	mentee := s.fixturePerson(KeySpecialStaleMentee, "Riley", "Hargrove", s.now.Year(), true)
	ok, err := s.ensurePerson(ctx, mentee)
	if err != nil {
		return created, err
	}
	if ok {
		created++
	}

	strength := 35
	rel := models.Relationship{
		ID:                 DeterministicID(KeySpecialStaleRelationship),
		FromPersonID:       mentorID,
		ToPersonID:         mentee.ID,
		RelationshipTypeID: mentorStudentTypeID,
		Status:             models.RelStatusActive,
		StartDate:          s.now.AddDate(0, -8, 0),
		StrengthScore:      &strength,
		CreatedAt:          s.now,
		UpdatedAt:          s.now,
	}
	ok, err = s.ensureRelationship(ctx, rel)
	if err != nil {
		return created, err
	}
	if ok {
		created++
	}

	n, err := s.ensureFixtureInteraction(ctx, fixtureInteraction{
		key:            KeySpecialStaleInteraction,
		relationshipID: rel.ID,
		mentorID:       mentorID,
		menteeID:       mentee.ID,
		title:          "Initial Meeting",
		start:          s.now.AddDate(0, -3, 0),
		quality:        58,
	})
	if err != nil {
		return created, err
	}
	return created + n, nil
}

// fixtureInteraction describes a deterministic completed meeting between a
// mentor and mentee.
type fixtureInteraction struct {
	key            string
	relationshipID string
	mentorID       string
	menteeID       string
	title          string
	start          time.Time
	quality        int
}

// ensureFixtureInteraction creates the interaction and its two participants
// if the deterministic interaction id is not in the store yet.
func (s *Seeder) ensureFixtureInteraction(ctx context.Context, f fixtureInteraction) (int, error) {
	id := DeterministicID(f.key)
	if _, err := s.store.GetInteraction(ctx, id); err == nil {
		return 0, nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return 0, err
	}

	end := f.start.Add(45 * time.Minute)
	location := meetingLocations[0]
	reciprocity := f.quality - 5
	sentiment := f.quality - 10
	quality := f.quality
	in := models.Interaction{
		ID:               id,
		Title:            f.title,
		Description:      "Fixture interaction created by the special-case seeder.",
		Type:             models.InteractionMeeting,
		StartTime:        f.start,
		EndTime:          &end,
		Location:         &location,
		IsPlanned:        true,
		Status:           models.InteractionCompleted,
		QualityScore:     &quality,
		ReciprocityScore: &reciprocity,
		SentimentScore:   &sentiment,
		Metadata:         map[string]any{"relationship_id": f.relationshipID},
		CreatedAt:        s.now,
		UpdatedAt:        s.now,
	}
	if err := s.store.InsertInteractions(ctx, []models.Interaction{in}); err != nil {
		return 0, err
	}

	attended := true
	participants := []models.InteractionParticipant{
		{
			ID:            DeterministicID(f.key + "-mentor"),
			InteractionID: id,
			PersonID:      f.mentorID,
			Role:          models.RoleMentor,
			Attended:      &attended,
			CreatedAt:     s.now,
		},
		{
			ID:            DeterministicID(f.key + "-mentee"),
			InteractionID: id,
			PersonID:      f.menteeID,
			Role:          models.RoleMentee,
			Attended:      &attended,
			CreatedAt:     s.now,
		},
	}
	if err := s.store.InsertInteractionParticipants(ctx, participants); err != nil {
		return 0, err
	}
	return 1 + len(participants), nil
}

// specialMilestoneSweep completes every remaining milestone template against
// the first cohort relationship, with achievement dates spaced one month
// apart into the past.
func (s *Seeder) specialMilestoneSweep(ctx context.Context, templates []models.MilestoneTemplate) (int, error) {
	relID := DeterministicID(KeySpecialRelationship(0))
	if _, err := s.store.GetRelationship(ctx, relID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.logger.Warn("fixture relationship not found, skipping milestone sweep scenario")
			return 0, nil
		}
		return 0, err
	}

	existing, err := s.store.ListMilestonesForRelationship(ctx, relID)
	if err != nil {
		return 0, err
	}
	achieved := make(map[string]struct{}, len(existing))
	for i := range existing {
		achieved[existing[i].MilestoneID] = struct{}{}
	}

	var achievements []models.RelationshipMilestone
	for _, t := range templates {
		if _, done := achieved[t.ID]; done {
			continue
		}
		achievements = append(achievements, models.RelationshipMilestone{
			ID:             NewID(),
			RelationshipID: relID,
			MilestoneID:    t.ID,
			AchievedDate:   s.now.AddDate(0, -(len(achievements) + 1), 0),
			Notes:          "Completed as part of the demo cohort.",
			CreatedAt:      s.now,
		})
	}
	if len(achievements) == 0 {
		return 0, nil
	}

	err = store.InBatches(achievements, store.WideBatchSize, func(chunk []models.RelationshipMilestone) error {
		return s.store.InsertRelationshipMilestones(ctx, chunk)
	})
	if err != nil {
		return 0, err
	}
	return len(achievements), nil
}

// specialTagAssignments gives the fixture mentor up to ten tags so
// tag-heavy list views have something to chew on. Any pre-existing
// assignment means the scenario already ran, so it is skipped wholesale.
func (s *Seeder) specialTagAssignments(ctx context.Context, tags []models.Tag) (int, error) {
	personID := DeterministicID(KeySpecialMentor)
	if _, err := s.store.GetPerson(ctx, personID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.logger.Warn("fixture mentor not found, skipping tag assignment scenario")
			return 0, nil
		}
		return 0, err
	}

	assigned, err := s.store.ListTagsForPerson(ctx, personID)
	if err != nil {
		return 0, err
	}
	if len(assigned) > 0 {
		return 0, nil
	}

	var personTags []models.PersonTag
	for _, t := range tags {
		if len(personTags) >= maxSpecialTags {
			break
		}
		personTags = append(personTags, models.PersonTag{
			ID:        NewID(),
			PersonID:  personID,
			TagID:     t.ID,
			CreatedAt: s.now,
		})
	}
	if len(personTags) == 0 {
		return 0, nil
	}

	err = store.InBatches(personTags, store.DefaultBatchSize, func(chunk []models.PersonTag) error {
		return s.store.InsertPersonTags(ctx, chunk)
	})
	if err != nil {
		return 0, err
	}
	return len(personTags), nil
}
