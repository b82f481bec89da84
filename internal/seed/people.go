package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mentorbridge/seeder/internal/models"
	"github.com/mentorbridge/seeder/internal/store"
)

// Probabilities for the people generator and its secondary passes.
const (
	studentProbability     = 0.45
	affiliationProbability = 0.55
	membershipProbability  = 0.65
)

// seedPeople creates the people collection and then two dependent passes:
// affiliations to organizations and activity group memberships. The
// dependent passes run only when people are freshly generated; when the
// people gate trips, the whole stage is a no-op and existing people are
// returned. Within a fresh run the dependent passes do not re-check
// existence themselves, so a run that failed between people and affiliations
// will not backfill on retry.
func (s *Seeder) seedPeople(ctx context.Context, orgs []models.Organization, groups []models.ActivityGroup) ([]models.Person, int, int, error) {
	exists, err := s.store.HasAny(ctx, store.CollPeople)
	if err != nil {
		return nil, 0, 0, err
	}
	if exists {
		s.logger.Info("people already seeded, reusing existing records")
		people, err := s.store.ListPeople(ctx)
		return people, 0, 0, err
	}

	people := make([]models.Person, 0, s.cfg.People)
	for i := 0; i < s.cfg.People; i++ {
		people = append(people, s.buildPerson())
	}

	err = store.InBatches(people, store.DefaultBatchSize, func(chunk []models.Person) error {
		return s.store.InsertPeople(ctx, chunk)
	})
	if err != nil {
		return nil, 0, 0, err
	}
	s.logger.Info("seeded people", "count", len(people))

	affiliations := s.buildAffiliations(people, orgs)
	err = store.InBatches(affiliations, store.DefaultBatchSize, func(chunk []models.Affiliation) error {
		return s.store.InsertAffiliations(ctx, chunk)
	})
	if err != nil {
		return nil, 0, 0, err
	}

	memberships := s.buildMemberships(people, groups)
	err = store.InBatches(memberships, store.DefaultBatchSize, func(chunk []models.PersonActivity) error {
		return s.store.InsertPersonActivities(ctx, chunk)
	})
	if err != nil {
		return nil, 0, 0, err
	}

	s.logger.Info("seeded affiliations and memberships",
		"affiliations", len(affiliations), "memberships", len(memberships))
	return people, len(affiliations), len(memberships), nil
}

// buildPerson generates one ordinary person. The student/graduate decision
// drives the graduation-year window and which of the mutually exclusive
// status fields is set: students carry a post-grad plan and no college,
// graduates carry an employment status and sometimes a college.
func (s *Seeder) buildPerson() models.Person {
	isStudent := s.rnd.Bool(studentProbability)

	var gradYear int
	if isStudent {
		gradYear = s.now.Year() + s.rnd.Between(0, 4)
	} else {
		gradYear = s.now.Year() - s.rnd.Between(1, 15)
	}

	first := Pick(s.rnd, firstNames)
	last := Pick(s.rnd, lastNames)

	p := models.Person{
		ID:             NewID(),
		FirstName:      first,
		LastName:       last,
		GraduationYear: gradYear,
		CreatedAt:      s.now,
		UpdatedAt:      s.now,
	}

	if s.rnd.Bool(0.85) {
		email := fmt.Sprintf("%s.%s%d@example.org",
			strings.ToLower(first), strings.ToLower(last), s.rnd.Between(1, 99))
		p.Email = &email
	}
	if s.rnd.Bool(0.7) {
		phone := fmt.Sprintf("555-%03d-%04d", s.rnd.Between(200, 999), s.rnd.Between(0, 9999))
		p.Phone = &phone
	}
	if s.rnd.Bool(0.9) {
		birth := time.Date(gradYear-18, time.Month(s.rnd.Between(1, 12)), s.rnd.Between(1, 28),
			0, 0, 0, 0, time.UTC)
		p.Birthdate = &birth
	}

	if isStudent {
		plan := Pick(s.rnd, models.ValidPostGradPlans)
		p.PostGradPlan = &plan
	} else {
		status := PickWeighted(s.rnd, employmentWeights)
		p.EmploymentStatus = &status
		if s.rnd.Bool(0.6) {
			college := Pick(s.rnd, colleges)
			p.College = &college
		}
	}

	if s.rnd.Bool(0.8) {
		checkIn := s.rnd.DateBetween(s.now.AddDate(0, 0, -s.cfg.MaxCheckInAgeDays), s.now)
		p.LastCheckInDate = &checkIn
	}
	if s.rnd.Bool(0.6) {
		p.Address = &models.Address{
			Street: fmt.Sprintf("%d %s", s.rnd.Between(100, 9999), Pick(s.rnd, streetNames)),
			City:   Pick(s.rnd, cities),
			State:  Pick(s.rnd, states),
			Zip:    fmt.Sprintf("%05d", s.rnd.Between(10000, 99999)),
		}
	}

	return p
}

func (s *Seeder) buildAffiliations(people []models.Person, orgs []models.Organization) []models.Affiliation {
	var affiliations []models.Affiliation
	for _, p := range people {
		if !s.rnd.Bool(affiliationProbability) {
			continue
		}
		chosen := PickN(s.rnd, orgs, s.rnd.Between(1, 2))
		for _, org := range chosen {
			// A person's sole affiliation is always primary; with two, each
			// gets a coin flip.
			primary := len(chosen) == 1 || s.rnd.Bool(0.5)
			affiliations = append(affiliations, models.Affiliation{
				ID:             NewID(),
				PersonID:       p.ID,
				OrganizationID: org.ID,
				Role:           Pick(s.rnd, []string{"member", "student", "alumni", "volunteer"}),
				IsPrimary:      primary,
				CreatedAt:      s.now,
			})
		}
	}
	return affiliations
}

func (s *Seeder) buildMemberships(people []models.Person, groups []models.ActivityGroup) []models.PersonActivity {
	var memberships []models.PersonActivity
	for _, p := range people {
		if !s.rnd.Bool(membershipProbability) {
			continue
		}
		for _, g := range PickN(s.rnd, groups, s.rnd.Between(1, 3)) {
			memberships = append(memberships, models.PersonActivity{
				ID:              NewID(),
				PersonID:        p.ID,
				ActivityGroupID: g.ID,
				CreatedAt:       s.now,
			})
		}
	}
	return memberships
}
