package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mentorbridge/seeder/internal/config"
	"github.com/mentorbridge/seeder/internal/metrics"
	"github.com/mentorbridge/seeder/internal/store"
)

// Seeder runs the full generation pipeline against a store. It is not safe
// to run two pipelines against the same database concurrently: the
// idempotency gates are read-then-write, not transactional.
type Seeder struct {
	store  store.Store
	cfg    config.SeedConfig
	rnd    *Randomizer
	logger *slog.Logger

	// now is fixed at construction so every date window in a single run is
	// computed against the same instant.
	now time.Time
}

// New creates a Seeder.
func New(st store.Store, cfg config.SeedConfig, rnd *Randomizer, logger *slog.Logger) *Seeder {
	return &Seeder{
		store:  st,
		cfg:    cfg,
		rnd:    rnd,
		logger: logger,
		now:    time.Now().UTC(),
	}
}

// Summary reports how many records of each family a run produced. Families
// skipped by their idempotency gate report the pre-existing count for the
// primary collections and zero for the dependent ones.
type Summary struct {
	Organizations       int
	ActivityGroups      int
	Tags                int
	People              int
	Affiliations        int
	ActivityMemberships int
	RelationshipTypes   int
	Relationships       int
	MilestoneTemplates  int
	Milestones          int
	Interactions        int
	Participants        int
	SpecialCaseRecords  int
}

// Run executes the generators in dependency order: organizations, activity
// groups, and tags first, then people (with affiliations and memberships),
// relationships, milestones, interactions, and finally the special cases.
// The first stage error aborts the rest of the pipeline.
func (s *Seeder) Run(ctx context.Context) (*Summary, error) {
	started := time.Now()
	sum := &Summary{}

	orgs, err := s.seedOrganizations(ctx)
	if err != nil {
		return nil, fmt.Errorf("seeding organizations: %w", err)
	}
	sum.Organizations = len(orgs)

	groups, err := s.seedActivityGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("seeding activity groups: %w", err)
	}
	sum.ActivityGroups = len(groups)

	tags, err := s.seedTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("seeding tags: %w", err)
	}
	sum.Tags = len(tags)

	people, affiliations, memberships, err := s.seedPeople(ctx, orgs, groups)
	if err != nil {
		return nil, fmt.Errorf("seeding people: %w", err)
	}
	sum.People = len(people)
	sum.Affiliations = affiliations
	sum.ActivityMemberships = memberships

	relTypes, rels, err := s.seedRelationships(ctx, people)
	if err != nil {
		return nil, fmt.Errorf("seeding relationships: %w", err)
	}
	sum.RelationshipTypes = len(relTypes)
	sum.Relationships = len(rels)

	templates, milestones, err := s.seedMilestones(ctx, rels)
	if err != nil {
		return nil, fmt.Errorf("seeding milestones: %w", err)
	}
	sum.MilestoneTemplates = len(templates)
	sum.Milestones = milestones

	interactions, participants, err := s.seedInteractions(ctx, people, rels)
	if err != nil {
		return nil, fmt.Errorf("seeding interactions: %w", err)
	}
	sum.Interactions = interactions
	sum.Participants = participants

	if s.cfg.SpecialCases {
		created, err := s.seedSpecialCases(ctx, relTypes, tags, templates)
		if err != nil {
			return nil, fmt.Errorf("seeding special cases: %w", err)
		}
		sum.SpecialCaseRecords = created
	}

	metrics.OrganizationsSeeded.Add(int64(sum.Organizations))
	metrics.PeopleSeeded.Add(int64(sum.People))
	metrics.RelationshipsSeeded.Add(int64(sum.Relationships))
	metrics.MilestonesSeeded.Add(int64(sum.Milestones))
	metrics.InteractionsSeeded.Add(int64(sum.Interactions))
	metrics.SpecialCaseRecords.Add(int64(sum.SpecialCaseRecords))

	s.logger.Info("pipeline complete",
		"people", sum.People,
		"relationships", sum.Relationships,
		"interactions", sum.Interactions,
		"elapsed", time.Since(started).Round(time.Millisecond))

	return sum, nil
}
