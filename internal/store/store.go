package store

import (
	"context"
	"errors"

	"github.com/mentorbridge/seeder/internal/models"
)

// ErrNotFound is returned by the Get methods when no record matches.
var ErrNotFound = errors.New("record not found")

// Collection names as known to the store. Every read and write goes through
// one of these; HasAny and Count reject anything else.
const (
	CollOrganizations          = "organizations"
	CollActivityGroups         = "activity_groups"
	CollTags                   = "tags"
	CollPeople                 = "people"
	CollAffiliations           = "affiliations"
	CollPersonActivities       = "person_activities"
	CollPersonTags             = "person_tags"
	CollRelationshipTypes      = "relationship_types"
	CollRelationships          = "relationships"
	CollMilestoneTemplates     = "milestone_templates"
	CollRelationshipMilestones = "relationship_milestones"
	CollInteractions           = "interactions"
	CollInteractionParticipants = "interaction_participants"
)

// Collections lists every collection the seeder touches, in dependency order.
var Collections = []string{
	CollOrganizations,
	CollActivityGroups,
	CollTags,
	CollPeople,
	CollAffiliations,
	CollPersonActivities,
	CollPersonTags,
	CollRelationshipTypes,
	CollRelationships,
	CollMilestoneTemplates,
	CollRelationshipMilestones,
	CollInteractions,
	CollInteractionParticipants,
}

// Store is the persistence boundary of the seeder. The PostgresStore talks to
// the real MentorBridge database; MockStore backs the tests.
//
// Insert methods receive pre-chunked slices (see InBatches) and persist each
// call as a single round trip. List methods return the full collection and
// exist so an already-seeded collection can be re-fetched instead of
// regenerated.
type Store interface {
	// HasAny reports whether the collection holds at least one record. It is
	// the idempotency gate every bulk generator checks before doing work.
	HasAny(ctx context.Context, collection string) (bool, error)

	// Count returns the number of records in the collection.
	Count(ctx context.Context, collection string) (int64, error)

	ListOrganizations(ctx context.Context) ([]models.Organization, error)
	InsertOrganizations(ctx context.Context, orgs []models.Organization) error

	ListActivityGroups(ctx context.Context) ([]models.ActivityGroup, error)
	InsertActivityGroups(ctx context.Context, groups []models.ActivityGroup) error

	ListTags(ctx context.Context) ([]models.Tag, error)
	InsertTags(ctx context.Context, tags []models.Tag) error

	ListPeople(ctx context.Context) ([]models.Person, error)
	InsertPeople(ctx context.Context, people []models.Person) error

	InsertAffiliations(ctx context.Context, affs []models.Affiliation) error
	InsertPersonActivities(ctx context.Context, memberships []models.PersonActivity) error

	ListRelationshipTypes(ctx context.Context) ([]models.RelationshipType, error)
	InsertRelationshipTypes(ctx context.Context, types []models.RelationshipType) error

	ListRelationships(ctx context.Context) ([]models.Relationship, error)
	InsertRelationships(ctx context.Context, rels []models.Relationship) error

	ListMilestoneTemplates(ctx context.Context) ([]models.MilestoneTemplate, error)
	InsertMilestoneTemplates(ctx context.Context, templates []models.MilestoneTemplate) error
	InsertRelationshipMilestones(ctx context.Context, achievements []models.RelationshipMilestone) error

	ListInteractions(ctx context.Context) ([]models.Interaction, error)
	InsertInteractions(ctx context.Context, interactions []models.Interaction) error
	InsertInteractionParticipants(ctx context.Context, participants []models.InteractionParticipant) error

	// Targeted lookups used by the special-case generator, which is
	// idempotent per record rather than per collection.
	GetPerson(ctx context.Context, id string) (*models.Person, error)
	GetRelationship(ctx context.Context, id string) (*models.Relationship, error)
	GetInteraction(ctx context.Context, id string) (*models.Interaction, error)
	ListMilestonesForRelationship(ctx context.Context, relationshipID string) ([]models.RelationshipMilestone, error)
	ListTagsForPerson(ctx context.Context, personID string) ([]models.PersonTag, error)
	InsertPersonTags(ctx context.Context, personTags []models.PersonTag) error

	// Close releases the underlying connections.
	Close() error
}
