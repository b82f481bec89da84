package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/mentorbridge/seeder/internal/models"
)

// MockStore is an in-memory implementation of Store for testing. It also
// counts insert calls per collection so tests can observe batching.
type MockStore struct {
	mu sync.RWMutex

	organizations    []models.Organization
	activityGroups   []models.ActivityGroup
	tags             []models.Tag
	people           []models.Person
	affiliations     []models.Affiliation
	personActivities []models.PersonActivity
	personTags       []models.PersonTag
	relTypes         []models.RelationshipType
	relationships    []models.Relationship
	templates        []models.MilestoneTemplate
	achievements     []models.RelationshipMilestone
	interactions     []models.Interaction
	participants     []models.InteractionParticipant

	insertCalls map[string]int
}

var _ Store = (*MockStore)(nil)

// NewMockStore creates a new empty mock store.
func NewMockStore() *MockStore {
	return &MockStore{insertCalls: make(map[string]int)}
}

// InsertCalls returns how many insert calls the collection has received.
func (m *MockStore) InsertCalls(collection string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.insertCalls[collection]
}

func (m *MockStore) size(collection string) (int64, error) {
	switch collection {
	case CollOrganizations:
		return int64(len(m.organizations)), nil
	case CollActivityGroups:
		return int64(len(m.activityGroups)), nil
	case CollTags:
		return int64(len(m.tags)), nil
	case CollPeople:
		return int64(len(m.people)), nil
	case CollAffiliations:
		return int64(len(m.affiliations)), nil
	case CollPersonActivities:
		return int64(len(m.personActivities)), nil
	case CollPersonTags:
		return int64(len(m.personTags)), nil
	case CollRelationshipTypes:
		return int64(len(m.relTypes)), nil
	case CollRelationships:
		return int64(len(m.relationships)), nil
	case CollMilestoneTemplates:
		return int64(len(m.templates)), nil
	case CollRelationshipMilestones:
		return int64(len(m.achievements)), nil
	case CollInteractions:
		return int64(len(m.interactions)), nil
	case CollInteractionParticipants:
		return int64(len(m.participants)), nil
	default:
		return 0, fmt.Errorf("unknown collection %q", collection)
	}
}

func (m *MockStore) HasAny(_ context.Context, collection string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n, err := m.size(collection)
	return n > 0, err
}

func (m *MockStore) Count(_ context.Context, collection string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.size(collection)
}

func (m *MockStore) ListOrganizations(_ context.Context) ([]models.Organization, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Organization(nil), m.organizations...), nil
}

func (m *MockStore) InsertOrganizations(_ context.Context, orgs []models.Organization) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.insertCalls[CollOrganizations]++
	m.organizations = append(m.organizations, orgs...)
	return nil
}

func (m *MockStore) ListActivityGroups(_ context.Context) ([]models.ActivityGroup, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.ActivityGroup(nil), m.activityGroups...), nil
}

func (m *MockStore) InsertActivityGroups(_ context.Context, groups []models.ActivityGroup) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.insertCalls[CollActivityGroups]++
	m.activityGroups = append(m.activityGroups, groups...)
	return nil
}

func (m *MockStore) ListTags(_ context.Context) ([]models.Tag, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Tag(nil), m.tags...), nil
}

func (m *MockStore) InsertTags(_ context.Context, tags []models.Tag) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.insertCalls[CollTags]++
	m.tags = append(m.tags, tags...)
	return nil
}

func (m *MockStore) ListPeople(_ context.Context) ([]models.Person, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Person(nil), m.people...), nil
}

func (m *MockStore) InsertPeople(_ context.Context, people []models.Person) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.insertCalls[CollPeople]++
	m.people = append(m.people, people...)
	return nil
}

func (m *MockStore) InsertAffiliations(_ context.Context, affs []models.Affiliation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.insertCalls[CollAffiliations]++
	m.affiliations = append(m.affiliations, affs...)
	return nil
}

func (m *MockStore) InsertPersonActivities(_ context.Context, memberships []models.PersonActivity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.insertCalls[CollPersonActivities]++
	m.personActivities = append(m.personActivities, memberships...)
	return nil
}

func (m *MockStore) ListRelationshipTypes(_ context.Context) ([]models.RelationshipType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.RelationshipType(nil), m.relTypes...), nil
}

func (m *MockStore) InsertRelationshipTypes(_ context.Context, types []models.RelationshipType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.insertCalls[CollRelationshipTypes]++
	m.relTypes = append(m.relTypes, types...)
	return nil
}

func (m *MockStore) ListRelationships(_ context.Context) ([]models.Relationship, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Relationship(nil), m.relationships...), nil
}

func (m *MockStore) InsertRelationships(_ context.Context, rels []models.Relationship) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.insertCalls[CollRelationships]++
	m.relationships = append(m.relationships, rels...)
	return nil
}

func (m *MockStore) ListMilestoneTemplates(_ context.Context) ([]models.MilestoneTemplate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.MilestoneTemplate(nil), m.templates...), nil
}

func (m *MockStore) InsertMilestoneTemplates(_ context.Context, templates []models.MilestoneTemplate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.insertCalls[CollMilestoneTemplates]++
	m.templates = append(m.templates, templates...)
	return nil
}

func (m *MockStore) InsertRelationshipMilestones(_ context.Context, achievements []models.RelationshipMilestone) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.insertCalls[CollRelationshipMilestones]++
	m.achievements = append(m.achievements, achievements...)
	return nil
}

func (m *MockStore) ListInteractions(_ context.Context) ([]models.Interaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Interaction(nil), m.interactions...), nil
}

func (m *MockStore) InsertInteractions(_ context.Context, interactions []models.Interaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.insertCalls[CollInteractions]++
	m.interactions = append(m.interactions, interactions...)
	return nil
}

func (m *MockStore) InsertInteractionParticipants(_ context.Context, participants []models.InteractionParticipant) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.insertCalls[CollInteractionParticipants]++
	m.participants = append(m.participants, participants...)
	return nil
}

func (m *MockStore) GetPerson(_ context.Context, id string) (*models.Person, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.people {
		if m.people[i].ID == id {
			p := m.people[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MockStore) GetRelationship(_ context.Context, id string) (*models.Relationship, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.relationships {
		if m.relationships[i].ID == id {
			r := m.relationships[i]
			return &r, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MockStore) GetInteraction(_ context.Context, id string) (*models.Interaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.interactions {
		if m.interactions[i].ID == id {
			in := m.interactions[i]
			return &in, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MockStore) ListMilestonesForRelationship(_ context.Context, relationshipID string) ([]models.RelationshipMilestone, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.RelationshipMilestone
	for i := range m.achievements {
		if m.achievements[i].RelationshipID == relationshipID {
			out = append(out, m.achievements[i])
		}
	}
	return out, nil
}

func (m *MockStore) ListTagsForPerson(_ context.Context, personID string) ([]models.PersonTag, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.PersonTag
	for i := range m.personTags {
		if m.personTags[i].PersonID == personID {
			out = append(out, m.personTags[i])
		}
	}
	return out, nil
}

func (m *MockStore) InsertPersonTags(_ context.Context, personTags []models.PersonTag) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.insertCalls[CollPersonTags]++
	m.personTags = append(m.personTags, personTags...)
	return nil
}

// ListInteractionParticipants returns all participants (test helper).
func (m *MockStore) ListInteractionParticipants() []models.InteractionParticipant {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.InteractionParticipant(nil), m.participants...)
}

// ListAffiliations returns all affiliations (test helper).
func (m *MockStore) ListAffiliations() []models.Affiliation {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Affiliation(nil), m.affiliations...)
}

// ListPersonActivities returns all activity memberships (test helper).
func (m *MockStore) ListPersonActivities() []models.PersonActivity {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.PersonActivity(nil), m.personActivities...)
}

// ListRelationshipMilestones returns all milestone achievements (test helper).
func (m *MockStore) ListRelationshipMilestones() []models.RelationshipMilestone {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.RelationshipMilestone(nil), m.achievements...)
}

func (m *MockStore) Close() error { return nil }
