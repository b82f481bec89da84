package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mentorbridge/seeder/internal/models"
)

// tables maps collection names to their SQL identifiers. Only names present
// here are ever interpolated into a query.
var tables = map[string]string{
	CollOrganizations:           "organizations",
	CollActivityGroups:          "activity_groups",
	CollTags:                    "tags",
	CollPeople:                  "people",
	CollAffiliations:            "affiliations",
	CollPersonActivities:        "person_activities",
	CollPersonTags:              "person_tags",
	CollRelationshipTypes:       "relationship_types",
	CollRelationships:           "relationships",
	CollMilestoneTemplates:      "milestone_templates",
	CollRelationshipMilestones:  "relationship_milestones",
	CollInteractions:            "interactions",
	CollInteractionParticipants: "interaction_participants",
}

// PostgresStore implements Store against the MentorBridge PostgreSQL
// database using a pgx connection pool.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore connects to the database at dsn and verifies the
// connection with a ping.
func NewPostgresStore(ctx context.Context, dsn string, logger *slog.Logger) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	logger.Info("connected to database", "host", cfg.ConnConfig.Host, "database", cfg.ConnConfig.Database)

	return &PostgresStore{pool: pool, logger: logger}, nil
}

// Ping verifies the database is reachable.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) HasAny(ctx context.Context, collection string) (bool, error) {
	tbl, ok := tables[collection]
	if !ok {
		return false, fmt.Errorf("unknown collection %q", collection)
	}
	var exists bool
	q := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s)", tbl)
	if err := s.pool.QueryRow(ctx, q).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking %s for existing records: %w", collection, err)
	}
	return exists, nil
}

func (s *PostgresStore) Count(ctx context.Context, collection string) (int64, error) {
	tbl, ok := tables[collection]
	if !ok {
		return 0, fmt.Errorf("unknown collection %q", collection)
	}
	var n int64
	q := fmt.Sprintf("SELECT COUNT(*) FROM %s", tbl)
	if err := s.pool.QueryRow(ctx, q).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting %s: %w", collection, err)
	}
	return n, nil
}

// sendBatch flushes queued inserts as one round trip and surfaces the first
// per-row failure with its offset.
func (s *PostgresStore) sendBatch(ctx context.Context, collection string, b *pgx.Batch) error {
	br := s.pool.SendBatch(ctx, b)
	for i := 0; i < b.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			s.logger.Error("batch insert failed", "collection", collection, "row", i, "error", err)
			return fmt.Errorf("inserting into %s (row %d of %d): %w", collection, i, b.Len(), err)
		}
	}
	return br.Close()
}

func (s *PostgresStore) ListOrganizations(ctx context.Context) ([]models.Organization, error) {
	const q = `SELECT id, name, description, category, metadata, created_at, updated_at FROM organizations`
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}
	defer rows.Close()

	var orgs []models.Organization
	for rows.Next() {
		var (
			o        models.Organization
			category string
			metadata []byte
		)
		if err := rows.Scan(&o.ID, &o.Name, &o.Description, &category, &metadata, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning organization: %w", err)
		}
		o.Category = models.OrganizationCategory(category)
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &o.Metadata); err != nil {
				return nil, fmt.Errorf("decoding organization metadata: %w", err)
			}
		}
		orgs = append(orgs, o)
	}
	return orgs, rows.Err()
}

func (s *PostgresStore) InsertOrganizations(ctx context.Context, orgs []models.Organization) error {
	const q = `INSERT INTO organizations (id, name, description, category, metadata, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	b := &pgx.Batch{}
	for i := range orgs {
		o := &orgs[i]
		metadata, err := json.Marshal(o.Metadata)
		if err != nil {
			return fmt.Errorf("encoding organization metadata: %w", err)
		}
		b.Queue(q, o.ID, o.Name, o.Description, string(o.Category), metadata, o.CreatedAt, o.UpdatedAt)
	}
	return s.sendBatch(ctx, CollOrganizations, b)
}

func (s *PostgresStore) ListActivityGroups(ctx context.Context) ([]models.ActivityGroup, error) {
	const q = `SELECT id, name, description, category, created_at, updated_at FROM activity_groups`
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("listing activity groups: %w", err)
	}
	defer rows.Close()

	var groups []models.ActivityGroup
	for rows.Next() {
		var (
			g        models.ActivityGroup
			category string
		)
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &category, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning activity group: %w", err)
		}
		g.Category = models.ActivityCategory(category)
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (s *PostgresStore) InsertActivityGroups(ctx context.Context, groups []models.ActivityGroup) error {
	const q = `INSERT INTO activity_groups (id, name, description, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	b := &pgx.Batch{}
	for i := range groups {
		g := &groups[i]
		b.Queue(q, g.ID, g.Name, g.Description, string(g.Category), g.CreatedAt, g.UpdatedAt)
	}
	return s.sendBatch(ctx, CollActivityGroups, b)
}

func (s *PostgresStore) ListTags(ctx context.Context) ([]models.Tag, error) {
	const q = `SELECT id, name, category, color, created_at FROM tags`
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	defer rows.Close()

	var tags []models.Tag
	for rows.Next() {
		var (
			t        models.Tag
			category string
		)
		if err := rows.Scan(&t.ID, &t.Name, &category, &t.Color, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning tag: %w", err)
		}
		t.Category = models.TagCategory(category)
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

func (s *PostgresStore) InsertTags(ctx context.Context, tags []models.Tag) error {
	const q = `INSERT INTO tags (id, name, category, color, created_at) VALUES ($1, $2, $3, $4, $5)`
	b := &pgx.Batch{}
	for i := range tags {
		t := &tags[i]
		b.Queue(q, t.ID, t.Name, string(t.Category), t.Color, t.CreatedAt)
	}
	return s.sendBatch(ctx, CollTags, b)
}

const personColumns = `id, first_name, last_name, email, phone, birthdate, graduation_year,
	employment_status, post_grad_plan, college, last_check_in_date, address, created_at, updated_at`

func scanPerson(rows pgx.Rows) (models.Person, error) {
	var (
		p          models.Person
		empStatus  *string
		plan       *string
		addr       []byte
	)
	err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.Phone, &p.Birthdate,
		&p.GraduationYear, &empStatus, &plan, &p.College, &p.LastCheckInDate, &addr,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return p, err
	}
	if empStatus != nil {
		es := models.EmploymentStatus(*empStatus)
		p.EmploymentStatus = &es
	}
	if plan != nil {
		pl := models.PostGradPlan(*plan)
		p.PostGradPlan = &pl
	}
	if len(addr) > 0 {
		var a models.Address
		if err := json.Unmarshal(addr, &a); err != nil {
			return p, fmt.Errorf("decoding address: %w", err)
		}
		p.Address = &a
	}
	return p, nil
}

func (s *PostgresStore) ListPeople(ctx context.Context) ([]models.Person, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+personColumns+` FROM people`)
	if err != nil {
		return nil, fmt.Errorf("listing people: %w", err)
	}
	defer rows.Close()

	var people []models.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning person: %w", err)
		}
		people = append(people, p)
	}
	return people, rows.Err()
}

func (s *PostgresStore) InsertPeople(ctx context.Context, people []models.Person) error {
	const q = `INSERT INTO people (id, first_name, last_name, email, phone, birthdate, graduation_year,
		employment_status, post_grad_plan, college, last_check_in_date, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	b := &pgx.Batch{}
	for i := range people {
		p := &people[i]
		var addr []byte
		if p.Address != nil {
			encoded, err := json.Marshal(p.Address)
			if err != nil {
				return fmt.Errorf("encoding address: %w", err)
			}
			addr = encoded
		}
		var empStatus, plan *string
		if p.EmploymentStatus != nil {
			v := string(*p.EmploymentStatus)
			empStatus = &v
		}
		if p.PostGradPlan != nil {
			v := string(*p.PostGradPlan)
			plan = &v
		}
		b.Queue(q, p.ID, p.FirstName, p.LastName, p.Email, p.Phone, p.Birthdate, p.GraduationYear,
			empStatus, plan, p.College, p.LastCheckInDate, addr, p.CreatedAt, p.UpdatedAt)
	}
	return s.sendBatch(ctx, CollPeople, b)
}

func (s *PostgresStore) InsertAffiliations(ctx context.Context, affs []models.Affiliation) error {
	const q = `INSERT INTO affiliations (id, person_id, organization_id, role, is_primary, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	b := &pgx.Batch{}
	for i := range affs {
		a := &affs[i]
		b.Queue(q, a.ID, a.PersonID, a.OrganizationID, a.Role, a.IsPrimary, a.CreatedAt)
	}
	return s.sendBatch(ctx, CollAffiliations, b)
}

func (s *PostgresStore) InsertPersonActivities(ctx context.Context, memberships []models.PersonActivity) error {
	const q = `INSERT INTO person_activities (id, person_id, activity_group_id, created_at)
		VALUES ($1, $2, $3, $4)`
	b := &pgx.Batch{}
	for i := range memberships {
		m := &memberships[i]
		b.Queue(q, m.ID, m.PersonID, m.ActivityGroupID, m.CreatedAt)
	}
	return s.sendBatch(ctx, CollPersonActivities, b)
}

func (s *PostgresStore) ListRelationshipTypes(ctx context.Context) ([]models.RelationshipType, error) {
	const q = `SELECT id, code, name, description, created_at FROM relationship_types`
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("listing relationship types: %w", err)
	}
	defer rows.Close()

	var types []models.RelationshipType
	for rows.Next() {
		var (
			t    models.RelationshipType
			code string
		)
		if err := rows.Scan(&t.ID, &code, &t.Name, &t.Description, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning relationship type: %w", err)
		}
		t.Code = models.RelationshipTypeCode(code)
		types = append(types, t)
	}
	return types, rows.Err()
}

func (s *PostgresStore) InsertRelationshipTypes(ctx context.Context, types []models.RelationshipType) error {
	const q = `INSERT INTO relationship_types (id, code, name, description, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	b := &pgx.Batch{}
	for i := range types {
		t := &types[i]
		b.Queue(q, t.ID, string(t.Code), t.Name, t.Description, t.CreatedAt)
	}
	return s.sendBatch(ctx, CollRelationshipTypes, b)
}

const relationshipColumns = `id, from_person_id, to_person_id, relationship_type_id, status,
	start_date, end_date, strength_score, created_at, updated_at`

func scanRelationship(row pgx.Row) (models.Relationship, error) {
	var (
		r      models.Relationship
		status string
	)
	err := row.Scan(&r.ID, &r.FromPersonID, &r.ToPersonID, &r.RelationshipTypeID, &status,
		&r.StartDate, &r.EndDate, &r.StrengthScore, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return r, err
	}
	r.Status = models.RelationshipStatus(status)
	return r, nil
}

func (s *PostgresStore) ListRelationships(ctx context.Context) ([]models.Relationship, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+relationshipColumns+` FROM relationships`)
	if err != nil {
		return nil, fmt.Errorf("listing relationships: %w", err)
	}
	defer rows.Close()

	var rels []models.Relationship
	for rows.Next() {
		r, err := scanRelationship(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning relationship: %w", err)
		}
		rels = append(rels, r)
	}
	return rels, rows.Err()
}

func (s *PostgresStore) InsertRelationships(ctx context.Context, rels []models.Relationship) error {
	const q = `INSERT INTO relationships (id, from_person_id, to_person_id, relationship_type_id, status,
		start_date, end_date, strength_score, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	b := &pgx.Batch{}
	for i := range rels {
		r := &rels[i]
		b.Queue(q, r.ID, r.FromPersonID, r.ToPersonID, r.RelationshipTypeID, string(r.Status),
			r.StartDate, r.EndDate, r.StrengthScore, r.CreatedAt, r.UpdatedAt)
	}
	return s.sendBatch(ctx, CollRelationships, b)
}

func (s *PostgresStore) ListMilestoneTemplates(ctx context.Context) ([]models.MilestoneTemplate, error) {
	const q = `SELECT id, name, description, is_required, typical_year, created_at FROM milestone_templates`
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("listing milestone templates: %w", err)
	}
	defer rows.Close()

	var templates []models.MilestoneTemplate
	for rows.Next() {
		var t models.MilestoneTemplate
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.IsRequired, &t.TypicalYear, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning milestone template: %w", err)
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (s *PostgresStore) InsertMilestoneTemplates(ctx context.Context, templates []models.MilestoneTemplate) error {
	const q = `INSERT INTO milestone_templates (id, name, description, is_required, typical_year, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	b := &pgx.Batch{}
	for i := range templates {
		t := &templates[i]
		b.Queue(q, t.ID, t.Name, t.Description, t.IsRequired, t.TypicalYear, t.CreatedAt)
	}
	return s.sendBatch(ctx, CollMilestoneTemplates, b)
}

func (s *PostgresStore) InsertRelationshipMilestones(ctx context.Context, achievements []models.RelationshipMilestone) error {
	const q = `INSERT INTO relationship_milestones (id, relationship_id, milestone_id, achieved_date, notes, evidence_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	b := &pgx.Batch{}
	for i := range achievements {
		a := &achievements[i]
		b.Queue(q, a.ID, a.RelationshipID, a.MilestoneID, a.AchievedDate, a.Notes, a.EvidenceURL, a.CreatedAt)
	}
	return s.sendBatch(ctx, CollRelationshipMilestones, b)
}

const interactionColumns = `id, title, description, type, start_time, end_time, location, is_planned,
	status, quality_score, reciprocity_score, sentiment_score, scheduled_at, metadata, created_at, updated_at`

func scanInteraction(row pgx.Row) (models.Interaction, error) {
	var (
		in       models.Interaction
		typ      string
		status   string
		metadata []byte
	)
	err := row.Scan(&in.ID, &in.Title, &in.Description, &typ, &in.StartTime, &in.EndTime,
		&in.Location, &in.IsPlanned, &status, &in.QualityScore, &in.ReciprocityScore,
		&in.SentimentScore, &in.ScheduledAt, &metadata, &in.CreatedAt, &in.UpdatedAt)
	if err != nil {
		return in, err
	}
	in.Type = models.InteractionType(typ)
	in.Status = models.InteractionStatus(status)
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &in.Metadata); err != nil {
			return in, fmt.Errorf("decoding interaction metadata: %w", err)
		}
	}
	return in, nil
}

func (s *PostgresStore) ListInteractions(ctx context.Context) ([]models.Interaction, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+interactionColumns+` FROM interactions`)
	if err != nil {
		return nil, fmt.Errorf("listing interactions: %w", err)
	}
	defer rows.Close()

	var interactions []models.Interaction
	for rows.Next() {
		in, err := scanInteraction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning interaction: %w", err)
		}
		interactions = append(interactions, in)
	}
	return interactions, rows.Err()
}

func (s *PostgresStore) InsertInteractions(ctx context.Context, interactions []models.Interaction) error {
	const q = `INSERT INTO interactions (id, title, description, type, start_time, end_time, location, is_planned,
		status, quality_score, reciprocity_score, sentiment_score, scheduled_at, metadata, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	b := &pgx.Batch{}
	for i := range interactions {
		in := &interactions[i]
		metadata, err := json.Marshal(in.Metadata)
		if err != nil {
			return fmt.Errorf("encoding interaction metadata: %w", err)
		}
		b.Queue(q, in.ID, in.Title, in.Description, string(in.Type), in.StartTime, in.EndTime,
			in.Location, in.IsPlanned, string(in.Status), in.QualityScore, in.ReciprocityScore,
			in.SentimentScore, in.ScheduledAt, metadata, in.CreatedAt, in.UpdatedAt)
	}
	return s.sendBatch(ctx, CollInteractions, b)
}

func (s *PostgresStore) InsertInteractionParticipants(ctx context.Context, participants []models.InteractionParticipant) error {
	const q = `INSERT INTO interaction_participants (id, interaction_id, person_id, role, attended, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	b := &pgx.Batch{}
	for i := range participants {
		p := &participants[i]
		b.Queue(q, p.ID, p.InteractionID, p.PersonID, string(p.Role), p.Attended, p.CreatedAt)
	}
	return s.sendBatch(ctx, CollInteractionParticipants, b)
}

func (s *PostgresStore) GetPerson(ctx context.Context, id string) (*models.Person, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+personColumns+` FROM people WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("fetching person %s: %w", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("fetching person %s: %w", id, err)
		}
		return nil, ErrNotFound
	}
	p, err := scanPerson(rows)
	if err != nil {
		return nil, fmt.Errorf("scanning person %s: %w", id, err)
	}
	return &p, nil
}

func (s *PostgresStore) GetRelationship(ctx context.Context, id string) (*models.Relationship, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+relationshipColumns+` FROM relationships WHERE id = $1`, id)
	r, err := scanRelationship(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching relationship %s: %w", id, err)
	}
	return &r, nil
}

func (s *PostgresStore) GetInteraction(ctx context.Context, id string) (*models.Interaction, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+interactionColumns+` FROM interactions WHERE id = $1`, id)
	in, err := scanInteraction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching interaction %s: %w", id, err)
	}
	return &in, nil
}

func (s *PostgresStore) ListMilestonesForRelationship(ctx context.Context, relationshipID string) ([]models.RelationshipMilestone, error) {
	const q = `SELECT id, relationship_id, milestone_id, achieved_date, notes, evidence_url, created_at
		FROM relationship_milestones WHERE relationship_id = $1`
	rows, err := s.pool.Query(ctx, q, relationshipID)
	if err != nil {
		return nil, fmt.Errorf("listing milestones for relationship %s: %w", relationshipID, err)
	}
	defer rows.Close()

	var achievements []models.RelationshipMilestone
	for rows.Next() {
		var a models.RelationshipMilestone
		if err := rows.Scan(&a.ID, &a.RelationshipID, &a.MilestoneID, &a.AchievedDate, &a.Notes, &a.EvidenceURL, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning relationship milestone: %w", err)
		}
		achievements = append(achievements, a)
	}
	return achievements, rows.Err()
}

func (s *PostgresStore) ListTagsForPerson(ctx context.Context, personID string) ([]models.PersonTag, error) {
	const q = `SELECT id, person_id, tag_id, created_at FROM person_tags WHERE person_id = $1`
	rows, err := s.pool.Query(ctx, q, personID)
	if err != nil {
		return nil, fmt.Errorf("listing tags for person %s: %w", personID, err)
	}
	defer rows.Close()

	var personTags []models.PersonTag
	for rows.Next() {
		var pt models.PersonTag
		if err := rows.Scan(&pt.ID, &pt.PersonID, &pt.TagID, &pt.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning person tag: %w", err)
		}
		personTags = append(personTags, pt)
	}
	return personTags, rows.Err()
}

// InsertPersonTags persists tag assignments (used by the special-case
// generator only, so it is not part of the bulk pipeline).
func (s *PostgresStore) InsertPersonTags(ctx context.Context, personTags []models.PersonTag) error {
	const q = `INSERT INTO person_tags (id, person_id, tag_id, created_at) VALUES ($1, $2, $3, $4)`
	b := &pgx.Batch{}
	for i := range personTags {
		pt := &personTags[i]
		b.Queue(q, pt.ID, pt.PersonID, pt.TagID, pt.CreatedAt)
	}
	return s.sendBatch(ctx, CollPersonTags, b)
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
