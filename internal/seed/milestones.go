package seed

import (
	"context"
	"fmt"

	"github.com/mentorbridge/seeder/internal/models"
	"github.com/mentorbridge/seeder/internal/store"
)

// inactiveMilestoneSkipProbability is the chance a non-active relationship
// gets no milestone achievements at all.
const inactiveMilestoneSkipProbability = 0.3

// milestoneTemplateDefs is the curated, globally shared template list. The
// key suffix keeps the deterministic id stable even if a name is reworded.
var milestoneTemplateDefs = []struct {
	Key      string
	Template models.MilestoneTemplate
}{
	{"first-meeting", models.MilestoneTemplate{Name: "First Meeting", Description: "Mentor and mentee met for the first time", IsRequired: true, TypicalYear: 1}},
	{"goal-setting", models.MilestoneTemplate{Name: "Goal Setting Session", Description: "Agreed on goals for the year", IsRequired: true, TypicalYear: 1}},
	{"six-month-checkin", models.MilestoneTemplate{Name: "Six Month Check-In", Description: "Structured review at the six month mark", IsRequired: true, TypicalYear: 1}},
	{"first-anniversary", models.MilestoneTemplate{Name: "First Anniversary", Description: "One full year of mentoring together", IsRequired: true, TypicalYear: 2}},
	{"resume-review", models.MilestoneTemplate{Name: "Resume Review", Description: "Reviewed and polished the mentee's resume", IsRequired: false, TypicalYear: 1}},
	{"job-shadow", models.MilestoneTemplate{Name: "Job Shadow Day", Description: "Mentee shadowed the mentor at work", IsRequired: false, TypicalYear: 1}},
	{"college-application", models.MilestoneTemplate{Name: "College Application Support", Description: "Worked through a college or trade school application", IsRequired: false, TypicalYear: 1}},
	{"career-plan", models.MilestoneTemplate{Name: "Career Plan Drafted", Description: "Drafted a written post-graduation career plan", IsRequired: false, TypicalYear: 2}},
	{"service-project", models.MilestoneTemplate{Name: "Community Service Project", Description: "Completed a service project together", IsRequired: false, TypicalYear: 2}},
	{"graduation-celebration", models.MilestoneTemplate{Name: "Graduation Celebration", Description: "Celebrated the mentee's graduation", IsRequired: false, TypicalYear: 2}},
}

// ensureMilestoneTemplates seeds the shared template catalog once.
func (s *Seeder) ensureMilestoneTemplates(ctx context.Context) ([]models.MilestoneTemplate, error) {
	exists, err := s.store.HasAny(ctx, store.CollMilestoneTemplates)
	if err != nil {
		return nil, err
	}
	if exists {
		return s.store.ListMilestoneTemplates(ctx)
	}

	templates := make([]models.MilestoneTemplate, 0, len(milestoneTemplateDefs))
	for _, def := range milestoneTemplateDefs {
		t := def.Template
		t.ID = DeterministicID("milestone-template-" + def.Key)
		t.CreatedAt = s.now
		templates = append(templates, t)
	}

	err = store.InBatches(templates, store.DefaultBatchSize, func(chunk []models.MilestoneTemplate) error {
		return s.store.InsertMilestoneTemplates(ctx, chunk)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("seeded milestone templates", "count", len(templates))
	return templates, nil
}

func (s *Seeder) seedMilestones(ctx context.Context, rels []models.Relationship) ([]models.MilestoneTemplate, int, error) {
	templates, err := s.ensureMilestoneTemplates(ctx)
	if err != nil {
		return nil, 0, err
	}

	exists, err := s.store.HasAny(ctx, store.CollRelationshipMilestones)
	if err != nil {
		return nil, 0, err
	}
	if exists {
		s.logger.Info("relationship milestones already seeded, skipping")
		return templates, 0, nil
	}

	var required, optional []models.MilestoneTemplate
	for _, t := range templates {
		if t.IsRequired {
			required = append(required, t)
		} else {
			optional = append(optional, t)
		}
	}

	var achievements []models.RelationshipMilestone
	for _, rel := range rels {
		if rel.Status != models.RelStatusActive && s.rnd.Bool(inactiveMilestoneSkipProbability) {
			continue
		}
		achievements = append(achievements, s.buildAchievements(rel, required, optional)...)
	}

	err = store.InBatches(achievements, store.WideBatchSize, func(chunk []models.RelationshipMilestone) error {
		return s.store.InsertRelationshipMilestones(ctx, chunk)
	})
	if err != nil {
		return nil, 0, err
	}

	s.logger.Info("seeded relationship milestones", "count", len(achievements))
	return templates, len(achievements), nil
}

// buildAchievements picks which templates one relationship has achieved:
// required templates first, each at the configured probability, then a
// shuffled walk through the optional ones until the per-relationship target
// is reached. The used set guards against achieving a template twice.
func (s *Seeder) buildAchievements(rel models.Relationship, required, optional []models.MilestoneTemplate) []models.RelationshipMilestone {
	target := s.rnd.Between(1, s.cfg.MilestonesPerRelationship)
	used := make(map[string]struct{}, target)

	start := rel.StartDate
	if start.IsZero() {
		start = s.cfg.Start()
	}

	var out []models.RelationshipMilestone
	achieve := func(t models.MilestoneTemplate) {
		used[t.ID] = struct{}{}
		a := models.RelationshipMilestone{
			ID:             NewID(),
			RelationshipID: rel.ID,
			MilestoneID:    t.ID,
			AchievedDate:   s.rnd.DateBetween(start, s.now),
			Notes:          Pick(s.rnd, milestoneNotes),
			CreatedAt:      s.now,
		}
		if s.rnd.Bool(0.3) {
			url := fmt.Sprintf("https://files.mentorbridge.example/evidence/%s", NewID())
			a.EvidenceURL = &url
		}
		out = append(out, a)
	}

	for _, t := range required {
		if len(used) >= target {
			break
		}
		if _, done := used[t.ID]; done {
			continue
		}
		if s.rnd.Bool(s.cfg.RequiredMilestoneProbability) {
			achieve(t)
		}
	}
	for _, t := range PickN(s.rnd, optional, len(optional)) {
		if len(used) >= target {
			break
		}
		if _, done := used[t.ID]; done {
			continue
		}
		achieve(t)
	}
	return out
}
