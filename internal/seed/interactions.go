package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mentorbridge/seeder/internal/models"
	"github.com/mentorbridge/seeder/internal/store"
)

// timeframe classifies when an interaction happens relative to now. It
// drives the date window, the status, and the attendance rules.
type timeframe int

const (
	timeframePast timeframe = iota
	timeframeRecent
	timeframeFuture
)

var timeframeWeights = []Weighted[timeframe]{
	{Value: timeframePast, Weight: 70},
	{Value: timeframeRecent, Weight: 20},
	{Value: timeframeFuture, Weight: 10},
}

var interactionTypeWeights = []Weighted[models.InteractionType]{
	{Value: models.InteractionMeeting, Weight: 30},
	{Value: models.InteractionCall, Weight: 25},
	{Value: models.InteractionVideoCall, Weight: 15},
	{Value: models.InteractionEmail, Weight: 10},
	{Value: models.InteractionText, Weight: 5},
	{Value: models.InteractionLunch, Weight: 5},
	{Value: models.InteractionWorkshop, Weight: 5},
	{Value: models.InteractionSocialEvent, Weight: 5},
}

// Score sub-ranges for completed interactions.
const (
	qualityMin, qualityMax         = 50, 100
	reciprocityMin, reciprocityMax = 40, 100
	sentimentMin, sentimentMax     = 30, 100
)

const (
	relationshipSkipProbability = 0.2
	plannedProbability          = 0.6
	recentWindowDays            = 7
	futureWindowDays            = 30
	extraMeetingProbability     = 0.2
	pastAttendanceProbability   = 0.9
	extraAttendanceProbability  = 0.8
)

func (s *Seeder) seedInteractions(ctx context.Context, people []models.Person, rels []models.Relationship) (int, int, error) {
	exists, err := s.store.HasAny(ctx, store.CollInteractions)
	if err != nil {
		return 0, 0, err
	}
	if exists {
		s.logger.Info("interactions already seeded, skipping")
		return 0, 0, nil
	}

	var interactions []models.Interaction
	var participants []models.InteractionParticipant

	for _, rel := range rels {
		if s.rnd.Bool(relationshipSkipProbability) {
			continue
		}
		var count int
		if rel.Status == models.RelStatusActive {
			count = s.rnd.Between(1, s.cfg.InteractionsPerRelationship)
		} else {
			count = s.rnd.Between(0, max(1, s.cfg.InteractionsPerRelationship/2))
		}
		for i := 0; i < count; i++ {
			in, tf := s.buildInteraction(rel)
			interactions = append(interactions, in)
			participants = append(participants, s.buildParticipants(in, tf, rel, people)...)
		}
	}

	err = store.InBatches(interactions, store.DefaultBatchSize, func(chunk []models.Interaction) error {
		return s.store.InsertInteractions(ctx, chunk)
	})
	if err != nil {
		return 0, 0, err
	}
	err = store.InBatches(participants, store.WideBatchSize, func(chunk []models.InteractionParticipant) error {
		return s.store.InsertInteractionParticipants(ctx, chunk)
	})
	if err != nil {
		return 0, 0, err
	}

	s.logger.Info("seeded interactions", "interactions", len(interactions), "participants", len(participants))
	return len(interactions), len(participants), nil
}

func (s *Seeder) buildInteraction(rel models.Relationship) (models.Interaction, timeframe) {
	tf := PickWeighted(s.rnd, timeframeWeights)
	typ := PickWeighted(s.rnd, interactionTypeWeights)

	var (
		start   time.Time
		status  models.InteractionStatus
		planned bool
	)
	switch tf {
	case timeframePast:
		earliest := s.now.AddDate(0, 0, -s.cfg.MaxInteractionAgeDays)
		if rel.StartDate.After(earliest) {
			earliest = rel.StartDate
		}
		latest := s.now.AddDate(0, 0, -recentWindowDays-1)
		if latest.Before(earliest) {
			latest = earliest
		}
		start = s.rnd.DateBetween(earliest, latest)
		status = models.InteractionCompleted
		planned = s.rnd.Bool(plannedProbability)
	case timeframeRecent:
		start = s.rnd.DateBetween(s.now.AddDate(0, 0, -recentWindowDays), s.now)
		status = models.InteractionCompleted
		planned = s.rnd.Bool(plannedProbability)
	case timeframeFuture:
		start = s.rnd.DateBetween(s.now, s.now.AddDate(0, 0, futureWindowDays))
		status = models.InteractionScheduled
		planned = true
	}

	in := models.Interaction{
		ID:        NewID(),
		Title:     Pick(s.rnd, interactionTitles[typ]),
		Type:      typ,
		StartTime: start,
		IsPlanned: planned,
		Status:    status,
		CreatedAt: s.now,
		UpdatedAt: s.now,
	}
	if s.rnd.Bool(0.5) {
		in.Description = Pick(s.rnd, interactionDescriptions)
	}

	s.applyTypeDetails(&in)

	// scheduled_at: already-known future interactions are scheduled now;
	// planned past ones were scheduled some days ahead of the date;
	// unplanned ones were never on a calendar.
	switch {
	case tf == timeframeFuture:
		at := s.now
		in.ScheduledAt = &at
	case planned:
		at := start.AddDate(0, 0, -s.rnd.Between(1, 14))
		in.ScheduledAt = &at
	}

	if status == models.InteractionCompleted {
		quality := s.rnd.Between(qualityMin, qualityMax)
		reciprocity := s.rnd.Between(reciprocityMin, reciprocityMax)
		sentiment := s.rnd.Between(sentimentMin, sentimentMax)
		in.QualityScore = &quality
		in.ReciprocityScore = &reciprocity
		in.SentimentScore = &sentiment
	}

	return in, tf
}

// applyTypeDetails derives end time, location, and metadata appropriate to
// the interaction type. Message-style types (email, text) have no duration
// or location; virtual calls get a platform and join link instead of a
// physical location.
func (s *Seeder) applyTypeDetails(in *models.Interaction) {
	setEnd := func(minMinutes, maxMinutes int) {
		end := in.StartTime.Add(time.Duration(s.rnd.Between(minMinutes, maxMinutes)) * time.Minute)
		in.EndTime = &end
	}
	setLocation := func(pool []string) {
		loc := Pick(s.rnd, pool)
		in.Location = &loc
	}

	switch in.Type {
	case models.InteractionMeeting:
		setEnd(30, 90)
		setLocation(meetingLocations)
	case models.InteractionCall:
		setEnd(10, 45)
	case models.InteractionVideoCall:
		setEnd(20, 60)
		platform := Pick(s.rnd, videoPlatforms)
		in.Metadata = map[string]any{
			"platform": platform,
			"link":     fmt.Sprintf("https://meet.mentorbridge.example/%s", strings.ToLower(NewID()[:8])),
		}
	case models.InteractionLunch:
		setEnd(45, 90)
		setLocation(lunchSpots)
	case models.InteractionWorkshop:
		setEnd(60, 180)
		setLocation(eventVenues)
		in.Metadata = map[string]any{"topic": Pick(s.rnd, workshopTopics)}
	case models.InteractionSocialEvent:
		setEnd(60, 180)
		setLocation(eventVenues)
	case models.InteractionEmail, models.InteractionText:
		// No duration or location for message threads.
	}
}

// buildParticipants creates the relationship's two core participants and,
// for group-style interactions, a few extras drawn from the wider pool.
func (s *Seeder) buildParticipants(in models.Interaction, tf timeframe, rel models.Relationship, people []models.Person) []models.InteractionParticipant {
	completed := in.Status == models.InteractionCompleted

	var mentorAttended, menteeAttended *bool
	if completed {
		t := true
		mentorAttended = &t
		attended := tf != timeframePast || s.rnd.Bool(pastAttendanceProbability)
		menteeAttended = &attended
	}

	out := []models.InteractionParticipant{
		{
			ID:            NewID(),
			InteractionID: in.ID,
			PersonID:      rel.FromPersonID,
			Role:          models.RoleMentor,
			Attended:      mentorAttended,
			CreatedAt:     s.now,
		},
		{
			ID:            NewID(),
			InteractionID: in.ID,
			PersonID:      rel.ToPersonID,
			Role:          models.RoleMentee,
			Attended:      menteeAttended,
			CreatedAt:     s.now,
		},
	}

	group := in.Type == models.InteractionWorkshop || in.Type == models.InteractionSocialEvent ||
		(in.Type == models.InteractionMeeting && s.rnd.Bool(extraMeetingProbability))
	if !group {
		return out
	}

	pool := make([]models.Person, 0, len(people))
	for _, p := range people {
		if p.ID != rel.FromPersonID && p.ID != rel.ToPersonID {
			pool = append(pool, p)
		}
	}
	for _, p := range PickN(s.rnd, pool, s.rnd.Between(1, 3)) {
		var attended *bool
		if completed {
			a := s.rnd.Bool(extraAttendanceProbability)
			attended = &a
		}
		out = append(out, models.InteractionParticipant{
			ID:            NewID(),
			InteractionID: in.ID,
			PersonID:      p.ID,
			Role:          Pick(s.rnd, []models.ParticipantRole{models.RoleObserver, models.RoleParticipant, models.RoleGuest}),
			Attended:      attended,
			CreatedAt:     s.now,
		})
	}
	return out
}
