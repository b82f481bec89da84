package models

import "time"

// MilestoneTemplate is a globally shared definition of a mentoring milestone.
// TypicalYear is the program year (1-based) in which the milestone usually
// happens.
type MilestoneTemplate struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsRequired  bool      `json:"is_required"`
	TypicalYear int       `json:"typical_year"`
	CreatedAt   time.Time `json:"created_at"`
}

// RelationshipMilestone records that a relationship achieved a milestone.
type RelationshipMilestone struct {
	ID             string    `json:"id"`
	RelationshipID string    `json:"relationship_id"`
	MilestoneID    string    `json:"milestone_id"`
	AchievedDate   time.Time `json:"achieved_date"`
	Notes          string    `json:"notes"`
	EvidenceURL    *string   `json:"evidence_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
