package models

import "time"

// InteractionType classifies the kind of interaction.
type InteractionType string

const (
	InteractionMeeting     InteractionType = "meeting"
	InteractionCall        InteractionType = "call"
	InteractionVideoCall   InteractionType = "video_call"
	InteractionEmail       InteractionType = "email"
	InteractionText        InteractionType = "text"
	InteractionLunch       InteractionType = "lunch"
	InteractionWorkshop    InteractionType = "workshop"
	InteractionSocialEvent InteractionType = "social_event"
)

// ValidInteractionTypes is the set of all valid interaction types.
var ValidInteractionTypes = []InteractionType{
	InteractionMeeting,
	InteractionCall,
	InteractionVideoCall,
	InteractionEmail,
	InteractionText,
	InteractionLunch,
	InteractionWorkshop,
	InteractionSocialEvent,
}

// IsValid returns true if the interaction type is recognized.
func (t InteractionType) IsValid() bool {
	for i := range ValidInteractionTypes {
		if t == ValidInteractionTypes[i] {
			return true
		}
	}
	return false
}

// InteractionStatus is the lifecycle state of an interaction.
type InteractionStatus string

const (
	InteractionScheduled InteractionStatus = "scheduled"
	InteractionCompleted InteractionStatus = "completed"
)

// ParticipantRole is the role a person plays in an interaction.
type ParticipantRole string

const (
	RoleMentor      ParticipantRole = "mentor"
	RoleMentee      ParticipantRole = "mentee"
	RoleObserver    ParticipantRole = "observer"
	RoleParticipant ParticipantRole = "participant"
	RoleGuest       ParticipantRole = "guest"
)

// ValidParticipantRoles is the set of all valid participant roles.
var ValidParticipantRoles = []ParticipantRole{
	RoleMentor,
	RoleMentee,
	RoleObserver,
	RoleParticipant,
	RoleGuest,
}

// Interaction is a single touchpoint between people in a relationship. The
// three score fields are only set once Status is completed; scheduled
// interactions carry nil scores.
type Interaction struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	Type             InteractionType   `json:"type"`
	StartTime        time.Time         `json:"start_time"`
	EndTime          *time.Time        `json:"end_time,omitempty"`
	Location         *string           `json:"location,omitempty"`
	IsPlanned        bool              `json:"is_planned"`
	Status           InteractionStatus `json:"status"`
	QualityScore     *int              `json:"quality_score,omitempty"`
	ReciprocityScore *int              `json:"reciprocity_score,omitempty"`
	SentimentScore   *int              `json:"sentiment_score,omitempty"`
	ScheduledAt      *time.Time        `json:"scheduled_at,omitempty"`
	Metadata         map[string]any    `json:"metadata,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// InteractionParticipant records a person's presence in an interaction.
// Attended is nil until the interaction is completed.
type InteractionParticipant struct {
	ID            string          `json:"id"`
	InteractionID string          `json:"interaction_id"`
	PersonID      string          `json:"person_id"`
	Role          ParticipantRole `json:"role"`
	Attended      *bool           `json:"attended,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
