package models

import "time"

// RelationshipTypeCode identifies a kind of mentoring relationship.
type RelationshipTypeCode string

const (
	RelTypeMentorStudent RelationshipTypeCode = "mentor_student"
	RelTypePeerMentor    RelationshipTypeCode = "peer_mentor"
	RelTypeCoach         RelationshipTypeCode = "coach"
	RelTypeSponsor       RelationshipTypeCode = "sponsor"
	RelTypeAlumniStudent RelationshipTypeCode = "alumni_student"
)

// ValidRelationshipTypeCodes is the set of all valid relationship type codes.
var ValidRelationshipTypeCodes = []RelationshipTypeCode{
	RelTypeMentorStudent,
	RelTypePeerMentor,
	RelTypeCoach,
	RelTypeSponsor,
	RelTypeAlumniStudent,
}

// IsValid returns true if the code is recognized.
func (c RelationshipTypeCode) IsValid() bool {
	for i := range ValidRelationshipTypeCodes {
		if c == ValidRelationshipTypeCodes[i] {
			return true
		}
	}
	return false
}

// RelationshipType is a reference record describing a relationship kind.
type RelationshipType struct {
	ID          string               `json:"id"`
	Code        RelationshipTypeCode `json:"code"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	CreatedAt   time.Time            `json:"created_at"`
}

// RelationshipStatus is the lifecycle state of a relationship.
type RelationshipStatus string

const (
	RelStatusActive    RelationshipStatus = "active"
	RelStatusInactive  RelationshipStatus = "inactive"
	RelStatusCompleted RelationshipStatus = "completed"
	RelStatusPending   RelationshipStatus = "pending"
)

// ValidRelationshipStatuses is the set of all valid relationship statuses.
var ValidRelationshipStatuses = []RelationshipStatus{
	RelStatusActive,
	RelStatusInactive,
	RelStatusCompleted,
	RelStatusPending,
}

// Relationship is a directed mentoring link between two people. FromPersonID
// is the mentor side, ToPersonID the mentee side.
type Relationship struct {
	ID                 string             `json:"id"`
	FromPersonID       string             `json:"from_person_id"`
	ToPersonID         string             `json:"to_person_id"`
	RelationshipTypeID string             `json:"relationship_type_id"`
	Status             RelationshipStatus `json:"status"`
	StartDate          time.Time          `json:"start_date"`
	EndDate            *time.Time         `json:"end_date,omitempty"`
	StrengthScore      *int               `json:"strength_score,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}
