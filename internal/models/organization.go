package models

import "time"

// OrganizationCategory classifies the kind of organization.
type OrganizationCategory string

const (
	OrgCategoryUniversity  OrganizationCategory = "university"
	OrgCategoryNonprofit   OrganizationCategory = "nonprofit"
	OrgCategoryCorporation OrganizationCategory = "corporation"
	OrgCategoryGovernment  OrganizationCategory = "government"
	OrgCategoryK12         OrganizationCategory = "k12"
	OrgCategoryReligious   OrganizationCategory = "religious"
	OrgCategoryCommunity   OrganizationCategory = "community"
)

// ValidOrganizationCategories is the set of all valid organization categories.
var ValidOrganizationCategories = []OrganizationCategory{
	OrgCategoryUniversity,
	OrgCategoryNonprofit,
	OrgCategoryCorporation,
	OrgCategoryGovernment,
	OrgCategoryK12,
	OrgCategoryReligious,
	OrgCategoryCommunity,
}

// IsValid returns true if the category is recognized.
func (c OrganizationCategory) IsValid() bool {
	for i := range ValidOrganizationCategories {
		if c == ValidOrganizationCategories[i] {
			return true
		}
	}
	return false
}

// Organization is an institution people can be affiliated with.
type Organization struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Category    OrganizationCategory `json:"category"`
	Metadata    map[string]any       `json:"metadata,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// Affiliation links a person to an organization.
type Affiliation struct {
	ID             string    `json:"id"`
	PersonID       string    `json:"person_id"`
	OrganizationID string    `json:"organization_id"`
	Role           string    `json:"role"`
	IsPrimary      bool      `json:"is_primary"`
	CreatedAt      time.Time `json:"created_at"`
}
