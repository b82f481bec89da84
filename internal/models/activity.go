package models

import "time"

// ActivityCategory classifies the kind of activity group.
type ActivityCategory string

const (
	ActivityCategoryAcademic        ActivityCategory = "academic"
	ActivityCategoryCareer          ActivityCategory = "career"
	ActivityCategoryVolunteer       ActivityCategory = "volunteer"
	ActivityCategoryLeadership      ActivityCategory = "leadership"
	ActivityCategoryExtracurricular ActivityCategory = "extracurricular"
	ActivityCategoryService         ActivityCategory = "service"
	ActivityCategoryCommunity       ActivityCategory = "community"
	ActivityCategoryReligious       ActivityCategory = "religious"
)

// ValidActivityCategories is the set of all valid activity group categories.
var ValidActivityCategories = []ActivityCategory{
	ActivityCategoryAcademic,
	ActivityCategoryCareer,
	ActivityCategoryVolunteer,
	ActivityCategoryLeadership,
	ActivityCategoryExtracurricular,
	ActivityCategoryService,
	ActivityCategoryCommunity,
	ActivityCategoryReligious,
}

// IsValid returns true if the category is recognized.
func (c ActivityCategory) IsValid() bool {
	for i := range ValidActivityCategories {
		if c == ValidActivityCategories[i] {
			return true
		}
	}
	return false
}

// ActivityGroup is a club, program, or cohort people participate in.
type ActivityGroup struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Category    ActivityCategory `json:"category"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// PersonActivity links a person to an activity group they belong to.
type PersonActivity struct {
	ID              string    `json:"id"`
	PersonID        string    `json:"person_id"`
	ActivityGroupID string    `json:"activity_group_id"`
	CreatedAt       time.Time `json:"created_at"`
}
