package models

import "time"

// TagCategory classifies the kind of tag.
type TagCategory string

const (
	TagCategoryInterest    TagCategory = "interest"
	TagCategorySkill       TagCategory = "skill"
	TagCategoryLocation    TagCategory = "location"
	TagCategoryStatus      TagCategory = "status"
	TagCategoryProgram     TagCategory = "program"
	TagCategoryDemographic TagCategory = "demographic"
)

// ValidTagCategories is the set of all valid tag categories.
var ValidTagCategories = []TagCategory{
	TagCategoryInterest,
	TagCategorySkill,
	TagCategoryLocation,
	TagCategoryStatus,
	TagCategoryProgram,
	TagCategoryDemographic,
}

// IsValid returns true if the category is recognized.
func (c TagCategory) IsValid() bool {
	for i := range ValidTagCategories {
		if c == ValidTagCategories[i] {
			return true
		}
	}
	return false
}

// Tag is a label that can be attached to people.
type Tag struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Category  TagCategory `json:"category"`
	Color     string      `json:"color"`
	CreatedAt time.Time   `json:"created_at"`
}

// PersonTag attaches a tag to a person.
type PersonTag struct {
	ID        string    `json:"id"`
	PersonID  string    `json:"person_id"`
	TagID     string    `json:"tag_id"`
	CreatedAt time.Time `json:"created_at"`
}
