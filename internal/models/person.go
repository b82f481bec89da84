package models

import "time"

// EmploymentStatus describes what a graduate is doing now. It is only set on
// people who have already graduated; students carry a PostGradPlan instead.
type EmploymentStatus string

const (
	EmploymentFullTime     EmploymentStatus = "employed_full_time"
	EmploymentPartTime     EmploymentStatus = "employed_part_time"
	EmploymentSelfEmployed EmploymentStatus = "self_employed"
	EmploymentInCollege    EmploymentStatus = "in_college"
	EmploymentSeeking      EmploymentStatus = "seeking"
)

// ValidEmploymentStatuses is the set of all valid employment statuses.
var ValidEmploymentStatuses = []EmploymentStatus{
	EmploymentFullTime,
	EmploymentPartTime,
	EmploymentSelfEmployed,
	EmploymentInCollege,
	EmploymentSeeking,
}

// PostGradPlan describes what a current student intends to do after
// graduation.
type PostGradPlan string

const (
	PlanFourYearCollege  PostGradPlan = "four_year_college"
	PlanCommunityCollege PostGradPlan = "community_college"
	PlanTradeSchool      PostGradPlan = "trade_school"
	PlanMilitary         PostGradPlan = "military"
	PlanWorkforce        PostGradPlan = "workforce"
	PlanUndecided        PostGradPlan = "undecided"
)

// ValidPostGradPlans is the set of all valid post-graduation plans.
var ValidPostGradPlans = []PostGradPlan{
	PlanFourYearCollege,
	PlanCommunityCollege,
	PlanTradeSchool,
	PlanMilitary,
	PlanWorkforce,
	PlanUndecided,
}

// Address is a structured mailing address. The whole value is nullable on a
// person, so it is carried as a pointer.
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// Person is a participant in the mentoring program, either a current student
// or a graduate. EmploymentStatus and PostGradPlan are mutually exclusive:
// exactly one of them is set depending on which side of graduation the person
// is on.
type Person struct {
	ID               string            `json:"id"`
	FirstName        string            `json:"first_name"`
	LastName         string            `json:"last_name"`
	Email            *string           `json:"email,omitempty"`
	Phone            *string           `json:"phone,omitempty"`
	Birthdate        *time.Time        `json:"birthdate,omitempty"`
	GraduationYear   int               `json:"graduation_year"`
	EmploymentStatus *EmploymentStatus `json:"employment_status,omitempty"`
	PostGradPlan     *PostGradPlan     `json:"post_grad_plan,omitempty"`
	College          *string           `json:"college,omitempty"`
	LastCheckInDate  *time.Time        `json:"last_check_in_date,omitempty"`
	Address          *Address          `json:"address,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// FullName returns the person's display name.
func (p Person) FullName() string {
	return p.FirstName + " " + p.LastName
}
