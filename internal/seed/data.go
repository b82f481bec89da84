package seed

import "github.com/mentorbridge/seeder/internal/models"

// Curated value pools the generators draw from. Names are assembled from a
// place-like token plus a category suffix so a larger target count still
// produces plausible variety.

var placeTokens = []string{
	"Riverside", "Summit", "Oak Hill", "Lakewood", "Harbor Point", "Maplewood",
	"Cedar Grove", "Northgate", "Fairview", "Brookfield", "Eastside",
	"Westbrook", "Silver Creek", "Granite", "Sunrise", "Pinecrest",
	"Hillcrest", "Clearwater", "Redwood", "Meadowbrook",
}

var orgSuffixes = map[models.OrganizationCategory][]string{
	models.OrgCategoryUniversity:  {"University", "College", "Institute of Technology", "State College"},
	models.OrgCategoryNonprofit:   {"Foundation", "Alliance", "Initiative", "Youth Project"},
	models.OrgCategoryCorporation: {"Industries", "Technologies", "Group", "Partners"},
	models.OrgCategoryGovernment:  {"County Office", "City Services", "Public Works", "Youth Bureau"},
	models.OrgCategoryK12:         {"High School", "Academy", "Charter School", "Preparatory School"},
	models.OrgCategoryReligious:   {"Community Church", "Fellowship", "Ministry", "Congregation"},
	models.OrgCategoryCommunity:   {"Community Center", "Neighborhood Association", "Civic Club", "Resource Center"},
}

var orgCategoryWeights = []Weighted[models.OrganizationCategory]{
	{Value: models.OrgCategoryNonprofit, Weight: 25},
	{Value: models.OrgCategoryCorporation, Weight: 20},
	{Value: models.OrgCategoryUniversity, Weight: 15},
	{Value: models.OrgCategoryK12, Weight: 15},
	{Value: models.OrgCategoryCommunity, Weight: 10},
	{Value: models.OrgCategoryGovernment, Weight: 10},
	{Value: models.OrgCategoryReligious, Weight: 5},
}

// commonOrganizations are seeded before the random fill so other generators
// and manual testing always have a few recognizable institutions.
var commonOrganizations = []models.Organization{
	{Name: "Harbor Point High School", Description: "Public high school serving the Harbor Point district", Category: models.OrgCategoryK12},
	{Name: "Riverside State University", Description: "Four-year public university", Category: models.OrgCategoryUniversity},
	{Name: "Brookfield Youth Foundation", Description: "Nonprofit funding youth mentorship programs", Category: models.OrgCategoryNonprofit},
	{Name: "Summit Technologies", Description: "Regional software employer hosting job shadows", Category: models.OrgCategoryCorporation},
	{Name: "Cedar Grove Community Center", Description: "Neighborhood center hosting after-school programs", Category: models.OrgCategoryCommunity},
	{Name: "Lakewood County Youth Bureau", Description: "County agency coordinating youth services", Category: models.OrgCategoryGovernment},
}

var activitySuffixes = map[models.ActivityCategory][]string{
	models.ActivityCategoryAcademic:        {"Honor Society", "Debate Team", "Science Olympiad", "Math Club"},
	models.ActivityCategoryCareer:          {"Career Readiness Program", "Internship Cohort", "Job Shadow Network", "Future Leaders Program"},
	models.ActivityCategoryVolunteer:       {"Volunteer Corps", "Service Club", "Outreach Team", "Helping Hands"},
	models.ActivityCategoryLeadership:      {"Student Council", "Leadership Academy", "Peer Leaders", "Ambassadors"},
	models.ActivityCategoryExtracurricular: {"Robotics Club", "Drama Society", "Chess Club", "Art Collective"},
	models.ActivityCategoryService:         {"Community Service League", "Cleanup Crew", "Food Drive Team", "Tutoring Circle"},
	models.ActivityCategoryCommunity:       {"Neighborhood Network", "Block Association", "Community Builders", "Town Hall Group"},
	models.ActivityCategoryReligious:       {"Youth Group", "Fellowship Circle", "Choir", "Study Group"},
}

var activityCategoryWeights = []Weighted[models.ActivityCategory]{
	{Value: models.ActivityCategoryAcademic, Weight: 20},
	{Value: models.ActivityCategoryCareer, Weight: 20},
	{Value: models.ActivityCategoryExtracurricular, Weight: 15},
	{Value: models.ActivityCategoryVolunteer, Weight: 12},
	{Value: models.ActivityCategoryLeadership, Weight: 12},
	{Value: models.ActivityCategoryService, Weight: 10},
	{Value: models.ActivityCategoryCommunity, Weight: 6},
	{Value: models.ActivityCategoryReligious, Weight: 5},
}

var commonActivityGroups = []models.ActivityGroup{
	{Name: "Harbor Point Robotics Club", Description: "FIRST robotics team", Category: models.ActivityCategoryExtracurricular},
	{Name: "Future Leaders Program", Description: "Year-long leadership development cohort", Category: models.ActivityCategoryLeadership},
	{Name: "Career Readiness Workshop Series", Description: "Monthly career skills workshops", Category: models.ActivityCategoryCareer},
	{Name: "Community Tutoring Circle", Description: "Peer tutoring for local middle schoolers", Category: models.ActivityCategoryService},
	{Name: "National Honor Society", Description: "Academic honor society chapter", Category: models.ActivityCategoryAcademic},
}

var tagNames = map[models.TagCategory][]string{
	models.TagCategoryInterest:    {"STEM", "Arts", "Athletics", "Music", "Entrepreneurship", "Healthcare", "Trades", "Public Service"},
	models.TagCategorySkill:       {"Public Speaking", "Coding", "Writing", "Leadership", "Spanish Fluent", "Graphic Design"},
	models.TagCategoryLocation:    {"North District", "South District", "East Side", "West Side", "Rural Route"},
	models.TagCategoryStatus:      {"Needs Follow-Up", "High Engagement", "New Participant", "Alumni Volunteer"},
	models.TagCategoryProgram:     {"Class of Champions", "Summer Bridge", "Scholars Track", "Workforce Track"},
	models.TagCategoryDemographic: {"First Generation", "Transfer Student", "Military Family", "Multilingual"},
}

var tagCategoryWeights = []Weighted[models.TagCategory]{
	{Value: models.TagCategoryInterest, Weight: 25},
	{Value: models.TagCategorySkill, Weight: 20},
	{Value: models.TagCategoryStatus, Weight: 20},
	{Value: models.TagCategoryProgram, Weight: 15},
	{Value: models.TagCategoryLocation, Weight: 10},
	{Value: models.TagCategoryDemographic, Weight: 10},
}

var tagColors = []string{
	"#2563eb", "#16a34a", "#dc2626", "#9333ea", "#ea580c", "#0891b2",
	"#ca8a04", "#db2777", "#4f46e5", "#059669",
}

var firstNames = []string{
	"James", "Maria", "David", "Aisha", "Michael", "Sofia", "Daniel", "Grace",
	"Carlos", "Emily", "Marcus", "Hannah", "Luis", "Olivia", "Andre", "Naomi",
	"Kevin", "Priya", "Jordan", "Elena", "Tyler", "Jasmine", "Omar", "Rachel",
	"Brandon", "Leila", "Victor", "Chloe", "Isaiah", "Megan", "Diego", "Amara",
	"Ethan", "Rosa", "Devon", "Lily", "Samuel", "Nina", "Anthony", "Faith",
}

var lastNames = []string{
	"Johnson", "Martinez", "Chen", "Williams", "Garcia", "Brown", "Nguyen",
	"Davis", "Rodriguez", "Kim", "Wilson", "Hernandez", "Patel", "Thompson",
	"Lopez", "Anderson", "Jackson", "Torres", "White", "Ramirez", "Harris",
	"Washington", "Flores", "Clark", "Rivera", "Lewis", "Gonzalez", "Walker",
	"Ali", "Young", "Santos", "King", "Okafor", "Scott", "Diaz", "Green",
}

var colleges = []string{
	"Riverside State University", "Lakewood Community College",
	"Summit Technical Institute", "Northgate University",
	"Fairview College", "Granite State University",
	"Westbrook Community College", "Silver Creek College",
}

var cities = []string{
	"Harbor Point", "Riverside", "Lakewood", "Brookfield", "Fairview",
	"Westbrook", "Cedar Grove", "Northgate",
}

var states = []string{"OH", "MI", "IL", "IN", "WI", "PA"}

var streetNames = []string{
	"Main St", "Oak Ave", "Maple Dr", "2nd St", "Park Blvd", "Cedar Ln",
	"Washington Ave", "Lake Rd", "Hillcrest Dr", "Elm St",
}

var employmentWeights = []Weighted[models.EmploymentStatus]{
	{Value: models.EmploymentFullTime, Weight: 40},
	{Value: models.EmploymentInCollege, Weight: 25},
	{Value: models.EmploymentPartTime, Weight: 15},
	{Value: models.EmploymentSeeking, Weight: 12},
	{Value: models.EmploymentSelfEmployed, Weight: 8},
}

var meetingLocations = []string{
	"Harbor Point High School, Room 204", "Cedar Grove Community Center",
	"Riverside Public Library, Study Room B", "Summit Technologies lobby",
	"Brookfield Youth Foundation office",
}

var lunchSpots = []string{
	"Maplewood Diner", "Harbor Point Cafe", "El Jardin", "Lakeside Grill",
	"The Corner Bakery",
}

var eventVenues = []string{
	"Cedar Grove Community Center Hall", "Riverside State University Student Union",
	"Lakewood County Fairgrounds", "Harbor Point High School Gymnasium",
}

var videoPlatforms = []string{"Zoom", "Google Meet", "Microsoft Teams"}

var workshopTopics = []string{
	"Resume Building", "Interview Skills", "Financial Literacy",
	"College Applications", "Networking Basics",
}

var interactionTitles = map[models.InteractionType][]string{
	models.InteractionMeeting:     {"Monthly Check-In", "Goal Review Session", "Progress Meeting", "Planning Session"},
	models.InteractionCall:        {"Quick Phone Check-In", "Catch-Up Call", "Scheduling Call"},
	models.InteractionVideoCall:   {"Virtual Check-In", "Remote Mentoring Session", "Video Catch-Up"},
	models.InteractionEmail:       {"Follow-Up Email", "Resource Share", "Scheduling Thread"},
	models.InteractionText:        {"Text Check-In", "Quick Question", "Reminder Exchange"},
	models.InteractionLunch:       {"Lunch Meetup", "Coffee and Conversation", "Lunch Check-In"},
	models.InteractionWorkshop:    {"Career Workshop", "Skills Workshop", "College Prep Workshop"},
	models.InteractionSocialEvent: {"Program Social", "Volunteer Day", "End-of-Year Celebration"},
}

var interactionDescriptions = []string{
	"Discussed recent progress and upcoming goals.",
	"Reviewed action items from the previous session.",
	"Talked through challenges at school and at home.",
	"Worked on next steps for the post-graduation plan.",
	"Caught up after a busy few weeks.",
}

var milestoneNotes = []string{
	"Completed during a regular check-in.",
	"Went smoothly; both sides well prepared.",
	"Took longer than expected but finished well.",
	"Mentor reported strong engagement.",
}
