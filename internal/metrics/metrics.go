// Package metrics provides application-level counters using stdlib expvar.
// Counters are automatically exported on the /debug/vars HTTP endpoint
// when net/http/pprof is imported in the main binary.
package metrics

import "expvar"

// Per-family seed counters, accumulated across pipeline runs in a process.
var (
	OrganizationsSeeded = expvar.NewInt("mentorseed_organizations_seeded_total")
	PeopleSeeded        = expvar.NewInt("mentorseed_people_seeded_total")
	RelationshipsSeeded = expvar.NewInt("mentorseed_relationships_seeded_total")
	MilestonesSeeded    = expvar.NewInt("mentorseed_milestones_seeded_total")
	InteractionsSeeded  = expvar.NewInt("mentorseed_interactions_seeded_total")
	SpecialCaseRecords  = expvar.NewInt("mentorseed_special_case_records_total")
)
