package seed

import "github.com/google/uuid"

// fixtureNamespace is the UUID namespace all deterministic fixture ids are
// derived under. Changing it is a breaking change for every seeded database:
// re-runs would stop recognizing their own fixtures and duplicate them.
var fixtureNamespace = uuid.MustParse("7a9d4b2e-516c-4e2b-9c3a-d1f08e1b6a42")

// NewID returns a random unique identifier for an ordinary record.
func NewID() string {
	return uuid.NewString()
}

// DeterministicID derives a stable identifier from key. The same key always
// yields the same id, which is how fixture records survive pipeline re-runs
// and how tests can name them without querying first. The output has the
// same textual shape as NewID, so fixture ids are interchangeable with
// ordinary ids in reference fields.
func DeterministicID(key string) string {
	return uuid.NewSHA1(fixtureNamespace, []byte(key)).String()
}
