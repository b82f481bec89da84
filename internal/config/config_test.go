package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Environment: "development",
		Seed:        ProfileDefault(),
	}
}

func TestValidate_AcceptsDefaults(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())
}

func TestValidate_RejectsBadEnvironment(t *testing.T) {
	cfg := validConfig()
	cfg.Environment = "prod"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "environment")
}

func TestSeedValidate_RejectsNonPositiveCounts(t *testing.T) {
	cfg := validConfig()
	cfg.Seed.People = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed.people")

	cfg = validConfig()
	cfg.Seed.Organizations = -3
	require.Error(t, cfg.Validate())
}

func TestSeedValidate_RejectsBadDate(t *testing.T) {
	cfg := validConfig()
	cfg.Seed.HistoryStartDate = "08/01/2020"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history_start_date")
}

func TestSeedValidate_RejectsOutOfRangeProbability(t *testing.T) {
	cfg := validConfig()
	cfg.Seed.ActiveMentorshipProbability = 1.2
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "probability")

	cfg = validConfig()
	cfg.Seed.RequiredMilestoneProbability = -0.1
	require.Error(t, cfg.Validate())
}

func TestSeedValidate_RejectsNonPositiveWindows(t *testing.T) {
	cfg := validConfig()
	cfg.Seed.MaxInteractionAgeDays = 0
	require.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Seed.MaxCheckInAgeDays = -1
	require.Error(t, cfg.Validate())
}

func TestStart_ParsesHistoryDate(t *testing.T) {
	cfg := ProfileDefault()
	start := cfg.Start()
	assert.Equal(t, 2020, start.Year())
	assert.Equal(t, 8, int(start.Month()))
	assert.Equal(t, 1, start.Day())
}

func TestProfile_KnownNames(t *testing.T) {
	for _, name := range []string{"default", "development", "special-only"} {
		cfg, err := Profile(name)
		require.NoError(t, err, "profile %s", name)
		assert.NoError(t, cfg.Validate(), "profile %s must validate", name)
	}
}

func TestProfile_UnknownName(t *testing.T) {
	_, err := Profile("huge")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown profile")
}

func TestProfileSpecialOnly_EnablesSpecialCases(t *testing.T) {
	cfg := ProfileSpecialOnly()
	assert.True(t, cfg.SpecialCases)
	assert.Less(t, cfg.People, ProfileDefault().People)
}

func TestLoad_DefaultsValidate(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ProfileDefault().People, cfg.Seed.People)
	assert.Equal(t, "info", cfg.Logging.Level)
}
