package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// dateLayout is the format for the seed history start date.
const dateLayout = "2006-01-02"

// Config holds all configuration for the seeder.
type Config struct {
	Environment string         `mapstructure:"environment"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logging     LoggingConfig  `mapstructure:"logging"`
	Seed        SeedConfig     `mapstructure:"seed"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SeedConfig controls how much data the pipeline generates and with what
// probabilities. HealthyRelationshipProbability and
// RecentInteractionProbability are recognized but not yet consumed by any
// generator; they are kept so existing config files keep loading.
type SeedConfig struct {
	Organizations               int `mapstructure:"organizations"`
	ActivityGroups              int `mapstructure:"activity_groups"`
	People                      int `mapstructure:"people"`
	TagsTotal                   int `mapstructure:"tags_total"`
	RelationshipsPerPerson      int `mapstructure:"relationships_per_person"`
	InteractionsPerRelationship int `mapstructure:"interactions_per_relationship"`
	MilestonesPerRelationship   int `mapstructure:"milestones_per_relationship"`

	HistoryStartDate      string `mapstructure:"history_start_date"`
	MaxInteractionAgeDays int    `mapstructure:"max_interaction_age_days"`
	MaxCheckInAgeDays     int    `mapstructure:"max_check_in_age_days"`

	RequiredMilestoneProbability   float64 `mapstructure:"required_milestone_probability"`
	ActiveMentorshipProbability    float64 `mapstructure:"active_mentorship_probability"`
	HealthyRelationshipProbability float64 `mapstructure:"healthy_relationship_probability"`
	RecentInteractionProbability   float64 `mapstructure:"recent_interaction_probability"`

	SpecialCases bool `mapstructure:"special_cases"`
}

// Start returns the parsed history start date. Validate guarantees the field
// parses, so the error is discarded here.
func (s SeedConfig) Start() time.Time {
	t, _ := time.Parse(dateLayout, s.HistoryStartDate)
	return t
}

// ProfileDefault is the full-size preset.
func ProfileDefault() SeedConfig {
	return SeedConfig{
		Organizations:               15,
		ActivityGroups:              12,
		People:                      150,
		TagsTotal:                   30,
		RelationshipsPerPerson:      3,
		InteractionsPerRelationship: 8,
		MilestonesPerRelationship:   4,
		HistoryStartDate:            "2020-08-01",
		MaxInteractionAgeDays:       365,
		MaxCheckInAgeDays:           90,
		RequiredMilestoneProbability:   0.8,
		ActiveMentorshipProbability:    0.75,
		HealthyRelationshipProbability: 0.6,
		RecentInteractionProbability:   0.3,
		SpecialCases:                true,
	}
}

// ProfileDevelopment is a smaller preset for local iteration.
func ProfileDevelopment() SeedConfig {
	cfg := ProfileDefault()
	cfg.Organizations = 5
	cfg.ActivityGroups = 6
	cfg.People = 25
	cfg.TagsTotal = 15
	cfg.RelationshipsPerPerson = 2
	cfg.InteractionsPerRelationship = 3
	cfg.MilestonesPerRelationship = 2
	return cfg
}

// ProfileSpecialOnly keeps the base dataset minimal and exists so the
// hand-designed special cases can be layered quickly onto a mostly empty
// database.
func ProfileSpecialOnly() SeedConfig {
	cfg := ProfileDevelopment()
	cfg.Organizations = 2
	cfg.ActivityGroups = 2
	cfg.People = 10
	cfg.TagsTotal = 12
	cfg.SpecialCases = true
	return cfg
}

// Profiles maps preset names to their SeedConfig constructors.
var Profiles = map[string]func() SeedConfig{
	"default":      ProfileDefault,
	"development":  ProfileDevelopment,
	"special-only": ProfileSpecialOnly,
}

// Profile returns the named preset, or an error listing valid names.
func Profile(name string) (SeedConfig, error) {
	f, ok := Profiles[name]
	if !ok {
		return SeedConfig{}, fmt.Errorf("unknown profile %q (valid: default, development, special-only)", name)
	}
	return f(), nil
}

// Load reads configuration from file and environment variables. Seed counts
// default to the full-size profile; a preset chosen on the command line
// replaces them wholesale.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("environment", "development")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	def := ProfileDefault()
	v.SetDefault("seed.organizations", def.Organizations)
	v.SetDefault("seed.activity_groups", def.ActivityGroups)
	v.SetDefault("seed.people", def.People)
	v.SetDefault("seed.tags_total", def.TagsTotal)
	v.SetDefault("seed.relationships_per_person", def.RelationshipsPerPerson)
	v.SetDefault("seed.interactions_per_relationship", def.InteractionsPerRelationship)
	v.SetDefault("seed.milestones_per_relationship", def.MilestonesPerRelationship)
	v.SetDefault("seed.history_start_date", def.HistoryStartDate)
	v.SetDefault("seed.max_interaction_age_days", def.MaxInteractionAgeDays)
	v.SetDefault("seed.max_check_in_age_days", def.MaxCheckInAgeDays)
	v.SetDefault("seed.required_milestone_probability", def.RequiredMilestoneProbability)
	v.SetDefault("seed.active_mentorship_probability", def.ActiveMentorshipProbability)
	v.SetDefault("seed.healthy_relationship_probability", def.HealthyRelationshipProbability)
	v.SetDefault("seed.recent_interaction_probability", def.RecentInteractionProbability)
	v.SetDefault("seed.special_cases", def.SpecialCases)

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(homeDir(), ".mentorseed"))
	v.AddConfigPath(".")

	// Environment variables
	v.SetEnvPrefix("MENTORSEED")
	v.AutomaticEnv()

	_ = v.BindEnv("database.url", "DATABASE_URL")
	_ = v.BindEnv("environment", "MENTORSEED_ENVIRONMENT")
	_ = v.BindEnv("logging.level", "MENTORSEED_LOG_LEVEL")
	_ = v.BindEnv("logging.format", "MENTORSEED_LOG_FORMAT")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is OK — use defaults + env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that required configuration fields are set and consistent.
// Database credentials are checked separately by the commands that need them
// so read-only commands can still run.
func (c *Config) Validate() error {
	switch c.Environment {
	case "development", "staging", "production":
	default:
		return fmt.Errorf("environment must be development, staging, or production, got %q", c.Environment)
	}
	return c.Seed.Validate()
}

// Validate checks seed counts, windows, and probabilities.
func (s *SeedConfig) Validate() error {
	counts := map[string]int{
		"organizations":                 s.Organizations,
		"activity_groups":               s.ActivityGroups,
		"people":                        s.People,
		"tags_total":                    s.TagsTotal,
		"relationships_per_person":      s.RelationshipsPerPerson,
		"interactions_per_relationship": s.InteractionsPerRelationship,
		"milestones_per_relationship":   s.MilestonesPerRelationship,
	}
	for name, n := range counts {
		if n <= 0 {
			return fmt.Errorf("seed.%s must be greater than 0, got %d", name, n)
		}
	}
	if s.MaxInteractionAgeDays <= 0 {
		return fmt.Errorf("seed.max_interaction_age_days must be greater than 0")
	}
	if s.MaxCheckInAgeDays <= 0 {
		return fmt.Errorf("seed.max_check_in_age_days must be greater than 0")
	}
	if _, err := time.Parse(dateLayout, s.HistoryStartDate); err != nil {
		return fmt.Errorf("seed.history_start_date must be YYYY-MM-DD: %w", err)
	}
	probs := map[string]float64{
		"required_milestone_probability":   s.RequiredMilestoneProbability,
		"active_mentorship_probability":    s.ActiveMentorshipProbability,
		"healthy_relationship_probability": s.HealthyRelationshipProbability,
		"recent_interaction_probability":   s.RecentInteractionProbability,
	}
	for name, p := range probs {
		if p < 0 || p > 1 {
			return fmt.Errorf("seed.%s must be between 0 and 1, got %g", name, p)
		}
	}
	return nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
