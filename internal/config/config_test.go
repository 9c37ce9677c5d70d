package config

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func loadYAML(t *testing.T, content string) (*Config, error) {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewBufferString(content)); err != nil {
		t.Fatalf("read config: %v", err)
	}
	return FromViper(v)
}

func TestDefaults(t *testing.T) {
	cfg, err := loadYAML(t, "")
	if err != nil {
		t.Fatalf("load empty config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}

	if cfg.Database.Provider != "sqlite" {
		t.Errorf("default provider = %q, want sqlite", cfg.Database.Provider)
	}
	if cfg.Counts.TeamsPerOrg != 8 || cfg.Counts.UsersPerOrg != 50 {
		t.Errorf("unexpected default counts: %+v", cfg.Counts)
	}
	if cfg.Rates.TaskCompletion != 0.70 {
		t.Errorf("default task_completion = %v, want 0.70", cfg.Rates.TaskCompletion)
	}
	if cfg.Dates.OrgCreatedDaysAgoMin != 730 || cfg.Dates.OrgCreatedDaysAgoMax != 365 {
		t.Errorf("unexpected default org range: %+v", cfg.Dates)
	}
	if cfg.Seed != 0 {
		t.Errorf("default seed = %d, want 0", cfg.Seed)
	}
}

func TestFileOverrides(t *testing.T) {
	cfg, err := loadYAML(t, `
counts:
  organizations: 2
  tasks_per_project: 5
rates:
  task_completion: 1.0
seed: 1234
`)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Counts.Organizations != 2 || cfg.Counts.TasksPerProject != 5 {
		t.Errorf("overrides not applied: %+v", cfg.Counts)
	}
	if cfg.Counts.TeamsPerOrg != 8 {
		t.Errorf("untouched key lost its default: teams_per_org = %d", cfg.Counts.TeamsPerOrg)
	}
	if cfg.Rates.TaskCompletion != 1.0 {
		t.Errorf("task_completion = %v, want 1.0", cfg.Rates.TaskCompletion)
	}
	if cfg.Seed != 1234 {
		t.Errorf("seed = %d, want 1234", cfg.Seed)
	}
}

func TestExplicitZeroSurvives(t *testing.T) {
	cfg, err := loadYAML(t, `
counts:
  teams_per_org: 0
rates:
  subtask_probability: 0
`)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Counts.TeamsPerOrg != 0 {
		t.Errorf("explicit teams_per_org: 0 was replaced with %d", cfg.Counts.TeamsPerOrg)
	}
	if cfg.Rates.SubtaskProbability != 0 {
		t.Errorf("explicit subtask_probability: 0 was replaced with %v", cfg.Rates.SubtaskProbability)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("zero counts must validate: %v", err)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{
			name:    "rate above one",
			mutate:  func(c *Config) { c.Rates.TaskCompletion = 1.2 },
			wantKey: "rates.task_completion",
		},
		{
			name:    "negative rate",
			mutate:  func(c *Config) { c.Rates.TaskHasTags = -0.1 },
			wantKey: "rates.task_has_tags",
		},
		{
			name:    "negative count",
			mutate:  func(c *Config) { c.Counts.TagsCount = -3 },
			wantKey: "counts.tags_count",
		},
		{
			name:    "zero organizations",
			mutate:  func(c *Config) { c.Counts.Organizations = 0 },
			wantKey: "counts.organizations",
		},
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.Database.Provider = "oracle" },
			wantKey: "database.provider",
		},
		{
			name:    "sqlite without path",
			mutate:  func(c *Config) { c.Database.Path = "" },
			wantKey: "database.path",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Logging.Level = "trace" },
			wantKey: "logging.level",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantKey: "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tt.wantKey) {
				t.Errorf("error %q does not name the offending key %q", err, tt.wantKey)
			}
		})
	}
}

// The day-offset ranges count backward from now: min=730/max=365 reads
// "between two years and one year ago". A swapped pair must be rejected,
// not silently reinterpreted.
func TestDateRangeBackwardConvention(t *testing.T) {
	cfg := Default()
	cfg.Dates.OrgCreatedDaysAgoMin = 730
	cfg.Dates.OrgCreatedDaysAgoMax = 365
	if err := cfg.Validate(); err != nil {
		t.Fatalf("min=730/max=365 must be valid: %v", err)
	}

	cfg.Dates.OrgCreatedDaysAgoMin = 365
	cfg.Dates.OrgCreatedDaysAgoMax = 730
	err := cfg.Validate()
	if err == nil {
		t.Fatal("swapped range must be rejected")
	}
	if !strings.Contains(err.Error(), "dates.org_created_days_ago") {
		t.Errorf("error %q does not name the offending range", err)
	}
}

func TestDatabaseURL(t *testing.T) {
	cfg := Default()
	cfg.Database.URLEnv = "SEEDGEN_TEST_DB_URL"

	if _, err := cfg.Database.URL(); err == nil {
		t.Error("expected an error when the env var is unset")
	}

	t.Setenv("SEEDGEN_TEST_DB_URL", "postgres://localhost:5432/seed")
	url, err := cfg.Database.URL()
	if err != nil {
		t.Fatalf("Database.URL: %v", err)
	}
	if url != "postgres://localhost:5432/seed" {
		t.Errorf("url = %q", url)
	}
}
