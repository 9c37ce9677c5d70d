package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Database Database `yaml:"database" mapstructure:"database"`
	Seed     int64    `yaml:"seed" mapstructure:"seed"`
	Counts   Counts   `yaml:"counts" mapstructure:"counts"`
	Rates    Rates    `yaml:"rates" mapstructure:"rates"`
	Dates    Dates    `yaml:"dates" mapstructure:"dates"`
	Logging  Logging  `yaml:"logging" mapstructure:"logging"`
}

type Database struct {
	Provider string `yaml:"provider" mapstructure:"provider"`
	Path     string `yaml:"path" mapstructure:"path"`
	URLEnv   string `yaml:"url_env" mapstructure:"url_env"`
}

type Counts struct {
	Organizations   int `yaml:"organizations" mapstructure:"organizations"`
	TeamsPerOrg     int `yaml:"teams_per_org" mapstructure:"teams_per_org"`
	UsersPerOrg     int `yaml:"users_per_org" mapstructure:"users_per_org"`
	ProjectsPerTeam int `yaml:"projects_per_team" mapstructure:"projects_per_team"`
	TasksPerProject int `yaml:"tasks_per_project" mapstructure:"tasks_per_project"`
	TagsCount       int `yaml:"tags_count" mapstructure:"tags_count"`
}

type Rates struct {
	TaskUnassigned     float64 `yaml:"task_unassigned" mapstructure:"task_unassigned"`
	TaskHasDueDate     float64 `yaml:"task_has_due_date" mapstructure:"task_has_due_date"`
	TaskCompletion     float64 `yaml:"task_completion" mapstructure:"task_completion"`
	TaskOverdueChance  float64 `yaml:"task_overdue_chance" mapstructure:"task_overdue_chance"`
	SubtaskProbability float64 `yaml:"subtask_probability" mapstructure:"subtask_probability"`
	TaskHasDescription float64 `yaml:"task_has_description" mapstructure:"task_has_description"`
	TaskHasTags        float64 `yaml:"task_has_tags" mapstructure:"task_has_tags"`
	CustomFieldValue   float64 `yaml:"custom_field_value" mapstructure:"custom_field_value"`
}

// Dates configures how far back each entity's creation timestamps land.
// Offsets count backward from now, so the *_min key is the OLDER bound
// (numerically larger) and *_max the newer one.
type Dates struct {
	OrgCreatedDaysAgoMin     int `yaml:"org_created_days_ago_min" mapstructure:"org_created_days_ago_min"`
	OrgCreatedDaysAgoMax     int `yaml:"org_created_days_ago_max" mapstructure:"org_created_days_ago_max"`
	TeamCreatedDaysAgoMin    int `yaml:"team_created_days_ago_min" mapstructure:"team_created_days_ago_min"`
	TeamCreatedDaysAgoMax    int `yaml:"team_created_days_ago_max" mapstructure:"team_created_days_ago_max"`
	UserCreatedDaysAgoMin    int `yaml:"user_created_days_ago_min" mapstructure:"user_created_days_ago_min"`
	UserCreatedDaysAgoMax    int `yaml:"user_created_days_ago_max" mapstructure:"user_created_days_ago_max"`
	ProjectCreatedDaysAgoMin int `yaml:"project_created_days_ago_min" mapstructure:"project_created_days_ago_min"`
	ProjectCreatedDaysAgoMax int `yaml:"project_created_days_ago_max" mapstructure:"project_created_days_ago_max"`
	TaskCreatedDaysAgoMin    int `yaml:"task_created_days_ago_min" mapstructure:"task_created_days_ago_min"`
	TaskCreatedDaysAgoMax    int `yaml:"task_created_days_ago_max" mapstructure:"task_created_days_ago_max"`
}

type Logging struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
	Path   string `yaml:"path" mapstructure:"path"`
}

// Default returns the configuration used when no file overrides anything.
func Default() *Config {
	return &Config{
		Database: Database{
			Provider: "sqlite",
			Path:     "output/asana_seed.db",
			URLEnv:   "DATABASE_URL",
		},
		Counts: Counts{
			Organizations:   1,
			TeamsPerOrg:     8,
			UsersPerOrg:     50,
			ProjectsPerTeam: 4,
			TasksPerProject: 20,
			TagsCount:       15,
		},
		Rates: Rates{
			TaskUnassigned:     0.20,
			TaskHasDueDate:     0.70,
			TaskCompletion:     0.70,
			TaskOverdueChance:  0.20,
			SubtaskProbability: 0.30,
			TaskHasDescription: 0.30,
			TaskHasTags:        0.60,
			CustomFieldValue:   0.70,
		},
		Dates: Dates{
			OrgCreatedDaysAgoMin:     730,
			OrgCreatedDaysAgoMax:     365,
			TeamCreatedDaysAgoMin:    365,
			TeamCreatedDaysAgoMax:    180,
			UserCreatedDaysAgoMin:    365,
			UserCreatedDaysAgoMax:    30,
			ProjectCreatedDaysAgoMin: 300,
			ProjectCreatedDaysAgoMax: 30,
			TaskCreatedDaysAgoMin:    200,
			TaskCreatedDaysAgoMax:    1,
		},
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds the configuration from the global viper state the root
// command initialized (config file, SEEDGEN_* environment, defaults).
func Load() (*Config, error) {
	return FromViper(viper.GetViper())
}

func FromViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("database.provider", d.Database.Provider)
	v.SetDefault("database.path", d.Database.Path)
	v.SetDefault("database.url_env", d.Database.URLEnv)
	v.SetDefault("seed", d.Seed)

	v.SetDefault("counts.organizations", d.Counts.Organizations)
	v.SetDefault("counts.teams_per_org", d.Counts.TeamsPerOrg)
	v.SetDefault("counts.users_per_org", d.Counts.UsersPerOrg)
	v.SetDefault("counts.projects_per_team", d.Counts.ProjectsPerTeam)
	v.SetDefault("counts.tasks_per_project", d.Counts.TasksPerProject)
	v.SetDefault("counts.tags_count", d.Counts.TagsCount)

	v.SetDefault("rates.task_unassigned", d.Rates.TaskUnassigned)
	v.SetDefault("rates.task_has_due_date", d.Rates.TaskHasDueDate)
	v.SetDefault("rates.task_completion", d.Rates.TaskCompletion)
	v.SetDefault("rates.task_overdue_chance", d.Rates.TaskOverdueChance)
	v.SetDefault("rates.subtask_probability", d.Rates.SubtaskProbability)
	v.SetDefault("rates.task_has_description", d.Rates.TaskHasDescription)
	v.SetDefault("rates.task_has_tags", d.Rates.TaskHasTags)
	v.SetDefault("rates.custom_field_value", d.Rates.CustomFieldValue)

	v.SetDefault("dates.org_created_days_ago_min", d.Dates.OrgCreatedDaysAgoMin)
	v.SetDefault("dates.org_created_days_ago_max", d.Dates.OrgCreatedDaysAgoMax)
	v.SetDefault("dates.team_created_days_ago_min", d.Dates.TeamCreatedDaysAgoMin)
	v.SetDefault("dates.team_created_days_ago_max", d.Dates.TeamCreatedDaysAgoMax)
	v.SetDefault("dates.user_created_days_ago_min", d.Dates.UserCreatedDaysAgoMin)
	v.SetDefault("dates.user_created_days_ago_max", d.Dates.UserCreatedDaysAgoMax)
	v.SetDefault("dates.project_created_days_ago_min", d.Dates.ProjectCreatedDaysAgoMin)
	v.SetDefault("dates.project_created_days_ago_max", d.Dates.ProjectCreatedDaysAgoMax)
	v.SetDefault("dates.task_created_days_ago_min", d.Dates.TaskCreatedDaysAgoMin)
	v.SetDefault("dates.task_created_days_ago_max", d.Dates.TaskCreatedDaysAgoMax)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.path", d.Logging.Path)
}

func (c *Config) Validate() error {
	supportedProviders := []string{"sqlite", "sqlite3", "postgresql", "postgres", "mysql"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("database.provider: unsupported provider %q (supported: %v)", c.Database.Provider, supportedProviders)
	}
	if c.IsSQLite() && c.Database.Path == "" {
		return fmt.Errorf("database.path: required for the sqlite provider")
	}

	counts := []struct {
		key   string
		value int
	}{
		{"counts.organizations", c.Counts.Organizations},
		{"counts.teams_per_org", c.Counts.TeamsPerOrg},
		{"counts.users_per_org", c.Counts.UsersPerOrg},
		{"counts.projects_per_team", c.Counts.ProjectsPerTeam},
		{"counts.tasks_per_project", c.Counts.TasksPerProject},
		{"counts.tags_count", c.Counts.TagsCount},
	}
	for _, count := range counts {
		if count.value < 0 {
			return fmt.Errorf("%s: must not be negative, got %d", count.key, count.value)
		}
	}
	if c.Counts.Organizations < 1 {
		return fmt.Errorf("counts.organizations: must be at least 1, got %d", c.Counts.Organizations)
	}

	rates := []struct {
		key   string
		value float64
	}{
		{"rates.task_unassigned", c.Rates.TaskUnassigned},
		{"rates.task_has_due_date", c.Rates.TaskHasDueDate},
		{"rates.task_completion", c.Rates.TaskCompletion},
		{"rates.task_overdue_chance", c.Rates.TaskOverdueChance},
		{"rates.subtask_probability", c.Rates.SubtaskProbability},
		{"rates.task_has_description", c.Rates.TaskHasDescription},
		{"rates.task_has_tags", c.Rates.TaskHasTags},
		{"rates.custom_field_value", c.Rates.CustomFieldValue},
	}
	for _, rate := range rates {
		if rate.value < 0 || rate.value > 1 {
			return fmt.Errorf("%s: must be within [0, 1], got %v", rate.key, rate.value)
		}
	}

	// min is the older bound: a range like min=30/max=90 would ask for
	// timestamps newer than its oldest allowed day.
	ranges := []struct {
		key      string
		min, max int
	}{
		{"dates.org_created_days_ago", c.Dates.OrgCreatedDaysAgoMin, c.Dates.OrgCreatedDaysAgoMax},
		{"dates.team_created_days_ago", c.Dates.TeamCreatedDaysAgoMin, c.Dates.TeamCreatedDaysAgoMax},
		{"dates.user_created_days_ago", c.Dates.UserCreatedDaysAgoMin, c.Dates.UserCreatedDaysAgoMax},
		{"dates.project_created_days_ago", c.Dates.ProjectCreatedDaysAgoMin, c.Dates.ProjectCreatedDaysAgoMax},
		{"dates.task_created_days_ago", c.Dates.TaskCreatedDaysAgoMin, c.Dates.TaskCreatedDaysAgoMax},
	}
	for _, r := range ranges {
		if r.max < 0 {
			return fmt.Errorf("%s_max: must not be negative, got %d", r.key, r.max)
		}
		if r.min < r.max {
			return fmt.Errorf("%s_min: %d is newer than %s_max %d (min is the older bound)", r.key, r.min, r.key, r.max)
		}
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "text", "logfmt", "json":
	default:
		return fmt.Errorf("logging.format: unsupported format %q", c.Logging.Format)
	}

	return nil
}

func (c *Config) IsSQLite() bool {
	return c.Database.Provider == "sqlite" || c.Database.Provider == "sqlite3"
}

// URL resolves the DSN for server providers from the environment
// variable named by database.url_env.
func (d Database) URL() (string, error) {
	dbURL := os.Getenv(d.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", d.URLEnv)
	}
	return dbURL, nil
}
