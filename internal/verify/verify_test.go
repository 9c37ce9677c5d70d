package verify

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/tarak510605/asana-rl-seed-data/internal/config"
	"github.com/tarak510605/asana-rl-seed-data/internal/datagen"
	"github.com/tarak510605/asana-rl-seed-data/internal/store"
)

func generateDataset(t *testing.T) (*store.Store, string) {
	t.Helper()

	cfg := config.Default()
	cfg.Seed = 7
	cfg.Database.Path = filepath.Join(t.TempDir(), "verify.db")
	cfg.Counts = config.Counts{
		Organizations:   1,
		TeamsPerOrg:     2,
		UsersPerOrg:     8,
		ProjectsPerTeam: 2,
		TasksPerProject: 6,
		TagsCount:       8,
	}

	st, err := store.Open(cfg.Database)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	if _, err := datagen.New(st, cfg, nil).Run(context.Background()); err != nil {
		t.Fatalf("failed to generate dataset: %v", err)
	}
	return st, cfg.Database.Path
}

// corrupt applies raw SQL through a separate connection that has
// foreign key enforcement off, so it can break what the audit should
// then catch.
func corrupt(t *testing.T, path, stmt string) {
	t.Helper()

	db, err := sql.Open("sqlite", "file:"+path)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(stmt); err != nil {
		t.Fatalf("failed to corrupt dataset: %v", err)
	}
}

func checkByName(t *testing.T, report *Report, name string) Check {
	t.Helper()
	for _, c := range report.Checks {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("no check named %q", name)
	return Check{}
}

func TestFreshDatasetPasses(t *testing.T) {
	st, _ := generateDataset(t)

	report, err := New(st, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("audit failed to run: %v", err)
	}

	if !report.OK() {
		for _, c := range report.Failed() {
			t.Errorf("check %q reported %d violations", c.Name, c.Violations)
		}
	}
	if got, want := len(report.Checks), len(allChecks()); got != want {
		t.Errorf("Expected %d checks, got %d", want, got)
	}
	if len(report.Counts) != 13 {
		t.Errorf("Expected counts for 13 tables, got %d", len(report.Counts))
	}
	if got, want := len(report.Stats), len(statQueries); got != want {
		t.Errorf("Expected %d stats, got %d", want, got)
	}
	for _, s := range report.Stats {
		if s.Value == "" {
			t.Errorf("Expected a value for stat %q", s.Name)
		}
	}
}

func TestDetectsCompletionMismatch(t *testing.T) {
	st, path := generateDataset(t)
	corrupt(t, path,
		"UPDATE tasks SET completed = 1, completed_at = NULL WHERE task_id IN (SELECT task_id FROM tasks LIMIT 1)")

	report, err := New(st, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("audit failed to run: %v", err)
	}

	if report.OK() {
		t.Fatal("Expected the audit to fail on a corrupted dataset")
	}
	c := checkByName(t, report, "tasks: completed flag without completion timestamp")
	if c.Violations != 1 {
		t.Errorf("Expected 1 violation, got %d", c.Violations)
	}
}

func TestDetectsOrphanedRows(t *testing.T) {
	st, path := generateDataset(t)
	corrupt(t, path,
		"UPDATE teams SET organization_id = 'missing-org' WHERE team_id IN (SELECT team_id FROM teams LIMIT 1)")

	report, err := New(st, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("audit failed to run: %v", err)
	}

	c := checkByName(t, report, "teams: organization_id references a missing row in organizations")
	if c.Violations != 1 {
		t.Errorf("Expected 1 orphaned team, got %d", c.Violations)
	}
}

func TestDetectsTemporalViolation(t *testing.T) {
	st, path := generateDataset(t)
	corrupt(t, path,
		"UPDATE comments SET created_at = '2000-01-01 00:00:00' WHERE comment_id IN (SELECT comment_id FROM comments LIMIT 1)")

	report, err := New(st, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("audit failed to run: %v", err)
	}

	c := checkByName(t, report, "comments: created_at precedes the referenced tasks row")
	if c.Violations != 1 {
		t.Errorf("Expected 1 backdated comment, got %d", c.Violations)
	}
}
