package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/tarak510605/asana-rl-seed-data/internal/config"
	"github.com/tarak510605/asana-rl-seed-data/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(config.Database{
		Provider: "sqlite",
		Path:     filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	if err := s.ApplySchema(context.Background()); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return s
}

// insertChain writes one row into every table, returning the task id.
func insertChain(t *testing.T, s *Store) string {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	assignee := "user-1"
	desc := "quarterly rollup"
	due := base.AddDate(0, 0, 30)
	done := base.Add(48 * time.Hour)

	steps := []struct {
		name string
		err  error
	}{
		{"organizations", s.InsertOrganization(ctx, model.Organization{ID: "org-1", Name: "Acme", Domain: "acme.com", CreatedAt: base})},
		{"teams", s.InsertTeam(ctx, model.Team{ID: "team-1", OrganizationID: "org-1", Name: "Engineering", TeamType: "engineering", CreatedAt: base})},
		{"users", s.InsertUser(ctx, model.User{ID: "user-1", OrganizationID: "org-1", FirstName: "Ada", LastName: "Park", Email: "ada.park@acme.com", Role: "Engineer", CreatedAt: base})},
		{"team_memberships", s.InsertTeamMembership(ctx, model.TeamMembership{ID: "mem-1", UserID: "user-1", TeamID: "team-1", JoinedAt: base.Add(time.Hour)})},
		{"projects", s.InsertProject(ctx, model.Project{ID: "proj-1", TeamID: "team-1", Name: "Q3 Roadmap", ProjectType: "product", Status: "active", CreatedAt: base})},
		{"sections", s.InsertSection(ctx, model.Section{ID: "sec-1", ProjectID: "proj-1", Name: "To Do", Position: 0})},
		{"tasks", s.InsertTask(ctx, model.Task{ID: "task-1", ProjectID: "proj-1", SectionID: "sec-1", AssigneeID: &assignee, Name: "Draft plan", Description: &desc, Priority: "high", DueDate: &due, Completed: true, CreatedAt: base, CompletedAt: &done})},
		{"subtasks", s.InsertSubtask(ctx, model.Subtask{ID: "sub-1", ParentTaskID: "task-1", AssigneeID: nil, Name: "Outline", Completed: false, CreatedAt: base.Add(time.Hour)})},
		{"comments", s.InsertComment(ctx, model.Comment{ID: "com-1", TaskID: "task-1", AuthorID: "user-1", Body: "Looks good", CreatedAt: base.Add(2 * time.Hour)})},
		{"tags", s.InsertTag(ctx, model.Tag{ID: "tag-1", Name: "urgent", CreatedAt: base})},
		{"task_tag_associations", s.InsertTaskTagAssociation(ctx, model.TaskTagAssociation{TaskID: "task-1", TagID: "tag-1", AssignedAt: base.Add(3 * time.Hour)})},
		{"custom_field_definitions", s.InsertCustomFieldDefinition(ctx, model.CustomFieldDefinition{ID: "field-1", ProjectID: "proj-1", Name: "Story Points", FieldType: "number", CreatedAt: base})},
		{"custom_field_values", s.InsertCustomFieldValue(ctx, model.CustomFieldValue{ID: "val-1", FieldID: "field-1", TaskID: "task-1", Value: "5", UpdatedAt: base.Add(4 * time.Hour)})},
	}
	for _, step := range steps {
		if step.err != nil {
			t.Fatalf("insert into %s: %v", step.name, step.err)
		}
	}
	return "task-1"
}

func TestOpenUnsupportedProvider(t *testing.T) {
	if _, err := Open(config.Database{Provider: "oracle"}); err == nil {
		t.Fatal("expected an error for an unsupported provider")
	}
}

func TestInsertEveryTable(t *testing.T) {
	s := newTestStore(t)
	insertChain(t, s)

	counts, err := s.Counts(context.Background())
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	for _, tc := range counts {
		if tc.Rows != 1 {
			t.Errorf("table %s has %d rows, want 1", tc.Table, tc.Rows)
		}
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	s := newTestStore(t)

	err := s.InsertTeam(context.Background(), model.Team{
		ID:             "team-1",
		OrganizationID: "no-such-org",
		Name:           "Ghost",
		TeamType:       "engineering",
		CreatedAt:      time.Now(),
	})
	if err == nil {
		t.Fatal("insert with a dangling organization_id must fail")
	}
}

func TestResetDestroysPreviousRun(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	insertChain(t, s)

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	counts, err := s.Counts(ctx)
	if err != nil {
		t.Fatalf("counts after reset: %v", err)
	}
	for _, tc := range counts {
		if tc.Rows != 0 {
			t.Errorf("table %s still has %d rows after reset", tc.Table, tc.Rows)
		}
	}

	// A second reset against the fresh schema must succeed too.
	if err := s.Reset(ctx); err != nil {
		t.Fatalf("second reset: %v", err)
	}
}

func TestTransactionRollback(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Begin(ctx); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := s.InsertOrganization(ctx, model.Organization{ID: "org-1", Name: "Acme", Domain: "acme.com", CreatedAt: time.Now()}); err != nil {
		t.Fatalf("insert in tx: %v", err)
	}
	s.Rollback()

	n, err := s.CountRows(ctx, "organizations")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("rollback kept %d rows", n)
	}
}

func TestTransactionCommit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Begin(ctx); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := s.Begin(ctx); err == nil {
		t.Error("nested begin must fail")
	}
	if err := s.InsertOrganization(ctx, model.Organization{ID: "org-1", Name: "Acme", Domain: "acme.com", CreatedAt: time.Now()}); err != nil {
		t.Fatalf("insert in tx: %v", err)
	}
	if err := s.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}

	n, err := s.CountRows(ctx, "organizations")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("commit kept %d rows, want 1", n)
	}
}

func TestCountSQLAndRows(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	insertChain(t, s)

	n, err := s.CountSQL(ctx, "SELECT COUNT(*) FROM tasks WHERE completed = ?", true)
	if err != nil {
		t.Fatalf("count completed tasks: %v", err)
	}
	if n != 1 {
		t.Errorf("completed task count = %d, want 1", n)
	}

	result, err := s.Rows(ctx, "tasks")
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(result.Rows) != 1 {
		t.Fatalf("got %d task rows, want 1", len(result.Rows))
	}
	if result.Rows[0]["task_id"] != "task-1" {
		t.Errorf("task_id = %v", result.Rows[0]["task_id"])
	}
	if len(result.Columns) != 11 {
		t.Errorf("tasks returned %d columns, want 11", len(result.Columns))
	}
}
