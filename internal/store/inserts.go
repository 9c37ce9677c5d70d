package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/tarak510605/asana-rl-seed-data/internal/model"
	"github.com/tarak510605/asana-rl-seed-data/internal/timeutil"
)

// Timestamps and dates are bound as formatted strings so that ordering
// comparisons behave identically on every provider. A nil pointer binds
// as NULL.

func nullString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullTimestamp(t *time.Time) any {
	if t == nil {
		return nil
	}
	return timeutil.FormatTimestamp(*t)
}

func nullDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return timeutil.FormatDate(*t)
}

func (s *Store) exec(ctx context.Context, table string, b squirrel.InsertBuilder) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build %s insert: %w", table, err)
	}
	if _, err := s.handle().ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return nil
}

func (s *Store) InsertOrganization(ctx context.Context, org model.Organization) error {
	return s.exec(ctx, "organizations", s.qb.Insert("organizations").
		Columns("organization_id", "name", "domain", "created_at").
		Values(org.ID, org.Name, org.Domain, timeutil.FormatTimestamp(org.CreatedAt)))
}

func (s *Store) InsertTeam(ctx context.Context, team model.Team) error {
	return s.exec(ctx, "teams", s.qb.Insert("teams").
		Columns("team_id", "organization_id", "name", "team_type", "created_at").
		Values(team.ID, team.OrganizationID, team.Name, team.TeamType, timeutil.FormatTimestamp(team.CreatedAt)))
}

func (s *Store) InsertUser(ctx context.Context, user model.User) error {
	return s.exec(ctx, "users", s.qb.Insert("users").
		Columns("user_id", "organization_id", "first_name", "last_name", "email", "role", "created_at").
		Values(user.ID, user.OrganizationID, user.FirstName, user.LastName, user.Email, user.Role, timeutil.FormatTimestamp(user.CreatedAt)))
}

func (s *Store) InsertTeamMembership(ctx context.Context, m model.TeamMembership) error {
	return s.exec(ctx, "team_memberships", s.qb.Insert("team_memberships").
		Columns("membership_id", "user_id", "team_id", "joined_at").
		Values(m.ID, m.UserID, m.TeamID, timeutil.FormatTimestamp(m.JoinedAt)))
}

func (s *Store) InsertProject(ctx context.Context, p model.Project) error {
	return s.exec(ctx, "projects", s.qb.Insert("projects").
		Columns("project_id", "team_id", "name", "project_type", "status", "created_at").
		Values(p.ID, p.TeamID, p.Name, p.ProjectType, p.Status, timeutil.FormatTimestamp(p.CreatedAt)))
}

func (s *Store) InsertSection(ctx context.Context, sec model.Section) error {
	return s.exec(ctx, "sections", s.qb.Insert("sections").
		Columns("section_id", "project_id", "name", "position").
		Values(sec.ID, sec.ProjectID, sec.Name, sec.Position))
}

func (s *Store) InsertTask(ctx context.Context, t model.Task) error {
	return s.exec(ctx, "tasks", s.qb.Insert("tasks").
		Columns("task_id", "project_id", "section_id", "assignee_id", "name", "description",
			"priority", "due_date", "completed", "created_at", "completed_at").
		Values(t.ID, t.ProjectID, t.SectionID, nullString(t.AssigneeID), t.Name, nullString(t.Description),
			t.Priority, nullDate(t.DueDate), t.Completed, timeutil.FormatTimestamp(t.CreatedAt), nullTimestamp(t.CompletedAt)))
}

func (s *Store) InsertSubtask(ctx context.Context, sub model.Subtask) error {
	return s.exec(ctx, "subtasks", s.qb.Insert("subtasks").
		Columns("subtask_id", "parent_task_id", "assignee_id", "name", "completed", "created_at", "completed_at").
		Values(sub.ID, sub.ParentTaskID, nullString(sub.AssigneeID), sub.Name, sub.Completed,
			timeutil.FormatTimestamp(sub.CreatedAt), nullTimestamp(sub.CompletedAt)))
}

func (s *Store) InsertComment(ctx context.Context, c model.Comment) error {
	return s.exec(ctx, "comments", s.qb.Insert("comments").
		Columns("comment_id", "task_id", "author_id", "body", "created_at").
		Values(c.ID, c.TaskID, c.AuthorID, c.Body, timeutil.FormatTimestamp(c.CreatedAt)))
}

func (s *Store) InsertTag(ctx context.Context, tag model.Tag) error {
	return s.exec(ctx, "tags", s.qb.Insert("tags").
		Columns("tag_id", "name", "created_at").
		Values(tag.ID, tag.Name, timeutil.FormatTimestamp(tag.CreatedAt)))
}

func (s *Store) InsertTaskTagAssociation(ctx context.Context, a model.TaskTagAssociation) error {
	return s.exec(ctx, "task_tag_associations", s.qb.Insert("task_tag_associations").
		Columns("task_id", "tag_id", "assigned_at").
		Values(a.TaskID, a.TagID, timeutil.FormatTimestamp(a.AssignedAt)))
}

func (s *Store) InsertCustomFieldDefinition(ctx context.Context, def model.CustomFieldDefinition) error {
	return s.exec(ctx, "custom_field_definitions", s.qb.Insert("custom_field_definitions").
		Columns("field_id", "project_id", "name", "field_type", "created_at").
		Values(def.ID, def.ProjectID, def.Name, def.FieldType, timeutil.FormatTimestamp(def.CreatedAt)))
}

func (s *Store) InsertCustomFieldValue(ctx context.Context, v model.CustomFieldValue) error {
	return s.exec(ctx, "custom_field_values", s.qb.Insert("custom_field_values").
		Columns("value_id", "field_id", "task_id", "value", "updated_at").
		Values(v.ID, v.FieldID, v.TaskID, v.Value, timeutil.FormatTimestamp(v.UpdatedAt)))
}
