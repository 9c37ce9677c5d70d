// Package verify audits a generated dataset using nothing but SQL over
// the stored rows: referential integrity, temporal ordering, completion
// consistency, identifier uniqueness and structural shape, plus a few
// informational distribution figures. It deliberately re-derives what
// the generator promises, so a dataset produced by any tool can be
// checked.
package verify

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/tarak510605/asana-rl-seed-data/internal/schema"
	"github.com/tarak510605/asana-rl-seed-data/internal/store"
)

// Check is one audited property with the number of rows violating it.
type Check struct {
	Name       string
	Violations int
}

// Stat is one informational figure about the dataset's shape. Stats
// never fail the audit.
type Stat struct {
	Name  string
	Value string
}

// Report is the outcome of a full audit.
type Report struct {
	Checks []Check
	Stats  []Stat
	Counts []store.TableCount
}

// OK reports whether every check passed.
func (r *Report) OK() bool {
	return len(r.Failed()) == 0
}

// Failed returns the checks with at least one violating row.
func (r *Report) Failed() []Check {
	var failed []Check
	for _, c := range r.Checks {
		if c.Violations > 0 {
			failed = append(failed, c)
		}
	}
	return failed
}

type Verifier struct {
	store  *store.Store
	logger *log.Logger
}

func New(st *store.Store, logger *log.Logger) *Verifier {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Verifier{store: st, logger: logger}
}

// Run executes every check and returns the collected report. A query
// failure aborts the audit; a failing check does not.
func (v *Verifier) Run(ctx context.Context) (*Report, error) {
	report := &Report{}
	for _, c := range allChecks() {
		n, err := v.store.CountSQL(ctx, c.query)
		if err != nil {
			return nil, fmt.Errorf("check %q failed to run: %w", c.name, err)
		}
		if n > 0 {
			v.logger.Warn("integrity check failed", "check", c.name, "violations", n)
		} else {
			v.logger.Debug("integrity check passed", "check", c.name)
		}
		report.Checks = append(report.Checks, Check{Name: c.name, Violations: n})
	}

	stats, err := v.collectStats(ctx)
	if err != nil {
		return nil, err
	}
	report.Stats = stats

	counts, err := v.store.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count rows: %w", err)
	}
	report.Counts = counts

	if report.OK() {
		v.logger.Info("dataset passed verification", "checks", len(report.Checks))
	} else {
		v.logger.Error("dataset failed verification", "failed", len(report.Failed()), "checks", len(report.Checks))
	}
	return report, nil
}

// collectStats computes the informational figures. Shares are relative
// to the task count; CURRENT_DATE keeps the overdue query portable.
func (v *Verifier) collectStats(ctx context.Context) ([]Stat, error) {
	total, err := v.store.CountRows(ctx, "tasks")
	if err != nil {
		return nil, err
	}

	stats := make([]Stat, 0, len(statQueries))
	for _, q := range statQueries {
		n, err := v.store.CountSQL(ctx, q.query)
		if err != nil {
			return nil, fmt.Errorf("stat %q failed to run: %w", q.name, err)
		}
		value := strconv.Itoa(n)
		if q.share {
			value = "0.0%"
			if total > 0 {
				value = fmt.Sprintf("%.1f%%", float64(n)/float64(total)*100)
			}
		}
		stats = append(stats, Stat{Name: q.name, Value: value})
	}
	return stats, nil
}

var statQueries = []struct {
	name  string
	query string
	share bool
}{
	{"tasks unassigned", "SELECT COUNT(*) FROM tasks WHERE assignee_id IS NULL", true},
	{"tasks completed", "SELECT COUNT(*) FROM tasks WHERE completed", true},
	{"tasks with subtasks", "SELECT COUNT(DISTINCT parent_task_id) FROM subtasks", true},
	{"tasks with tags", "SELECT COUNT(DISTINCT task_id) FROM task_tag_associations", true},
	{"open tasks overdue", "SELECT COUNT(*) FROM tasks WHERE NOT completed AND due_date IS NOT NULL AND due_date < CURRENT_DATE", false},
}

type check struct {
	name  string
	query string
}

// primaryKeys maps each table to its key column. task_tag_associations
// is keyed by a composite and never referenced, so it is absent.
var primaryKeys = map[string]string{
	"organizations":            "organization_id",
	"teams":                    "team_id",
	"users":                    "user_id",
	"team_memberships":         "membership_id",
	"projects":                 "project_id",
	"sections":                 "section_id",
	"tasks":                    "task_id",
	"subtasks":                 "subtask_id",
	"comments":                 "comment_id",
	"tags":                     "tag_id",
	"custom_field_definitions": "field_id",
	"custom_field_values":      "value_id",
}

// fkEdge is a foreign key column whose target row must exist.
type fkEdge struct {
	child    string
	column   string
	parent   string
	nullable bool
}

var fkEdges = []fkEdge{
	{"teams", "organization_id", "organizations", false},
	{"users", "organization_id", "organizations", false},
	{"team_memberships", "user_id", "users", false},
	{"team_memberships", "team_id", "teams", false},
	{"projects", "team_id", "teams", false},
	{"sections", "project_id", "projects", false},
	{"tasks", "project_id", "projects", false},
	{"tasks", "section_id", "sections", false},
	{"tasks", "assignee_id", "users", true},
	{"subtasks", "parent_task_id", "tasks", false},
	{"subtasks", "assignee_id", "users", true},
	{"comments", "task_id", "tasks", false},
	{"comments", "author_id", "users", false},
	{"task_tag_associations", "task_id", "tasks", false},
	{"task_tag_associations", "tag_id", "tags", false},
	{"custom_field_definitions", "project_id", "projects", false},
	{"custom_field_values", "field_id", "custom_field_definitions", false},
	{"custom_field_values", "task_id", "tasks", false},
}

// temporalEdge requires the child's timestamp not to precede the
// referenced parent's created_at.
type temporalEdge struct {
	child     string
	timestamp string
	join      string
	parent    string
}

var temporalEdges = []temporalEdge{
	{"teams", "created_at", "organization_id", "organizations"},
	{"users", "created_at", "organization_id", "organizations"},
	{"team_memberships", "joined_at", "user_id", "users"},
	{"team_memberships", "joined_at", "team_id", "teams"},
	{"projects", "created_at", "team_id", "teams"},
	{"tasks", "created_at", "project_id", "projects"},
	{"subtasks", "created_at", "parent_task_id", "tasks"},
	{"comments", "created_at", "task_id", "tasks"},
	{"task_tag_associations", "assigned_at", "task_id", "tasks"},
	{"task_tag_associations", "assigned_at", "tag_id", "tags"},
	{"custom_field_definitions", "created_at", "project_id", "projects"},
	{"custom_field_values", "updated_at", "task_id", "tasks"},
	{"custom_field_values", "updated_at", "field_id", "custom_field_definitions"},
}

// The boolean column is used bare (completed / NOT completed) so the
// same query runs on sqlite integers, mysql tinyints and postgres
// booleans alike.
var structuralChecks = []check{
	{
		"tasks: completed flag without completion timestamp",
		"SELECT COUNT(*) FROM tasks WHERE completed AND completed_at IS NULL",
	},
	{
		"tasks: completion timestamp without completed flag",
		"SELECT COUNT(*) FROM tasks WHERE NOT completed AND completed_at IS NOT NULL",
	},
	{
		"tasks: completed on or before creation",
		"SELECT COUNT(*) FROM tasks WHERE completed_at IS NOT NULL AND completed_at <= created_at",
	},
	{
		"subtasks: completed flag without completion timestamp",
		"SELECT COUNT(*) FROM subtasks WHERE completed AND completed_at IS NULL",
	},
	{
		"subtasks: completion timestamp without completed flag",
		"SELECT COUNT(*) FROM subtasks WHERE NOT completed AND completed_at IS NOT NULL",
	},
	{
		"subtasks: completed on or before creation",
		"SELECT COUNT(*) FROM subtasks WHERE completed_at IS NOT NULL AND completed_at <= created_at",
	},
	{
		"sections: positions not contiguous from zero",
		`SELECT COUNT(*) FROM (
			SELECT project_id, COUNT(*) AS n, MIN(position) AS mn, MAX(position) AS mx, COUNT(DISTINCT position) AS dp
			FROM sections GROUP BY project_id
		) shapes WHERE mn <> 0 OR mx <> n - 1 OR dp <> n`,
	},
	{
		"subtasks: checklist size outside 2-5",
		`SELECT COUNT(*) FROM (
			SELECT parent_task_id, COUNT(*) AS n FROM subtasks GROUP BY parent_task_id
		) sizes WHERE n < 2 OR n > 5`,
	},
	{
		"comments: duplicate timestamps within a thread",
		"SELECT COUNT(*) FROM comments a JOIN comments b ON a.task_id = b.task_id AND a.comment_id <> b.comment_id AND a.created_at = b.created_at",
	},
	{
		"team_memberships: duplicate user/team pair",
		`SELECT COUNT(*) FROM (
			SELECT user_id, team_id, COUNT(*) AS n FROM team_memberships GROUP BY user_id, team_id HAVING COUNT(*) > 1
		) dupes`,
	},
	{
		"task_tag_associations: duplicate task/tag pair",
		`SELECT COUNT(*) FROM (
			SELECT task_id, tag_id, COUNT(*) AS n FROM task_tag_associations GROUP BY task_id, tag_id HAVING COUNT(*) > 1
		) dupes`,
	},
	{
		"custom_field_values: duplicate field/task pair",
		`SELECT COUNT(*) FROM (
			SELECT field_id, task_id, COUNT(*) AS n FROM custom_field_values GROUP BY field_id, task_id HAVING COUNT(*) > 1
		) dupes`,
	},
	{
		"tags: duplicate names",
		`SELECT COUNT(*) FROM (
			SELECT name, COUNT(*) AS n FROM tags GROUP BY name HAVING COUNT(*) > 1
		) dupes`,
	},
	{
		"tasks: assignee outside the project's team",
		`SELECT COUNT(*) FROM tasks k
		 JOIN projects p ON k.project_id = p.project_id
		 WHERE k.assignee_id IS NOT NULL AND NOT EXISTS (
			SELECT 1 FROM team_memberships m WHERE m.user_id = k.assignee_id AND m.team_id = p.team_id
		 )`,
	},
	{
		"subtasks: assignee outside the project's team",
		`SELECT COUNT(*) FROM subtasks s
		 JOIN tasks k ON s.parent_task_id = k.task_id
		 JOIN projects p ON k.project_id = p.project_id
		 WHERE s.assignee_id IS NOT NULL AND NOT EXISTS (
			SELECT 1 FROM team_memberships m WHERE m.user_id = s.assignee_id AND m.team_id = p.team_id
		 )`,
	},
	{
		"comments: author outside the project's team",
		`SELECT COUNT(*) FROM comments c
		 JOIN tasks k ON c.task_id = k.task_id
		 JOIN projects p ON k.project_id = p.project_id
		 WHERE NOT EXISTS (
			SELECT 1 FROM team_memberships m WHERE m.user_id = c.author_id AND m.team_id = p.team_id
		 )`,
	},
	{
		"tasks: section belongs to a different project",
		"SELECT COUNT(*) FROM tasks k JOIN sections s ON k.section_id = s.section_id WHERE s.project_id <> k.project_id",
	},
}

func allChecks() []check {
	var checks []check
	for _, e := range fkEdges {
		cond := fmt.Sprintf("NOT EXISTS (SELECT 1 FROM %s p WHERE p.%s = c.%s)", e.parent, primaryKeys[e.parent], e.column)
		if e.nullable {
			cond = fmt.Sprintf("c.%s IS NOT NULL AND %s", e.column, cond)
		}
		checks = append(checks, check{
			name:  fmt.Sprintf("%s: %s references a missing row in %s", e.child, e.column, e.parent),
			query: fmt.Sprintf("SELECT COUNT(*) FROM %s c WHERE %s", e.child, cond),
		})
	}
	for _, e := range temporalEdges {
		checks = append(checks, check{
			name: fmt.Sprintf("%s: %s precedes the referenced %s row", e.child, e.timestamp, e.parent),
			query: fmt.Sprintf(
				"SELECT COUNT(*) FROM %s c JOIN %s p ON c.%s = p.%s WHERE c.%s < p.created_at",
				e.child, e.parent, e.join, primaryKeys[e.parent], e.timestamp),
		})
	}
	for _, table := range schema.Tables {
		key, ok := primaryKeys[table]
		if !ok {
			// task_tag_associations; its pair check covers uniqueness.
			continue
		}
		checks = append(checks, check{
			name: fmt.Sprintf("%s: duplicate %s", table, key),
			query: fmt.Sprintf(
				"SELECT COUNT(*) FROM (SELECT %s FROM %s GROUP BY %s HAVING COUNT(*) > 1) dupes",
				key, table, key),
		})
	}
	return append(checks, structuralChecks...)
}
