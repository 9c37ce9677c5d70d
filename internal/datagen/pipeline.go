// Package datagen builds the synthetic workspace dataset. Entities are
// generated in dependency order inside a single transaction, each stage
// consuming the rows the previous stages produced, so every foreign key
// points at a row that exists and every child postdates its parent.
package datagen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"

	"github.com/tarak510605/asana-rl-seed-data/internal/config"
	"github.com/tarak510605/asana-rl-seed-data/internal/ident"
	"github.com/tarak510605/asana-rl-seed-data/internal/model"
	"github.com/tarak510605/asana-rl-seed-data/internal/store"
	"github.com/tarak510605/asana-rl-seed-data/internal/timeutil"
)

// ErrEmptyUpstream reports a stage whose configuration demands rows that
// no upstream stage produced, such as users with zero teams to join.
var ErrEmptyUpstream = errors.New("no upstream rows to reference")

type Pipeline struct {
	store  *store.Store
	cfg    *config.Config
	rng    *rand.Rand
	ids    *ident.Generator
	clock  *timeutil.Sampler
	logger *log.Logger
	seed   int64
}

// New wires a pipeline against an open store. A zero cfg.Seed falls back
// to the wall clock, so only explicitly seeded runs are reproducible.
func New(st *store.Store, cfg *config.Config, logger *log.Logger) *Pipeline {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := rand.New(rand.NewSource(seed))
	return &Pipeline{
		store:  st,
		cfg:    cfg,
		rng:    rng,
		ids:    ident.NewGenerator(rng),
		clock:  timeutil.NewSampler(rng, time.Now()),
		logger: logger,
		seed:   seed,
	}
}

// Seed returns the seed this pipeline runs with.
func (p *Pipeline) Seed() int64 {
	return p.seed
}

// Summary describes a completed generation run.
type Summary struct {
	Seed     int64
	Duration time.Duration
	Counts   []store.TableCount
}

func (s *Summary) TotalRows() int {
	total := 0
	for _, c := range s.Counts {
		total += c.Rows
	}
	return total
}

// Run drops and recreates the schema, then generates the dataset inside
// one transaction. A failing stage rolls the whole run back, leaving the
// previous dataset gone and the schema empty rather than half-filled.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()
	color.Cyan("🌱 Generating workspace dataset on %s (seed %d)...", p.store.Provider(), p.seed)
	p.logger.Info("starting generation run", "provider", p.store.Provider(), "seed", p.seed)

	if err := p.store.Reset(ctx); err != nil {
		return nil, fmt.Errorf("failed to reset schema: %w", err)
	}
	if err := p.store.Begin(ctx); err != nil {
		return nil, err
	}
	defer p.store.Rollback()

	orgs, err := p.generateOrganizations(ctx)
	if err != nil {
		return nil, fmt.Errorf("organizations stage: %w", err)
	}
	teams, err := p.generateTeams(ctx, orgs)
	if err != nil {
		return nil, fmt.Errorf("teams stage: %w", err)
	}
	users, memberships, err := p.generateUsers(ctx, orgs, teams)
	if err != nil {
		return nil, fmt.Errorf("users stage: %w", err)
	}
	projects, err := p.generateProjects(ctx, teams)
	if err != nil {
		return nil, fmt.Errorf("projects stage: %w", err)
	}
	sections, err := p.generateSections(ctx, projects)
	if err != nil {
		return nil, fmt.Errorf("sections stage: %w", err)
	}

	pools := assigneePools(projects, users, memberships)

	tasks, err := p.generateTasks(ctx, projects, sections, pools)
	if err != nil {
		return nil, fmt.Errorf("tasks stage: %w", err)
	}
	if _, err := p.generateSubtasks(ctx, tasks, pools); err != nil {
		return nil, fmt.Errorf("subtasks stage: %w", err)
	}
	if _, err := p.generateComments(ctx, tasks, pools, users); err != nil {
		return nil, fmt.Errorf("comments stage: %w", err)
	}
	tags, err := p.generateTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("tags stage: %w", err)
	}
	if _, err := p.generateTagAssociations(ctx, tasks, tags); err != nil {
		return nil, fmt.Errorf("tag associations stage: %w", err)
	}
	defs, err := p.generateFieldDefinitions(ctx, projects)
	if err != nil {
		return nil, fmt.Errorf("custom field definitions stage: %w", err)
	}
	if _, err := p.generateFieldValues(ctx, defs, tasks); err != nil {
		return nil, fmt.Errorf("custom field values stage: %w", err)
	}

	if err := p.store.Commit(); err != nil {
		return nil, err
	}

	counts, err := p.store.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count generated rows: %w", err)
	}

	summary := &Summary{Seed: p.seed, Duration: time.Since(start), Counts: counts}
	color.Green("✅ Dataset ready: %d rows in %s", summary.TotalRows(), summary.Duration.Round(time.Millisecond))
	p.logger.Info("generation run complete", "rows", summary.TotalRows(), "elapsed", summary.Duration)
	return summary, nil
}

func (p *Pipeline) stage(name string) {
	color.Cyan("  📝 Generating %s...", name)
	p.logger.Debug("stage start", "stage", name)
}

func (p *Pipeline) stageDone(name string, rows int) {
	color.Green("  ✅ %s: %d rows", name, rows)
	p.logger.Info("stage complete", "stage", name, "rows", rows)
}

// assigneePools maps each project to the members of its owning team.
// Tasks, subtasks and comments all draw people from this pool.
func assigneePools(projects []model.Project, users []model.User, memberships []model.TeamMembership) map[string][]model.User {
	byID := make(map[string]model.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	byTeam := make(map[string][]model.User)
	for _, m := range memberships {
		if u, ok := byID[m.UserID]; ok {
			byTeam[m.TeamID] = append(byTeam[m.TeamID], u)
		}
	}
	pools := make(map[string][]model.User, len(projects))
	for _, project := range projects {
		pools[project.ID] = byTeam[project.TeamID]
	}
	return pools
}

// choice returns a uniformly drawn element of items.
func choice[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

// between returns a uniform int in [lo, hi].
func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// sample returns k distinct elements of items in random order. k is
// capped at the pool size.
func sample[T any](rng *rand.Rand, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	out := make([]T, 0, k)
	for _, i := range rng.Perm(len(items))[:k] {
		out = append(out, items[i])
	}
	return out
}

func latest(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}

// createdAfter draws a creation timestamp from the configured window,
// re-anchored shortly after the parent when the draw lands before it.
func (p *Pipeline) createdAfter(parent time.Time, oldestDaysAgo, newestDaysAgo int) time.Time {
	ts := p.clock.PastTimestamp(oldestDaysAgo, newestDaysAgo)
	if !ts.After(parent) {
		ts = p.clock.TimestampAfter(parent, 30)
	}
	return ts
}
