package datagen

import (
	"context"
	"fmt"

	"github.com/tarak510605/asana-rl-seed-data/internal/model"
)

// generateTasks fills every project with exactly counts.tasks_per_project
// tasks spread across the project's sections. Assignees come from the
// owning team's members; completion state and timestamps are drawn so
// that completed ⟺ completed_at is set and later than created_at.
func (p *Pipeline) generateTasks(ctx context.Context, projects []model.Project, sections []model.Section, pools map[string][]model.User) ([]model.Task, error) {
	p.stage("tasks")

	perProject := p.cfg.Counts.TasksPerProject
	if perProject > 0 && len(projects) == 0 {
		return nil, fmt.Errorf("%w: tasks need a project to belong to", ErrEmptyUpstream)
	}

	byProject := make(map[string][]model.Section)
	for _, section := range sections {
		byProject[section.ProjectID] = append(byProject[section.ProjectID], section)
	}

	tasks := make([]model.Task, 0, len(projects)*perProject)
	for _, project := range projects {
		projectSections := byProject[project.ID]
		if perProject > 0 && len(projectSections) == 0 {
			return nil, fmt.Errorf("%w: project %q has no sections", ErrEmptyUpstream, project.Name)
		}

		for i := 0; i < perProject; i++ {
			task := model.Task{
				ID:        p.ids.New(),
				ProjectID: project.ID,
				SectionID: choice(p.rng, projectSections).ID,
				Name:      fmt.Sprintf(choice(p.rng, taskTemplates), choice(p.rng, taskComponents)),
				Priority:  pick(p.rng, taskPriorities),
				CreatedAt: p.createdAfter(project.CreatedAt, p.cfg.Dates.TaskCreatedDaysAgoMin, p.cfg.Dates.TaskCreatedDaysAgoMax),
			}

			assignee, err := p.assignee(pools[project.ID], task.Name)
			if err != nil {
				return nil, err
			}
			task.AssigneeID = assignee

			if p.rng.Float64() < p.cfg.Rates.TaskHasDescription {
				desc := "Details for " + task.Name
				task.Description = &desc
			}
			if p.rng.Float64() < p.cfg.Rates.TaskHasDueDate {
				due := p.clock.DueDate(task.CreatedAt, p.cfg.Rates.TaskOverdueChance)
				task.DueDate = &due
			}
			task.CompletedAt = p.clock.MaybeCompletedAt(task.CreatedAt, p.cfg.Rates.TaskCompletion)
			task.Completed = task.CompletedAt != nil

			if err := p.store.InsertTask(ctx, task); err != nil {
				return nil, err
			}
			tasks = append(tasks, task)
		}
	}

	p.stageDone("tasks", len(tasks))
	return tasks, nil
}

// assignee resolves who works an item: nil for the unassigned share,
// otherwise a random member of the item's pool. An empty pool is only
// an error when the roll actually asked for a person.
func (p *Pipeline) assignee(pool []model.User, item string) (*string, error) {
	if p.rng.Float64() < p.cfg.Rates.TaskUnassigned {
		return nil, nil
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: no team members available to assign %q", ErrEmptyUpstream, item)
	}
	id := choice(p.rng, pool).ID
	return &id, nil
}
