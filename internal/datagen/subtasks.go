package datagen

import (
	"context"

	"github.com/tarak510605/asana-rl-seed-data/internal/model"
)

// generateSubtasks attaches a checklist of two to five items to a
// rates.subtask_probability share of tasks. A completed parent mostly
// has completed subtasks; an open parent roughly half.
func (p *Pipeline) generateSubtasks(ctx context.Context, tasks []model.Task, pools map[string][]model.User) ([]model.Subtask, error) {
	p.stage("subtasks")

	var subtasks []model.Subtask
	for _, task := range tasks {
		if p.rng.Float64() >= p.cfg.Rates.SubtaskProbability {
			continue
		}

		completionRate := 0.5
		if task.Completed {
			completionRate = 0.9
		}

		for _, name := range sample(p.rng, subtaskNames, between(p.rng, 2, 5)) {
			sub := model.Subtask{
				ID:           p.ids.New(),
				ParentTaskID: task.ID,
				Name:         name,
				CreatedAt:    p.clock.TimestampAfter(task.CreatedAt, 10),
			}

			assignee, err := p.assignee(pools[task.ProjectID], sub.Name)
			if err != nil {
				return nil, err
			}
			sub.AssigneeID = assignee
			sub.CompletedAt = p.clock.MaybeCompletedAt(sub.CreatedAt, completionRate)
			sub.Completed = sub.CompletedAt != nil

			if err := p.store.InsertSubtask(ctx, sub); err != nil {
				return nil, err
			}
			subtasks = append(subtasks, sub)
		}
	}

	p.stageDone("subtasks", len(subtasks))
	return subtasks, nil
}
