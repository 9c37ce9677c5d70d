package datagen

import (
	"context"

	"github.com/tarak510605/asana-rl-seed-data/internal/model"
)

// generateTags creates the workspace tag vocabulary. Tag names are
// unique, so a count beyond the pool is capped with a warning.
func (p *Pipeline) generateTags(ctx context.Context) ([]model.Tag, error) {
	p.stage("tags")

	count := p.cfg.Counts.TagsCount
	if count > len(tagNames) {
		p.logger.Warn("capping tag count to the name pool", "requested", count, "pool", len(tagNames))
		count = len(tagNames)
	}

	tags := make([]model.Tag, 0, count)
	for _, name := range tagNames[:count] {
		tag := model.Tag{
			ID:        p.ids.New(),
			Name:      name,
			CreatedAt: p.clock.PastTimestamp(365, 180),
		}
		if err := p.store.InsertTag(ctx, tag); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}

	p.stageDone("tags", len(tags))
	return tags, nil
}

// generateTagAssociations labels a rates.task_has_tags share of tasks
// with one to three distinct tags. With no tags configured the stage is
// a no-op rather than an error: an empty vocabulary means nothing can
// be labelled.
func (p *Pipeline) generateTagAssociations(ctx context.Context, tasks []model.Task, tags []model.Tag) ([]model.TaskTagAssociation, error) {
	p.stage("task_tag_associations")

	var assocs []model.TaskTagAssociation
	if len(tags) > 0 {
		for _, task := range tasks {
			if p.rng.Float64() >= p.cfg.Rates.TaskHasTags {
				continue
			}
			for _, tag := range sample(p.rng, tags, between(p.rng, 1, 3)) {
				assoc := model.TaskTagAssociation{
					TaskID:     task.ID,
					TagID:      tag.ID,
					AssignedAt: p.clock.TimestampAfter(latest(task.CreatedAt, tag.CreatedAt), 30),
				}
				if err := p.store.InsertTaskTagAssociation(ctx, assoc); err != nil {
					return nil, err
				}
				assocs = append(assocs, assoc)
			}
		}
	}

	p.stageDone("task_tag_associations", len(assocs))
	return assocs, nil
}
