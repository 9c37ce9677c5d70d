package datagen

import (
	"context"

	"github.com/tarak510605/asana-rl-seed-data/internal/model"
)

// generateSections deals each project three to six board columns from
// the section pool. Positions run contiguously from zero in deal order.
func (p *Pipeline) generateSections(ctx context.Context, projects []model.Project) ([]model.Section, error) {
	p.stage("sections")

	sections := make([]model.Section, 0, len(projects)*4)
	for _, project := range projects {
		for pos, name := range sample(p.rng, sectionNames, between(p.rng, 3, 6)) {
			section := model.Section{
				ID:        p.ids.New(),
				ProjectID: project.ID,
				Name:      name,
				Position:  pos,
			}
			if err := p.store.InsertSection(ctx, section); err != nil {
				return nil, err
			}
			sections = append(sections, section)
		}
	}

	p.stageDone("sections", len(sections))
	return sections, nil
}
