package datagen

import (
	"context"
	"fmt"

	"github.com/tarak510605/asana-rl-seed-data/internal/model"
)

// generateProjects creates counts.projects_per_team projects on every
// team, with templated names like "Website Redesign Q3".
func (p *Pipeline) generateProjects(ctx context.Context, teams []model.Team) ([]model.Project, error) {
	p.stage("projects")

	perTeam := p.cfg.Counts.ProjectsPerTeam
	if perTeam > 0 && len(teams) == 0 {
		return nil, fmt.Errorf("%w: projects need a team to belong to", ErrEmptyUpstream)
	}

	projects := make([]model.Project, 0, len(teams)*perTeam)
	for _, team := range teams {
		for i := 0; i < perTeam; i++ {
			project := model.Project{
				ID:          p.ids.New(),
				TeamID:      team.ID,
				Name:        fmt.Sprintf(choice(p.rng, projectTemplates), choice(p.rng, projectFillers)),
				ProjectType: pick(p.rng, projectTypes),
				Status:      pick(p.rng, projectStatuses),
				CreatedAt:   p.createdAfter(team.CreatedAt, p.cfg.Dates.ProjectCreatedDaysAgoMin, p.cfg.Dates.ProjectCreatedDaysAgoMax),
			}
			if err := p.store.InsertProject(ctx, project); err != nil {
				return nil, err
			}
			projects = append(projects, project)
		}
	}

	p.stageDone("projects", len(projects))
	return projects, nil
}
