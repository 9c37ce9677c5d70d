package datagen

import (
	"context"
	"fmt"

	"github.com/tarak510605/asana-rl-seed-data/internal/model"
)

// generateTeams creates counts.teams_per_org teams in every
// organization, cycling through the department pool. Past the tenth
// team the name picks up a counter to stay readable.
func (p *Pipeline) generateTeams(ctx context.Context, orgs []model.Organization) ([]model.Team, error) {
	p.stage("teams")

	perOrg := p.cfg.Counts.TeamsPerOrg
	teams := make([]model.Team, 0, len(orgs)*perOrg)
	for _, org := range orgs {
		for i := 0; i < perOrg; i++ {
			name := teamNames[i%len(teamNames)]
			if i >= len(teamNames) {
				name = fmt.Sprintf("%s %d", name, i/len(teamNames)+1)
			}

			team := model.Team{
				ID:             p.ids.New(),
				OrganizationID: org.ID,
				Name:           name,
				TeamType:       teamTypes[i%len(teamTypes)],
				CreatedAt:      p.createdAfter(org.CreatedAt, p.cfg.Dates.TeamCreatedDaysAgoMin, p.cfg.Dates.TeamCreatedDaysAgoMax),
			}
			if err := p.store.InsertTeam(ctx, team); err != nil {
				return nil, err
			}
			teams = append(teams, team)
		}
	}

	p.stageDone("teams", len(teams))
	return teams, nil
}
