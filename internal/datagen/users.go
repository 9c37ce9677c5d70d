package datagen

import (
	"context"
	"fmt"
	"strings"

	"github.com/tarak510605/asana-rl-seed-data/internal/model"
)

// generateUsers creates counts.users_per_org users per organization and
// enrolls each in one to three of that organization's teams. The first
// membership round-robins across the teams, so every team is staffed
// whenever an organization has at least as many users as teams.
func (p *Pipeline) generateUsers(ctx context.Context, orgs []model.Organization, teams []model.Team) ([]model.User, []model.TeamMembership, error) {
	p.stage("users")

	perOrg := p.cfg.Counts.UsersPerOrg
	if perOrg > 0 && len(teams) == 0 {
		return nil, nil, fmt.Errorf("%w: users need at least one team to join", ErrEmptyUpstream)
	}

	teamsByOrg := make(map[string][]model.Team)
	for _, team := range teams {
		teamsByOrg[team.OrganizationID] = append(teamsByOrg[team.OrganizationID], team)
	}

	var (
		users       []model.User
		memberships []model.TeamMembership
	)
	for _, org := range orgs {
		orgTeams := teamsByOrg[org.ID]
		if perOrg > 0 && len(orgTeams) == 0 {
			return nil, nil, fmt.Errorf("%w: organization %q has no teams to join", ErrEmptyUpstream, org.Name)
		}

		seen := make(map[string]int)
		for i := 0; i < perOrg; i++ {
			first := choice(p.rng, firstNames)
			last := choice(p.rng, lastNames)

			user := model.User{
				ID:             p.ids.New(),
				OrganizationID: org.ID,
				FirstName:      first,
				LastName:       last,
				Email:          email(seen, first, last, org.Domain),
				Role:           pick(p.rng, userRoles),
				CreatedAt:      p.createdAfter(org.CreatedAt, p.cfg.Dates.UserCreatedDaysAgoMin, p.cfg.Dates.UserCreatedDaysAgoMax),
			}
			if err := p.store.InsertUser(ctx, user); err != nil {
				return nil, nil, err
			}
			users = append(users, user)

			for _, team := range p.chooseTeams(orgTeams, i) {
				m := model.TeamMembership{
					ID:       p.ids.New(),
					UserID:   user.ID,
					TeamID:   team.ID,
					JoinedAt: p.clock.TimestampAfter(latest(user.CreatedAt, team.CreatedAt), 30),
				}
				if err := p.store.InsertTeamMembership(ctx, m); err != nil {
					return nil, nil, err
				}
				memberships = append(memberships, m)
			}
		}
	}

	p.stageDone("users", len(users))
	p.stageDone("team_memberships", len(memberships))
	return users, memberships, nil
}

// chooseTeams picks the teams user number i joins: the round-robin
// first team plus up to two random extras, all distinct.
func (p *Pipeline) chooseTeams(orgTeams []model.Team, i int) []model.Team {
	total := 1 + p.rng.Intn(min(3, len(orgTeams)))
	first := i % len(orgTeams)

	chosen := make([]model.Team, 0, total)
	chosen = append(chosen, orgTeams[first])
	for _, idx := range p.rng.Perm(len(orgTeams)) {
		if len(chosen) == total {
			break
		}
		if idx == first {
			continue
		}
		chosen = append(chosen, orgTeams[idx])
	}
	return chosen
}

// email builds first.last@domain, suffixing a counter when the same
// name combination repeats within an organization.
func email(seen map[string]int, first, last, domain string) string {
	base := strings.ToLower(first + "." + last)
	seen[base]++
	if n := seen[base]; n > 1 {
		return fmt.Sprintf("%s%d@%s", base, n, domain)
	}
	return base + "@" + domain
}
