package datagen

import (
	"context"
	"fmt"

	"github.com/tarak510605/asana-rl-seed-data/internal/model"
)

// generateOrganizations creates exactly counts.organizations rows. The
// first few take names from the company pool; overflow entries get
// numbered placeholders so names and domains stay distinct.
func (p *Pipeline) generateOrganizations(ctx context.Context) ([]model.Organization, error) {
	p.stage("organizations")

	count := p.cfg.Counts.Organizations
	orgs := make([]model.Organization, 0, count)
	for i := 0; i < count; i++ {
		name := fmt.Sprintf("Company %d", i+1)
		domain := fmt.Sprintf("company%d.com", i+1)
		if i < len(companyNames) {
			name = companyNames[i]
			domain = companyDomains[i]
		}

		org := model.Organization{
			ID:        p.ids.New(),
			Name:      name,
			Domain:    domain,
			CreatedAt: p.clock.PastTimestamp(p.cfg.Dates.OrgCreatedDaysAgoMin, p.cfg.Dates.OrgCreatedDaysAgoMax),
		}
		if err := p.store.InsertOrganization(ctx, org); err != nil {
			return nil, err
		}
		orgs = append(orgs, org)
	}

	p.stageDone("organizations", len(orgs))
	return orgs, nil
}
