package datagen

import (
	"context"
	"fmt"
	"strconv"

	"github.com/tarak510605/asana-rl-seed-data/internal/model"
)

// generateFieldDefinitions gives every project a two-to-four field
// subset of the catalogue.
func (p *Pipeline) generateFieldDefinitions(ctx context.Context, projects []model.Project) ([]model.CustomFieldDefinition, error) {
	p.stage("custom_field_definitions")

	var defs []model.CustomFieldDefinition
	for _, project := range projects {
		for _, tpl := range sample(p.rng, fieldCatalogue, between(p.rng, 2, 4)) {
			def := model.CustomFieldDefinition{
				ID:        p.ids.New(),
				ProjectID: project.ID,
				Name:      tpl.name,
				FieldType: tpl.fieldType,
				CreatedAt: p.createdAfter(project.CreatedAt, 250, 50),
			}
			if err := p.store.InsertCustomFieldDefinition(ctx, def); err != nil {
				return nil, err
			}
			defs = append(defs, def)
		}
	}

	p.stageDone("custom_field_definitions", len(defs))
	return defs, nil
}

// generateFieldValues walks the field × task grid of each project and
// fills a rates.custom_field_value share of the cells. Each pair is
// visited once, which keeps the (field, task) uniqueness constraint
// satisfied by construction. The update timestamp lands after both the
// task and the field definition existed.
func (p *Pipeline) generateFieldValues(ctx context.Context, defs []model.CustomFieldDefinition, tasks []model.Task) ([]model.CustomFieldValue, error) {
	p.stage("custom_field_values")

	byProject := make(map[string][]model.CustomFieldDefinition)
	for _, def := range defs {
		byProject[def.ProjectID] = append(byProject[def.ProjectID], def)
	}

	var values []model.CustomFieldValue
	for _, task := range tasks {
		for _, def := range byProject[task.ProjectID] {
			if p.rng.Float64() >= p.cfg.Rates.CustomFieldValue {
				continue
			}
			value := model.CustomFieldValue{
				ID:        p.ids.New(),
				FieldID:   def.ID,
				TaskID:    task.ID,
				Value:     p.fieldValue(def),
				UpdatedAt: p.clock.TimestampAfter(latest(task.CreatedAt, def.CreatedAt), 60),
			}
			if err := p.store.InsertCustomFieldValue(ctx, value); err != nil {
				return nil, err
			}
			values = append(values, value)
		}
	}

	p.stageDone("custom_field_values", len(values))
	return values, nil
}

// fieldValue renders a value matching the field's type. Point-scale
// fields draw from the planning scale, Progress is a percentage, and
// option-backed fields pick from their option list.
func (p *Pipeline) fieldValue(def model.CustomFieldDefinition) string {
	if def.FieldType == "number" {
		switch def.Name {
		case "Story Points", "Effort Estimate":
			return strconv.Itoa(choice(p.rng, storyPointScale))
		case "Progress":
			return strconv.Itoa(p.rng.Intn(101))
		default:
			return strconv.Itoa(between(p.rng, 1, 100))
		}
	}
	for _, tpl := range fieldCatalogue {
		if tpl.name == def.Name && len(tpl.options) > 0 {
			return choice(p.rng, tpl.options)
		}
	}
	return fmt.Sprintf("Value %d", between(p.rng, 1, 5))
}
