package datagen

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/tarak510605/asana-rl-seed-data/internal/model"
)

// generateComments writes discussion threads. Roughly a third of tasks
// stay quiet, most of the rest get one or two comments, and a few grow
// longer threads. Authors are members of the task's project team, and
// each comment lands strictly after the previous one.
func (p *Pipeline) generateComments(ctx context.Context, tasks []model.Task, pools map[string][]model.User, users []model.User) ([]model.Comment, error) {
	p.stage("comments")

	var comments []model.Comment
	for _, task := range tasks {
		count := p.commentCount()
		if count == 0 {
			continue
		}

		pool := pools[task.ProjectID]
		if len(pool) == 0 {
			return nil, fmt.Errorf("%w: no team members available to comment on %q", ErrEmptyUpstream, task.Name)
		}

		prev := task.CreatedAt
		for i := 0; i < count; i++ {
			comment := model.Comment{
				ID:        p.ids.New(),
				TaskID:    task.ID,
				AuthorID:  choice(p.rng, pool).ID,
				Body:      p.commentBody(users),
				CreatedAt: p.clock.TimestampAfter(prev, 15),
			}
			if err := p.store.InsertComment(ctx, comment); err != nil {
				return nil, err
			}
			comments = append(comments, comment)
			prev = comment.CreatedAt
		}
	}

	p.stageDone("comments", len(comments))
	return comments, nil
}

// commentCount draws a thread length: 30% none, then mostly short
// threads of one or two, the rest three to eight.
func (p *Pipeline) commentCount() int {
	if p.rng.Float64() < 0.3 {
		return 0
	}
	if p.rng.Float64() < 0.7 {
		return between(p.rng, 1, 2)
	}
	return between(p.rng, 3, 8)
}

// commentBody fills a comment template, substituting a random user's
// full name for {name} and a ticket number for {number}.
func (p *Pipeline) commentBody(users []model.User) string {
	body := choice(p.rng, commentTemplates)
	if strings.Contains(body, "{name}") {
		u := choice(p.rng, users)
		body = strings.ReplaceAll(body, "{name}", u.FirstName+" "+u.LastName)
	}
	if strings.Contains(body, "{number}") {
		body = strings.ReplaceAll(body, "{number}", strconv.Itoa(between(p.rng, 100, 999)))
	}
	return body
}
