package api

import (
	"context"
	"net/http"
	"net/url"

	"leadman-cli/internal/model"
)

// ListActivities returns a lead's activities in backend order.
func (c *Client) ListActivities(ctx context.Context, leadID string) ([]model.Activity, error) {
	q := url.Values{}
	q.Set("leadId", leadID)
	var acts []model.Activity
	if err := c.do(ctx, http.MethodGet, "/activities", q, nil, &acts); err != nil {
		return nil, err
	}
	return acts, nil
}

// AddActivity creates an activity. The date must already carry a time
// component (model.NormalizeActivityDate).
func (c *Client) AddActivity(ctx context.Context, a model.Activity) (model.Activity, error) {
	created := a
	if err := c.do(ctx, http.MethodPost, "/activities", nil, a, &created); err != nil {
		return model.Activity{}, err
	}
	return created, nil
}

func (c *Client) DeleteActivity(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/activities/"+id, nil, nil, nil)
}
