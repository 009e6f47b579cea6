package api

import (
	"context"
	"net/http"

	"leadman-cli/internal/model"
)

// ListLeads returns leads in the server's order; the server is the sort
// authority and the caller must not re-sort.
func (c *Client) ListLeads(ctx context.Context, q model.LeadQuery) ([]model.Lead, error) {
	var leads []model.Lead
	if err := c.do(ctx, http.MethodGet, "/leads", q.Values(), nil, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

func (c *Client) CreateLead(ctx context.Context, lead model.Lead) (model.Lead, error) {
	created := lead
	if err := c.do(ctx, http.MethodPost, "/leads", nil, lead, &created); err != nil {
		return model.Lead{}, err
	}
	return created, nil
}

func (c *Client) UpdateLead(ctx context.Context, lead model.Lead) (model.Lead, error) {
	updated := lead
	if err := c.do(ctx, http.MethodPut, "/leads/"+lead.ID, nil, lead, &updated); err != nil {
		return model.Lead{}, err
	}
	return updated, nil
}

func (c *Client) DeleteLead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/leads/"+id, nil, nil, nil)
}
