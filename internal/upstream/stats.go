package upstream

import (
	"context"
	"net/http"

	"github.com/bloodlink-bd/bloodlink-web/internal/domain/entity"
)

// Summary calls GET /api/stats/summary for the dashboard cards.
func (c *Client) Summary(ctx context.Context, token string) (*entity.StatsSummary, error) {
	payload, err := c.do(ctx, http.MethodGet, "/api/stats/summary", nil, token)
	if err != nil {
		return nil, err
	}
	var s entity.StatsSummary
	if err := decode(payload, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// RequestStats calls GET /api/stats/requests for the dashboard chart.
func (c *Client) RequestStats(ctx context.Context, token string) (*entity.RequestStats, error) {
	payload, err := c.do(ctx, http.MethodGet, "/api/stats/requests", nil, token)
	if err != nil {
		return nil, err
	}
	var s entity.RequestStats
	if err := decode(payload, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
