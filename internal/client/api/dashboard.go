package api

import (
	"context"
	"fmt"
	"net/http"
)

// DashboardStats fetches the aggregate score summary.
func (c *Client) DashboardStats(ctx context.Context) (*StatsResult, error) {
	var res StatsResult
	if err := c.do(ctx, http.MethodGet, "/dashboard/stats", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// DashboardHistory fetches the merged recent-activity feed.
func (c *Client) DashboardHistory(ctx context.Context, limit int) (*HistoryResult, error) {
	path := "/dashboard/history"
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}
	var res HistoryResult
	if err := c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// DashboardTrends fetches dated score series for the given window.
func (c *Client) DashboardTrends(ctx context.Context, days int) (*TrendsResult, error) {
	path := "/dashboard/trends"
	if days > 0 {
		path = fmt.Sprintf("%s?days=%d", path, days)
	}
	var res TrendsResult
	if err := c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
