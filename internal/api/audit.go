// ABOUTME: Audit log retrieval against the backend
// ABOUTME: Lists log entries with optional user and date-range filters

package api

import (
	"context"
	"net/url"
)

// AuditLog is one audit trail entry
type AuditLog struct {
	ID           int    `json:"id"`
	IPAddress    string `json:"ip_address"`
	UserUsername string `json:"user_username"`
	Timestamp    string `json:"timestamp"`
	Action       string `json:"action"`
}

// LogFilters narrows the audit log listing; zero values are omitted
type LogFilters struct {
	User      string
	StartDate string
	EndDate   string
}

// AuditLogs lists audit entries via GET /log/
func (c *Client) AuditLogs(ctx context.Context, filters LogFilters) ([]AuditLog, error) {
	query := url.Values{}
	if filters.User != "" {
		query.Set("user", filters.User)
	}
	if filters.StartDate != "" {
		query.Set("start_date", filters.StartDate)
	}
	if filters.EndDate != "" {
		query.Set("end_date", filters.EndDate)
	}

	var page Paginated[AuditLog]
	if err := c.get(ctx, "/log/", query, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}
