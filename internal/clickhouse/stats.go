package clickhouse

import (
	"context"
	"fmt"
	"time"
)

type DailyAuthStats struct {
	Date         time.Time `json:"date"`
	Signups      uint64    `json:"signups"`
	Logins       uint64    `json:"logins"`
	FailedLogins uint64    `json:"failed_logins"`
}

type DeviceStats struct {
	DeviceType string `json:"device_type"`
	Browser    string `json:"browser"`
	OS         string `json:"os"`
	Count      uint64 `json:"count"`
}

func (c *Client) GetDailyAuthStats(ctx context.Context, days int) ([]DailyAuthStats, error) {
	query := `
		SELECT
			toDate(occurred_at) AS day,
			countIf(kind = 'signup') AS signups,
			countIf(kind = 'login') AS logins,
			countIf(kind = 'login_failed') AS failed_logins
		FROM analytics.auth_events
		WHERE occurred_at >= now() - INTERVAL ? DAY
		GROUP BY day
		ORDER BY day ASC
	`

	rows, err := c.conn.Query(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily auth stats: %w", err)
	}
	defer rows.Close()

	var stats []DailyAuthStats
	for rows.Next() {
		var s DailyAuthStats
		if err := rows.Scan(&s.Date, &s.Signups, &s.Logins, &s.FailedLogins); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return stats, nil
}

func (c *Client) GetDeviceStats(ctx context.Context, days int) ([]DeviceStats, error) {
	query := `
		SELECT
			device_type,
			browser,
			os,
			count() AS attempts
		FROM analytics.auth_events
		WHERE occurred_at >= now() - INTERVAL ? DAY
		GROUP BY device_type, browser, os
		ORDER BY attempts DESC
		LIMIT 50
	`

	rows, err := c.conn.Query(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("failed to query device stats: %w", err)
	}
	defer rows.Close()

	var stats []DeviceStats
	for rows.Next() {
		var s DeviceStats
		if err := rows.Scan(&s.DeviceType, &s.Browser, &s.OS, &s.Count); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return stats, nil
}
