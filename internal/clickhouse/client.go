package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/Varun5711/promokit/internal/config"
)

type Client struct {
	conn driver.Conn
}

func NewClient(cfg config.ClickHouseConfig) (*Client, error) {
	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{cfg.Addr},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.Username,
			Password: cfg.Password,
		},
		Settings: clickhouse.Settings{
			"max_execution_time": 60,
		},
		DialTimeout:      time.Second * 30,
		MaxOpenConns:     cfg.MaxConns,
		MaxIdleConns:     cfg.MaxConns / 2,
		ConnMaxLifetime:  time.Hour,
		ConnOpenStrategy: clickhouse.ConnOpenInOrder,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to clickhouse: %w", err)
	}

	if err := conn.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ping clickhouse: %w", err)
	}

	return &Client{conn: conn}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// AuthEventRow is one enriched authentication attempt.
type AuthEventRow struct {
	EventID    string
	Kind       string
	Email      string
	OccurredAt time.Time

	IPAddress string

	UserAgent  string
	Browser    string
	OS         string
	DeviceType string
}

// InitSchema creates the auth_events table when missing.
func (c *Client) InitSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS analytics.auth_events (
			event_id    String,
			kind        LowCardinality(String),
			email       String,
			occurred_at DateTime,
			ip_address  String,
			user_agent  String,
			browser     LowCardinality(String),
			os          LowCardinality(String),
			device_type LowCardinality(String)
		)
		ENGINE = MergeTree()
		PARTITION BY toYYYYMM(occurred_at)
		ORDER BY (kind, occurred_at)
	`
	if err := c.conn.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create auth_events table: %w", err)
	}
	return nil
}

func (c *Client) InsertAuthEvents(ctx context.Context, rows []AuthEventRow) error {
	if len(rows) == 0 {
		return nil
	}

	batch, err := c.conn.PrepareBatch(ctx, `INSERT INTO analytics.auth_events (
		event_id, kind, email, occurred_at,
		ip_address, user_agent, browser, os, device_type
	)`)
	if err != nil {
		return fmt.Errorf("failed to prepare batch: %w", err)
	}

	for _, row := range rows {
		err := batch.Append(
			row.EventID,
			row.Kind,
			row.Email,
			row.OccurredAt,
			row.IPAddress,
			row.UserAgent,
			row.Browser,
			row.OS,
			row.DeviceType,
		)
		if err != nil {
			return fmt.Errorf("failed to append event: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("failed to send batch: %w", err)
	}

	return nil
}
