package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Varun5711/promokit/internal/clickhouse"
	"github.com/Varun5711/promokit/internal/config"
	"github.com/Varun5711/promokit/internal/enrichment"
	"github.com/Varun5711/promokit/internal/logger"
	"github.com/Varun5711/promokit/internal/redis"
	redislib "github.com/redis/go-redis/v9"
)

var (
	log           *logger.Logger
	streamName    string
	consumerGroup string
	consumerName  string
	batchSize     int
	pollInterval  time.Duration
	blockTime     time.Duration
)

func main() {
	log = logger.New("analytics-worker")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: %v", err)
	}

	streamName = cfg.Redis.StreamName
	consumerGroup = cfg.Analytics.ConsumerGroup
	consumerName = cfg.Analytics.ConsumerName
	batchSize = cfg.Analytics.BatchSize
	pollInterval = cfg.Analytics.PollInterval
	blockTime = cfg.Analytics.BlockTime

	ctx := context.Background()

	redisClient, err := redis.NewRedisClient(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	chClient, err := clickhouse.NewClient(cfg.ClickHouse)
	if err != nil {
		log.Fatal("Failed to connect to ClickHouse: %v", err)
	}
	defer chClient.Close()

	if err := chClient.InitSchema(ctx); err != nil {
		log.Fatal("Failed to init ClickHouse schema: %v", err)
	}

	err = redisClient.GetClient().XGroupCreateMkStream(ctx, streamName, consumerGroup, "0").Err()
	if err != nil && err.Error() != "BUSYGROUP Consumer Group name already exists" {
		log.Fatal("Failed to create consumer group: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	log.Info("Processing auth events")
	go processEvents(ctx, redisClient.GetClient(), chClient)

	<-sigChan
	log.Info("Shutting down")
}

func processEvents(ctx context.Context, client *redislib.Client, chClient *clickhouse.Client) {
	for {
		messages, err := client.XReadGroup(ctx, &redislib.XReadGroupArgs{
			Group:    consumerGroup,
			Consumer: consumerName,
			Streams:  []string{streamName, ">"},
			Count:    int64(batchSize),
			Block:    blockTime,
		}).Result()

		if err != nil {
			if err == redislib.Nil {
				continue
			}
			log.Error("Failed to read from stream: %v", err)
			time.Sleep(pollInterval)
			continue
		}

		for _, stream := range messages {
			if len(stream.Messages) == 0 {
				continue
			}

			rows := make([]clickhouse.AuthEventRow, 0, len(stream.Messages))
			messageIDs := make([]string, 0, len(stream.Messages))

			for _, msg := range stream.Messages {
				row, ok := buildRow(msg)
				if !ok {
					log.Warn("Invalid message format: %v", msg.ID)
					continue
				}
				rows = append(rows, row)
				messageIDs = append(messageIDs, msg.ID)
			}

			if len(rows) > 0 {
				if err := chClient.InsertAuthEvents(ctx, rows); err != nil {
					log.Error("Failed to insert events: %v", err)
					continue
				}
				log.Debug("Processed %d auth events", len(rows))
			}

			if len(messageIDs) > 0 {
				if err := client.XAck(ctx, streamName, consumerGroup, messageIDs...).Err(); err != nil {
					log.Error("Failed to acknowledge messages: %v", err)
				}
			}
		}
	}
}

func buildRow(msg redislib.XMessage) (clickhouse.AuthEventRow, bool) {
	kind, ok := msg.Values["kind"].(string)
	if !ok {
		return clickhouse.AuthEventRow{}, false
	}

	row := clickhouse.AuthEventRow{
		Kind:       kind,
		OccurredAt: time.Now(),
	}

	if eventID, ok := msg.Values["event_id"].(string); ok {
		row.EventID = eventID
	}
	if email, ok := msg.Values["email"].(string); ok {
		row.Email = email
	}
	if raw, ok := msg.Values["timestamp"].(string); ok {
		if ts, err := strconv.ParseInt(raw, 10, 64); err == nil {
			row.OccurredAt = time.Unix(ts, 0)
		}
	}
	if ip, ok := msg.Values["ip"].(string); ok {
		row.IPAddress = ip
	}
	if ua, ok := msg.Values["user_agent"].(string); ok {
		row.UserAgent = ua
		info := enrichment.ParseUserAgent(ua)
		row.Browser = info.Browser
		row.OS = info.OS
		row.DeviceType = info.DeviceType
	}

	return row, true
}
