package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"finance-dashboard/config"
	"finance-dashboard/internal/models"
)

const (
	historyMaxEntries = 50
	historyTTL        = 7 * 24 * time.Hour
)

type Client struct {
	rdb *redisv9.Client
}

// NewClient connects to Redis. The chat-history store is optional: callers
// tolerate a nil *Client.
func NewClient(cfg *config.Config) (*Client, error) {
	rdb := redisv9.NewClient(&redisv9.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       0,
	})

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

func historyKey(userID int64) string {
	return fmt.Sprintf("chat:history:%d", userID)
}

// SaveChatExchange prepends one exchange to the user's history, trims the
// list to the newest historyMaxEntries and refreshes the TTL.
func (c *Client) SaveChatExchange(ctx context.Context, userID int64, exchange models.ChatExchange) error {
	data, err := json.Marshal(exchange)
	if err != nil {
		return fmt.Errorf("failed to marshal chat exchange: %w", err)
	}

	key := historyKey(userID)
	pipe := c.rdb.Pipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, historyMaxEntries-1)
	pipe.Expire(ctx, key, historyTTL)
	_, err = pipe.Exec(ctx)
	return err
}

// GetChatHistory returns the user's stored exchanges, newest first.
func (c *Client) GetChatHistory(ctx context.Context, userID int64) ([]models.ChatExchange, error) {
	entries, err := c.rdb.LRange(ctx, historyKey(userID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get chat history: %w", err)
	}

	history := make([]models.ChatExchange, 0, len(entries))
	for _, entry := range entries {
		var exchange models.ChatExchange
		if err := json.Unmarshal([]byte(entry), &exchange); err != nil {
			return nil, fmt.Errorf("failed to unmarshal chat exchange: %w", err)
		}
		history = append(history, exchange)
	}

	return history, nil
}
