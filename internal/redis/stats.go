package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"currency-transactions/internal/models"
)

// statsTTL - счётчики запуска живут сутки
const statsTTL = 24 * time.Hour

const skippedField = "skipped"

func statsKey(runID string) string {
	return fmt.Sprintf("run:%s:stats", runID)
}

// IncrementTierStats увеличивает счетчик категории в статистике запуска
func (c *Client) IncrementTierStats(runID string, tier models.Tier) error {
	return c.increment(runID, string(tier))
}

// IncrementSkipStats увеличивает общий счетчик пропусков и счетчик по валюте
func (c *Client) IncrementSkipStats(runID, currency string) error {
	return c.increment(runID, skippedField, skippedField+":"+currency)
}

func (c *Client) increment(runID string, fields ...string) error {
	ctx := context.Background()
	key := statsKey(runID)
	pipe := c.rdb.Pipeline()
	for _, field := range fields {
		pipe.HIncrBy(ctx, key, field, 1)
	}
	pipe.Expire(ctx, key, statsTTL)
	_, err := pipe.Exec(ctx)
	return err
}

// GetRunStats получает счетчики запуска; для неизвестного запуска возвращает пустую карту
func (c *Client) GetRunStats(runID string) (map[string]int64, error) {
	ctx := context.Background()
	values, err := c.rdb.HGetAll(ctx, statsKey(runID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get run stats: %w", err)
	}

	stats := make(map[string]int64, len(values))
	for field, value := range values {
		count, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid counter %s=%q: %w", field, value, err)
		}
		stats[field] = count
	}
	return stats, nil
}
